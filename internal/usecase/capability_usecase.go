package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"
)

// Capabilities are thin pass-throughs to the provider. Each one only needs the
// link lookup to find the remote user of a billable; unlinked billables fail
// with ErrLinkNotFound before any remote call.

type CapabilityDefaults struct {
	Currency          string
	WalletDescription string
	WalletTag         string
	MandateCulture    string
	MandateReturnURL  string
}

// DefaultCapabilityDefaults mirrors the values the billables used so far.
func DefaultCapabilityDefaults() CapabilityDefaults {
	return CapabilityDefaults{
		Currency:          "EUR",
		WalletDescription: "main wallet",
		WalletTag:         "main",
		MandateCulture:    "EN",
	}
}

func remoteUserIDFor(ctx context.Context, links interfaces.ILinkLookup, ref entities.BillableRef) (string, error) {
	ref = ref.Normalize()
	if ref.IsZero() {
		return "", ErrInvalidBillable
	}
	link, err := links.FindByBillable(ctx, ref)
	if err != nil {
		return "", err
	}
	if !link.Exists() {
		return "", linkNotFound(ref)
	}
	return link.RemoteUserID, nil
}

// Wallets -------------------------------------------------------------------

type IWalletUseCase interface {
	CreateWallet(ctx context.Context, ref entities.BillableRef, w entities.Wallet) (entities.Wallet, error)
	ListWallets(ctx context.Context, ref entities.BillableRef) ([]entities.Wallet, error)
}

type WalletUseCase struct {
	links    interfaces.ILinkLookup
	provider interfaces.IWalletProvider
	defaults CapabilityDefaults
}

var _ IWalletUseCase = (*WalletUseCase)(nil)

func NewWalletUseCase(links interfaces.ILinkLookup, provider interfaces.IWalletProvider, defaults CapabilityDefaults) *WalletUseCase {
	return &WalletUseCase{links: links, provider: provider, defaults: defaults}
}

func (u *WalletUseCase) CreateWallet(ctx context.Context, ref entities.BillableRef, w entities.Wallet) (entities.Wallet, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return entities.Wallet{}, err
	}
	w.Owners = []string{remoteUserID}
	if strings.TrimSpace(w.Description) == "" {
		w.Description = u.defaults.WalletDescription
	}
	if strings.TrimSpace(w.Currency) == "" {
		w.Currency = u.defaults.Currency
	}
	if strings.TrimSpace(w.Tag) == "" {
		w.Tag = u.defaults.WalletTag
	}
	w.Currency = strings.ToUpper(w.Currency)
	if len(w.Currency) != 3 {
		return entities.Wallet{}, &ValidationError{Field: "Currency", Rule: "len"}
	}

	log.Printf("[link][wallet] create start billable=%s remote_user_id=%s currency=%s", ref, remoteUserID, w.Currency)
	created, err := u.provider.CreateWallet(ctx, w)
	if err != nil {
		log.Printf("[link][wallet] create failed billable=%s err=%v", ref, err)
		return entities.Wallet{}, &RemoteProviderError{Op: "create wallet", Err: err}
	}
	log.Printf("[link][wallet] create success billable=%s wallet_id=%s", ref, created.ID)
	return created, nil
}

func (u *WalletUseCase) ListWallets(ctx context.Context, ref entities.BillableRef) ([]entities.Wallet, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return nil, err
	}
	wallets, err := u.provider.ListWallets(ctx, remoteUserID)
	if err != nil {
		return nil, &RemoteProviderError{Op: "list wallets", Err: err}
	}
	return wallets, nil
}

// Bank accounts -------------------------------------------------------------

type IBankAccountUseCase interface {
	CreateBankAccount(ctx context.Context, ref entities.BillableRef, account entities.BankAccount) (entities.BankAccount, error)
	ListBankAccounts(ctx context.Context, ref entities.BillableRef) ([]entities.BankAccount, error)
}

type BankAccountUseCase struct {
	links    interfaces.ILinkLookup
	provider interfaces.IBankAccountProvider
}

var _ IBankAccountUseCase = (*BankAccountUseCase)(nil)

func NewBankAccountUseCase(links interfaces.ILinkLookup, provider interfaces.IBankAccountProvider) *BankAccountUseCase {
	return &BankAccountUseCase{links: links, provider: provider}
}

func (u *BankAccountUseCase) CreateBankAccount(ctx context.Context, ref entities.BillableRef, account entities.BankAccount) (entities.BankAccount, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return entities.BankAccount{}, err
	}
	account.Type = entities.BankAccountTypeIBAN
	account.IBAN = strings.ReplaceAll(strings.ToUpper(account.IBAN), " ", "")
	if strings.TrimSpace(account.Tag) == "" {
		account.Tag = account.OwnerName
	}
	if strings.TrimSpace(account.OwnerName) == "" {
		return entities.BankAccount{}, &ValidationError{Field: "OwnerName", Rule: "required"}
	}
	if account.IBAN == "" {
		return entities.BankAccount{}, &ValidationError{Field: "IBAN", Rule: "required"}
	}
	if err := validatePayload(account.OwnerAddress); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			ve.Field = "OwnerAddress." + ve.Field
		}
		return entities.BankAccount{}, err
	}

	log.Printf("[link][bank-account] create start billable=%s remote_user_id=%s", ref, remoteUserID)
	created, err := u.provider.CreateBankAccount(ctx, remoteUserID, account)
	if err != nil {
		log.Printf("[link][bank-account] create failed billable=%s err=%v", ref, err)
		return entities.BankAccount{}, &RemoteProviderError{Op: "create bank account", Err: err}
	}
	log.Printf("[link][bank-account] create success billable=%s bank_account_id=%s", ref, created.ID)
	return created, nil
}

func (u *BankAccountUseCase) ListBankAccounts(ctx context.Context, ref entities.BillableRef) ([]entities.BankAccount, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return nil, err
	}
	accounts, err := u.provider.ListBankAccounts(ctx, remoteUserID)
	if err != nil {
		return nil, &RemoteProviderError{Op: "list bank accounts", Err: err}
	}
	return accounts, nil
}

// KYC -----------------------------------------------------------------------

var kycDocumentTypes = map[string]struct{}{
	entities.KYCIdentityProof:          {},
	entities.KYCRegistrationProof:      {},
	entities.KYCArticlesOfAssociation:  {},
	entities.KYCShareholderDeclaration: {},
	entities.KYCAddressProof:           {},
}

type IKYCUseCase interface {
	CreateKYCDocument(ctx context.Context, ref entities.BillableRef, docType string) (entities.KYCDocument, error)
	AddKYCPage(ctx context.Context, ref entities.BillableRef, documentID string, file []byte) error
	SubmitKYCDocument(ctx context.Context, ref entities.BillableRef, documentID string) (entities.KYCDocument, error)
	ListKYCDocuments(ctx context.Context, ref entities.BillableRef, filter entities.KYCDocumentFilter) ([]entities.KYCDocument, error)
}

type KYCUseCase struct {
	links    interfaces.ILinkLookup
	provider interfaces.IKYCProvider
}

var _ IKYCUseCase = (*KYCUseCase)(nil)

func NewKYCUseCase(links interfaces.ILinkLookup, provider interfaces.IKYCProvider) *KYCUseCase {
	return &KYCUseCase{links: links, provider: provider}
}

func (u *KYCUseCase) CreateKYCDocument(ctx context.Context, ref entities.BillableRef, docType string) (entities.KYCDocument, error) {
	docType = strings.ToUpper(strings.TrimSpace(docType))
	if docType == "" {
		docType = entities.KYCIdentityProof
	}
	if _, ok := kycDocumentTypes[docType]; !ok {
		return entities.KYCDocument{}, &ValidationError{Field: "Type", Rule: "oneof"}
	}
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return entities.KYCDocument{}, err
	}
	log.Printf("[link][kyc] create document start billable=%s type=%s", ref, docType)
	doc, err := u.provider.CreateKYCDocument(ctx, remoteUserID, docType)
	if err != nil {
		log.Printf("[link][kyc] create document failed billable=%s err=%v", ref, err)
		return entities.KYCDocument{}, &RemoteProviderError{Op: "create kyc document", Err: err}
	}
	return doc, nil
}

func (u *KYCUseCase) AddKYCPage(ctx context.Context, ref entities.BillableRef, documentID string, file []byte) error {
	if strings.TrimSpace(documentID) == "" {
		return &ValidationError{Field: "DocumentId", Rule: "required"}
	}
	if len(file) == 0 {
		return &ValidationError{Field: "File", Rule: "required"}
	}
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return err
	}
	log.Printf("[link][kyc] add page start billable=%s document_id=%s size=%d", ref, documentID, len(file))
	if err := u.provider.CreateKYCPage(ctx, remoteUserID, documentID, file); err != nil {
		log.Printf("[link][kyc] add page failed billable=%s document_id=%s err=%v", ref, documentID, err)
		return &RemoteProviderError{Op: "create kyc page", Err: err}
	}
	return nil
}

// SubmitKYCDocument asks the provider to validate the document.
func (u *KYCUseCase) SubmitKYCDocument(ctx context.Context, ref entities.BillableRef, documentID string) (entities.KYCDocument, error) {
	if strings.TrimSpace(documentID) == "" {
		return entities.KYCDocument{}, &ValidationError{Field: "DocumentId", Rule: "required"}
	}
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return entities.KYCDocument{}, err
	}
	doc, err := u.provider.SubmitKYCDocument(ctx, remoteUserID, documentID)
	if err != nil {
		log.Printf("[link][kyc] submit failed billable=%s document_id=%s err=%v", ref, documentID, err)
		return entities.KYCDocument{}, &RemoteProviderError{Op: "submit kyc document", Err: err}
	}
	log.Printf("[link][kyc] submit success billable=%s document_id=%s status=%s", ref, doc.ID, doc.Status)
	return doc, nil
}

func (u *KYCUseCase) ListKYCDocuments(ctx context.Context, ref entities.BillableRef, filter entities.KYCDocumentFilter) ([]entities.KYCDocument, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return nil, err
	}
	docs, err := u.provider.ListKYCDocuments(ctx, remoteUserID, filter)
	if err != nil {
		return nil, &RemoteProviderError{Op: "list kyc documents", Err: err}
	}
	return docs, nil
}

// Mandates ------------------------------------------------------------------

type IMandateUseCase interface {
	CreateMandate(ctx context.Context, ref entities.BillableRef, mandate entities.Mandate) (entities.Mandate, error)
	GetMandate(ctx context.Context, ref entities.BillableRef, mandateID string) (entities.Mandate, error)
	CancelMandate(ctx context.Context, ref entities.BillableRef, mandateID string) (entities.Mandate, error)
	ListMandates(ctx context.Context, ref entities.BillableRef) ([]entities.Mandate, error)
	ListBankAccountMandates(ctx context.Context, ref entities.BillableRef, bankAccountID string) ([]entities.Mandate, error)
}

type MandateUseCase struct {
	links    interfaces.ILinkLookup
	provider interfaces.IMandateProvider
	defaults CapabilityDefaults
}

var _ IMandateUseCase = (*MandateUseCase)(nil)

func NewMandateUseCase(links interfaces.ILinkLookup, provider interfaces.IMandateProvider, defaults CapabilityDefaults) *MandateUseCase {
	return &MandateUseCase{links: links, provider: provider, defaults: defaults}
}

func (u *MandateUseCase) CreateMandate(ctx context.Context, ref entities.BillableRef, m entities.Mandate) (entities.Mandate, error) {
	if strings.TrimSpace(m.BankAccountID) == "" {
		return entities.Mandate{}, &ValidationError{Field: "BankAccountId", Rule: "required"}
	}
	if _, err := remoteUserIDFor(ctx, u.links, ref); err != nil {
		return entities.Mandate{}, err
	}
	if strings.TrimSpace(m.Culture) == "" {
		m.Culture = u.defaults.MandateCulture
	}
	if strings.TrimSpace(m.ReturnURL) == "" {
		m.ReturnURL = u.defaults.MandateReturnURL
	}
	if m.ReturnURL == "" {
		return entities.Mandate{}, &ValidationError{Field: "ReturnURL", Rule: "required"}
	}

	log.Printf("[link][mandate] create start billable=%s bank_account_id=%s", ref, m.BankAccountID)
	created, err := u.provider.CreateMandate(ctx, m)
	if err != nil {
		log.Printf("[link][mandate] create failed billable=%s err=%v", ref, err)
		return entities.Mandate{}, &RemoteProviderError{Op: "create mandate", Err: err}
	}
	return created, nil
}

// GetMandate reads a mandate owned by the billable's remote user.
func (u *MandateUseCase) GetMandate(ctx context.Context, ref entities.BillableRef, mandateID string) (entities.Mandate, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return entities.Mandate{}, err
	}
	return u.ownedMandate(ctx, ref, remoteUserID, mandateID)
}

// CancelMandate cancels a mandate owned by the billable's remote user.
func (u *MandateUseCase) CancelMandate(ctx context.Context, ref entities.BillableRef, mandateID string) (entities.Mandate, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return entities.Mandate{}, err
	}
	if _, err := u.ownedMandate(ctx, ref, remoteUserID, mandateID); err != nil {
		return entities.Mandate{}, err
	}
	cancelled, err := u.provider.CancelMandate(ctx, mandateID)
	if err != nil {
		log.Printf("[link][mandate] cancel failed billable=%s mandate_id=%s err=%v", ref, mandateID, err)
		return entities.Mandate{}, &RemoteProviderError{Op: "cancel mandate", Err: err}
	}
	log.Printf("[link][mandate] cancel success billable=%s mandate_id=%s status=%s", ref, mandateID, cancelled.Status)
	return cancelled, nil
}

func (u *MandateUseCase) ownedMandate(ctx context.Context, ref entities.BillableRef, remoteUserID, mandateID string) (entities.Mandate, error) {
	if strings.TrimSpace(mandateID) == "" {
		return entities.Mandate{}, &ValidationError{Field: "MandateId", Rule: "required"}
	}
	m, err := u.provider.GetMandate(ctx, mandateID)
	if err != nil {
		return entities.Mandate{}, &RemoteProviderError{Op: "get mandate", Err: err}
	}
	if m.UserID != remoteUserID {
		log.Printf("[link][mandate] access refused billable=%s mandate_id=%s owner=%s", ref, mandateID, m.UserID)
		return entities.Mandate{}, fmt.Errorf("%w: %s", ErrMandateNotOwned, mandateID)
	}
	return m, nil
}

func (u *MandateUseCase) ListMandates(ctx context.Context, ref entities.BillableRef) ([]entities.Mandate, error) {
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return nil, err
	}
	mandates, err := u.provider.ListMandates(ctx, remoteUserID)
	if err != nil {
		return nil, &RemoteProviderError{Op: "list mandates", Err: err}
	}
	return mandates, nil
}

func (u *MandateUseCase) ListBankAccountMandates(ctx context.Context, ref entities.BillableRef, bankAccountID string) ([]entities.Mandate, error) {
	if strings.TrimSpace(bankAccountID) == "" {
		return nil, &ValidationError{Field: "BankAccountId", Rule: "required"}
	}
	remoteUserID, err := remoteUserIDFor(ctx, u.links, ref)
	if err != nil {
		return nil, err
	}
	mandates, err := u.provider.ListBankAccountMandates(ctx, remoteUserID, bankAccountID)
	if err != nil {
		return nil, &RemoteProviderError{Op: "list bank account mandates", Err: err}
	}
	return mandates, nil
}
