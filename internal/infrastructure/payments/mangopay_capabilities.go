package payments

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"net/url"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"
)

var _ interfaces.ICapabilityProvider = (*MangoPayClient)(nil)

func (c *MangoPayClient) CreateWallet(ctx context.Context, w entities.Wallet) (entities.Wallet, error) {
	var out entities.Wallet
	if err := c.do(ctx, http.MethodPost, c.path("wallets"), nil, w, &out); err != nil {
		return entities.Wallet{}, err
	}
	log.Printf("[link][mangopay] wallet created wallet_id=%s currency=%s", out.ID, out.Currency)
	return out, nil
}

func (c *MangoPayClient) ListWallets(ctx context.Context, remoteUserID string) ([]entities.Wallet, error) {
	return list[entities.Wallet](ctx, c, c.path("users", remoteUserID, "wallets"), nil)
}

func (c *MangoPayClient) CreateBankAccount(ctx context.Context, remoteUserID string, account entities.BankAccount) (entities.BankAccount, error) {
	var out entities.BankAccount
	if err := c.do(ctx, http.MethodPost, c.path("users", remoteUserID, "bankaccounts", "iban"), nil, account, &out); err != nil {
		return entities.BankAccount{}, err
	}
	return out, nil
}

func (c *MangoPayClient) ListBankAccounts(ctx context.Context, remoteUserID string) ([]entities.BankAccount, error) {
	return list[entities.BankAccount](ctx, c, c.path("users", remoteUserID, "bankaccounts"), nil)
}

func (c *MangoPayClient) CreateKYCDocument(ctx context.Context, remoteUserID, docType string) (entities.KYCDocument, error) {
	var out entities.KYCDocument
	body := map[string]string{"Type": docType}
	if err := c.do(ctx, http.MethodPost, c.path("users", remoteUserID, "kyc", "documents")+"/", nil, body, &out); err != nil {
		return entities.KYCDocument{}, err
	}
	return out, nil
}

// CreateKYCPage uploads one page; MangoPay wants the file base64 encoded.
func (c *MangoPayClient) CreateKYCPage(ctx context.Context, remoteUserID, documentID string, file []byte) error {
	body := map[string]string{"File": base64.StdEncoding.EncodeToString(file)}
	return c.do(ctx, http.MethodPost, c.path("users", remoteUserID, "kyc", "documents", documentID, "pages"), nil, body, nil)
}

func (c *MangoPayClient) SubmitKYCDocument(ctx context.Context, remoteUserID, documentID string) (entities.KYCDocument, error) {
	var out entities.KYCDocument
	body := map[string]entities.KYCDocumentStatus{"Status": entities.KYCDocumentStatusValidationAsked}
	if err := c.do(ctx, http.MethodPut, c.path("users", remoteUserID, "kyc", "documents", documentID), nil, body, &out); err != nil {
		return entities.KYCDocument{}, err
	}
	return out, nil
}

func (c *MangoPayClient) ListKYCDocuments(ctx context.Context, remoteUserID string, filter entities.KYCDocumentFilter) ([]entities.KYCDocument, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("Type", filter.Type)
	}
	if filter.Status != "" {
		q.Set("Status", string(filter.Status))
	}
	return list[entities.KYCDocument](ctx, c, c.path("users", remoteUserID, "kyc", "documents")+"/", q)
}

func (c *MangoPayClient) CreateMandate(ctx context.Context, m entities.Mandate) (entities.Mandate, error) {
	var out entities.Mandate
	if err := c.do(ctx, http.MethodPost, c.path("mandates", "directdebit", "web"), nil, m, &out); err != nil {
		return entities.Mandate{}, err
	}
	return out, nil
}

func (c *MangoPayClient) GetMandate(ctx context.Context, mandateID string) (entities.Mandate, error) {
	var out entities.Mandate
	if err := c.do(ctx, http.MethodGet, c.path("mandates", mandateID), nil, nil, &out); err != nil {
		return entities.Mandate{}, err
	}
	return out, nil
}

func (c *MangoPayClient) CancelMandate(ctx context.Context, mandateID string) (entities.Mandate, error) {
	var out entities.Mandate
	if err := c.do(ctx, http.MethodPut, c.path("mandates", mandateID, "cancel"), nil, struct{}{}, &out); err != nil {
		return entities.Mandate{}, err
	}
	return out, nil
}

func (c *MangoPayClient) ListMandates(ctx context.Context, remoteUserID string) ([]entities.Mandate, error) {
	return list[entities.Mandate](ctx, c, c.path("users", remoteUserID, "mandates"), nil)
}

func (c *MangoPayClient) ListBankAccountMandates(ctx context.Context, remoteUserID, bankAccountID string) ([]entities.Mandate, error) {
	return list[entities.Mandate](ctx, c, c.path("users", remoteUserID, "bankaccounts", bankAccountID, "mandates"), nil)
}
