package response

import "mangopay_billable/internal/domain/entities"

type MoneyResponse struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type WalletResponse struct {
	ID          string         `json:"id"`
	Owners      []string       `json:"owners"`
	Description string         `json:"description"`
	Currency    string         `json:"currency"`
	Tag         string         `json:"tag,omitempty"`
	Balance     *MoneyResponse `json:"balance,omitempty"`
}

func FromWallet(w entities.Wallet) WalletResponse {
	r := WalletResponse{ID: w.ID, Owners: w.Owners, Description: w.Description, Currency: w.Currency, Tag: w.Tag}
	if w.Balance != nil {
		r.Balance = &MoneyResponse{Currency: w.Balance.Currency, Amount: w.Balance.Amount}
	}
	return r
}

func FromWallets(ws []entities.Wallet) []WalletResponse {
	out := make([]WalletResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWallet(w))
	}
	return out
}

type BankAccountResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Tag       string `json:"tag,omitempty"`
	OwnerName string `json:"owner_name"`
	IBAN      string `json:"iban"`
	BIC       string `json:"bic,omitempty"`
	Active    bool   `json:"active"`
}

func FromBankAccount(a entities.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      a.Type,
		Tag:       a.Tag,
		OwnerName: a.OwnerName,
		IBAN:      a.IBAN,
		BIC:       a.BIC,
		Active:    a.Active,
	}
}

func FromBankAccounts(as []entities.BankAccount) []BankAccountResponse {
	out := make([]BankAccountResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromBankAccount(a))
	}
	return out
}

type KYCDocumentResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	RefusedReason string `json:"refused_reason,omitempty"`
	CreationDate  int64  `json:"creation_date,omitempty"`
}

func FromKYCDocument(d entities.KYCDocument) KYCDocumentResponse {
	return KYCDocumentResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Type:          d.Type,
		Status:        string(d.Status),
		RefusedReason: d.RefusedReason,
		CreationDate:  d.CreationDate,
	}
}

func FromKYCDocuments(ds []entities.KYCDocument) []KYCDocumentResponse {
	out := make([]KYCDocumentResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromKYCDocument(d))
	}
	return out
}

type MandateResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	BankAccountID string `json:"bank_account_id"`
	Culture       string `json:"culture,omitempty"`
	ReturnURL     string `json:"return_url,omitempty"`
	RedirectURL   string `json:"redirect_url,omitempty"`
	Status        string `json:"status"`
}

func FromMandate(m entities.Mandate) MandateResponse {
	return MandateResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		BankAccountID: m.BankAccountID,
		Culture:       m.Culture,
		ReturnURL:     m.ReturnURL,
		RedirectURL:   m.RedirectURL,
		Status:        m.Status,
	}
}

func FromMandates(ms []entities.Mandate) []MandateResponse {
	out := make([]MandateResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMandate(m))
	}
	return out
}
