package request

import (
	"encoding/base64"
	"errors"
	"strings"

	"mangopay_billable/internal/domain/entities"
)

var (
	ErrInvalidKYCFile = errors.New("kyc page file must be base64")
)

// RemoteUserRequest carries the billable's own data and the caller overrides
// merged on top of it.
//
//	{"billable_data": {"Name": "Acme", ...}, "link_data": {"Email": "..."}}
type RemoteUserRequest struct {
	BillableData map[string]any `json:"billable_data"`
	LinkData     map[string]any `json:"link_data"`
}

// Billable builds the request-scoped billable for the route's type and id.
func (r RemoteUserRequest) Billable(billableType, billableID string) entities.BillableRecord {
	return entities.BillableRecord{
		Ref:  entities.BillableRef{Type: billableType, ID: billableID}.Normalize(),
		Data: r.BillableData,
	}
}

type WalletRequest struct {
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Tag         string `json:"tag"`
}

func (r WalletRequest) ToEntity() entities.Wallet {
	return entities.Wallet{
		Description: strings.TrimSpace(r.Description),
		Currency:    strings.TrimSpace(r.Currency),
		Tag:         strings.TrimSpace(r.Tag),
	}
}

type AddressRequest struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

func (r AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		AddressLine1: strings.TrimSpace(r.AddressLine1),
		AddressLine2: strings.TrimSpace(r.AddressLine2),
		City:         strings.TrimSpace(r.City),
		Region:       strings.TrimSpace(r.Region),
		PostalCode:   strings.TrimSpace(r.PostalCode),
		Country:      strings.ToUpper(strings.TrimSpace(r.Country)),
	}
}

type BankAccountRequest struct {
	OwnerName    string         `json:"owner_name" binding:"required"`
	OwnerAddress AddressRequest `json:"owner_address"`
	IBAN         string         `json:"iban" binding:"required"`
	BIC          string         `json:"bic"`
	Tag          string         `json:"tag"`
}

func (r BankAccountRequest) ToEntity() entities.BankAccount {
	return entities.BankAccount{
		Tag:          strings.TrimSpace(r.Tag),
		OwnerName:    strings.TrimSpace(r.OwnerName),
		OwnerAddress: r.OwnerAddress.ToEntity(),
		IBAN:         r.IBAN,
		BIC:          strings.TrimSpace(r.BIC),
	}
}

type KYCDocumentRequest struct {
	Type string `json:"type"`
}

// KYCPageRequest holds one page of a document, base64 encoded.
type KYCPageRequest struct {
	File string `json:"file" binding:"required"`
}

func (r KYCPageRequest) Decode() ([]byte, error) {
	file, err := base64.StdEncoding.DecodeString(strings.TrimSpace(r.File))
	if err != nil {
		return nil, ErrInvalidKYCFile
	}
	return file, nil
}

type MandateRequest struct {
	BankAccountID string `json:"bank_account_id" binding:"required"`
	Culture       string `json:"culture"`
	ReturnURL     string `json:"return_url"`
}

func (r MandateRequest) ToEntity() entities.Mandate {
	return entities.Mandate{
		BankAccountID: strings.TrimSpace(r.BankAccountID),
		Culture:       strings.ToUpper(strings.TrimSpace(r.Culture)),
		ReturnURL:     strings.TrimSpace(r.ReturnURL),
	}
}
