package entities

// Pass-through resources owned by a remote user. Field names follow the
// MangoPay API so provider adapters can marshal them directly.

type Address struct {
	AddressLine1 string `json:"AddressLine1" validate:"required"`
	AddressLine2 string `json:"AddressLine2,omitempty"`
	City         string `json:"City" validate:"required"`
	Region       string `json:"Region,omitempty"`
	PostalCode   string `json:"PostalCode" validate:"required"`
	Country      string `json:"Country" validate:"required,len=2"`
}

type Wallet struct {
	ID          string   `json:"Id,omitempty"`
	Owners      []string `json:"Owners"`
	Description string   `json:"Description"`
	Currency    string   `json:"Currency"`
	Tag         string   `json:"Tag,omitempty"`
	Balance     *Money   `json:"Balance,omitempty"`
}

type Money struct {
	Currency string `json:"Currency"`
	Amount   int64  `json:"Amount"`
}

// BankAccount is always created as IBAN, the only type the billables use.

type BankAccount struct {
	ID           string  `json:"Id,omitempty"`
	UserID       string  `json:"UserId,omitempty"`
	Type         string  `json:"Type"`
	Tag          string  `json:"Tag,omitempty"`
	OwnerName    string  `json:"OwnerName"`
	OwnerAddress Address `json:"OwnerAddress"`
	IBAN         string  `json:"IBAN"`
	BIC          string  `json:"BIC,omitempty"`
	Active       bool    `json:"Active,omitempty"`
}

const BankAccountTypeIBAN = "IBAN"

type KYCDocumentStatus string

const (
	KYCDocumentStatusCreated         KYCDocumentStatus = "CREATED"
	KYCDocumentStatusValidationAsked KYCDocumentStatus = "VALIDATION_ASKED"
	KYCDocumentStatusValidated       KYCDocumentStatus = "VALIDATED"
	KYCDocumentStatusRefused         KYCDocumentStatus = "REFUSED"
)

// Accepted KYC document types.
const (
	KYCIdentityProof          = "IDENTITY_PROOF"
	KYCRegistrationProof      = "REGISTRATION_PROOF"
	KYCArticlesOfAssociation  = "ARTICLES_OF_ASSOCIATION"
	KYCShareholderDeclaration = "SHAREHOLDER_DECLARATION"
	KYCAddressProof           = "ADDRESS_PROOF"
)

type KYCDocument struct {
	ID            string            `json:"Id,omitempty"`
	UserID        string            `json:"UserId,omitempty"`
	Type          string            `json:"Type"`
	Status        KYCDocumentStatus `json:"Status,omitempty"`
	RefusedReason string            `json:"RefusedReasonType,omitempty"`
	CreationDate  int64             `json:"CreationDate,omitempty"`
}

type KYCDocumentFilter struct {
	Type   string
	Status KYCDocumentStatus
}

type Mandate struct {
	ID            string `json:"Id,omitempty"`
	UserID        string `json:"UserId,omitempty"`
	BankAccountID string `json:"BankAccountId"`
	Culture       string `json:"Culture"`
	ReturnURL     string `json:"ReturnURL"`
	RedirectURL   string `json:"RedirectURL,omitempty"`
	Status        string `json:"Status,omitempty"`
}
