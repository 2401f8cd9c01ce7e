package entities

import (
	"strings"
	"time"
)

// PersonType mirrors which remote user payload shape was used (MangoPay
// "PersonType").

type PersonType string

const (
	PersonTypeNatural PersonType = "NATURAL"
	PersonTypeLegal   PersonType = "LEGAL"
)

// ParsePersonType accepts NATURAL/LEGAL in any case.
func ParsePersonType(v string) (PersonType, bool) {
	switch PersonType(strings.ToUpper(strings.TrimSpace(v))) {
	case PersonTypeNatural:
		return PersonTypeNatural, true
	case PersonTypeLegal:
		return PersonTypeLegal, true
	}
	return "", false
}

// RemoteStatus holds the remote user fields cached on the link.
//
// They are read-only mirrors: refreshed after create/update only, never live.

type RemoteStatus struct {
	KYCLevel      string `json:"kyc_level"`
	UserCategory  string `json:"user_category"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// IdentityLink is the stored association between a billable and its remote
// MangoPay user.
//
// Storage model (DynamoDB):
//   - PK: billable_key ("<billable_type>#<billable_id>")
//   - GSI1 (remote_user_id-index): remote_user_id
//
// Storage model (Postgres):
//   - UNIQUE (billable_type, billable_id)
//   - INDEX remote_user_id
//
// RemoteUserID is assigned once, at creation, and never rewritten.

type IdentityLink struct {
	ID           string       `json:"id"`
	BillableType string       `json:"billable_type"`
	BillableID   string       `json:"billable_id"`
	RemoteUserID string       `json:"remote_user_id"`
	PersonType   PersonType   `json:"person_type"`
	Status       RemoteStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Ref returns the tagged reference of the owning billable.
func (l IdentityLink) Ref() BillableRef {
	return BillableRef{Type: l.BillableType, ID: l.BillableID}
}

// Exists reports whether the value came back from a store lookup.
func (l IdentityLink) Exists() bool {
	return l.RemoteUserID != ""
}
