package response

import (
	"encoding/json"
	"time"

	"mangopay_billable/internal/domain/entities"
)

type RemoteStatusResponse struct {
	KYCLevel      string `json:"kyc_level"`
	UserCategory  string `json:"user_category"`
	TermsAccepted bool   `json:"terms_accepted"`
}

func fromStatus(s entities.RemoteStatus) RemoteStatusResponse {
	return RemoteStatusResponse{KYCLevel: s.KYCLevel, UserCategory: s.UserCategory, TermsAccepted: s.TermsAccepted}
}

type LinkResponse struct {
	ID           string               `json:"id"`
	BillableType string               `json:"billable_type"`
	BillableID   string               `json:"billable_id"`
	RemoteUserID string               `json:"remote_user_id"`
	PersonType   string               `json:"person_type"`
	Status       RemoteStatusResponse `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func FromIdentityLink(l entities.IdentityLink) LinkResponse {
	return LinkResponse{
		ID:           l.ID,
		BillableType: l.BillableType,
		BillableID:   l.BillableID,
		RemoteUserID: l.RemoteUserID,
		PersonType:   string(l.PersonType),
		Status:       fromStatus(l.Status),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

type RemoteUserResponse struct {
	RemoteUserID string               `json:"remote_user_id"`
	PersonType   string               `json:"person_type"`
	Email        string               `json:"email,omitempty"`
	Status       RemoteStatusResponse `json:"status"`
	Remote       json.RawMessage      `json:"remote,omitempty"`
}

func FromRemoteIdentity(u entities.RemoteIdentity) RemoteUserResponse {
	r := RemoteUserResponse{
		RemoteUserID: u.ID,
		PersonType:   string(u.PersonType),
		Email:        u.Email,
		Status:       fromStatus(u.Status),
	}
	if json.Valid(u.Raw) {
		r.Remote = u.Raw
	}
	return r
}
