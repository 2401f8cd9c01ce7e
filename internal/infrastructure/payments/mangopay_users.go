package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"
)

var ErrMissingRemoteUserID = errors.New("update payload has no Id")

var _ interfaces.IIdentityProvider = (*MangoPayClient)(nil)

// mangoPayUser is the subset of the user resource the link caches.
type mangoPayUser struct {
	ID                         string `json:"Id"`
	PersonType                 string `json:"PersonType"`
	Email                      string `json:"Email"`
	KYCLevel                   string `json:"KYCLevel"`
	UserCategory               string `json:"UserCategory"`
	TermsAndConditionsAccepted bool   `json:"TermsAndConditionsAccepted"`
}

func (u mangoPayUser) identity(raw json.RawMessage) entities.RemoteIdentity {
	return entities.RemoteIdentity{
		ID:         u.ID,
		PersonType: entities.PersonType(u.PersonType),
		Email:      u.Email,
		Status: entities.RemoteStatus{
			KYCLevel:      u.KYCLevel,
			UserCategory:  u.UserCategory,
			TermsAccepted: u.TermsAndConditionsAccepted,
		},
		Raw: raw,
	}
}

func userCollection(personType entities.PersonType) string {
	if personType == entities.PersonTypeNatural {
		return "natural"
	}
	return "legal"
}

func (c *MangoPayClient) CreateUser(ctx context.Context, personType entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error) {
	log.Printf("[link][mangopay] create user start person_type=%s payload_len=%d", personType, len(requestPayload))
	identity, err := c.sendUser(ctx, http.MethodPost, c.path("users", userCollection(personType)), requestPayload)
	if err != nil {
		return entities.RemoteIdentity{}, err
	}
	log.Printf("[link][mangopay] create user success remote_user_id=%s kyc_level=%s", identity.ID, identity.Status.KYCLevel)
	return identity, nil
}

// UpdateUser PUTs the payload to the user named by its "Id" key.
func (c *MangoPayClient) UpdateUser(ctx context.Context, personType entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error) {
	var target struct {
		ID string `json:"Id"`
	}
	if err := json.Unmarshal(requestPayload, &target); err != nil {
		return entities.RemoteIdentity{}, fmt.Errorf("decode update payload: %w", err)
	}
	if strings.TrimSpace(target.ID) == "" {
		return entities.RemoteIdentity{}, ErrMissingRemoteUserID
	}
	log.Printf("[link][mangopay] update user start remote_user_id=%s person_type=%s", target.ID, personType)
	return c.sendUser(ctx, http.MethodPut, c.path("users", userCollection(personType), target.ID), requestPayload)
}

func (c *MangoPayClient) GetUser(ctx context.Context, remoteUserID string) (entities.RemoteIdentity, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.path("users", remoteUserID), nil, nil, &raw); err != nil {
		return entities.RemoteIdentity{}, err
	}
	return decodeUser(raw)
}

func (c *MangoPayClient) sendUser(ctx context.Context, method, path string, payload json.RawMessage) (entities.RemoteIdentity, error) {
	var raw json.RawMessage
	if err := c.do(ctx, method, path, nil, payload, &raw); err != nil {
		return entities.RemoteIdentity{}, err
	}
	return decodeUser(raw)
}

func decodeUser(raw json.RawMessage) (entities.RemoteIdentity, error) {
	var u mangoPayUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return entities.RemoteIdentity{}, fmt.Errorf("decode mangopay user: %w", err)
	}
	return u.identity(raw), nil
}
