package entities

import "encoding/json"

// RemoteIdentity is the provider's view of a user after a create/update/get.
//
// Raw keeps the provider body for traceability, the same way payments keep
// their provider payload.

type RemoteIdentity struct {
	ID         string          `json:"id"`
	PersonType PersonType      `json:"person_type"`
	Email      string          `json:"email,omitempty"`
	Status     RemoteStatus    `json:"status"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}
