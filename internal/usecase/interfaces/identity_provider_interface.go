package interfaces

import (
	"context"
	"encoding/json"

	"mangopay_billable/internal/domain/entities"
)

// IIdentityProvider abstracts the remote payments provider user API
// (MangoPay, or Mercado Pago customers).
//
// requestPayload is the validated NATURAL/LEGAL body. Update payloads always
// carry the remote "Id".
type IIdentityProvider interface {
	CreateUser(ctx context.Context, personType entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error)
	UpdateUser(ctx context.Context, personType entities.PersonType, requestPayload json.RawMessage) (entities.RemoteIdentity, error)
	GetUser(ctx context.Context, remoteUserID string) (entities.RemoteIdentity, error)
}
