package interfaces

import (
	"context"
	"errors"
	"time"

	"mangopay_billable/internal/domain/entities"
)

// ErrDuplicateLink is returned by Create when a link already exists for the
// billable. Stores must detect it atomically (conditional put / unique key).
var ErrDuplicateLink = errors.New("identity link already exists")

// ILinkLookup is the read side of the link store. Capabilities depend on it
// only.
//
// Lookups return a zero IdentityLink (Exists() == false) and a nil error when
// nothing matches.

type ILinkLookup interface {
	FindByBillable(ctx context.Context, ref entities.BillableRef) (entities.IdentityLink, error)
	FindByRemoteID(ctx context.Context, remoteUserID string) (entities.IdentityLink, error)
}

// IIdentityLinkRepository abstracts persistence for IdentityLink.
//
//   - Create inserts only if absent, otherwise ErrDuplicateLink
//   - UpdateStatus rewrites the cached status and updated_at of the link whose
//     billable AND remote user id match; zero value when none did

type IIdentityLinkRepository interface {
	ILinkLookup
	Create(ctx context.Context, link entities.IdentityLink) (entities.IdentityLink, error)
	UpdateStatus(ctx context.Context, link entities.IdentityLink, status entities.RemoteStatus, touchedAt time.Time) (entities.IdentityLink, error)
}
