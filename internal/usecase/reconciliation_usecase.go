package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Outcomes reported to IReconciliationMetrics.
const (
	OutcomeSuccess        = "success"
	OutcomeValidation     = "validation_error"
	OutcomeRemoteFailure  = "remote_error"
	OutcomeConflict       = "conflict"
	OutcomeNotFound       = "not_found"
	OutcomeStoreFailure   = "store_error"
	OperationCreate       = "create"
	OperationUpdate       = "update"
	OperationCreateUpdate = "create_or_update"
)

// IReconciliationUseCase keeps a billable and its remote user in sync.
//
//   - UNLINKED -> LINKED on a successful Create
//   - LINKED -> LINKED on a successful Update (cache refresh + touch)
//   - nothing here goes back to UNLINKED

type IReconciliationUseCase interface {
	CreateOrUpdate(ctx context.Context, billable entities.Billable, overrides map[string]any) (entities.RemoteIdentity, error)
	Create(ctx context.Context, billable entities.Billable, overrides map[string]any) (entities.RemoteIdentity, error)
	Update(ctx context.Context, billable entities.Billable, overrides map[string]any) (entities.RemoteIdentity, error)
	GetLink(ctx context.Context, ref entities.BillableRef) (entities.IdentityLink, error)
	GetByRemoteID(ctx context.Context, remoteUserID string) (entities.IdentityLink, error)
	RemoteUser(ctx context.Context, ref entities.BillableRef) (entities.RemoteIdentity, error)
	ResolveBillable(ctx context.Context, remoteUserID string) (entities.Billable, error)
}

type ReconciliationUseCase struct {
	repo        interfaces.IIdentityLinkRepository
	provider    interfaces.IIdentityProvider
	personTypes PersonTypes
	registry    *BillableRegistry
	metrics     interfaces.IReconciliationMetrics
	now         func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

type ReconciliationOption func(*ReconciliationUseCase)

func WithPersonTypes(p PersonTypes) ReconciliationOption {
	return func(u *ReconciliationUseCase) {
		u.personTypes = p
	}
}

// WithBillableRegistry enables ResolveBillable. The HTTP service keeps no
// local entities and never sets it; programs embedding the use case register
// a resolver per billable type they own.
func WithBillableRegistry(r *BillableRegistry) ReconciliationOption {
	return func(u *ReconciliationUseCase) {
		u.registry = r
	}
}

func WithMetrics(m interfaces.IReconciliationMetrics) ReconciliationOption {
	return func(u *ReconciliationUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

// WithClock sets the time source used for link timestamps.
func WithClock(now func() time.Time) ReconciliationOption {
	return func(u *ReconciliationUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

func NewReconciliationUseCase(repo interfaces.IIdentityLinkRepository, provider interfaces.IIdentityProvider, opts ...ReconciliationOption) *ReconciliationUseCase {
	u := &ReconciliationUseCase{
		repo:     repo,
		provider: provider,
		metrics:  nopMetrics{},
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}
	return u
}

func (u *ReconciliationUseCase) CreateOrUpdate(ctx context.Context, billable entities.Billable, overrides map[string]any) (entities.RemoteIdentity, error) {
	ref, err := refOf(billable)
	if err != nil {
		return entities.RemoteIdentity{}, err
	}
	link, err := u.repo.FindByBillable(ctx, ref)
	if err != nil {
		log.Printf("[link][usecase] create-or-update lookup failed billable=%s err=%v", ref, err)
		u.metrics.ObserveReconciliation(OperationCreateUpdate, OutcomeStoreFailure)
		return entities.RemoteIdentity{}, err
	}
	if link.Exists() {
		log.Printf("[link][usecase] create-or-update billable=%s linked remote_user_id=%s; updating", ref, link.RemoteUserID)
		return u.Update(ctx, billable, overrides)
	}
	log.Printf("[link][usecase] create-or-update billable=%s unlinked; creating", ref)
	return u.Create(ctx, billable, overrides)
}

func (u *ReconciliationUseCase) Create(ctx context.Context, billable entities.Billable, overrides map[string]any) (entities.RemoteIdentity, error) {
	ref, err := refOf(billable)
	if err != nil {
		return entities.RemoteIdentity{}, err
	}
	log.Printf("[link][usecase] create start billable=%s overrides=%d", ref, len(overrides))
	if u.provider == nil {
		log.Printf("[link][usecase] provider not configured billable=%s", ref)
		return entities.RemoteIdentity{}, ErrProviderNotConfigured
	}

	existing, err := u.repo.FindByBillable(ctx, ref)
	if err != nil {
		log.Printf("[link][usecase] lookup failed billable=%s err=%v", ref, err)
		u.metrics.ObserveReconciliation(OperationCreate, OutcomeStoreFailure)
		return entities.RemoteIdentity{}, err
	}
	if existing.Exists() {
		log.Printf("[link][usecase] already linked billable=%s remote_user_id=%s", ref, existing.RemoteUserID)
		u.metrics.ObserveReconciliation(OperationCreate, OutcomeConflict)
		return entities.RemoteIdentity{}, fmt.Errorf("%w (%s): %w", ErrAlreadyLinked, ref, interfaces.ErrDuplicateLink)
	}

	personType := u.personTypes.For(ref.Type)
	data := mergeUserData(billable.RemoteUserData(), overrides)
	delete(data, remoteIDField)

	payload, err := buildUserPayload(personType, data)
	if err != nil {
		log.Printf("[link][usecase] invalid user data billable=%s person_type=%s err=%v", ref, personType, err)
		u.metrics.ObserveReconciliation(OperationCreate, OutcomeValidation)
		return entities.RemoteIdentity{}, err
	}

	log.Printf("[link][usecase] calling provider create billable=%s person_type=%s payload_len=%d", ref, personType, len(payload))
	remote, err := u.provider.CreateUser(ctx, personType, payload)
	if err == nil && remote.ID == "" {
		err = errEmptyRemoteUserID
	}
	if err != nil {
		log.Printf("[link][usecase] provider create failed billable=%s err=%v", ref, err)
		u.metrics.ObserveReconciliation(OperationCreate, OutcomeRemoteFailure)
		return entities.RemoteIdentity{}, &RemoteProviderError{Op: "create user", Err: err}
	}

	now := u.now().UTC().Truncate(time.Microsecond)
	link := entities.IdentityLink{
		ID:           uuid.NewString(),
		BillableType: ref.Type,
		BillableID:   ref.ID,
		RemoteUserID: remote.ID,
		PersonType:   personType,
		Status:       remote.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := u.repo.Create(ctx, link); err != nil {
		log.Printf("[link][usecase] link persistence failed; remote user orphaned billable=%s remote_user_id=%s err=%v", ref, remote.ID, err)
		u.metrics.IncOrphanedRemoteUser()
		u.metrics.ObserveReconciliation(OperationCreate, OutcomeStoreFailure)
		return entities.RemoteIdentity{}, &OrphanedRemoteUserError{Ref: ref, RemoteUserID: remote.ID, Err: err}
	}

	u.metrics.ObserveReconciliation(OperationCreate, OutcomeSuccess)
	log.Printf("[link][usecase] create success billable=%s remote_user_id=%s kyc_level=%s", ref, remote.ID, remote.Status.KYCLevel)
	return remote, nil
}

func (u *ReconciliationUseCase) Update(ctx context.Context, billable entities.Billable, overrides map[string]any) (entities.RemoteIdentity, error) {
	ref, err := refOf(billable)
	if err != nil {
		return entities.RemoteIdentity{}, err
	}
	log.Printf("[link][usecase] update start billable=%s overrides=%d", ref, len(overrides))
	if u.provider == nil {
		log.Printf("[link][usecase] provider not configured billable=%s", ref)
		return entities.RemoteIdentity{}, ErrProviderNotConfigured
	}

	link, err := u.repo.FindByBillable(ctx, ref)
	if err != nil {
		log.Printf("[link][usecase] lookup failed billable=%s err=%v", ref, err)
		u.metrics.ObserveReconciliation(OperationUpdate, OutcomeStoreFailure)
		return entities.RemoteIdentity{}, err
	}
	if !link.Exists() {
		log.Printf("[link][usecase] link not found billable=%s", ref)
		u.metrics.ObserveReconciliation(OperationUpdate, OutcomeNotFound)
		return entities.RemoteIdentity{}, linkNotFound(ref)
	}

	personType := link.PersonType
	if personType == "" {
		personType = u.personTypes.For(ref.Type)
	}
	data := mergeUserData(billable.RemoteUserData(), overrides)
	data[remoteIDField] = link.RemoteUserID

	payload, err := buildUserPayload(personType, data)
	if err != nil {
		log.Printf("[link][usecase] invalid user data billable=%s person_type=%s err=%v", ref, personType, err)
		u.metrics.ObserveReconciliation(OperationUpdate, OutcomeValidation)
		return entities.RemoteIdentity{}, err
	}

	log.Printf("[link][usecase] calling provider update billable=%s remote_user_id=%s payload_len=%d", ref, link.RemoteUserID, len(payload))
	remote, err := u.provider.UpdateUser(ctx, personType, payload)
	if err != nil {
		log.Printf("[link][usecase] provider update failed billable=%s remote_user_id=%s err=%v", ref, link.RemoteUserID, err)
		u.metrics.ObserveReconciliation(OperationUpdate, OutcomeRemoteFailure)
		return entities.RemoteIdentity{}, &RemoteProviderError{Op: "update user", Err: err}
	}

	touchedAt := nextTouch(u.now(), link.UpdatedAt)
	updated, err := u.repo.UpdateStatus(ctx, link, remote.Status, touchedAt)
	if err != nil {
		log.Printf("[link][usecase] link refresh failed billable=%s remote_user_id=%s err=%v", ref, link.RemoteUserID, err)
		u.metrics.ObserveReconciliation(OperationUpdate, OutcomeStoreFailure)
		return entities.RemoteIdentity{}, fmt.Errorf("refresh identity link %s: %w", ref, err)
	}
	if !updated.Exists() {
		log.Printf("[link][usecase] link vanished during update billable=%s", ref)
		u.metrics.ObserveReconciliation(OperationUpdate, OutcomeNotFound)
		return entities.RemoteIdentity{}, linkNotFound(ref)
	}

	u.metrics.ObserveReconciliation(OperationUpdate, OutcomeSuccess)
	log.Printf("[link][usecase] update success billable=%s remote_user_id=%s kyc_level=%s", ref, link.RemoteUserID, remote.Status.KYCLevel)
	return remote, nil
}

func (u *ReconciliationUseCase) GetLink(ctx context.Context, ref entities.BillableRef) (entities.IdentityLink, error) {
	ref = ref.Normalize()
	if ref.IsZero() {
		return entities.IdentityLink{}, ErrInvalidBillable
	}
	link, err := u.repo.FindByBillable(ctx, ref)
	if err != nil {
		return entities.IdentityLink{}, err
	}
	if !link.Exists() {
		return entities.IdentityLink{}, linkNotFound(ref)
	}
	return link, nil
}

func (u *ReconciliationUseCase) GetByRemoteID(ctx context.Context, remoteUserID string) (entities.IdentityLink, error) {
	if remoteUserID == "" {
		return entities.IdentityLink{}, ErrInvalidBillable
	}
	link, err := u.repo.FindByRemoteID(ctx, remoteUserID)
	if err != nil {
		return entities.IdentityLink{}, err
	}
	if !link.Exists() {
		return entities.IdentityLink{}, fmt.Errorf("%w: remote user %s", ErrLinkNotFound, remoteUserID)
	}
	return link, nil
}

// RemoteUser reads the linked user from the provider.
func (u *ReconciliationUseCase) RemoteUser(ctx context.Context, ref entities.BillableRef) (entities.RemoteIdentity, error) {
	link, err := u.GetLink(ctx, ref)
	if err != nil {
		return entities.RemoteIdentity{}, err
	}
	if u.provider == nil {
		return entities.RemoteIdentity{}, ErrProviderNotConfigured
	}
	remote, err := u.provider.GetUser(ctx, link.RemoteUserID)
	if err != nil {
		log.Printf("[link][usecase] provider get failed billable=%s remote_user_id=%s err=%v", link.Ref(), link.RemoteUserID, err)
		return entities.RemoteIdentity{}, &RemoteProviderError{Op: "get user", Err: err}
	}
	return remote, nil
}

// ResolveBillable follows a remote user id back to the local entity. Without
// a registry it fails with ErrUnknownBillableType.
func (u *ReconciliationUseCase) ResolveBillable(ctx context.Context, remoteUserID string) (entities.Billable, error) {
	link, err := u.GetByRemoteID(ctx, remoteUserID)
	if err != nil {
		return nil, err
	}
	return u.registry.Resolve(ctx, link.Ref())
}

func refOf(billable entities.Billable) (entities.BillableRef, error) {
	if billable == nil {
		return entities.BillableRef{}, ErrInvalidBillable
	}
	ref := billable.BillableRef().Normalize()
	if ref.IsZero() {
		return entities.BillableRef{}, ErrInvalidBillable
	}
	return ref, nil
}

// nextTouch returns a timestamp strictly after previous, at the microsecond
// precision every store keeps.
func nextTouch(now, previous time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if !now.After(previous) {
		return previous.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return now
}

type nopMetrics struct{}

func (nopMetrics) ObserveReconciliation(string, string) {}
func (nopMetrics) IncOrphanedRemoteUser()               {}

// IsRemoteProviderError reports whether err came from a failed provider call.
func IsRemoteProviderError(err error) bool {
	var rpe *RemoteProviderError
	return errors.As(err, &rpe)
}
