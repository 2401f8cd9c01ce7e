package usecase

import (
	"errors"
	"fmt"

	"mangopay_billable/internal/domain/entities"
)

var (
	ErrInvalidBillable       = errors.New("invalid billable reference")
	ErrAlreadyLinked         = errors.New("billable already linked to a remote user")
	ErrLinkNotFound          = errors.New("remote user link not found")
	ErrValidation            = errors.New("invalid remote user data")
	ErrMandateNotOwned       = errors.New("mandate not owned by billable")
	ErrUnknownBillableType   = errors.New("unknown billable type")
	ErrProviderNotConfigured = errors.New("remote provider not configured")
	errEmptyRemoteUserID     = errors.New("provider returned an empty user id")
)

// ValidationError names the first field of the merged data that failed a
// rule. The remote provider is never called when it is returned.

type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q failed %q", ErrValidation, e.Field, e.Rule)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RemoteProviderError wraps a failed provider call. The provider error stays
// reachable through errors.As/errors.Is.

type RemoteProviderError struct {
	Op  string
	Err error
}

func (e *RemoteProviderError) Error() string {
	return fmt.Sprintf("remote provider %s failed: %v", e.Op, e.Err)
}

func (e *RemoteProviderError) Unwrap() error {
	return e.Err
}

// OrphanedRemoteUserError reports a remote user that was created while its
// link could not be persisted. RemoteUserID must be reconciled by hand or by
// a later job; nothing here deletes it.

type OrphanedRemoteUserError struct {
	Ref          entities.BillableRef
	RemoteUserID string
	Err          error
}

func (e *OrphanedRemoteUserError) Error() string {
	return fmt.Sprintf("remote user %s created for %s but link not persisted: %v", e.RemoteUserID, e.Ref, e.Err)
}

func (e *OrphanedRemoteUserError) Unwrap() error {
	return e.Err
}

func linkNotFound(ref entities.BillableRef) error {
	return fmt.Errorf("%w: %s", ErrLinkNotFound, ref)
}
