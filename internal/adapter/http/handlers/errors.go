package handlers

import (
	"errors"
	"log"
	"net/http"

	"mangopay_billable/internal/infrastructure/payments"
	"mangopay_billable/internal/usecase"
	"mangopay_billable/internal/usecase/interfaces"
	"mangopay_billable/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func respondError(c *gin.Context, err error) {
	appErr := mapLinkError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapLinkError(err error) *pkg.AppError {
	var (
		validationErr *usecase.ValidationError
		orphanErr     *usecase.OrphanedRemoteUserError
		remoteErr     *usecase.RemoteProviderError
	)
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_REMOTE_USER_DATA", "Invalid remote user data", err, http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"field": validationErr.Field, "rule": validationErr.Rule})
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REMOTE_USER_DATA", "Invalid remote user data", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidBillable), errors.Is(err, usecase.ErrUnknownBillableType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyLinked), errors.Is(err, interfaces.ErrDuplicateLink):
		appErr := pkg.NewDomainErrorSimple("ALREADY_LINKED", "Billable already linked to a remote user", http.StatusConflict)
		if errors.As(err, &orphanErr) {
			log.Printf("[link][handler] orphaned remote user billable=%s remote_user_id=%s", orphanErr.Ref, orphanErr.RemoteUserID)
			appErr.WithDetails(map[string]any{"remote_user_id": orphanErr.RemoteUserID})
		}
		return appErr
	case errors.Is(err, usecase.ErrLinkNotFound):
		return pkg.NewDomainErrorSimple("LINK_NOT_FOUND", "Remote user link not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMandateNotOwned):
		return pkg.NewDomainErrorSimple("MANDATE_NOT_OWNED", "Mandate not owned by billable", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProviderNotConfigured):
		return pkg.NewDomainErrorSimple("REMOTE_PROVIDER_NOT_CONFIGURED", "Remote provider not configured", http.StatusServiceUnavailable)
	case errors.As(err, &orphanErr):
		log.Printf("[link][handler] orphaned remote user billable=%s remote_user_id=%s", orphanErr.Ref, orphanErr.RemoteUserID)
		return pkg.NewDomainError("ORPHANED_REMOTE_USER", "Remote user created but link not persisted", err, http.StatusInternalServerError).
			WithDetails(map[string]any{"remote_user_id": orphanErr.RemoteUserID})
	case errors.As(err, &remoteErr):
		return remoteProviderError(remoteErr)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func remoteProviderError(err *usecase.RemoteProviderError) *pkg.AppError {
	appErr := pkg.NewDomainError("REMOTE_PROVIDER_ERROR", "Remote provider error", err, http.StatusBadGateway).
		WithDetails(map[string]any{"operation": err.Op})

	var apiErr *payments.APIError
	if !errors.As(err, &apiErr) {
		return appErr
	}
	details := map[string]any{"status": apiErr.StatusCode}
	if apiErr.Type != "" {
		details["type"] = apiErr.Type
	}
	if apiErr.Message != "" {
		details["message"] = apiErr.Message
	}
	if len(apiErr.Errors) > 0 {
		details["errors"] = apiErr.Errors
	}
	return appErr.WithDetails(details)
}
