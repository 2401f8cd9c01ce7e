package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mangopay_billable/internal/adapter/http/handlers/mocks"
	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/infrastructure/payments"
	"mangopay_billable/internal/usecase"
	"mangopay_billable/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func remoteUserRouter(h *RemoteUserHandler) *gin.Engine {
	r := gin.New()
	r.PUT("/v1/billables/:type/:id/remote-user", h.CreateOrUpdate)
	r.POST("/v1/billables/:type/:id/remote-user", h.Create)
	r.PATCH("/v1/billables/:type/:id/remote-user", h.Update)
	r.GET("/v1/billables/:type/:id/remote-user", h.GetRemoteUser)
	r.GET("/v1/billables/:type/:id/link", h.GetLink)
	r.GET("/v1/links/remote/:remote_id", h.GetLinkByRemoteID)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestRemoteUserHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPost, "/v1/billables/Organization/42/remote-user", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)

		expected := entities.BillableRecord{
			Ref:  entities.BillableRef{Type: "Organization", ID: "42"},
			Data: map[string]any{"Name": "Acme"},
		}
		uc.EXPECT().Create(gomock.Any(), expected, map[string]any{"Email": "billing@acme.test"}).
			Return(entities.RemoteIdentity{ID: "user_1", PersonType: entities.PersonTypeLegal, Status: entities.RemoteStatus{KYCLevel: "LIGHT"}}, nil)

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPost, "/v1/billables/Organization/42/remote-user",
			`{"billable_data":{"Name":"Acme"},"link_data":{"Email":"billing@acme.test"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["remote_user_id"] != "user_1" || body["person_type"] != "LEGAL" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("already linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.RemoteIdentity{}, fmt.Errorf("%w: %w", usecase.ErrAlreadyLinked, interfaces.ErrDuplicateLink))

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPost, "/v1/billables/Organization/42/remote-user", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("lost concurrent create reports orphan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.RemoteIdentity{}, &usecase.OrphanedRemoteUserError{
				Ref:          entities.BillableRef{Type: "Organization", ID: "42"},
				RemoteUserID: "user_2",
				Err:          interfaces.ErrDuplicateLink,
			})

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPost, "/v1/billables/Organization/42/remote-user", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["remote_user_id"] != "user_2" {
			t.Fatalf("expected orphaned remote_user_id in details, got %s", w.Body.String())
		}
	})
}

func TestRemoteUserHandler_CreateOrUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().CreateOrUpdate(gomock.Any(), entities.BillableRecord{Ref: entities.BillableRef{Type: "User", ID: "7"}}, gomock.Nil()).
			Return(entities.RemoteIdentity{ID: "user_7"}, nil)

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPut, "/v1/billables/User/7/remote-user", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.RemoteIdentity{}, &usecase.ValidationError{Field: "Email", Rule: "email"})

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPut, "/v1/billables/User/7/remote-user", `{"link_data":{"Email":"nope"}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["field"] != "Email" || details["rule"] != "email" {
			t.Fatalf("unexpected details %v", details)
		}
	})

	t.Run("remote provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		apiErr := &payments.APIError{StatusCode: 400, Type: "param_error", Errors: map[string]string{"Email": "The Email field is required."}}
		uc.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.RemoteIdentity{}, &usecase.RemoteProviderError{Op: "create user", Err: apiErr})

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPut, "/v1/billables/User/7/remote-user", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["type"] != "param_error" || details["operation"] != "create user" {
			t.Fatalf("unexpected details %v", details)
		}
	})
}

func TestRemoteUserHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReconciliationUseCase(ctrl)
	uc.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RemoteIdentity{}, fmt.Errorf("%w: Organization#42", usecase.ErrLinkNotFound))

	w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodPatch, "/v1/billables/Organization/42/remote-user", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRemoteUserHandler_Lookups(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	link := entities.IdentityLink{ID: "link-1", BillableType: "Organization", BillableID: "42", RemoteUserID: "user_1", CreatedAt: now, UpdatedAt: now}

	t.Run("link by billable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().GetLink(gomock.Any(), entities.BillableRef{Type: "Organization", ID: "42"}).Return(link, nil)

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodGet, "/v1/billables/Organization/42/link", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["remote_user_id"] != "user_1" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("link by remote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().GetByRemoteID(gomock.Any(), "user_1").Return(link, nil)

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodGet, "/v1/links/remote/user_1", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["billable_id"] != "42" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("remote user provider not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().RemoteUser(gomock.Any(), gomock.Any()).Return(entities.RemoteIdentity{}, usecase.ErrProviderNotConfigured)

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodGet, "/v1/billables/Organization/42/remote-user", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		uc.EXPECT().GetLink(gomock.Any(), gomock.Any()).Return(entities.IdentityLink{}, errors.New("dynamodb: throttled"))

		w := serve(remoteUserRouter(NewRemoteUserHandler(uc)), http.MethodGet, "/v1/billables/Organization/42/link", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
