package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	request "mangopay_billable/internal/adapter/http/dto/request"
	response "mangopay_billable/internal/adapter/http/dto/response"
	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RemoteUserHandler exposes the reconciliation of a billable with its remote
// user, plus the link lookups.

type RemoteUserHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewRemoteUserHandler(uc usecase.IReconciliationUseCase) *RemoteUserHandler {
	return &RemoteUserHandler{usecase: uc}
}

type reconcileFunc func(ctx context.Context, billable entities.Billable, overrides map[string]any) (entities.RemoteIdentity, error)

// CreateOrUpdate creates the remote user when the billable is unlinked and
// updates it otherwise.
func (h *RemoteUserHandler) CreateOrUpdate(c *gin.Context) {
	h.reconcile(c, "create-or-update", http.StatusOK, h.usecase.CreateOrUpdate)
}

func (h *RemoteUserHandler) Create(c *gin.Context) {
	h.reconcile(c, "create", http.StatusCreated, h.usecase.Create)
}

func (h *RemoteUserHandler) Update(c *gin.Context) {
	h.reconcile(c, "update", http.StatusOK, h.usecase.Update)
}

func (h *RemoteUserHandler) reconcile(c *gin.Context, op string, okStatus int, run reconcileFunc) {
	payload, err := readRemoteUserRequest(c)
	if err != nil {
		log.Printf("[link][handler] %s invalid payload type=%s id=%s err=%v", op, c.Param("type"), c.Param("id"), err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	billable := payload.Billable(c.Param("type"), c.Param("id"))
	log.Printf("[link][handler] %s start billable=%s", op, billable.Ref)

	remote, err := run(c.Request.Context(), billable, payload.LinkData)
	if err != nil {
		log.Printf("[link][handler] %s failed billable=%s err=%v", op, billable.Ref, err)
		respondError(c, err)
		return
	}
	log.Printf("[link][handler] %s success billable=%s remote_user_id=%s", op, billable.Ref, remote.ID)
	c.JSON(okStatus, response.FromRemoteIdentity(remote))
}

// GetRemoteUser reads the linked remote user from the provider.
func (h *RemoteUserHandler) GetRemoteUser(c *gin.Context) {
	remote, err := h.usecase.RemoteUser(c.Request.Context(), billableRef(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRemoteIdentity(remote))
}

func (h *RemoteUserHandler) GetLink(c *gin.Context) {
	link, err := h.usecase.GetLink(c.Request.Context(), billableRef(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIdentityLink(link))
}

func (h *RemoteUserHandler) GetLinkByRemoteID(c *gin.Context) {
	link, err := h.usecase.GetByRemoteID(c.Request.Context(), strings.TrimSpace(c.Param("remote_id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIdentityLink(link))
}

func billableRef(c *gin.Context) entities.BillableRef {
	return entities.BillableRef{Type: c.Param("type"), ID: c.Param("id")}.Normalize()
}

// readRemoteUserRequest accepts an empty body as "no data, no overrides".
func readRemoteUserRequest(c *gin.Context) (request.RemoteUserRequest, error) {
	var payload request.RemoteUserRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
