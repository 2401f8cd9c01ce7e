package handlers

import (
	"log"
	"net/http"
	"strings"

	request "mangopay_billable/internal/adapter/http/dto/request"
	response "mangopay_billable/internal/adapter/http/dto/response"
	"mangopay_billable/internal/domain/entities"
	"mangopay_billable/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Capability handlers act on the remote user linked to /billables/:type/:id.

type WalletHandler struct {
	usecase usecase.IWalletUseCase
}

func NewWalletHandler(uc usecase.IWalletUseCase) *WalletHandler {
	return &WalletHandler{usecase: uc}
}

func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var payload request.WalletRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	wallet, err := h.usecase.CreateWallet(c.Request.Context(), billableRef(c), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWallet(wallet))
}

func (h *WalletHandler) ListWallets(c *gin.Context) {
	wallets, err := h.usecase.ListWallets(c.Request.Context(), billableRef(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWallets(wallets))
}

type BankAccountHandler struct {
	usecase usecase.IBankAccountUseCase
}

func NewBankAccountHandler(uc usecase.IBankAccountUseCase) *BankAccountHandler {
	return &BankAccountHandler{usecase: uc}
}

func (h *BankAccountHandler) CreateBankAccount(c *gin.Context) {
	var payload request.BankAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[link][handler] bank account invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	account, err := h.usecase.CreateBankAccount(c.Request.Context(), billableRef(c), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBankAccount(account))
}

func (h *BankAccountHandler) ListBankAccounts(c *gin.Context) {
	accounts, err := h.usecase.ListBankAccounts(c.Request.Context(), billableRef(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBankAccounts(accounts))
}

type KYCHandler struct {
	usecase usecase.IKYCUseCase
}

func NewKYCHandler(uc usecase.IKYCUseCase) *KYCHandler {
	return &KYCHandler{usecase: uc}
}

func (h *KYCHandler) CreateDocument(c *gin.Context) {
	var payload request.KYCDocumentRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	doc, err := h.usecase.CreateKYCDocument(c.Request.Context(), billableRef(c), payload.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromKYCDocument(doc))
}

func (h *KYCHandler) AddPage(c *gin.Context) {
	var payload request.KYCPageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	file, err := payload.Decode()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if err := h.usecase.AddKYCPage(c.Request.Context(), billableRef(c), c.Param("document_id"), file); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KYCHandler) SubmitDocument(c *gin.Context) {
	doc, err := h.usecase.SubmitKYCDocument(c.Request.Context(), billableRef(c), c.Param("document_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromKYCDocument(doc))
}

// ListDocuments accepts optional ?type= and ?status= filters.
func (h *KYCHandler) ListDocuments(c *gin.Context) {
	filter := entities.KYCDocumentFilter{
		Type:   strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		Status: entities.KYCDocumentStatus(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
	}
	docs, err := h.usecase.ListKYCDocuments(c.Request.Context(), billableRef(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromKYCDocuments(docs))
}

type MandateHandler struct {
	usecase usecase.IMandateUseCase
}

func NewMandateHandler(uc usecase.IMandateUseCase) *MandateHandler {
	return &MandateHandler{usecase: uc}
}

func (h *MandateHandler) CreateMandate(c *gin.Context) {
	var payload request.MandateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	mandate, err := h.usecase.CreateMandate(c.Request.Context(), billableRef(c), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMandate(mandate))
}

func (h *MandateHandler) GetMandate(c *gin.Context) {
	mandate, err := h.usecase.GetMandate(c.Request.Context(), billableRef(c), c.Param("mandate_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMandate(mandate))
}

func (h *MandateHandler) CancelMandate(c *gin.Context) {
	mandate, err := h.usecase.CancelMandate(c.Request.Context(), billableRef(c), c.Param("mandate_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMandate(mandate))
}

func (h *MandateHandler) ListMandates(c *gin.Context) {
	mandates, err := h.usecase.ListMandates(c.Request.Context(), billableRef(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMandates(mandates))
}

func (h *MandateHandler) ListBankAccountMandates(c *gin.Context) {
	mandates, err := h.usecase.ListBankAccountMandates(c.Request.Context(), billableRef(c), c.Param("bank_account_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMandates(mandates))
}

// bindOptionalJSON binds the body when there is one. It answers 400 and
// returns false on malformed JSON.
func bindOptionalJSON(c *gin.Context, out any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return false
	}
	return true
}
