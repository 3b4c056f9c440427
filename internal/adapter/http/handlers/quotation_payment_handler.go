package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"hero_seguros/internal/adapter/http/dto/request"
	"hero_seguros/internal/adapter/http/dto/response"
	"hero_seguros/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuotationPaymentHandler handles HTTP requests for quotation payments.
// In mock mode a malformed body is replaced by an empty payload instead of
// being rejected.
type QuotationPaymentHandler struct {
	usecase  usecase.IQuotationPaymentUseCase
	mockMode bool
}

func NewQuotationPaymentHandler(uc usecase.IQuotationPaymentUseCase, mockMode bool) *QuotationPaymentHandler {
	return &QuotationPaymentHandler{usecase: uc, mockMode: mockMode}
}

// Pay charges the frozen premium of an approved quotation.
func (h *QuotationPaymentHandler) Pay(c *gin.Context) {
	quotationID := c.Param("id")
	log.Printf("[payment][handler] create start quotation_id=%s", quotationID)
	payload, err := readProviderPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quotation_id=%s err=%v", quotationID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload quotation_id=%s err=%v", quotationID, err)
			abortWithError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.Pay(c.Request.Context(), quotationID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed quotation_id=%s err=%v", quotationID, err)
		abortWithError(c, mapDomainError(err))
		return
	}
	log.Printf("[payment][handler] create success quotation_id=%s payment_id=%s status=%s", quotationID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromQuotationPayment(created))
}

// List returns every payment recorded for a quotation.
func (h *QuotationPaymentHandler) List(c *gin.Context) {
	quotationID := c.Param("id")
	payments, err := h.usecase.ListByQuotationID(c.Request.Context(), quotationID)
	if err != nil {
		log.Printf("[payment][handler] list failed quotation_id=%s err=%v", quotationID, err)
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationPayments(payments))
}

func (h *QuotationPaymentHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationPayment(p))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ProviderPayload(raw)
}
