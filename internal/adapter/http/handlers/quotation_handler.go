package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"hero_seguros/internal/adapter/http/dto/request"
	"hero_seguros/internal/adapter/http/dto/response"
	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase"
	"hero_seguros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for quotations and their lifecycle.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
	now     func() time.Time
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

func (h *QuotationHandler) Create(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidQuotationPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotation(q, h.now()))
}

func (h *QuotationHandler) Get(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q, h.now()))
}

func (h *QuotationHandler) List(c *gin.Context) {
	filter, ok := bindQuotationQuery(c)
	if !ok {
		return
	}
	qs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(qs, h.now()))
}

// ListForUser serves GET /users/:id/quotations.
func (h *QuotationHandler) ListForUser(c *gin.Context) {
	filter, ok := bindQuotationQuery(c)
	if !ok {
		return
	}
	qs, err := h.usecase.ListForUser(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(qs, h.now()))
}

// Premium returns the premium breakdown from current plan and destination data.
// Nothing is persisted.
func (h *QuotationHandler) Premium(c *gin.Context) {
	id := c.Param("id")
	b, err := h.usecase.Price(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(id, b))
}

func (h *QuotationHandler) Approve(c *gin.Context) {
	h.transition(c, "approve", h.usecase.Approve)
}

func (h *QuotationHandler) Reject(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

func (h *QuotationHandler) transition(
	c *gin.Context,
	action string,
	apply func(ctx context.Context, id string) (entities.Quotation, error),
) {
	id := c.Param("id")
	q, err := apply(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quotation][handler] %s failed quotation_id=%s err=%v", action, id, err)
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q, h.now()))
}

func bindQuotationQuery(c *gin.Context) (usecase.QuotationFilter, bool) {
	var q request.QuotationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidRequest)
		return usecase.QuotationFilter{}, false
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return usecase.QuotationFilter{}, false
	}
	return filter, true
}
