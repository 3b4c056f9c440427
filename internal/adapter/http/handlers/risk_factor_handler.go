package handlers

import (
	"net/http"

	"hero_seguros/internal/adapter/http/dto/request"
	"hero_seguros/internal/adapter/http/dto/response"
	"hero_seguros/internal/usecase"
	"hero_seguros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRiskFactorPayload = pkg.NewDomainErrorSimple("INVALID_RISK_FACTOR_INPUT", "Invalid risk factor payload", http.StatusBadRequest)
)

type RiskFactorHandler struct {
	usecase usecase.IRiskFactorUseCase
}

func NewRiskFactorHandler(uc usecase.IRiskFactorUseCase) *RiskFactorHandler {
	return &RiskFactorHandler{usecase: uc}
}

// CreateForDestination attaches a risk factor to the destination in the path.
func (h *RiskFactorHandler) CreateForDestination(c *gin.Context) {
	var payload request.RiskFactorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRiskFactorPayload)
		return
	}

	f, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRiskFactor(f))
}

func (h *RiskFactorHandler) ListByDestination(c *gin.Context) {
	fs, err := h.usecase.ListByDestinationID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRiskFactors(fs))
}

func (h *RiskFactorHandler) List(c *gin.Context) {
	var q request.RiskFactorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}

	fs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRiskFactors(fs))
}

func (h *RiskFactorHandler) Get(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRiskFactor(f))
}

func (h *RiskFactorHandler) Update(c *gin.Context) {
	var payload request.RiskFactorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRiskFactorPayload)
		return
	}

	f, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRiskFactor(f))
}

func (h *RiskFactorHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
