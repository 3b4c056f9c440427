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
	errInvalidDestinationPayload = pkg.NewDomainErrorSimple("INVALID_DESTINATION_INPUT", "Invalid destination payload", http.StatusBadRequest)
)

// DestinationHandler handles HTTP requests for destinations.
type DestinationHandler struct {
	usecase usecase.IDestinationUseCase
}

func NewDestinationHandler(uc usecase.IDestinationUseCase) *DestinationHandler {
	return &DestinationHandler{usecase: uc}
}

func (h *DestinationHandler) Create(c *gin.Context) {
	var payload request.DestinationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDestinationPayload)
		return
	}

	d, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDestination(d))
}

// Get returns the destination together with its risk factors.
func (h *DestinationHandler) Get(c *gin.Context) {
	d, err := h.usecase.GetWithRiskFactors(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDestination(d))
}

func (h *DestinationHandler) Update(c *gin.Context) {
	var payload request.DestinationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidDestinationPayload)
		return
	}

	d, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDestination(d))
}

func (h *DestinationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DestinationHandler) List(c *gin.Context) {
	var q request.DestinationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	ds, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDestinations(ds))
}
