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
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)
	errInvalidCostQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "days and travelers are required integers", http.StatusBadRequest)
)

type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

func (h *PlanHandler) Create(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPlanPayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPlan(p))
}

func (h *PlanHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(p))
}

func (h *PlanHandler) Update(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPlanPayload)
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(p))
}

func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) List(c *gin.Context) {
	var q request.PlanQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}

	ps, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlans(ps))
}

// Cost previews daily_rate × days × travelers for a plan.
func (h *PlanHandler) Cost(c *gin.Context) {
	var q request.PlanCostQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidCostQuery)
		return
	}

	id := c.Param("id")
	cost, err := h.usecase.CostFor(c.Request.Context(), id, q.Days, q.Travelers)
	if err != nil {
		abortWithError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.PlanCostResponse{
		PlanID:    id,
		Days:      q.Days,
		Travelers: q.Travelers,
		Cost:      cost.StringFixed(2),
	})
}
