package routes

import "github.com/gin-gonic/gin"

const (
	PathDestinations = "/destinations"
	PathRiskFactors  = "/risk-factors"
	PathPlans        = "/plans"
	PathUsers        = "/users"
)

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	destinations := rg.Group(PathDestinations)
	{
		destinations.POST("", h.Destinations.Create)
		destinations.GET("", h.Destinations.List)
		destinations.GET("/:id", h.Destinations.Get)
		destinations.PUT("/:id", h.Destinations.Update)
		destinations.DELETE("/:id", h.Destinations.Delete)
		destinations.GET("/:id"+PathRiskFactors, h.RiskFactors.ListByDestination)
		destinations.POST("/:id"+PathRiskFactors, h.RiskFactors.CreateForDestination)
	}

	riskFactors := rg.Group(PathRiskFactors)
	{
		riskFactors.GET("", h.RiskFactors.List)
		riskFactors.GET("/:id", h.RiskFactors.Get)
		riskFactors.PUT("/:id", h.RiskFactors.Update)
		riskFactors.DELETE("/:id", h.RiskFactors.Delete)
	}

	plans := rg.Group(PathPlans)
	{
		plans.POST("", h.Plans.Create)
		plans.GET("", h.Plans.List)
		plans.GET("/:id", h.Plans.Get)
		plans.PUT("/:id", h.Plans.Update)
		plans.DELETE("/:id", h.Plans.Delete)
		plans.GET("/:id/cost", h.Plans.Cost)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", h.Users.Register)
		users.GET("/:id", h.Users.Get)
		users.DELETE("/:id", h.Users.Delete)
		users.GET("/:id"+PathQuotations, h.Quotations.ListForUser)
	}
}
