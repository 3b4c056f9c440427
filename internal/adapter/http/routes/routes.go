package routes

import (
	"context"
	"log"

	_ "hero_seguros/docs"
	"hero_seguros/internal/adapter/http/handlers"
	"hero_seguros/internal/infrastructure/config"
	"hero_seguros/internal/infrastructure/wiring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every handler mounted under /v1.
type Handlers struct {
	Destinations *handlers.DestinationHandler
	RiskFactors  *handlers.RiskFactorHandler
	Plans        *handlers.PlanHandler
	Users        *handlers.UserHandler
	Quotations   *handlers.QuotationHandler
	Payments     *handlers.QuotationPaymentHandler
}

func NewHandlers(uc wiring.UseCases, mockPayments bool) Handlers {
	return Handlers{
		Destinations: handlers.NewDestinationHandler(uc.Destinations),
		RiskFactors:  handlers.NewRiskFactorHandler(uc.RiskFactors),
		Plans:        handlers.NewPlanHandler(uc.Plans),
		Users:        handlers.NewUserHandler(uc.Users),
		Quotations:   handlers.NewQuotationHandler(uc.Quotations),
		Payments:     handlers.NewQuotationPaymentHandler(uc.Payments, mockPayments),
	}
}

// Run will start the server
func Run(ctx context.Context, cfg config.Config) error {
	repos, err := wiring.NewRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[api][routes] close storage failed err=%v", err)
		}
	}()

	gateway := wiring.NewPaymentGateway(cfg.Payments)
	useCases := wiring.NewUseCases(repos, gateway, cfg.Payments.Mock)
	router := NewRouter(NewHandlers(useCases, cfg.Payments.Mock))

	log.Printf("[api][routes] listening addr=%s storage=%s", cfg.Addr(), cfg.StorageDriver)
	return router.Run(cfg.Addr())
}

// NewRouter builds the engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h)
	addQuotationRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
