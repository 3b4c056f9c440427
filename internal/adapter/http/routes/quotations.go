package routes

import "github.com/gin-gonic/gin"

const (
	PathQuotations = "/quotations"
	PathPayments   = "/payments"
)

func addQuotationRoutes(rg *gin.RouterGroup, h Handlers) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", h.Quotations.Create)
		quotations.GET("", h.Quotations.List)
		quotations.GET("/:id", h.Quotations.Get)
		quotations.GET("/:id/premium", h.Quotations.Premium)
		quotations.PATCH("/:id/approve", h.Quotations.Approve)
		quotations.PATCH("/:id/reject", h.Quotations.Reject)
		quotations.POST("/:id"+PathPayments, h.Payments.Pay)
		quotations.GET("/:id"+PathPayments, h.Payments.List)
	}

	rg.GET(PathPayments+"/:id", h.Payments.Get)
}
