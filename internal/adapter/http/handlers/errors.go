package handlers

import (
	"errors"
	"net/http"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase"
	"hero_seguros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDomainError translates use-case errors into the API envelope. Specific
// sentinels get their own code; anything else falls back to the shared taxonomy.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDestinationNotFound):
		return pkg.NewDomainErrorSimple("DESTINATION_NOT_FOUND", "Destination not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRiskFactorNotFound):
		return pkg.NewDomainErrorSimple("RISK_FACTOR_NOT_FOUND", "Risk factor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDestinationCodeTaken):
		return pkg.NewDomainErrorSimple("DESTINATION_CODE_TAKEN", "Destination code already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrDestinationInUse):
		return pkg.NewDomainErrorSimple("DESTINATION_IN_USE", "Destination is referenced by quotations", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanInUse):
		return pkg.NewDomainErrorSimple("PLAN_IN_USE", "Plan is referenced by quotations", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationExpired):
		return pkg.NewDomainErrorSimple("QUOTATION_EXPIRED", "Quotation is expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotPending):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_PENDING", "Quotation is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotApproved):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_APPROVED", "Quotation not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrConstraintViolation):
		return pkg.NewDomainError("CONSTRAINT_VIOLATION", "Unique constraint violated", err, http.StatusConflict)
	case errors.Is(err, entities.ErrReferentialIntegrity):
		return pkg.NewDomainError("REFERENTIAL_INTEGRITY", "Referenced resource is missing or still in use", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Invalid status transition", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
