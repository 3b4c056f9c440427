package interfaces

import (
	"context"

	"hero_seguros/internal/domain/entities"
)

// IQuotationPaymentRepository abstracts persistence for QuotationPayment.
type IQuotationPaymentRepository interface {
	Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotationPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error)
}
