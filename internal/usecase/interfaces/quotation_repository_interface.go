package interfaces

import (
	"context"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"

	"github.com/shopspring/decimal"
)

// IQuotationRepository abstracts persistence for Quotation.
//
// The quotation service must be able to:
//   - create a pending quotation bound to an existing user, destination and plan
//     (entities.ErrReferentialIntegrity otherwise)
//   - load quotations through each relationship
//   - move a quotation between statuses only if it still holds the expected status
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quotation, error)
	ListByDestinationID(ctx context.Context, destinationID string) ([]entities.Quotation, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.Quotation, error)
	List(ctx context.Context, preds ...query.Predicate[entities.Quotation]) ([]entities.Quotation, error)

	// TransitionStatus sets status to `to` (and premium when valid) only while the stored
	// status equals `from`. It returns the zero Quotation when the condition does not hold.
	TransitionStatus(ctx context.Context, id string, from, to entities.QuotationStatus, premium decimal.NullDecimal) (entities.Quotation, error)
}
