package interfaces

import (
	"context"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
)

// IDestinationRepository abstracts persistence for Destination.
//
// Lookups return the zero Destination and a nil error on a miss.
// Create/Update fail with entities.ErrConstraintViolation on a duplicate code.
// Delete fails with entities.ErrReferentialIntegrity while quotations reference the
// destination and removes its risk factors otherwise.
type IDestinationRepository interface {
	Create(ctx context.Context, d entities.Destination) (entities.Destination, error)
	GetByID(ctx context.Context, id string) (entities.Destination, error)
	GetByCode(ctx context.Context, code string) (entities.Destination, error)
	GetWithRiskFactors(ctx context.Context, id string) (entities.Destination, error)
	Update(ctx context.Context, d entities.Destination) (entities.Destination, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, preds ...query.Predicate[entities.Destination]) ([]entities.Destination, error)
}
