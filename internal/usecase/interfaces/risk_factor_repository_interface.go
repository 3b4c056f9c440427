package interfaces

import (
	"context"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
)

// IRiskFactorRepository abstracts persistence for RiskFactor.
//
// Create fails with entities.ErrReferentialIntegrity when the destination is gone.
type IRiskFactorRepository interface {
	Create(ctx context.Context, f entities.RiskFactor) (entities.RiskFactor, error)
	GetByID(ctx context.Context, id string) (entities.RiskFactor, error)
	Update(ctx context.Context, f entities.RiskFactor) (entities.RiskFactor, error)
	Delete(ctx context.Context, id string) error
	ListByDestinationID(ctx context.Context, destinationID string) ([]entities.RiskFactor, error)
	List(ctx context.Context, preds ...query.Predicate[entities.RiskFactor]) ([]entities.RiskFactor, error)
}
