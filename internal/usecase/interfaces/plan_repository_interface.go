package interfaces

import (
	"context"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
)

// IPlanRepository abstracts persistence for Plan.
//
// Delete fails with entities.ErrReferentialIntegrity while quotations reference the plan.
type IPlanRepository interface {
	Create(ctx context.Context, p entities.Plan) (entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	Update(ctx context.Context, p entities.Plan) (entities.Plan, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, preds ...query.Predicate[entities.Plan]) ([]entities.Plan, error)
}
