package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRiskFactorNotFound    = fmt.Errorf("risk factor %w", entities.ErrNotFound)
	ErrInvalidRiskFactorID   = fmt.Errorf("%w: invalid risk factor id", entities.ErrValidation)
	ErrInvalidRiskCategory   = fmt.Errorf("%w: invalid risk category", entities.ErrValidation)
	ErrInvalidRiskMultiplier = fmt.Errorf("%w: multiplier must be >= 0", entities.ErrValidation)
	ErrRiskMultiplierScale   = fmt.Errorf("%w: multiplier allows at most 2 decimal places", entities.ErrValidation)
)

type RiskFactorInput struct {
	Category    string
	Multiplier  decimal.Decimal
	Description string
}

// RiskFactorFilter selects risk factors in List. Empty fields match everything.
type RiskFactorFilter struct {
	DestinationID string
	Category      entities.RiskCategory
	Band          entities.RiskBand
}

func (f RiskFactorFilter) predicates() []query.Predicate[entities.RiskFactor] {
	var preds []query.Predicate[entities.RiskFactor]
	if id := strings.TrimSpace(f.DestinationID); id != "" {
		preds = append(preds, query.RiskFactorsOfDestination(id))
	}
	if f.Category != "" {
		preds = append(preds, query.RiskFactorsByCategory(f.Category))
	}
	if f.Band != "" {
		preds = append(preds, query.RiskFactorsInBand(f.Band))
	}
	return preds
}

type IRiskFactorUseCase interface {
	Create(ctx context.Context, destinationID string, in RiskFactorInput) (entities.RiskFactor, error)
	GetByID(ctx context.Context, id string) (entities.RiskFactor, error)
	Update(ctx context.Context, id string, in RiskFactorInput) (entities.RiskFactor, error)
	Delete(ctx context.Context, id string) error
	ListByDestinationID(ctx context.Context, destinationID string) ([]entities.RiskFactor, error)
	List(ctx context.Context, filter RiskFactorFilter) ([]entities.RiskFactor, error)
}

type RiskFactorUseCase struct {
	repo            interfaces.IRiskFactorRepository
	destinationRepo interfaces.IDestinationRepository
}

var _ IRiskFactorUseCase = (*RiskFactorUseCase)(nil)

func NewRiskFactorUseCase(repo interfaces.IRiskFactorRepository, destinationRepo interfaces.IDestinationRepository) *RiskFactorUseCase {
	return &RiskFactorUseCase{repo: repo, destinationRepo: destinationRepo}
}

func (u *RiskFactorUseCase) Create(ctx context.Context, destinationID string, in RiskFactorInput) (entities.RiskFactor, error) {
	destinationID = strings.TrimSpace(destinationID)
	if destinationID == "" {
		return entities.RiskFactor{}, ErrInvalidDestinationID
	}
	f, err := buildRiskFactor(in)
	if err != nil {
		return entities.RiskFactor{}, err
	}

	d, err := u.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		return entities.RiskFactor{}, err
	}
	if d.ID == "" {
		return entities.RiskFactor{}, ErrDestinationNotFound
	}

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.DestinationID = d.ID
	f.CreatedAt = now
	f.UpdatedAt = now

	created, err := u.repo.Create(ctx, f)
	if err != nil {
		// The destination may have been deleted between the lookup and the write.
		if errors.Is(err, entities.ErrReferentialIntegrity) {
			return entities.RiskFactor{}, ErrDestinationNotFound
		}
		return entities.RiskFactor{}, err
	}
	log.Printf("[risk_factor][usecase] created risk_factor_id=%s destination_id=%s category=%s multiplier=%s",
		created.ID, created.DestinationID, created.Category, created.Multiplier)
	return created, nil
}

func (u *RiskFactorUseCase) GetByID(ctx context.Context, id string) (entities.RiskFactor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RiskFactor{}, ErrInvalidRiskFactorID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RiskFactor{}, err
	}
	if f.ID == "" {
		return entities.RiskFactor{}, ErrRiskFactorNotFound
	}
	return f, nil
}

func (u *RiskFactorUseCase) Update(ctx context.Context, id string, in RiskFactorInput) (entities.RiskFactor, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.RiskFactor{}, err
	}
	f, err := buildRiskFactor(in)
	if err != nil {
		return entities.RiskFactor{}, err
	}
	f.ID = current.ID
	f.DestinationID = current.DestinationID
	f.CreatedAt = current.CreatedAt
	f.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.RiskFactor{}, err
	}
	if updated.ID == "" {
		return entities.RiskFactor{}, ErrRiskFactorNotFound
	}
	return updated, nil
}

func (u *RiskFactorUseCase) Delete(ctx context.Context, id string) error {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, f.ID); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return ErrRiskFactorNotFound
		}
		return err
	}
	return nil
}

func (u *RiskFactorUseCase) ListByDestinationID(ctx context.Context, destinationID string) ([]entities.RiskFactor, error) {
	destinationID = strings.TrimSpace(destinationID)
	if destinationID == "" {
		return nil, ErrInvalidDestinationID
	}
	d, err := u.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if d.ID == "" {
		return nil, ErrDestinationNotFound
	}
	return u.repo.ListByDestinationID(ctx, destinationID)
}

func (u *RiskFactorUseCase) List(ctx context.Context, filter RiskFactorFilter) ([]entities.RiskFactor, error) {
	return u.repo.List(ctx, filter.predicates()...)
}

func buildRiskFactor(in RiskFactorInput) (entities.RiskFactor, error) {
	category, err := entities.ParseRiskCategory(in.Category)
	if err != nil {
		return entities.RiskFactor{}, ErrInvalidRiskCategory
	}
	if in.Multiplier.IsNegative() {
		return entities.RiskFactor{}, ErrInvalidRiskMultiplier
	}
	if !entities.FitsRateScale(in.Multiplier) {
		return entities.RiskFactor{}, ErrRiskMultiplierScale
	}
	return entities.RiskFactor{
		Category:    category,
		Multiplier:  in.Multiplier,
		Description: strings.TrimSpace(in.Description),
	}, nil
}
