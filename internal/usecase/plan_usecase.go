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
	ErrPlanNotFound         = fmt.Errorf("plan %w", entities.ErrNotFound)
	ErrPlanInUse            = fmt.Errorf("plan has quotations: %w", entities.ErrReferentialIntegrity)
	ErrInvalidPlanID        = fmt.Errorf("%w: invalid plan id", entities.ErrValidation)
	ErrInvalidPlanName      = fmt.Errorf("%w: invalid plan name", entities.ErrValidation)
	ErrInvalidPlanDesc      = fmt.Errorf("%w: plan description is required", entities.ErrValidation)
	ErrInvalidCoverageType  = fmt.Errorf("%w: invalid coverage type", entities.ErrValidation)
	ErrInvalidDailyRate     = fmt.Errorf("%w: daily rate must be > 0", entities.ErrValidation)
	ErrDailyRateScale       = fmt.Errorf("%w: daily rate allows at most 2 decimal places", entities.ErrValidation)
	ErrInvalidRateRange     = fmt.Errorf("%w: invalid daily rate range", entities.ErrValidation)
	ErrInvalidTripDays      = fmt.Errorf("%w: days must be >= 1", entities.ErrValidation)
	ErrInvalidTravelerCount = fmt.Errorf("%w: travelers must be >= 1", entities.ErrValidation)
)

type PlanInput struct {
	Name         string
	Description  string
	CoverageType string
	DailyRate    decimal.Decimal
}

// PlanFilter selects plans in List. MinRate and MaxRate bound the daily rate inclusively.
type PlanFilter struct {
	CoverageType entities.CoverageType
	MinRate      *decimal.Decimal
	MaxRate      *decimal.Decimal
}

func (f PlanFilter) predicates() ([]query.Predicate[entities.Plan], error) {
	var preds []query.Predicate[entities.Plan]
	if f.CoverageType != "" {
		preds = append(preds, query.PlansByCoverage(f.CoverageType))
	}
	if f.MinRate != nil || f.MaxRate != nil {
		lo := decimal.Zero
		if f.MinRate != nil {
			lo = *f.MinRate
		}
		hi := decimal.New(1, 12)
		if f.MaxRate != nil {
			hi = *f.MaxRate
		}
		if lo.GreaterThan(hi) {
			return nil, ErrInvalidRateRange
		}
		preds = append(preds, query.PlansByRateRange(lo, hi))
	}
	return preds, nil
}

type IPlanUseCase interface {
	Create(ctx context.Context, in PlanInput) (entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	Update(ctx context.Context, id string, in PlanInput) (entities.Plan, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PlanFilter) ([]entities.Plan, error)
	CostFor(ctx context.Context, id string, days, travelers int) (decimal.Decimal, error)
}

type PlanUseCase struct {
	repo interfaces.IPlanRepository
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IPlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

func (u *PlanUseCase) Create(ctx context.Context, in PlanInput) (entities.Plan, error) {
	p, err := buildPlan(in)
	if err != nil {
		return entities.Plan{}, err
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Plan{}, err
	}
	log.Printf("[plan][usecase] created plan_id=%s coverage=%s daily_rate=%s", created.ID, created.CoverageType, created.DailyRate.StringFixed(2))
	return created, nil
}

func (u *PlanUseCase) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plan{}, ErrInvalidPlanID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if p.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (u *PlanUseCase) Update(ctx context.Context, id string, in PlanInput) (entities.Plan, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	p, err := buildPlan(in)
	if err != nil {
		return entities.Plan{}, err
	}
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Plan{}, err
	}
	if updated.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return updated, nil
}

// Delete removes a plan that no quotation references.
func (u *PlanUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, p.ID); err != nil {
		switch {
		case errors.Is(err, entities.ErrReferentialIntegrity):
			log.Printf("[plan][usecase] delete blocked plan_id=%s err=%v", p.ID, err)
			return ErrPlanInUse
		case errors.Is(err, entities.ErrNotFound):
			return ErrPlanNotFound
		}
		return err
	}
	log.Printf("[plan][usecase] deleted plan_id=%s", p.ID)
	return nil
}

func (u *PlanUseCase) List(ctx context.Context, filter PlanFilter) ([]entities.Plan, error) {
	preds, err := filter.predicates()
	if err != nil {
		return nil, err
	}
	return u.repo.List(ctx, preds...)
}

// CostFor previews daily_rate × days × travelers for a plan, rounded to cents.
func (u *PlanUseCase) CostFor(ctx context.Context, id string, days, travelers int) (decimal.Decimal, error) {
	if days < 1 {
		return decimal.Zero, ErrInvalidTripDays
	}
	if travelers < 1 {
		return decimal.Zero, ErrInvalidTravelerCount
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return p.CostFor(days, travelers).Round(2), nil
}

func buildPlan(in PlanInput) (entities.Plan, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Plan{}, ErrInvalidPlanName
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return entities.Plan{}, ErrInvalidPlanDesc
	}
	ct, err := entities.ParseCoverageType(in.CoverageType)
	if err != nil {
		return entities.Plan{}, ErrInvalidCoverageType
	}
	if !in.DailyRate.IsPositive() {
		return entities.Plan{}, ErrInvalidDailyRate
	}
	if !entities.FitsRateScale(in.DailyRate) {
		return entities.Plan{}, ErrDailyRateScale
	}
	return entities.Plan{
		Name:         name,
		Description:  desc,
		CoverageType: ct,
		DailyRate:    in.DailyRate,
	}, nil
}
