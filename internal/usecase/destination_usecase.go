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
	ErrDestinationNotFound    = fmt.Errorf("destination %w", entities.ErrNotFound)
	ErrDestinationCodeTaken   = fmt.Errorf("destination code already in use: %w", entities.ErrConstraintViolation)
	ErrDestinationInUse       = fmt.Errorf("destination has quotations: %w", entities.ErrReferentialIntegrity)
	ErrInvalidDestinationID   = fmt.Errorf("%w: invalid destination id", entities.ErrValidation)
	ErrInvalidDestinationCode = fmt.Errorf("%w: invalid destination code", entities.ErrValidation)
	ErrInvalidCountry         = fmt.Errorf("%w: invalid country", entities.ErrValidation)
	ErrInvalidBaseRiskFactor  = fmt.Errorf("%w: base risk factor must be >= 0", entities.ErrValidation)
	ErrBaseRiskFactorScale    = fmt.Errorf("%w: base risk factor allows at most 2 decimal places", entities.ErrValidation)
)

// DestinationInput carries the writable fields of a destination.
// On Create nil BaseRiskFactor defaults to 1.00 and nil Active to true.
// On Update nil fields keep the stored values.
type DestinationInput struct {
	Country        string
	Code           string
	BaseRiskFactor *decimal.Decimal
	Description    string
	Active         *bool
}

// DestinationFilter selects destinations in List.
type DestinationFilter struct {
	ActiveOnly bool
	Search     string
}

func (f DestinationFilter) predicates() []query.Predicate[entities.Destination] {
	var preds []query.Predicate[entities.Destination]
	if f.ActiveOnly {
		preds = append(preds, query.ActiveDestinations())
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		preds = append(preds, query.SearchDestinations(s))
	}
	return preds
}

// IDestinationUseCase exposes destination reference-data operations.
type IDestinationUseCase interface {
	Create(ctx context.Context, in DestinationInput) (entities.Destination, error)
	GetByID(ctx context.Context, id string) (entities.Destination, error)
	GetWithRiskFactors(ctx context.Context, id string) (entities.Destination, error)
	Update(ctx context.Context, id string, in DestinationInput) (entities.Destination, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter DestinationFilter) ([]entities.Destination, error)
}

type DestinationUseCase struct {
	repo interfaces.IDestinationRepository
}

var _ IDestinationUseCase = (*DestinationUseCase)(nil)

func NewDestinationUseCase(repo interfaces.IDestinationRepository) *DestinationUseCase {
	return &DestinationUseCase{repo: repo}
}

func (u *DestinationUseCase) Create(ctx context.Context, in DestinationInput) (entities.Destination, error) {
	d, err := buildDestination(in)
	if err != nil {
		return entities.Destination{}, err
	}

	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, entities.ErrConstraintViolation) {
			return entities.Destination{}, ErrDestinationCodeTaken
		}
		return entities.Destination{}, err
	}
	log.Printf("[destination][usecase] created destination_id=%s code=%s", created.ID, created.Code)
	return created, nil
}

func (u *DestinationUseCase) GetByID(ctx context.Context, id string) (entities.Destination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Destination{}, ErrInvalidDestinationID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Destination{}, err
	}
	if d.ID == "" {
		return entities.Destination{}, ErrDestinationNotFound
	}
	return d, nil
}

func (u *DestinationUseCase) GetWithRiskFactors(ctx context.Context, id string) (entities.Destination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Destination{}, ErrInvalidDestinationID
	}

	d, err := u.repo.GetWithRiskFactors(ctx, id)
	if err != nil {
		return entities.Destination{}, err
	}
	if d.ID == "" {
		return entities.Destination{}, ErrDestinationNotFound
	}
	return d, nil
}

func (u *DestinationUseCase) Update(ctx context.Context, id string, in DestinationInput) (entities.Destination, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Destination{}, err
	}
	if in.BaseRiskFactor == nil {
		in.BaseRiskFactor = &current.BaseRiskFactor
	}
	if in.Active == nil {
		in.Active = &current.Active
	}

	d, err := buildDestination(in)
	if err != nil {
		return entities.Destination{}, err
	}
	d.ID = current.ID
	d.CreatedAt = current.CreatedAt
	d.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		if errors.Is(err, entities.ErrConstraintViolation) {
			return entities.Destination{}, ErrDestinationCodeTaken
		}
		return entities.Destination{}, err
	}
	if updated.ID == "" {
		return entities.Destination{}, ErrDestinationNotFound
	}
	return updated, nil
}

// Delete removes a destination and its risk factors. It fails while any
// quotation references the destination.
func (u *DestinationUseCase) Delete(ctx context.Context, id string) error {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, d.ID); err != nil {
		switch {
		case errors.Is(err, entities.ErrReferentialIntegrity):
			log.Printf("[destination][usecase] delete blocked destination_id=%s err=%v", d.ID, err)
			return ErrDestinationInUse
		case errors.Is(err, entities.ErrNotFound):
			return ErrDestinationNotFound
		}
		return err
	}
	log.Printf("[destination][usecase] deleted destination_id=%s", d.ID)
	return nil
}

func (u *DestinationUseCase) List(ctx context.Context, filter DestinationFilter) ([]entities.Destination, error) {
	return u.repo.List(ctx, filter.predicates()...)
}

func buildDestination(in DestinationInput) (entities.Destination, error) {
	country := strings.TrimSpace(in.Country)
	if country == "" {
		return entities.Destination{}, ErrInvalidCountry
	}
	code := entities.NormalizeDestinationCode(in.Code)
	if code == "" {
		return entities.Destination{}, ErrInvalidDestinationCode
	}

	base := entities.DefaultBaseRiskFactor
	if in.BaseRiskFactor != nil {
		base = *in.BaseRiskFactor
	}
	if base.IsNegative() {
		return entities.Destination{}, ErrInvalidBaseRiskFactor
	}
	if !entities.FitsRateScale(base) {
		return entities.Destination{}, ErrBaseRiskFactorScale
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return entities.Destination{
		Country:        country,
		Code:           code,
		BaseRiskFactor: base,
		Description:    strings.TrimSpace(in.Description),
		Active:         active,
	}, nil
}
