package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/pricing"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuotationNotFound    = fmt.Errorf("quotation %w", entities.ErrNotFound)
	ErrQuotationNotPending  = fmt.Errorf("%w: quotation is not pending", entities.ErrInvalidTransition)
	ErrQuotationExpired     = fmt.Errorf("%w: quotation is expired", entities.ErrInvalidTransition)
	ErrDestinationInactive  = fmt.Errorf("%w: destination is not active", entities.ErrValidation)
	ErrInvalidQuotationID   = fmt.Errorf("%w: invalid quotation id", entities.ErrValidation)
	ErrInvalidTripDates     = fmt.Errorf("%w: start_date and end_date are required", entities.ErrValidation)
	ErrEndBeforeStart       = fmt.Errorf("%w: end_date must not be before start_date", entities.ErrValidation)
	ErrInvalidQuotationDate = fmt.Errorf("%w: invalid date range filter", entities.ErrValidation)
)

// QuotationInput describes a trip to quote. Dates are civil dates.
type QuotationInput struct {
	UserID        string
	DestinationID string
	PlanID        string
	StartDate     time.Time
	EndDate       time.Time
	Travelers     int
}

// QuotationFilter selects quotations in List. From and To bound the trip
// dates inclusively and must be given together.
type QuotationFilter struct {
	UserID        string
	DestinationID string
	PlanID        string
	Status        entities.QuotationStatus
	ActiveOnly    bool
	ExpiredOnly   bool
	From          *time.Time
	To            *time.Time
}

func (f QuotationFilter) predicates(now time.Time) ([]query.Predicate[entities.Quotation], error) {
	var preds []query.Predicate[entities.Quotation]
	if id := strings.TrimSpace(f.UserID); id != "" {
		preds = append(preds, query.QuotationsOfUser(id))
	}
	if id := strings.TrimSpace(f.DestinationID); id != "" {
		preds = append(preds, query.QuotationsOfDestination(id))
	}
	if id := strings.TrimSpace(f.PlanID); id != "" {
		preds = append(preds, query.QuotationsOfPlan(id))
	}
	if f.Status != "" {
		preds = append(preds, query.QuotationsByStatus(f.Status))
	}
	if f.ActiveOnly {
		preds = append(preds, query.ActiveQuotations(now))
	}
	if f.ExpiredOnly {
		preds = append(preds, query.ExpiredQuotations(now))
	}
	if f.From != nil || f.To != nil {
		if f.From == nil || f.To == nil || f.To.Before(*f.From) {
			return nil, ErrInvalidQuotationDate
		}
		preds = append(preds, query.QuotationsInDateRange(*f.From, *f.To))
	}
	return preds, nil
}

// IQuotationUseCase drives the quotation lifecycle: pending on creation, then
// approved with a frozen premium or rejected. Pending quotations whose trip has
// ended can be swept to expired.
type IQuotationUseCase interface {
	Create(ctx context.Context, in QuotationInput) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context, filter QuotationFilter) ([]entities.Quotation, error)
	ListForUser(ctx context.Context, userID string, filter QuotationFilter) ([]entities.Quotation, error)
	Price(ctx context.Context, id string) (pricing.Breakdown, error)
	Quote(ctx context.Context, in QuotationInput) (pricing.Breakdown, error)
	Approve(ctx context.Context, id string) (entities.Quotation, error)
	Reject(ctx context.Context, id string) (entities.Quotation, error)
	ExpireOverdue(ctx context.Context) (int, error)
}

type QuotationUseCase struct {
	repo            interfaces.IQuotationRepository
	userRepo        interfaces.IUserRepository
	destinationRepo interfaces.IDestinationRepository
	planRepo        interfaces.IPlanRepository
	now             func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	userRepo interfaces.IUserRepository,
	destinationRepo interfaces.IDestinationRepository,
	planRepo interfaces.IPlanRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:            repo,
		userRepo:        userRepo,
		destinationRepo: destinationRepo,
		planRepo:        planRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used for expiry checks.
func (u *QuotationUseCase) WithClock(now func() time.Time) *QuotationUseCase {
	u.now = now
	return u
}

func (u *QuotationUseCase) Create(ctx context.Context, in QuotationInput) (entities.Quotation, error) {
	q, err := buildQuotation(in)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.UserID == "" {
		return entities.Quotation{}, ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, q.UserID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if user.ID == "" {
		return entities.Quotation{}, ErrUserNotFound
	}
	d, err := u.destinationRepo.GetByID(ctx, q.DestinationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if d.ID == "" {
		return entities.Quotation{}, ErrDestinationNotFound
	}
	if !d.Active {
		return entities.Quotation{}, ErrDestinationInactive
	}
	p, err := u.planRepo.GetByID(ctx, q.PlanID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if p.ID == "" {
		return entities.Quotation{}, ErrPlanNotFound
	}

	now := u.now()
	q.ID = uuid.NewString()
	q.Status = entities.QuotationStatusPending
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quotation][usecase] create failed user_id=%s destination_id=%s plan_id=%s err=%v", q.UserID, q.DestinationID, q.PlanID, err)
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] created quotation_id=%s user_id=%s destination_id=%s plan_id=%s travelers=%d",
		created.ID, created.UserID, created.DestinationID, created.PlanID, created.Travelers)
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

// List narrows through the most selective relationship loader and applies
// the remaining filters in memory.
func (u *QuotationUseCase) List(ctx context.Context, filter QuotationFilter) ([]entities.Quotation, error) {
	preds, err := filter.predicates(u.now())
	if err != nil {
		return nil, err
	}

	var items []entities.Quotation
	switch {
	case strings.TrimSpace(filter.UserID) != "":
		items, err = u.repo.ListByUserID(ctx, strings.TrimSpace(filter.UserID))
	case strings.TrimSpace(filter.DestinationID) != "":
		items, err = u.repo.ListByDestinationID(ctx, strings.TrimSpace(filter.DestinationID))
	case strings.TrimSpace(filter.PlanID) != "":
		items, err = u.repo.ListByPlanID(ctx, strings.TrimSpace(filter.PlanID))
	default:
		return u.repo.List(ctx, preds...)
	}
	if err != nil {
		return nil, err
	}
	return query.Apply(items, preds...), nil
}

func (u *QuotationUseCase) ListForUser(ctx context.Context, userID string, filter QuotationFilter) ([]entities.Quotation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, ErrUserNotFound
	}
	filter.UserID = user.ID
	return u.List(ctx, filter)
}

// Price computes the premium of a stored quotation against current plan and
// destination data without persisting anything.
func (u *QuotationUseCase) Price(ctx context.Context, id string) (pricing.Breakdown, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return u.price(ctx, q)
}

// Quote prices a trip that has not been stored.
func (u *QuotationUseCase) Quote(ctx context.Context, in QuotationInput) (pricing.Breakdown, error) {
	q, err := buildQuotation(in)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return u.price(ctx, q)
}

// Approve freezes the premium rounded to cents and moves the quotation to approved.
// Only one of several concurrent approvals succeeds; the others get ErrQuotationNotPending.
func (u *QuotationUseCase) Approve(ctx context.Context, id string) (entities.Quotation, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !q.Status.CanTransitionTo(entities.QuotationStatusApproved) {
		log.Printf("[quotation][usecase] approve rejected quotation_id=%s status=%s", q.ID, q.Status)
		return entities.Quotation{}, ErrQuotationNotPending
	}
	if q.IsExpired(u.now()) {
		log.Printf("[quotation][usecase] approve rejected quotation_id=%s end_date=%s expired", q.ID, entities.FormatDate(q.EndDate))
		return entities.Quotation{}, ErrQuotationExpired
	}

	b, err := u.price(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	premium := pricing.RoundMoney(b.FinalPremium)

	updated, err := u.repo.TransitionStatus(ctx, q.ID, entities.QuotationStatusPending, entities.QuotationStatusApproved, decimal.NewNullDecimal(premium))
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		log.Printf("[quotation][usecase] approve lost race quotation_id=%s", q.ID)
		return entities.Quotation{}, ErrQuotationNotPending
	}
	log.Printf("[quotation][usecase] approve success quotation_id=%s premium=%s", updated.ID, premium.StringFixed(pricing.MoneyPlaces))
	return updated, nil
}

// Reject moves a pending quotation to rejected. The premium stays null.
func (u *QuotationUseCase) Reject(ctx context.Context, id string) (entities.Quotation, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !q.Status.CanTransitionTo(entities.QuotationStatusRejected) {
		return entities.Quotation{}, ErrQuotationNotPending
	}

	updated, err := u.repo.TransitionStatus(ctx, q.ID, entities.QuotationStatusPending, entities.QuotationStatusRejected, decimal.NullDecimal{})
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotPending
	}
	log.Printf("[quotation][usecase] reject success quotation_id=%s", updated.ID)
	return updated, nil
}

// ExpireOverdue stores the expired status on pending quotations whose trip has
// ended and returns how many were moved. Quotations approved or rejected in the
// meantime are skipped.
func (u *QuotationUseCase) ExpireOverdue(ctx context.Context) (int, error) {
	now := u.now()
	overdue, err := u.repo.List(ctx,
		query.QuotationsByStatus(entities.QuotationStatusPending),
		query.ExpiredQuotations(now),
	)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, q := range overdue {
		updated, err := u.repo.TransitionStatus(ctx, q.ID, entities.QuotationStatusPending, entities.QuotationStatusExpired, decimal.NullDecimal{})
		if err != nil {
			log.Printf("[quotation][usecase] expire failed quotation_id=%s err=%v", q.ID, err)
			return expired, err
		}
		if updated.ID != "" {
			expired++
		}
	}
	log.Printf("[quotation][usecase] expire sweep done candidates=%d expired=%d", len(overdue), expired)
	return expired, nil
}

func (u *QuotationUseCase) price(ctx context.Context, q entities.Quotation) (pricing.Breakdown, error) {
	p, err := u.planRepo.GetByID(ctx, q.PlanID)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	if p.ID == "" {
		return pricing.Breakdown{}, ErrPlanNotFound
	}
	d, err := u.destinationRepo.GetWithRiskFactors(ctx, q.DestinationID)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	if d.ID == "" {
		return pricing.Breakdown{}, ErrDestinationNotFound
	}
	return pricing.Calculate(q, p, d), nil
}

func buildQuotation(in QuotationInput) (entities.Quotation, error) {
	destinationID := strings.TrimSpace(in.DestinationID)
	if destinationID == "" {
		return entities.Quotation{}, ErrInvalidDestinationID
	}
	planID := strings.TrimSpace(in.PlanID)
	if planID == "" {
		return entities.Quotation{}, ErrInvalidPlanID
	}
	if in.Travelers < 1 {
		return entities.Quotation{}, ErrInvalidTravelerCount
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return entities.Quotation{}, ErrInvalidTripDates
	}
	start := entities.CivilDate(in.StartDate)
	end := entities.CivilDate(in.EndDate)
	if end.Before(start) {
		return entities.Quotation{}, ErrEndBeforeStart
	}
	return entities.Quotation{
		UserID:        strings.TrimSpace(in.UserID),
		DestinationID: destinationID,
		PlanID:        planID,
		StartDate:     start,
		EndDate:       end,
		Travelers:     in.Travelers,
	}, nil
}
