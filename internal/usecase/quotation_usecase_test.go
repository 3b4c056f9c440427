package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	mock_interfaces "hero_seguros/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func date(s string) time.Time {
	t, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock() time.Time { return time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC) }

type quotationMocks struct {
	repo     *mock_interfaces.MockIQuotationRepository
	users    *mock_interfaces.MockIUserRepository
	dests    *mock_interfaces.MockIDestinationRepository
	plans    *mock_interfaces.MockIPlanRepository
	useCase  *QuotationUseCase
	teardown func()
}

func newQuotationMocks(t *testing.T) quotationMocks {
	ctrl := gomock.NewController(t)
	m := quotationMocks{
		repo:     mock_interfaces.NewMockIQuotationRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		dests:    mock_interfaces.NewMockIDestinationRepository(ctrl),
		plans:    mock_interfaces.NewMockIPlanRepository(ctrl),
		teardown: ctrl.Finish,
	}
	m.useCase = NewQuotationUseCase(m.repo, m.users, m.dests, m.plans).WithClock(fixedClock)
	return m
}

func validQuotationInput() QuotationInput {
	return QuotationInput{
		UserID:        "u-1",
		DestinationID: "d-1",
		PlanID:        "p-1",
		StartDate:     date("2025-07-01"),
		EndDate:       date("2025-07-05"),
		Travelers:     2,
	}
}

func TestQuotationUseCase_Create_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *QuotationInput)
		want   error
	}{
		{name: "missing destination", mutate: func(in *QuotationInput) { in.DestinationID = " " }, want: ErrInvalidDestinationID},
		{name: "missing plan", mutate: func(in *QuotationInput) { in.PlanID = "" }, want: ErrInvalidPlanID},
		{name: "zero travelers", mutate: func(in *QuotationInput) { in.Travelers = 0 }, want: ErrInvalidTravelerCount},
		{name: "missing dates", mutate: func(in *QuotationInput) { in.EndDate = time.Time{} }, want: ErrInvalidTripDates},
		{name: "end before start", mutate: func(in *QuotationInput) { in.EndDate = date("2025-06-30") }, want: ErrEndBeforeStart},
		{name: "missing user", mutate: func(in *QuotationInput) { in.UserID = "" }, want: ErrInvalidUserID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewQuotationUseCase(nil, nil, nil, nil)
			in := validQuotationInput()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestQuotationUseCase_Create_References(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		if _, err := m.useCase.Create(context.Background(), validQuotationInput()); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("destination not found", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.dests.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Destination{}, nil)

		if _, err := m.useCase.Create(context.Background(), validQuotationInput()); !errors.Is(err, ErrDestinationNotFound) {
			t.Fatalf("expected ErrDestinationNotFound, got %v", err)
		}
	})

	t.Run("destination inactive", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.dests.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Destination{ID: "d-1", Active: false}, nil)

		if _, err := m.useCase.Create(context.Background(), validQuotationInput()); !errors.Is(err, ErrDestinationInactive) {
			t.Fatalf("expected ErrDestinationInactive, got %v", err)
		}
	})

	t.Run("plan not found", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.dests.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Destination{ID: "d-1", Active: true}, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{}, nil)

		if _, err := m.useCase.Create(context.Background(), validQuotationInput()); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("create success is pending without premium", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.dests.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Destination{ID: "d-1", Active: true}, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ID == "" || q.Status != entities.QuotationStatusPending || q.Premium.Valid {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if !q.CreatedAt.Equal(fixedClock()) || !q.UpdatedAt.Equal(fixedClock()) {
					t.Fatalf("expected timestamps from the injected clock, got %s / %s", q.CreatedAt, q.UpdatedAt)
				}
				if !q.StartDate.Equal(date("2025-07-01")) || !q.EndDate.Equal(date("2025-07-05")) || q.Travelers != 2 {
					t.Fatalf("unexpected trip: %+v", q)
				}
				return q, nil
			},
		)

		in := validQuotationInput()
		in.StartDate = time.Date(2025, 7, 1, 18, 30, 0, 0, time.UTC)
		if _, err := m.useCase.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("same-day trip accepted", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.dests.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Destination{ID: "d-1", Active: true}, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil },
		)

		in := validQuotationInput()
		in.EndDate = in.StartDate
		if _, err := m.useCase.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func pricedFixtures() (entities.Plan, entities.Destination) {
	plan := entities.Plan{ID: "p-1", DailyRate: decimal.NewFromInt(100)}
	dest := entities.Destination{
		ID:             "d-1",
		Active:         true,
		BaseRiskFactor: decimal.NewFromInt(1),
		RiskFactors:    []entities.RiskFactor{{ID: "rf-1", Multiplier: decimal.RequireFromString("0.5")}},
	}
	return plan, dest
}

func pendingQuotation() entities.Quotation {
	return entities.Quotation{
		ID:            "q-1",
		UserID:        "u-1",
		DestinationID: "d-1",
		PlanID:        "p-1",
		StartDate:     date("2025-07-01"),
		EndDate:       date("2025-07-05"),
		Travelers:     2,
		Status:        entities.QuotationStatusPending,
	}
}

func TestQuotationUseCase_Price(t *testing.T) {
	m := newQuotationMocks(t)
	defer m.teardown()
	plan, dest := pricedFixtures()

	m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuotation(), nil)
	m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(plan, nil)
	m.dests.EXPECT().GetWithRiskFactors(gomock.Any(), "d-1").Return(dest, nil)

	b, err := m.useCase.Price(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Days != 5 || !b.BasePremium.Equal(decimal.NewFromInt(1000)) || !b.RiskMultiplier.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if !b.FinalPremium.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected 1500, got %s", b.FinalPremium)
	}
}

func TestQuotationUseCase_Quote(t *testing.T) {
	t.Run("validates input", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		in := validQuotationInput()
		in.Travelers = 0
		if _, err := uc.Quote(context.Background(), in); !errors.Is(err, ErrInvalidTravelerCount) {
			t.Fatalf("expected ErrInvalidTravelerCount, got %v", err)
		}
	})

	t.Run("prices without persisting", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		plan, dest := pricedFixtures()
		m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(plan, nil)
		m.dests.EXPECT().GetWithRiskFactors(gomock.Any(), "d-1").Return(dest, nil)

		in := validQuotationInput()
		in.UserID = ""
		b, err := m.useCase.Quote(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.FinalPremium.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected 1500, got %s", b.FinalPremium)
		}
	})
}

func TestQuotationUseCase_Approve(t *testing.T) {
	t.Run("approve sets premium", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		plan, dest := pricedFixtures()

		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuotation(), nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(plan, nil)
		m.dests.EXPECT().GetWithRiskFactors(gomock.Any(), "d-1").Return(dest, nil)
		m.repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuotationStatusPending, entities.QuotationStatusApproved, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _, to entities.QuotationStatus, premium decimal.NullDecimal) (entities.Quotation, error) {
				if !premium.Valid || !premium.Decimal.Equal(decimal.NewFromInt(1500)) {
					t.Fatalf("expected premium 1500, got %+v", premium)
				}
				q := pendingQuotation()
				q.Status = to
				q.Premium = premium
				return q, nil
			},
		)

		q, err := m.useCase.Approve(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusApproved || !q.Premium.Valid {
			t.Fatalf("unexpected quotation: %+v", q)
		}
	})

	t.Run("premium rounded to cents", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		plan := entities.Plan{ID: "p-1", DailyRate: decimal.RequireFromString("33.33")}
		dest := entities.Destination{ID: "d-1", BaseRiskFactor: decimal.RequireFromString("1.15")}
		q := pendingQuotation()
		q.Travelers = 1
		q.EndDate = q.StartDate

		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(plan, nil)
		m.dests.EXPECT().GetWithRiskFactors(gomock.Any(), "d-1").Return(dest, nil)
		m.repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, _ entities.QuotationStatus, premium decimal.NullDecimal) (entities.Quotation, error) {
				// 33.33 × 1.15 = 38.3295
				if !premium.Decimal.Equal(decimal.RequireFromString("38.33")) {
					t.Fatalf("expected 38.33, got %s", premium.Decimal)
				}
				return entities.Quotation{ID: "q-1"}, nil
			},
		)

		if _, err := m.useCase.Approve(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		for _, st := range []entities.QuotationStatus{entities.QuotationStatusApproved, entities.QuotationStatusRejected, entities.QuotationStatusExpired} {
			m := newQuotationMocks(t)
			q := pendingQuotation()
			q.Status = st
			m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

			_, err := m.useCase.Approve(context.Background(), "q-1")
			if !errors.Is(err, ErrQuotationNotPending) || !errors.Is(err, entities.ErrInvalidTransition) {
				t.Fatalf("status %s: expected ErrQuotationNotPending, got %v", st, err)
			}
			m.teardown()
		}
	})

	t.Run("trip already ended", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		q := pendingQuotation()
		q.StartDate = date("2025-06-01")
		q.EndDate = date("2025-06-14")
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		if _, err := m.useCase.Approve(context.Background(), "q-1"); !errors.Is(err, ErrQuotationExpired) {
			t.Fatalf("expected ErrQuotationExpired, got %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		plan, dest := pricedFixtures()

		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuotation(), nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(plan, nil)
		m.dests.EXPECT().GetWithRiskFactors(gomock.Any(), "d-1").Return(dest, nil)
		m.repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Quotation{}, nil)

		if _, err := m.useCase.Approve(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotPending) {
			t.Fatalf("expected ErrQuotationNotPending, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, nil)

		if _, err := m.useCase.Approve(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_Reject(t *testing.T) {
	t.Run("reject leaves premium unset", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()

		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(pendingQuotation(), nil)
		m.repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuotationStatusPending, entities.QuotationStatusRejected, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, to entities.QuotationStatus, premium decimal.NullDecimal) (entities.Quotation, error) {
				if premium.Valid {
					t.Fatalf("reject must not set a premium")
				}
				q := pendingQuotation()
				q.Status = to
				return q, nil
			},
		)

		q, err := m.useCase.Reject(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusRejected || q.Premium.Valid {
			t.Fatalf("unexpected quotation: %+v", q)
		}
	})

	t.Run("approved is terminal", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		q := pendingQuotation()
		q.Status = entities.QuotationStatusApproved
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		if _, err := m.useCase.Reject(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotPending) {
			t.Fatalf("expected ErrQuotationNotPending, got %v", err)
		}
	})
}

func TestQuotationUseCase_ExpireOverdue(t *testing.T) {
	overdue := pendingQuotation()
	overdue.EndDate = date("2025-06-14")
	overdue2 := overdue
	overdue2.ID = "q-2"
	current := pendingQuotation()
	current.ID = "q-3"
	current.EndDate = date("2025-06-15")
	approved := overdue
	approved.ID = "q-4"
	approved.Status = entities.QuotationStatusApproved
	all := []entities.Quotation{overdue, overdue2, current, approved}

	m := newQuotationMocks(t)
	defer m.teardown()

	m.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, preds ...query.Predicate[entities.Quotation]) ([]entities.Quotation, error) {
			return query.Apply(all, preds...), nil
		},
	)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "q-1", entities.QuotationStatusPending, entities.QuotationStatusExpired, gomock.Any()).
		Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusExpired}, nil)
	// q-2 was approved between the listing and the update.
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "q-2", entities.QuotationStatusPending, entities.QuotationStatusExpired, gomock.Any()).
		Return(entities.Quotation{}, nil)

	n, err := m.useCase.ExpireOverdue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expired quotation, got %d", n)
	}
}

func TestQuotationUseCase_List(t *testing.T) {
	a := pendingQuotation()
	b := pendingQuotation()
	b.ID = "q-2"
	b.Status = entities.QuotationStatusApproved
	b.PlanID = "p-2"
	c := pendingQuotation()
	c.ID = "q-3"
	c.UserID = "u-2"
	c.StartDate = date("2025-01-01")
	c.EndDate = date("2025-01-10")

	t.Run("user loader with status filter", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.Quotation{a, b}, nil)

		res, err := m.useCase.List(context.Background(), QuotationFilter{UserID: "u-1", Status: entities.QuotationStatusApproved})
		if err != nil || len(res) != 1 || res[0].ID != "q-2" {
			t.Fatalf("expected q-2, got %+v (%v)", res, err)
		}
	})

	t.Run("plan loader", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.repo.EXPECT().ListByPlanID(gomock.Any(), "p-2").Return([]entities.Quotation{b}, nil)

		res, err := m.useCase.List(context.Background(), QuotationFilter{PlanID: "p-2"})
		if err != nil || len(res) != 1 {
			t.Fatalf("expected one quotation, got %+v (%v)", res, err)
		}
	})

	t.Run("destination loader", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.repo.EXPECT().ListByDestinationID(gomock.Any(), "d-1").Return([]entities.Quotation{a, b, c}, nil)

		res, err := m.useCase.List(context.Background(), QuotationFilter{DestinationID: "d-1", ActiveOnly: true})
		if err != nil || len(res) != 2 {
			t.Fatalf("expected two active quotations, got %+v (%v)", res, err)
		}
	})

	t.Run("date range and expired", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, preds ...query.Predicate[entities.Quotation]) ([]entities.Quotation, error) {
				return query.Apply([]entities.Quotation{a, b, c}, preds...), nil
			},
		).Times(2)

		from, to := date("2025-01-08"), date("2025-01-12")
		res, err := m.useCase.List(context.Background(), QuotationFilter{From: &from, To: &to})
		if err != nil || len(res) != 1 || res[0].ID != "q-3" {
			t.Fatalf("expected q-3, got %+v (%v)", res, err)
		}
		res, err = m.useCase.List(context.Background(), QuotationFilter{ExpiredOnly: true})
		if err != nil || len(res) != 1 || res[0].ID != "q-3" {
			t.Fatalf("expected q-3, got %+v (%v)", res, err)
		}
	})

	t.Run("half-open date range rejected", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil, nil)
		from := date("2025-01-05")
		if _, err := uc.List(context.Background(), QuotationFilter{From: &from}); !errors.Is(err, ErrInvalidQuotationDate) {
			t.Fatalf("expected ErrInvalidQuotationDate, got %v", err)
		}
	})

	t.Run("for unknown user", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-9").Return(entities.User{}, nil)

		if _, err := m.useCase.ListForUser(context.Background(), "u-9", QuotationFilter{}); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("for user", func(t *testing.T) {
		m := newQuotationMocks(t)
		defer m.teardown()
		m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		m.repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.Quotation{a, b}, nil)

		res, err := m.useCase.ListForUser(context.Background(), "u-1", QuotationFilter{})
		if err != nil || len(res) != 2 {
			t.Fatalf("expected 2 quotations, got %+v (%v)", res, err)
		}
	})
}
