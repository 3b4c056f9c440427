package usecase

import (
	"context"
	"errors"
	"testing"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	mock_interfaces "hero_seguros/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPlanUseCase_Create(t *testing.T) {
	cases := []struct {
		name string
		in   PlanInput
		want error
	}{
		{name: "missing name", in: PlanInput{Description: "d", CoverageType: "basic", DailyRate: decimal.NewFromInt(10)}, want: ErrInvalidPlanName},
		{name: "missing description", in: PlanInput{Name: "Basic", CoverageType: "basic", DailyRate: decimal.NewFromInt(10)}, want: ErrInvalidPlanDesc},
		{name: "unknown coverage", in: PlanInput{Name: "Gold", Description: "d", CoverageType: "gold", DailyRate: decimal.NewFromInt(10)}, want: ErrInvalidCoverageType},
		{name: "zero rate", in: PlanInput{Name: "Basic", Description: "d", CoverageType: "basic", DailyRate: decimal.Zero}, want: ErrInvalidDailyRate},
		{name: "rate below one cent", in: PlanInput{Name: "Basic", Description: "d", CoverageType: "basic", DailyRate: decimal.RequireFromString("0.004")}, want: ErrDailyRateScale},
		{name: "rate with three decimals", in: PlanInput{Name: "Basic", Description: "d", CoverageType: "basic", DailyRate: decimal.RequireFromString("12.345")}, want: ErrDailyRateScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPlanUseCase(nil)
			_, err := uc.Create(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Plan{})).DoAndReturn(
			func(_ context.Context, p entities.Plan) (entities.Plan, error) {
				if p.ID == "" || p.CoverageType != entities.CoverageStandard || !p.DailyRate.Equal(decimal.RequireFromString("12.50")) {
					t.Fatalf("unexpected plan: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), PlanInput{Name: "Std", Description: "standard", CoverageType: " Standard ", DailyRate: decimal.RequireFromString("12.50")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPlanUseCase_Delete(t *testing.T) {
	t.Run("blocked by quotations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(entities.ErrReferentialIntegrity)

		if err := uc.Delete(context.Background(), "p-1"); !errors.Is(err, ErrPlanInUse) {
			t.Fatalf("expected ErrPlanInUse, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{}, nil)

		if err := uc.Delete(context.Background(), "p-1"); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPlanUseCase_List(t *testing.T) {
	all := []entities.Plan{
		{ID: "1", CoverageType: entities.CoverageBasic, DailyRate: decimal.RequireFromString("10.00")},
		{ID: "2", CoverageType: entities.CoverageStandard, DailyRate: decimal.RequireFromString("25.00")},
		{ID: "3", CoverageType: entities.CoveragePremium, DailyRate: decimal.RequireFromString("50.00")},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPlanRepository(ctrl)
	uc := NewPlanUseCase(repo)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, preds ...query.Predicate[entities.Plan]) ([]entities.Plan, error) {
			return query.Apply(all, preds...), nil
		},
	).AnyTimes()

	lo := decimal.RequireFromString("10")
	hi := decimal.RequireFromString("25")

	t.Run("by coverage", func(t *testing.T) {
		res, _ := uc.List(context.Background(), PlanFilter{CoverageType: entities.CoveragePremium})
		if len(res) != 1 || res[0].ID != "3" {
			t.Fatalf("expected premium plan, got %+v", res)
		}
	})

	t.Run("inclusive rate range", func(t *testing.T) {
		res, _ := uc.List(context.Background(), PlanFilter{MinRate: &lo, MaxRate: &hi})
		if len(res) != 2 {
			t.Fatalf("expected 2 plans, got %+v", res)
		}
	})

	t.Run("open upper bound", func(t *testing.T) {
		res, _ := uc.List(context.Background(), PlanFilter{MinRate: &hi})
		if len(res) != 2 || res[0].ID != "2" {
			t.Fatalf("expected plans 2 and 3, got %+v", res)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := uc.List(context.Background(), PlanFilter{MinRate: &hi, MaxRate: &lo})
		if !errors.Is(err, ErrInvalidRateRange) {
			t.Fatalf("expected ErrInvalidRateRange, got %v", err)
		}
	})
}

func TestPlanUseCase_CostFor(t *testing.T) {
	t.Run("invalid days", func(t *testing.T) {
		uc := NewPlanUseCase(nil)
		if _, err := uc.CostFor(context.Background(), "p-1", 0, 1); !errors.Is(err, ErrInvalidTripDays) {
			t.Fatalf("expected ErrInvalidTripDays, got %v", err)
		}
	})

	t.Run("invalid travelers", func(t *testing.T) {
		uc := NewPlanUseCase(nil)
		if _, err := uc.CostFor(context.Background(), "p-1", 1, 0); !errors.Is(err, ErrInvalidTravelerCount) {
			t.Fatalf("expected ErrInvalidTravelerCount, got %v", err)
		}
	})

	t.Run("cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlanRepository(ctrl)
		uc := NewPlanUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1", DailyRate: decimal.RequireFromString("12.35")}, nil)

		cost, err := uc.CostFor(context.Background(), "p-1", 3, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cost.Equal(decimal.RequireFromString("74.10")) {
			t.Fatalf("expected 74.10, got %s", cost)
		}
	})
}
