package pricing

import (
	"testing"
	"time"

	"hero_seguros/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTotalRiskMultiplier(t *testing.T) {
	t.Run("no risk factors returns base", func(t *testing.T) {
		d := entities.Destination{BaseRiskFactor: dec("1.25")}
		got := TotalRiskMultiplier(d)
		if !got.Equal(dec("1.25")) {
			t.Fatalf("expected 1.25, got %s", got)
		}
	})

	t.Run("sums every factor", func(t *testing.T) {
		d := entities.Destination{
			BaseRiskFactor: dec("1.0"),
			RiskFactors: []entities.RiskFactor{
				{Multiplier: dec("1.5")},
				{Multiplier: dec("2.0")},
			},
		}
		got := TotalRiskMultiplier(d)
		if !got.Equal(dec("4.5")) {
			t.Fatalf("expected 4.5, got %s", got)
		}
	})

	t.Run("zero base", func(t *testing.T) {
		d := entities.Destination{
			BaseRiskFactor: decimal.Zero,
			RiskFactors:    []entities.RiskFactor{{Multiplier: dec("0.3")}},
		}
		if got := TotalRiskMultiplier(d); !got.Equal(dec("0.3")) {
			t.Fatalf("expected 0.3, got %s", got)
		}
	})
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-01-01", "2025-01-01", 1},
		{"2025-01-01", "2025-01-10", 10},
		{"2024-02-28", "2024-03-01", 3},
		{"2025-12-31", "2026-01-01", 2},
	}
	for _, tc := range cases {
		t.Run(tc.start+"_"+tc.end, func(t *testing.T) {
			q := entities.Quotation{StartDate: day(tc.start), EndDate: day(tc.end)}
			if got := DurationDays(q); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestDaysBetween_IgnoresClock(t *testing.T) {
	start := time.Date(2025, 5, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 5, 2, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestCalculate_EndToEnd(t *testing.T) {
	plan := entities.Plan{DailyRate: dec("100")}
	dest := entities.Destination{
		BaseRiskFactor: dec("1.0"),
		RiskFactors:    []entities.RiskFactor{{Multiplier: dec("0.5")}},
	}
	q := entities.Quotation{StartDate: day("2025-06-01"), EndDate: day("2025-06-05"), Travelers: 2}

	if got := BasePremium(q, plan); !got.Equal(dec("1000")) {
		t.Fatalf("expected base 1000, got %s", got)
	}
	if got := FinalPremium(q, plan, dest); !got.Equal(dec("1500")) {
		t.Fatalf("expected final 1500, got %s", got)
	}

	b := Calculate(q, plan, dest)
	if b.Days != 5 || b.Travelers != 2 {
		t.Fatalf("unexpected breakdown counts: %+v", b)
	}
	if !b.BasePremium.Equal(dec("1000")) || !b.RiskMultiplier.Equal(dec("1.5")) || !b.FinalPremium.Equal(dec("1500")) {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestRoundMoney(t *testing.T) {
	cases := map[string]string{
		"10.005":   "10.01",
		"10.004":   "10",
		"1234.5":   "1234.5",
		"-2.345":   "-2.35",
		"33.33333": "33.33",
	}
	for in, want := range cases {
		if got := RoundMoney(dec(in)); !got.Equal(dec(want)) {
			t.Errorf("RoundMoney(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestFinalPremium_KeepsPrecisionUntilRounded(t *testing.T) {
	plan := entities.Plan{DailyRate: dec("33.33")}
	dest := entities.Destination{BaseRiskFactor: dec("1.15")}
	q := entities.Quotation{StartDate: day("2025-01-01"), EndDate: day("2025-01-03"), Travelers: 1}

	// 33.33 × 3 × 1.15 = 114.9885
	final := FinalPremium(q, plan, dest)
	if !final.Equal(dec("114.9885")) {
		t.Fatalf("expected 114.9885, got %s", final)
	}
	if got := RoundMoney(final); got.StringFixed(2) != "114.99" {
		t.Fatalf("expected 114.99, got %s", got.StringFixed(2))
	}
}
