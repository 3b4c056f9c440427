// Package pricing computes travel insurance premiums.
//
//	base  = plan.daily_rate × trip days × travelers
//	final = base × (destination.base_risk_factor + Σ risk_factor.multiplier)
//
// Arithmetic keeps full decimal precision; RoundMoney is applied only where a
// premium is persisted.
package pricing

import (
	"time"

	"hero_seguros/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits stored for monetary amounts.
const MoneyPlaces = 2

// Breakdown is the itemised result of pricing a quotation.
type Breakdown struct {
	Days           int             `json:"days"`
	Travelers      int             `json:"travelers"`
	DailyRate      decimal.Decimal `json:"daily_rate"`
	BasePremium    decimal.Decimal `json:"base_premium"`
	RiskMultiplier decimal.Decimal `json:"risk_multiplier"`
	FinalPremium   decimal.Decimal `json:"final_premium"`
}

// TotalRiskMultiplier sums the base risk factor and every attached risk factor multiplier.
// A destination without risk factors yields its base risk factor.
func TotalRiskMultiplier(d entities.Destination) decimal.Decimal {
	total := d.BaseRiskFactor
	for _, f := range d.RiskFactors {
		total = total.Add(f.Multiplier)
	}
	return total
}

// DurationDays counts trip days inclusively: a same-day trip is 1 day.
// The result is meaningless when end precedes start; quotations are validated on creation.
func DurationDays(q entities.Quotation) int {
	return DaysBetween(q.StartDate, q.EndDate)
}

// DaysBetween is DurationDays for bare dates.
func DaysBetween(start, end time.Time) int {
	s := entities.CivilDate(start)
	e := entities.CivilDate(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// BasePremium is plan.daily_rate × DurationDays(q) × q.travelers.
func BasePremium(q entities.Quotation, p entities.Plan) decimal.Decimal {
	return p.CostFor(DurationDays(q), q.Travelers)
}

// FinalPremium is BasePremium × TotalRiskMultiplier, unrounded.
// d must carry its risk factors.
func FinalPremium(q entities.Quotation, p entities.Plan, d entities.Destination) decimal.Decimal {
	return BasePremium(q, p).Mul(TotalRiskMultiplier(d))
}

// Calculate prices q against the current plan and destination data.
func Calculate(q entities.Quotation, p entities.Plan, d entities.Destination) Breakdown {
	base := BasePremium(q, p)
	multiplier := TotalRiskMultiplier(d)
	return Breakdown{
		Days:           DurationDays(q),
		Travelers:      q.Travelers,
		DailyRate:      p.DailyRate,
		BasePremium:    base,
		RiskMultiplier: multiplier,
		FinalPremium:   base.Mul(multiplier),
	}
}

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(MoneyPlaces)
}
