// Package query holds composable filter predicates for listing entities.
//
// Repositories expose a single List(ctx, preds...) per aggregate and keep an item
// only when every predicate accepts it.
package query

import (
	"strings"
	"time"

	"hero_seguros/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Predicate reports whether an item should be kept.
type Predicate[T any] func(T) bool

// Apply returns the items accepted by all predicates, preserving order.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(it, preds...) {
			out = append(out, it)
		}
	}
	return out
}

// Match reports whether item satisfies every predicate.
func Match[T any](item T, preds ...Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Destinations

func ActiveDestinations() Predicate[entities.Destination] {
	return func(d entities.Destination) bool { return d.Active }
}

// SearchDestinations matches a case-insensitive substring of the country name or code.
func SearchDestinations(term string) Predicate[entities.Destination] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(d entities.Destination) bool {
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(d.Country), term) ||
			strings.Contains(strings.ToLower(d.Code), term)
	}
}

// Plans

func PlansByCoverage(ct entities.CoverageType) Predicate[entities.Plan] {
	return func(p entities.Plan) bool { return p.CoverageType == ct }
}

// PlansByRateRange keeps plans whose daily rate lies in [lo, hi].
func PlansByRateRange(lo, hi decimal.Decimal) Predicate[entities.Plan] {
	return func(p entities.Plan) bool {
		return p.DailyRate.GreaterThanOrEqual(lo) && p.DailyRate.LessThanOrEqual(hi)
	}
}

// Risk factors

func RiskFactorsByCategory(c entities.RiskCategory) Predicate[entities.RiskFactor] {
	return func(f entities.RiskFactor) bool { return f.Category == c }
}

func RiskFactorsInBand(b entities.RiskBand) Predicate[entities.RiskFactor] {
	return func(f entities.RiskFactor) bool { return f.Band() == b }
}

func RiskFactorsOfDestination(destinationID string) Predicate[entities.RiskFactor] {
	return func(f entities.RiskFactor) bool { return f.DestinationID == destinationID }
}

// Quotations

func QuotationsByStatus(s entities.QuotationStatus) Predicate[entities.Quotation] {
	return func(q entities.Quotation) bool { return q.Status == s }
}

// ActiveQuotations keeps pending or approved quotations whose trip has not ended.
func ActiveQuotations(now time.Time) Predicate[entities.Quotation] {
	return func(q entities.Quotation) bool { return q.IsActive(now) }
}

// ExpiredQuotations keeps quotations reported as expired at now.
func ExpiredQuotations(now time.Time) Predicate[entities.Quotation] {
	return func(q entities.Quotation) bool { return q.IsExpired(now) }
}

// QuotationsInDateRange keeps quotations whose start or end date falls within [from, to].
func QuotationsInDateRange(from, to time.Time) Predicate[entities.Quotation] {
	from = entities.CivilDate(from)
	to = entities.CivilDate(to)
	within := func(t time.Time) bool {
		t = entities.CivilDate(t)
		return !t.Before(from) && !t.After(to)
	}
	return func(q entities.Quotation) bool {
		return within(q.StartDate) || within(q.EndDate)
	}
}

func QuotationsOfUser(userID string) Predicate[entities.Quotation] {
	return func(q entities.Quotation) bool { return q.UserID == userID }
}

func QuotationsOfDestination(destinationID string) Predicate[entities.Quotation] {
	return func(q entities.Quotation) bool { return q.DestinationID == destinationID }
}

func QuotationsOfPlan(planID string) Predicate[entities.Quotation] {
	return func(q entities.Quotation) bool { return q.PlanID == planID }
}
