package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RiskCategory classifies a destination risk factor.
type RiskCategory string

const (
	RiskCategoryWar                  RiskCategory = "war"
	RiskCategoryNaturalDisaster      RiskCategory = "natural_disaster"
	RiskCategoryDisease              RiskCategory = "disease"
	RiskCategoryTerrorism            RiskCategory = "terrorism"
	RiskCategoryCivilUnrest          RiskCategory = "civil_unrest"
	RiskCategoryPoliticalInstability RiskCategory = "political_instability"
)

// RiskCategories lists every known category in display order.
func RiskCategories() []RiskCategory {
	return []RiskCategory{
		RiskCategoryWar,
		RiskCategoryNaturalDisaster,
		RiskCategoryDisease,
		RiskCategoryTerrorism,
		RiskCategoryCivilUnrest,
		RiskCategoryPoliticalInstability,
	}
}

func (c RiskCategory) Valid() bool {
	switch c {
	case RiskCategoryWar, RiskCategoryNaturalDisaster, RiskCategoryDisease,
		RiskCategoryTerrorism, RiskCategoryCivilUnrest, RiskCategoryPoliticalInstability:
		return true
	}
	return false
}

// ParseRiskCategory accepts a category name in any case.
func ParseRiskCategory(s string) (RiskCategory, error) {
	c := RiskCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown risk category %q", ErrValidation, s)
	}
	return c, nil
}

// RiskBand is the coarse severity of a multiplier.
type RiskBand string

const (
	RiskBandLow      RiskBand = "low"
	RiskBandModerate RiskBand = "moderate"
	RiskBandHigh     RiskBand = "high"
)

var (
	moderateRiskFloor = decimal.NewFromInt(1)
	highRiskFloor     = decimal.RequireFromString("1.5")
)

// BandFor classifies a multiplier: low below 1.0, moderate in [1.0, 1.5), high from 1.5.
func BandFor(multiplier decimal.Decimal) RiskBand {
	switch {
	case multiplier.LessThan(moderateRiskFloor):
		return RiskBandLow
	case multiplier.LessThan(highRiskFloor):
		return RiskBandModerate
	default:
		return RiskBandHigh
	}
}

func (b RiskBand) Valid() bool {
	switch b {
	case RiskBandLow, RiskBandModerate, RiskBandHigh:
		return true
	}
	return false
}

// ParseRiskBand accepts a band name in any case.
func ParseRiskBand(s string) (RiskBand, error) {
	b := RiskBand(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("%w: unknown risk band %q", ErrValidation, s)
	}
	return b, nil
}

// RiskFactor is a named risk attached to exactly one destination.
// It is removed together with its destination.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (destination_id-index): destination_id
type RiskFactor struct {
	ID            string          `json:"id"`
	DestinationID string          `json:"destination_id"`
	Category      RiskCategory    `json:"category"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (f RiskFactor) Band() RiskBand {
	return BandFor(f.Multiplier)
}
