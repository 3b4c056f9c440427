package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CoverageType is the coverage tier of a plan.
type CoverageType string

const (
	CoverageBasic    CoverageType = "basic"
	CoverageStandard CoverageType = "standard"
	CoveragePremium  CoverageType = "premium"
)

func CoverageTypes() []CoverageType {
	return []CoverageType{CoverageBasic, CoverageStandard, CoveragePremium}
}

func (c CoverageType) Valid() bool {
	switch c {
	case CoverageBasic, CoverageStandard, CoveragePremium:
		return true
	}
	return false
}

func ParseCoverageType(s string) (CoverageType, error) {
	c := CoverageType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown coverage type %q", ErrValidation, s)
	}
	return c, nil
}

// Plan is an insurance coverage tier sold at a daily rate per traveler.
//
// Storage model (DynamoDB):
//   - PK: id
//   - quotation_count attribute guards deletion while quotations reference the plan
type Plan struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CoverageType CoverageType    `json:"coverage_type"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CostFor returns daily_rate × days × travelers without rounding.
func (p Plan) CostFor(days, travelers int) decimal.Decimal {
	return p.DailyRate.Mul(decimal.NewFromInt(int64(days))).Mul(decimal.NewFromInt(int64(travelers)))
}
