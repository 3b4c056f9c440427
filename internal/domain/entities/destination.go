package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBaseRiskFactor is applied when a destination is created without one.
var DefaultBaseRiskFactor = decimal.NewFromInt(1)

// Destination is a travel location priced by its base risk factor plus the
// multipliers of its risk factors.
//
// Storage model (DynamoDB):
//   - PK: id
//   - guard table destination_codes keeps code unique
//
// RiskFactors is only populated by loaders that explicitly ask for it.
type Destination struct {
	ID             string          `json:"id"`
	Country        string          `json:"country"`
	Code           string          `json:"code"`
	BaseRiskFactor decimal.Decimal `json:"base_risk_factor"`
	Description    string          `json:"description,omitempty"`
	Active         bool            `json:"active"`
	RiskFactors    []RiskFactor    `json:"risk_factors,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NormalizeDestinationCode trims and upper-cases a country code.
func NormalizeDestinationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
