package entities

import "github.com/shopspring/decimal"

// RatePlaces is the number of fractional digits stored for daily rates,
// multipliers and base risk factors.
const RatePlaces int32 = 2

// FitsRateScale reports whether v carries no significant digit beyond RatePlaces.
func FitsRateScale(v decimal.Decimal) bool {
	return v.Equal(v.Round(RatePlaces))
}
