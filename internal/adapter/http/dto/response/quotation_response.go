package response

import (
	"encoding/json"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/pricing"
)

// QuotationResponse renders premium as null until the quotation is approved.
// Expired is derived from the end date at response time.
type QuotationResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	DestinationID string    `json:"destination_id"`
	PlanID        string    `json:"plan_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Travelers     int       `json:"travelers"`
	Premium       *string   `json:"premium"`
	Status        string    `json:"status"`
	Expired       bool      `json:"expired"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation, now time.Time) QuotationResponse {
	res := QuotationResponse{
		ID:            q.ID,
		UserID:        q.UserID,
		DestinationID: q.DestinationID,
		PlanID:        q.PlanID,
		StartDate:     entities.FormatDate(q.StartDate),
		EndDate:       entities.FormatDate(q.EndDate),
		Travelers:     q.Travelers,
		Status:        string(q.Status),
		Expired:       q.IsExpired(now),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
	if q.Premium.Valid {
		p := q.Premium.Decimal.StringFixed(pricing.MoneyPlaces)
		res.Premium = &p
	}
	return res
}

func FromQuotations(qs []entities.Quotation, now time.Time) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q, now))
	}
	return out
}

// PremiumResponse is the itemised premium of a quotation. final_premium keeps
// full precision; rounded_premium is the amount an approval would store.
type PremiumResponse struct {
	QuotationID    string `json:"quotation_id,omitempty"`
	Days           int    `json:"days"`
	Travelers      int    `json:"travelers"`
	DailyRate      string `json:"daily_rate"`
	BasePremium    string `json:"base_premium"`
	RiskMultiplier string `json:"risk_multiplier"`
	FinalPremium   string `json:"final_premium"`
	RoundedPremium string `json:"rounded_premium"`
}

func FromBreakdown(quotationID string, b pricing.Breakdown) PremiumResponse {
	return PremiumResponse{
		QuotationID:    quotationID,
		Days:           b.Days,
		Travelers:      b.Travelers,
		DailyRate:      b.DailyRate.StringFixed(pricing.MoneyPlaces),
		BasePremium:    b.BasePremium.String(),
		RiskMultiplier: b.RiskMultiplier.String(),
		FinalPremium:   b.FinalPremium.String(),
		RoundedPremium: pricing.RoundMoney(b.FinalPremium).StringFixed(pricing.MoneyPlaces),
	}
}

type QuotationPaymentResponse struct {
	ID          string    `json:"id"`
	QuotationID string    `json:"quotation_id"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromQuotationPayment(p entities.QuotationPayment) QuotationPaymentResponse {
	res := QuotationPaymentResponse{
		ID:              p.ID,
		QuotationID:     p.QuotationID,
		Amount:          p.Amount.StringFixed(pricing.MoneyPlaces),
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
	}
	if len(p.ProviderPayloadRaw) > 0 && json.Valid(p.ProviderPayloadRaw) {
		res.ProviderPayloadRaw = string(p.ProviderPayloadRaw)
	}
	return res
}

func FromQuotationPayments(ps []entities.QuotationPayment) []QuotationPaymentResponse {
	out := make([]QuotationPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromQuotationPayment(p))
	}
	return out
}
