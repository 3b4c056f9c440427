package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := entities.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestFromQuotation(t *testing.T) {
	now := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	q := entities.Quotation{
		ID:            "q-1",
		UserID:        "u-1",
		DestinationID: "d-1",
		PlanID:        "p-1",
		StartDate:     mustDate(t, "2025-01-10"),
		EndDate:       mustDate(t, "2025-01-14"),
		Travelers:     3,
		Status:        entities.QuotationStatusPending,
	}

	res := FromQuotation(q, now)
	if res.Premium != nil {
		t.Fatalf("pending quotation must have null premium, got %v", *res.Premium)
	}
	if res.StartDate != "2025-01-10" || res.EndDate != "2025-01-14" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if !res.Expired {
		t.Fatalf("trip ended before now; expected expired")
	}
	body, _ := json.Marshal(res)
	if !strings.Contains(string(body), `"premium":null`) {
		t.Fatalf("expected premium null in %s", body)
	}

	q.Status = entities.QuotationStatusApproved
	q.Premium = decimal.NewNullDecimal(decimal.NewFromInt(1500))
	res = FromQuotation(q, mustDate(t, "2025-01-01"))
	if res.Premium == nil || *res.Premium != "1500.00" || res.Status != "approved" || res.Expired {
		t.Fatalf("unexpected approved response: %+v", res)
	}
}

func TestFromBreakdown(t *testing.T) {
	b := pricing.Breakdown{
		Days:           5,
		Travelers:      1,
		DailyRate:      decimal.RequireFromString("33.33"),
		BasePremium:    decimal.RequireFromString("166.65"),
		RiskMultiplier: decimal.RequireFromString("1.3"),
		FinalPremium:   decimal.RequireFromString("216.645"),
	}
	res := FromBreakdown("q-1", b)
	if res.FinalPremium != "216.645" || res.RoundedPremium != "216.65" {
		t.Fatalf("unexpected premiums: %+v", res)
	}
	if res.DailyRate != "33.33" || res.RiskMultiplier != "1.3" || res.Days != 5 {
		t.Fatalf("unexpected breakdown: %+v", res)
	}
}

func TestFromDestination(t *testing.T) {
	d := entities.Destination{
		ID:             "d-1",
		Country:        "Japan",
		Code:           "JP",
		BaseRiskFactor: decimal.RequireFromString("1.2"),
		Active:         true,
		RiskFactors: []entities.RiskFactor{
			{ID: "rf-1", DestinationID: "d-1", Category: entities.RiskCategoryNaturalDisaster, Multiplier: decimal.RequireFromString("1.6")},
		},
	}
	res := FromDestination(d)
	if res.BaseRiskFactor != "1.20" || len(res.RiskFactors) != 1 {
		t.Fatalf("unexpected destination: %+v", res)
	}
	if res.RiskFactors[0].Band != "high" || res.RiskFactors[0].Multiplier != "1.60" {
		t.Fatalf("unexpected risk factor: %+v", res.RiskFactors[0])
	}

	d.RiskFactors = nil
	body, _ := json.Marshal(FromDestination(d))
	if strings.Contains(string(body), "risk_factors") {
		t.Fatalf("risk_factors should be omitted when not loaded: %s", body)
	}
}

func TestFromUser_HidesPassword(t *testing.T) {
	body, _ := json.Marshal(FromUser(entities.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", PasswordHash: "secret-hash"}))
	if strings.Contains(string(body), "secret-hash") || strings.Contains(string(body), "password") {
		t.Fatalf("password leaked: %s", body)
	}
}

func TestFromQuotationPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.QuotationPayment{
		ID:                 "pay-1",
		QuotationID:        "q-1",
		Amount:             decimal.RequireFromString("216.6"),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"status":"approved"}`),
		ProviderPayload:    map[string]any{"status": "approved"},
	}
	res := FromQuotationPayment(p)
	if res.Amount != "216.60" || res.Status != "approved" || res.QuotationID != "q-1" {
		t.Fatalf("unexpected payment: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"status":"approved"}` || res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %v", res.Date)
	}
}
