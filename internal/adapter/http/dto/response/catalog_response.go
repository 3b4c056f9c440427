package response

import (
	"time"

	"hero_seguros/internal/domain/entities"
)

// Decimal amounts are rendered as strings to keep their exact value on the wire.

type RiskFactorResponse struct {
	ID            string    `json:"id"`
	DestinationID string    `json:"destination_id"`
	Category      string    `json:"category"`
	Multiplier    string    `json:"multiplier"`
	Band          string    `json:"band"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromRiskFactor(f entities.RiskFactor) RiskFactorResponse {
	return RiskFactorResponse{
		ID:            f.ID,
		DestinationID: f.DestinationID,
		Category:      string(f.Category),
		Multiplier:    f.Multiplier.StringFixed(2),
		Band:          string(f.Band()),
		Description:   f.Description,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func FromRiskFactors(fs []entities.RiskFactor) []RiskFactorResponse {
	out := make([]RiskFactorResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, FromRiskFactor(f))
	}
	return out
}

// DestinationResponse carries risk_factors only when the destination was
// loaded with them.
type DestinationResponse struct {
	ID             string               `json:"id"`
	Country        string               `json:"country"`
	Code           string               `json:"code"`
	BaseRiskFactor string               `json:"base_risk_factor"`
	Description    string               `json:"description,omitempty"`
	Active         bool                 `json:"active"`
	RiskFactors    []RiskFactorResponse `json:"risk_factors,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromDestination(d entities.Destination) DestinationResponse {
	res := DestinationResponse{
		ID:             d.ID,
		Country:        d.Country,
		Code:           d.Code,
		BaseRiskFactor: d.BaseRiskFactor.StringFixed(2),
		Description:    d.Description,
		Active:         d.Active,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if len(d.RiskFactors) > 0 {
		res.RiskFactors = FromRiskFactors(d.RiskFactors)
	}
	return res
}

func FromDestinations(ds []entities.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDestination(d))
	}
	return out
}

type PlanResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CoverageType string    `json:"coverage_type"`
	DailyRate    string    `json:"daily_rate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CoverageType: string(p.CoverageType),
		DailyRate:    p.DailyRate.StringFixed(2),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromPlans(ps []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPlan(p))
	}
	return out
}

type PlanCostResponse struct {
	PlanID    string `json:"plan_id"`
	Days      int    `json:"days"`
	Travelers int    `json:"travelers"`
	Cost      string `json:"cost"`
}

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
