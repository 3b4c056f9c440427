package request

import (
	"fmt"
	"strings"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase"

	"github.com/shopspring/decimal"
)

// DestinationRequest is the body of POST /destinations and PUT /destinations/:id.
// On create a missing base_risk_factor defaults to 1.00 and a missing active flag
// to true. On update both keep their stored values when omitted.
type DestinationRequest struct {
	Country        string           `json:"country" binding:"required"`
	Code           string           `json:"code" binding:"required"`
	BaseRiskFactor *decimal.Decimal `json:"base_risk_factor" swaggertype:"string" example:"1.20"`
	Description    string           `json:"description"`
	Active         *bool            `json:"active"`
}

func (r DestinationRequest) ToInput() usecase.DestinationInput {
	return usecase.DestinationInput{
		Country:        r.Country,
		Code:           r.Code,
		BaseRiskFactor: r.BaseRiskFactor,
		Description:    r.Description,
		Active:         r.Active,
	}
}

// DestinationQuery holds the query string of GET /destinations.
type DestinationQuery struct {
	Active bool   `form:"active"`
	Search string `form:"search"`
}

func (q DestinationQuery) ToFilter() usecase.DestinationFilter {
	return usecase.DestinationFilter{ActiveOnly: q.Active, Search: q.Search}
}

type RiskFactorRequest struct {
	Category    string           `json:"category" binding:"required" example:"natural_disaster"`
	Multiplier  *decimal.Decimal `json:"multiplier" binding:"required" swaggertype:"string" example:"0.30"`
	Description string           `json:"description"`
}

func (r RiskFactorRequest) ToInput() usecase.RiskFactorInput {
	in := usecase.RiskFactorInput{Category: r.Category, Description: r.Description}
	if r.Multiplier != nil {
		in.Multiplier = *r.Multiplier
	}
	return in
}

// RiskFactorQuery holds the query string of GET /risk-factors.
type RiskFactorQuery struct {
	DestinationID string `form:"destination_id"`
	Category      string `form:"category"`
	Band          string `form:"band"`
}

func (q RiskFactorQuery) ToFilter() (usecase.RiskFactorFilter, error) {
	f := usecase.RiskFactorFilter{DestinationID: q.DestinationID}
	if strings.TrimSpace(q.Category) != "" {
		c, err := entities.ParseRiskCategory(q.Category)
		if err != nil {
			return usecase.RiskFactorFilter{}, err
		}
		f.Category = c
	}
	if strings.TrimSpace(q.Band) != "" {
		b, err := entities.ParseRiskBand(q.Band)
		if err != nil {
			return usecase.RiskFactorFilter{}, err
		}
		f.Band = b
	}
	return f, nil
}

type PlanRequest struct {
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description" binding:"required"`
	CoverageType string           `json:"coverage_type" binding:"required" example:"standard"`
	DailyRate    *decimal.Decimal `json:"daily_rate" binding:"required" swaggertype:"string" example:"25.00"`
}

func (r PlanRequest) ToInput() usecase.PlanInput {
	in := usecase.PlanInput{Name: r.Name, Description: r.Description, CoverageType: r.CoverageType}
	if r.DailyRate != nil {
		in.DailyRate = *r.DailyRate
	}
	return in
}

// PlanQuery holds the query string of GET /plans. Rates are decimal strings.
type PlanQuery struct {
	CoverageType string `form:"coverage_type"`
	MinRate      string `form:"min_rate"`
	MaxRate      string `form:"max_rate"`
}

func (q PlanQuery) ToFilter() (usecase.PlanFilter, error) {
	var f usecase.PlanFilter
	if strings.TrimSpace(q.CoverageType) != "" {
		ct, err := entities.ParseCoverageType(q.CoverageType)
		if err != nil {
			return usecase.PlanFilter{}, err
		}
		f.CoverageType = ct
	}
	var err error
	if f.MinRate, err = parseOptionalDecimal("min_rate", q.MinRate); err != nil {
		return usecase.PlanFilter{}, err
	}
	if f.MaxRate, err = parseOptionalDecimal("max_rate", q.MaxRate); err != nil {
		return usecase.PlanFilter{}, err
	}
	return f, nil
}

// PlanCostQuery holds the query string of GET /plans/:id/cost.
type PlanCostQuery struct {
	Days      int `form:"days" binding:"required"`
	Travelers int `form:"travelers" binding:"required"`
}

func parseOptionalDecimal(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a decimal", entities.ErrValidation, field)
	}
	return &d, nil
}
