// Package seed loads reference data (destinations with their risk factors and
// plans) from TOML or YAML files and creates it through the use cases, so the
// same validation applies as for API writes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported seed format (want .toml, .yaml or .yml)")

type File struct {
	Destinations []Destination `toml:"destinations" yaml:"destinations"`
	Plans        []Plan        `toml:"plans" yaml:"plans"`
}

// Destination is the file form of a destination. Decimal values are strings
// so they keep their exact digits.
type Destination struct {
	Country        string       `toml:"country" yaml:"country"`
	Code           string       `toml:"code" yaml:"code"`
	BaseRiskFactor string       `toml:"base_risk_factor" yaml:"base_risk_factor"`
	Description    string       `toml:"description" yaml:"description"`
	Active         *bool        `toml:"active" yaml:"active"`
	RiskFactors    []RiskFactor `toml:"risk_factors" yaml:"risk_factors"`
}

type RiskFactor struct {
	Category    string `toml:"category" yaml:"category"`
	Multiplier  string `toml:"multiplier" yaml:"multiplier"`
	Description string `toml:"description" yaml:"description"`
}

type Plan struct {
	Name         string `toml:"name" yaml:"name"`
	Description  string `toml:"description" yaml:"description"`
	CoverageType string `toml:"coverage_type" yaml:"coverage_type"`
	DailyRate    string `toml:"daily_rate" yaml:"daily_rate"`
}

// Load reads and validates a seed file, picking the decoder by extension.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(b, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// Parse decodes data in the given format ("toml", "yaml" or "yml") and
// validates it.
func Parse(data []byte, format string) (File, error) {
	var f File
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("%w: decode toml: %v", entities.ErrValidation, err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("%w: decode yaml: %v", entities.ErrValidation, err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := f.validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f File) validate() error {
	codes := map[string]bool{}
	for i, d := range f.Destinations {
		field := fmt.Sprintf("destinations[%d]", i)
		if strings.TrimSpace(d.Country) == "" {
			return invalidField(field+".country", "country is required")
		}
		code := entities.NormalizeDestinationCode(d.Code)
		if code == "" {
			return invalidField(field+".code", "code is required")
		}
		if codes[code] {
			return invalidField(field+".code", "duplicate code "+code)
		}
		codes[code] = true
		if d.BaseRiskFactor != "" {
			if _, err := decimal.NewFromString(d.BaseRiskFactor); err != nil {
				return invalidField(field+".base_risk_factor", err.Error())
			}
		}
		for j, rf := range d.RiskFactors {
			rfField := fmt.Sprintf("%s.risk_factors[%d]", field, j)
			if _, err := entities.ParseRiskCategory(rf.Category); err != nil {
				return invalidField(rfField+".category", err.Error())
			}
			if _, err := decimal.NewFromString(rf.Multiplier); err != nil {
				return invalidField(rfField+".multiplier", err.Error())
			}
		}
	}
	for i, p := range f.Plans {
		field := fmt.Sprintf("plans[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			return invalidField(field+".name", "name is required")
		}
		if _, err := entities.ParseCoverageType(p.CoverageType); err != nil {
			return invalidField(field+".coverage_type", err.Error())
		}
		if _, err := decimal.NewFromString(p.DailyRate); err != nil {
			return invalidField(field+".daily_rate", err.Error())
		}
	}
	return nil
}

func invalidField(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", entities.ErrValidation, field, msg)
}

// Targets are the use cases the seed is written through.
type Targets struct {
	Destinations usecase.IDestinationUseCase
	RiskFactors  usecase.IRiskFactorUseCase
	Plans        usecase.IPlanUseCase
}

type Result struct {
	DestinationsCreated int
	DestinationsSkipped int
	RiskFactorsCreated  int
	PlansCreated        int
	PlansSkipped        int
}

// Apply creates the file contents. Destinations whose code already exists are
// skipped together with their risk factors, and so are plans matching an
// existing plan by name and coverage type, so re-running a seed is harmless.
func Apply(ctx context.Context, f File, t Targets) (Result, error) {
	var res Result
	for _, d := range f.Destinations {
		in := usecase.DestinationInput{
			Country:     d.Country,
			Code:        d.Code,
			Description: d.Description,
			Active:      d.Active,
		}
		if d.BaseRiskFactor != "" {
			base := decimal.RequireFromString(d.BaseRiskFactor)
			in.BaseRiskFactor = &base
		}
		created, err := t.Destinations.Create(ctx, in)
		if errors.Is(err, usecase.ErrDestinationCodeTaken) {
			log.Printf("[seed] destination skipped code=%s reason=exists", entities.NormalizeDestinationCode(d.Code))
			res.DestinationsSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("destination %s: %w", d.Code, err)
		}
		res.DestinationsCreated++

		for _, rf := range d.RiskFactors {
			_, err := t.RiskFactors.Create(ctx, created.ID, usecase.RiskFactorInput{
				Category:    rf.Category,
				Multiplier:  decimal.RequireFromString(rf.Multiplier),
				Description: rf.Description,
			})
			if err != nil {
				return res, fmt.Errorf("risk factor %s of %s: %w", rf.Category, created.Code, err)
			}
			res.RiskFactorsCreated++
		}
	}

	existing, err := t.Plans.List(ctx, usecase.PlanFilter{})
	if err != nil {
		return res, err
	}
	seen := map[string]bool{}
	for _, p := range existing {
		seen[planKey(p.Name, string(p.CoverageType))] = true
	}
	for _, p := range f.Plans {
		key := planKey(p.Name, p.CoverageType)
		if seen[key] {
			log.Printf("[seed] plan skipped name=%s reason=exists", p.Name)
			res.PlansSkipped++
			continue
		}
		_, err := t.Plans.Create(ctx, usecase.PlanInput{
			Name:         p.Name,
			Description:  p.Description,
			CoverageType: p.CoverageType,
			DailyRate:    decimal.RequireFromString(p.DailyRate),
		})
		if err != nil {
			return res, fmt.Errorf("plan %s: %w", p.Name, err)
		}
		seen[key] = true
		res.PlansCreated++
	}
	log.Printf("[seed] done destinations=%d skipped=%d risk_factors=%d plans=%d plans_skipped=%d",
		res.DestinationsCreated, res.DestinationsSkipped, res.RiskFactorsCreated, res.PlansCreated, res.PlansSkipped)
	return res, nil
}

func planKey(name, coverage string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(coverage))
}
