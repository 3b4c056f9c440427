package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"
)

const riskFactorColumns = "id, destination_id, category, multiplier, description, created_at, updated_at"

type RiskFactorRepository struct {
	db *sql.DB
}

var _ interfaces.IRiskFactorRepository = (*RiskFactorRepository)(nil)

func (r *RiskFactorRepository) Create(ctx context.Context, f entities.RiskFactor) (entities.RiskFactor, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO risk_factors (`+riskFactorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.DestinationID, string(f.Category), f.Multiplier.StringFixed(entities.RatePlaces), f.Description,
		timeText(f.CreatedAt), timeText(f.UpdatedAt))
	if err != nil {
		return entities.RiskFactor{}, mapError(err, "destination "+f.DestinationID)
	}
	return f, nil
}

func (r *RiskFactorRepository) GetByID(ctx context.Context, id string) (entities.RiskFactor, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+riskFactorColumns+" FROM risk_factors WHERE id = ?", id)
	f, err := scanRiskFactor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RiskFactor{}, nil
	}
	return f, err
}

// Update leaves destination_id alone and returns the zero RiskFactor when the
// id is unknown.
func (r *RiskFactorRepository) Update(ctx context.Context, f entities.RiskFactor) (entities.RiskFactor, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE risk_factors
		SET category = ?, multiplier = ?, description = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+riskFactorColumns,
		string(f.Category), f.Multiplier.StringFixed(entities.RatePlaces), f.Description, timeText(f.UpdatedAt), f.ID)
	out, err := scanRiskFactor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RiskFactor{}, nil
	}
	if err != nil {
		return entities.RiskFactor{}, mapError(err, "risk factor "+f.ID)
	}
	return out, nil
}

func (r *RiskFactorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM risk_factors WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("risk factor %s: %w", id, entities.ErrNotFound)
	}
	return nil
}

func (r *RiskFactorRepository) ListByDestinationID(ctx context.Context, destinationID string) ([]entities.RiskFactor, error) {
	return r.list(ctx, "SELECT "+riskFactorColumns+" FROM risk_factors WHERE destination_id = ? ORDER BY created_at, id", destinationID)
}

func (r *RiskFactorRepository) List(ctx context.Context, preds ...query.Predicate[entities.RiskFactor]) ([]entities.RiskFactor, error) {
	out, err := r.list(ctx, "SELECT "+riskFactorColumns+" FROM risk_factors ORDER BY destination_id, created_at, id")
	if err != nil {
		return nil, err
	}
	return query.Apply(out, preds...), nil
}

func (r *RiskFactorRepository) list(ctx context.Context, q string, args ...any) ([]entities.RiskFactor, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying risk factors: %w", err)
	}
	defer rows.Close()

	var out []entities.RiskFactor
	for rows.Next() {
		f, err := scanRiskFactor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanRiskFactor(s scanner) (entities.RiskFactor, error) {
	var f entities.RiskFactor
	var category, multiplier, createdAt, updatedAt string
	if err := s.Scan(&f.ID, &f.DestinationID, &category, &multiplier, &f.Description, &createdAt, &updatedAt); err != nil {
		return entities.RiskFactor{}, err
	}
	f.Category = entities.RiskCategory(category)
	f.Multiplier = parseDecimalText(multiplier)
	f.CreatedAt = parseTimeText(createdAt)
	f.UpdatedAt = parseTimeText(updatedAt)
	return f, nil
}
