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

const destinationColumns = "id, country, code, base_risk_factor, description, active, created_at, updated_at"

// DestinationRepository stores destinations. Risk factors go with their
// destination through ON DELETE CASCADE and quotations block the delete
// through ON DELETE RESTRICT.
type DestinationRepository struct {
	db *sql.DB
}

var _ interfaces.IDestinationRepository = (*DestinationRepository)(nil)

func (r *DestinationRepository) Create(ctx context.Context, d entities.Destination) (entities.Destination, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO destinations (`+destinationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.Country, d.Code, d.BaseRiskFactor.StringFixed(entities.RatePlaces), d.Description, d.Active,
		timeText(d.CreatedAt), timeText(d.UpdatedAt))
	if err != nil {
		return entities.Destination{}, mapError(err, "destination code "+d.Code)
	}
	return d, nil
}

func (r *DestinationRepository) GetByID(ctx context.Context, id string) (entities.Destination, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+destinationColumns+" FROM destinations WHERE id = ?", id)
	return scanDestinationRow(row)
}

func (r *DestinationRepository) GetByCode(ctx context.Context, code string) (entities.Destination, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+destinationColumns+" FROM destinations WHERE code = ?", entities.NormalizeDestinationCode(code))
	return scanDestinationRow(row)
}

func (r *DestinationRepository) GetWithRiskFactors(ctx context.Context, id string) (entities.Destination, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil || d.ID == "" {
		return d, err
	}
	factors, err := (&RiskFactorRepository{db: r.db}).ListByDestinationID(ctx, id)
	if err != nil {
		return entities.Destination{}, err
	}
	d.RiskFactors = factors
	return d, nil
}

// Update returns the zero Destination when the id is unknown.
func (r *DestinationRepository) Update(ctx context.Context, d entities.Destination) (entities.Destination, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE destinations
		SET country = ?, code = ?, base_risk_factor = ?, description = ?, active = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+destinationColumns,
		d.Country, d.Code, d.BaseRiskFactor.StringFixed(entities.RatePlaces), d.Description, d.Active, timeText(d.UpdatedAt), d.ID)
	out, err := scanDestinationRow(row)
	if err != nil {
		return entities.Destination{}, mapError(err, "destination code "+d.Code)
	}
	return out, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM destinations WHERE id = ?", id)
	if err != nil {
		return mapError(err, fmt.Sprintf("destination %s is referenced by quotations", id))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("destination %s: %w", id, entities.ErrNotFound)
	}
	return nil
}

func (r *DestinationRepository) List(ctx context.Context, preds ...query.Predicate[entities.Destination]) ([]entities.Destination, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+destinationColumns+" FROM destinations ORDER BY country, code")
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	var out []entities.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return query.Apply(out, preds...), nil
}

func scanDestinationRow(row *sql.Row) (entities.Destination, error) {
	d, err := scanDestination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Destination{}, nil
	}
	return d, err
}

func scanDestination(s scanner) (entities.Destination, error) {
	var d entities.Destination
	var base, createdAt, updatedAt string
	if err := s.Scan(&d.ID, &d.Country, &d.Code, &base, &d.Description, &d.Active, &createdAt, &updatedAt); err != nil {
		return entities.Destination{}, err
	}
	d.BaseRiskFactor = parseDecimalText(base)
	d.CreatedAt = parseTimeText(createdAt)
	d.UpdatedAt = parseTimeText(updatedAt)
	return d, nil
}
