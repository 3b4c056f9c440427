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

const planColumns = "id, name, description, coverage_type, daily_rate, created_at, updated_at"

type PlanRepository struct {
	db *sql.DB
}

var _ interfaces.IPlanRepository = (*PlanRepository)(nil)

func (r *PlanRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plans (`+planColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Description, string(p.CoverageType), p.DailyRate.StringFixed(entities.RatePlaces),
		timeText(p.CreatedAt), timeText(p.UpdatedAt))
	if err != nil {
		return entities.Plan{}, mapError(err, "plan "+p.ID)
	}
	return p, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+planColumns+" FROM plans WHERE id = ?", id)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Plan{}, nil
	}
	return p, err
}

func (r *PlanRepository) Update(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE plans
		SET name = ?, description = ?, coverage_type = ?, daily_rate = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+planColumns,
		p.Name, p.Description, string(p.CoverageType), p.DailyRate.StringFixed(entities.RatePlaces), timeText(p.UpdatedAt), p.ID)
	out, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Plan{}, nil
	}
	if err != nil {
		return entities.Plan{}, mapError(err, "plan "+p.ID)
	}
	return out, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return mapError(err, fmt.Sprintf("plan %s is referenced by quotations", id))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("plan %s: %w", id, entities.ErrNotFound)
	}
	return nil
}

func (r *PlanRepository) List(ctx context.Context, preds ...query.Predicate[entities.Plan]) ([]entities.Plan, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+planColumns+" FROM plans ORDER BY CAST(daily_rate AS REAL), name")
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var out []entities.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return query.Apply(out, preds...), nil
}

func scanPlan(s scanner) (entities.Plan, error) {
	var p entities.Plan
	var coverage, rate, createdAt, updatedAt string
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &coverage, &rate, &createdAt, &updatedAt); err != nil {
		return entities.Plan{}, err
	}
	p.CoverageType = entities.CoverageType(coverage)
	p.DailyRate = parseDecimalText(rate)
	p.CreatedAt = parseTimeText(createdAt)
	p.UpdatedAt = parseTimeText(updatedAt)
	return p, nil
}
