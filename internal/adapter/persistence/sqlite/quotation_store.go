package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const quotationColumns = "id, user_id, destination_id, plan_id, start_date, end_date, travelers, premium, status, created_at, updated_at"

type QuotationRepository struct {
	db *sql.DB
}

var _ interfaces.IQuotationRepository = (*QuotationRepository)(nil)

func (r *QuotationRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quotations (`+quotationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.UserID, q.DestinationID, q.PlanID,
		entities.FormatDate(q.StartDate), entities.FormatDate(q.EndDate), q.Travelers,
		premiumText(q.Premium), string(q.Status), timeText(q.CreatedAt), timeText(q.UpdatedAt))
	if err != nil {
		return entities.Quotation{}, mapError(err, "quotation "+q.ID)
	}
	return q, nil
}

func (r *QuotationRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+quotationColumns+" FROM quotations WHERE id = ?", id)
	q, err := scanQuotation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quotation{}, nil
	}
	return q, err
}

func (r *QuotationRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quotation, error) {
	return r.list(ctx, "WHERE user_id = ?", userID)
}

func (r *QuotationRepository) ListByDestinationID(ctx context.Context, destinationID string) ([]entities.Quotation, error) {
	return r.list(ctx, "WHERE destination_id = ?", destinationID)
}

func (r *QuotationRepository) ListByPlanID(ctx context.Context, planID string) ([]entities.Quotation, error) {
	return r.list(ctx, "WHERE plan_id = ?", planID)
}

func (r *QuotationRepository) List(ctx context.Context, preds ...query.Predicate[entities.Quotation]) ([]entities.Quotation, error) {
	out, err := r.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return query.Apply(out, preds...), nil
}

// TransitionStatus only touches the row while it still holds status `from`.
func (r *QuotationRepository) TransitionStatus(ctx context.Context, id string, from, to entities.QuotationStatus, premium decimal.NullDecimal) (entities.Quotation, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotations
		SET status = ?, premium = COALESCE(?, premium), updated_at = ?
		WHERE id = ? AND status = ?
		RETURNING `+quotationColumns,
		string(to), premiumText(premium), timeText(nowUTC()), id, string(from))
	q, err := scanQuotation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quotation{}, nil
	}
	if err != nil {
		return entities.Quotation{}, mapError(err, "quotation "+id)
	}
	return q, nil
}

func (r *QuotationRepository) list(ctx context.Context, where string, args ...any) ([]entities.Quotation, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+quotationColumns+" FROM quotations "+where+" ORDER BY created_at, id", args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotations: %w", err)
	}
	defer rows.Close()

	var out []entities.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func premiumText(p decimal.NullDecimal) sql.NullString {
	if !p.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: p.Decimal.StringFixed(2), Valid: true}
}

func scanQuotation(s scanner) (entities.Quotation, error) {
	var q entities.Quotation
	var start, end, status, createdAt, updatedAt string
	var premium sql.NullString
	if err := s.Scan(&q.ID, &q.UserID, &q.DestinationID, &q.PlanID, &start, &end, &q.Travelers,
		&premium, &status, &createdAt, &updatedAt); err != nil {
		return entities.Quotation{}, err
	}
	q.StartDate, _ = entities.ParseDate(start)
	q.EndDate, _ = entities.ParseDate(end)
	if premium.Valid {
		q.Premium = decimal.NewNullDecimal(parseDecimalText(premium.String))
	}
	q.Status = entities.QuotationStatus(status)
	q.CreatedAt = parseTimeText(createdAt)
	q.UpdatedAt = parseTimeText(updatedAt)
	return q, nil
}
