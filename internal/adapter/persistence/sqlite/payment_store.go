package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase/interfaces"
)

const paymentColumns = "id, quotation_id, amount, date, status, provider_payload, provider_payload_raw"

type PaymentRepository struct {
	db *sql.DB
}

var _ interfaces.IQuotationPaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
	var payload sql.NullString
	if p.ProviderPayload != nil {
		b, err := json.Marshal(p.ProviderPayload)
		if err != nil {
			return entities.QuotationPayment{}, fmt.Errorf("marshalling provider payload: %w", err)
		}
		payload = sql.NullString{String: string(b), Valid: true}
	}
	var raw sql.NullString
	if len(p.ProviderPayloadRaw) > 0 {
		raw = sql.NullString{String: string(p.ProviderPayloadRaw), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.QuotationID, p.Amount.StringFixed(2), timeText(p.Date), string(p.Status), payload, raw)
	if err != nil {
		return entities.QuotationPayment{}, mapError(err, "payment "+p.ID)
	}
	return p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.QuotationPayment, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = ?", id)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuotationPayment{}, nil
	}
	return p, err
}

func (r *PaymentRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE quotation_id = ? ORDER BY date, id", quotationID)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	var out []entities.QuotationPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(s scanner) (entities.QuotationPayment, error) {
	var p entities.QuotationPayment
	var amount, date, status string
	var payload, raw sql.NullString
	if err := s.Scan(&p.ID, &p.QuotationID, &amount, &date, &status, &payload, &raw); err != nil {
		return entities.QuotationPayment{}, err
	}
	p.Amount = parseDecimalText(amount)
	p.Date = parseTimeText(date)
	p.Status = entities.PaymentStatus(status)
	if payload.Valid {
		if err := json.Unmarshal([]byte(payload.String), &p.ProviderPayload); err != nil {
			return entities.QuotationPayment{}, fmt.Errorf("unmarshalling provider payload: %w", err)
		}
	}
	if raw.Valid {
		p.ProviderPayloadRaw = json.RawMessage(raw.String)
	}
	return p, nil
}
