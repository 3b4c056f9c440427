package request

import (
	"encoding/json"
	"errors"
	"strings"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase"
)

type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r UserRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

// QuotationRequest is the body of POST /quotations. Dates use YYYY-MM-DD.
type QuotationRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	DestinationID string `json:"destination_id" binding:"required"`
	PlanID        string `json:"plan_id" binding:"required"`
	StartDate     string `json:"start_date" binding:"required" example:"2025-01-10"`
	EndDate       string `json:"end_date" binding:"required" example:"2025-01-14"`
	Travelers     int    `json:"travelers" binding:"required"`
}

func (r QuotationRequest) ToInput() (usecase.QuotationInput, error) {
	start, err := entities.ParseDate(r.StartDate)
	if err != nil {
		return usecase.QuotationInput{}, err
	}
	end, err := entities.ParseDate(r.EndDate)
	if err != nil {
		return usecase.QuotationInput{}, err
	}
	return usecase.QuotationInput{
		UserID:        r.UserID,
		DestinationID: r.DestinationID,
		PlanID:        r.PlanID,
		StartDate:     start,
		EndDate:       end,
		Travelers:     r.Travelers,
	}, nil
}

// QuotationQuery holds the query string of GET /quotations and GET /users/:id/quotations.
// from and to must be given together.
type QuotationQuery struct {
	UserID        string `form:"user_id"`
	DestinationID string `form:"destination_id"`
	PlanID        string `form:"plan_id"`
	Status        string `form:"status"`
	Active        bool   `form:"active"`
	Expired       bool   `form:"expired"`
	From          string `form:"from"`
	To            string `form:"to"`
}

func (q QuotationQuery) ToFilter() (usecase.QuotationFilter, error) {
	f := usecase.QuotationFilter{
		UserID:        q.UserID,
		DestinationID: q.DestinationID,
		PlanID:        q.PlanID,
		ActiveOnly:    q.Active,
		ExpiredOnly:   q.Expired,
	}
	if strings.TrimSpace(q.Status) != "" {
		s, err := entities.ParseQuotationStatus(q.Status)
		if err != nil {
			return usecase.QuotationFilter{}, err
		}
		f.Status = s
	}
	if strings.TrimSpace(q.From) != "" {
		from, err := entities.ParseDate(q.From)
		if err != nil {
			return usecase.QuotationFilter{}, err
		}
		f.From = &from
	}
	if strings.TrimSpace(q.To) != "" {
		to, err := entities.ParseDate(q.To)
		if err != nil {
			return usecase.QuotationFilter{}, err
		}
		f.To = &to
	}
	return f, nil
}

// QuotationPaymentRequest documents the body of POST /quotations/:id/payments.
//
// mp_payload is forwarded as-is to Mercado Pago. A body without the envelope is
// treated as the provider payload itself.
type QuotationPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

// ErrEmptyProviderPayload is returned when mp_payload is present but null or blank.
var ErrEmptyProviderPayload = errors.New("mp_payload cannot be empty")

var errInvalidJSONBody = errors.New("request body is not valid json")

// ProviderPayload extracts the provider payload from a raw request body.
// An empty body yields "{}".
func ProviderPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errInvalidJSONBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, ErrEmptyProviderPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
