package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a quotation.
//
// A quotation starts pending and is either approved (premium frozen) or rejected.
// Expired is stored by the overdue sweep but is also derived at read time from the end date.
type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusExpired  QuotationStatus = "expired"
)

func QuotationStatuses() []QuotationStatus {
	return []QuotationStatus{
		QuotationStatusPending,
		QuotationStatusApproved,
		QuotationStatusRejected,
		QuotationStatusExpired,
	}
}

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusPending, QuotationStatusApproved, QuotationStatusRejected, QuotationStatusExpired:
		return true
	}
	return false
}

func ParseQuotationStatus(s string) (QuotationStatus, error) {
	st := QuotationStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown quotation status %q", ErrValidation, s)
	}
	return st, nil
}

// CanTransitionTo reports whether next is reachable from s.
// Only pending quotations move; approved, rejected and expired are terminal.
func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	if s != QuotationStatusPending {
		return false
	}
	switch next {
	case QuotationStatusApproved, QuotationStatusRejected, QuotationStatusExpired:
		return true
	}
	return false
}

// Quotation binds a user, a destination and a plan over a trip.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSIs: user_id-index, destination_id-index, plan_id-index
//
// Premium is null until the quotation is approved.
type Quotation struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	DestinationID string              `json:"destination_id"`
	PlanID        string              `json:"plan_id"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       time.Time           `json:"end_date"`
	Travelers     int                 `json:"travelers"`
	Premium       decimal.NullDecimal `json:"premium"`
	Status        QuotationStatus     `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// IsExpired reports whether the quotation is stored as expired or its trip
// ended before the calendar day of now.
func (q Quotation) IsExpired(now time.Time) bool {
	return q.Status == QuotationStatusExpired || CivilDate(q.EndDate).Before(CivilDate(now))
}

// IsActive reports a pending or approved quotation whose trip has not ended.
func (q Quotation) IsActive(now time.Time) bool {
	if q.Status != QuotationStatusPending && q.Status != QuotationStatusApproved {
		return false
	}
	return !q.IsExpired(now)
}
