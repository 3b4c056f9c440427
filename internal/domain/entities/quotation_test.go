package entities

import (
	"errors"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQuotation_IsExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		q      Quotation
		expect bool
	}{
		{name: "future trip pending", q: Quotation{EndDate: date("2025-03-20"), Status: QuotationStatusPending}, expect: false},
		{name: "ends today", q: Quotation{EndDate: date("2025-03-10"), Status: QuotationStatusApproved}, expect: false},
		{name: "ended yesterday pending", q: Quotation{EndDate: date("2025-03-09"), Status: QuotationStatusPending}, expect: true},
		{name: "ended yesterday approved", q: Quotation{EndDate: date("2025-03-09"), Status: QuotationStatusApproved}, expect: true},
		{name: "ended yesterday rejected", q: Quotation{EndDate: date("2025-03-09"), Status: QuotationStatusRejected}, expect: true},
		{name: "stored expired future trip", q: Quotation{EndDate: date("2025-12-01"), Status: QuotationStatusExpired}, expect: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.IsExpired(now); got != tc.expect {
				t.Fatalf("IsExpired = %v, want %v", got, tc.expect)
			}
		})
	}
}

func TestQuotation_IsActive(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !(Quotation{EndDate: date("2025-03-11"), Status: QuotationStatusPending}).IsActive(now) {
		t.Fatalf("pending future quotation should be active")
	}
	if (Quotation{EndDate: date("2025-03-11"), Status: QuotationStatusRejected}).IsActive(now) {
		t.Fatalf("rejected quotation should not be active")
	}
	if (Quotation{EndDate: date("2025-03-01"), Status: QuotationStatusApproved}).IsActive(now) {
		t.Fatalf("past quotation should not be active")
	}
}

func TestQuotationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to QuotationStatus
		ok       bool
	}{
		{QuotationStatusPending, QuotationStatusApproved, true},
		{QuotationStatusPending, QuotationStatusRejected, true},
		{QuotationStatusPending, QuotationStatusExpired, true},
		{QuotationStatusPending, QuotationStatusPending, false},
		{QuotationStatusApproved, QuotationStatusRejected, false},
		{QuotationStatusApproved, QuotationStatusApproved, false},
		{QuotationStatusRejected, QuotationStatusApproved, false},
		{QuotationStatusExpired, QuotationStatusApproved, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestParseQuotationStatus(t *testing.T) {
	if s, err := ParseQuotationStatus("Approved"); err != nil || s != QuotationStatusApproved {
		t.Fatalf("unexpected result %q %v", s, err)
	}
	if _, err := ParseQuotationStatus("cancelled"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(d) != "2025-01-10" || d.Location() != time.UTC {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := ParseDate("10/01/2025"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if FormatDate(time.Time{}) != "" {
		t.Fatalf("zero date should format empty")
	}
}
