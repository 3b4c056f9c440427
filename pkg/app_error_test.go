package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
		if e.Error() != "PLAN_NOT_FOUND: Plan not found" {
			t.Fatalf("unexpected error string %q", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
		body := e.ToHTTPError()
		if body.Code != "PLAN_NOT_FOUND" || body.Message != "Plan not found" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("db down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
	})

	t.Run("with message keeps original", func(t *testing.T) {
		base := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		detailed := base.WithMessage("travelers must be >= 1")
		if base.Message != "Invalid request" || detailed.Message != "travelers must be >= 1" || detailed.Code != base.Code {
			t.Fatalf("unexpected messages base=%q detailed=%q", base.Message, detailed.Message)
		}
	})
}
