package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hero_seguros/internal/domain/entities"
	mock_interfaces "hero_seguros/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func approvedQuotation() entities.Quotation {
	q := pendingQuotation()
	q.Status = entities.QuotationStatusApproved
	q.Premium = decimal.NewNullDecimal(decimal.RequireFromString("1500.00"))
	return q
}

func TestQuotationPaymentUseCase_Pay_Validations(t *testing.T) {
	t.Run("empty quotation id", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, false)
		_, err := uc.Pay(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, false)
		_, err := uc.Pay(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, false)
		_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, false)
		_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestQuotationPaymentUseCase_Pay_QuotationChecks(t *testing.T) {
	expired := approvedQuotation()
	expired.EndDate = date("2025-06-01")
	pending := pendingQuotation()

	cases := []struct {
		name      string
		quotation entities.Quotation
		want      error
	}{
		{name: "not found", quotation: entities.Quotation{}, want: ErrQuotationNotFound},
		{name: "pending", quotation: pending, want: ErrQuotationNotApproved},
		{name: "expired", quotation: expired, want: ErrQuotationExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
			qRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewQuotationPaymentUseCase(repo, qRepo, gateway, false).WithClock(fixedClock)

			qRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(tc.quotation, nil)

			_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("quotation repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotationPaymentUseCase(nil, qRepo, gateway, false)

		qRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, errors.New("db"))

		_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationPaymentUseCase_Pay_Gateway(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotationPaymentUseCase(nil, qRepo, gateway, false).WithClock(fixedClock)

		qRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(), nil)

		_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payer":{"email":"a@b.com"}}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	errorCases := []struct {
		name string
		err  error
		want error
	}{
		{name: "bad request", err: errors.New(`{"error":"bad_request","status":400}`), want: ErrPaymentGatewayBadRequest},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized","status":401}`), want: ErrPaymentGatewayUnauthorized},
		{name: "invalid users", err: errors.New(`{"code":2034,"message":"Invalid users involved"}`), want: ErrPaymentGatewayInvalidUsers},
		{name: "customer not found", err: errors.New(`{"code":2002,"message":"Customer not found"}`), want: ErrPaymentGatewayCustomerNotFound},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			qRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewQuotationPaymentUseCase(nil, qRepo, gateway, false).WithClock(fixedClock)

			qRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	statusCases := []struct {
		providerStatus string
		want           entities.PaymentStatus
	}{
		{providerStatus: "approved", want: entities.PaymentStatusApproved},
		{providerStatus: "rejected", want: entities.PaymentStatusDenied},
		{providerStatus: "in_process", want: entities.PaymentStatusPending},
	}
	for _, tc := range statusCases {
		t.Run("status "+tc.providerStatus, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
			qRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewQuotationPaymentUseCase(repo, qRepo, gateway, false).WithClock(fixedClock)

			qRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "q-1" {
						t.Fatalf("external_reference not set")
					}
					if body["transaction_amount"] != float64(1500) {
						t.Fatalf("transaction_amount should come from the premium, got %v", body["transaction_amount"])
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":"pay-1"}`), nil
				},
			)
			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuotationPayment{})).DoAndReturn(
				func(_ context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
					if p.ID != "pay-1" || p.QuotationID != "q-1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if !p.Amount.Equal(decimal.NewFromInt(1500)) || p.Date.IsZero() {
						t.Fatalf("unexpected amount/date: %+v", p)
					}
					return p, nil
				},
			)

			res, err := uc.Pay(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.com"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.Status)
			}
		})
	}
}

func TestQuotationPaymentUseCase_Pay_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
	qRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	uc := NewQuotationPaymentUseCase(repo, qRepo, nil, true).WithClock(fixedClock)

	qRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuotation(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
			if p.ID == "" || p.Status != entities.PaymentStatusApproved {
				t.Fatalf("unexpected payment: %+v", p)
			}
			if p.ProviderPayload["external_reference"] != "q-1" || p.ProviderPayload["status_detail"] != "accredited" {
				t.Fatalf("unexpected provider payload: %+v", p.ProviderPayload)
			}
			return p, nil
		},
	)

	if _, err := uc.Pay(context.Background(), "q-1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuotationPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, false)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
		uc := NewQuotationPaymentUseCase(repo, nil, nil, false)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.QuotationPayment{}, nil)

		if _, err := uc.GetByID(context.Background(), "pay-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("ListByQuotationID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
		uc := NewQuotationPaymentUseCase(repo, nil, nil, false)

		repo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.QuotationPayment{{ID: "pay-1"}}, nil)

		res, err := uc.ListByQuotationID(context.Background(), " q-1 ")
		if err != nil || len(res) != 1 {
			t.Fatalf("expected one payment, got %+v (%v)", res, err)
		}
	})
}
