package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hero_seguros/internal/adapter/http/handlers/mocks"
	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestQuotationPaymentHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationPaymentUseCase(ctrl)
		h := NewQuotationPaymentHandler(uc, false)

		r := gin.New()
		r.POST("/v1/quotations/:id/payments", h.Pay)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationPaymentUseCase(ctrl)
		h := NewQuotationPaymentHandler(uc, true)

		r := gin.New()
		r.POST("/v1/quotations/:id/payments", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "q-1", json.RawMessage("{}")).
			Return(entities.QuotationPayment{ID: "pay-1", QuotationID: "q-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("quotation not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationPaymentUseCase(ctrl)
		h := NewQuotationPaymentHandler(uc, false)

		r := gin.New()
		r.POST("/v1/quotations/:id/payments", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "q-1", gomock.Any()).Return(entities.QuotationPayment{}, usecase.ErrQuotationNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationPaymentUseCase(ctrl)
		h := NewQuotationPaymentHandler(uc, false)

		r := gin.New()
		r.POST("/v1/quotations/:id/payments", h.Pay)

		now := time.Now().UTC()
		uc.EXPECT().Pay(gomock.Any(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.QuotationPayment{ID: "pay-1", QuotationID: "q-1", Amount: decimal.NewFromInt(1500), Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" || body["amount"] != "1500.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationPaymentUseCase(ctrl)
		h := NewQuotationPaymentHandler(uc, false)

		r := gin.New()
		r.POST("/v1/quotations/:id/payments", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), "q-1", gomock.Any()).Return(entities.QuotationPayment{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/payments", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestQuotationPaymentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationPaymentUseCase(ctrl)
		h := NewQuotationPaymentHandler(uc, false)

		r := gin.New()
		r.GET("/v1/quotations/:id/payments", h.List)

		uc.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return(nil, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationPaymentUseCase(ctrl)
		h := NewQuotationPaymentHandler(uc, false)

		r := gin.New()
		r.GET("/v1/quotations/:id/payments", h.List)

		uc.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with [], got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected unwrapped payload, got payload=%s err=%v", string(payload), err)
	}
}
