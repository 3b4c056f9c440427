package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/pricing"
	"hero_seguros/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound                = fmt.Errorf("payment %w", entities.ErrNotFound)
	ErrInvalidPaymentID               = fmt.Errorf("%w: invalid payment id", entities.ErrValidation)
	ErrInvalidProviderPayload         = fmt.Errorf("%w: invalid payment provider payload", entities.ErrValidation)
	ErrQuotationNotApproved           = fmt.Errorf("%w: quotation not approved", entities.ErrInvalidTransition)
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IQuotationPaymentUseCase charges the frozen premium of an approved quotation.
type IQuotationPaymentUseCase interface {
	Pay(ctx context.Context, quotationID string, providerPayload json.RawMessage) (entities.QuotationPayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotationPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error)
}

type QuotationPaymentUseCase struct {
	repo          interfaces.IQuotationPaymentRepository
	quotationRepo interfaces.IQuotationRepository
	gateway       interfaces.IPaymentGateway
	mockMode      bool
	now           func() time.Time
}

var _ IQuotationPaymentUseCase = (*QuotationPaymentUseCase)(nil)

func NewQuotationPaymentUseCase(repo interfaces.IQuotationPaymentRepository, quotationRepo interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway, mockMode bool) *QuotationPaymentUseCase {
	return &QuotationPaymentUseCase{
		repo:          repo,
		quotationRepo: quotationRepo,
		gateway:       gateway,
		mockMode:      mockMode,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used for the expiry check.
func (u *QuotationPaymentUseCase) WithClock(now func() time.Time) *QuotationPaymentUseCase {
	u.now = now
	return u
}

func (u *QuotationPaymentUseCase) Pay(ctx context.Context, quotationID string, payload json.RawMessage) (entities.QuotationPayment, error) {
	log.Printf("[payment][usecase] pay start raw_quotation_id=%q payload_len=%d mock=%t", quotationID, len(payload), u.mockMode)
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.QuotationPayment{}, ErrInvalidQuotationID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.mockMode {
			log.Printf("[payment][usecase] invalid payload quotation_id=%s", quotationID)
			return entities.QuotationPayment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if !u.mockMode && u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured quotation_id=%s", quotationID)
		return entities.QuotationPayment{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quotation quotation_id=%s err=%v", quotationID, err)
		return entities.QuotationPayment{}, err
	}
	if q.ID == "" {
		return entities.QuotationPayment{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusApproved || !q.Premium.Valid {
		log.Printf("[payment][usecase] quotation not approved quotation_id=%s status=%s", quotationID, q.Status)
		return entities.QuotationPayment{}, ErrQuotationNotApproved
	}
	if q.IsExpired(u.now()) {
		log.Printf("[payment][usecase] quotation expired quotation_id=%s end_date=%s", quotationID, entities.FormatDate(q.EndDate))
		return entities.QuotationPayment{}, ErrQuotationExpired
	}
	amount := q.Premium.Decimal
	log.Printf("[payment][usecase] quotation loaded quotation_id=%s premium=%s", quotationID, amount.StringFixed(pricing.MoneyPlaces))

	// The stored premium is the source of truth for the charged amount.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		if !u.mockMode {
			return entities.QuotationPayment{}, ErrInvalidProviderPayload
		}
		reqMap = map[string]any{}
	}
	if !u.mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id quotation_id=%s", quotationID)
			return entities.QuotationPayment{}, ErrInvalidProviderPayload
		}
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer quotation_id=%s", quotationID)
			return entities.QuotationPayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quotationID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Travel insurance quotation %s", quotationID)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotationPayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if u.mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway quotation_id=%s", quotationID)
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap, u.now())
		if err != nil {
			return entities.QuotationPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed quotation_id=%s err=%v", quotationID, err)
			return entities.QuotationPayment{}, mapGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success quotation_id=%s provider_payment_id=%s provider_status=%s", quotationID, providerPaymentID, providerStatus)

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quotation_id=%s err=%v", quotationID, err)
	}

	p := entities.QuotationPayment{
		ID:                 providerPaymentID,
		QuotationID:        quotationID,
		Amount:             amount,
		Date:               u.now(),
		Status:             entities.ProviderStatusToPaymentStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed quotation_id=%s payment_id=%s err=%v", quotationID, p.ID, err)
		return entities.QuotationPayment{}, err
	}
	log.Printf("[payment][usecase] pay success quotation_id=%s payment_id=%s status=%s", quotationID, created.ID, created.Status)
	return created, nil
}

func (u *QuotationPaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotationPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotationPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	if p.ID == "" {
		return entities.QuotationPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *QuotationPaymentUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}

func mockProviderResponse(req map[string]any, now time.Time) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	ts := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = ts
	resp["date_approved"] = ts
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}
