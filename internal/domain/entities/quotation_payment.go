package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotationPayment records the purchase of an approved quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (quotation_id-index): quotation_id
//
// ProviderPayloadRaw keeps the provider response body for audit; ProviderPayload is
// the parsed form. Payments outlive the quotation they paid for.
type QuotationPayment struct {
	ID          string          `json:"id"`
	QuotationID string          `json:"quotation_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Status      PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}

// ProviderStatusToPaymentStatus maps a provider status string onto PaymentStatus.
func ProviderStatusToPaymentStatus(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}
