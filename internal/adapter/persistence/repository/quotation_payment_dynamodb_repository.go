package repository

import (
	"context"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsQuotationIDIndex = "quotation_id-index"
)

type quotationPaymentItem struct {
	ID                 string         `dynamodbav:"id"`
	QuotationID        string         `dynamodbav:"quotation_id"`
	Amount             string         `dynamodbav:"amount"`
	Date               string         `dynamodbav:"date"`
	Status             string         `dynamodbav:"status"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// QuotationPaymentDynamoRepository persists QuotationPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)
type QuotationPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationPaymentRepository = (*QuotationPaymentDynamoRepository)(nil)

func NewQuotationPaymentDynamoRepository(ddb DynamoAPI) *QuotationPaymentDynamoRepository {
	return &QuotationPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *QuotationPaymentDynamoRepository) Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
	av, err := attributevalue.MarshalMap(toQuotationPaymentItem(p))
	if err != nil {
		return entities.QuotationPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	return p, nil
}

func (r *QuotationPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotationPayment, error) {
	it, ok, err := getItem[quotationPaymentItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !ok {
		return entities.QuotationPayment{}, err
	}
	return fromQuotationPaymentItem(it), nil
}

func (r *QuotationPaymentDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error) {
	items, err := queryByIndex[quotationPaymentItem](ctx, r.ddb, r.tableName, paymentsQuotationIDIndex, "quotation_id", quotationID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.QuotationPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuotationPaymentItem(it))
	}
	return out, nil
}

func toQuotationPaymentItem(p entities.QuotationPayment) quotationPaymentItem {
	return quotationPaymentItem{
		ID:                 p.ID,
		QuotationID:        p.QuotationID,
		Amount:             p.Amount.StringFixed(2),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromQuotationPaymentItem(it quotationPaymentItem) entities.QuotationPayment {
	return entities.QuotationPayment{
		ID:                 it.ID,
		QuotationID:        it.QuotationID,
		Amount:             parseDecimal(it.Amount),
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
