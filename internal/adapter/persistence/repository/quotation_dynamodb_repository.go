package repository

import (
	"context"
	"fmt"
	"sort"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultQuotationsTableName   = "quotations"
	quotationsUserIDIndex        = "user_id-index"
	quotationsDestinationIDIndex = "destination_id-index"
	quotationsPlanIDIndex        = "plan_id-index"

	// quotationsPerBatch keeps a cascade batch (one delete plus at most two counter
	// updates per quotation) within maxTransactItems.
	quotationsPerBatch = 32
)

type quotationItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	DestinationID string `dynamodbav:"destination_id"`
	PlanID        string `dynamodbav:"plan_id"`
	StartDate     string `dynamodbav:"start_date"`
	EndDate       string `dynamodbav:"end_date"`
	Travelers     int    `dynamodbav:"travelers"`
	Premium       string `dynamodbav:"premium,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSIs: user_id-index, destination_id-index, plan_id-index
//
// Creating a quotation checks the user and bumps quotation_count on its
// destination and plan in one transaction, which is what lets those rows refuse
// deletion while referenced.
type QuotationDynamoRepository struct {
	ddb               DynamoAPI
	tableName         string
	usersTable        string
	destinationsTable string
	plansTable        string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		usersTable:        getenvDefault("USERS_TABLE", defaultUsersTableName),
		destinationsTable: getenvDefault("DESTINATIONS_TABLE", defaultDestinationsTableName),
		plansTable:        getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{ConditionCheck: &types.ConditionCheck{
				TableName:                aws.String(r.usersTable),
				Key:                      idKey(q.UserID),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			counterDelta(r.destinationsTable, q.DestinationID, 1),
			counterDelta(r.plansTable, q.PlanID, 1),
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		switch {
		case canceledAt(err, 0):
			return entities.Quotation{}, fmt.Errorf("user %s: %w", q.UserID, entities.ErrReferentialIntegrity)
		case canceledAt(err, 1):
			return entities.Quotation{}, fmt.Errorf("destination %s: %w", q.DestinationID, entities.ErrReferentialIntegrity)
		case canceledAt(err, 2):
			return entities.Quotation{}, fmt.Errorf("plan %s: %w", q.PlanID, entities.ErrReferentialIntegrity)
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	it, ok, err := getItem[quotationItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !ok {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quotation, error) {
	return r.listByIndex(ctx, quotationsUserIDIndex, "user_id", userID)
}

func (r *QuotationDynamoRepository) ListByDestinationID(ctx context.Context, destinationID string) ([]entities.Quotation, error) {
	return r.listByIndex(ctx, quotationsDestinationIDIndex, "destination_id", destinationID)
}

func (r *QuotationDynamoRepository) ListByPlanID(ctx context.Context, planID string) ([]entities.Quotation, error) {
	return r.listByIndex(ctx, quotationsPlanIDIndex, "plan_id", planID)
}

func (r *QuotationDynamoRepository) List(ctx context.Context, preds ...query.Predicate[entities.Quotation]) ([]entities.Quotation, error) {
	items, err := scanAll[quotationItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return query.Apply(fromQuotationItems(items), preds...), nil
}

// TransitionStatus is a compare-and-swap on status. A valid premium is written
// alongside the new status.
func (r *QuotationDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.QuotationStatus, premium decimal.NullDecimal) (entities.Quotation, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	if premium.Valid {
		expr += ", #premium = :premium"
		names["#premium"] = "premium"
		values[":premium"] = &types.AttributeValueMemberS{Value: premium.Decimal.StringFixed(2)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Quotation, error) {
	items, err := queryByIndex[quotationItem](ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	return fromQuotationItems(items), nil
}

// quotationDeleteBatches turns quotation deletions into transaction batches that
// also give back the quotation_count each one held on its destination and plan.
func quotationDeleteBatches(quotationsTable, destinationsTable, plansTable string, items []quotationItem) [][]types.TransactWriteItem {
	var batches [][]types.TransactWriteItem
	for _, part := range chunk(items, quotationsPerBatch) {
		perDestination := map[string]int{}
		perPlan := map[string]int{}
		batch := make([]types.TransactWriteItem, 0, len(part)*3)
		for _, it := range part {
			batch = append(batch, types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(quotationsTable),
				Key:       idKey(it.ID),
			}})
			perDestination[it.DestinationID]++
			perPlan[it.PlanID]++
		}
		batch = append(batch, counterUpdates(destinationsTable, perDestination)...)
		batch = append(batch, counterUpdates(plansTable, perPlan)...)
		batches = append(batches, batch)
	}
	return batches
}

func counterUpdates(table string, counts map[string]int) []types.TransactWriteItem {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]types.TransactWriteItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, counterDelta(table, id, -counts[id]))
	}
	return out
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:            q.ID,
		UserID:        q.UserID,
		DestinationID: q.DestinationID,
		PlanID:        q.PlanID,
		StartDate:     entities.FormatDate(q.StartDate),
		EndDate:       entities.FormatDate(q.EndDate),
		Travelers:     q.Travelers,
		Status:        string(q.Status),
		CreatedAt:     formatTime(q.CreatedAt),
		UpdatedAt:     formatTime(q.UpdatedAt),
	}
	if q.Premium.Valid {
		it.Premium = q.Premium.Decimal.StringFixed(2)
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	start, _ := entities.ParseDate(it.StartDate)
	end, _ := entities.ParseDate(it.EndDate)
	q := entities.Quotation{
		ID:            it.ID,
		UserID:        it.UserID,
		DestinationID: it.DestinationID,
		PlanID:        it.PlanID,
		StartDate:     start,
		EndDate:       end,
		Travelers:     it.Travelers,
		Status:        entities.QuotationStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.Premium != "" {
		q.Premium = decimal.NewNullDecimal(parseDecimal(it.Premium))
	}
	return q
}

func fromQuotationItems(items []quotationItem) []entities.Quotation {
	out := make([]entities.Quotation, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuotationItem(it))
	}
	return out
}
