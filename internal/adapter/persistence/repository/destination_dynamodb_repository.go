package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDestinationsTableName     = "destinations"
	defaultDestinationCodesTableName = "destination_codes"
)

type destinationItem struct {
	ID             string `dynamodbav:"id"`
	Country        string `dynamodbav:"country"`
	Code           string `dynamodbav:"code"`
	BaseRiskFactor string `dynamodbav:"base_risk_factor"`
	Description    string `dynamodbav:"description,omitempty"`
	Active         bool   `dynamodbav:"active"`
	QuotationCount int    `dynamodbav:"quotation_count"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type destinationCodeItem struct {
	Code          string `dynamodbav:"code"`
	DestinationID string `dynamodbav:"destination_id"`
}

// DestinationDynamoRepository persists Destination entities in DynamoDB.
//
// Table requirements:
//   - destinations PK: id (string)
//   - destination_codes PK: code (string), one row per destination, written in
//     the same transaction as the destination to keep codes unique
//
// quotation_count is maintained by the quotation repository and blocks Delete
// while it is above zero.
type DestinationDynamoRepository struct {
	ddb              DynamoAPI
	tableName        string
	codesTableName   string
	riskFactorsTable string
}

var _ interfaces.IDestinationRepository = (*DestinationDynamoRepository)(nil)

func NewDestinationDynamoRepository(ddb DynamoAPI) *DestinationDynamoRepository {
	return &DestinationDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("DESTINATIONS_TABLE", defaultDestinationsTableName),
		codesTableName:   getenvDefault("DESTINATION_CODES_TABLE", defaultDestinationCodesTableName),
		riskFactorsTable: getenvDefault("RISK_FACTORS_TABLE", defaultRiskFactorsTableName),
	}
}

func (r *DestinationDynamoRepository) Create(ctx context.Context, d entities.Destination) (entities.Destination, error) {
	av, err := attributevalue.MarshalMap(toDestinationItem(d))
	if err != nil {
		return entities.Destination{}, err
	}
	guard, err := attributevalue.MarshalMap(destinationCodeItem{Code: d.Code, DestinationID: d.ID})
	if err != nil {
		return entities.Destination{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.codesTableName),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#code)"),
				ExpressionAttributeNames: map[string]string{"#code": "code"},
			}},
		},
	})
	if err != nil {
		if canceledAt(err, 1) {
			return entities.Destination{}, fmt.Errorf("destination code %s: %w", d.Code, entities.ErrConstraintViolation)
		}
		return entities.Destination{}, err
	}
	return d, nil
}

func (r *DestinationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Destination, error) {
	it, ok, err := getItem[destinationItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !ok {
		return entities.Destination{}, err
	}
	return fromDestinationItem(it), nil
}

func (r *DestinationDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Destination, error) {
	guard, ok, err := getItem[destinationCodeItem](ctx, r.ddb, r.codesTableName, stringKey("code", entities.NormalizeDestinationCode(code)))
	if err != nil || !ok {
		return entities.Destination{}, err
	}
	return r.GetByID(ctx, guard.DestinationID)
}

// GetWithRiskFactors loads the destination and every risk factor attached to it.
func (r *DestinationDynamoRepository) GetWithRiskFactors(ctx context.Context, id string) (entities.Destination, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil || d.ID == "" {
		return d, err
	}
	items, err := queryByIndex[riskFactorItem](ctx, r.ddb, r.riskFactorsTable, riskFactorsDestinationIDIndex, "destination_id", d.ID)
	if err != nil {
		return entities.Destination{}, err
	}
	d.RiskFactors = make([]entities.RiskFactor, 0, len(items))
	for _, it := range items {
		d.RiskFactors = append(d.RiskFactors, fromRiskFactorItem(it))
	}
	return d, nil
}

// Update rewrites the editable fields. A code change swaps the guard row in the
// same transaction; the zero Destination is returned when the id is unknown.
func (r *DestinationDynamoRepository) Update(ctx context.Context, d entities.Destination) (entities.Destination, error) {
	current, err := r.GetByID(ctx, d.ID)
	if err != nil || current.ID == "" {
		return entities.Destination{}, err
	}

	update := types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(d.ID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #code = :old_code"),
		UpdateExpression: aws.String("SET #country = :country, #code = :code, #base = :base, #description = :description, " +
			"#active = :active, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#country":     "country",
			"#code":        "code",
			"#base":        "base_risk_factor",
			"#description": "description",
			"#active":      "active",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":old_code":    &types.AttributeValueMemberS{Value: current.Code},
			":country":     &types.AttributeValueMemberS{Value: d.Country},
			":code":        &types.AttributeValueMemberS{Value: d.Code},
			":base":        &types.AttributeValueMemberS{Value: d.BaseRiskFactor.StringFixed(entities.RatePlaces)},
			":description": &types.AttributeValueMemberS{Value: d.Description},
			":active":      &types.AttributeValueMemberBOOL{Value: d.Active},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(d.UpdatedAt)},
		},
	}}
	tx := []types.TransactWriteItem{update}
	if current.Code != d.Code {
		guard, err := attributevalue.MarshalMap(destinationCodeItem{Code: d.Code, DestinationID: d.ID})
		if err != nil {
			return entities.Destination{}, err
		}
		tx = append(tx,
			types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.codesTableName),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#code)"),
				ExpressionAttributeNames: map[string]string{"#code": "code"},
			}},
			types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(r.codesTableName),
				Key:       stringKey("code", current.Code),
			}},
		)
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx}); err != nil {
		switch {
		case canceledAt(err, 1):
			return entities.Destination{}, fmt.Errorf("destination code %s: %w", d.Code, entities.ErrConstraintViolation)
		case canceledAt(err, 0):
			return entities.Destination{}, nil
		}
		return entities.Destination{}, err
	}
	return r.GetByID(ctx, d.ID)
}

// Delete removes the destination, its code guard and its risk factors. The
// destination row goes in the first transaction together with as many risk
// factors as fit; larger sets are finished in follow-up transactions.
func (r *DestinationDynamoRepository) Delete(ctx context.Context, id string) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return fmt.Errorf("destination %s: %w", id, entities.ErrNotFound)
	}
	factors, err := queryByIndex[riskFactorItem](ctx, r.ddb, r.riskFactorsTable, riskFactorsDestinationIDIndex, "destination_id", id)
	if err != nil {
		return err
	}

	tx := []types.TransactWriteItem{
		{Delete: &types.Delete{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(id),
			ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#qc) OR #qc = :zero)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
				"#qc": "quotation_count",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero": &types.AttributeValueMemberN{Value: "0"},
			},
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		}},
		{Delete: &types.Delete{
			TableName: aws.String(r.codesTableName),
			Key:       stringKey("code", current.Code),
		}},
	}

	deletes := make([]types.TransactWriteItem, 0, len(factors))
	for _, f := range factors {
		deletes = append(deletes, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.riskFactorsTable),
			Key:       idKey(f.ID),
		}})
	}
	head := min(len(deletes), maxTransactItems-len(tx))
	tx = append(tx, deletes[:head]...)

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx}); err != nil {
		if canceledAt(err, 0) {
			if old := canceledItemAt(err, 0); len(old) > 0 {
				return fmt.Errorf("destination %s is referenced by quotations: %w", id, entities.ErrReferentialIntegrity)
			}
			return fmt.Errorf("destination %s: %w", id, entities.ErrNotFound)
		}
		return err
	}

	for _, part := range chunk(deletes[head:], maxTransactItems) {
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: part}); err != nil {
			return fmt.Errorf("delete risk factors of destination %s: %w", id, err)
		}
	}
	return nil
}

func (r *DestinationDynamoRepository) List(ctx context.Context, preds ...query.Predicate[entities.Destination]) ([]entities.Destination, error) {
	items, err := scanAll[destinationItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Destination, 0, len(items))
	for _, it := range items {
		out = append(out, fromDestinationItem(it))
	}
	return query.Apply(out, preds...), nil
}

func toDestinationItem(d entities.Destination) destinationItem {
	return destinationItem{
		ID:             d.ID,
		Country:        d.Country,
		Code:           d.Code,
		BaseRiskFactor: d.BaseRiskFactor.StringFixed(entities.RatePlaces),
		Description:    d.Description,
		Active:         d.Active,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDestinationItem(it destinationItem) entities.Destination {
	return entities.Destination{
		ID:             it.ID,
		Country:        it.Country,
		Code:           it.Code,
		BaseRiskFactor: parseDecimal(it.BaseRiskFactor),
		Description:    it.Description,
		Active:         it.Active,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

// counterDelta adjusts quotation_count of a destination or plan row.
func counterDelta(table, id string, delta int) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #qc :delta"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#qc": "quotation_count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		},
	}}
}
