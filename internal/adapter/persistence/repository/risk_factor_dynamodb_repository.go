package repository

import (
	"context"
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRiskFactorsTableName   = "risk_factors"
	riskFactorsDestinationIDIndex = "destination_id-index"
)

type riskFactorItem struct {
	ID            string `dynamodbav:"id"`
	DestinationID string `dynamodbav:"destination_id"`
	Category      string `dynamodbav:"category"`
	Multiplier    string `dynamodbav:"multiplier"`
	Description   string `dynamodbav:"description,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// RiskFactorDynamoRepository persists RiskFactor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: destination_id-index (PK: destination_id)
type RiskFactorDynamoRepository struct {
	ddb               DynamoAPI
	tableName         string
	destinationsTable string
}

var _ interfaces.IRiskFactorRepository = (*RiskFactorDynamoRepository)(nil)

func NewRiskFactorDynamoRepository(ddb DynamoAPI) *RiskFactorDynamoRepository {
	return &RiskFactorDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("RISK_FACTORS_TABLE", defaultRiskFactorsTableName),
		destinationsTable: getenvDefault("DESTINATIONS_TABLE", defaultDestinationsTableName),
	}
}

// Create writes the risk factor only while its destination exists.
func (r *RiskFactorDynamoRepository) Create(ctx context.Context, f entities.RiskFactor) (entities.RiskFactor, error) {
	av, err := attributevalue.MarshalMap(toRiskFactorItem(f))
	if err != nil {
		return entities.RiskFactor{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{ConditionCheck: &types.ConditionCheck{
				TableName:                aws.String(r.destinationsTable),
				Key:                      idKey(f.DestinationID),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if canceledAt(err, 0) {
			return entities.RiskFactor{}, fmt.Errorf("destination %s: %w", f.DestinationID, entities.ErrReferentialIntegrity)
		}
		return entities.RiskFactor{}, err
	}
	return f, nil
}

func (r *RiskFactorDynamoRepository) GetByID(ctx context.Context, id string) (entities.RiskFactor, error) {
	it, ok, err := getItem[riskFactorItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !ok {
		return entities.RiskFactor{}, err
	}
	return fromRiskFactorItem(it), nil
}

func (r *RiskFactorDynamoRepository) Update(ctx context.Context, f entities.RiskFactor) (entities.RiskFactor, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(f.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #category = :category, #multiplier = :multiplier, #description = :description, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#category":    "category",
			"#multiplier":  "multiplier",
			"#description": "description",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category":    &types.AttributeValueMemberS{Value: string(f.Category)},
			":multiplier":  &types.AttributeValueMemberS{Value: f.Multiplier.StringFixed(entities.RatePlaces)},
			":description": &types.AttributeValueMemberS{Value: f.Description},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(f.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.RiskFactor{}, nil
		}
		return entities.RiskFactor{}, err
	}
	var it riskFactorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RiskFactor{}, err
	}
	return fromRiskFactorItem(it), nil
}

func (r *RiskFactorDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("risk factor %s: %w", id, entities.ErrNotFound)
		}
		return err
	}
	return nil
}

func (r *RiskFactorDynamoRepository) ListByDestinationID(ctx context.Context, destinationID string) ([]entities.RiskFactor, error) {
	items, err := queryByIndex[riskFactorItem](ctx, r.ddb, r.tableName, riskFactorsDestinationIDIndex, "destination_id", destinationID)
	if err != nil {
		return nil, err
	}
	return fromRiskFactorItems(items), nil
}

func (r *RiskFactorDynamoRepository) List(ctx context.Context, preds ...query.Predicate[entities.RiskFactor]) ([]entities.RiskFactor, error) {
	items, err := scanAll[riskFactorItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return query.Apply(fromRiskFactorItems(items), preds...), nil
}

func toRiskFactorItem(f entities.RiskFactor) riskFactorItem {
	return riskFactorItem{
		ID:            f.ID,
		DestinationID: f.DestinationID,
		Category:      string(f.Category),
		Multiplier:    f.Multiplier.StringFixed(entities.RatePlaces),
		Description:   f.Description,
		CreatedAt:     formatTime(f.CreatedAt),
		UpdatedAt:     formatTime(f.UpdatedAt),
	}
}

func fromRiskFactorItem(it riskFactorItem) entities.RiskFactor {
	return entities.RiskFactor{
		ID:            it.ID,
		DestinationID: it.DestinationID,
		Category:      entities.RiskCategory(it.Category),
		Multiplier:    parseDecimal(it.Multiplier),
		Description:   it.Description,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func fromRiskFactorItems(items []riskFactorItem) []entities.RiskFactor {
	out := make([]entities.RiskFactor, 0, len(items))
	for _, it := range items {
		out = append(out, fromRiskFactorItem(it))
	}
	return out
}
