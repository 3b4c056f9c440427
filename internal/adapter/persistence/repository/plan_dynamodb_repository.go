package repository

import (
	"context"
	"errors"
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/domain/query"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "plans"

type planItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Description    string `dynamodbav:"description"`
	CoverageType   string `dynamodbav:"coverage_type"`
	DailyRate      string `dynamodbav:"daily_rate"`
	QuotationCount int    `dynamodbav:"quotation_count"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PlanDynamoRepository persists Plan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PlanDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb DynamoAPI) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return entities.Plan{}, err
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
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	it, ok, err := getItem[planItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !ok {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) Update(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(p.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #name = :name, #description = :description, #coverage = :coverage, " +
			"#rate = :rate, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#name":        "name",
			"#description": "description",
			"#coverage":    "coverage_type",
			"#rate":        "daily_rate",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":        &types.AttributeValueMemberS{Value: p.Name},
			":description": &types.AttributeValueMemberS{Value: p.Description},
			":coverage":    &types.AttributeValueMemberS{Value: string(p.CoverageType)},
			":rate":        &types.AttributeValueMemberS{Value: p.DailyRate.StringFixed(entities.RatePlaces)},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Plan{}, nil
		}
		return entities.Plan{}, err
	}
	var it planItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

// Delete removes the plan unless quotations reference it.
func (r *PlanDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
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
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) > 0 {
				return fmt.Errorf("plan %s is referenced by quotations: %w", id, entities.ErrReferentialIntegrity)
			}
			return fmt.Errorf("plan %s: %w", id, entities.ErrNotFound)
		}
		return err
	}
	return nil
}

func (r *PlanDynamoRepository) List(ctx context.Context, preds ...query.Predicate[entities.Plan]) ([]entities.Plan, error) {
	items, err := scanAll[planItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Plan, 0, len(items))
	for _, it := range items {
		out = append(out, fromPlanItem(it))
	}
	return query.Apply(out, preds...), nil
}

func toPlanItem(p entities.Plan) planItem {
	return planItem{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CoverageType: string(p.CoverageType),
		DailyRate:    p.DailyRate.StringFixed(entities.RatePlaces),
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromPlanItem(it planItem) entities.Plan {
	return entities.Plan{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		CoverageType: entities.CoverageType(it.CoverageType),
		DailyRate:    parseDecimal(it.DailyRate),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
