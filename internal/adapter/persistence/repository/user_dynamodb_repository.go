package repository

import (
	"context"
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName      = "users"
	defaultUserEmailsTableName = "user_emails"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type userEmailItem struct {
	Email  string `dynamodbav:"email"`
	UserID string `dynamodbav:"user_id"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - users PK: id (string)
//   - user_emails PK: email (string), written with the user to keep emails unique
type UserDynamoRepository struct {
	ddb               DynamoAPI
	tableName         string
	emailsTable       string
	quotationsTable   string
	destinationsTable string
	plansTable        string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("USERS_TABLE", defaultUsersTableName),
		emailsTable:       getenvDefault("USER_EMAILS_TABLE", defaultUserEmailsTableName),
		quotationsTable:   getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		destinationsTable: getenvDefault("DESTINATIONS_TABLE", defaultDestinationsTableName),
		plansTable:        getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	guard, err := attributevalue.MarshalMap(userEmailItem{Email: u.Email, UserID: u.ID})
	if err != nil {
		return entities.User{}, err
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
				TableName:                aws.String(r.emailsTable),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#email)"),
				ExpressionAttributeNames: map[string]string{"#email": "email"},
			}},
		},
	})
	if err != nil {
		if canceledAt(err, 1) {
			return entities.User{}, fmt.Errorf("email %s: %w", u.Email, entities.ErrConstraintViolation)
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	it, ok, err := getItem[userItem](ctx, r.ddb, r.tableName, idKey(id))
	if err != nil || !ok {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	guard, ok, err := getItem[userEmailItem](ctx, r.ddb, r.emailsTable, stringKey("email", entities.NormalizeEmail(email)))
	if err != nil || !ok {
		return entities.User{}, err
	}
	return r.GetByID(ctx, guard.UserID)
}

// Delete removes the user's quotations in batches and then the user with its
// email guard, so a failure part way leaves the user in place to retry.
func (r *UserDynamoRepository) Delete(ctx context.Context, id string) error {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.ID == "" {
		return fmt.Errorf("user %s: %w", id, entities.ErrNotFound)
	}

	quotations, err := queryByIndex[quotationItem](ctx, r.ddb, r.quotationsTable, quotationsUserIDIndex, "user_id", id)
	if err != nil {
		return err
	}
	for _, batch := range quotationDeleteBatches(r.quotationsTable, r.destinationsTable, r.plansTable, quotations) {
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: batch}); err != nil {
			return fmt.Errorf("delete quotations of user %s: %w", id, err)
		}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:                aws.String(r.tableName),
				Key:                      idKey(id),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.emailsTable),
				Key:       stringKey("email", u.Email),
			}},
		},
	})
	if err != nil {
		if canceledAt(err, 0) {
			return fmt.Errorf("user %s: %w", id, entities.ErrNotFound)
		}
		return err
	}
	return nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
