package wiring

import (
	"context"
	"path/filepath"
	"testing"

	mock_repository "hero_seguros/internal/adapter/persistence/repository/mocks"
	"hero_seguros/internal/domain/pricing"
	"hero_seguros/internal/infrastructure/config"
	"hero_seguros/internal/infrastructure/database"
	"hero_seguros/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRepositories_SQLite(t *testing.T) {
	cfg := config.Config{StorageDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "nested", "q.db")}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	require.NotNil(t, repos.SQLite)
	assert.Nil(t, repos.DynamoDB)

	ucs := NewUseCases(repos, nil, true)
	ctx := context.Background()

	p, err := ucs.Plans.Create(ctx, usecase.PlanInput{Name: "Basic", Description: "Essentials", CoverageType: "basic", DailyRate: decimal.NewFromInt(10)})
	require.NoError(t, err)

	cost, err := ucs.Plans.CostFor(ctx, p.ID, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, "60.00", cost.StringFixed(2))
}

func TestNewPaymentGateway(t *testing.T) {
	assert.Nil(t, NewPaymentGateway(config.Payments{Mock: true, AccessToken: "TEST-x"}))
	assert.Nil(t, NewPaymentGateway(config.Payments{}))
}

func basicPlan(rate string) usecase.PlanInput {
	return usecase.PlanInput{Name: "Basic", Description: "Essentials", CoverageType: "basic", DailyRate: decimal.RequireFromString(rate)}
}

func diseaseFactor(multiplier string) usecase.RiskFactorInput {
	return usecase.RiskFactorInput{Category: "disease", Multiplier: decimal.RequireFromString(multiplier)}
}

func TestRateScale_SQLite(t *testing.T) {
	store, err := database.OpenSQLite(filepath.Join(t.TempDir(), "scale.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	ucs := NewUseCases(SQLiteRepositories(store), nil, true)
	ctx := context.Background()

	_, err = ucs.Plans.Create(ctx, basicPlan("12.345"))
	assert.ErrorIs(t, err, usecase.ErrDailyRateScale)
	_, err = ucs.Plans.Create(ctx, basicPlan("0.004"))
	assert.ErrorIs(t, err, usecase.ErrDailyRateScale)

	created, err := ucs.Plans.Create(ctx, basicPlan("12.3"))
	require.NoError(t, err)
	stored, err := ucs.Plans.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.DailyRate.Equal(created.DailyRate), "stored %s, created %s", stored.DailyRate, created.DailyRate)

	base := decimal.RequireFromString("1.50")
	dest, err := ucs.Destinations.Create(ctx, usecase.DestinationInput{Country: "Brazil", Code: "BR", BaseRiskFactor: &base})
	require.NoError(t, err)
	_, err = ucs.RiskFactors.Create(ctx, dest.ID, diseaseFactor("0.333"))
	assert.ErrorIs(t, err, usecase.ErrRiskMultiplierScale)
	_, err = ucs.RiskFactors.Create(ctx, dest.ID, diseaseFactor("0.33"))
	require.NoError(t, err)

	loaded, err := ucs.Destinations.GetWithRiskFactors(ctx, dest.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.83", pricing.TotalRiskMultiplier(loaded).String())
}

type destinationRow struct {
	ID             string `dynamodbav:"id"`
	Country        string `dynamodbav:"country"`
	Code           string `dynamodbav:"code"`
	BaseRiskFactor string `dynamodbav:"base_risk_factor"`
	Active         bool   `dynamodbav:"active"`
}

func TestRateScale_DynamoDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ddb := mock_repository.NewMockDynamoAPI(ctrl)
	ucs := NewUseCases(DynamoRepositories(ddb), nil, true)
	ctx := context.Background()

	// Rejected inputs never reach the client.
	_, err := ucs.Plans.Create(ctx, basicPlan("12.345"))
	assert.ErrorIs(t, err, usecase.ErrDailyRateScale)
	_, err = ucs.RiskFactors.Create(ctx, "d-1", diseaseFactor("0.333"))
	assert.ErrorIs(t, err, usecase.ErrRiskMultiplierScale)

	ddb.EXPECT().PutItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			rate, ok := in.Item["daily_rate"].(*types.AttributeValueMemberS)
			require.True(t, ok)
			assert.Equal(t, "12.30", rate.Value)
			return &dynamodb.PutItemOutput{}, nil
		},
	)
	plan, err := ucs.Plans.Create(ctx, basicPlan("12.3"))
	require.NoError(t, err)
	assert.True(t, plan.DailyRate.Equal(decimal.RequireFromString("12.30")))

	row, err := attributevalue.MarshalMap(destinationRow{ID: "d-1", Country: "Brazil", Code: "BR", BaseRiskFactor: "1.50", Active: true})
	require.NoError(t, err)
	ddb.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(&dynamodb.GetItemOutput{Item: row}, nil)
	ddb.EXPECT().TransactWriteItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
			var written string
			for _, item := range in.TransactItems {
				if item.Put == nil {
					continue
				}
				if m, ok := item.Put.Item["multiplier"].(*types.AttributeValueMemberS); ok {
					written = m.Value
				}
			}
			assert.Equal(t, "0.33", written)
			return &dynamodb.TransactWriteItemsOutput{}, nil
		},
	)
	_, err = ucs.RiskFactors.Create(ctx, "d-1", diseaseFactor("0.33"))
	require.NoError(t, err)
}
