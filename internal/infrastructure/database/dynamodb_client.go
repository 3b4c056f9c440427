package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hero_seguros/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableActiveTimeout = 2 * time.Minute

// TableAdmin is the part of the DynamoDB client EnsureTables needs.
type TableAdmin interface {
	dynamodb.DescribeTableAPIClient
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// ConnectDynamoDB creates a DynamoDB client from cfg. A non-empty Endpoint
// points the client at DynamoDB Local or LocalStack.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDB) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	log.Printf("[storage][dynamodb] client ready region=%s endpoint=%q", cfg.Region, cfg.Endpoint)
	return client, nil
}

// EnsureTables creates every missing table in defs and waits for it to turn
// ACTIVE. Existing tables are left untouched. It returns the names created.
func EnsureTables(ctx context.Context, api TableAdmin, defs []*dynamodb.CreateTableInput) ([]string, error) {
	var created []string
	for _, def := range defs {
		name := aws.ToString(def.TableName)
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return created, fmt.Errorf("describe table %s: %w", name, err)
		}

		if _, err := api.CreateTable(ctx, def); err != nil {
			return created, fmt.Errorf("create table %s: %w", name, err)
		}
		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableActiveTimeout); err != nil {
			return created, fmt.Errorf("wait for table %s: %w", name, err)
		}
		log.Printf("[storage][dynamodb] table created name=%s", name)
		created = append(created, name)
	}
	return created, nil
}
