package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTableAdmin struct {
	existing map[string]bool
	created  []string
	failWith error
}

func (f *fakeTableAdmin) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	name := aws.ToString(in.TableName)
	if !f.existing[name] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName, TableStatus: types.TableStatusActive}}, nil
}

func (f *fakeTableAdmin) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	f.existing[name] = true
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	defs := []*dynamodb.CreateTableInput{
		{TableName: aws.String("destinations")},
		{TableName: aws.String("plans")},
	}

	t.Run("creates only missing tables", func(t *testing.T) {
		admin := &fakeTableAdmin{existing: map[string]bool{"destinations": true}}
		created, err := EnsureTables(context.Background(), admin, defs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 1 || created[0] != "plans" || len(admin.created) != 1 {
			t.Fatalf("unexpected created tables %v", created)
		}
	})

	t.Run("describe failure", func(t *testing.T) {
		boom := errors.New("boom")
		admin := &fakeTableAdmin{existing: map[string]bool{}, failWith: boom}
		if _, err := EnsureTables(context.Background(), admin, defs); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
