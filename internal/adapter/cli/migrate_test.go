package cli

import (
	"bytes"
	"context"
	"testing"

	"hero_seguros/internal/adapter/persistence/repository"
	"hero_seguros/internal/infrastructure/config"
	"hero_seguros/internal/infrastructure/wiring"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTables struct {
	existing map[string]bool
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if !f.existing[aws.ToString(in.TableName)] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName, TableStatus: types.TableStatusActive}}, nil
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.existing[aws.ToString(in.TableName)] = true
	return &dynamodb.CreateTableOutput{}, nil
}

func runWith(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMigrateCmd_DynamoDB(t *testing.T) {
	tables := &fakeTables{existing: map[string]bool{}}
	open := func(_ context.Context, cfg config.Config) (*wiring.Repositories, error) {
		assert.Equal(t, config.DriverDynamoDB, cfg.StorageDriver)
		return &wiring.Repositories{DynamoDB: tables}, nil
	}

	out, err := runWith(t, open, "migrate", "--driver", "dynamodb")
	require.NoError(t, err)
	assert.Contains(t, out, "created tables:")
	assert.Len(t, tables.existing, len(repository.TableDefinitions()))

	out, err = runWith(t, open, "migrate", "--driver", "dynamodb")
	require.NoError(t, err)
	assert.Contains(t, out, "tables up to date")

	_, err = runWith(t, open, "migrate", "--driver", "dynamodb", "--down")
	assert.ErrorIs(t, err, errRollbackUnsupported)
}
