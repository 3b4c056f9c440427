package repository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableDefinitions describes every table the repositories expect, honouring
// the same *_TABLE overrides. Tables are on-demand; each GSI is keyed by a
// single string attribute and projects everything.
func TableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		tableDef(getenvDefault("DESTINATIONS_TABLE", defaultDestinationsTableName), "id"),
		tableDef(getenvDefault("DESTINATION_CODES_TABLE", defaultDestinationCodesTableName), "code"),
		tableDef(getenvDefault("RISK_FACTORS_TABLE", defaultRiskFactorsTableName), "id", riskFactorsDestinationIDIndex),
		tableDef(getenvDefault("PLANS_TABLE", defaultPlansTableName), "id"),
		tableDef(getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName), "id",
			quotationsUserIDIndex, quotationsDestinationIDIndex, quotationsPlanIDIndex),
		tableDef(getenvDefault("USERS_TABLE", defaultUsersTableName), "id"),
		tableDef(getenvDefault("USER_EMAILS_TABLE", defaultUserEmailsTableName), "email"),
		tableDef(getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName), "id", paymentsQuotationIDIndex),
	}
}

// tableDef derives the GSI key attribute from the index name ("user_id-index" -> user_id).
func tableDef(name, hashKey string, indexes ...string) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{AttributeName: aws.String(hashKey), AttributeType: types.ScalarAttributeTypeS}}
	var gsis []types.GlobalSecondaryIndex
	for _, index := range indexes {
		attr := index[:len(index)-len("-index")]
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return &dynamodb.CreateTableInput{
		TableName:              aws.String(name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(hashKey), KeyType: types.KeyTypeHash}},
		BillingMode:            types.BillingModePayPerRequest,
		GlobalSecondaryIndexes: gsis,
	}
}
