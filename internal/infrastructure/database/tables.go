package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Index names shared by the order repository and table bootstrap.
const (
	OrdersStatusCreatedAtIndex = "status-created_at-index"
)

// Tables holds the DynamoDB table names used by the service.
type Tables struct {
	Orders         string
	OrderCodes     string
	Services       string
	InventoryItems string
	Vehicles       string
	Customers      string
}

type tableCreator interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates missing tables with on-demand billing. Meant for
// DynamoDB Local; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, ddb tableCreator, t Tables, log *zap.Logger) error {
	specs := []*dynamodb.CreateTableInput{
		ordersTable(t.Orders),
		simpleTable(t.OrderCodes, "code"),
		simpleTable(t.Services, "id"),
		simpleTable(t.InventoryItems, "id"),
		simpleTable(t.Vehicles, "id"),
		simpleTable(t.Customers, "id"),
	}

	for _, spec := range specs {
		name := aws.ToString(spec.TableName)
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: spec.TableName})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		if _, err := ddb.CreateTable(ctx, spec); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
		log.Info("dynamodb table created", zap.String("table", name))
	}
	return nil
}

func simpleTable(name, key string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
	}
}

func ordersTable(name string) *dynamodb.CreateTableInput {
	in := simpleTable(name, "id")
	in.AttributeDefinitions = append(in.AttributeDefinitions,
		types.AttributeDefinition{AttributeName: aws.String("status"), AttributeType: types.ScalarAttributeTypeS},
		types.AttributeDefinition{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
	)
	in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName: aws.String(OrdersStatusCreatedAtIndex),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("status"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}
	return in
}
