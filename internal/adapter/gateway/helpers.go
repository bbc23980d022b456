package gateway

import (
	"context"
	"strings"
	"time"

	"os_service/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// getByID loads one item by its "id" key into out. It reports false when the
// item does not exist. A blank id never matches, since DynamoDB rejects empty
// key values.
func getByID(ctx context.Context, ddb database.DynamoAPI, table, id string, out any) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
