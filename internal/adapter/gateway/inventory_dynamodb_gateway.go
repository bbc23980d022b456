package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"os_service/internal/domain/entities"
	"os_service/internal/infrastructure/database"
	"os_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type inventoryRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
	ItemType  string `dynamodbav:"item_type"`
}

// InventoryDynamoGateway reads and adjusts stock in the inventory context's
// inventory_items table.
type InventoryDynamoGateway struct {
	ddb   database.DynamoAPI
	table string
}

var _ interfaces.IInventory = (*InventoryDynamoGateway)(nil)

func NewInventoryDynamoGateway(ddb database.DynamoAPI, table string) *InventoryDynamoGateway {
	return &InventoryDynamoGateway{ddb: ddb, table: table}
}

func (g *InventoryDynamoGateway) GetByID(ctx context.Context, id string) (interfaces.InventoryItemDTO, error) {
	var rec inventoryRecord
	found, err := getByID(ctx, g.ddb, g.table, id, &rec)
	if err != nil || !found {
		return interfaces.InventoryItemDTO{}, err
	}
	price, err := entities.NewPriceFromString(rec.UnitPrice)
	if err != nil {
		return interfaces.InventoryItemDTO{}, fmt.Errorf("item %s has invalid unit price: %w", rec.ID, err)
	}
	return interfaces.InventoryItemDTO{
		ID:        rec.ID,
		Name:      rec.Name,
		UnitPrice: price,
		Quantity:  rec.Quantity,
		ItemType:  rec.ItemType,
	}, nil
}

// CheckAvailable reports whether at least quantity units are in stock. A
// missing item is simply unavailable.
func (g *InventoryDynamoGateway) CheckAvailable(ctx context.Context, id string, quantity int) (bool, error) {
	item, err := g.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return item.ID != "" && item.Quantity >= quantity, nil
}

// Decrement stores newQuantity as the item's stock level.
func (g *InventoryDynamoGateway) Decrement(ctx context.Context, id string, newQuantity int) error {
	if newQuantity < 0 {
		return entities.NewDomainRuleBroken("stock of item %s cannot go below zero", id)
	}

	_, err := g.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(g.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #quantity = :quantity, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#quantity":   "quantity",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quantity":   &types.AttributeValueMemberN{Value: strconv.Itoa(newQuantity)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.NewReferenceNotFound("item %s not found", id)
		}
		return err
	}
	return nil
}
