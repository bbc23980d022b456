package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"os_service/internal/domain/entities"
	"os_service/internal/infrastructure/database"
	"os_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type includedServiceItem struct {
	ID                string `dynamodbav:"id"`
	OriginalServiceID string `dynamodbav:"original_service_id"`
	Name              string `dynamodbav:"name"`
	Price             string `dynamodbav:"price"`
}

type includedItemItem struct {
	ID             string `dynamodbav:"id"`
	OriginalItemID string `dynamodbav:"original_item_id"`
	Name           string `dynamodbav:"name"`
	UnitPrice      string `dynamodbav:"unit_price"`
	Quantity       int    `dynamodbav:"quantity"`
	ItemType       string `dynamodbav:"item_type"`
}

type budgetItem struct {
	CreatedAt string `dynamodbav:"created_at"`
	Price     string `dynamodbav:"price"`
}

type orderItem struct {
	ID                 string                `dynamodbav:"id"`
	Code               string                `dynamodbav:"code"`
	VehicleID          string                `dynamodbav:"vehicle_id"`
	Status             string                `dynamodbav:"status"`
	CreatedAt          string                `dynamodbav:"created_at"`
	StartedExecutionAt string                `dynamodbav:"started_execution_at,omitempty"`
	FinishedAt         string                `dynamodbav:"finished_at,omitempty"`
	DeliveredAt        string                `dynamodbav:"delivered_at,omitempty"`
	Services           []includedServiceItem `dynamodbav:"services"`
	Items              []includedItemItem    `dynamodbav:"items"`
	Budget             *budgetItem           `dynamodbav:"budget,omitempty"`
	Version            int                   `dynamodbav:"version"`
	UpdatedAt          string                `dynamodbav:"updated_at"`
}

type orderCodeItem struct {
	Code    string `dynamodbav:"code"`
	OrderID string `dynamodbav:"order_id"`
}

// OrderDynamoRepository persists the Order aggregate in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string), GSI status-created_at-index (status, created_at)
//   - order_codes: PK code (string), one guard item per issued code
//
// Save writes the order and its code guard in one transaction, which makes
// the code unique even when two creations race.
type OrderDynamoRepository struct {
	ddb       database.DynamoAPI
	ordersTbl string
	codesTbl  string
	statusIdx string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb database.DynamoAPI, tables database.Tables) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		ordersTbl: tables.Orders,
		codesTbl:  tables.OrderCodes,
		statusIdx: database.OrdersStatusCreatedAtIndex,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.Version = 1
	it := toOrderItem(o, r.now())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}
	guard, err := attributevalue.MarshalMap(orderCodeItem{Code: it.Code, OrderID: it.ID})
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.ordersTbl),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.codesTbl),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#code)"),
				ExpressionAttributeNames: map[string]string{"#code": "code"},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			reasons := tce.CancellationReasons
			if len(reasons) > 1 && aws.ToString(reasons[1].Code) == "ConditionalCheckFailed" {
				return entities.Order{}, interfaces.ErrOrderCodeTaken
			}
			if len(reasons) > 0 && aws.ToString(reasons[0].Code) == "ConditionalCheckFailed" {
				return entities.Order{}, fmt.Errorf("order %s already exists: %w", o.ID, err)
			}
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTbl),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Item)
}

// GetByCode resolves the code through its guard item, so it is strongly
// consistent and case-insensitive.
func (r *OrderDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Order, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return entities.Order{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.codesTbl),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var guard orderCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Order{}, err
	}
	return r.GetByID(ctx, guard.OrderID)
}

// GetDeliveredSince returns delivered orders created within the last days.
func (r *OrderDynamoRepository) GetDeliveredSince(ctx context.Context, days int) ([]entities.Order, error) {
	since := r.now().AddDate(0, 0, -days)

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.ordersTbl),
		IndexName:              aws.String(r.statusIdx),
		KeyConditionExpression: aws.String("#status = :status AND #created_at >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusDelivered)},
			":since":  &types.AttributeValueMemberS{Value: formatTime(since)},
		},
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			o, err := unmarshalOrder(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// Update replaces the stored aggregate if nobody else wrote it since it was
// loaded, and returns it with the next version.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	expected := o.Version
	o.Version++
	av, err := attributevalue.MarshalMap(toOrderItem(o, r.now()))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTbl),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#version": "version"},
			map[string]string{"#id": "id"},
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprint(expected)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, entities.NewDomainRuleBroken("order was modified concurrently")
		}
		return entities.Order{}, err
	}
	return o, nil
}

func unmarshalOrder(raw map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Order{}, err
	}
	o, err := fromOrderItem(it)
	if err != nil {
		return entities.Order{}, fmt.Errorf("decode order %s: %w", it.ID, err)
	}
	return o, nil
}

func toOrderItem(o entities.Order, now time.Time) orderItem {
	services := make([]includedServiceItem, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, includedServiceItem{
			ID:                s.ID,
			OriginalServiceID: s.OriginalServiceID,
			Name:              s.Name,
			Price:             formatPrice(s.Price),
		})
	}
	items := make([]includedItemItem, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, includedItemItem{
			ID:             i.ID,
			OriginalItemID: i.OriginalItemID,
			Name:           i.Name,
			UnitPrice:      formatPrice(i.UnitPrice),
			Quantity:       i.Quantity.Int(),
			ItemType:       i.ItemType,
		})
	}

	var budget *budgetItem
	if o.Budget != nil {
		budget = &budgetItem{CreatedAt: formatTime(o.Budget.CreatedAt), Price: formatPrice(o.Budget.Price)}
	}

	return orderItem{
		ID:                 o.ID,
		Code:               o.Code.String(),
		VehicleID:          o.VehicleID,
		Status:             string(o.Status),
		CreatedAt:          formatTime(o.Timeline.CreatedAt),
		StartedExecutionAt: formatTimePtr(o.Timeline.StartedExecutionAt),
		FinishedAt:         formatTimePtr(o.Timeline.FinishedAt),
		DeliveredAt:        formatTimePtr(o.Timeline.DeliveredAt),
		Services:           services,
		Items:              items,
		Budget:             budget,
		Version:            o.Version,
		UpdatedAt:          formatTime(now),
	}
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return entities.Order{}, err
	}
	started, err := parseTimePtr(it.StartedExecutionAt)
	if err != nil {
		return entities.Order{}, err
	}
	finished, err := parseTimePtr(it.FinishedAt)
	if err != nil {
		return entities.Order{}, err
	}
	delivered, err := parseTimePtr(it.DeliveredAt)
	if err != nil {
		return entities.Order{}, err
	}
	timeline, err := entities.RestoreTimeline(createdAt, started, finished, delivered)
	if err != nil {
		return entities.Order{}, err
	}

	services := make([]entities.IncludedService, 0, len(it.Services))
	for _, s := range it.Services {
		price, err := entities.NewPriceFromString(s.Price)
		if err != nil {
			return entities.Order{}, err
		}
		services = append(services, entities.IncludedService{
			ID:                s.ID,
			OriginalServiceID: s.OriginalServiceID,
			Name:              s.Name,
			Price:             price,
		})
	}

	items := make([]entities.IncludedItem, 0, len(it.Items))
	for _, i := range it.Items {
		price, err := entities.NewPriceFromString(i.UnitPrice)
		if err != nil {
			return entities.Order{}, err
		}
		q, err := entities.NewQuantity(i.Quantity)
		if err != nil {
			return entities.Order{}, err
		}
		items = append(items, entities.IncludedItem{
			ID:             i.ID,
			OriginalItemID: i.OriginalItemID,
			Name:           i.Name,
			UnitPrice:      price,
			Quantity:       q,
			ItemType:       i.ItemType,
		})
	}

	var budget *entities.Budget
	if it.Budget != nil {
		at, err := parseTime(it.Budget.CreatedAt)
		if err != nil {
			return entities.Order{}, err
		}
		price, err := entities.NewPriceFromString(it.Budget.Price)
		if err != nil {
			return entities.Order{}, err
		}
		budget = &entities.Budget{CreatedAt: at, Price: price}
	}

	return entities.RestoreOrder(
		it.ID,
		entities.OrderCode(it.Code),
		it.VehicleID,
		entities.OrderStatus(it.Status),
		timeline,
		services,
		items,
		budget,
		it.Version,
	)
}
