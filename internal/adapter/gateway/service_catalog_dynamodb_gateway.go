package gateway

import (
	"context"
	"fmt"

	"os_service/internal/domain/entities"
	"os_service/internal/infrastructure/database"
	"os_service/internal/usecase/interfaces"
)

type serviceRecord struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

// ServiceCatalogDynamoGateway reads the catalog context's services table.
type ServiceCatalogDynamoGateway struct {
	ddb   database.DynamoAPI
	table string
}

var _ interfaces.IServiceCatalog = (*ServiceCatalogDynamoGateway)(nil)

func NewServiceCatalogDynamoGateway(ddb database.DynamoAPI, table string) *ServiceCatalogDynamoGateway {
	return &ServiceCatalogDynamoGateway{ddb: ddb, table: table}
}

func (g *ServiceCatalogDynamoGateway) GetByID(ctx context.Context, id string) (interfaces.ServiceDTO, error) {
	var rec serviceRecord
	found, err := getByID(ctx, g.ddb, g.table, id, &rec)
	if err != nil || !found {
		return interfaces.ServiceDTO{}, err
	}
	price, err := entities.NewPriceFromString(rec.Price)
	if err != nil {
		return interfaces.ServiceDTO{}, fmt.Errorf("service %s has invalid price: %w", rec.ID, err)
	}
	return interfaces.ServiceDTO{ID: rec.ID, Name: rec.Name, Price: price}, nil
}
