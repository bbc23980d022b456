package gateway

import (
	"context"

	"os_service/internal/infrastructure/database"
	"os_service/internal/usecase/interfaces"
)

type vehicleRecord struct {
	ID         string `dynamodbav:"id"`
	Plate      string `dynamodbav:"plate"`
	CustomerID string `dynamodbav:"customer_id"`
}

type customerRecord struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Document string `dynamodbav:"document"`
}

// RegistryDynamoGateway reads the vehicles and customers tables owned by the
// registry context. It implements both vehicle and customer lookups.
type RegistryDynamoGateway struct {
	ddb       database.DynamoAPI
	vehicles  string
	customers string
}

var (
	_ interfaces.IVehicleRegistry  = (*RegistryDynamoGateway)(nil)
	_ interfaces.ICustomerRegistry = (*RegistryDynamoGateway)(nil)
)

func NewRegistryDynamoGateway(ddb database.DynamoAPI, vehiclesTable, customersTable string) *RegistryDynamoGateway {
	return &RegistryDynamoGateway{ddb: ddb, vehicles: vehiclesTable, customers: customersTable}
}

func (g *RegistryDynamoGateway) Exists(ctx context.Context, id string) (bool, error) {
	var rec vehicleRecord
	return getByID(ctx, g.ddb, g.vehicles, id, &rec)
}

// GetByVehicleID follows the vehicle's owner link. A vehicle without owner
// yields a zero CustomerDTO.
func (g *RegistryDynamoGateway) GetByVehicleID(ctx context.Context, vehicleID string) (interfaces.CustomerDTO, error) {
	var v vehicleRecord
	found, err := getByID(ctx, g.ddb, g.vehicles, vehicleID, &v)
	if err != nil || !found || v.CustomerID == "" {
		return interfaces.CustomerDTO{}, err
	}

	var c customerRecord
	found, err = getByID(ctx, g.ddb, g.customers, v.CustomerID, &c)
	if err != nil || !found {
		return interfaces.CustomerDTO{}, err
	}
	return interfaces.CustomerDTO{ID: c.ID, Name: c.Name, Document: c.Document}, nil
}
