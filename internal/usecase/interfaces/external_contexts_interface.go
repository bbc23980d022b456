package interfaces

import (
	"context"
	"os_service/internal/domain/entities"
)

// Anti-corruption contracts towards the catalog, inventory and vehicle/customer
// registry contexts. They only expose flat DTOs; a zero DTO (empty ID) with nil
// error means "not found".

type ServiceDTO struct {
	ID    string
	Name  string
	Price entities.Price
}

type InventoryItemDTO struct {
	ID        string
	Name      string
	UnitPrice entities.Price
	Quantity  int
	ItemType  string
}

type CustomerDTO struct {
	ID       string
	Name     string
	Document string
}

type IServiceCatalog interface {
	GetByID(ctx context.Context, id string) (ServiceDTO, error)
}

// IInventory is read-only except for Decrement, which writes the new stock
// level and fails with ReferenceNotFound if the item vanished.
type IInventory interface {
	GetByID(ctx context.Context, id string) (InventoryItemDTO, error)
	CheckAvailable(ctx context.Context, id string, quantity int) (bool, error)
	Decrement(ctx context.Context, id string, newQuantity int) error
}

type IVehicleRegistry interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type ICustomerRegistry interface {
	GetByVehicleID(ctx context.Context, vehicleID string) (CustomerDTO, error)
}
