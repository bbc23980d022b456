package entities

// IncludedService is a snapshot of a catalog service taken when it was added
// to an order. OriginalServiceID is a reference only.
type IncludedService struct {
	ID                string
	OriginalServiceID string
	Name              string
	Price             Price
}

// IncludedItem is a snapshot of an inventory item (part or supply) taken when
// it was added to an order.
type IncludedItem struct {
	ID             string
	OriginalItemID string
	Name           string
	UnitPrice      Price
	Quantity       Quantity
	ItemType       string
}

func (i IncludedItem) Subtotal() Price {
	return i.UnitPrice.Mul(i.Quantity)
}
