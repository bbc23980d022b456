package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is the service order (ordem de serviço) aggregate root. It tracks one
// repair job from vehicle intake to delivery.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-created_at-index: status + created_at
//   - code uniqueness: guard item per code in a separate table
//
// The aggregate never holds catalog, inventory or vehicle entities. It keeps
// their ids plus the snapshot taken when they were added.
type Order struct {
	ID        string
	Code      OrderCode
	VehicleID string
	Status    OrderStatus
	Timeline  Timeline
	Services  []IncludedService
	Items     []IncludedItem
	Budget    *Budget

	// Version is the optimistic concurrency token managed by the repository.
	Version int
}

var nowFunc = func() time.Time { return time.Now().UTC() }

var eventVerbs = map[OrderEvent]string{
	EventStartDiagnosis:    "start diagnosis of",
	EventGenerateBudget:    "generate budget for",
	EventApproveBudget:     "approve budget of",
	EventDisapproveBudget:  "disapprove budget of",
	EventFinalizeExecution: "finalize execution of",
	EventDeliver:           "deliver",
	EventCancel:            "cancel",
}

// NewOrder opens a service order for an existing vehicle.
func NewOrder(vehicleID string, code OrderCode, createdAt time.Time) (*Order, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, NewInvalidInput("vehicle id is required")
	}
	if !code.IsValid() {
		return nil, NewInvalidInput("invalid order code %q", code)
	}
	return &Order{
		ID:        uuid.NewString(),
		Code:      code,
		VehicleID: vehicleID,
		Status:    OrderStatusReceived,
		Timeline:  NewTimeline(createdAt),
		Services:  []IncludedService{},
		Items:     []IncludedItem{},
	}, nil
}

// RestoreOrder rebuilds an aggregate from persisted state.
func RestoreOrder(
	id string,
	code OrderCode,
	vehicleID string,
	status OrderStatus,
	timeline Timeline,
	services []IncludedService,
	items []IncludedItem,
	budget *Budget,
	version int,
) (Order, error) {
	if !status.IsValid() {
		return Order{}, NewInvalidInput("invalid order status %q", status)
	}
	if !code.IsValid() {
		return Order{}, NewInvalidInput("invalid order code %q", code)
	}
	if services == nil {
		services = []IncludedService{}
	}
	if items == nil {
		items = []IncludedItem{}
	}
	return Order{
		ID:        id,
		Code:      code,
		VehicleID: vehicleID,
		Status:    status,
		Timeline:  timeline,
		Services:  services,
		Items:     items,
		Budget:    budget,
		Version:   version,
	}, nil
}

func (o *Order) next(event OrderEvent) (OrderStatus, error) {
	next, ok := o.Status.Next(event)
	if !ok {
		return "", NewDomainRuleBroken("cannot %s order in status %s", eventVerbs[event], o.Status)
	}
	return next, nil
}

func (o *Order) StartDiagnosis() error {
	next, err := o.next(EventStartDiagnosis)
	if err != nil {
		return err
	}
	o.Status = next
	return nil
}

// GenerateBudget computes a budget from the current services and items and
// moves the order to AWAITING_APPROVAL.
func (o *Order) GenerateBudget() (Budget, error) {
	next, err := o.next(EventGenerateBudget)
	if err != nil {
		return Budget{}, err
	}
	if len(o.Services) == 0 && len(o.Items) == 0 {
		return Budget{}, NewDomainRuleBroken("cannot generate budget for order without services or items")
	}
	b := CalculateBudget(o.Services, o.Items, nowFunc())
	o.Budget = &b
	o.Status = next
	return b, nil
}

func (o *Order) ApproveBudget() error {
	next, err := o.next(EventApproveBudget)
	if err != nil {
		return err
	}
	if o.Budget == nil {
		return NewDomainRuleBroken("no budget to approve")
	}
	if err := o.Timeline.markStartedExecution(nowFunc()); err != nil {
		return err
	}
	o.Status = next
	return nil
}

// DisapproveBudget rejects the budget, which cancels the order.
func (o *Order) DisapproveBudget() error {
	next, err := o.next(EventDisapproveBudget)
	if err != nil {
		return err
	}
	o.Status = next
	return nil
}

func (o *Order) FinalizeExecution() error {
	next, err := o.next(EventFinalizeExecution)
	if err != nil {
		return err
	}
	if err := o.Timeline.markFinished(nowFunc()); err != nil {
		return err
	}
	o.Status = next
	return nil
}

func (o *Order) Deliver() error {
	next, err := o.next(EventDeliver)
	if err != nil {
		return err
	}
	if err := o.Timeline.markDelivered(nowFunc()); err != nil {
		return err
	}
	o.Status = next
	return nil
}

// Cancel is only possible before execution starts.
func (o *Order) Cancel() error {
	next, err := o.next(EventCancel)
	if err != nil {
		return err
	}
	o.Status = next
	return nil
}

func (o *Order) ensureChangeable(what string) error {
	if !o.Status.AllowsChanges() {
		return NewDomainRuleBroken("cannot change %s of order in status %s", what, o.Status)
	}
	return nil
}

// AddService appends a snapshot of a catalog service. A service may appear
// only once per order.
func (o *Order) AddService(originalServiceID, name string, price Price) (IncludedService, error) {
	if err := o.ensureChangeable("services"); err != nil {
		return IncludedService{}, err
	}
	if strings.TrimSpace(originalServiceID) == "" {
		return IncludedService{}, NewInvalidInput("service id is required")
	}
	for _, s := range o.Services {
		if s.OriginalServiceID == originalServiceID {
			return IncludedService{}, NewDomainRuleBroken("service %q is already included in order %s", name, o.Code)
		}
	}

	s := IncludedService{
		ID:                uuid.NewString(),
		OriginalServiceID: originalServiceID,
		Name:              name,
		Price:             price,
	}
	o.Services = append(o.Services, s)
	return s, nil
}

// AddItem appends a snapshot of an inventory item, or increments the quantity
// of the entry already holding the same original item.
func (o *Order) AddItem(originalItemID, name string, unitPrice Price, quantity int, itemType string) (IncludedItem, error) {
	if err := o.ensureChangeable("items"); err != nil {
		return IncludedItem{}, err
	}
	q, err := NewQuantity(quantity)
	if err != nil {
		return IncludedItem{}, err
	}
	if strings.TrimSpace(originalItemID) == "" {
		return IncludedItem{}, NewInvalidInput("item id is required")
	}

	for idx := range o.Items {
		if o.Items[idx].OriginalItemID == originalItemID {
			merged, err := o.Items[idx].Quantity.Add(q)
			if err != nil {
				return IncludedItem{}, err
			}
			o.Items[idx].Quantity = merged
			return o.Items[idx], nil
		}
	}

	it := IncludedItem{
		ID:             uuid.NewString(),
		OriginalItemID: originalItemID,
		Name:           name,
		UnitPrice:      unitPrice,
		Quantity:       q,
		ItemType:       itemType,
	}
	o.Items = append(o.Items, it)
	return it, nil
}

func (o *Order) RemoveService(includedID string) error {
	if err := o.ensureChangeable("services"); err != nil {
		return err
	}
	for idx, s := range o.Services {
		if s.ID == includedID {
			o.Services = append(o.Services[:idx:idx], o.Services[idx+1:]...)
			return nil
		}
	}
	return NewResourceNotFound("service %s not found in order %s", includedID, o.Code)
}

func (o *Order) RemoveItem(includedID string) error {
	if err := o.ensureChangeable("items"); err != nil {
		return err
	}
	for idx, it := range o.Items {
		if it.ID == includedID {
			o.Items = append(o.Items[:idx:idx], o.Items[idx+1:]...)
			return nil
		}
	}
	return NewResourceNotFound("item %s not found in order %s", includedID, o.Code)
}

// Exists reports whether o was found; repositories return a zero Order for misses.
func (o Order) Exists() bool {
	return o.ID != ""
}
