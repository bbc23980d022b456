package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os_service/internal/domain/entities"
	"os_service/internal/infrastructure/metrics"
	"os_service/internal/usecase/interfaces"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName = "os_service/internal/usecase"

	// maxCodeAttempts bounds code regeneration when the repository keeps
	// reporting collisions.
	maxCodeAttempts = 50

	minTurnaroundDays = 1
	maxTurnaroundDays = 365
)

// ErrPublicOrderNotFound is the only error PublicLookup ever returns.
var ErrPublicOrderNotFound error = entities.NewResourceNotFound("order not found")

// IOrderUseCase exposes the service order workflow.
//
// Every operation loads the aggregate, applies one aggregate method and saves
// the whole order back. Errors are *entities.DomainError; anything the
// aggregate or the ports did not classify surfaces as ErrUnexpected.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, vehicleID string) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)

	AddServices(ctx context.Context, orderID string, serviceIDs []string) (entities.Order, error)
	AddItem(ctx context.Context, orderID, itemID string, quantity int) (entities.Order, error)
	RemoveService(ctx context.Context, orderID, includedID string) (entities.Order, error)
	RemoveItem(ctx context.Context, orderID, includedID string) (entities.Order, error)

	StartDiagnosis(ctx context.Context, orderID string) (entities.Order, error)
	GenerateBudget(ctx context.Context, orderID string) (entities.Budget, error)
	ApproveBudget(ctx context.Context, orderID string) (entities.Order, error)
	DisapproveBudget(ctx context.Context, orderID string) (entities.Order, error)
	FinalizeExecution(ctx context.Context, orderID string) (entities.Order, error)
	Deliver(ctx context.Context, orderID string) (entities.Order, error)
	Cancel(ctx context.Context, orderID string) (entities.Order, error)

	AverageTurnaround(ctx context.Context, days int) (TurnaroundReport, error)
	PublicLookup(ctx context.Context, code, document string) (entities.Order, error)
}

// TurnaroundReport holds mean durations, in hours, over delivered orders.
type TurnaroundReport struct {
	Days                  int
	Orders                int
	AverageTotalHours     float64
	AverageExecutionHours float64
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	catalog   interfaces.IServiceCatalog
	inventory interfaces.IInventory
	vehicles  interfaces.IVehicleRegistry
	customers interfaces.ICustomerRegistry
	codes     interfaces.ICodeGenerator

	log    *zap.Logger
	tracer trace.Tracer
	now    func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// RandomCodeGenerator draws codes from crypto/rand.
type RandomCodeGenerator struct{}

func (RandomCodeGenerator) Generate(now time.Time) (entities.OrderCode, error) {
	return entities.GenerateCode(now)
}

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	catalog interfaces.IServiceCatalog,
	inventory interfaces.IInventory,
	vehicles interfaces.IVehicleRegistry,
	customers interfaces.ICustomerRegistry,
	codeGen interfaces.ICodeGenerator,
	logger *zap.Logger,
) *OrderUseCase {
	if codeGen == nil {
		codeGen = RandomCodeGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{
		repo:      repo,
		catalog:   catalog,
		inventory: inventory,
		vehicles:  vehicles,
		customers: customers,
		codes:     codeGen,
		log:       logger.Named("order.usecase"),
		tracer:    otel.Tracer(tracerName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return u.tracer.Start(ctx, "OrderUseCase."+op, trace.WithAttributes(attrs...))
}

// fail classifies err, records it on the span and logs it. Rule rejections are
// warnings; everything else is wrapped as unexpected and logged as an error.
func (u *OrderUseCase) fail(span trace.Span, op string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	if entities.IsDomainError(err) && !errors.Is(err, entities.ErrUnexpected) {
		span.SetStatus(codes.Error, err.Error())
		u.log.Warn("order operation rejected", fields...)
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, "unexpected error")
	u.log.Error("order operation failed", fields...)
	if errors.Is(err, entities.ErrUnexpected) {
		return err
	}
	return entities.NewUnexpected(err)
}

func (u *OrderUseCase) load(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.NewInvalidInput("order id is required")
	}
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !o.Exists() {
		return entities.Order{}, entities.NewResourceNotFound("order %s not found", orderID)
	}
	return o, nil
}

// mutate runs the load, apply, update cycle shared by most operations.
func (u *OrderUseCase) mutate(ctx context.Context, op, orderID string, apply func(ctx context.Context, o *entities.Order) error) (entities.Order, error) {
	ctx, span := u.start(ctx, op, attribute.String("order.id", orderID))
	defer span.End()

	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, u.fail(span, op, err, zap.String("order_id", orderID))
	}
	from := o.Status

	if err := apply(ctx, &o); err != nil {
		return entities.Order{}, u.fail(span, op, err, zap.String("order_id", o.ID), zap.String("status", string(from)))
	}

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Order{}, u.fail(span, op, err, zap.String("order_id", o.ID))
	}

	span.SetAttributes(attribute.String("order.status", string(updated.Status)))
	if updated.Status != from {
		metrics.OrderTransitioned(string(updated.Status))
		u.log.Info("order status changed",
			zap.String("order_id", updated.ID),
			zap.String("code", updated.Code.String()),
			zap.String("from", string(from)),
			zap.String("status", string(updated.Status)),
		)
	}
	return updated, nil
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, vehicleID string) (entities.Order, error) {
	const op = "CreateOrder"
	vehicleID = strings.TrimSpace(vehicleID)
	ctx, span := u.start(ctx, op, attribute.String("vehicle.id", vehicleID))
	defer span.End()

	if vehicleID == "" {
		return entities.Order{}, u.fail(span, op, entities.NewInvalidInput("vehicle id is required"))
	}

	exists, err := u.vehicles.Exists(ctx, vehicleID)
	if err != nil {
		return entities.Order{}, u.fail(span, op, err, zap.String("vehicle_id", vehicleID))
	}
	if !exists {
		return entities.Order{}, u.fail(span, op, entities.NewReferenceNotFound("vehicle %s not found", vehicleID))
	}

	now := u.now()
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := u.codes.Generate(now)
		if err != nil {
			return entities.Order{}, u.fail(span, op, fmt.Errorf("generate order code: %w", err))
		}

		existing, err := u.repo.GetByCode(ctx, code.String())
		if err != nil {
			return entities.Order{}, u.fail(span, op, err, zap.String("code", code.String()))
		}
		if existing.Exists() {
			metrics.CodeCollision()
			u.log.Debug("order code collision", zap.String("code", code.String()), zap.Int("attempt", attempt))
			continue
		}

		o, err := entities.NewOrder(vehicleID, code, now)
		if err != nil {
			return entities.Order{}, u.fail(span, op, err)
		}

		saved, err := u.repo.Save(ctx, *o)
		if errors.Is(err, interfaces.ErrOrderCodeTaken) {
			metrics.CodeCollision()
			u.log.Debug("order code taken on save", zap.String("code", code.String()), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return entities.Order{}, u.fail(span, op, err, zap.String("code", code.String()))
		}

		metrics.OrderCreated()
		span.SetAttributes(attribute.String("order.id", saved.ID), attribute.String("order.code", saved.Code.String()))
		u.log.Info("order created",
			zap.String("order_id", saved.ID),
			zap.String("code", saved.Code.String()),
			zap.String("vehicle_id", vehicleID),
		)
		return saved, nil
	}

	return entities.Order{}, u.fail(span, op, fmt.Errorf("no free order code after %d attempts", maxCodeAttempts))
}

func (u *OrderUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	const op = "GetOrder"
	ctx, span := u.start(ctx, op, attribute.String("order.id", orderID))
	defer span.End()

	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, u.fail(span, op, err, zap.String("order_id", orderID))
	}
	return o, nil
}

func (u *OrderUseCase) AddServices(ctx context.Context, orderID string, serviceIDs []string) (entities.Order, error) {
	if len(serviceIDs) == 0 {
		_, span := u.start(ctx, "AddServices")
		defer span.End()
		return entities.Order{}, u.fail(span, "AddServices", entities.NewInvalidInput("at least one service id is required"))
	}

	return u.mutate(ctx, "AddServices", orderID, func(ctx context.Context, o *entities.Order) error {
		for _, id := range serviceIDs {
			id = strings.TrimSpace(id)
			if id == "" {
				return entities.NewReferenceNotFound("service %q not found", id)
			}
			svc, err := u.catalog.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if svc.ID == "" {
				return entities.NewReferenceNotFound("service %s not found", id)
			}
			if _, err := o.AddService(svc.ID, svc.Name, svc.Price); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *OrderUseCase) AddItem(ctx context.Context, orderID, itemID string, quantity int) (entities.Order, error) {
	if quantity <= 0 {
		_, span := u.start(ctx, "AddItem")
		defer span.End()
		return entities.Order{}, u.fail(span, "AddItem", entities.NewInvalidInput("quantity must be greater than zero"))
	}

	itemID = strings.TrimSpace(itemID)
	return u.mutate(ctx, "AddItem", orderID, func(ctx context.Context, o *entities.Order) error {
		if itemID == "" {
			return entities.NewReferenceNotFound("item %q not found", itemID)
		}
		item, err := u.inventory.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.ID == "" {
			return entities.NewReferenceNotFound("item %s not found", itemID)
		}
		_, err = o.AddItem(item.ID, item.Name, item.UnitPrice, quantity, item.ItemType)
		return err
	})
}

func (u *OrderUseCase) RemoveService(ctx context.Context, orderID, includedID string) (entities.Order, error) {
	return u.mutate(ctx, "RemoveService", orderID, func(_ context.Context, o *entities.Order) error {
		return o.RemoveService(strings.TrimSpace(includedID))
	})
}

func (u *OrderUseCase) RemoveItem(ctx context.Context, orderID, includedID string) (entities.Order, error) {
	return u.mutate(ctx, "RemoveItem", orderID, func(_ context.Context, o *entities.Order) error {
		return o.RemoveItem(strings.TrimSpace(includedID))
	})
}

func (u *OrderUseCase) StartDiagnosis(ctx context.Context, orderID string) (entities.Order, error) {
	return u.mutate(ctx, "StartDiagnosis", orderID, func(_ context.Context, o *entities.Order) error {
		return o.StartDiagnosis()
	})
}

func (u *OrderUseCase) GenerateBudget(ctx context.Context, orderID string) (entities.Budget, error) {
	var budget entities.Budget
	_, err := u.mutate(ctx, "GenerateBudget", orderID, func(_ context.Context, o *entities.Order) error {
		b, err := o.GenerateBudget()
		budget = b
		return err
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return budget, nil
}

func (u *OrderUseCase) DisapproveBudget(ctx context.Context, orderID string) (entities.Order, error) {
	return u.mutate(ctx, "DisapproveBudget", orderID, func(_ context.Context, o *entities.Order) error {
		return o.DisapproveBudget()
	})
}

func (u *OrderUseCase) FinalizeExecution(ctx context.Context, orderID string) (entities.Order, error) {
	return u.mutate(ctx, "FinalizeExecution", orderID, func(_ context.Context, o *entities.Order) error {
		return o.FinalizeExecution()
	})
}

func (u *OrderUseCase) Deliver(ctx context.Context, orderID string) (entities.Order, error) {
	return u.mutate(ctx, "Deliver", orderID, func(_ context.Context, o *entities.Order) error {
		return o.Deliver()
	})
}

func (u *OrderUseCase) Cancel(ctx context.Context, orderID string) (entities.Order, error) {
	return u.mutate(ctx, "Cancel", orderID, func(_ context.Context, o *entities.Order) error {
		return o.Cancel()
	})
}

// ApproveBudget starts execution and takes every included item out of stock.
//
// Availability is checked for all items before any stock is written. If a
// decrement or the final order update fails, items already decremented are
// put back and the order is left as it was.
func (u *OrderUseCase) ApproveBudget(ctx context.Context, orderID string) (entities.Order, error) {
	const op = "ApproveBudget"
	ctx, span := u.start(ctx, op, attribute.String("order.id", orderID))
	defer span.End()

	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, u.fail(span, op, err, zap.String("order_id", orderID))
	}

	approved := o
	if err := approved.ApproveBudget(); err != nil {
		return entities.Order{}, u.fail(span, op, err, zap.String("order_id", o.ID), zap.String("status", string(o.Status)))
	}

	for _, it := range o.Items {
		ok, err := u.inventory.CheckAvailable(ctx, it.OriginalItemID, it.Quantity.Int())
		if err != nil {
			return entities.Order{}, u.fail(span, op, err, zap.String("order_id", o.ID), zap.String("item_id", it.OriginalItemID))
		}
		if !ok {
			metrics.ApprovalBlockedByStock()
			return entities.Order{}, u.fail(span, op,
				entities.NewDomainRuleBroken("insufficient stock for item %q: %d required", it.Name, it.Quantity.Int()),
				zap.String("order_id", o.ID), zap.String("item_id", it.OriginalItemID))
		}
	}

	decremented := make([]entities.IncludedItem, 0, len(o.Items))
	for _, it := range o.Items {
		if err := u.takeFromStock(ctx, it); err != nil {
			u.restoreStock(ctx, o, decremented)
			return entities.Order{}, u.fail(span, op, err, zap.String("order_id", o.ID), zap.String("item_id", it.OriginalItemID))
		}
		decremented = append(decremented, it)
	}

	updated, err := u.repo.Update(ctx, approved)
	if err != nil {
		u.restoreStock(ctx, o, decremented)
		return entities.Order{}, u.fail(span, op, err, zap.String("order_id", o.ID))
	}

	metrics.OrderTransitioned(string(updated.Status))
	span.SetAttributes(attribute.String("order.status", string(updated.Status)), attribute.Int("order.items", len(decremented)))
	u.log.Info("order budget approved",
		zap.String("order_id", updated.ID),
		zap.String("code", updated.Code.String()),
		zap.String("status", string(updated.Status)),
		zap.Int("items_decremented", len(decremented)),
	)
	return updated, nil
}

func (u *OrderUseCase) takeFromStock(ctx context.Context, it entities.IncludedItem) error {
	stock, err := u.inventory.GetByID(ctx, it.OriginalItemID)
	if err != nil {
		return err
	}
	if stock.ID == "" {
		return entities.NewReferenceNotFound("item %s not found", it.OriginalItemID)
	}
	return u.inventory.Decrement(ctx, it.OriginalItemID, stock.Quantity-it.Quantity.Int())
}

// restoreStock writes back the quantities taken by takeFromStock. It runs
// detached from ctx cancellation so an aborted request still compensates.
func (u *OrderUseCase) restoreStock(ctx context.Context, o entities.Order, items []entities.IncludedItem) {
	ctx = context.WithoutCancel(ctx)
	for _, it := range items {
		err := func() error {
			stock, err := u.inventory.GetByID(ctx, it.OriginalItemID)
			if err != nil {
				return err
			}
			if stock.ID == "" {
				return entities.NewReferenceNotFound("item %s not found", it.OriginalItemID)
			}
			return u.inventory.Decrement(ctx, it.OriginalItemID, stock.Quantity+it.Quantity.Int())
		}()
		metrics.StockCompensated(err == nil)
		if err != nil {
			u.log.Error("stock compensation failed",
				zap.String("order_id", o.ID),
				zap.String("code", o.Code.String()),
				zap.String("item_id", it.OriginalItemID),
				zap.Int("quantity", it.Quantity.Int()),
				zap.Error(err),
			)
			continue
		}
		u.log.Warn("stock restored after failed approval",
			zap.String("order_id", o.ID),
			zap.String("item_id", it.OriginalItemID),
			zap.Int("quantity", it.Quantity.Int()),
		)
	}
}

func (u *OrderUseCase) AverageTurnaround(ctx context.Context, days int) (TurnaroundReport, error) {
	const op = "AverageTurnaround"
	ctx, span := u.start(ctx, op, attribute.Int("window.days", days))
	defer span.End()

	if days < minTurnaroundDays || days > maxTurnaroundDays {
		return TurnaroundReport{}, u.fail(span, op,
			entities.NewInvalidInput("days must be between %d and %d", minTurnaroundDays, maxTurnaroundDays))
	}

	orders, err := u.repo.GetDeliveredSince(ctx, days)
	if err != nil {
		return TurnaroundReport{}, u.fail(span, op, err)
	}

	cutoff := u.now().AddDate(0, 0, -days)
	var (
		count            int
		total, execution time.Duration
		executionSamples int
	)
	for _, o := range orders {
		if o.Status != entities.OrderStatusDelivered || o.Timeline.CreatedAt.Before(cutoff) {
			continue
		}
		d, ok := o.Timeline.TotalDuration()
		if !ok {
			continue
		}
		count++
		total += d
		if e, ok := o.Timeline.ExecutionDuration(); ok {
			executionSamples++
			execution += e
		}
	}
	if count == 0 {
		return TurnaroundReport{}, u.fail(span, op,
			entities.NewDomainRuleBroken("no delivered orders in the last %d days", days))
	}

	report := TurnaroundReport{
		Days:              days,
		Orders:            count,
		AverageTotalHours: total.Hours() / float64(count),
	}
	if executionSamples > 0 {
		report.AverageExecutionHours = execution.Hours() / float64(executionSamples)
	}
	span.SetAttributes(attribute.Int("orders.count", count))
	return report, nil
}

// PublicLookup lets a customer find their order by code and document. Every
// failure, panics included, yields ErrPublicOrderNotFound so callers cannot
// tell which step rejected them.
func (u *OrderUseCase) PublicLookup(ctx context.Context, code, document string) (found entities.Order, err error) {
	const op = "PublicLookup"
	ctx, span := u.start(ctx, op)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			span.SetStatus(codes.Error, "panic")
			u.log.Error("public lookup panicked", zap.Any("panic", r), zap.Stack("stack"))
			found, err = entities.Order{}, ErrPublicOrderNotFound
		}
	}()

	o, reason := u.publicLookup(ctx, code, document)
	if reason != "" {
		// The reason stays in logs and traces only.
		span.SetAttributes(attribute.String("lookup.miss", reason))
		u.log.Debug("public lookup miss", zap.String("reason", reason))
		return entities.Order{}, ErrPublicOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) publicLookup(ctx context.Context, rawCode, document string) (entities.Order, string) {
	code, err := entities.ParseCode(rawCode)
	if err != nil {
		return entities.Order{}, "malformed code"
	}
	supplied := normalizeDocument(document)
	if supplied == "" {
		return entities.Order{}, "empty document"
	}

	o, err := u.repo.GetByCode(ctx, code.String())
	if err != nil {
		u.log.Warn("public lookup repository error", zap.Error(err))
		return entities.Order{}, "repository error"
	}
	if !o.Exists() {
		return entities.Order{}, "unknown code"
	}

	customer, err := u.customers.GetByVehicleID(ctx, o.VehicleID)
	if err != nil {
		u.log.Warn("public lookup customer registry error", zap.Error(err))
		return entities.Order{}, "customer registry error"
	}
	if customer.ID == "" {
		return entities.Order{}, "no customer for vehicle"
	}

	if subtle.ConstantTimeCompare([]byte(normalizeDocument(customer.Document)), []byte(supplied)) != 1 {
		return entities.Order{}, "document mismatch"
	}
	return o, ""
}

var documentPunctuation = strings.NewReplacer(".", "", "-", "", "/", "", " ", "")

// normalizeDocument strips CPF/CNPJ formatting so "123.456.789-09" matches "12345678909".
func normalizeDocument(doc string) string {
	return documentPunctuation.Replace(strings.TrimSpace(doc))
}
