package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"os_service/internal/domain/entities"
	"os_service/internal/usecase/interfaces"
	mock_interfaces "os_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

const testCode = entities.OrderCode("OS-20240115-A1B2C3")

type orderDeps struct {
	repo      *mock_interfaces.MockIOrderRepository
	catalog   *mock_interfaces.MockIServiceCatalog
	inventory *mock_interfaces.MockIInventory
	vehicles  *mock_interfaces.MockIVehicleRegistry
	customers *mock_interfaces.MockICustomerRegistry
	codes     *mock_interfaces.MockICodeGenerator
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, orderDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := orderDeps{
		repo:      mock_interfaces.NewMockIOrderRepository(ctrl),
		catalog:   mock_interfaces.NewMockIServiceCatalog(ctrl),
		inventory: mock_interfaces.NewMockIInventory(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRegistry(ctrl),
		customers: mock_interfaces.NewMockICustomerRegistry(ctrl),
		codes:     mock_interfaces.NewMockICodeGenerator(ctrl),
	}
	uc := NewOrderUseCase(d.repo, d.catalog, d.inventory, d.vehicles, d.customers, d.codes, zap.NewNop())
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

func qty(t *testing.T, n int) entities.Quantity {
	t.Helper()
	q, err := entities.NewQuantity(n)
	if err != nil {
		t.Fatalf("quantity %d: %v", n, err)
	}
	return q
}

func filtro(t *testing.T) entities.IncludedItem {
	return entities.IncludedItem{
		ID:             "inc-i1",
		OriginalItemID: "item-1",
		Name:           "Filtro",
		UnitPrice:      entities.MustPrice("25.50"),
		Quantity:       qty(t, 2),
		ItemType:       "PART",
	}
}

func oleo() entities.IncludedService {
	return entities.IncludedService{ID: "inc-s1", OriginalServiceID: "svc-1", Name: "Troca de Óleo", Price: entities.MustPrice("150.00")}
}

func restore(t *testing.T, status entities.OrderStatus, services []entities.IncludedService, items []entities.IncludedItem, budget *entities.Budget) entities.Order {
	t.Helper()
	o, err := entities.RestoreOrder("order-1", testCode, "vehicle-1", status, entities.NewTimeline(fixedNow.Add(-time.Hour)), services, items, budget, 1)
	if err != nil {
		t.Fatalf("restore order: %v", err)
	}
	return o
}

func receivedOrder(t *testing.T) entities.Order {
	return restore(t, entities.OrderStatusReceived, nil, nil, nil)
}

func awaitingOrder(t *testing.T, items ...entities.IncludedItem) entities.Order {
	services := []entities.IncludedService{oleo()}
	b := entities.CalculateBudget(services, items, fixedNow)
	return restore(t, entities.OrderStatusAwaitingApproval, services, items, &b)
}

func returnArg(_ context.Context, o entities.Order) (entities.Order, error) {
	o.Version++
	return o, nil
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("blank vehicle id", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.CreateOrder(context.Background(), "  ")
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.vehicles.EXPECT().Exists(gomock.Any(), "vehicle-1").Return(false, nil)

		_, err := uc.CreateOrder(context.Background(), "vehicle-1")
		if !errors.Is(err, entities.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("vehicle registry error is unexpected", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		cause := errors.New("registry down")
		d.vehicles.EXPECT().Exists(gomock.Any(), "vehicle-1").Return(false, cause)

		_, err := uc.CreateOrder(context.Background(), "vehicle-1")
		if !errors.Is(err, entities.ErrUnexpected) || !errors.Is(err, cause) {
			t.Fatalf("expected unexpected error wrapping cause, got %v", err)
		}
		if err.Error() != "unexpected error" {
			t.Fatalf("expected generic message, got %q", err.Error())
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.vehicles.EXPECT().Exists(gomock.Any(), "vehicle-1").Return(true, nil)
		d.codes.EXPECT().Generate(fixedNow).Return(testCode, nil)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(entities.Order{}, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.VehicleID != "vehicle-1" || o.Code != testCode {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusReceived || o.Budget != nil || len(o.Services) != 0 || len(o.Items) != 0 {
					t.Fatalf("expected fresh received order, got %+v", o)
				}
				if !o.Timeline.CreatedAt.Equal(fixedNow) {
					t.Fatalf("expected created at %v, got %v", fixedNow, o.Timeline.CreatedAt)
				}
				return returnArg(context.Background(), o)
			},
		)

		o, err := uc.CreateOrder(context.Background(), " vehicle-1 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !o.Code.IsValid() || o.Status != entities.OrderStatusReceived {
			t.Fatalf("unexpected result: %+v", o)
		}
	})

	t.Run("regenerates on lookup collision and on taken code", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		taken := entities.OrderCode("OS-20240115-AAAAAA")
		raced := entities.OrderCode("OS-20240115-BBBBBB")

		d.vehicles.EXPECT().Exists(gomock.Any(), "vehicle-1").Return(true, nil)
		gomock.InOrder(
			d.codes.EXPECT().Generate(fixedNow).Return(taken, nil),
			d.repo.EXPECT().GetByCode(gomock.Any(), taken.String()).Return(entities.Order{ID: "other"}, nil),
			d.codes.EXPECT().Generate(fixedNow).Return(raced, nil),
			d.repo.EXPECT().GetByCode(gomock.Any(), raced.String()).Return(entities.Order{}, nil),
			d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrOrderCodeTaken),
			d.codes.EXPECT().Generate(fixedNow).Return(testCode, nil),
			d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(entities.Order{}, nil),
			d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(returnArg),
		)

		o, err := uc.CreateOrder(context.Background(), "vehicle-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if o.Code != testCode {
			t.Fatalf("expected code %s, got %s", testCode, o.Code)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.vehicles.EXPECT().Exists(gomock.Any(), "vehicle-1").Return(true, nil)
		d.codes.EXPECT().Generate(fixedNow).Return(testCode, nil).Times(maxCodeAttempts)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(entities.Order{ID: "other"}, nil).Times(maxCodeAttempts)

		_, err := uc.CreateOrder(context.Background(), "vehicle-1")
		if !errors.Is(err, entities.ErrUnexpected) {
			t.Fatalf("expected ErrUnexpected, got %v", err)
		}
	})

	t.Run("save error", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.vehicles.EXPECT().Exists(gomock.Any(), "vehicle-1").Return(true, nil)
		d.codes.EXPECT().Generate(fixedNow).Return(testCode, nil)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(entities.Order{}, nil)
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), "vehicle-1")
		if !errors.Is(err, entities.ErrUnexpected) {
			t.Fatalf("expected ErrUnexpected, got %v", err)
		}
	})
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.GetOrder(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrResourceNotFound) {
			t.Fatalf("expected ErrResourceNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.GetOrder(context.Background(), " ")
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(receivedOrder(t), nil)

		o, err := uc.GetOrder(context.Background(), "order-1")
		if err != nil || o.ID != "order-1" {
			t.Fatalf("unexpected result: %+v, %v", o, err)
		}
	})
}

func TestOrderUseCase_AddServicesAndItem(t *testing.T) {
	t.Run("empty service list", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.AddServices(context.Background(), "order-1", nil)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.AddServices(context.Background(), "order-1", []string{"svc-1"})
		if !errors.Is(err, entities.ErrResourceNotFound) {
			t.Fatalf("expected ErrResourceNotFound, got %v", err)
		}
	})

	t.Run("unknown service is not persisted", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(receivedOrder(t), nil)
		d.catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(interfaces.ServiceDTO{ID: "svc-1", Name: "Troca de Óleo", Price: entities.MustPrice("150")}, nil)
		d.catalog.EXPECT().GetByID(gomock.Any(), "svc-x").Return(interfaces.ServiceDTO{}, nil)

		_, err := uc.AddServices(context.Background(), "order-1", []string{"svc-1", "svc-x"})
		if !errors.Is(err, entities.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("duplicate service", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(restore(t, entities.OrderStatusReceived, []entities.IncludedService{oleo()}, nil, nil), nil)
		d.catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(interfaces.ServiceDTO{ID: "svc-1", Name: "Troca de Óleo", Price: entities.MustPrice("150")}, nil)

		_, err := uc.AddServices(context.Background(), "order-1", []string{"svc-1"})
		if !errors.Is(err, entities.ErrDomainRuleBroken) {
			t.Fatalf("expected ErrDomainRuleBroken, got %v", err)
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		_, err := uc.AddItem(context.Background(), "order-1", "item-1", 0)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(receivedOrder(t), nil)
		d.inventory.EXPECT().GetByID(gomock.Any(), "item-x").Return(interfaces.InventoryItemDTO{}, nil)

		_, err := uc.AddItem(context.Background(), "order-1", "item-x", 1)
		if !errors.Is(err, entities.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("blank service id is a missing reference", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(receivedOrder(t), nil)

		_, err := uc.AddServices(context.Background(), "order-1", []string{" "})
		if !errors.Is(err, entities.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("blank item id is a missing reference", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(receivedOrder(t), nil)

		_, err := uc.AddItem(context.Background(), "order-1", "  ", 1)
		if !errors.Is(err, entities.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("service then item on received order", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		stored := receivedOrder(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").DoAndReturn(func(context.Context, string) (entities.Order, error) {
			return stored, nil
		}).Times(2)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.Order) (entities.Order, error) {
			stored = o
			return returnArg(ctx, o)
		}).Times(2)
		d.catalog.EXPECT().GetByID(gomock.Any(), "svc-1").Return(interfaces.ServiceDTO{ID: "svc-1", Name: "Troca de Óleo", Price: entities.MustPrice("150.00")}, nil)
		d.inventory.EXPECT().GetByID(gomock.Any(), "item-1").Return(interfaces.InventoryItemDTO{
			ID: "item-1", Name: "Filtro", UnitPrice: entities.MustPrice("25.50"), Quantity: 10, ItemType: "PART",
		}, nil)

		if _, err := uc.AddServices(context.Background(), "order-1", []string{"svc-1"}); err != nil {
			t.Fatalf("add services: %v", err)
		}
		o, err := uc.AddItem(context.Background(), "order-1", "item-1", 2)
		if err != nil {
			t.Fatalf("add item: %v", err)
		}
		if len(o.Services) != 1 || len(o.Items) != 1 {
			t.Fatalf("expected 1 service and 1 item, got %+v", o)
		}
		if o.Items[0].Quantity.Int() != 2 || o.Items[0].Name != "Filtro" {
			t.Fatalf("unexpected item: %+v", o.Items[0])
		}
	})
}

func TestOrderUseCase_Remove(t *testing.T) {
	t.Run("remove service", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(restore(t, entities.OrderStatusReceived, []entities.IncludedService{oleo()}, nil, nil), nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)

		o, err := uc.RemoveService(context.Background(), "order-1", "inc-s1")
		if err != nil || len(o.Services) != 0 {
			t.Fatalf("unexpected result: %+v, %v", o, err)
		}
	})

	t.Run("remove missing item", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(receivedOrder(t), nil)

		_, err := uc.RemoveItem(context.Background(), "order-1", "nope")
		if !errors.Is(err, entities.ErrResourceNotFound) {
			t.Fatalf("expected ErrResourceNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_Transitions(t *testing.T) {
	t.Run("generate budget", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(
			restore(t, entities.OrderStatusInDiagnosis, []entities.IncludedService{oleo()}, []entities.IncludedItem{filtro(t)}, nil), nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.Order) (entities.Order, error) {
			if o.Status != entities.OrderStatusAwaitingApproval || o.Budget == nil {
				t.Fatalf("expected awaiting approval with budget, got %+v", o)
			}
			return returnArg(ctx, o)
		})

		b, err := uc.GenerateBudget(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !b.Price.Equal(entities.MustPrice("201.00")) {
			t.Fatalf("expected 201.00, got %s", b.Price)
		}
	})

	t.Run("illegal transition is not persisted", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(
			restore(t, entities.OrderStatusDelivered, nil, nil, nil), nil)

		_, err := uc.Cancel(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrDomainRuleBroken) {
			t.Fatalf("expected ErrDomainRuleBroken, got %v", err)
		}
		if !strings.Contains(err.Error(), string(entities.OrderStatusDelivered)) {
			t.Fatalf("expected message naming status, got %q", err.Error())
		}
	})

	t.Run("concurrent update conflict", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(receivedOrder(t), nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Order{}, entities.NewDomainRuleBroken("order was modified concurrently"))

		_, err := uc.StartDiagnosis(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrDomainRuleBroken) {
			t.Fatalf("expected ErrDomainRuleBroken, got %v", err)
		}
	})

	cases := []struct {
		name string
		from entities.OrderStatus
		want entities.OrderStatus
		call func(uc *OrderUseCase) (entities.Order, error)
	}{
		{"start diagnosis", entities.OrderStatusReceived, entities.OrderStatusInDiagnosis, func(uc *OrderUseCase) (entities.Order, error) {
			return uc.StartDiagnosis(context.Background(), "order-1")
		}},
		{"cancel", entities.OrderStatusInDiagnosis, entities.OrderStatusCanceled, func(uc *OrderUseCase) (entities.Order, error) {
			return uc.Cancel(context.Background(), "order-1")
		}},
		{"disapprove", entities.OrderStatusAwaitingApproval, entities.OrderStatusCanceled, func(uc *OrderUseCase) (entities.Order, error) {
			return uc.DisapproveBudget(context.Background(), "order-1")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, d := newOrderUseCase(t)
			var budget *entities.Budget
			if tc.from == entities.OrderStatusAwaitingApproval {
				b := entities.CalculateBudget([]entities.IncludedService{oleo()}, nil, fixedNow)
				budget = &b
			}
			d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(restore(t, tc.from, []entities.IncludedService{oleo()}, nil, budget), nil)
			d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)

			o, err := tc.call(uc)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if o.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, o.Status)
			}
		})
	}

	t.Run("finalize and deliver", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		started := fixedNow.Add(-30 * time.Minute)
		tl, err := entities.RestoreTimeline(fixedNow.Add(-time.Hour), &started, nil, nil)
		if err != nil {
			t.Fatalf("timeline: %v", err)
		}
		b := entities.CalculateBudget([]entities.IncludedService{oleo()}, nil, fixedNow)
		stored, err := entities.RestoreOrder("order-1", testCode, "vehicle-1", entities.OrderStatusInExecution, tl, []entities.IncludedService{oleo()}, nil, &b, 1)
		if err != nil {
			t.Fatalf("restore: %v", err)
		}
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").DoAndReturn(func(context.Context, string) (entities.Order, error) {
			return stored, nil
		}).Times(2)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.Order) (entities.Order, error) {
			stored = o
			return returnArg(ctx, o)
		}).Times(2)

		if _, err := uc.FinalizeExecution(context.Background(), "order-1"); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		o, err := uc.Deliver(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("deliver: %v", err)
		}
		if o.Status != entities.OrderStatusDelivered || o.Timeline.FinishedAt == nil || o.Timeline.DeliveredAt == nil {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_ApproveBudget(t *testing.T) {
	t.Run("insufficient stock touches nothing", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(awaitingOrder(t, filtro(t)), nil)
		d.inventory.EXPECT().CheckAvailable(gomock.Any(), "item-1", 2).Return(false, nil)

		_, err := uc.ApproveBudget(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrDomainRuleBroken) {
			t.Fatalf("expected ErrDomainRuleBroken, got %v", err)
		}
		if !strings.Contains(err.Error(), "Filtro") || !strings.Contains(err.Error(), "2") {
			t.Fatalf("expected message naming item and quantity, got %q", err.Error())
		}
	})

	t.Run("second item unavailable blocks first", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		other := filtro(t)
		other.ID, other.OriginalItemID, other.Name = "inc-i2", "item-2", "Vela"
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(awaitingOrder(t, filtro(t), other), nil)
		d.inventory.EXPECT().CheckAvailable(gomock.Any(), "item-1", 2).Return(true, nil)
		d.inventory.EXPECT().CheckAvailable(gomock.Any(), "item-2", 2).Return(false, nil)

		_, err := uc.ApproveBudget(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrDomainRuleBroken) || !strings.Contains(err.Error(), "Vela") {
			t.Fatalf("expected rule broken naming Vela, got %v", err)
		}
	})

	t.Run("wrong status skips inventory", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(
			restore(t, entities.OrderStatusInDiagnosis, nil, []entities.IncludedItem{filtro(t)}, nil), nil)

		_, err := uc.ApproveBudget(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrDomainRuleBroken) {
			t.Fatalf("expected ErrDomainRuleBroken, got %v", err)
		}
	})

	t.Run("success decrements stock", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(awaitingOrder(t, filtro(t)), nil)
		gomock.InOrder(
			d.inventory.EXPECT().CheckAvailable(gomock.Any(), "item-1", 2).Return(true, nil),
			d.inventory.EXPECT().GetByID(gomock.Any(), "item-1").Return(interfaces.InventoryItemDTO{ID: "item-1", Quantity: 5}, nil),
			d.inventory.EXPECT().Decrement(gomock.Any(), "item-1", 3).Return(nil),
			d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg),
		)

		o, err := uc.ApproveBudget(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if o.Status != entities.OrderStatusInExecution || o.Timeline.StartedExecutionAt == nil {
			t.Fatalf("expected in execution with start time, got %+v", o)
		}
	})

	t.Run("decrement failure restores earlier items", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		other := filtro(t)
		other.ID, other.OriginalItemID, other.Name = "inc-i2", "item-2", "Vela"
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(awaitingOrder(t, filtro(t), other), nil)
		d.inventory.EXPECT().CheckAvailable(gomock.Any(), gomock.Any(), 2).Return(true, nil).Times(2)
		gomock.InOrder(
			d.inventory.EXPECT().GetByID(gomock.Any(), "item-1").Return(interfaces.InventoryItemDTO{ID: "item-1", Quantity: 5}, nil),
			d.inventory.EXPECT().Decrement(gomock.Any(), "item-1", 3).Return(nil),
			d.inventory.EXPECT().GetByID(gomock.Any(), "item-2").Return(interfaces.InventoryItemDTO{}, nil),
			d.inventory.EXPECT().GetByID(gomock.Any(), "item-1").Return(interfaces.InventoryItemDTO{ID: "item-1", Quantity: 3}, nil),
			d.inventory.EXPECT().Decrement(gomock.Any(), "item-1", 5).Return(nil),
		)

		_, err := uc.ApproveBudget(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("update failure restores all items", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(awaitingOrder(t, filtro(t)), nil)
		gomock.InOrder(
			d.inventory.EXPECT().CheckAvailable(gomock.Any(), "item-1", 2).Return(true, nil),
			d.inventory.EXPECT().GetByID(gomock.Any(), "item-1").Return(interfaces.InventoryItemDTO{ID: "item-1", Quantity: 5}, nil),
			d.inventory.EXPECT().Decrement(gomock.Any(), "item-1", 3).Return(nil),
			d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Order{}, entities.NewDomainRuleBroken("order was modified concurrently")),
			d.inventory.EXPECT().GetByID(gomock.Any(), "item-1").Return(interfaces.InventoryItemDTO{ID: "item-1", Quantity: 3}, nil),
			d.inventory.EXPECT().Decrement(gomock.Any(), "item-1", 5).Return(nil),
		)

		_, err := uc.ApproveBudget(context.Background(), "order-1")
		if !errors.Is(err, entities.ErrDomainRuleBroken) {
			t.Fatalf("expected ErrDomainRuleBroken, got %v", err)
		}
	})
}

func deliveredOrder(t *testing.T, id string, created time.Time, startAfter, finishAfter, deliverAfter time.Duration) entities.Order {
	t.Helper()
	started, finished, delivered := created.Add(startAfter), created.Add(finishAfter), created.Add(deliverAfter)
	tl, err := entities.RestoreTimeline(created, &started, &finished, &delivered)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	o, err := entities.RestoreOrder(id, testCode, "vehicle-1", entities.OrderStatusDelivered, tl, nil, nil, nil, 1)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	return o
}

func TestOrderUseCase_AverageTurnaround(t *testing.T) {
	for _, days := range []int{0, -1, 366} {
		uc, _ := newOrderUseCase(t)
		_, err := uc.AverageTurnaround(context.Background(), days)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("days=%d: expected ErrInvalidInput, got %v", days, err)
		}
	}

	t.Run("no delivered orders", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetDeliveredSince(gomock.Any(), 30).Return(nil, nil)

		_, err := uc.AverageTurnaround(context.Background(), 30)
		if !errors.Is(err, entities.ErrDomainRuleBroken) {
			t.Fatalf("expected ErrDomainRuleBroken, got %v", err)
		}
	})

	t.Run("means over window", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		recent := fixedNow.Add(-48 * time.Hour)
		old := fixedNow.AddDate(0, 0, -40)
		notDelivered := restore(t, entities.OrderStatusFinished, nil, nil, nil)
		d.repo.EXPECT().GetDeliveredSince(gomock.Any(), 30).Return([]entities.Order{
			deliveredOrder(t, "o1", recent, time.Hour, 5*time.Hour, 10*time.Hour),
			deliveredOrder(t, "o2", recent, 2*time.Hour, 10*time.Hour, 20*time.Hour),
			deliveredOrder(t, "o3", old, time.Hour, 100*time.Hour, 500*time.Hour),
			notDelivered,
		}, nil)

		r, err := uc.AverageTurnaround(context.Background(), 30)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if r.Orders != 2 || r.Days != 30 {
			t.Fatalf("unexpected report: %+v", r)
		}
		if r.AverageTotalHours != 15 || r.AverageExecutionHours != 6 {
			t.Fatalf("expected 15h total and 6h execution, got %+v", r)
		}
	})
}

func TestOrderUseCase_PublicLookup(t *testing.T) {
	customer := interfaces.CustomerDTO{ID: "cust-1", Name: "Maria", Document: "123.456.789-09"}

	t.Run("match ignores document formatting", func(t *testing.T) {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(receivedOrder(t), nil)
		d.customers.EXPECT().GetByVehicleID(gomock.Any(), "vehicle-1").Return(customer, nil)

		o, err := uc.PublicLookup(context.Background(), "os-20240115-a1b2c3", "12345678909")
		if err != nil || o.ID != "order-1" {
			t.Fatalf("unexpected result: %+v, %v", o, err)
		}
	})

	wrongDocument := func(t *testing.T) error {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(receivedOrder(t), nil)
		d.customers.EXPECT().GetByVehicleID(gomock.Any(), "vehicle-1").Return(customer, nil)
		_, err := uc.PublicLookup(context.Background(), testCode.String(), "000.000.000-00")
		return err
	}
	unknownCode := func(t *testing.T) error {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByCode(gomock.Any(), "OS-20240115-ZZZZZZ").Return(entities.Order{}, nil)
		_, err := uc.PublicLookup(context.Background(), "OS-20240115-ZZZZZZ", "anything")
		return err
	}
	noCustomer := func(t *testing.T) error {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(receivedOrder(t), nil)
		d.customers.EXPECT().GetByVehicleID(gomock.Any(), "vehicle-1").Return(interfaces.CustomerDTO{}, nil)
		_, err := uc.PublicLookup(context.Background(), testCode.String(), "12345678909")
		return err
	}
	repoError := func(t *testing.T) error {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(entities.Order{}, errors.New("db"))
		_, err := uc.PublicLookup(context.Background(), testCode.String(), "12345678909")
		return err
	}
	panics := func(t *testing.T) error {
		uc, d := newOrderUseCase(t)
		d.repo.EXPECT().GetByCode(gomock.Any(), testCode.String()).Return(receivedOrder(t), nil)
		d.customers.EXPECT().GetByVehicleID(gomock.Any(), "vehicle-1").DoAndReturn(
			func(context.Context, string) (interfaces.CustomerDTO, error) { panic("boom") })
		_, err := uc.PublicLookup(context.Background(), testCode.String(), "12345678909")
		return err
	}
	malformed := func(t *testing.T) error {
		uc, _ := newOrderUseCase(t)
		_, err := uc.PublicLookup(context.Background(), "not-a-code", "12345678909")
		return err
	}

	cases := map[string]func(*testing.T) error{
		"wrong document": wrongDocument,
		"unknown code":   unknownCode,
		"no customer":    noCustomer,
		"repo error":     repoError,
		"panic":          panics,
		"malformed code": malformed,
	}
	for name, run := range cases {
		t.Run(name, func(t *testing.T) {
			err := run(t)
			if err != ErrPublicOrderNotFound {
				t.Fatalf("expected ErrPublicOrderNotFound, got %v", err)
			}
			if err.Error() != "order not found" {
				t.Fatalf("unexpected message %q", err.Error())
			}
		})
	}
}
