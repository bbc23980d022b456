package response

import (
	"os_service/internal/domain/entities"
	"os_service/internal/usecase"
	"time"
)

type IncludedServiceResponse struct {
	ID                string `json:"id"`
	OriginalServiceID string `json:"service_id"`
	Name              string `json:"name"`
	Price             string `json:"price" example:"150.00"`
}

type IncludedItemResponse struct {
	ID             string `json:"id"`
	OriginalItemID string `json:"item_id"`
	Name           string `json:"name"`
	UnitPrice      string `json:"unit_price" example:"25.50"`
	Quantity       int    `json:"quantity"`
	ItemType       string `json:"item_type"`
	Subtotal       string `json:"subtotal" example:"51.00"`
}

type BudgetResponse struct {
	Price     string    `json:"price" example:"201.00"`
	CreatedAt time.Time `json:"created_at"`
}

type TimelineResponse struct {
	CreatedAt          time.Time  `json:"created_at"`
	StartedExecutionAt *time.Time `json:"started_execution_at,omitempty"`
	FinishedAt         *time.Time `json:"finished_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

type OrderResponse struct {
	ID        string                    `json:"id"`
	Code      string                    `json:"code" example:"OS-20240115-A1B2C3"`
	VehicleID string                    `json:"vehicle_id"`
	Status    string                    `json:"status" example:"RECEIVED"`
	Timeline  TimelineResponse          `json:"timeline"`
	Services  []IncludedServiceResponse `json:"services"`
	Items     []IncludedItemResponse    `json:"items"`
	Budget    *BudgetResponse           `json:"budget,omitempty"`
}

// PublicOrderResponse is what an unauthenticated customer may see.
type PublicOrderResponse struct {
	Code     string           `json:"code"`
	Status   string           `json:"status"`
	Timeline TimelineResponse `json:"timeline"`
	Budget   *BudgetResponse  `json:"budget,omitempty"`
}

type TurnaroundResponse struct {
	Days                  int     `json:"days"`
	Orders                int     `json:"orders"`
	AverageTotalHours     float64 `json:"average_total_hours"`
	AverageExecutionHours float64 `json:"average_execution_hours"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{Price: b.Price.String(), CreatedAt: b.CreatedAt}
}

func fromBudgetPtr(b *entities.Budget) *BudgetResponse {
	if b == nil {
		return nil
	}
	r := FromBudget(*b)
	return &r
}

func fromTimeline(t entities.Timeline) TimelineResponse {
	return TimelineResponse{
		CreatedAt:          t.CreatedAt,
		StartedExecutionAt: t.StartedExecutionAt,
		FinishedAt:         t.FinishedAt,
		DeliveredAt:        t.DeliveredAt,
	}
}

func FromOrder(o entities.Order) OrderResponse {
	services := make([]IncludedServiceResponse, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, IncludedServiceResponse{
			ID:                s.ID,
			OriginalServiceID: s.OriginalServiceID,
			Name:              s.Name,
			Price:             s.Price.String(),
		})
	}
	items := make([]IncludedItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, IncludedItemResponse{
			ID:             i.ID,
			OriginalItemID: i.OriginalItemID,
			Name:           i.Name,
			UnitPrice:      i.UnitPrice.String(),
			Quantity:       i.Quantity.Int(),
			ItemType:       i.ItemType,
			Subtotal:       i.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:        o.ID,
		Code:      o.Code.String(),
		VehicleID: o.VehicleID,
		Status:    string(o.Status),
		Timeline:  fromTimeline(o.Timeline),
		Services:  services,
		Items:     items,
		Budget:    fromBudgetPtr(o.Budget),
	}
}

func FromPublicOrder(o entities.Order) PublicOrderResponse {
	return PublicOrderResponse{
		Code:     o.Code.String(),
		Status:   string(o.Status),
		Timeline: fromTimeline(o.Timeline),
		Budget:   fromBudgetPtr(o.Budget),
	}
}

func FromTurnaround(r usecase.TurnaroundReport) TurnaroundResponse {
	return TurnaroundResponse{
		Days:                  r.Days,
		Orders:                r.Orders,
		AverageTotalHours:     r.AverageTotalHours,
		AverageExecutionHours: r.AverageExecutionHours,
	}
}
