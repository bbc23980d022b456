package entities

// OrderStatus represents the lifecycle of a service order (OS).
type OrderStatus string

const (
	OrderStatusReceived         OrderStatus = "RECEIVED"
	OrderStatusInDiagnosis      OrderStatus = "IN_DIAGNOSIS"
	OrderStatusAwaitingApproval OrderStatus = "AWAITING_APPROVAL"
	OrderStatusInExecution      OrderStatus = "IN_EXECUTION"
	OrderStatusFinished         OrderStatus = "FINISHED"
	OrderStatusDelivered        OrderStatus = "DELIVERED"
	OrderStatusCanceled         OrderStatus = "CANCELED"
)

// OrderEvent is a command that moves an order between statuses.
type OrderEvent string

const (
	EventStartDiagnosis    OrderEvent = "START_DIAGNOSIS"
	EventGenerateBudget    OrderEvent = "GENERATE_BUDGET"
	EventApproveBudget     OrderEvent = "APPROVE_BUDGET"
	EventDisapproveBudget  OrderEvent = "DISAPPROVE_BUDGET"
	EventFinalizeExecution OrderEvent = "FINALIZE_EXECUTION"
	EventDeliver           OrderEvent = "DELIVER"
	EventCancel            OrderEvent = "CANCEL"
)

// AllOrderStatuses lists every status in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	OrderStatusReceived,
	OrderStatusInDiagnosis,
	OrderStatusAwaitingApproval,
	OrderStatusInExecution,
	OrderStatusFinished,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// AllOrderEvents lists every event the aggregate understands.
var AllOrderEvents = []OrderEvent{
	EventStartDiagnosis,
	EventGenerateBudget,
	EventApproveBudget,
	EventDisapproveBudget,
	EventFinalizeExecution,
	EventDeliver,
	EventCancel,
}

// transitions is the complete legality matrix. A (status, event) pair missing
// here is an illegal transition.
var transitions = map[OrderStatus]map[OrderEvent]OrderStatus{
	OrderStatusReceived: {
		EventStartDiagnosis: OrderStatusInDiagnosis,
		EventGenerateBudget: OrderStatusAwaitingApproval,
		EventCancel:         OrderStatusCanceled,
	},
	OrderStatusInDiagnosis: {
		EventGenerateBudget: OrderStatusAwaitingApproval,
		EventCancel:         OrderStatusCanceled,
	},
	OrderStatusAwaitingApproval: {
		EventApproveBudget:    OrderStatusInExecution,
		EventDisapproveBudget: OrderStatusCanceled,
		EventCancel:           OrderStatusCanceled,
	},
	OrderStatusInExecution: {
		EventFinalizeExecution: OrderStatusFinished,
	},
	OrderStatusFinished: {
		EventDeliver: OrderStatusDelivered,
	},
	OrderStatusDelivered: {},
	OrderStatusCanceled:  {},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no event is accepted anymore.
func (s OrderStatus) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// AllowsChanges reports whether services and items may still be added or removed.
func (s OrderStatus) AllowsChanges() bool {
	return s == OrderStatusReceived || s == OrderStatusInDiagnosis
}

// Next returns the status reached by applying event, or false when illegal.
func (s OrderStatus) Next(event OrderEvent) (OrderStatus, bool) {
	next, ok := transitions[s][event]
	return next, ok
}
