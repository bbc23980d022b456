package handlers

import (
	"context"
	"errors"
	"net/http"
	request "os_service/internal/adapter/http/dto/request"
	response "os_service/internal/adapter/http/dto/response"
	"os_service/internal/domain/entities"
	"os_service/internal/usecase"
	"os_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDays         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "days must be an integer", http.StatusBadRequest)
)

// OrderHandler exposes the service order workflow over HTTP.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Open a service order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateOrderRequest  true  "Vehicle"
// @Success      201   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.VehicleID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Get a service order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AddServices godoc
// @Summary      Add catalog services to an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Order ID"
// @Param        body  body      request.AddServicesRequest  true  "Service ids"
// @Success      200   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /orders/{id}/services [post]
func (h *OrderHandler) AddServices(c *gin.Context) {
	var payload request.AddServicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddServices(c.Request.Context(), c.Param("id"), payload.Normalized())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AddItem godoc
// @Summary      Add an inventory item to an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Order ID"
// @Param        body  body      request.AddItemRequest  true  "Item and quantity"
// @Success      200   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /orders/{id}/items [post]
func (h *OrderHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ItemID, payload.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RemoveService godoc
// @Summary      Remove an included service
// @Tags         orders
// @Produce      json
// @Param        id           path      string  true  "Order ID"
// @Param        included_id  path      string  true  "Included service ID"
// @Success      200          {object}  response.OrderResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      422          {object}  pkg.HTTPError
// @Router       /orders/{id}/services/{included_id} [delete]
func (h *OrderHandler) RemoveService(c *gin.Context) {
	h.removeIncluded(c, h.usecase.RemoveService)
}

// RemoveItem godoc
// @Summary      Remove an included item
// @Tags         orders
// @Produce      json
// @Param        id           path      string  true  "Order ID"
// @Param        included_id  path      string  true  "Included item ID"
// @Success      200          {object}  response.OrderResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      422          {object}  pkg.HTTPError
// @Router       /orders/{id}/items/{included_id} [delete]
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	h.removeIncluded(c, h.usecase.RemoveItem)
}

func (h *OrderHandler) removeIncluded(
	c *gin.Context,
	remover func(ctx context.Context, orderID, includedID string) (entities.Order, error),
) {
	order, err := remover(c.Request.Context(), c.Param("id"), c.Param("included_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// StartDiagnosis godoc
// @Summary      Start diagnosis
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{id}/diagnosis [patch]
func (h *OrderHandler) StartDiagnosis(c *gin.Context) {
	h.transition(c, h.usecase.StartDiagnosis)
}

// Cancel godoc
// @Summary      Cancel an order before execution
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{id}/cancel [patch]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// FinalizeExecution godoc
// @Summary      Finish execution
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{id}/finish [patch]
func (h *OrderHandler) FinalizeExecution(c *gin.Context) {
	h.transition(c, h.usecase.FinalizeExecution)
}

// Deliver godoc
// @Summary      Deliver the vehicle
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{id}/deliver [patch]
func (h *OrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.usecase.Deliver)
}

// ApproveBudget godoc
// @Summary      Approve the budget and reserve stock
// @Tags         budget
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{id}/budget/approve [patch]
func (h *OrderHandler) ApproveBudget(c *gin.Context) {
	h.transition(c, h.usecase.ApproveBudget)
}

// DisapproveBudget godoc
// @Summary      Reject the budget, canceling the order
// @Tags         budget
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{id}/budget/disapprove [patch]
func (h *OrderHandler) DisapproveBudget(c *gin.Context) {
	h.transition(c, h.usecase.DisapproveBudget)
}

func (h *OrderHandler) transition(c *gin.Context, apply func(ctx context.Context, orderID string) (entities.Order, error)) {
	order, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GenerateBudget godoc
// @Summary      Generate the budget
// @Tags         budget
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      201  {object}  response.BudgetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{id}/budget [post]
func (h *OrderHandler) GenerateBudget(c *gin.Context) {
	budget, err := h.usecase.GenerateBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// AverageTurnaround godoc
// @Summary      Mean turnaround of delivered orders
// @Tags         metrics
// @Produce      json
// @Param        days  query     int  false  "Trailing window in days (1-365)"  default(30)
// @Success      200   {object}  response.TurnaroundResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /orders/metrics/turnaround [get]
func (h *OrderHandler) AverageTurnaround(c *gin.Context) {
	days, err := request.ParseDays(c.Query("days"))
	if err != nil {
		c.JSON(errInvalidDays.HTTPStatus, errInvalidDays.ToHTTPError())
		return
	}

	report, err := h.usecase.AverageTurnaround(c.Request.Context(), days)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTurnaround(report))
}

// PublicLookup godoc
// @Summary      Track an order by code and customer document
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      request.PublicLookupRequest  true  "Code and document"
// @Success      200   {object}  response.PublicOrderResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /public/orders/lookup [post]
func (h *OrderHandler) PublicLookup(c *gin.Context) {
	var payload request.PublicLookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.PublicLookup(c.Request.Context(), payload.Code, payload.Document)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "order not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPublicOrder(order))
}

func (h *OrderHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	appErr := mapOrderError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnexpected):
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrResourceNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrReferenceNotFound):
		return pkg.NewDomainError("REFERENCE_NOT_FOUND", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrDomainRuleBroken):
		return pkg.NewDomainError("DOMAIN_RULE_BROKEN", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
