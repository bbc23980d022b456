package routes

import (
	"os_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders       = "/orders"
	PathPublicOrders = "/public/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)

		orders.POST("/:id/services", orderHandler.AddServices)
		orders.DELETE("/:id/services/:included_id", orderHandler.RemoveService)
		orders.POST("/:id/items", orderHandler.AddItem)
		orders.DELETE("/:id/items/:included_id", orderHandler.RemoveItem)

		orders.PATCH("/:id/diagnosis", orderHandler.StartDiagnosis)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
		orders.PATCH("/:id/finish", orderHandler.FinalizeExecution)
		orders.PATCH("/:id/deliver", orderHandler.Deliver)

		orders.POST("/:id/budget", orderHandler.GenerateBudget)
		orders.PATCH("/:id/budget/approve", orderHandler.ApproveBudget)
		orders.PATCH("/:id/budget/disapprove", orderHandler.DisapproveBudget)

		orders.GET("/metrics/turnaround", orderHandler.AverageTurnaround)
	}

	// Rotas publicas: acompanhamento pelo cliente, sem autenticação.
	public := rg.Group(PathPublicOrders)
	{
		public.POST("/lookup", orderHandler.PublicLookup)
	}
}
