package routes

import (
	"go-stall-management/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, store controllers.OrderStore) {
	incomingRoutes.POST("/api/orders", controllers.CreateOrder(store))
	incomingRoutes.GET("/api/orders", controllers.GetOrders(store))
	incomingRoutes.PATCH("/api/orders/:order_id/toggle", controllers.ToggleProcessed(store))
	incomingRoutes.PATCH("/api/orders/:order_id/serve-item", controllers.ToggleItemServed(store))
	incomingRoutes.PATCH("/api/orders/:order_id/complete", controllers.CompleteOrder(store))
}
