package routes

import (
	"go-stall-management/controllers"

	"github.com/gin-gonic/gin"
)

// WaitingRoutes registers both the public and the admin queue surface. The
// admin paths carry no authentication; they are distinguished by path only.
func WaitingRoutes(incomingRoutes *gin.Engine, store controllers.WaitingStore) {
	incomingRoutes.POST("/api/waiting", controllers.AddWaiting(store))
	incomingRoutes.GET("/api/waiting", controllers.GetWaiting(store))
	incomingRoutes.DELETE("/api/waiting/:entry_id", controllers.DeleteWaiting(store))
	incomingRoutes.DELETE("/api/waiting/admin/:entry_id", controllers.AdminDeleteWaiting(store))
	incomingRoutes.GET("/api/admin/waiting", controllers.GetAdminWaiting(store))
}
