package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/controllers"
)

func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController) {
	admin.PATCH("/profiles/:profileId", adminController.BlockProfile)
	admin.GET("/alerts", adminController.GetAlerts)
	admin.PATCH("/alerts/:alertId", adminController.ManageAlert)
}
