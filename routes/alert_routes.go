package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/controllers"
)

func SetupAlertRoutes(protected *gin.RouterGroup, alertController *controllers.AlertController) {
	protected.POST("/alerts", alertController.CreateAlert)
}
