package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	protected.POST("/uploads", uploadController.CreateUpload)
}
