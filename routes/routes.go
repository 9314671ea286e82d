package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sergiostefanizzi/profile-microservice-sub000/cache"
	"github.com/sergiostefanizzi/profile-microservice-sub000/config"
	"github.com/sergiostefanizzi/profile-microservice-sub000/controllers"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/middleware"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
	"github.com/sergiostefanizzi/profile-microservice-sub000/services"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, counts *cache.FollowCounts, directory identity.Directory) {
	// Repositories
	profileRepo := repositories.NewGormProfileRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	likeRepo := repositories.NewGormLikeRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	alertRepo := repositories.NewGormAlertRepository(db)

	// Services
	followService := services.NewFollowService(profileRepo, followRepo, counts, log.Logger)
	alertService := services.NewAlertService(profileRepo, postRepo, commentRepo, alertRepo, log.Logger)

	// Controllers
	profileController := controllers.NewProfileController(profileRepo, followService, directory)
	postController := controllers.NewPostController(postRepo, profileRepo, directory)
	commentController := controllers.NewCommentController(commentRepo, postRepo, profileRepo, directory)
	interactionController := controllers.NewInteractionController(followService, likeRepo, postRepo, profileRepo, directory)
	alertController := controllers.NewAlertController(alertService, profileRepo, directory)
	adminController := controllers.NewAdminController(profileRepo, alertService)
	uploadController := controllers.NewUploadController(config.GetS3Config())

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupProfileRoutes(protected, profileController, postController, interactionController)
		SetupPostRoutes(protected, postController, commentController, interactionController)
		SetupAlertRoutes(protected, alertController)
		SetupUploadRoutes(protected, uploadController)
	}

	admin := r.Group("/admins")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		SetupAdminRoutes(admin, adminController)
	}
}
