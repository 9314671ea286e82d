package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/controllers"
)

func SetupProfileRoutes(protected *gin.RouterGroup, profileController *controllers.ProfileController, postController *controllers.PostController, interactionController *controllers.InteractionController) {
	profiles := protected.Group("/profiles")
	{
		profiles.POST("", profileController.CreateProfile)
		profiles.GET("/:profileId", profileController.GetProfile)
		profiles.PATCH("/:profileId", profileController.UpdateProfile)
		profiles.DELETE("/:profileId", profileController.DeleteProfile)

		profiles.GET("/:profileId/posts", postController.GetProfilePosts)

		// Follow relationship lifecycle
		profiles.PUT("/:profileId/follows/:followedId", interactionController.PutFollow)
		profiles.GET("/:profileId/follows", interactionController.GetFollows)
		profiles.PUT("/:profileId/followedBy/:followerId", interactionController.PutFollowedBy)
		profiles.GET("/:profileId/followedBy", interactionController.GetFollowedBy)
	}
}
