package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController, commentController *controllers.CommentController, interactionController *controllers.InteractionController) {
	posts := protected.Group("/posts")
	{
		posts.POST("", postController.CreatePost)
		posts.GET("/:postId", postController.GetPost)
		posts.PATCH("/:postId", postController.UpdatePost)
		posts.DELETE("/:postId", postController.DeletePost)

		posts.PUT("/:postId/likes/:profileId", interactionController.PutLike)
		posts.GET("/:postId/likes", interactionController.GetLikes)

		posts.POST("/:postId/comments", commentController.CreateComment)
		posts.GET("/:postId/comments", commentController.GetPostComments)
	}

	comments := protected.Group("/comments")
	{
		comments.PATCH("/:commentId", commentController.UpdateComment)
		comments.DELETE("/:commentId", commentController.DeleteComment)
	}
}
