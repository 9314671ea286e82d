package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
)

type CommentController struct {
	Comments  repositories.CommentRepository
	Posts     repositories.PostRepository
	Profiles  repositories.ProfileRepository
	Directory identity.Directory
}

type CreateCommentRequest struct {
	ProfileID uint   `json:"profileId" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewCommentController(comments repositories.CommentRepository, posts repositories.PostRepository, profiles repositories.ProfileRepository, directory identity.Directory) *CommentController {
	return &CommentController{Comments: comments, Posts: posts, Profiles: profiles, Directory: directory}
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path integer true "Post ID"
// @Param comment body CreateCommentRequest true "Comment creation request"
// @Success 201 {object} models.Comment
// @Router /posts/{postId}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	postID, err := parseID(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if messages := validateCommentContent(req.Content); len(messages) > 0 {
		respondError(c, &apperrors.ValidationError{Messages: messages})
		return
	}

	profile, err := cc.Profiles.FindByID(c.Request.Context(), req.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, cc.Directory, profile); err != nil {
		respondError(c, err)
		return
	}
	if _, err := cc.Posts.FindByID(c.Request.Context(), postID); err != nil {
		respondError(c, err)
		return
	}

	comment := models.Comment{
		PostID:    postID,
		ProfileID: req.ProfileID,
		Content:   req.Content,
	}
	if err := cc.Comments.Create(c.Request.Context(), &comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetPostComments godoc
// @Summary List active comments of a post
// @Tags comments
// @Produce json
// @Param postId path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{postId}/comments [get]
func (cc *CommentController) GetPostComments(c *gin.Context) {
	postID, err := parseID(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := cc.Posts.FindByID(c.Request.Context(), postID); err != nil {
		respondError(c, err)
		return
	}
	comments, err := cc.Comments.ListByPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// UpdateComment godoc
// @Summary Update a comment's content
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path integer true "Comment ID"
// @Param comment body UpdateCommentRequest true "New content"
// @Success 200 {object} models.Comment
// @Router /comments/{commentId} [patch]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if messages := validateCommentContent(req.Content); len(messages) > 0 {
		respondError(c, &apperrors.ValidationError{Messages: messages})
		return
	}

	comment, err := cc.Comments.FindByID(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	author, err := cc.Profiles.FindByID(c.Request.Context(), comment.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, cc.Directory, author); err != nil {
		respondError(c, err)
		return
	}

	comment.Content = req.Content
	if err := cc.Comments.Update(c.Request.Context(), comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary Soft-delete a comment
// @Tags comments
// @Param commentId path integer true "Comment ID"
// @Success 204
// @Router /comments/{commentId} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		respondError(c, err)
		return
	}

	comment, err := cc.Comments.FindByID(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	author, err := cc.Profiles.FindByID(c.Request.Context(), comment.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, cc.Directory, author); err != nil {
		respondError(c, err)
		return
	}

	if err := cc.Comments.SoftDelete(c.Request.Context(), commentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
