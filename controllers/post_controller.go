package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
)

type PostController struct {
	Posts     repositories.PostRepository
	Profiles  repositories.ProfileRepository
	Directory identity.Directory
}

type CreatePostRequest struct {
	ProfileID  uint   `json:"profileId" binding:"required"`
	ContentURL string `json:"contentUrl" binding:"required"`
	Caption    string `json:"caption"`
	PostType   string `json:"postType" binding:"omitempty,oneof=POST STORY"`
}

type UpdatePostRequest struct {
	Caption *string `json:"caption"`
}

func NewPostController(posts repositories.PostRepository, profiles repositories.ProfileRepository, directory identity.Directory) *PostController {
	return &PostController{Posts: posts, Profiles: profiles, Directory: directory}
}

// CreatePost godoc
// @Summary Create a post or story
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var messages []string
	messages = append(messages, validateContentURL(req.ContentURL)...)
	messages = append(messages, validateCaption(req.Caption)...)
	if len(messages) > 0 {
		respondError(c, &apperrors.ValidationError{Messages: messages})
		return
	}

	profile, err := pc.Profiles.FindByID(c.Request.Context(), req.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, pc.Directory, profile); err != nil {
		respondError(c, err)
		return
	}

	postType := req.PostType
	if postType == "" {
		postType = models.PostTypePost
	}

	post := models.Post{
		ProfileID:  req.ProfileID,
		ContentURL: req.ContentURL,
		Caption:    req.Caption,
		PostType:   postType,
	}
	if err := pc.Posts.Create(c.Request.Context(), &post); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary Get an active post
// @Tags posts
// @Produce json
// @Param postId path integer true "Post ID"
// @Success 200 {object} models.Post
// @Router /posts/{postId} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	postID, err := parseID(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}
	post, err := pc.Posts.FindByID(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetProfilePosts godoc
// @Summary List active posts of a profile
// @Tags posts
// @Produce json
// @Param profileId path integer true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/{profileId}/posts [get]
func (pc *PostController) GetProfilePosts(c *gin.Context) {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := pc.Profiles.FindByID(c.Request.Context(), profileID); err != nil {
		respondError(c, err)
		return
	}
	posts, err := pc.Posts.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// UpdatePost godoc
// @Summary Update a post's caption
// @Tags posts
// @Accept json
// @Produce json
// @Param postId path integer true "Post ID"
// @Param post body UpdatePostRequest true "Fields to update"
// @Success 200 {object} models.Post
// @Router /posts/{postId} [patch]
func (pc *PostController) UpdatePost(c *gin.Context) {
	postID, err := parseID(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Posts.FindByID(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	owner, err := pc.Profiles.FindByID(c.Request.Context(), post.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, pc.Directory, owner); err != nil {
		respondError(c, err)
		return
	}

	if req.Caption != nil {
		if messages := validateCaption(*req.Caption); len(messages) > 0 {
			respondError(c, &apperrors.ValidationError{Messages: messages})
			return
		}
		post.Caption = *req.Caption
	}

	if err := pc.Posts.Update(c.Request.Context(), post); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Soft-delete a post
// @Tags posts
// @Param postId path integer true "Post ID"
// @Success 204
// @Router /posts/{postId} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	postID, err := parseID(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := pc.Posts.FindByID(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	owner, err := pc.Profiles.FindByID(c.Request.Context(), post.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, pc.Directory, owner); err != nil {
		respondError(c, err)
		return
	}

	if err := pc.Posts.SoftDelete(c.Request.Context(), postID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
