package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
	"github.com/sergiostefanizzi/profile-microservice-sub000/services"
)

type InteractionController struct {
	Follows   *services.FollowService
	Likes     repositories.LikeRepository
	Posts     repositories.PostRepository
	Profiles  repositories.ProfileRepository
	Directory identity.Directory
}

func NewInteractionController(follows *services.FollowService, likes repositories.LikeRepository, posts repositories.PostRepository, profiles repositories.ProfileRepository, directory identity.Directory) *InteractionController {
	return &InteractionController{
		Follows:   follows,
		Likes:     likes,
		Posts:     posts,
		Profiles:  profiles,
		Directory: directory,
	}
}

// PutFollow godoc
// @Summary Follow or unfollow a profile
// @Description Drives the follow relationship between the acting profile and the target
// @Tags follows
// @Produce json
// @Param profileId path integer true "Acting (follower) profile ID"
// @Param followedId path integer true "Target profile ID"
// @Param unfollow query boolean false "Unfollow instead of follow"
// @Success 200 {object} services.FollowResult
// @Router /profiles/{profileId}/follows/{followedId} [put]
func (ic *InteractionController) PutFollow(c *gin.Context) {
	followerID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}
	followedID, err := parseID(c, "followedId")
	if err != nil {
		respondError(c, err)
		return
	}
	unfollow, err := parseBoolQuery(c, "unfollow")
	if err != nil {
		respondError(c, err)
		return
	}

	follower, err := ic.Profiles.FindByID(c.Request.Context(), followerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, ic.Directory, follower); err != nil {
		respondError(c, err)
		return
	}

	result, err := ic.Follows.SetFollowState(c.Request.Context(), followerID, followedID, unfollow)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PutFollowedBy godoc
// @Summary Accept or reject a follow request
// @Description The target profile's response to a pending or active request
// @Tags follows
// @Produce json
// @Param profileId path integer true "Target (followed) profile ID"
// @Param followerId path integer true "Requesting profile ID"
// @Param rejectFollow query boolean false "Reject instead of accept"
// @Success 200 {object} services.FollowResult
// @Router /profiles/{profileId}/followedBy/{followerId} [put]
func (ic *InteractionController) PutFollowedBy(c *gin.Context) {
	followedID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}
	followerID, err := parseID(c, "followerId")
	if err != nil {
		respondError(c, err)
		return
	}
	reject, err := parseBoolQuery(c, "rejectFollow")
	if err != nil {
		respondError(c, err)
		return
	}

	followed, err := ic.Profiles.FindByID(c.Request.Context(), followedID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, ic.Directory, followed); err != nil {
		respondError(c, err)
		return
	}

	result, err := ic.Follows.AcceptOrReject(c.Request.Context(), followedID, followerID, reject)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetFollows godoc
// @Summary List profiles this profile follows
// @Tags follows
// @Produce json
// @Param profileId path integer true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/{profileId}/follows [get]
func (ic *InteractionController) GetFollows(c *gin.Context) {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}
	follows, err := ic.Follows.ListFollowing(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"follows": follows})
}

// GetFollowedBy godoc
// @Summary List accepted and pending followers of a profile
// @Tags follows
// @Produce json
// @Param profileId path integer true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/{profileId}/followedBy [get]
func (ic *InteractionController) GetFollowedBy(c *gin.Context) {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}
	followers, err := ic.Follows.ListFollowers(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"followedBy": followers})
}

// PutLike godoc
// @Summary Like or unlike a post
// @Tags likes
// @Produce json
// @Param postId path integer true "Post ID"
// @Param profileId path integer true "Acting profile ID"
// @Param removeLike query boolean false "Remove the like"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{postId}/likes/{profileId} [put]
func (ic *InteractionController) PutLike(c *gin.Context) {
	postID, err := parseID(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}
	removeLike, err := parseBoolQuery(c, "removeLike")
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := ic.Profiles.FindByID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, ic.Directory, profile); err != nil {
		respondError(c, err)
		return
	}
	if _, err := ic.Posts.FindByID(c.Request.Context(), postID); err != nil {
		respondError(c, err)
		return
	}

	liked, err := ic.Likes.Set(c.Request.Context(), profileID, postID, removeLike)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"postId": postID, "profileId": profileID, "liked": liked})
}

// GetLikes godoc
// @Summary List likes of a post
// @Tags likes
// @Produce json
// @Param postId path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{postId}/likes [get]
func (ic *InteractionController) GetLikes(c *gin.Context) {
	postID, err := parseID(c, "postId")
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := ic.Posts.FindByID(c.Request.Context(), postID); err != nil {
		respondError(c, err)
		return
	}
	likes, err := ic.Likes.ListByPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}
