package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
	"github.com/sergiostefanizzi/profile-microservice-sub000/services"
	"github.com/sergiostefanizzi/profile-microservice-sub000/utils"
)

type ProfileController struct {
	Profiles  repositories.ProfileRepository
	Follows   *services.FollowService
	Directory identity.Directory
}

type CreateProfileRequest struct {
	Name       string `json:"name" binding:"required"`
	Bio        string `json:"bio"`
	PictureURL string `json:"pictureUrl"`
	IsPrivate  bool   `json:"isPrivate"`
}

type UpdateProfileRequest struct {
	Bio        *string `json:"bio"`
	PictureURL *string `json:"pictureUrl"`
	IsPrivate  *bool   `json:"isPrivate"`
}

func NewProfileController(profiles repositories.ProfileRepository, follows *services.FollowService, directory identity.Directory) *ProfileController {
	return &ProfileController{Profiles: profiles, Follows: follows, Directory: directory}
}

// CreateProfile godoc
// @Summary Create a new profile
// @Description Creates a profile owned by the authenticated account
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body CreateProfileRequest true "Profile creation request"
// @Success 201 {object} models.Profile
// @Router /profiles [post]
func (pc *ProfileController) CreateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var messages []string
	messages = append(messages, validateProfileName(req.Name)...)
	messages = append(messages, validateBio(req.Bio)...)
	messages = append(messages, validatePictureURL(req.PictureURL)...)
	if len(messages) > 0 {
		respondError(c, &apperrors.ValidationError{Messages: messages})
		return
	}

	profile := models.Profile{
		Name:       req.Name,
		Bio:        req.Bio,
		PictureURL: req.PictureURL,
		IsPrivate:  req.IsPrivate,
		AccountID:  user.AccountID,
	}

	if err := pc.Profiles.Create(c.Request.Context(), &profile); err != nil {
		respondError(c, err)
		return
	}

	// Register ownership with the directory; the token list catches up on
	// the next token refresh.
	if pc.Directory != nil {
		if err := pc.Directory.AddMember(c.Request.Context(), user.AccountID, profile.ID); err != nil {
			log.Warn().Err(err).Uint("profile_id", profile.ID).Msg("directory add failed")
		}
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile godoc
// @Summary Get a profile
// @Description Returns an active profile with its follow counts
// @Tags profiles
// @Produce json
// @Param profileId path integer true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/{profileId} [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := pc.Profiles.FindByID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}

	followers, following, err := pc.Follows.Counts(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"id":         profile.ID,
		"name":       profile.Name,
		"isPrivate":  profile.IsPrivate,
		"createdAt":  profile.CreatedAt,
		"followers":  followers,
		"following":  following,
	}
	if profile.Bio != "" {
		response["bio"] = profile.Bio
	}
	if profile.PictureURL != "" {
		response["pictureUrl"] = profile.PictureURL
	}
	if profile.BlockedUntil != nil {
		response["blockedUntil"] = profile.BlockedUntil
	}

	c.JSON(http.StatusOK, response)
}

// UpdateProfile godoc
// @Summary Partially update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param profileId path integer true "Profile ID"
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.Profile
// @Router /profiles/{profileId} [patch]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := pc.Profiles.FindByID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, pc.Directory, profile); err != nil {
		respondError(c, err)
		return
	}

	var messages []string
	if req.Bio != nil {
		messages = append(messages, validateBio(*req.Bio)...)
	}
	if req.PictureURL != nil {
		messages = append(messages, validatePictureURL(*req.PictureURL)...)
	}
	if len(messages) > 0 {
		respondError(c, &apperrors.ValidationError{Messages: messages})
		return
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.PictureURL != nil {
		profile.PictureURL = *req.PictureURL
	}
	if req.IsPrivate != nil {
		profile.IsPrivate = *req.IsPrivate
	}

	if err := pc.Profiles.Update(c.Request.Context(), profile); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Soft-delete a profile
// @Description Soft-deletes the profile and cascades to its comments
// @Tags profiles
// @Param profileId path integer true "Profile ID"
// @Success 204
// @Router /profiles/{profileId} [delete]
func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := pc.Profiles.FindByID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, pc.Directory, profile); err != nil {
		respondError(c, err)
		return
	}

	if err := pc.Profiles.SoftDelete(c.Request.Context(), profileID); err != nil {
		respondError(c, err)
		return
	}

	if pc.Directory != nil {
		user := utils.GetUser(c)
		if err := pc.Directory.RemoveMember(c.Request.Context(), user.AccountID, profileID); err != nil {
			log.Warn().Err(err).Uint("profile_id", profileID).Msg("directory remove failed")
		}
	}

	c.Status(http.StatusNoContent)
}
