package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
	"github.com/sergiostefanizzi/profile-microservice-sub000/services"
)

type AlertController struct {
	Alerts    *services.AlertService
	Profiles  repositories.ProfileRepository
	Directory identity.Directory
}

type CreateAlertRequest struct {
	CreatorID uint   `json:"creatorId" binding:"required"`
	PostID    *uint  `json:"postId"`
	CommentID *uint  `json:"commentId"`
	Reason    string `json:"reason" binding:"required"`
}

func NewAlertController(alerts *services.AlertService, profiles repositories.ProfileRepository, directory identity.Directory) *AlertController {
	return &AlertController{Alerts: alerts, Profiles: profiles, Directory: directory}
}

// CreateAlert godoc
// @Summary Report a post or comment
// @Description Records a moderation alert against exactly one of a post or a comment
// @Tags alerts
// @Accept json
// @Produce json
// @Param isPost query boolean true "Target is a post"
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} models.Alert
// @Router /alerts [post]
func (ac *AlertController) CreateAlert(c *gin.Context) {
	isPost, err := parseBoolQuery(c, "isPost")
	if err != nil {
		respondError(c, err)
		return
	}

	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if messages := validateAlertReason(req.Reason); len(messages) > 0 {
		respondError(c, &apperrors.ValidationError{Messages: messages})
		return
	}

	// The target is validated into its tagged form before anything touches
	// storage; both-or-neither payloads die here.
	target, err := services.NewAlertTarget(isPost, req.PostID, req.CommentID)
	if err != nil {
		respondError(c, err)
		return
	}

	reporter, err := ac.Profiles.FindByID(c.Request.Context(), req.CreatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := authorizeProfile(c, ac.Directory, reporter); err != nil {
		respondError(c, err)
		return
	}

	alert, err := ac.Alerts.Create(c.Request.Context(), req.CreatorID, target, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}
