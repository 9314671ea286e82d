package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
	"github.com/sergiostefanizzi/profile-microservice-sub000/services"
)

type AdminController struct {
	Profiles repositories.ProfileRepository
	Alerts   *services.AlertService
}

type BlockProfileRequest struct {
	// RFC 3339 instant; an explicit null lifts the block. Raw so an absent
	// field can be told apart from null and rejected: a sparse PATCH must
	// never unblock as a side effect.
	BlockedUntil json.RawMessage `json:"blockedUntil"`
}

type ManageAlertRequest struct {
	ManagedByID *uint `json:"managedById"`
	Close       bool  `json:"close"`
}

func NewAdminController(profiles repositories.ProfileRepository, alerts *services.AlertService) *AdminController {
	return &AdminController{Profiles: profiles, Alerts: alerts}
}

// BlockProfile godoc
// @Summary Block or unblock a profile
// @Description Sets blockedUntil to a future instant, or clears it with null
// @Tags admin
// @Accept json
// @Produce json
// @Param profileId path integer true "Profile ID"
// @Param block body BlockProfileRequest true "Block request"
// @Success 200 {object} models.Profile
// @Router /admins/profiles/{profileId} [patch]
func (ac *AdminController) BlockProfile(c *gin.Context) {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		respondError(c, err)
		return
	}

	var req BlockProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ac.Profiles.FindByID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(req.BlockedUntil) == 0 {
		respondError(c, apperrors.Validation("blockedUntil is required; use null to unblock"))
		return
	}
	if string(req.BlockedUntil) == "null" {
		profile.BlockedUntil = nil
	} else {
		var raw string
		if err := json.Unmarshal(req.BlockedUntil, &raw); err != nil {
			respondError(c, apperrors.Validation("blockedUntil must be a valid RFC 3339 timestamp"))
			return
		}
		blockedUntil, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, apperrors.Validation("blockedUntil must be a valid RFC 3339 timestamp"))
			return
		}
		if !blockedUntil.After(time.Now()) {
			respondError(c, apperrors.Validation("blockedUntil must be in the future"))
			return
		}
		profile.BlockedUntil = &blockedUntil
	}

	if err := ac.Profiles.Update(c.Request.Context(), profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetAlerts godoc
// @Summary List moderation alerts
// @Tags admin
// @Produce json
// @Param closed query boolean false "Filter by closed state"
// @Success 200 {object} map[string]interface{}
// @Router /admins/alerts [get]
func (ac *AdminController) GetAlerts(c *gin.Context) {
	var closed *bool
	if raw, ok := c.GetQuery("closed"); ok {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, apperrors.Validation("closed must be a boolean"))
			return
		}
		closed = &value
	}

	alerts, err := ac.Alerts.List(c.Request.Context(), closed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// ManageAlert godoc
// @Summary Claim and/or close a moderation alert
// @Tags admin
// @Accept json
// @Produce json
// @Param alertId path integer true "Alert ID"
// @Param alert body ManageAlertRequest true "Management request"
// @Success 200 {object} models.Alert
// @Router /admins/alerts/{alertId} [patch]
func (ac *AdminController) ManageAlert(c *gin.Context) {
	alertID, err := parseID(c, "alertId")
	if err != nil {
		respondError(c, err)
		return
	}

	var req ManageAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := ac.Alerts.Manage(c.Request.Context(), alertID, req.ManagedByID, req.Close)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
