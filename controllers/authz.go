package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/utils"
)

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.Validation(param + " must be a positive integer")
	}
	return uint(id), nil
}

func parseBoolQuery(c *gin.Context, name string) (bool, error) {
	raw := c.DefaultQuery(name, "false")
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.Validation(name + " must be a boolean")
	}
	return value, nil
}

// authorizeProfile checks that the caller may act as the given profile.
// The token's profile list decides first; on a miss the user directory is
// consulted, since the list in the token is only a cache. A blocked profile
// cannot act at all.
func authorizeProfile(c *gin.Context, dir identity.Directory, profile *models.Profile) error {
	user := utils.GetUser(c)
	if user == nil {
		return apperrors.ErrNotInProfileList
	}
	if !user.OwnsProfile(profile.ID) {
		if dir == nil {
			return apperrors.ErrNotInProfileList
		}
		ok, err := dir.IsMember(c.Request.Context(), user.AccountID, profile.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrNotInProfileList
		}
	}
	if profile.IsBlocked(time.Now()) {
		return apperrors.ErrProfileBlocked
	}
	return nil
}
