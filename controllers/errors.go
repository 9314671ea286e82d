package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
)

// respondError is the single place domain errors become HTTP responses.
// Bodies are {"error": <string>} except multi-field validation failures,
// which carry {"error": [<string>, ...]}.
func respondError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError
	var validation *apperrors.ValidationError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Messages})
	case errors.Is(err, apperrors.ErrFollowItself),
		errors.Is(err, apperrors.ErrUnfollowOnCreation),
		errors.Is(err, apperrors.ErrAlertType),
		errors.Is(err, apperrors.ErrAlertStatusInvalid),
		errors.Is(err, apperrors.ErrProfileBlocked):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotInProfileList):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
