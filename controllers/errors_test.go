package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, err)
	return recorder
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.NotFound("profile"), http.StatusNotFound},
		{"conflict", &apperrors.ConflictError{Message: "profile name already taken"}, http.StatusConflict},
		{"validation", apperrors.Validation("name too short"), http.StatusBadRequest},
		{"follow itself", apperrors.ErrFollowItself, http.StatusBadRequest},
		{"unfollow on creation", apperrors.ErrUnfollowOnCreation, http.StatusBadRequest},
		{"alert type", apperrors.ErrAlertType, http.StatusBadRequest},
		{"alert status", apperrors.ErrAlertStatusInvalid, http.StatusBadRequest},
		{"profile blocked", apperrors.ErrProfileBlocked, http.StatusBadRequest},
		{"version conflict", apperrors.ErrVersionConflict, http.StatusConflict},
		{"not in profile list", apperrors.ErrNotInProfileList, http.StatusForbidden},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := respond(t, tt.err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestRespondError_SingleMessageBody(t *testing.T) {
	recorder := respond(t, apperrors.NotFound("post"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "post not found", body["error"])
}

func TestRespondError_ValidationBodyIsArray(t *testing.T) {
	recorder := respond(t, apperrors.Validation(
		"name must be between 3 and 30 characters long",
		"name can only contain letters",
	))

	var body map[string][]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body["error"], 2)
}

func TestRespondError_InternalErrorIsGeneric(t *testing.T) {
	recorder := respond(t, errors.New("pq: password authentication failed"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
}
