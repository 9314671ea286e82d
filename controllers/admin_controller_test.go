package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubProfileRepo mirrors the repository contract: soft-deleted rows are
// invisible to lookups and report not-found on update, live rows with a
// stale version report a version conflict.
type stubProfileRepo struct {
	profiles map[uint]*models.Profile
}

func newStubProfileRepo(profiles ...*models.Profile) *stubProfileRepo {
	repo := &stubProfileRepo{profiles: make(map[uint]*models.Profile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (r *stubProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id uint) (*models.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok || profile.DeletedAt.Valid {
		return nil, apperrors.NotFound("profile")
	}
	copied := *profile
	return &copied, nil
}

func (r *stubProfileRepo) FindByName(_ context.Context, name string) (*models.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Name == name && !profile.DeletedAt.Valid {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("profile")
}

func (r *stubProfileRepo) Update(_ context.Context, profile *models.Profile) error {
	stored, ok := r.profiles[profile.ID]
	if !ok || stored.DeletedAt.Valid {
		return apperrors.NotFound("profile")
	}
	if stored.Version != profile.Version {
		return apperrors.ErrVersionConflict
	}
	profile.Version++
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *stubProfileRepo) SoftDelete(_ context.Context, id uint) error {
	profile, ok := r.profiles[id]
	if !ok || profile.DeletedAt.Valid {
		return apperrors.NotFound("profile")
	}
	profile.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func patchBlockProfile(t *testing.T, repo *stubProfileRepo, profileID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "profileId", Value: profileID}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/admins/profiles/"+profileID, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	NewAdminController(repo, nil).BlockProfile(c)
	return recorder
}

func TestBlockProfile_FutureDateSetsBlock(t *testing.T) {
	repo := newStubProfileRepo(&models.Profile{ID: 1, Name: "marioBros"})
	until := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	recorder := patchBlockProfile(t, repo, "1", `{"blockedUntil":"`+until.Format(time.RFC3339)+`"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, until.Format(time.RFC3339), body["blockedUntil"])

	stored := repo.profiles[1]
	require.NotNil(t, stored.BlockedUntil)
	assert.True(t, stored.IsBlocked(time.Now()))
}

func TestBlockProfile_PastDateRejected(t *testing.T) {
	repo := newStubProfileRepo(&models.Profile{ID: 1, Name: "marioBros"})
	past := time.Now().Add(-time.Hour).Format(time.RFC3339)

	recorder := patchBlockProfile(t, repo, "1", `{"blockedUntil":"`+past+`"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, repo.profiles[1].BlockedUntil)
}

func TestBlockProfile_MalformedDateRejected(t *testing.T) {
	repo := newStubProfileRepo(&models.Profile{ID: 1, Name: "marioBros"})

	recorder := patchBlockProfile(t, repo, "1", `{"blockedUntil":"tomorrow"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBlockProfile_NullUnblocksAndOmitsField(t *testing.T) {
	until := time.Now().Add(48 * time.Hour)
	repo := newStubProfileRepo(&models.Profile{ID: 1, Name: "marioBros", BlockedUntil: &until})

	recorder := patchBlockProfile(t, repo, "1", `{"blockedUntil":null}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	_, present := body["blockedUntil"]
	assert.False(t, present)

	assert.Nil(t, repo.profiles[1].BlockedUntil)
	assert.False(t, repo.profiles[1].IsBlocked(time.Now()))
}

func TestBlockProfile_AbsentFieldDoesNotUnblock(t *testing.T) {
	until := time.Now().Add(48 * time.Hour)
	repo := newStubProfileRepo(&models.Profile{ID: 1, Name: "marioBros", BlockedUntil: &until})

	recorder := patchBlockProfile(t, repo, "1", `{}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, repo.profiles[1].BlockedUntil)
	assert.True(t, repo.profiles[1].IsBlocked(time.Now()))
}

func TestBlockProfile_UnknownProfile(t *testing.T) {
	repo := newStubProfileRepo()
	until := time.Now().Add(time.Hour).Format(time.RFC3339)

	recorder := patchBlockProfile(t, repo, "7", `{"blockedUntil":"`+until+`"}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// deleteAfterReadRepo soft-deletes the profile right after it is read, so
// the handler's write races a concurrent delete.
type deleteAfterReadRepo struct {
	*stubProfileRepo
}

func (r *deleteAfterReadRepo) FindByID(ctx context.Context, id uint) (*models.Profile, error) {
	profile, err := r.stubProfileRepo.FindByID(ctx, id)
	if err == nil {
		r.profiles[id].DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	return profile, err
}

func TestBlockProfile_DeletedSinceReadIsNotFound(t *testing.T) {
	repo := &deleteAfterReadRepo{newStubProfileRepo(&models.Profile{ID: 1, Name: "marioBros"})}
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	until := time.Now().Add(time.Hour).Format(time.RFC3339)
	c.Params = gin.Params{{Key: "profileId", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/admins/profiles/1", strings.NewReader(`{"blockedUntil":"`+until+`"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	NewAdminController(repo, nil).BlockProfile(c)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAuthorizeProfile_BlockedActingProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(string(utils.UserContextKey), &utils.UserClaims{AccountID: "acct-1", ProfileIDs: []uint{1}})

	until := time.Now().Add(time.Hour)
	blocked := &models.Profile{ID: 1, Name: "marioBros", BlockedUntil: &until}

	err := authorizeProfile(c, nil, blocked)
	require.ErrorIs(t, err, apperrors.ErrProfileBlocked)

	respondError(c, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAuthorizeProfile_ExpiredBlockAllows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(string(utils.UserContextKey), &utils.UserClaims{AccountID: "acct-1", ProfileIDs: []uint{1}})

	lapsed := time.Now().Add(-time.Hour)
	profile := &models.Profile{ID: 1, Name: "marioBros", BlockedUntil: &lapsed}

	assert.NoError(t, authorizeProfile(c, nil, profile))
}
