package services

import (
	"context"
	"time"

	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"gorm.io/gorm"
)

// In-memory repository fakes. Lookups mirror the real repositories: soft
// deleted rows are invisible and misses return *apperrors.NotFoundError.

type memProfileRepo struct {
	profiles map[uint]*models.Profile
	nextID   uint
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uint]*models.Profile)}
}

func (r *memProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	for _, existing := range r.profiles {
		if existing.Name == profile.Name && !existing.DeletedAt.Valid {
			return &apperrors.ConflictError{Message: "profile name already taken"}
		}
	}
	r.nextID++
	profile.ID = r.nextID
	profile.CreatedAt = time.Now()
	r.profiles[profile.ID] = profile
	return nil
}

func (r *memProfileRepo) FindByID(_ context.Context, id uint) (*models.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok || profile.DeletedAt.Valid {
		return nil, apperrors.NotFound("profile")
	}
	copied := *profile
	return &copied, nil
}

func (r *memProfileRepo) FindByName(_ context.Context, name string) (*models.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Name == name && !profile.DeletedAt.Valid {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("profile")
}

func (r *memProfileRepo) Update(_ context.Context, profile *models.Profile) error {
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

func (r *memProfileRepo) SoftDelete(_ context.Context, id uint) error {
	profile, ok := r.profiles[id]
	if !ok || profile.DeletedAt.Valid {
		return apperrors.NotFound("profile")
	}
	profile.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

type pairKey struct {
	followerID uint
	followedID uint
}

type memFollowRepo struct {
	follows map[pairKey]*models.Follow
}

func newMemFollowRepo() *memFollowRepo {
	return &memFollowRepo{follows: make(map[pairKey]*models.Follow)}
}

func (r *memFollowRepo) Find(_ context.Context, followerID, followedID uint) (*models.Follow, error) {
	follow, ok := r.follows[pairKey{followerID, followedID}]
	if !ok {
		return nil, apperrors.NotFound("follow")
	}
	copied := *follow
	return &copied, nil
}

func (r *memFollowRepo) Save(_ context.Context, follow *models.Follow) error {
	key := pairKey{follow.FollowerID, follow.FollowedID}
	if stored, ok := r.follows[key]; ok {
		if stored.Version != follow.Version {
			return apperrors.ErrVersionConflict
		}
		follow.Version++
	}
	copied := *follow
	r.follows[key] = &copied
	return nil
}

func (r *memFollowRepo) ListFollowing(_ context.Context, profileID uint) ([]models.Follow, error) {
	var follows []models.Follow
	for _, follow := range r.follows {
		if follow.FollowerID == profileID && follow.Status == models.FollowStatusAccepted {
			follows = append(follows, *follow)
		}
	}
	return follows, nil
}

func (r *memFollowRepo) ListFollowers(_ context.Context, profileID uint) ([]models.Follow, error) {
	var follows []models.Follow
	for _, follow := range r.follows {
		if follow.FollowedID == profileID && follow.Status != models.FollowStatusRejected {
			follows = append(follows, *follow)
		}
	}
	return follows, nil
}

func (r *memFollowRepo) CountAccepted(_ context.Context, profileID uint) (int64, int64, error) {
	var followers, following int64
	for _, follow := range r.follows {
		if follow.Status != models.FollowStatusAccepted {
			continue
		}
		if follow.FollowedID == profileID {
			followers++
		}
		if follow.FollowerID == profileID {
			following++
		}
	}
	return followers, following, nil
}

type memPostRepo struct {
	posts  map[uint]*models.Post
	nextID uint
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uint]*models.Post)}
}

func (r *memPostRepo) Create(_ context.Context, post *models.Post) error {
	r.nextID++
	post.ID = r.nextID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *memPostRepo) FindByID(_ context.Context, id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok || post.DeletedAt.Valid {
		return nil, apperrors.NotFound("post")
	}
	copied := *post
	return &copied, nil
}

func (r *memPostRepo) ListByProfile(_ context.Context, profileID uint) ([]models.Post, error) {
	var posts []models.Post
	for _, post := range r.posts {
		if post.ProfileID == profileID && !post.DeletedAt.Valid {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (r *memPostRepo) Update(_ context.Context, post *models.Post) error {
	stored, ok := r.posts[post.ID]
	if !ok || stored.Version != post.Version {
		return apperrors.ErrVersionConflict
	}
	post.Version++
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *memPostRepo) SoftDelete(_ context.Context, id uint) error {
	post, ok := r.posts[id]
	if !ok || post.DeletedAt.Valid {
		return apperrors.NotFound("post")
	}
	post.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (r *memPostRepo) SoftDeleteStoriesBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var expired int64
	for _, post := range r.posts {
		if post.PostType == models.PostTypeStory && !post.DeletedAt.Valid && post.CreatedAt.Before(cutoff) {
			post.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
			expired++
		}
	}
	return expired, nil
}

type memCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[uint]*models.Comment)}
}

func (r *memCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id uint) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok || comment.DeletedAt.Valid {
		return nil, apperrors.NotFound("comment")
	}
	copied := *comment
	return &copied, nil
}

func (r *memCommentRepo) ListByPost(_ context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID && !comment.DeletedAt.Valid {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

func (r *memCommentRepo) Update(_ context.Context, comment *models.Comment) error {
	stored, ok := r.comments[comment.ID]
	if !ok || stored.Version != comment.Version {
		return apperrors.ErrVersionConflict
	}
	comment.Version++
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *memCommentRepo) SoftDelete(_ context.Context, id uint) error {
	comment, ok := r.comments[id]
	if !ok || comment.DeletedAt.Valid {
		return apperrors.NotFound("comment")
	}
	comment.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

type memAlertRepo struct {
	alerts map[uint]*models.Alert
	nextID uint
}

func newMemAlertRepo() *memAlertRepo {
	return &memAlertRepo{alerts: make(map[uint]*models.Alert)}
}

func (r *memAlertRepo) Create(_ context.Context, alert *models.Alert) error {
	r.nextID++
	alert.ID = r.nextID
	copied := *alert
	r.alerts[alert.ID] = &copied
	return nil
}

func (r *memAlertRepo) FindByID(_ context.Context, id uint) (*models.Alert, error) {
	alert, ok := r.alerts[id]
	if !ok || alert.DeletedAt.Valid {
		return nil, apperrors.NotFound("alert")
	}
	copied := *alert
	return &copied, nil
}

func (r *memAlertRepo) List(_ context.Context, closed *bool) ([]models.Alert, error) {
	var alerts []models.Alert
	for _, alert := range r.alerts {
		if alert.DeletedAt.Valid {
			continue
		}
		if closed != nil && (alert.ClosedAt != nil) != *closed {
			continue
		}
		alerts = append(alerts, *alert)
	}
	return alerts, nil
}

func (r *memAlertRepo) Update(_ context.Context, alert *models.Alert) error {
	stored, ok := r.alerts[alert.ID]
	if !ok || stored.Version != alert.Version {
		return apperrors.ErrVersionConflict
	}
	alert.Version++
	copied := *alert
	r.alerts[alert.ID] = &copied
	return nil
}
