package repositories

import (
	"context"
	"time"

	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
)

// Lookup methods return *apperrors.NotFoundError when the row is absent or
// soft-deleted. Update methods are conditional on the row's version counter
// and return apperrors.ErrVersionConflict when the condition fails against a
// live row, or *apperrors.NotFoundError when the row disappeared since the
// caller's read.

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, id uint) (*models.Profile, error)
	FindByName(ctx context.Context, name string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	// SoftDelete removes the profile and cascades a soft delete to its
	// comments inside one transaction.
	SoftDelete(ctx context.Context, id uint) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	ListByProfile(ctx context.Context, profileID uint) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	SoftDelete(ctx context.Context, id uint) error
	// SoftDeleteStoriesBefore soft-deletes every active STORY created before
	// cutoff and reports how many rows it touched. Idempotent across ticks.
	SoftDeleteStoriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	SoftDelete(ctx context.Context, id uint) error
}

type LikeRepository interface {
	// Set makes the like state of the (profile, post) pair match removeLike
	// and reports whether the post ends up liked. Both directions are
	// idempotent; the pair-keyed row is restored rather than recreated.
	Set(ctx context.Context, profileID, postID uint, removeLike bool) (bool, error)
	ListByPost(ctx context.Context, postID uint) ([]models.Like, error)
}

type FollowRepository interface {
	Find(ctx context.Context, followerID, followedID uint) (*models.Follow, error)
	// Save upserts by the (follower, followed) composite key.
	Save(ctx context.Context, follow *models.Follow) error
	ListFollowing(ctx context.Context, profileID uint) ([]models.Follow, error)
	ListFollowers(ctx context.Context, profileID uint) ([]models.Follow, error)
	CountAccepted(ctx context.Context, profileID uint) (followers int64, following int64, err error)
}

type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	FindByID(ctx context.Context, id uint) (*models.Alert, error)
	// List returns alerts filtered by closed state; a nil filter returns all.
	List(ctx context.Context, closed *bool) ([]models.Alert, error)
	Update(ctx context.Context, alert *models.Alert) error
}
