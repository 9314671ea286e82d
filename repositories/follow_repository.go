package repositories

import (
	"context"
	"errors"

	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"gorm.io/gorm"
)

type GormFollowRepository struct {
	db *gorm.DB
}

func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

func (r *GormFollowRepository) Find(ctx context.Context, followerID, followedID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("follow")
		}
		return nil, err
	}
	return &follow, nil
}

// Save upserts by the (follower, followed) pair. The update is conditional on
// the version the caller read; losing the race on either branch surfaces as a
// version conflict rather than a duplicate row.
func (r *GormFollowRepository) Save(ctx context.Context, follow *models.Follow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Follow{}).
			Where("follower_id = ? AND followed_id = ? AND version = ?",
				follow.FollowerID, follow.FollowedID, follow.Version).
			Updates(map[string]interface{}{
				"status":        follow.Status,
				"followed_at":   follow.FollowedAt,
				"unfollowed_at": follow.UnfollowedAt,
				"version":       gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			follow.Version++
			return nil
		}

		if err := tx.Create(follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrVersionConflict
			}
			return err
		}
		return nil
	})
}

func (r *GormFollowRepository) ListFollowing(ctx context.Context, profileID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND status = ?", profileID, models.FollowStatusAccepted).
		Order("followed_at DESC").
		Find(&follows).Error
	return follows, err
}

func (r *GormFollowRepository) ListFollowers(ctx context.Context, profileID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Where("followed_id = ? AND status IN ?", profileID,
			[]string{models.FollowStatusAccepted, models.FollowStatusPending}).
		Order("created_at DESC").
		Find(&follows).Error
	return follows, err
}

func (r *GormFollowRepository) CountAccepted(ctx context.Context, profileID uint) (int64, int64, error) {
	var followers, following int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("followed_id = ? AND status = ?", profileID, models.FollowStatusAccepted).
		Count(&followers).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND status = ?", profileID, models.FollowStatusAccepted).
		Count(&following).Error
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
