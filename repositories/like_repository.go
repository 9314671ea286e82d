package repositories

import (
	"context"
	"errors"

	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"gorm.io/gorm"
)

type GormLikeRepository struct {
	db *gorm.DB
}

func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

func (r *GormLikeRepository) Set(ctx context.Context, profileID, postID uint, removeLike bool) (bool, error) {
	liked := !removeLike
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like models.Like
		err := tx.Unscoped().
			Where("profile_id = ? AND post_id = ?", profileID, postID).
			First(&like).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if removeLike {
				// Nothing to remove; unliking is idempotent.
				return nil
			}
			return tx.Create(&models.Like{ProfileID: profileID, PostID: postID}).Error
		case err != nil:
			return err
		}

		if removeLike {
			if !like.DeletedAt.Valid {
				return tx.Delete(&like).Error
			}
			return nil
		}
		if like.DeletedAt.Valid {
			// Restore the pair-keyed row instead of inserting a duplicate.
			return tx.Unscoped().
				Model(&models.Like{}).
				Where("profile_id = ? AND post_id = ?", profileID, postID).
				Updates(map[string]interface{}{
					"deleted_at": nil,
					"version":    gorm.Expr("version + 1"),
				}).Error
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *GormLikeRepository) ListByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&likes).Error
	return likes, err
}
