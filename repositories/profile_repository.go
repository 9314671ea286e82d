package repositories

import (
	"context"
	"errors"

	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"gorm.io/gorm"
)

type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{Message: "profile name already taken"}
		}
		return err
	}
	return nil
}

func (r *GormProfileRepository) FindByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("profile")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *GormProfileRepository) FindByName(ctx context.Context, name string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("profile")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *GormProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ? AND version = ?", profile.ID, profile.Version).
		Updates(map[string]interface{}{
			"name":          profile.Name,
			"bio":           profile.Bio,
			"picture_url":   profile.PictureURL,
			"is_private":    profile.IsPrivate,
			"blocked_until": profile.BlockedUntil,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return &apperrors.ConflictError{Message: "profile name already taken"}
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Zero rows means either a lost version race or a row deleted since
		// the caller's read. Re-check so the miss reports as 404, not 409.
		var active int64
		if err := r.db.WithContext(ctx).Model(&models.Profile{}).
			Where("id = ?", profile.ID).Count(&active).Error; err != nil {
			return err
		}
		if active == 0 {
			return apperrors.NotFound("profile")
		}
		return apperrors.ErrVersionConflict
	}
	profile.Version++
	return nil
}

func (r *GormProfileRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Profile{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("profile")
		}
		// Cascade: a deleted profile takes its comments with it.
		return tx.Where("profile_id = ?", id).Delete(&models.Comment{}).Error
	})
}
