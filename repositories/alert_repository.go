package repositories

import (
	"context"
	"errors"

	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"gorm.io/gorm"
)

type GormAlertRepository struct {
	db *gorm.DB
}

func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

func (r *GormAlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *GormAlertRepository) FindByID(ctx context.Context, id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("alert")
		}
		return nil, err
	}
	return &alert, nil
}

func (r *GormAlertRepository) List(ctx context.Context, closed *bool) ([]models.Alert, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if closed != nil {
		if *closed {
			query = query.Where("closed_at IS NOT NULL")
		} else {
			query = query.Where("closed_at IS NULL")
		}
	}
	var alerts []models.Alert
	err := query.Find(&alerts).Error
	return alerts, err
}

func (r *GormAlertRepository) Update(ctx context.Context, alert *models.Alert) error {
	result := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("id = ? AND version = ?", alert.ID, alert.Version).
		Updates(map[string]interface{}{
			"closed_at":     alert.ClosedAt,
			"managed_by_id": alert.ManagedByID,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrVersionConflict
	}
	alert.Version++
	return nil
}
