package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint           `gorm:"not null;index" json:"postId"`
	Post      Post           `gorm:"foreignKey:PostID" json:"-"`
	ProfileID uint           `gorm:"not null;index" json:"profileId"`
	Profile   Profile        `gorm:"foreignKey:ProfileID" json:"-"`
	Content   string         `gorm:"not null;type:varchar(2200)" json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Version   uint           `gorm:"not null;default:0" json:"-"`
}
