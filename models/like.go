package models

import (
	"time"

	"gorm.io/gorm"
)

// Like is keyed by the (profile, post) pair; there is no surrogate id.
// Unliking soft-deletes the row, liking again restores it.
type Like struct {
	ProfileID uint           `gorm:"primaryKey;autoIncrement:false" json:"profileId"`
	PostID    uint           `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Version   uint           `gorm:"not null;default:0" json:"-"`

	Profile Profile `gorm:"foreignKey:ProfileID" json:"-"`
	Post    Post    `gorm:"foreignKey:PostID" json:"-"`
}
