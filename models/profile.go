package models

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"unique;not null;type:varchar(30)" json:"name"`
	Bio          string         `gorm:"type:varchar(150)" json:"bio,omitempty"`
	PictureURL   string         `json:"pictureUrl,omitempty"`
	IsPrivate    bool           `gorm:"not null;default:false" json:"isPrivate"`
	AccountID    string         `gorm:"not null;index;type:varchar(36)" json:"-"`
	BlockedUntil *time.Time     `json:"blockedUntil,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Version      uint           `gorm:"not null;default:0" json:"-"`

	Posts    []Post    `gorm:"foreignKey:ProfileID" json:"-"`
	Comments []Comment `gorm:"foreignKey:ProfileID" json:"-"`
}

// IsBlocked reports whether an administrative block is still in effect at now.
func (p *Profile) IsBlocked(now time.Time) bool {
	return p.BlockedUntil != nil && p.BlockedUntil.After(now)
}
