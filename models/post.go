package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PostTypePost  = "POST"
	PostTypeStory = "STORY"
)

// StoryRetention is how long a STORY stays visible before the retention
// sweep soft-deletes it.
const StoryRetention = 24 * time.Hour

type Post struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID  uint           `gorm:"not null;index" json:"profileId"`
	Profile    Profile        `gorm:"foreignKey:ProfileID" json:"-"`
	ContentURL string         `gorm:"not null" json:"contentUrl"`
	Caption    string         `gorm:"type:varchar(2200)" json:"caption,omitempty"`
	PostType   string         `gorm:"not null;type:varchar(10);default:'POST'" json:"postType"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Version    uint           `gorm:"not null;default:0" json:"-"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"-"`
}
