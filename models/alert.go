package models

import (
	"time"

	"gorm.io/gorm"
)

// Alert is a moderation report against exactly one of a post or a comment.
// The schema cannot express the exclusivity, so both references are nullable
// here and the alert service is the only code path allowed to set them.
type Alert struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedByID uint           `gorm:"not null" json:"createdById"`
	CreatedBy   Profile        `gorm:"foreignKey:CreatedByID" json:"-"`
	PostID      *uint          `json:"postId,omitempty"`
	Post        *Post          `gorm:"foreignKey:PostID" json:"-"`
	CommentID   *uint          `json:"commentId,omitempty"`
	Comment     *Comment       `gorm:"foreignKey:CommentID" json:"-"`
	Reason      string         `gorm:"not null;type:varchar(2000)" json:"reason"`
	ClosedAt    *time.Time     `json:"closedAt,omitempty"`
	ManagedByID *uint          `json:"managedById,omitempty"`
	ManagedBy   *Profile       `gorm:"foreignKey:ManagedByID" json:"-"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Version     uint           `gorm:"not null;default:0" json:"-"`
}
