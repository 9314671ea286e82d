package models

import "time"

const (
	FollowStatusPending  = "PENDING"
	FollowStatusAccepted = "ACCEPTED"
	FollowStatusRejected = "REJECTED"
)

// Follow is a directed edge keyed by the ordered (follower, followed) pair.
// The row is created on the first follow attempt and reused for every later
// transition; it is never physically deleted. "Stop following" and "reject
// request" are both represented by the REJECTED status.
type Follow struct {
	FollowerID   uint       `gorm:"primaryKey;autoIncrement:false" json:"followerId"`
	FollowedID   uint       `gorm:"primaryKey;autoIncrement:false" json:"followedId"`
	Status       string     `gorm:"not null;type:varchar(10);default:'PENDING'" json:"status"`
	FollowedAt   *time.Time `json:"followedAt,omitempty"`
	UnfollowedAt *time.Time `json:"unfollowedAt,omitempty"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
	Version      uint       `gorm:"not null;default:0" json:"-"`

	Follower Profile `gorm:"foreignKey:FollowerID" json:"-"`
	Followed Profile `gorm:"foreignKey:FollowedID" json:"-"`
}
