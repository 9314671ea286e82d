package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
)

// AlertTarget is the tagged target of a moderation alert: exactly one of a
// post or a comment. The zero value is invalid, which keeps the both/neither
// state out of every code path past validation.
type AlertTarget struct {
	isPost bool
	id     uint
}

func PostTarget(id uint) AlertTarget {
	return AlertTarget{isPost: true, id: id}
}

func CommentTarget(id uint) AlertTarget {
	return AlertTarget{isPost: false, id: id}
}

// NewAlertTarget builds a target from the wire shape: an isPost flag plus two
// optional ids. The ids must be consistent with the flag, exactly one set.
func NewAlertTarget(isPost bool, postID, commentID *uint) (AlertTarget, error) {
	if isPost {
		if postID == nil || commentID != nil {
			return AlertTarget{}, apperrors.ErrAlertType
		}
		return PostTarget(*postID), nil
	}
	if commentID == nil || postID != nil {
		return AlertTarget{}, apperrors.ErrAlertType
	}
	return CommentTarget(*commentID), nil
}

// AlertService records and manages moderation alerts. It is the sole guardian
// of the post-xor-comment invariant on the alert row.
type AlertService struct {
	profiles repositories.ProfileRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	alerts   repositories.AlertRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAlertService(profiles repositories.ProfileRepository, posts repositories.PostRepository, comments repositories.CommentRepository, alerts repositories.AlertRepository, logger zerolog.Logger) *AlertService {
	return &AlertService{
		profiles: profiles,
		posts:    posts,
		comments: comments,
		alerts:   alerts,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates the reporter and the target against active rows, then
// persists the alert. Target validation happens before any storage access.
func (s *AlertService) Create(ctx context.Context, reporterID uint, target AlertTarget, reason string) (*models.Alert, error) {
	if _, err := s.profiles.FindByID(ctx, reporterID); err != nil {
		return nil, err
	}

	alert := &models.Alert{
		CreatedByID: reporterID,
		Reason:      reason,
		CreatedAt:   s.now(),
	}
	if target.isPost {
		post, err := s.posts.FindByID(ctx, target.id)
		if err != nil {
			return nil, err
		}
		alert.PostID = &post.ID
	} else {
		comment, err := s.comments.FindByID(ctx, target.id)
		if err != nil {
			return nil, err
		}
		alert.CommentID = &comment.ID
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	s.logger.Info().
		Uint("alert_id", alert.ID).
		Uint("reporter_id", reporterID).
		Bool("is_post", target.isPost).
		Msg("moderation alert created")
	return alert, nil
}

func (s *AlertService) List(ctx context.Context, closed *bool) ([]models.Alert, error) {
	return s.alerts.List(ctx, closed)
}

// Manage assigns an alert to an admin profile and optionally closes it.
// Closing an already-closed alert fails; the close timestamp is final.
func (s *AlertService) Manage(ctx context.Context, alertID uint, managedByID *uint, close bool) (*models.Alert, error) {
	alert, err := s.alerts.FindByID(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if close && alert.ClosedAt != nil {
		return nil, apperrors.ErrAlertStatusInvalid
	}
	if managedByID != nil {
		if _, err := s.profiles.FindByID(ctx, *managedByID); err != nil {
			return nil, err
		}
		alert.ManagedByID = managedByID
	}
	if close {
		now := s.now()
		alert.ClosedAt = &now
	}
	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}
