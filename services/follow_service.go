package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sergiostefanizzi/profile-microservice-sub000/apperrors"
	"github.com/sergiostefanizzi/profile-microservice-sub000/cache"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
)

// FollowService owns the follow relationship lifecycle. A pair row is created
// on the first follow attempt and its status rewritten in place from then on;
// no row is ever physically deleted.
type FollowService struct {
	profiles repositories.ProfileRepository
	follows  repositories.FollowRepository
	counts   *cache.FollowCounts
	logger   zerolog.Logger
	now      func() time.Time
}

func NewFollowService(profiles repositories.ProfileRepository, follows repositories.FollowRepository, counts *cache.FollowCounts, logger zerolog.Logger) *FollowService {
	return &FollowService{
		profiles: profiles,
		follows:  follows,
		counts:   counts,
		logger:   logger,
		now:      time.Now,
	}
}

type FollowResult struct {
	FollowerID uint   `json:"followerId"`
	FollowedID uint   `json:"followedId"`
	Status     string `json:"status"`
}

// SetFollowState applies a follow or unfollow intent from followerID toward
// followedID and returns the resulting status.
//
// A first-ever follow lands on ACCEPTED for a public target and PENDING for a
// private one. Unfollowing a pair that never existed fails. On an existing
// row, unfollow always moves to REJECTED; a follow intent re-enters the
// privacy decision, so a previously rejected pair goes back to PENDING when
// the target is private. Re-applying the current intent is a no-op status-wise.
func (s *FollowService) SetFollowState(ctx context.Context, followerID, followedID uint, unfollow bool) (*FollowResult, error) {
	if followerID == followedID {
		return nil, apperrors.ErrFollowItself
	}
	followed, err := s.profiles.FindByID(ctx, followedID)
	if err != nil {
		return nil, err
	}
	if _, err := s.profiles.FindByID(ctx, followerID); err != nil {
		return nil, err
	}

	follow, err := s.follows.Find(ctx, followerID, followedID)
	var notFound *apperrors.NotFoundError
	switch {
	case errors.As(err, &notFound):
		if unfollow {
			return nil, apperrors.ErrUnfollowOnCreation
		}
		follow = &models.Follow{FollowerID: followerID, FollowedID: followedID}
		s.applyFollowIntent(follow, followed.IsPrivate)
	case err != nil:
		return nil, err
	default:
		if unfollow {
			follow.Status = models.FollowStatusRejected
			now := s.now()
			follow.UnfollowedAt = &now
		} else {
			s.applyFollowIntent(follow, followed.IsPrivate)
		}
	}

	if err := s.follows.Save(ctx, follow); err != nil {
		return nil, err
	}
	s.counts.Invalidate(ctx, followerID, followedID)
	s.logger.Info().
		Uint("follower_id", followerID).
		Uint("followed_id", followedID).
		Str("status", follow.Status).
		Msg("follow state updated")

	return &FollowResult{FollowerID: followerID, FollowedID: followedID, Status: follow.Status}, nil
}

// applyFollowIntent decides the status of a follow attempt. Only the target
// profile can move a private-pair to ACCEPTED (via AcceptOrReject), so an
// already-accepted edge stays accepted and everything else on a private
// target lands on PENDING.
func (s *FollowService) applyFollowIntent(follow *models.Follow, targetPrivate bool) {
	if targetPrivate && follow.Status != models.FollowStatusAccepted {
		follow.Status = models.FollowStatusPending
		return
	}
	if follow.Status != models.FollowStatusAccepted {
		now := s.now()
		follow.FollowedAt = &now
	}
	follow.Status = models.FollowStatusAccepted
}

// AcceptOrReject is the target profile's response to a follow request.
// Repeating a decision is idempotent; the acceptance timestamp is stamped
// only on the transition into ACCEPTED.
func (s *FollowService) AcceptOrReject(ctx context.Context, followedID, followerID uint, reject bool) (*FollowResult, error) {
	follow, err := s.follows.Find(ctx, followerID, followedID)
	if err != nil {
		return nil, err
	}

	if reject {
		follow.Status = models.FollowStatusRejected
		now := s.now()
		follow.UnfollowedAt = &now
	} else {
		if follow.Status != models.FollowStatusAccepted {
			now := s.now()
			follow.FollowedAt = &now
		}
		follow.Status = models.FollowStatusAccepted
	}

	if err := s.follows.Save(ctx, follow); err != nil {
		return nil, err
	}
	s.counts.Invalidate(ctx, followerID, followedID)

	return &FollowResult{FollowerID: followerID, FollowedID: followedID, Status: follow.Status}, nil
}

// Counts returns accepted follower/following counts, preferring the cache.
func (s *FollowService) Counts(ctx context.Context, profileID uint) (followers, following int64, err error) {
	if f, g, ok := s.counts.Get(ctx, profileID); ok {
		return f, g, nil
	}
	followers, following, err = s.follows.CountAccepted(ctx, profileID)
	if err != nil {
		return 0, 0, err
	}
	s.counts.Set(ctx, profileID, followers, following)
	return followers, following, nil
}

func (s *FollowService) ListFollowing(ctx context.Context, profileID uint) ([]models.Follow, error) {
	if _, err := s.profiles.FindByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.follows.ListFollowing(ctx, profileID)
}

func (s *FollowService) ListFollowers(ctx context.Context, profileID uint) ([]models.Follow, error) {
	if _, err := s.profiles.FindByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.follows.ListFollowers(ctx, profileID)
}
