package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sergiostefanizzi/profile-microservice-sub000/models"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
)

// StorySweeper periodically soft-deletes stories older than the retention
// window. A failed tick is only logged; the query is idempotent on "not yet
// deleted", so the next tick picks up whatever was missed.
type StorySweeper struct {
	posts     repositories.PostRepository
	interval  time.Duration
	retention time.Duration
	logger    zerolog.Logger
	now       func() time.Time
	quit      chan struct{}
	done      chan struct{}
}

func NewStorySweeper(posts repositories.PostRepository, interval time.Duration, logger zerolog.Logger) *StorySweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &StorySweeper{
		posts:     posts,
		interval:  interval,
		retention: models.StoryRetention,
		logger:    logger,
		now:       time.Now,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the sweep loop in a background goroutine.
func (s *StorySweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop signals the loop to exit and returns immediately; wait on Done.
func (s *StorySweeper) Stop() {
	close(s.quit)
}

func (s *StorySweeper) Done() <-chan struct{} {
	return s.done
}

func (s *StorySweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *StorySweeper) sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.retention)
	expired, err := s.posts.SoftDeleteStoriesBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error().Err(err).Msg("story sweep failed")
		return
	}
	if expired > 0 {
		s.logger.Info().Int64("expired", expired).Msg("stories soft-deleted by retention sweep")
	}
}
