package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FollowCounts caches accepted follower/following counts per profile. The
// database stays authoritative: reads fall back to it on a miss and writes
// invalidate instead of updating, so a stale entry lives at most one TTL.
// A nil *FollowCounts is valid and behaves as an always-miss cache.
type FollowCounts struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFollowCounts(rdb *redis.Client, ttl time.Duration) *FollowCounts {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &FollowCounts{rdb: rdb, ttl: ttl}
}

func followersKey(profileID uint) string {
	return fmt.Sprintf("profile:%d:followers", profileID)
}

func followingKey(profileID uint) string {
	return fmt.Sprintf("profile:%d:following", profileID)
}

func (c *FollowCounts) Get(ctx context.Context, profileID uint) (followers, following int64, ok bool) {
	if c == nil || c.rdb == nil {
		return 0, 0, false
	}
	vals, err := c.rdb.MGet(ctx, followersKey(profileID), followingKey(profileID)).Result()
	if err != nil || len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return 0, 0, false
	}
	if _, err := fmt.Sscan(vals[0].(string), &followers); err != nil {
		return 0, 0, false
	}
	if _, err := fmt.Sscan(vals[1].(string), &following); err != nil {
		return 0, 0, false
	}
	return followers, following, true
}

func (c *FollowCounts) Set(ctx context.Context, profileID uint, followers, following int64) {
	if c == nil || c.rdb == nil {
		return
	}
	pipe := c.rdb.Pipeline()
	pipe.Set(ctx, followersKey(profileID), followers, c.ttl)
	pipe.Set(ctx, followingKey(profileID), following, c.ttl)
	// Best-effort; a failed write just means a cache miss later.
	_, _ = pipe.Exec(ctx)
}

func (c *FollowCounts) Invalidate(ctx context.Context, profileIDs ...uint) {
	if c == nil || c.rdb == nil || len(profileIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(profileIDs)*2)
	for _, id := range profileIDs {
		keys = append(keys, followersKey(id), followingKey(id))
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
