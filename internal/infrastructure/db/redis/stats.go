package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

const statsTTL = 5 * time.Minute

// StatsCache stores denormalized board counters in Redis. It holds derived
// numbers only; relationship snapshots for policy decisions are always read
// fresh from the primary store.
// Key format: board:<board_id>:stats
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats for a board, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, boardID string) (*domain.BoardStats, error) {
	raw, err := c.client.Get(ctx, c.key(boardID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.BoardStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the stats for a board (expires after statsTTL).
func (c *StatsCache) Set(ctx context.Context, boardID string, stats domain.BoardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(boardID), raw, statsTTL).Err()
}

func (c *StatsCache) key(boardID string) string {
	return fmt.Sprintf("board:%s:stats", boardID)
}
