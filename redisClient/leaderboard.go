package redisClient

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Leaderboard はイベントごとのベッター得点を sorted set で持つ
type Leaderboard struct {
	rdb *redis.Client
}

func NewLeaderboard(rdb *redis.Client) *Leaderboard {
	return &Leaderboard{rdb: rdb}
}

func LeaderboardKey(eventID uint) string {
	return "event-" + fmt.Sprint(eventID) + "-bettor-scores"
}

// Replace rewrites the whole board for an event in one MULTI so readers never
// see a half-settled ranking.
func (l *Leaderboard) Replace(ctx context.Context, eventID uint, scores map[string]decimal.Decimal) error {
	key := LeaderboardKey(eventID)
	members := make([]redis.Z, 0, len(scores))
	for bettor, score := range scores {
		members = append(members, redis.Z{
			Score:  score.InexactFloat64(),
			Member: bettor,
		})
	}

	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(members) > 0 {
			pipe.ZAdd(ctx, key, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace leaderboard %s: %w", key, err)
	}
	return nil
}

func (l *Leaderboard) Top(ctx context.Context, eventID uint, offset, limit int) ([]redis.Z, error) {
	if limit <= 0 || offset < 0 {
		return []redis.Z{}, nil
	}
	stop := int64(offset + limit - 1)
	return l.rdb.ZRevRangeWithScores(ctx, LeaderboardKey(eventID), int64(offset), stop).Result()
}
