package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSummaryCache 以 JSON 形式在 redis 中缓存仪表盘统计
type RedisSummaryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{Client: client, TTL: ttl}
}

func dashboardKey(userID uint) string {
	return fmt.Sprintf("dashboard:summary:%d", userID)
}

func (c *RedisSummaryCache) Get(ctx context.Context, userID uint) (*DashboardSummary, error) {
	data, err := c.Client.Get(ctx, dashboardKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary DashboardSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, userID uint, summary DashboardSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, dashboardKey(userID), data, c.TTL).Err()
}

func (c *RedisSummaryCache) Invalidate(ctx context.Context, userID uint) error {
	return c.Client.Del(ctx, dashboardKey(userID)).Err()
}
