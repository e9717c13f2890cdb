package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// RedisCacheService cache service dùng Redis, value là JSON của MatchResult
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCacheService tạo mới Redis cache service và test connection
func NewRedisCacheService(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect to Redis: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "golden_match:",
		ttl:    ttl,
	}, nil
}

// Get lấy kết quả match từ cache
func (s *RedisCacheService) Get(ctx context.Context, key string) (*models.MatchResult, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		s.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error("redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		s.logger.Error("unmarshal cached result failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}
	s.hits.Add(1)
	return &result, true, nil
}

// Set lưu kết quả match vào cache với TTL
func (s *RedisCacheService) Set(ctx context.Context, key string, result *models.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal match result: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		s.logger.Error("redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

// Delete xóa một key khỏi cache
func (s *RedisCacheService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Clear xóa toàn bộ keys thuộc prefix của service
func (s *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := s.client.Keys(ctx, s.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete cache keys: %w", err)
		}
	}
	s.logger.Info("redis cache cleared", zap.Int("keys_deleted", len(keys)))
	return nil
}

// GetStats lấy thống kê cache
func (s *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits, misses := s.hits.Load(), s.misses.Load()
	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	totalItems := int64(0)
	if keys, err := s.client.Keys(ctx, s.prefix+"*").Result(); err == nil {
		totalItems = int64(len(keys))
	}
	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: totalItems,
	}, nil
}

// Close đóng kết nối Redis
func (s *RedisCacheService) Close() error { return s.client.Close() }
