package services

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// LRUCacheService cache service in-memory dùng LRU, không TTL.
// Entries never go stale because the index is immutable for the process
// lifetime; eviction is purely size-based.
type LRUCacheService struct {
	cache  *lru.Cache[string, *models.MatchResult]
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewLRUCacheService tạo mới LRU cache service
func NewLRUCacheService(size int, logger *zap.Logger) (*LRUCacheService, error) {
	cache, err := lru.New[string, *models.MatchResult](size)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	return &LRUCacheService{cache: cache, logger: logger}, nil
}

// Get lấy kết quả match từ cache
func (s *LRUCacheService) Get(_ context.Context, key string) (*models.MatchResult, bool, error) {
	if result, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return result, true, nil
	}
	s.misses.Add(1)
	return nil, false, nil
}

// Set lưu kết quả match vào cache
func (s *LRUCacheService) Set(_ context.Context, key string, result *models.MatchResult) error {
	s.cache.Add(key, result)
	return nil
}

// Delete xóa một key khỏi cache
func (s *LRUCacheService) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

// Clear xóa toàn bộ cache
func (s *LRUCacheService) Clear(_ context.Context) error {
	s.cache.Purge()
	s.logger.Info("LRU cache cleared")
	return nil
}

// GetStats lấy thống kê cache
func (s *LRUCacheService) GetStats(_ context.Context) (*CacheStats, error) {
	hits, misses := s.hits.Load(), s.misses.Load()
	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(s.cache.Len()),
	}, nil
}

// Close no-op cho in-memory cache
func (s *LRUCacheService) Close() error { return nil }
