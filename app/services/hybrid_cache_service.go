package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// HybridCacheService kết hợp L1 in-memory LRU và L2 Redis.
// L2 errors degrade to L1-only behavior instead of failing the request.
type HybridCacheService struct {
	l1     ICacheService
	l2     ICacheService
	logger *zap.Logger
}

// NewHybridCacheService tạo mới hybrid cache service
func NewHybridCacheService(l1, l2 ICacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{l1: l1, l2: l2, logger: logger}
}

// Get tìm trong L1 trước, miss thì xuống L2 và promote kết quả lên L1
func (s *HybridCacheService) Get(ctx context.Context, key string) (*models.MatchResult, bool, error) {
	if result, found, err := s.l1.Get(ctx, key); err == nil && found {
		return result, true, nil
	}

	result, found, err := s.l2.Get(ctx, key)
	if err != nil {
		s.logger.Warn("L2 cache get failed", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}
	if err := s.l1.Set(ctx, key, result); err != nil {
		s.logger.Warn("L1 promote failed", zap.Error(err))
	}
	return result, true, nil
}

// Set ghi vào cả hai tầng
func (s *HybridCacheService) Set(ctx context.Context, key string, result *models.MatchResult) error {
	if err := s.l1.Set(ctx, key, result); err != nil {
		return err
	}
	if err := s.l2.Set(ctx, key, result); err != nil {
		s.logger.Warn("L2 cache set failed", zap.Error(err))
	}
	return nil
}

// Delete xóa khỏi cả hai tầng
func (s *HybridCacheService) Delete(ctx context.Context, key string) error {
	if err := s.l1.Delete(ctx, key); err != nil {
		return err
	}
	if err := s.l2.Delete(ctx, key); err != nil {
		s.logger.Warn("L2 cache delete failed", zap.Error(err))
	}
	return nil
}

// Clear xóa cả hai tầng
func (s *HybridCacheService) Clear(ctx context.Context) error {
	if err := s.l1.Clear(ctx); err != nil {
		return err
	}
	if err := s.l2.Clear(ctx); err != nil {
		s.logger.Warn("L2 cache clear failed", zap.Error(err))
	}
	return nil
}

// GetStats gộp thống kê: hit/miss từ L1 (tầng trả lời trước), tổng items
// là lớn hơn của hai tầng.
func (s *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	l1Stats, err := s.l1.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	l2Stats, err := s.l2.GetStats(ctx)
	if err != nil {
		s.logger.Warn("L2 cache stats failed", zap.Error(err))
		return l1Stats, nil
	}
	stats := *l1Stats
	if l2Stats.TotalItems > stats.TotalItems {
		stats.TotalItems = l2Stats.TotalItems
	}
	return &stats, nil
}

// Close đóng cả hai tầng
func (s *HybridCacheService) Close() error {
	err := s.l1.Close()
	if l2Err := s.l2.Close(); l2Err != nil && err == nil {
		err = l2Err
	}
	return err
}
