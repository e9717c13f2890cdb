package services

import (
	"context"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// NoopCacheService cache service rỗng, dùng khi cache bị tắt qua config
type NoopCacheService struct{}

// NewNoopCacheService tạo mới noop cache service
func NewNoopCacheService() NoopCacheService { return NoopCacheService{} }

// Get luôn miss
func (NoopCacheService) Get(context.Context, string) (*models.MatchResult, bool, error) {
	return nil, false, nil
}

// Set no-op
func (NoopCacheService) Set(context.Context, string, *models.MatchResult) error { return nil }

// Delete no-op
func (NoopCacheService) Delete(context.Context, string) error { return nil }

// Clear no-op
func (NoopCacheService) Clear(context.Context) error { return nil }

// GetStats trả về thống kê rỗng
func (NoopCacheService) GetStats(context.Context) (*CacheStats, error) { return &CacheStats{}, nil }

// Close no-op
func (NoopCacheService) Close() error { return nil }
