package services

import (
	"context"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// CacheStats thống kê cache
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService interface cho result cache, key là địa chỉ input đã trim.
//
// Caching is transparent: the matcher is a pure function of its input and
// the immutable index, so a cached result and a recomputed one are
// identical by construction.
type ICacheService interface {
	// Get lấy kết quả match từ cache
	Get(ctx context.Context, key string) (*models.MatchResult, bool, error)

	// Set lưu kết quả match vào cache
	Set(ctx context.Context, key string, result *models.MatchResult) error

	// Delete xóa một key khỏi cache
	Delete(ctx context.Context, key string) error

	// Clear xóa toàn bộ cache
	Clear(ctx context.Context) error

	// GetStats lấy thống kê cache
	GetStats(ctx context.Context) (*CacheStats, error)

	// Close đóng kết nối (nếu có)
	Close() error
}
