package responses

import (
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/services"
)

// MatchAddressResponse response match một địa chỉ đơn lẻ
type MatchAddressResponse struct {
	models.MatchResult
	ProcessingTimeMs int64 `json:"processing_time_ms"`
	CacheHit         bool  `json:"cache_hit"`
}

// BatchMatchResponse response match hàng loạt, giữ thứ tự input
type BatchMatchResponse struct {
	Results          []*models.MatchResult `json:"results"`
	Total            int                   `json:"total"`
	ProcessingTimeMs int64                 `json:"processing_time_ms"`
}

// HealthCheckResponse response kiểm tra sức khỏe
type HealthCheckResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
	IndexSize int    `json:"index_size"`
}

// StatsResponse response thống kê admin
type StatsResponse struct {
	Cache         *services.CacheStats `json:"cache"`
	IndexSize     int                  `json:"index_size"`
	UptimeSeconds int64                `json:"uptime_seconds"`
}

// CacheActionResponse response thao tác lên cache
type CacheActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse response lỗi
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
