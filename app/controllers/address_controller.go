package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/requests"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/responses"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/services"
)

// ServiceVersion phiên bản service trả về trong health check
const ServiceVersion = "1.0.0"

// AddressController controller xử lý các request matching địa chỉ
type AddressController struct {
	addressService *services.AddressService
	cacheService   services.ICacheService
	logger         *zap.Logger
}

// NewAddressController tạo mới AddressController
func NewAddressController(addressService *services.AddressService, cacheService services.ICacheService, logger *zap.Logger) *AddressController {
	return &AddressController{
		addressService: addressService,
		cacheService:   cacheService,
		logger:         logger,
	}
}

// MatchAddress match một địa chỉ đơn lẻ với golden source
func (ac *AddressController) MatchAddress(c *gin.Context) {
	var req requests.MatchAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "invalid request body: " + err.Error(),
			RequestID: c.GetString(RequestIDKey),
		})
		return
	}

	start := time.Now()
	cacheKey := strings.TrimSpace(req.Address)

	if req.Options.Cached() && cacheKey != "" {
		if cached, found, err := ac.cacheService.Get(c.Request.Context(), cacheKey); err == nil && found {
			c.JSON(http.StatusOK, responses.MatchAddressResponse{
				MatchResult:      *cached,
				ProcessingTimeMs: time.Since(start).Milliseconds(),
				CacheHit:         true,
			})
			return
		}
	}

	result := ac.addressService.MatchAddress(req.Address)

	if req.Options.Cached() && cacheKey != "" {
		if err := ac.cacheService.Set(c.Request.Context(), cacheKey, result); err != nil {
			ac.logger.Warn("cache set failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, responses.MatchAddressResponse{
		MatchResult:      *result,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		CacheHit:         false,
	})
}

// BatchMatch match hàng loạt địa chỉ đồng bộ, giữ thứ tự input
func (ac *AddressController) BatchMatch(c *gin.Context) {
	var req requests.BatchMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "invalid request body: " + err.Error(),
			RequestID: c.GetString(RequestIDKey),
		})
		return
	}

	start := time.Now()
	results := ac.addressService.MatchBatch(req.Addresses)

	c.JSON(http.StatusOK, responses.BatchMatchResponse{
		Results:          results,
		Total:            len(results),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// HealthCheck kiểm tra sức khỏe service
func (ac *AddressController) HealthCheck(c *gin.Context) {
	uptime := time.Since(ac.addressService.GetStartTime())
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   ServiceVersion,
		IndexSize: ac.addressService.IndexSize(),
	})
}
