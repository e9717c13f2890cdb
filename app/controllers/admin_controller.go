package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/responses"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/services"
)

// AdminController controller cho các thao tác vận hành (stats, cache)
type AdminController struct {
	addressService *services.AddressService
	cacheService   services.ICacheService
	logger         *zap.Logger
}

// NewAdminController tạo mới AdminController
func NewAdminController(addressService *services.AddressService, cacheService services.ICacheService, logger *zap.Logger) *AdminController {
	return &AdminController{
		addressService: addressService,
		cacheService:   cacheService,
		logger:         logger,
	}
}

// GetStats thống kê cache + index
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.cacheService.GetStats(c.Request.Context())
	if err != nil {
		ac.logger.Error("cache stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "STATS_ERROR",
			Message:   "cannot read cache stats: " + err.Error(),
			RequestID: c.GetString(RequestIDKey),
		})
		return
	}

	c.JSON(http.StatusOK, responses.StatsResponse{
		Cache:         stats,
		IndexSize:     ac.addressService.IndexSize(),
		UptimeSeconds: int64(time.Since(ac.addressService.GetStartTime()).Seconds()),
	})
}

// InvalidateCache xóa toàn bộ result cache
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	if err := ac.cacheService.Clear(c.Request.Context()); err != nil {
		ac.logger.Error("cache invalidate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "CACHE_ERROR",
			Message:   "cannot clear cache: " + err.Error(),
			RequestID: c.GetString(RequestIDKey),
		})
		return
	}

	ac.logger.Info("result cache invalidated")
	c.JSON(http.StatusOK, responses.CacheActionResponse{
		Success: true,
		Message: "cache cleared",
	})
}
