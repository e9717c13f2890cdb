package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/controllers"
)

// SetupWebRoutes thiết lập các trang thông tin ở root
func SetupWebRoutes(router *gin.Engine, addressController *controllers.AddressController) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Golden Source Address Matcher",
			"version": controllers.ServiceVersion,
			"endpoints": map[string]string{
				"match":            "POST /v1/addresses/match",
				"batch":            "POST /v1/addresses/match/batch",
				"health":           "GET /health",
				"stats":            "GET /v1/admin/stats",
				"cache_invalidate": "POST /v1/admin/cache/invalidate",
			},
		})
	})

	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "running",
			"service":   "Golden Source Address Matcher",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}
