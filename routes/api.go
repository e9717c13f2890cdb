package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/controllers"
)

// SetupAPIRoutes thiết lập các API routes dưới /v1
func SetupAPIRoutes(router *gin.Engine, addressController *controllers.AddressController, adminController *controllers.AdminController) {
	v1 := router.Group("/v1")
	{
		addresses := v1.Group("/addresses")
		{
			addresses.POST("/match", addressController.MatchAddress)
			addresses.POST("/match/batch", addressController.BatchMatch)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/stats", adminController.GetStats)
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
		}

		v1.GET("/health", addressController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes ở root
func SetupHealthRoutes(router *gin.Engine, addressController *controllers.AddressController) {
	router.GET("/health", addressController.HealthCheck)
	router.GET("/ready", addressController.HealthCheck)
	router.GET("/live", addressController.HealthCheck)
}
