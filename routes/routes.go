// Package routes wires every HTTP route of the golden-source address
// matching service onto a gin engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/controllers"
)

// SetupAllRoutes thiết lập toàn bộ routes và middleware
func SetupAllRoutes(router *gin.Engine, addressController *controllers.AddressController, adminController *controllers.AdminController) {
	router.Use(gin.Recovery())
	router.Use(controllers.RequestID())

	SetupWebRoutes(router, addressController)
	SetupHealthRoutes(router, addressController)
	SetupAPIRoutes(router, addressController, adminController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}
