package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey context key chứa request ID
const RequestIDKey = "request_id"

// RequestID middleware gán X-Request-ID cho mỗi request, tự sinh khi
// client không gửi kèm.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
