package router

import "github.com/gin-gonic/gin"

// Health answers liveness probes.
func Health(c *gin.Context) {
	// Probes should never get a cached answer
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
