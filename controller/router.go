package controller

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the health check, the AI endpoints and the vendor API.
func RegisterRoutes(router *gin.Engine, ai *AIController, vendors *VendorController) {
	// Wrong methods on known paths get a JSON 405 instead of a 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(MethodNotAllowed)

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Vendor Book API",
			"version": "1.0.0",
		})
	})

	api := router.Group("/api")
	{
		api.POST("/extract", ai.Extract)
		api.POST("/extract/file", ai.ExtractFile)
		api.POST("/chat", ai.Chat)

		api.GET("/categories", vendors.CategoryCounts)
		api.GET("/vendors", vendors.ListVendors)
		api.POST("/vendors", vendors.CreateVendor)
		api.GET("/vendors/:id", vendors.GetVendor)
		api.PUT("/vendors/:id", vendors.UpdateVendor)
		api.DELETE("/vendors/:id", vendors.DeleteVendor)
	}
}
