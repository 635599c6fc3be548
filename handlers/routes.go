package handlers

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.Engine, h *StegoHandler) {
	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)

		stego := api.Group("/stego", h.limitUpload)
		{
			stego.POST("/encode", h.EncodeMessage)
			stego.POST("/extract", h.ExtractMessage)
			stego.POST("/capacity", h.Capacity)
		}
	}
}
