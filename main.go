package main

import (
	"log"

	"image-steganography/config"
	"image-steganography/handlers"

	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"X-Stego-PSNR", "X-Stego-Capacity", "X-Stego-Method", "X-Stego-Message", "Content-Disposition"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	stegoHandler := handlers.NewStegoHandler(cfg)
	handlers.RegisterRoutes(router, stegoHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/stego/encode   - Hide a password-protected message in an image (returns encoded.png)")
	log.Printf("  POST /api/v1/stego/extract  - Recover the message from an encoded image")
	log.Printf("  POST /api/v1/stego/capacity - Report how much an image can hold")
	log.Printf("  GET  /api/v1/health         - Health check")
	log.Printf("")
	log.Printf("Limits:")
	log.Printf("  • Upload size: %s", humanize.IBytes(uint64(cfg.MaxUploadBytes)))
	if cfg.MaxImagePixels > 0 {
		log.Printf("  • Image size: %s pixels", humanize.Comma(int64(cfg.MaxImagePixels)))
	} else {
		log.Printf("  • Image size: unbounded")
	}
	log.Printf("")
	log.Printf("Note: the password is stored in clear inside the hidden payload; it is not encryption")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
