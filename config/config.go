// Package config reads server settings from the environment
package config

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"image-steganography/imaging"
)

type Config struct {
	Port             string
	AllowedOrigins   []string
	MaxUploadBytes   int64
	MaxImagePixels   int
	CompressionLevel png.CompressionLevel
}

// Load builds a Config from PORT, ALLOWED_ORIGINS, MAX_UPLOAD_MB,
// MAX_IMAGE_PIXELS and PNG_COMPRESSION. Unset variables take defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("invalid ALLOWED_ORIGINS %q: no origins listed", os.Getenv("ALLOWED_ORIGINS"))
	}

	uploadMB, err := strconv.Atoi(getenv("MAX_UPLOAD_MB", "32"))
	if err != nil || uploadMB <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB %q", os.Getenv("MAX_UPLOAD_MB"))
	}
	cfg.MaxUploadBytes = int64(uploadMB) << 20

	cfg.MaxImagePixels, err = strconv.Atoi(getenv("MAX_IMAGE_PIXELS", strconv.Itoa(imaging.DefaultMaxPixels)))
	if err != nil || cfg.MaxImagePixels < 0 {
		return nil, fmt.Errorf("invalid MAX_IMAGE_PIXELS %q", os.Getenv("MAX_IMAGE_PIXELS"))
	}

	cfg.CompressionLevel, err = imaging.ParseCompression(os.Getenv("PNG_COMPRESSION"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
