// Package models contain needed models
package models

import (
	"image"
	"image/png"
	"mime/multipart"
)

// EncodeRequest represents the multipart form for hiding a message in an image
type EncodeRequest struct {
	Image    *multipart.FileHeader `form:"image" binding:"required"`
	Message  string                `form:"message" binding:"required"`
	Password string                `form:"password" binding:"required"`
}

// ExtractRequest represents the multipart form for reading a message back
type ExtractRequest struct {
	Image    *multipart.FileHeader `form:"image" binding:"required"`
	Password string                `form:"password" binding:"required"`
}

// CapacityRequest represents the multipart form for a capacity query.
// Password is optional and only used to size the container overhead.
type CapacityRequest struct {
	Image    *multipart.FileHeader `form:"image" binding:"required"`
	Password string                `form:"password"`
}

// StegoResponse represents a generic API answer
type StegoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExtractResponse represents the response after extraction
type ExtractResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	SecretMessage string `json:"secret_message"`
}

// CapacityResponse describes how much an image can hold
type CapacityResponse struct {
	Success         bool   `json:"success"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Format          string `json:"format"`
	CapacityBits    int    `json:"capacity_bits"`
	MaxMessageBytes int    `json:"max_message_bytes"`
	Human           string `json:"human"`
}

// ImageMetadata represents metadata about a decoded image
type ImageMetadata struct {
	Width    int
	Height   int
	Format   string
	Pixels   int
	Channels int
}

// StegoConfig represents configuration for steganography operations
type StegoConfig struct {
	Password         string
	CompressionLevel png.CompressionLevel
}

// EmbedResult is the outcome of hiding a message in an image
type EmbedResult struct {
	Image *image.NRGBA
	PNG   []byte
	PSNR  float64
}
