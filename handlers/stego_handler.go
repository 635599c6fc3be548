// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"unicode/utf8"

	"image-steganography/config"
	"image-steganography/container"
	"image-steganography/imaging"
	"image-steganography/models"
	"image-steganography/stego"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

const outputFilename = "encoded.png"

type StegoHandler struct {
	imageDecoder   *imaging.ImageDecoder
	compression    png.CompressionLevel
	maxUploadBytes int64
}

func NewStegoHandler(cfg *config.Config) *StegoHandler {
	return &StegoHandler{
		imageDecoder:   imaging.NewImageDecoder(cfg.MaxImagePixels),
		compression:    cfg.CompressionLevel,
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}

func (h *StegoHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Image steganography API is running",
		"version": "1.0.0",
	})
}

func (h *StegoHandler) EncodeMessage(c *gin.Context) {
	var req models.EncodeRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, "Please upload an image, enter a message, and set a password", err)
		return
	}

	if !utf8.ValidString(req.Message) || !utf8.ValidString(req.Password) {
		c.JSON(http.StatusBadRequest, models.StegoResponse{
			Success: false,
			Message: "Message and password must be valid UTF-8",
		})
		return
	}

	coverImg, _, err := h.openImage(req.Image)
	if err != nil {
		respondError(c, err)
		return
	}

	stegoConfig := &models.StegoConfig{
		Password:         req.Password,
		CompressionLevel: h.compression,
	}

	result, err := stego.NewImageLSB(stegoConfig).EmbedMessage(coverImg, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	// Set headers for file download
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputFilename))
	c.Header("Content-Length", strconv.Itoa(len(result.PNG)))

	// Include metadata about the steganography operation
	c.Header("X-Stego-Method", "Image RGB LSB")
	c.Header("X-Stego-Message", "Message encoded successfully!")
	c.Header("X-Stego-Capacity", strconv.Itoa(stego.Capacity(coverImg.Bounds())))
	c.Header("X-Stego-PSNR", strconv.FormatFloat(result.PSNR, 'f', 2, 64))

	c.Data(http.StatusOK, "image/png", result.PNG)
}

func (h *StegoHandler) ExtractMessage(c *gin.Context) {
	var req models.ExtractRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, "Please upload an encoded image and enter the password", err)
		return
	}

	stegoImg, _, err := h.openImage(req.Image)
	if err != nil {
		respondError(c, err)
		return
	}

	stegoConfig := &models.StegoConfig{Password: req.Password}
	message, err := stego.NewImageLSB(stegoConfig).ExtractMessage(stegoImg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ExtractResponse{
		Success:       true,
		Message:       "Message decoded successfully!",
		SecretMessage: message,
	})
}

func (h *StegoHandler) Capacity(c *gin.Context) {
	var req models.CapacityRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, "Please upload an image", err)
		return
	}

	coverImg, metadata, err := h.openImage(req.Image)
	if err != nil {
		respondError(c, err)
		return
	}

	maxMessage, err := stego.NewImageLSB(&models.StegoConfig{Password: req.Password}).CalculateCapacity(coverImg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CapacityResponse{
		Success:         true,
		Width:           metadata.Width,
		Height:          metadata.Height,
		Format:          metadata.Format,
		CapacityBits:    stego.Capacity(coverImg.Bounds()),
		MaxMessageBytes: maxMessage,
		Human:           humanize.Bytes(uint64(maxMessage)),
	})
}

// limitUpload caps the request body before multipart parsing reads it.
func (h *StegoHandler) limitUpload(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	c.Next()
}

func (h *StegoHandler) openImage(fh *multipart.FileHeader) (image.Image, *models.ImageMetadata, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer f.Close()
	return h.imageDecoder.DecodeReader(f)
}

func respondBindError(c *gin.Context, hint string, err error) {
	status := http.StatusBadRequest
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		status = http.StatusRequestEntityTooLarge
	}
	c.JSON(status, models.StegoResponse{
		Success: false,
		Message: fmt.Sprintf("%s: %v", hint, err),
	})
}

func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("stego request failed: %v", err)
	}
	c.JSON(status, models.StegoResponse{
		Success: false,
		Message: err.Error(),
	})
}

func statusForError(err error) int {
	var capErr *stego.CapacityExceededError
	switch {
	case errors.As(err, &capErr), errors.Is(err, imaging.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, container.ErrPasswordMismatch):
		return http.StatusForbidden
	case errors.Is(err, stego.ErrInsufficientData),
		errors.Is(err, stego.ErrCorruptHeader),
		errors.Is(err, container.ErrMalformedPayload):
		return http.StatusUnprocessableEntity
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, imaging.ErrInvalidImage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
