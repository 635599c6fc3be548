package stego

import (
	"fmt"
	"image"

	"image-steganography/container"
	"image-steganography/imaging"
	"image-steganography/models"
)

// ImageLSB hides password-gated messages in images and reads them back.
type ImageLSB struct {
	config *models.StegoConfig
}

func NewImageLSB(config *models.StegoConfig) *ImageLSB {
	return &ImageLSB{config: config}
}

// CalculateCapacity returns how many message bytes img can carry once the
// header and the container record around the message are accounted for.
// Characters the record has to escape (quotes, control codes, <>&) cost more
// than one byte each.
func (s *ImageLSB) CalculateCapacity(img image.Image) (int, error) {
	overhead, err := container.Pack("", s.config.Password)
	if err != nil {
		return 0, err
	}
	capacity := MaxPayloadBytes(img.Bounds()) - len(overhead)
	if capacity < 0 {
		return 0, nil
	}
	return capacity, nil
}

// EmbedMessage packs message with the configured password, hides it in img and
// encodes the result as PNG. The PSNR is measured against img.
func (s *ImageLSB) EmbedMessage(img image.Image, message string) (*models.EmbedResult, error) {
	stegoImg, err := s.Embed(img, message)
	if err != nil {
		return nil, err
	}
	data, err := imaging.EncodePNG(stegoImg, s.config.CompressionLevel)
	if err != nil {
		return nil, err
	}
	return &models.EmbedResult{
		Image: stegoImg,
		PNG:   data,
		PSNR:  imaging.CalculatePSNR(img, stegoImg),
	}, nil
}

// Embed is EmbedMessage without the PNG encoding step.
func (s *ImageLSB) Embed(img image.Image, message string) (*image.NRGBA, error) {
	payload, err := container.Pack(message, s.config.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to pack message: %w", err)
	}
	return Embed(img, payload)
}

// ExtractMessage recovers a message hidden by EmbedMessage, checking it was
// stored under the configured password.
func (s *ImageLSB) ExtractMessage(img image.Image) (string, error) {
	payload, err := Extract(img)
	if err != nil {
		return "", err
	}
	return container.Unpack(payload, s.config.Password)
}
