// Package imaging decodes cover images, normalizes them to RGB and writes PNG output
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"

	"image-steganography/models"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	ChannelsPerPixel = 3
	DefaultMaxPixels = 40_000_000
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrImageTooLarge     = errors.New("image too large")
	ErrInvalidImage      = errors.New("invalid image")
)

type ImageDecoder struct {
	// MaxPixels bounds width*height of accepted images. Zero means no bound.
	MaxPixels int
}

func NewImageDecoder(maxPixels int) *ImageDecoder {
	return &ImageDecoder{MaxPixels: maxPixels}
}

// Decode reads any registered raster format. Dimensions are checked from the
// header before the pixel data is decoded.
func (d *ImageDecoder) Decode(data []byte) (image.Image, *models.ImageMetadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil, decodeError(err)
	}

	pixels := cfg.Width * cfg.Height
	if d.MaxPixels > 0 && pixels > d.MaxPixels {
		return nil, nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, d.MaxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, decodeError(err)
	}

	metadata := &models.ImageMetadata{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Format:   format,
		Pixels:   pixels,
		Channels: ChannelsPerPixel,
	}
	return img, metadata, nil
}

// DecodeReader is Decode over a stream
func (d *ImageDecoder) DecodeReader(r io.Reader) (image.Image, *models.ImageMetadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read image: %w", err)
	}
	return d.Decode(data)
}

// EncodePNG writes img losslessly. Lossy output would destroy the hidden bits.
func EncodePNG(img image.Image, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: level}
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseCompression maps a config name to a PNG compression level.
func ParseCompression(name string) (png.CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown PNG compression %q (want default, none, speed or best)", name)
	}
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidImage, err)
}
