package commands

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"image-steganography/imaging"
	"image-steganography/models"
)

var (
	imagePath   string
	password    string
	maxPixels   int
	compression string

	decoder  *imaging.ImageDecoder
	pngLevel png.CompressionLevel
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stegimg",
		Short:        "Hide password-gated messages in image pixels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if maxPixels < 0 {
				return fmt.Errorf("--max-pixels must not be negative")
			}
			level, err := imaging.ParseCompression(compression)
			if err != nil {
				return err
			}
			decoder = imaging.NewImageDecoder(maxPixels)
			pngLevel = level
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&imagePath, "image", "i", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "password stored with the message")
	root.PersistentFlags().IntVar(&maxPixels, "max-pixels", 0, "refuse images with more pixels than this (0 = no limit)")
	root.PersistentFlags().StringVar(&compression, "compression", "default", "PNG compression: default, none, speed or best")
	_ = root.MarkPersistentFlagRequired("image")

	root.AddCommand(encodeCmd(), decodeCmd(), capacityCmd())
	return root
}

func loadImage() (image.Image, *models.ImageMetadata, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read image: %w", err)
	}
	return decoder.Decode(data)
}

func stegoConfig() *models.StegoConfig {
	return &models.StegoConfig{
		Password:         password,
		CompressionLevel: pngLevel,
	}
}
