package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"image-steganography/stego"
)

func capacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity",
		Short: "Report how many message bytes an image can hold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coverImg, meta, err := loadImage()
			if err != nil {
				return err
			}

			maxMessage, err := stego.NewImageLSB(stegoConfig()).CalculateCapacity(coverImg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Image: %dx%d %s, %s pixels\n", meta.Width, meta.Height, meta.Format, humanize.Comma(int64(meta.Pixels)))
			fmt.Fprintf(w, "Capacity: %s bits\n", humanize.Comma(int64(stego.Capacity(coverImg.Bounds()))))
			fmt.Fprintf(w, "Max message: %s bytes (~ %s)\n", humanize.Comma(int64(maxMessage)), humanize.Bytes(uint64(maxMessage)))
			return nil
		},
	}
}
