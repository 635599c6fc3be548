package commands

import (
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"image-steganography/stego"
)

func encodeCmd() *cobra.Command {
	var message, messageFile, outPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Hide a message in an image and write the result as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case messageFile != "" && cmd.Flags().Changed("message"):
				return fmt.Errorf("use either --message or --message-file, not both")
			case messageFile != "":
				data, err := os.ReadFile(messageFile)
				if err != nil {
					return fmt.Errorf("could not read message file: %w", err)
				}
				message = string(data)
			case !cmd.Flags().Changed("message"):
				return fmt.Errorf("message required (--message or --message-file)")
			}
			if !utf8.ValidString(message) {
				return fmt.Errorf("message must be valid UTF-8")
			}

			coverImg, _, err := loadImage()
			if err != nil {
				return err
			}

			result, err := stego.NewImageLSB(stegoConfig()).EmbedMessage(coverImg, message)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, result.PNG, 0o644); err != nil {
				return fmt.Errorf("could not write %s: %w", outPath, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Message encoded successfully! Wrote %s (%s)\n", outPath, humanize.Bytes(uint64(len(result.PNG))))
			if !math.IsInf(result.PSNR, 1) {
				fmt.Fprintf(w, "PSNR: %.2f dB\n", result.PSNR)
			}
			if password == "" {
				fmt.Fprintln(w, "No password set: any password will open this message.")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to hide")
	cmd.Flags().StringVar(&messageFile, "message-file", "", "read the message from a UTF-8 text file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "encoded.png", "where to write the encoded PNG")
	return cmd
}
