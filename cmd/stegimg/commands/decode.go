package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"image-steganography/stego"
)

func decodeCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Recover a hidden message from an encoded image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stegoImg, _, err := loadImage()
			if err != nil {
				return err
			}

			message, err := stego.NewImageLSB(stegoConfig()).ExtractMessage(stegoImg)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(message), 0o600); err != nil {
					return fmt.Errorf("could not write %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Message decoded successfully! Wrote %s\n", outPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the message to a file instead of stdout")
	return cmd
}
