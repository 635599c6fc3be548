package main

import (
	"os"

	"image-steganography/cmd/stegimg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
