// Package stego to implement LSB
//
// The hidden stream is a 32-bit big-endian header holding the payload length
// in bits, followed by the payload. Its bits go into the least-significant bit
// of each R, G and B channel, pixels taken in raster order. Nothing marks the
// end of the stream; channels past it keep their original values.
package stego

import (
	"errors"
	"fmt"
	"image"
	"math"

	"image-steganography/bitstream"
	"image-steganography/imaging"
)

const (
	HeaderBits       = 32
	ChannelsPerPixel = imaging.ChannelsPerPixel
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrCorruptHeader    = errors.New("corrupt header")
)

// CapacityExceededError is returned when header plus payload need more bits
// than the image has channels.
type CapacityExceededError struct {
	Needed    int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("message too large: max %d bits, needed %d bits", e.Available, e.Needed)
}

// Capacity is the number of bits an image of the given bounds can hold,
// header included.
func Capacity(bounds image.Rectangle) int {
	return bounds.Dx() * bounds.Dy() * ChannelsPerPixel
}

// MaxPayloadBytes is the largest payload that fits next to the header.
func MaxPayloadBytes(bounds image.Rectangle) int {
	n := (Capacity(bounds) - HeaderBits) / bitstream.BitsInByte
	if n < 0 {
		return 0
	}
	return n
}

// Embed writes payload into a copy of img. The input is never modified and
// nothing is returned unless the whole stream fits.
func Embed(img image.Image, payload []byte) (*image.NRGBA, error) {
	available := Capacity(img.Bounds())
	needed := HeaderBits + len(payload)*bitstream.BitsInByte

	if len(payload) > math.MaxUint32/bitstream.BitsInByte || needed > available {
		return nil, &CapacityExceededError{Needed: needed, Available: available}
	}

	bits := bitstream.Uint32Bits(uint32(len(payload) * bitstream.BitsInByte))
	bits = append(bits, bitstream.ToBits(payload)...)

	stego := imaging.ToNRGBA(img)
	writeLSBs(stego, bits)
	return stego, nil
}

// Extract reads the stream written by Embed and returns the payload bytes
// without interpreting them.
func Extract(img image.Image) ([]byte, error) {
	bits := readLSBs(imaging.ToNRGBA(img))

	if len(bits) < HeaderBits {
		return nil, fmt.Errorf("%w for header: %d bits available, %d needed", ErrInsufficientData, len(bits), HeaderBits)
	}

	bitLength := uint64(bitstream.BitsUint32(bits[:HeaderBits]))
	if HeaderBits+bitLength > uint64(len(bits)) {
		return nil, fmt.Errorf("%w for message: header declares %d bits, image holds %d", ErrInsufficientData, bitLength, len(bits)-HeaderBits)
	}
	if bitLength%bitstream.BitsInByte != 0 {
		return nil, fmt.Errorf("%w: length %d is not a whole number of bytes", ErrCorruptHeader, bitLength)
	}

	return bitstream.FromBits(bits[HeaderBits : HeaderBits+bitLength]), nil
}

// writeLSBs replaces channel LSBs in raster order until bits runs out.
func writeLSBs(img *image.NRGBA, bits []byte) {
	b := img.Bounds()
	bitIndex := 0
	for y := b.Min.Y; y < b.Max.Y && bitIndex < len(bits); y++ {
		for x := b.Min.X; x < b.Max.X && bitIndex < len(bits); x++ {
			offset := img.PixOffset(x, y)
			for c := 0; c < ChannelsPerPixel && bitIndex < len(bits); c++ {
				img.Pix[offset+c] = (img.Pix[offset+c] & 0xFE) | bits[bitIndex]
				bitIndex++
			}
		}
	}
}

func readLSBs(img *image.NRGBA) []byte {
	b := img.Bounds()
	bits := make([]byte, 0, Capacity(b))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			offset := img.PixOffset(x, y)
			for c := 0; c < ChannelsPerPixel; c++ {
				bits = append(bits, img.Pix[offset+c]&1)
			}
		}
	}
	return bits
}
