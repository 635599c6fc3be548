package imaging

import (
	"image"
	"math"
)

// CalculatePSNR measures how far stego drifted from original over the R, G and
// B channels. Identical images give +Inf, mismatched sizes give 0.
func CalculatePSNR(original, stego image.Image) float64 {
	if original.Bounds().Size() != stego.Bounds().Size() {
		return 0.0
	}
	if original.Bounds().Empty() {
		return 0.0
	}

	a, b := ToNRGBA(original), ToNRGBA(stego)

	var mse float64
	var samples int
	for i := 0; i < len(a.Pix); i += 4 {
		for c := 0; c < ChannelsPerPixel; c++ {
			diff := float64(a.Pix[i+c]) - float64(b.Pix[i+c])
			mse += diff * diff
			samples++
		}
	}
	mse /= float64(samples)

	if mse == 0 {
		return math.Inf(1)
	}

	// 8-bit channels peak at 255
	maxSignalValue := 255.0
	return 20 * math.Log10(maxSignalValue/math.Sqrt(mse))
}
