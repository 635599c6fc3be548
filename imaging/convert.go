package imaging

import (
	"image"
	"image/color"
)

// ToNRGBA returns a fresh copy of img in the three-channel model used for
// embedding: origin at (0,0), R, G and B kept, alpha forced opaque. Source
// alpha is dropped rather than blended.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			di := dst.PixOffset(0, y)
			for x := 0; x < b.Dx(); x++ {
				copy(dst.Pix[di:di+3], src.Pix[si:si+3])
				dst.Pix[di+3] = 0xff
				si += 4
				di += 4
			}
		}
		return dst
	}

	for y := 0; y < b.Dy(); y++ {
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dst.Pix[di] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			dst.Pix[di+3] = 0xff
			di += 4
		}
	}
	return dst
}
