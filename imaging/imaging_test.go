package imaging_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"image-steganography/imaging"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x + y), A: 0xff})
		}
	}
	return img
}

func TestDecode_Formats(t *testing.T) {
	src := gradient(6, 4)
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) },
	}

	dec := imaging.NewImageDecoder(0)
	for format, encode := range encoders {
		var buf bytes.Buffer
		if err := encode(&buf); err != nil {
			t.Fatalf("encode %s: %v", format, err)
		}
		img, meta, err := dec.Decode(buf.Bytes())
		if err != nil {
			t.Fatalf("Decode %s: %v", format, err)
		}
		if meta.Format != format || meta.Width != 6 || meta.Height != 4 || meta.Pixels != 24 {
			t.Fatalf("%s metadata = %+v", format, meta)
		}
		if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
			t.Fatalf("%s bounds = %v", format, img.Bounds())
		}
	}
}

func TestDecode_LosslessFormatsKeepPixels(t *testing.T) {
	src := gradient(5, 5)
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	img, _, err := imaging.NewImageDecoder(0).Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(imaging.ToNRGBA(img).Pix, src.Pix) {
		t.Fatal("bmp round trip changed pixels")
	}
}

func TestDecode_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, gradient(10, 10)); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	_, _, err := imaging.NewImageDecoder(99).Decode(buf.Bytes())
	if !errors.Is(err, imaging.ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}
	if _, _, err := imaging.NewImageDecoder(100).Decode(buf.Bytes()); err != nil {
		t.Fatalf("Decode at limit: %v", err)
	}
}

func TestDecode_Unsupported(t *testing.T) {
	_, _, err := imaging.NewImageDecoder(0).Decode([]byte("definitely not an image"))
	if !errors.Is(err, imaging.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestToNRGBA_DropsAlphaAndCopies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 4))
	src.SetNRGBA(2, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	src.SetNRGBA(3, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 128})

	got := imaging.ToNRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	want := []byte{10, 20, 30, 0xff, 1, 2, 3, 0xff}
	if !bytes.Equal(got.Pix, want) {
		t.Fatalf("Pix = %v, want %v", got.Pix, want)
	}

	got.Pix[0] = 99
	if src.NRGBAAt(2, 3).R != 10 {
		t.Fatal("ToNRGBA shares memory with its input")
	}
}

func TestToNRGBA_Gray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 1, 1))
	src.SetGray(0, 0, color.Gray{Y: 77})
	if got := imaging.ToNRGBA(src).Pix; !bytes.Equal(got, []byte{77, 77, 77, 0xff}) {
		t.Fatalf("Pix = %v", got)
	}
}

func TestEncodePNG_IsOpaqueRGB(t *testing.T) {
	data, err := imaging.EncodePNG(imaging.ToNRGBA(gradient(3, 3)), png.BestCompression)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if !bytes.Equal(imaging.ToNRGBA(img).Pix, imaging.ToNRGBA(gradient(3, 3)).Pix) {
		t.Fatal("PNG output differs from input")
	}
}

func TestParseCompression(t *testing.T) {
	for name, want := range map[string]png.CompressionLevel{
		"":        png.DefaultCompression,
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"Speed":   png.BestSpeed,
		" best ":  png.BestCompression,
	} {
		got, err := imaging.ParseCompression(name)
		if err != nil || got != want {
			t.Fatalf("ParseCompression(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := imaging.ParseCompression("lzma"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestCalculatePSNR(t *testing.T) {
	a := gradient(4, 4)
	if psnr := imaging.CalculatePSNR(a, a); !math.IsInf(psnr, 1) {
		t.Fatalf("identical PSNR = %v, want +Inf", psnr)
	}

	b := imaging.ToNRGBA(a)
	b.Pix[0] ^= 1 // one LSB flipped out of 48 samples
	want := 20 * math.Log10(255/math.Sqrt(1.0/48))
	if psnr := imaging.CalculatePSNR(a, b); math.Abs(psnr-want) > 1e-9 {
		t.Fatalf("PSNR = %v, want %v", psnr, want)
	}

	if psnr := imaging.CalculatePSNR(a, gradient(3, 3)); psnr != 0 {
		t.Fatalf("size mismatch PSNR = %v, want 0", psnr)
	}
}
