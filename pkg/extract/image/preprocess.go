package image

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Decoders for the formats image.Decode should recognise. Files are
	// accepted by extension, so a .png may well hold a BMP or WebP.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Preprocess decodes data, converts it to grayscale, upscales it so its
// shorter side is at least minSide pixels, and returns it encoded as PNG.
func Preprocess(data []byte, minSide int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	gray := Grayscale(img)
	scaled := Upscale(gray, minSide)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encoding %s image as png: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Grayscale returns img as an 8-bit grayscale image with origin (0, 0).
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Upscale enlarges img by a whole factor so its shorter side reaches
// minSide. Images already large enough, and minSide <= 0, are returned as is.
func Upscale(img *image.Gray, minSide int) *image.Gray {
	b := img.Bounds()
	short := min(b.Dx(), b.Dy())
	if minSide <= 0 || short == 0 || short >= minSide {
		return img
	}

	factor := (minSide + short - 1) / short
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
