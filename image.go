package main

import (
	"errors"
	"fmt"
	"image"
)

// Pixel is one truecolor sample: 8-bit red, green and blue.
type Pixel struct {
	R, G, B uint8
}

// Image is a pixel grid stored row-major. Every row must have the same
// length; Encode validates this before emitting anything.
type Image [][]Pixel

// ErrInvalidImage reports a grid that cannot be encoded: no rows, zero
// width, ragged rows, or dimensions that do not fit the header fields.
var ErrInvalidImage = errors.New("pngo: invalid image")

// PNG stores width and height as 31-bit values (u32 with the high bit
// reserved).
const maxDim = 1<<31 - 1

func (m Image) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Image) Height() int {
	return len(m)
}

func (m Image) validate() error {
	if len(m) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidImage)
	}
	if len(m) > maxDim {
		return fmt.Errorf("%w: height %d exceeds %d", ErrInvalidImage, len(m), maxDim)
	}
	w := len(m[0])
	if w == 0 {
		return fmt.Errorf("%w: zero width", ErrInvalidImage)
	}
	if w > maxDim {
		return fmt.Errorf("%w: width %d exceeds %d", ErrInvalidImage, w, maxDim)
	}
	for i, row := range m {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d pixels, want %d", ErrInvalidImage, i, len(row), w)
		}
	}
	return nil
}

// Gradient returns a width x height test pattern: red ramps left to right,
// green top to bottom, blue along the diagonal.
func Gradient(width, height int) Image {
	m := make(Image, height)
	for y := range m {
		row := make([]Pixel, width)
		for x := range row {
			row[x] = Pixel{
				R: ramp(x, width),
				G: ramp(y, height),
				B: ramp(x+y, width+height-1),
			}
		}
		m[y] = row
	}
	return m
}

func ramp(i, n int) uint8 {
	if n <= 1 {
		return 255
	}
	return uint8(i * 255 / (n - 1))
}

// FromImage copies src into a pixel grid, dropping any alpha.
//
// For common concrete types (RGBA/NRGBA) we bypass img.At/RGBA() and read
// pixels directly from the backing Pix slice. NRGBA is non-premultiplied;
// for primarily opaque images reading RGB directly matches the generic path.
func FromImage(src image.Image) Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	m := make(Image, h)
	for y := range m {
		m[y] = make([]Pixel, w)
	}

	switch s := src.(type) {
	case *image.RGBA:
		fromPix(m, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, 4)
	case *image.NRGBA:
		fromPix(m, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, 4)
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r16, g16, b16, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
				m[y][x] = Pixel{uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)}
			}
		}
	}
	return m
}

func fromPix(m Image, pix []byte, stride, bpp int) {
	for y, row := range m {
		base := y * stride
		for x := range row {
			p := base + x*bpp
			row[x] = Pixel{pix[p], pix[p+1], pix[p+2]}
		}
	}
}
