package main

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// The comparative benchmarks all encode the same 640x480 gradient so the
// numbers are directly comparable run to run.
func benchGrid() Image {
	return Gradient(640, 480)
}

func gridToRGBA(m Image) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y, row := range m {
		for x, p := range row {
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

func BenchmarkEncode(b *testing.B) {
	grid := benchGrid()
	enc := NewEncoder()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.Encode(grid); err != nil {
			b.Fatalf("encode failed: %v", err)
		}
	}
}

func BenchmarkStdlibPNG(b *testing.B) {
	img := gridToRGBA(benchGrid())

	buf := &bytes.Buffer{}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := png.Encode(buf, img); err != nil {
			b.Fatalf("png encode failed: %v", err)
		}
	}
}

func BenchmarkJPEG(b *testing.B) {
	img := gridToRGBA(benchGrid())

	buf := &bytes.Buffer{}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 80}); err != nil {
			b.Fatalf("jpeg encode failed: %v", err)
		}
	}
}

func BenchmarkFromImage(b *testing.B) {
	img := gridToRGBA(benchGrid())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FromImage(img)
	}
}
