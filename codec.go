// pngo is a minimal truecolor PNG encoder: 8-bit RGB, no alpha, no
// interlacing, filter type 0 on every scanline, and a single zlib-compressed
// IDAT chunk. The output is a structurally valid PNG decodable by any
// spec-compliant reader.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// Fixed 8-byte PNG signature.
const pngSignature = "\x89PNG\r\n\x1a\n"

// IHDR fields fixed by this encoder.
const (
	bitDepth     = 8
	colorTypeRGB = 2 // truecolor, no alpha
)

// Encoder reuses scratch buffers across Encode calls to reduce allocations.
// It is not safe for concurrent use. The returned []byte is reused and will
// be overwritten on the next Encode call. Independent Encoder instances may
// run concurrently.
type Encoder struct {
	raw bytes.Buffer // uncompressed scanline stream
	out bytes.Buffer // assembled file
	bw  *bufio.Writer
}

func NewEncoder() *Encoder {
	e := &Encoder{}
	e.bw = bufio.NewWriter(&e.out)
	return e
}

// Encode is the one-shot variant; the returned slice is owned by the caller.
func Encode(m Image) ([]byte, error) {
	return NewEncoder().Encode(m)
}

func (e *Encoder) Encode(m Image) ([]byte, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	w, h := m.Width(), m.Height()

	if e.bw == nil {
		e.bw = bufio.NewWriter(&e.out)
	}

	// Scanline stream: one filter byte per row plus 3 bytes per pixel.
	e.raw.Reset()
	e.raw.Grow(h * (1 + 3*w))
	writeScanlines(&e.raw, m)

	comp, err := compressZlib(e.raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encode: compress scanlines: %w", err)
	}

	e.out.Reset()
	e.bw.Reset(&e.out)

	if _, err := e.bw.WriteString(pngSignature); err != nil {
		return nil, err
	}
	if err := writeChunk(e.bw, "IHDR", ihdrPayload(w, h)); err != nil {
		return nil, err
	}
	if err := writeChunk(e.bw, "IDAT", comp); err != nil {
		return nil, err
	}
	if err := writeChunk(e.bw, "IEND", nil); err != nil {
		return nil, err
	}
	if err := e.bw.Flush(); err != nil {
		return nil, err
	}

	return e.out.Bytes(), nil
}

// writeScanlines flattens the grid into the uncompressed IDAT payload: each
// row is one filter-type byte (0, "none") followed by the row's R,G,B bytes,
// with no padding between pixels or rows.
func writeScanlines(buf *bytes.Buffer, m Image) {
	for _, row := range m {
		buf.WriteByte(0)
		for _, p := range row {
			buf.WriteByte(p.R)
			buf.WriteByte(p.G)
			buf.WriteByte(p.B)
		}
	}
}

// ihdrPayload builds the 13-byte IHDR data: width, height, then bit depth,
// color type, compression method, filter method and interlace method.
func ihdrPayload(w, h int) []byte {
	p := make([]byte, 13)
	putU32BE(p[0:4], uint32(w))
	putU32BE(p[4:8], uint32(h))
	p[8] = bitDepth
	p[9] = colorTypeRGB
	// compression method, filter method, interlace method: all zero
	return p
}

// Save encodes m and writes the result to path. The file is only created
// once encoding has succeeded, so a failed encode never leaves a partial or
// truncated destination behind.
func Save(m Image, path string) error {
	enc, err := Encode(m)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(enc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
