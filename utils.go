package main

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// Compression level is pinned in one place so the same grid always encodes
// to byte-identical output for a given library version.
const zlibLevel = zlib.BestCompression

func mustNewZlibWriter() *zlib.Writer {
	zw, err := zlib.NewWriterLevel(nil, zlibLevel)
	if err != nil {
		panic(err)
	}
	return zw
}

var zlibPool = sync.Pool{
	New: func() any {
		return mustNewZlibWriter()
	},
}

// compressZlib deflates data inside a zlib container (2-byte header, deflate
// stream, Adler-32 trailer), which is what PNG decoders expect in IDAT.
func compressZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := zlibPool.Get().(*zlib.Writer)
	zw.Reset(&buf)
	if _, err := zw.Write(data); err != nil {
		zlibPool.Put(zw)
		return nil, err
	}
	if err := zw.Close(); err != nil {
		zlibPool.Put(zw)
		return nil, err
	}
	zlibPool.Put(zw)

	return buf.Bytes(), nil
}

func putU32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

func writeU32BE(w *bufio.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
