package main

import (
	"bufio"
	"fmt"
	"hash/crc32"
)

// writeChunk frames one PNG chunk into w:
//
//	[4-byte big-endian len(data)] [4-byte type] [data] [4-byte big-endian CRC]
//
// The CRC-32 (IEEE) covers the type bytes followed by the data bytes as one
// stream; the length field is excluded. data may be empty (IEND).
func writeChunk(w *bufio.Writer, typ string, data []byte) error {
	if len(typ) != 4 {
		return fmt.Errorf("writeChunk: chunk type %q is not 4 bytes", typ)
	}

	if err := writeU32BE(w, uint32(len(data))); err != nil {
		return err
	}
	if _, err := w.WriteString(typ); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	crc := crc32.Update(0, crc32.IEEETable, []byte(typ))
	crc = crc32.Update(crc, crc32.IEEETable, data)
	return writeU32BE(w, crc)
}
