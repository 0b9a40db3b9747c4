package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/emberfold/assetpack/format"
)

// DeflateCompressor provides Deflate compression in gzip framing.
//
// The gzip framing carries a CRC32 of the raw bytes, so tampered payloads
// are detected at decompression time. Levels range 0 (store) to 9 (best
// compression).
type DeflateCompressor struct{}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a new Deflate codec.
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{}
}

// Compress compresses the input data using Deflate at the clamped level.
func (c DeflateCompressor) Compress(data []byte, level int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	level = format.ClampLevel(format.CompressionDeflate, level)

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("deflate compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses Deflate-compressed data. The framing CRC is
// verified; corrupted input returns an error.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}
	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("deflate decompression failed: %w", err)
	}

	return decompressed, nil
}
