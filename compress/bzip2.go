package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/emberfold/assetpack/format"
)

// Bzip2Compressor provides Burrows-Wheeler (bzip2) compression.
//
// Slower than the LZ-family codecs but often smaller output on text-like
// assets. The bzip2 stream carries per-block and per-stream CRCs, so
// corrupted payloads are detected at decompression time. Levels range 0-9;
// the underlying writer's minimum block size is level 1, so level 0 maps
// to 1.
type Bzip2Compressor struct{}

var _ Codec = (*Bzip2Compressor)(nil)

// NewBzip2Compressor creates a new bzip2 codec.
func NewBzip2Compressor() Bzip2Compressor {
	return Bzip2Compressor{}
}

// Compress compresses the input data using bzip2 at the clamped level.
func (c Bzip2Compressor) Compress(data []byte, level int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	level = format.ClampLevel(format.CompressionBzip2, level)
	if level < bzip2.BestSpeed {
		level = bzip2.BestSpeed
	}

	var buf bytes.Buffer
	zw, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: level})
	if err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("bzip2 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses bzip2-compressed data. The stream CRCs are
// verified; corrupted input returns an error.
func (c Bzip2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("bzip2 decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("bzip2 decompression failed: %w", err)
	}
	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("bzip2 decompression failed: %w", err)
	}

	return decompressed, nil
}
