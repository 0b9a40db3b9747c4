package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberfold/assetpack/format"
)

func testPayloads() map[string][]byte {
	large := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog 0123456789 "), 2048)

	return map[string][]byte{
		"empty":      nil,
		"tiny":       []byte("x"),
		"small text": []byte("a small asset payload with some repetition repetition repetition"),
		"large":      large,
		"binary":     {0x00, 0xFF, 0x10, 0x20, 0x00, 0x00, 0x00, 0x7F, 0x80, 0x81},
	}
}

func allCompressionTypes() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionDeflate,
		format.CompressionBzip2,
		format.CompressionZstd,
		format.CompressionLzma,
		format.CompressionLZ4,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, cType := range allCompressionTypes() {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		minLevel, maxLevel := format.LevelRange(cType)
		midLevel := (minLevel + maxLevel) / 2

		for _, level := range []int{minLevel, midLevel, maxLevel} {
			for name, payload := range testPayloads() {
				t.Run(fmt.Sprintf("%s/level=%d/%s", cType, level, name), func(t *testing.T) {
					compressed, err := codec.Compress(payload, level)
					require.NoError(t, err, "payload %q level %d", name, level)

					decoded, err := codec.Decompress(compressed)
					require.NoError(t, err, "payload %q level %d", name, level)

					if len(payload) == 0 {
						require.Empty(t, decoded, "payload %q level %d", name, level)
					} else {
						require.Equal(t, payload, decoded, "payload %q level %d", name, level)
					}
				})
			}
		}
	}
}

// Out-of-range levels must behave exactly like the nearest bound, never
// fail.
func TestCodec_LevelClamping(t *testing.T) {
	data := bytes.Repeat([]byte("clamp clamp clamp clamp "), 512)

	tests := []struct {
		name       string
		cType      format.CompressionType
		level      int
		equivalent int
	}{
		{name: "deflate below min", cType: format.CompressionDeflate, level: -5, equivalent: 0},
		{name: "deflate above max", cType: format.CompressionDeflate, level: 99, equivalent: 9},
		{name: "bzip2 below min", cType: format.CompressionBzip2, level: -1, equivalent: 0},
		{name: "bzip2 above max", cType: format.CompressionBzip2, level: 50, equivalent: 9},
		{name: "zstd below min", cType: format.CompressionZstd, level: -3, equivalent: 1},
		{name: "zstd zero maps to default", cType: format.CompressionZstd, level: 0, equivalent: format.ZstdDefaultLevel},
		{name: "zstd above max", cType: format.CompressionZstd, level: 40, equivalent: 22},
		{name: "lzma above max", cType: format.CompressionLzma, level: 12, equivalent: 9},
		{name: "lz4 below min", cType: format.CompressionLZ4, level: -2, equivalent: 0},
		{name: "lz4 above max", cType: format.CompressionLZ4, level: 100, equivalent: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := GetCodec(tt.cType)
			require.NoError(t, err)

			clamped, err := codec.Compress(data, tt.level)
			require.NoError(t, err)

			reference, err := codec.Compress(data, tt.equivalent)
			require.NoError(t, err)

			require.Equal(t, reference, clamped)

			decoded, err := codec.Decompress(clamped)
			require.NoError(t, err)
			require.Equal(t, data, decoded)
		})
	}
}

// Codecs with checksummed framings must reject tampered payloads instead
// of returning wrong bytes. The last byte always falls inside the trailer
// checksum region of each framing.
func TestCodec_CorruptionDetected(t *testing.T) {
	data := bytes.Repeat([]byte("integrity matters "), 1024)

	checksummed := []format.CompressionType{
		format.CompressionDeflate,
		format.CompressionBzip2,
		format.CompressionLzma,
		format.CompressionLZ4,
	}

	for _, cType := range checksummed {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			compressed, err := codec.Compress(data, 5)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)

			tampered := bytes.Clone(compressed)
			tampered[len(tampered)-1] ^= 0xFF

			_, err = codec.Decompress(tampered)
			require.Error(t, err)
		})
	}
}

func TestNoOpCompressor_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte("not compressed at all")

	compressed, err := codec.Compress(data, 9000)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decoded, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestCreateCodec(t *testing.T) {
	for _, cType := range allCompressionTypes() {
		codec, err := CreateCodec(cType, "test")
		require.NoError(t, err, cType.String())
		require.NotNil(t, codec, cType.String())
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "test")
	require.Error(t, err)
	require.Contains(t, err.Error(), "test")
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

// Compression must never mutate the caller's input.
func TestCodec_InputUntouched(t *testing.T) {
	original := bytes.Repeat([]byte("do not touch "), 256)

	for _, cType := range allCompressionTypes() {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		data := bytes.Clone(original)
		_, err = codec.Compress(data, 3)
		require.NoError(t, err)
		require.Equal(t, original, data, cType.String())
	}
}
