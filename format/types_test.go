package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		expected string
	}{
		{name: "none compression", cType: CompressionNone, expected: "None"},
		{name: "deflate compression", cType: CompressionDeflate, expected: "Deflate"},
		{name: "bzip2 compression", cType: CompressionBzip2, expected: "Bzip2"},
		{name: "zstd compression", cType: CompressionZstd, expected: "Zstd"},
		{name: "lzma compression", cType: CompressionLzma, expected: "Lzma"},
		{name: "lz4 compression", cType: CompressionLZ4, expected: "LZ4"},
		{name: "unknown compression", cType: CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CompressionType
	}{
		{name: "empty means none", input: "", expected: CompressionNone},
		{name: "none", input: "none", expected: CompressionNone},
		{name: "deflate", input: "deflate", expected: CompressionDeflate},
		{name: "flate alias", input: "flate", expected: CompressionDeflate},
		{name: "bwt", input: "bwt", expected: CompressionBzip2},
		{name: "bzip2", input: "bzip2", expected: CompressionBzip2},
		{name: "bzip alias", input: "bzip", expected: CompressionBzip2},
		{name: "bz alias", input: "bz", expected: CompressionBzip2},
		{name: "long bwt name", input: "burrows-wheeler-transform", expected: CompressionBzip2},
		{name: "zstd", input: "zstd", expected: CompressionZstd},
		{name: "zstandard alias", input: "zstandard", expected: CompressionZstd},
		{name: "lzma", input: "lzma", expected: CompressionLzma},
		{name: "long lzma name", input: "lempel-ziv-markov-chain-algorithm", expected: CompressionLzma},
		{name: "lz4", input: "lz4", expected: CompressionLZ4},
		{name: "case insensitive", input: "ZsTd", expected: CompressionZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompression(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCompression_Unknown(t *testing.T) {
	_, err := ParseCompression("snappy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "snappy")
}

func TestLevelRange(t *testing.T) {
	tests := []struct {
		cType              CompressionType
		minLevel, maxLevel int
	}{
		{CompressionDeflate, 0, 9},
		{CompressionBzip2, 0, 9},
		{CompressionZstd, 1, 22},
		{CompressionLzma, 0, 9},
		{CompressionLZ4, 0, 16},
		{CompressionNone, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.cType.String(), func(t *testing.T) {
			minLevel, maxLevel := LevelRange(tt.cType)
			require.Equal(t, tt.minLevel, minLevel)
			require.Equal(t, tt.maxLevel, maxLevel)
		})
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		level    int
		expected int
	}{
		{name: "deflate in range", cType: CompressionDeflate, level: 5, expected: 5},
		{name: "deflate below min", cType: CompressionDeflate, level: -3, expected: 0},
		{name: "deflate above max", cType: CompressionDeflate, level: 100, expected: 9},
		{name: "bzip2 above max", cType: CompressionBzip2, level: 10, expected: 9},
		{name: "zstd zero maps to default", cType: CompressionZstd, level: 0, expected: ZstdDefaultLevel},
		{name: "zstd below min", cType: CompressionZstd, level: -1, expected: 1},
		{name: "zstd above max", cType: CompressionZstd, level: 30, expected: 22},
		{name: "zstd in range", cType: CompressionZstd, level: 19, expected: 19},
		{name: "lzma above max", cType: CompressionLzma, level: 12, expected: 9},
		{name: "lz4 above max", cType: CompressionLZ4, level: 17, expected: 16},
		{name: "lz4 in range", cType: CompressionLZ4, level: 16, expected: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ClampLevel(tt.cType, tt.level))
		})
	}
}
