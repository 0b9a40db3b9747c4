package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Resize(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.Resize(8)
	require.Equal(t, 8, bb.Len())
	require.Equal(t, 16, bb.Cap())

	// Growing past capacity reallocates but keeps existing bytes.
	copy(bb.Bytes(), "12345678")
	bb.Resize(64)
	require.Equal(t, 64, bb.Len())
	require.Equal(t, []byte("12345678"), bb.Bytes()[:8])

	bb.Resize(0)
	require.Equal(t, 0, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.Resize(8)
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 8)
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.Resize(16)
	p.Put(bb)

	// Buffers come back reset.
	bb = p.Get()
	require.Equal(t, 0, bb.Len())
	p.Put(bb)

	// Put tolerates nil.
	p.Put(nil)
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Resize(128) // grows past the threshold
	p.Put(bb)      // discarded, not pooled

	next := p.Get()
	require.LessOrEqual(t, next.Cap(), 64)
}

func TestBundleBufferDefaults(t *testing.T) {
	bb := GetBundleBuffer()
	require.NotNil(t, bb)
	require.GreaterOrEqual(t, bb.Cap(), BundleBufferDefaultSize)
	PutBundleBuffer(bb)
}
