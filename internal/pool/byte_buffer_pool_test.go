package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(SectionBufferSize)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, SectionBufferSize, bb.Cap())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte{0x00, 0xB0, 0x0D})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = bb.Write([]byte{0x00, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xB0, 0x0D, 0x00, 0x01}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	_, _ = bb.Write([]byte("section"))
	capBefore := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by a section", func(t *testing.T) {
		bb := NewByteBuffer(10)
		_, _ = bb.Write([]byte("0123456789"))
		bb.Grow(1)

		assert.Equal(t, 10+SectionBufferSize, bb.Cap())
		assert.Equal(t, []byte("0123456789"), bb.Bytes())
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * SectionBufferSize)
		assert.GreaterOrEqual(t, bb.Cap(), 3*SectionBufferSize)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * SectionBufferSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("table image"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.Equal(t, "table image", out.String())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("returned buffers are empty", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		_, _ = bb.Write([]byte("data"))
		p.Put(bb)

		again := p.Get()
		assert.Equal(t, 0, again.Len())
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		bb := p.Get()
		bb.Grow(1024)
		assert.NotPanics(t, func() { p.Put(bb) })
	})

	t.Run("nil put", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		assert.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("table pool", func(t *testing.T) {
		bb := GetTableBuffer()
		require.NotNil(t, bb)
		assert.GreaterOrEqual(t, bb.Cap(), TableBufferDefaultSize)
		PutTableBuffer(bb)
	})
}
