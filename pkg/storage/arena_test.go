package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_Lifecycle(t *testing.T) {
	a := NewArena[int](2)

	h, err := a.Alloc(99)
	require.NoError(t, err)
	assert.False(t, h.IsNil())
	assert.Equal(t, 1, a.Live())

	v, err := a.Load(h)
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	require.NoError(t, a.Store(h, 100))
	require.NoError(t, a.Update(h, func(p *int) { *p++ }))
	v, err = a.Load(h)
	require.NoError(t, err)
	assert.Equal(t, 101, v)

	require.NoError(t, a.Release(h))
	assert.Equal(t, 0, a.Live())
	assert.NoError(t, a.Close())
}

func TestArena_StaleHandles(t *testing.T) {
	a := NewArena[string](1)
	h, err := a.Alloc("temp")
	require.NoError(t, err)
	dangling := h
	require.NoError(t, a.Release(h))

	t.Run("use after release", func(t *testing.T) {
		_, err := a.Load(dangling)
		assert.ErrorIs(t, err, ErrStaleHandle)
		assert.ErrorIs(t, a.Store(dangling, "x"), ErrStaleHandle)
	})

	t.Run("double release", func(t *testing.T) {
		assert.ErrorIs(t, a.Release(dangling), ErrStaleHandle)
	})

	t.Run("slot reuse does not revive old handle", func(t *testing.T) {
		fresh, err := a.Alloc("new")
		require.NoError(t, err)
		assert.NotEqual(t, dangling, fresh)

		_, err = a.Load(dangling)
		assert.ErrorIs(t, err, ErrStaleHandle)

		v, err := a.Load(fresh)
		require.NoError(t, err)
		assert.Equal(t, "new", v)
		require.NoError(t, a.Release(fresh))
	})
}

func TestArena_NilAndForeignHandles(t *testing.T) {
	a := NewArena[int](1)

	_, err := a.Load(Handle{})
	assert.ErrorIs(t, err, ErrNilHandle)

	_, err = a.Load(Handle{index: 7, gen: 1})
	assert.ErrorIs(t, err, ErrStaleHandle)
}

func TestArena_Exhausted(t *testing.T) {
	a := NewArena[int](1)
	_, err := a.Alloc(1)
	require.NoError(t, err)

	_, err = a.Alloc(2)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestArena_CloseReportsLeaks(t *testing.T) {
	a := NewArena[int](4)
	_, err := a.Alloc(888)
	require.NoError(t, err)
	_, err = a.Alloc(889)
	require.NoError(t, err)

	err = a.Close()
	assert.ErrorIs(t, err, ErrLeaked)
	assert.Contains(t, err.Error(), "2 allocation(s)")
}

func TestArena_NilLoggerIgnored(t *testing.T) {
	a := NewArena[int](1, WithLogger(nil))

	h, err := a.Alloc(1)
	require.NoError(t, err)
	require.NoError(t, a.Release(h))

	_, err = a.Alloc(2)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Close(), ErrLeaked)
}

func TestHandle_String(t *testing.T) {
	assert.Equal(t, "handle(nil)", Handle{}.String())
	assert.Equal(t, "handle(3#5)", Handle{index: 3, gen: 5}.String())
}

var sinkSum int

func BenchmarkArenaAllocRelease(b *testing.B) {
	b.ReportAllocs()
	a := NewArena[[1024]byte](1)

	for i := 0; i < b.N; i++ {
		h, err := a.Alloc([1024]byte{})
		if err != nil {
			b.Fatal(err)
		}
		_ = a.Update(h, func(buf *[1024]byte) {
			for j := range buf {
				buf[j] = byte(j % 256)
				sinkSum += int(buf[j])
			}
		})
		if err := a.Release(h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHeapAlloc(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := make([]byte, 1024)
		for j := range buf {
			buf[j] = byte(j % 256)
			sinkSum += int(buf[j])
		}
	}
}
