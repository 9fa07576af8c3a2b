package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackValue(t *testing.T) {
	assert.Equal(t, 43, StackValue())
}

func TestHeapValue_OutlivesFrame(t *testing.T) {
	p := HeapValue(99)
	q := HeapValue(99)

	assert.Equal(t, 99, *p)
	assert.NotSame(t, p, q, "each call gets its own storage")
}

func TestSequence(t *testing.T) {
	next := Sequence()
	assert.Equal(t, 1, next())
	assert.Equal(t, 2, next())
	assert.Equal(t, 3, next())

	other := Sequence()
	assert.Equal(t, 1, other())
}

func TestReadHeap(t *testing.T) {
	h := ReadHeap()
	assert.NotZero(t, h.HeapAlloc)

	var buf bytes.Buffer
	require.NoError(t, h.Fprint(&buf, "now"))
	assert.Contains(t, buf.String(), "[now] heap alloc:")
}
