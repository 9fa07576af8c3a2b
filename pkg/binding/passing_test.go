package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetByValue_CallerUnchanged(t *testing.T) {
	a := 1
	SetByValue(a, 10)
	assert.Equal(t, 1, a)
}

func TestSetByReference_CallerSeesWrite(t *testing.T) {
	b := 2
	SetByReference(RefTo(&b), 20)
	assert.Equal(t, 20, b)
}

func TestSetByPointer(t *testing.T) {
	t.Run("non-nil pointer writes through", func(t *testing.T) {
		c := 3
		assert.True(t, SetByPointer(&c, 30))
		assert.Equal(t, 30, c)
	})

	t.Run("nil pointer is checked", func(t *testing.T) {
		assert.False(t, SetByPointer(nil, 30))
	})
}

func TestRefTo_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "binding: reference to nil storage", func() {
		RefTo[int](nil)
	})
}

func TestRef_Aliasing(t *testing.T) {
	n := 5
	r1 := RefTo(&n)
	r2 := RefTo(&n)

	r1.Set(99)

	assert.True(t, r1.Same(r2))
	assert.Equal(t, 99, r2.Get())
	assert.Equal(t, 99, n)
}

func TestPass(t *testing.T) {
	got := Pass(1, 2, 3, Targets{Value: 10, Reference: 20, Pointer: 30})
	assert.Equal(t, Outcome{A: 1, B: 20, C: 30}, got)
}
