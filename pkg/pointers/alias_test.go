package pointers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAliases(t *testing.T) {
	num := 5
	p1, p2 := &num, &num
	other := 5

	assert.True(t, Aliases(p1, p2))
	assert.False(t, Aliases(p1, &other), "equal values, different storage")
	assert.False(t, Aliases[int](nil, nil))

	*p1 = 99
	assert.Equal(t, 99, *p2)
}

func TestRebind(t *testing.T) {
	x, y := 10, 20
	p := &x
	assert.Equal(t, 10, *p)

	p = &y
	assert.Equal(t, 20, *p)
	assert.Equal(t, 10, x, "rebinding does not touch the old pointee")
}

func TestSwap(t *testing.T) {
	a, b := 1, 2
	Swap(&a, &b)
	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
}

func TestDeref(t *testing.T) {
	v := 3
	assert.Equal(t, 3, Deref(&v, -1))
	assert.Equal(t, -1, Deref[int](nil, -1))
}

func TestOutlive(t *testing.T) {
	p := Outlive(777)
	assert.Equal(t, 777, *p)

	*p = 5
	assert.Equal(t, 5, *p)
}
