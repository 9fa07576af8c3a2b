package binding

import "testing"

// A payload big enough to notice copy vs. indirection
type Point struct {
	X, Y, Z int64
	Name    string
	Data    [100]byte
}

var sinkInt int64 // prevents dead-code elimination

//go:noinline
func moveByValue(p Point) int64 {
	p.X++
	return p.X
}

//go:noinline
func moveByPointer(p *Point) int64 {
	p.X++
	return p.X
}

// ---------- 1. Copy per call ----------

func BenchmarkPassByValue(b *testing.B) {
	b.ReportAllocs()
	p := Point{Name: "point"}
	for i := 0; i < b.N; i++ {
		sinkInt = moveByValue(p)
	}
}

// ---------- 2. Address per call ----------

func BenchmarkPassByPointer(b *testing.B) {
	b.ReportAllocs()
	p := Point{Name: "point"}
	for i := 0; i < b.N; i++ {
		sinkInt = moveByPointer(&p)
	}
}

// ---------- 3. Reference wrapper ----------

func BenchmarkPassByRef(b *testing.B) {
	b.ReportAllocs()
	n := 0
	r := RefTo(&n)
	for i := 0; i < b.N; i++ {
		SetByReference(r, i)
	}
	sinkInt = int64(n)
}
