package varcell

import (
	"testing"
)

var (
	sinkInt32   int32
	sinkFloat32 float32
	sinkCell    BuiltinCell
)

func BenchmarkFrom(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkCell = From[[BuiltinWidth]byte](Int32, int32(i))
	}
}

func BenchmarkAs(b *testing.B) {
	c := From[[BuiltinWidth]byte](Float32, 4.56)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt32 = As(c, Int32)
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := From[[BuiltinWidth]byte](Float32, float32(i))
		sinkFloat32 = As(c, Float32)
	}
}

func BenchmarkStore(b *testing.B) {
	var c BuiltinCell
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Store(&c, Uint16, uint16(i))
	}
	sinkCell = c
}

func BenchmarkTagged(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tg := Tag[[BuiltinWidth]byte](Int32, int32(i))
		sinkInt32, _ = Checked(tg, Int32)
	}
}

// Boxing through an interface, for comparison.
func BenchmarkBoxed(b *testing.B) {
	var box any
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box = float32(i) + 0.5
		sinkFloat32 = box.(float32)
	}
}
