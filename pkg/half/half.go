// Package half contributes IEEE 754 binary16 floats. Its kind is narrower
// than the built-in region, so linking it leaves the cell width unchanged.
package half

import (
	"encoding/binary"

	"github.com/x448/float16"

	"github.com/rawbytedev/varcell"
)

const Width = 2

// Float16 stores the binary16 bit pattern, little-endian.
var Float16 = varcell.NewKind("float16", Width,
	func(v float16.Float16) (b varcell.Bits) {
		binary.LittleEndian.PutUint16(b[:], v.Bits())
		return b
	},
	func(b varcell.Bits) float16.Float16 {
		return float16.Frombits(binary.LittleEndian.Uint16(b[:]))
	},
)

var Unit = varcell.NewUnit("half", Float16)

// FromFloat32 writes f rounded to the nearest binary16 value.
func FromFloat32[S varcell.Storage](f float32) varcell.Cell[S] {
	return varcell.From[S](Float16, float16.Fromfloat32(f))
}

// AsFloat32 widens the binary16 view of c to float32.
func AsFloat32[S varcell.Storage](c varcell.Cell[S]) float32 {
	return varcell.As(c, Float16).Float32()
}
