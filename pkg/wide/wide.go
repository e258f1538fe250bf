// Package wide contributes the 8-byte scalar kinds. Linking it into a cell
// grows the built-in 4-byte region to 8 bytes.
package wide

import (
	"unsafe"

	"github.com/rawbytedev/varcell"
)

// Width is the widest kind of this unit, in bytes.
const Width = int(max(
	unsafe.Sizeof(int64(0)),
	unsafe.Sizeof(uint64(0)),
	unsafe.Sizeof(float64(0)),
))

var (
	Int64   = varcell.Scalar[int64]("int64")
	Uint64  = varcell.Scalar[uint64]("uint64")
	Float64 = varcell.Scalar[float64]("float64")
)

var Unit = varcell.NewUnit("wide", Int64, Uint64, Float64)

// Cell holds any built-in or wide kind.
type Cell = varcell.Cell[[max(varcell.BuiltinWidth, Width)]byte]
