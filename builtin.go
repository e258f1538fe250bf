package varcell

import "unsafe"

// BuiltinWidth is the widest built-in kind, in bytes.
const BuiltinWidth = int(max(
	unsafe.Sizeof(false),
	unsafe.Sizeof(int8(0)),
	unsafe.Sizeof(byte(0)),
	unsafe.Sizeof(int16(0)),
	unsafe.Sizeof(uint16(0)),
	unsafe.Sizeof(int32(0)),
	unsafe.Sizeof(uint32(0)),
	unsafe.Sizeof(float32(0)),
))

// Bool reads any non-zero byte as true.
var Bool Kind[bool] = boolKind{}

// Built-in numeric kinds. Int32 and Float32 are the general purpose integer
// and float views; multi-byte kinds are little-endian.
var (
	Int8    = Scalar[int8]("int8")
	Byte    = Scalar[byte]("byte")
	Int16   = Scalar[int16]("int16")
	Uint16  = Scalar[uint16]("uint16")
	Int32   = Scalar[int32]("int32")
	Uint32  = Scalar[uint32]("uint32")
	Float32 = Scalar[float32]("float32")
)

// Builtin is the unit of built-in kinds.
var Builtin = NewUnit("builtin", Bool, Int8, Byte, Int16, Uint16, Int32, Uint32, Float32)

// BuiltinCell is a cell sized for the built-in kinds only.
type BuiltinCell = Cell[[BuiltinWidth]byte]
