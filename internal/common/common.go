package common

import (
	"encoding/binary"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is every fixed-width integer and float type, named types included.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFixedKind reports whether k is a fixed-size primitive kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int, reflect.Uint, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size primitive kinds.
// Platform sized integers report the width of the running binary.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return int(reflect.TypeFor[uintptr]().Size())
	default:
		return -1
	}
}

// PutFixed writes v into the low FixedSize(k) bytes of dst, little-endian.
// k must be the kind of T.
func PutFixed[T Number](dst []byte, v T, k reflect.Kind) {
	switch k {
	case reflect.Int8, reflect.Uint8:
		dst[0] = byte(v)
	case reflect.Int16, reflect.Uint16:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case reflect.Int32, reflect.Uint32:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case reflect.Int64, reflect.Uint64:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		if FixedSize(k) == 4 {
			binary.LittleEndian.PutUint32(dst, uint32(v))
		} else {
			binary.LittleEndian.PutUint64(dst, uint64(v))
		}
	case reflect.Float32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case reflect.Float64:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(float64(v)))
	default:
		panic("not fixed")
	}
}

// GetFixed decodes the low FixedSize(k) bytes of src as a T.
// k must be the kind of T.
func GetFixed[T Number](src []byte, k reflect.Kind) T {
	switch k {
	case reflect.Int8:
		return T(int8(src[0]))
	case reflect.Uint8:
		return T(src[0])
	case reflect.Int16:
		return T(int16(binary.LittleEndian.Uint16(src)))
	case reflect.Uint16:
		return T(binary.LittleEndian.Uint16(src))
	case reflect.Int32:
		return T(int32(binary.LittleEndian.Uint32(src)))
	case reflect.Uint32:
		return T(binary.LittleEndian.Uint32(src))
	case reflect.Int64:
		return T(int64(binary.LittleEndian.Uint64(src)))
	case reflect.Uint64:
		return T(binary.LittleEndian.Uint64(src))
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		if FixedSize(k) == 4 {
			// sign is restored by the conversion to the 4-byte T
			return T(binary.LittleEndian.Uint32(src))
		}
		return T(binary.LittleEndian.Uint64(src))
	case reflect.Float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	case reflect.Float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(src)))
	default:
		panic("not fixed")
	}
}
