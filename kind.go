package varcell

import (
	"fmt"
	"reflect"

	"github.com/rawbytedev/varcell/internal/common"
)

// Number is every fixed-width integer and float type, named types included.
type Number = common.Number

// MaxWidth is the widest kind and the widest Storage, in bytes.
const MaxWidth = 64

// Bits is the bit pattern a kind trades with a cell. Only the low Size()
// bytes are meaningful; a cell hands Decode zeros above them.
//
// Bits travels by value so the backing region of a cell is never handed to
// a kind, which keeps cells off the heap.
type Bits [MaxWidth]byte

// Descriptor is the untyped view of a kind, as stored in a Catalog.
type Descriptor interface {
	Name() string
	Size() int
}

// Kind maps values of T to and from a fixed-width bit pattern.
//
// Encode returns the pattern of v in the low Size() bytes of Bits, zero
// above. Decode must accept any pattern: it is handed whatever bits the last
// write left behind, which may belong to a different kind.
type Kind[T any] interface {
	Descriptor
	Encode(v T) Bits
	Decode(b Bits) T
}

type scalarKind[T Number] struct {
	name string
	kind reflect.Kind
	size int
}

// Scalar returns a little-endian kind for the numeric type T. The width is
// taken from T's underlying kind, so named types such as
// `type Celsius float32` get the same layout as their base type.
func Scalar[T Number](name string) Kind[T] {
	k := reflect.TypeFor[T]().Kind()
	if !common.IsFixedKind(k) {
		panic(fmt.Sprintf("varcell: %s is not a fixed-width kind", k))
	}
	checkName(name)
	return scalarKind[T]{name: name, kind: k, size: common.FixedSize(k)}
}

func (s scalarKind[T]) Name() string { return s.name }
func (s scalarKind[T]) Size() int { return s.size }

func (s scalarKind[T]) Encode(v T) (b Bits) {
	common.PutFixed(b[:], v, s.kind)
	return b
}

func (s scalarKind[T]) Decode(b Bits) T {
	return common.GetFixed[T](b[:], s.kind)
}

type boolKind struct{}

func (boolKind) Name() string { return "bool" }
func (boolKind) Size() int { return 1 }

func (boolKind) Encode(v bool) (b Bits) {
	if v {
		b[0] = 1
	}
	return b
}

// Any non-zero byte reads as true.
func (boolKind) Decode(b Bits) bool { return b[0] != 0 }

type funcKind[T any] struct {
	name string
	size int
	enc  func(T) Bits
	dec  func(Bits) T
}

// NewKind builds a kind from a pair of codec functions. size must be in
// 1..MaxWidth and name must not be empty.
func NewKind[T any](name string, size int, enc func(v T) Bits, dec func(b Bits) T) Kind[T] {
	if size <= 0 || size > MaxWidth {
		panic(fmt.Sprintf("varcell: kind size %d out of range 1..%d", size, MaxWidth))
	}
	checkName(name)
	return &funcKind[T]{name: name, size: size, enc: enc, dec: dec}
}

func (f *funcKind[T]) Name() string { return f.name }
func (f *funcKind[T]) Size() int { return f.size }
func (f *funcKind[T]) Encode(v T) Bits { return f.enc(v) }
func (f *funcKind[T]) Decode(b Bits) T { return f.dec(b) }

// An empty name would make a tagged cell indistinguishable from an empty one.
func checkName(name string) {
	if name == "" {
		panic("varcell: kind name must not be empty")
	}
}
