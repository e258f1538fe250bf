package varcell

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	ErrKindTooWide   = errors.New("kind does not fit the cell")
	ErrDuplicateKind = errors.New("kind already registered")
	ErrUnknownKind   = errors.New("unknown kind")
	ErrKindMismatch  = errors.New("kind mismatch")
)

// Storage is the set of backing regions a Cell can be built on. Compose one
// from the widths of the units in use:
//
//	type storage = [max(varcell.BuiltinWidth, wide.Width)]byte
//
// Every width from 1 to MaxWidth is allowed, so a composed cell is exactly as
// wide as its widest kind. The region is a plain byte array, so it has
// alignment 1 and no padding.
type Storage interface {
	~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte | ~[6]byte | ~[7]byte | ~[8]byte |
		~[9]byte | ~[10]byte | ~[11]byte | ~[12]byte | ~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte |
		~[17]byte | ~[18]byte | ~[19]byte | ~[20]byte | ~[21]byte | ~[22]byte | ~[23]byte | ~[24]byte |
		~[25]byte | ~[26]byte | ~[27]byte | ~[28]byte | ~[29]byte | ~[30]byte | ~[31]byte | ~[32]byte |
		~[33]byte | ~[34]byte | ~[35]byte | ~[36]byte | ~[37]byte | ~[38]byte | ~[39]byte | ~[40]byte |
		~[41]byte | ~[42]byte | ~[43]byte | ~[44]byte | ~[45]byte | ~[46]byte | ~[47]byte | ~[48]byte |
		~[49]byte | ~[50]byte | ~[51]byte | ~[52]byte | ~[53]byte | ~[54]byte | ~[55]byte | ~[56]byte |
		~[57]byte | ~[58]byte | ~[59]byte | ~[60]byte | ~[61]byte | ~[62]byte | ~[63]byte | ~[64]byte
}

// Cell holds the bits of one value of any kind that fits S. Every kind is
// laid out from offset 0, so the cell is exactly as wide as S and carries no
// record of which kind wrote it.
//
// The zero value is the empty cell.
type Cell[S Storage] struct {
	raw S
}

// Empty returns the all-zero cell every constructor starts from.
func Empty[S Storage]() Cell[S] {
	return Cell[S]{}
}

// From returns a cell holding v encoded under k. Bytes beyond k.Size() are
// zero.
func From[S Storage, T any](k Kind[T], v T) Cell[S] {
	var c Cell[S]
	c.put(k, k.Encode(v))
	return c
}

// As decodes the low k.Size() bytes of c under k. Reading under a kind other
// than the one that wrote c is allowed and yields whatever those bits mean
// under k.
func As[T any, S Storage](c Cell[S], k Kind[T]) T {
	return k.Decode(c.get(k))
}

// Store resets c to the empty baseline and writes v under k. Callers sharing
// c across goroutines must synchronize.
func Store[S Storage, T any](c *Cell[S], k Kind[T], v T) {
	c.Reset()
	c.put(k, k.Encode(v))
}

// Reset clears c back to the empty baseline.
func (c *Cell[S]) Reset() {
	var zero S
	c.raw = zero
}

// Size reports the width of the backing region in bytes.
func (c Cell[S]) Size() int {
	return int(unsafe.Sizeof(c.raw))
}

// Bytes returns a copy of the backing region.
func (c Cell[S]) Bytes() []byte {
	b := c.all()
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// IsEmpty reports whether every bit of the region is zero.
func (c Cell[S]) IsEmpty() bool {
	for _, b := range c.all() {
		if b != 0 {
			return false
		}
	}
	return true
}

func (c Cell[S]) String() string {
	return fmt.Sprintf("cell[%d]%x", c.Size(), c.all())
}

func (c *Cell[S]) all() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.raw)), unsafe.Sizeof(c.raw))
}

// region returns the low d.Size() bytes of the backing region. A kind wider
// than S means the storage was composed without one of its units.
func (c *Cell[S]) region(d Descriptor) []byte {
	b := c.all()
	n := d.Size()
	if n > len(b) {
		panic(fmt.Errorf("%w: %s needs %d bytes, cell has %d", ErrKindTooWide, d.Name(), n, len(b)))
	}
	return b[:n:n]
}

func (c *Cell[S]) put(d Descriptor, b Bits) {
	copy(c.region(d), b[:])
}

func (c *Cell[S]) get(d Descriptor) (b Bits) {
	copy(b[:], c.region(d))
	return b
}
