package wide

import (
	"math"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/varcell"
)

func TestWidth(t *testing.T) {
	require.Equal(t, 8, Width)
	require.Equal(t, Width, Unit.Width())
	require.Equal(t, uintptr(8), unsafe.Sizeof(Cell{}))
}

func TestRoundTrip(t *testing.T) {
	require.NoError(t, quick.Check(func(v int64) bool {
		return varcell.As(varcell.From[[Width]byte](Int64, v), Int64) == v
	}, nil))
	require.NoError(t, quick.Check(func(v uint64) bool {
		return varcell.As(varcell.From[[Width]byte](Uint64, v), Uint64) == v
	}, nil))
	require.NoError(t, quick.Check(func(v float64) bool {
		got := varcell.As(varcell.From[[Width]byte](Float64, v), Float64)
		return math.Float64bits(got) == math.Float64bits(v)
	}, nil))
}

func TestNarrowReadsOfWide(t *testing.T) {
	c := varcell.From[[Width]byte](Int64, -1)
	require.Equal(t, uint32(math.MaxUint32), varcell.As(c, varcell.Uint32))
	require.Equal(t, byte(0xFF), varcell.As(c, varcell.Byte))

	c = varcell.From[[Width]byte](varcell.Int32, -1)
	require.Equal(t, int64(math.MaxUint32), varcell.As(c, Int64))
}
