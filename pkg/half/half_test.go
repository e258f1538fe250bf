package half

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/rawbytedev/varcell"
)

func TestWidth(t *testing.T) {
	require.Equal(t, Width, Unit.Width())
	require.Less(t, Width, varcell.BuiltinWidth)

	cat, err := varcell.NewCatalog(varcell.Builtin)
	require.NoError(t, err)
	grew, err := cat.Add(Unit)
	require.NoError(t, err)
	require.False(t, grew)
	require.Equal(t, varcell.BuiltinWidth, cat.Width())
}

func TestBits(t *testing.T) {
	c := FromFloat32[[varcell.BuiltinWidth]byte](1.5)
	require.Equal(t, uint16(0x3E00), varcell.As(c, varcell.Uint16))
	require.Equal(t, float32(1.5), AsFloat32(c))
	require.Equal(t, []byte{0x00, 0x3E, 0, 0}, c.Bytes())
}

func TestRoundTripAllPatterns(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		h := float16.Frombits(uint16(i))
		c := varcell.From[[varcell.BuiltinWidth]byte](Float16, h)
		if got := varcell.As(c, Float16); got.Bits() != h.Bits() {
			t.Fatalf("bits %#04x: got %#04x", i, got.Bits())
		}
	}
}
