package varcell

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestTaggedChecked(t *testing.T) {
	tg := Tag[[BuiltinWidth]byte](Int32, 1234)
	require.Equal(t, "int32", tg.Kind())

	v, err := Checked(tg, Int32)
	require.NoError(t, err)
	require.Equal(t, int32(1234), v)

	b, err := Checked(tg, Byte)
	require.ErrorIs(t, err, ErrKindMismatch)
	require.Equal(t, byte(0), b)

	// the untagged view still reinterprets
	require.Equal(t, byte(210), As(tg.Unchecked(), Byte))
}

func TestTaggedEmpty(t *testing.T) {
	var tg Tagged[[BuiltinWidth]byte]
	require.Equal(t, "", tg.Kind())
	f, err := Checked(tg, Float32)
	require.NoError(t, err)
	require.Equal(t, float32(0), f)
}

func TestTaggedCostsWidth(t *testing.T) {
	require.Greater(t, unsafe.Sizeof(Tagged[[BuiltinWidth]byte]{}), unsafe.Sizeof(BuiltinCell{}))
}
