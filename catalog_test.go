package varcell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitWidth(t *testing.T) {
	require.Equal(t, BuiltinWidth, Builtin.Width())
	require.Equal(t, "builtin", Builtin.Name())
	require.Len(t, Builtin.Kinds(), 8)
	require.Equal(t, 0, NewUnit("none").Width())

	kinds := Builtin.Kinds()
	kinds[0] = nil
	require.NotNil(t, Builtin.Kinds()[0])
}

func TestCatalogGrowth(t *testing.T) {
	c, err := NewCatalog(Builtin)
	require.NoError(t, err)
	require.Equal(t, 4, c.Width())
	require.NoError(t, Fits[[BuiltinWidth]byte](c))

	grew, err := c.Add(NewUnit("narrow", Scalar[uint8]("u8")))
	require.NoError(t, err)
	assert.False(t, grew)
	require.Equal(t, 4, c.Width())

	grew, err = c.Add(NewUnit("wide", Scalar[int64]("i64"), Scalar[float64]("f64")))
	require.NoError(t, err)
	assert.True(t, grew)
	require.Equal(t, 8, c.Width())
	require.ErrorIs(t, Fits[[BuiltinWidth]byte](c), ErrKindTooWide)
	require.NoError(t, Fits[[8]byte](c))

	// the 4-byte kinds keep their round trips in the wider cell
	cell := From[[8]byte](Int32, -5)
	require.Equal(t, int32(-5), As(cell, Int32))
	cell = From[[8]byte](Float32, 1.5)
	require.Equal(t, float32(1.5), As(cell, Float32))
	require.Equal(t, uint64(0x3FC00000), As(cell, Scalar[uint64]("u64")))

	grew, err = c.Add(NewUnit("tiny", Scalar[int8]("i8")))
	require.NoError(t, err)
	assert.False(t, grew)
	require.Equal(t, 8, c.Width())

	require.Len(t, c.Units(), 4)
	require.Len(t, c.Kinds(), 12)
}

func TestCatalogDuplicates(t *testing.T) {
	c, err := NewCatalog(Builtin)
	require.NoError(t, err)

	_, err = c.Add(NewUnit("again", Scalar[int32]("int32")))
	require.ErrorIs(t, err, ErrDuplicateKind)

	_, err = c.Add(NewUnit("self", Scalar[int64]("x"), Scalar[uint64]("x")))
	require.ErrorIs(t, err, ErrDuplicateKind)

	// rejected units leave no trace
	require.Equal(t, 4, c.Width())
	_, err = c.Lookup("x")
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = NewCatalog(Builtin, Builtin)
	require.ErrorIs(t, err, ErrDuplicateKind)
}

func TestCatalogLookup(t *testing.T) {
	c, err := NewCatalog(Builtin)
	require.NoError(t, err)

	d, err := c.Lookup("float32")
	require.NoError(t, err)
	require.Equal(t, 4, d.Size())
	require.Equal(t, Float32, d)

	_, err = c.Lookup("float128")
	require.ErrorIs(t, err, ErrUnknownKind)

	names := make([]string, 0)
	for _, k := range c.Kinds() {
		names = append(names, k.Name())
	}
	require.Equal(t, []string{"bool", "int8", "byte", "int16", "uint16", "int32", "uint32", "float32"}, names)
}

func TestCatalogConcurrentReads(t *testing.T) {
	c, err := NewCatalog(Builtin)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 0 {
				_, _ = c.Add(NewUnit("wide", Scalar[int64]("i64")))
				return
			}
			_ = c.Width()
			_, _ = c.Lookup("int32")
			_ = c.Kinds()
		}(i)
	}
	wg.Wait()
	require.Equal(t, 8, c.Width())
}
