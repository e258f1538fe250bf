package maincmd

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/rawbytedev/varcell"
	"github.com/rawbytedev/varcell/pkg/geom"
	"github.com/rawbytedev/varcell/pkg/half"
	"github.com/rawbytedev/varcell/pkg/wide"
)

// storage links every unit shipped with the module.
type storage = [max(varcell.BuiltinWidth, half.Width, wide.Width, geom.Width)]byte

type cell = varcell.Cell[storage]

// codec converts between text and a cell for one kind.
type codec struct {
	parse  func(string) (cell, error)
	format func(cell) string
}

func newCatalog() (*varcell.Catalog, error) {
	return varcell.NewCatalog(varcell.Builtin, half.Unit, wide.Unit, geom.Unit)
}

var codecs = map[string]codec{
	varcell.Bool.Name():    boolCodec(),
	varcell.Int8.Name():    signedCodec(varcell.Int8),
	varcell.Byte.Name():    unsignedCodec(varcell.Byte),
	varcell.Int16.Name():   signedCodec(varcell.Int16),
	varcell.Uint16.Name():  unsignedCodec(varcell.Uint16),
	varcell.Int32.Name():   signedCodec(varcell.Int32),
	varcell.Uint32.Name():  unsignedCodec(varcell.Uint32),
	varcell.Float32.Name(): floatCodec(varcell.Float32),
	wide.Int64.Name():      signedCodec(wide.Int64),
	wide.Uint64.Name():     unsignedCodec(wide.Uint64),
	wide.Float64.Name():    floatCodec(wide.Float64),
	half.Float16.Name():    float16Codec(),
	geom.KindVec2.Name():   vectorCodec(geom.KindVec2, 2, toVec2),
	geom.KindVec3.Name():   vectorCodec(geom.KindVec3, 3, toVec3),
	geom.KindVec4.Name():   vectorCodec(geom.KindVec4, 4, toVec4),
	geom.KindRect.Name():   vectorCodec(geom.KindRect, 4, toRect),
	geom.KindColor.Name():  colorCodec(),
}

func toVec2(f []float32) geom.Vec2 { return geom.Vec2{X: f[0], Y: f[1]} }
func toVec3(f []float32) geom.Vec3 { return geom.Vec3{X: f[0], Y: f[1], Z: f[2]} }
func toVec4(f []float32) geom.Vec4 { return geom.Vec4{X: f[0], Y: f[1], Z: f[2], W: f[3]} }

func toRect(f []float32) geom.Rect {
	return geom.Rect{Min: geom.Vec2{X: f[0], Y: f[1]}, Max: geom.Vec2{X: f[2], Y: f[3]}}
}

func boolCodec() codec {
	return codec{
		parse: func(s string) (cell, error) {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return cell{}, err
			}
			return varcell.From[storage](varcell.Bool, b), nil
		},
		format: func(c cell) string { return strconv.FormatBool(varcell.As(c, varcell.Bool)) },
	}
}

func signedCodec[T constraints.Signed](k varcell.Kind[T]) codec {
	return codec{
		parse: func(s string) (cell, error) {
			n, err := strconv.ParseInt(s, 0, k.Size()*8)
			if err != nil {
				return cell{}, err
			}
			return varcell.From[storage](k, T(n)), nil
		},
		format: func(c cell) string { return strconv.FormatInt(int64(varcell.As(c, k)), 10) },
	}
}

func unsignedCodec[T constraints.Unsigned](k varcell.Kind[T]) codec {
	return codec{
		parse: func(s string) (cell, error) {
			n, err := strconv.ParseUint(s, 0, k.Size()*8)
			if err != nil {
				return cell{}, err
			}
			return varcell.From[storage](k, T(n)), nil
		},
		format: func(c cell) string { return strconv.FormatUint(uint64(varcell.As(c, k)), 10) },
	}
}

func floatCodec[T constraints.Float](k varcell.Kind[T]) codec {
	return codec{
		parse: func(s string) (cell, error) {
			f, err := strconv.ParseFloat(s, k.Size()*8)
			if err != nil {
				return cell{}, err
			}
			return varcell.From[storage](k, T(f)), nil
		},
		format: func(c cell) string {
			return strconv.FormatFloat(float64(varcell.As(c, k)), 'g', -1, k.Size()*8)
		},
	}
}

func float16Codec() codec {
	return codec{
		parse: func(s string) (cell, error) {
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return cell{}, err
			}
			return half.FromFloat32[storage](float32(f)), nil
		},
		format: func(c cell) string {
			return strconv.FormatFloat(float64(half.AsFloat32(c)), 'g', -1, 32)
		},
	}
}

// vector kinds are written as comma separated components: "1,2.5,-3"
func vectorCodec[T any](k varcell.Kind[T], n int, build func([]float32) T) codec {
	return codec{
		parse: func(s string) (cell, error) {
			parts := strings.Split(s, ",")
			if len(parts) != n {
				return cell{}, fmt.Errorf("%s: expected %d components, got %d", k.Name(), n, len(parts))
			}
			fs := make([]float32, n)
			for i, p := range parts {
				f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
				if err != nil {
					return cell{}, err
				}
				fs[i] = float32(f)
			}
			return varcell.From[storage](k, build(fs)), nil
		},
		format: func(c cell) string { return fmt.Sprintf("%+v", varcell.As(c, k)) },
	}
}

func colorCodec() codec {
	return codec{
		parse: func(s string) (cell, error) {
			parts := strings.Split(s, ",")
			if len(parts) != 4 {
				return cell{}, fmt.Errorf("%s: expected 4 components, got %d", geom.KindColor.Name(), len(parts))
			}
			var rgba [4]uint8
			for i, p := range parts {
				n, err := strconv.ParseUint(strings.TrimSpace(p), 0, 8)
				if err != nil {
					return cell{}, err
				}
				rgba[i] = uint8(n)
			}
			return varcell.From[storage](geom.KindColor, geom.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}), nil
		},
		format: func(c cell) string { return fmt.Sprintf("%+v", varcell.As(c, geom.KindColor)) },
	}
}
