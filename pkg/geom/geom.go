// Package geom contributes the value kinds of a 2D/3D rendering host:
// vectors, colors and rectangles. Fields are laid out consecutively in
// declaration order, little-endian, with no padding.
package geom

import (
	"encoding/binary"
	"math"

	"github.com/rawbytedev/varcell"
)

type Vec2 struct{ X, Y float32 }

type Vec3 struct{ X, Y, Z float32 }

// Vec4 doubles as a quaternion.
type Vec4 struct{ X, Y, Z, W float32 }

// Color is 8-bit RGBA.
type Color struct{ R, G, B, A uint8 }

// Rect is an axis-aligned rectangle given by two corners.
type Rect struct{ Min, Max Vec2 }

const (
	colorSize = 4
	vec2Size  = 2 * 4
	vec3Size  = 3 * 4
	vec4Size  = 4 * 4
	rectSize  = 2 * vec2Size
)

// Width is the widest kind of this unit, in bytes.
const Width = max(colorSize, vec2Size, vec3Size, vec4Size, rectSize)

var KindVec2 = varcell.NewKind("vec2", vec2Size,
	func(v Vec2) varcell.Bits { return putFloats(v.X, v.Y) },
	func(b varcell.Bits) Vec2 { return Vec2{getFloat(b, 0), getFloat(b, 1)} },
)

var KindVec3 = varcell.NewKind("vec3", vec3Size,
	func(v Vec3) varcell.Bits { return putFloats(v.X, v.Y, v.Z) },
	func(b varcell.Bits) Vec3 { return Vec3{getFloat(b, 0), getFloat(b, 1), getFloat(b, 2)} },
)

var KindVec4 = varcell.NewKind("vec4", vec4Size,
	func(v Vec4) varcell.Bits { return putFloats(v.X, v.Y, v.Z, v.W) },
	func(b varcell.Bits) Vec4 {
		return Vec4{getFloat(b, 0), getFloat(b, 1), getFloat(b, 2), getFloat(b, 3)}
	},
)

var KindColor = varcell.NewKind("color", colorSize,
	func(v Color) (b varcell.Bits) {
		b[0], b[1], b[2], b[3] = v.R, v.G, v.B, v.A
		return b
	},
	func(b varcell.Bits) Color { return Color{b[0], b[1], b[2], b[3]} },
)

var KindRect = varcell.NewKind("rect", rectSize,
	func(v Rect) varcell.Bits { return putFloats(v.Min.X, v.Min.Y, v.Max.X, v.Max.Y) },
	func(b varcell.Bits) Rect {
		return Rect{
			Min: Vec2{getFloat(b, 0), getFloat(b, 1)},
			Max: Vec2{getFloat(b, 2), getFloat(b, 3)},
		}
	},
)

var Unit = varcell.NewUnit("geom", KindVec2, KindVec3, KindVec4, KindColor, KindRect)

// Cell holds any built-in or geometry kind.
type Cell = varcell.Cell[[max(varcell.BuiltinWidth, Width)]byte]

func putFloats(fs ...float32) (b varcell.Bits) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(f))
	}
	return b
}

func getFloat(b varcell.Bits, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}
