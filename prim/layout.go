package prim

import (
	"encoding/binary"
	"math"
)

// GPU-side record sizes in bytes. The camera uniform block and both
// storage records follow WGSL layout rules: vec2<f32> aligns to 8,
// vec3<f32> to 16, and a struct rounds its stride up to its largest
// member alignment.
const (
	// CameraUniformSize is position at 0, aspect at 8, zoom at 12:
	// one 16-byte-aligned block.
	CameraUniformSize = 16

	// RectangleStride is position at 0, color at 16, size at 32,
	// tail padding to 48.
	RectangleStride = 48

	// CircleStride is position at 0, color at 16, radius at 28.
	CircleStride = 32
)

func appendF32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

func appendPad(dst []byte, n int) []byte {
	return append(dst, make([]byte, n)...)
}

// AppendCamera packs cam as the group 0 binding 0 uniform block.
func AppendCamera(dst []byte, cam Camera) []byte {
	dst = appendF32(dst, cam.Position.X())
	dst = appendF32(dst, cam.Position.Y())
	dst = appendF32(dst, cam.Aspect)
	dst = appendF32(dst, cam.Zoom)
	return dst
}

// AppendRectangle packs one record of the group 1 binding 0 storage
// array of the rectangle pipeline.
func AppendRectangle(dst []byte, r Rectangle) []byte {
	dst = appendF32(dst, r.Position.X())
	dst = appendF32(dst, r.Position.Y())
	dst = appendPad(dst, 8)
	dst = appendF32(dst, r.Color.X())
	dst = appendF32(dst, r.Color.Y())
	dst = appendF32(dst, r.Color.Z())
	dst = appendPad(dst, 4)
	dst = appendF32(dst, r.Size.X())
	dst = appendF32(dst, r.Size.Y())
	dst = appendPad(dst, 8)
	return dst
}

// AppendCircle packs one record of the group 1 binding 0 storage
// array of the circle pipeline. The radius fills the slot right after
// the color, so the record needs no tail padding.
func AppendCircle(dst []byte, c Circle) []byte {
	dst = appendF32(dst, c.Position.X())
	dst = appendF32(dst, c.Position.Y())
	dst = appendPad(dst, 8)
	dst = appendF32(dst, c.Color.X())
	dst = appendF32(dst, c.Color.Y())
	dst = appendF32(dst, c.Color.Z())
	dst = appendF32(dst, c.Radius)
	return dst
}
