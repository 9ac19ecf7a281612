// Package prim is the host-side mirror of the rectangle and circle
// shader pipelines: the same camera transform, vertex expansion and
// fragment resolution expressed as pure functions, plus the byte
// layout of the GPU-facing records. The renderer packs its buffers
// through this package; picking and the tests evaluate the stages
// directly.
package prim

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes the orthographic 2D view shared by both pipelines
// for the duration of a draw.
type Camera struct {
	Position mgl32.Vec2
	Aspect   float32
	Zoom     float32
}

// WorldToClip maps a world-space point to clip space. Depth is fixed
// at zero and w at one; layering is decided by submission order alone.
// Zero aspect or zoom is not guarded against and propagates as
// Inf/NaN, exactly as on the GPU.
func (c Camera) WorldToClip(p mgl32.Vec2) mgl32.Vec4 {
	view := p.Sub(c.Position).Mul(c.Zoom)
	return mgl32.Vec4{view.X() / c.Aspect, view.Y(), 0.0, 1.0}
}
