package prim

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexOutput is what the vertex stages hand to the rasterizer: a
// clip-space position, the instance index (flat, constant across the
// primitive) and the quad-local UV in [-1,1]^2, the only interpolated
// value.
type VertexOutput struct {
	ClipPosition mgl32.Vec4
	Instance     uint32
	UV           mgl32.Vec2
}

// CornerUV decodes one corner of the unit quad from a vertex index:
// bit 0 selects the X sign, bit 1 the Y sign, so indices 0..3 yield
// (-1,-1), (1,-1), (-1,1), (1,1) in triangle-strip order. The draw
// call must submit exactly these four vertices per instance.
func CornerUV(vertexIndex uint32) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(vertexIndex&1)*2.0 - 1.0,
		float32((vertexIndex>>1)&1)*2.0 - 1.0,
	}
}

// RectangleVertex expands corner vertexIndex of instance i into clip
// space. The quad spans +/-Size/2 around the instance position.
func RectangleVertex(cam Camera, rectangles []Rectangle, vertexIndex, i uint32) VertexOutput {
	uv := CornerUV(vertexIndex)
	r := rectangles[i]
	world := mgl32.Vec2{
		uv.X() * r.Size.X() * 0.5,
		uv.Y() * r.Size.Y() * 0.5,
	}.Add(r.Position)
	return VertexOutput{
		ClipPosition: cam.WorldToClip(world),
		Instance:     i,
		UV:           uv,
	}
}

// CircleVertex expands corner vertexIndex of instance i into clip
// space. UV already spans +/-1, so the bounding quad uses the full
// radius as its half extent, a side length of 2*radius.
func CircleVertex(cam Camera, circles []Circle, vertexIndex, i uint32) VertexOutput {
	uv := CornerUV(vertexIndex)
	c := circles[i]
	world := uv.Mul(c.Radius).Add(c.Position)
	return VertexOutput{
		ClipPosition: cam.WorldToClip(world),
		Instance:     i,
		UV:           uv,
	}
}

// RectangleFragment resolves the color of one covered pixel: the
// stored instance color at full opacity, no blending or gamma.
func RectangleFragment(rectangles []Rectangle, out VertexOutput) mgl32.Vec4 {
	c := rectangles[out.Instance].Color
	return mgl32.Vec4{c.X(), c.Y(), c.Z(), 1.0}
}

// CircleFragment resolves the color of one covered pixel. The second
// result is false when the pixel lies outside the unit disk in UV
// space and the fragment is discarded, leaving the framebuffer
// untouched.
func CircleFragment(circles []Circle, out VertexOutput) (mgl32.Vec4, bool) {
	if out.UV.Dot(out.UV) > 1.0 {
		return mgl32.Vec4{}, false
	}
	c := circles[out.Instance].Color
	return mgl32.Vec4{c.X(), c.Y(), c.Z(), 1.0}, true
}
