package prim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCornerUV(t *testing.T) {
	expected := []mgl32.Vec2{
		{-1, -1},
		{1, -1},
		{-1, 1},
		{1, 1},
	}
	for i, want := range expected {
		assert.Equal(t, want, CornerUV(uint32(i)), "vertex index %d", i)
	}
}

func TestRectangleVertexExtent(t *testing.T) {
	cam := Camera{Position: mgl32.Vec2{0, 0}, Aspect: 1, Zoom: 1}
	rects := []Rectangle{
		{Position: mgl32.Vec2{2, 3}, Size: mgl32.Vec2{4, 6}, Color: mgl32.Vec3{1, 0, 0}},
	}

	// the quad spans +/-size/2 around (2,3), so corners land on
	// (0,0)..(4,6) in clip space
	expected := []mgl32.Vec4{
		{0, 0, 0, 1},
		{4, 0, 0, 1},
		{0, 6, 0, 1},
		{4, 6, 0, 1},
	}
	for v := uint32(0); v < 4; v++ {
		out := RectangleVertex(cam, rects, v, 0)
		assert.Equal(t, expected[v], out.ClipPosition, "vertex %d", v)
		assert.Equal(t, uint32(0), out.Instance)
		assert.Equal(t, CornerUV(v), out.UV)
	}
}

func TestCircleVertexExtent(t *testing.T) {
	cam := Camera{Position: mgl32.Vec2{0, 0}, Aspect: 1, Zoom: 1}
	circles := []Circle{
		{Position: mgl32.Vec2{0, 0}, Radius: 2, Color: mgl32.Vec3{0, 1, 0}},
	}

	// full radius as half extent: the bounding quad spans (-2,-2)..(2,2)
	expected := []mgl32.Vec4{
		{-2, -2, 0, 1},
		{2, -2, 0, 1},
		{-2, 2, 0, 1},
		{2, 2, 0, 1},
	}
	for v := uint32(0); v < 4; v++ {
		out := CircleVertex(cam, circles, v, 0)
		assert.Equal(t, expected[v], out.ClipPosition, "vertex %d", v)
	}
}

func TestCircleFragmentDiscard(t *testing.T) {
	circles := []Circle{
		{Position: mgl32.Vec2{0, 0}, Radius: 2, Color: mgl32.Vec3{0, 1, 0}},
	}

	// dot((0.5,0.5)) = 0.5 <= 1: kept
	color, kept := CircleFragment(circles, VertexOutput{UV: mgl32.Vec2{0.5, 0.5}})
	require.True(t, kept)
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, color)

	// dot((0.8,0.8)) = 1.28 > 1: discarded
	_, kept = CircleFragment(circles, VertexOutput{UV: mgl32.Vec2{0.8, 0.8}})
	assert.False(t, kept)

	// the boundary itself is inside
	_, kept = CircleFragment(circles, VertexOutput{UV: mgl32.Vec2{1, 0}})
	assert.True(t, kept)
}

func TestAspectCorrection(t *testing.T) {
	cam := Camera{Position: mgl32.Vec2{0, 0}, Aspect: 2, Zoom: 1}

	// x is divided by the aspect ratio, y is untouched
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, cam.WorldToClip(mgl32.Vec2{2, 0}))
	assert.Equal(t, mgl32.Vec4{0, 2, 0, 1}, cam.WorldToClip(mgl32.Vec2{0, 2}))
}

func TestCameraPositionAndZoom(t *testing.T) {
	cam := Camera{Position: mgl32.Vec2{1, -1}, Aspect: 1, Zoom: 4}

	// the camera position maps to the origin, offsets scale with zoom
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, cam.WorldToClip(mgl32.Vec2{1, -1}))
	assert.Equal(t, mgl32.Vec4{4, 8, 0, 1}, cam.WorldToClip(mgl32.Vec2{2, 1}))
}

func TestColorPassthrough(t *testing.T) {
	rects := []Rectangle{
		{Color: mgl32.Vec3{0.25, 0.5, 0.75}},
		{Color: mgl32.Vec3{1, 0, 0}},
	}

	// fragment output is the stored color bit for bit, alpha always 1
	assert.Equal(t, mgl32.Vec4{0.25, 0.5, 0.75, 1}, RectangleFragment(rects, VertexOutput{Instance: 0}))
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, RectangleFragment(rects, VertexOutput{Instance: 1}))
}

func TestFlatInstanceIndex(t *testing.T) {
	cam := Camera{Aspect: 1, Zoom: 1}
	rects := []Rectangle{
		{Size: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec2{5, 5}, Size: mgl32.Vec2{2, 2}},
	}

	// every corner of an instance carries the same index
	for v := uint32(0); v < 4; v++ {
		assert.Equal(t, uint32(1), RectangleVertex(cam, rects, v, 1).Instance)
	}
}

func TestStagesAreIdempotent(t *testing.T) {
	cam := Camera{Position: mgl32.Vec2{0.3, -0.7}, Aspect: 1.5, Zoom: 0.25}
	circles := []Circle{
		{Position: mgl32.Vec2{1.1, 2.2}, Radius: 3.3, Color: mgl32.Vec3{0.1, 0.2, 0.3}},
	}

	for v := uint32(0); v < 4; v++ {
		first := CircleVertex(cam, circles, v, 0)
		second := CircleVertex(cam, circles, v, 0)
		require.Equal(t, first, second, "vertex stage, corner %d", v)
	}

	out := VertexOutput{UV: mgl32.Vec2{0.6, -0.2}, Instance: 0}
	c1, k1 := CircleFragment(circles, out)
	c2, k2 := CircleFragment(circles, out)
	require.Equal(t, c1, c2)
	require.Equal(t, k1, k2)
}

func TestContains(t *testing.T) {
	r := Rectangle{Position: mgl32.Vec2{2, 3}, Size: mgl32.Vec2{4, 6}}
	assert.True(t, r.Contains(mgl32.Vec2{2, 3}))
	assert.True(t, r.Contains(mgl32.Vec2{4, 6}))
	assert.False(t, r.Contains(mgl32.Vec2{4.1, 3}))

	c := Circle{Position: mgl32.Vec2{1, 1}, Radius: 2}
	assert.True(t, c.Contains(mgl32.Vec2{1, 2.9}))
	assert.False(t, c.Contains(mgl32.Vec2{3.1, 1}))
}
