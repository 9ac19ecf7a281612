package prim

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rectangle is one instance record of the rectangle pipeline: an
// axis-aligned solid-colored quad spanning +/-Size/2 around Position.
// Negative size components flip winding but are not an error.
type Rectangle struct {
	Position mgl32.Vec2
	Color    mgl32.Vec3
	Size     mgl32.Vec2
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle) Contains(p mgl32.Vec2) bool {
	rel := p.Sub(r.Position)
	return mgl32.Abs(rel.X()) <= r.Size.X()*0.5 && mgl32.Abs(rel.Y()) <= r.Size.Y()*0.5
}

// Circle is one instance record of the circle pipeline: a filled disk
// of the given radius around Position.
type Circle struct {
	Position mgl32.Vec2
	Color    mgl32.Vec3
	Radius   float32
}

// Contains reports whether p lies inside the disk.
func (c Circle) Contains(p mgl32.Vec2) bool {
	return p.Sub(c.Position).LenSqr() <= c.Radius*c.Radius
}
