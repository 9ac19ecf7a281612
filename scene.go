package atomsim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Wall is a static axis-aligned box particles bounce off of. Rendered
// through the rectangle pipeline.
type Wall struct {
	Position mgl32.Vec2
	Color    mgl32.Vec3
	Size     mgl32.Vec2
}

// Scene owns everything the simulation mutates and the renderer reads.
type Scene struct {
	Particles []Particle
	Walls     []Wall

	// physics steps per frame; zero pauses the simulation
	TimeScale int

	SelectedParticle uuid.UUID
	SelectedWall     int
}

func NewScene() *Scene {
	return &Scene{
		TimeScale:    1,
		SelectedWall: -1,
	}
}

func (s *Scene) ClearSelection() {
	s.SelectedParticle = uuid.Nil
	s.SelectedWall = -1
}

// PickAt selects the object under the given world position: particles
// first (by radius), then walls (by half extent). Returns false when
// nothing was hit; the previous selection is cleared either way.
func (s *Scene) PickAt(world mgl32.Vec2) bool {
	s.ClearSelection()
	for i := range s.Particles {
		p := &s.Particles[i]
		if world.Sub(p.Position).LenSqr() <= p.Radius()*p.Radius() {
			s.SelectedParticle = p.ID
			return true
		}
	}
	for i, wall := range s.Walls {
		rel := world.Sub(wall.Position)
		if mgl32.Abs(rel.X()) <= wall.Size.X()*0.5 && mgl32.Abs(rel.Y()) <= wall.Size.Y()*0.5 {
			s.SelectedWall = i
			return true
		}
	}
	return false
}

// SelectedParticleIndex resolves the selected particle id to its
// current slice index, or -1 when the selection is empty or the
// particle no longer exists (fused away).
func (s *Scene) SelectedParticleIndex() int {
	if s.SelectedParticle == uuid.Nil {
		return -1
	}
	for i := range s.Particles {
		if s.Particles[i].ID == s.SelectedParticle {
			return i
		}
	}
	return -1
}

// WaterBoxScene is the default scene: an oxygen atom and two hydrogen
// atoms, one of them fast enough to fuse, inside a box of four walls.
func WaterBoxScene() *Scene {
	scene := NewScene()

	scene.Particles = []Particle{
		NewParticle(mgl32.Vec2{3.0, 0.0}, mgl32.Vec2{-1.0, 0.0}, Oxygen),
		NewParticle(mgl32.Vec2{-3.0, 0.0}, mgl32.Vec2{0.0, 0.0}, Hydrogen),
		NewParticle(mgl32.Vec2{-6.0, 0.5}, mgl32.Vec2{30.0, 10.0}, Hydrogen),
	}

	wallColor := mgl32.Vec3{0.1, 0.1, 0.1}
	scene.Walls = []Wall{
		{Position: mgl32.Vec2{-15.0, 0.0}, Color: wallColor, Size: mgl32.Vec2{1.0, 16.0}},
		{Position: mgl32.Vec2{15.0, 0.0}, Color: wallColor, Size: mgl32.Vec2{1.0, 16.0}},
		{Position: mgl32.Vec2{0.0, 7.5}, Color: wallColor, Size: mgl32.Vec2{30.0, 1.0}},
		{Position: mgl32.Vec2{0.0, -7.5}, Color: wallColor, Size: mgl32.Vec2{30.0, 1.0}},
	}

	return scene
}
