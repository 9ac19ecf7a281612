package atomsim

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"golang.org/x/image/colornames"
)

type Element int

const (
	Hydrogen Element = iota
	Oxygen
	elementCount
)

func rgbVec(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
	}
}

func (e Element) Color() mgl32.Vec3 {
	switch e {
	case Oxygen:
		return rgbVec(colornames.Red)
	default:
		return rgbVec(colornames.White)
	}
}

func (e Element) Mass() float32 {
	switch e {
	case Oxygen:
		return 16.0
	default:
		return 1.0
	}
}

// ElectronsToShare is how many covalent bonds a lone atom of the
// element can form: one for hydrogen, two for oxygen.
func (e Element) ElectronsToShare() int {
	switch e {
	case Oxygen:
		return 2
	default:
		return 1
	}
}

func (e Element) String() string {
	switch e {
	case Hydrogen:
		return "Hydrogen"
	case Oxygen:
		return "Oxygen"
	default:
		return "Unknown"
	}
}

// Particle is one atom, possibly with other atoms fused onto it. The
// id stays stable across fusions and deletions so selection can follow
// a particle by identity rather than by slice index.
type Particle struct {
	ID       uuid.UUID
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Base     Element
	Attached [elementCount]uint8
}

func NewParticle(position, velocity mgl32.Vec2, base Element) Particle {
	return Particle{
		ID:       uuid.New(),
		Position: position,
		Velocity: velocity,
		Base:     base,
	}
}

func (p *Particle) Mass() float32 {
	mass := p.Base.Mass()
	for e := Element(0); e < elementCount; e++ {
		mass += e.Mass() * float32(p.Attached[e])
	}
	return mass
}

// Radius keeps the disk area proportional to the particle mass.
func (p *Particle) Radius() float32 {
	return float32(math.Sqrt(float64(p.Mass()) / math.Pi))
}

// Color averages the base element color with every attached atom's
// color, one share each.
func (p *Particle) Color() mgl32.Vec3 {
	c := p.Base.Color()
	count := 1
	for e := Element(0); e < elementCount; e++ {
		n := int(p.Attached[e])
		c = c.Add(e.Color().Mul(float32(n)))
		count += n
	}
	return c.Mul(1.0 / float32(count))
}

// ElectronsToShare is how many of the base element's electrons are not
// yet consumed by attached atoms.
func (p *Particle) ElectronsToShare() int {
	electrons := p.Base.ElectronsToShare()
	for e := Element(0); e < elementCount; e++ {
		electrons -= e.ElectronsToShare() * int(p.Attached[e])
	}
	if electrons < 0 {
		return 0
	}
	return electrons
}

const (
	maxCollisionIterations = 100

	// relative kinetic energy above which two overlapping particles
	// with free electrons fuse instead of bouncing
	fusionEnergyThreshold = 400.0
)

// StepParticles advances the simulation by dt seconds: resolves
// particle-particle contacts (elastic bounce, or fusion when the
// impact is energetic enough and both sides have free electrons),
// bounces particles off walls, then integrates positions. The second
// result is false when the solver hit its iteration cap and the state
// may be unstable.
func StepParticles(particles []Particle, walls []Wall, dt float32) ([]Particle, bool) {
	settled := false

	for iter := 0; iter < maxCollisionIterations && !settled; iter++ {
		wasCollision := false
		var toDelete []int

		for i := 0; i < len(particles); i++ {
			for j := i + 1; j < len(particles); j++ {
				distance := particles[i].Position.Sub(particles[j].Position).Len()
				if distance >= particles[i].Radius()+particles[j].Radius() {
					continue
				}
				relVel := particles[i].Velocity.Sub(particles[j].Velocity)
				dir := particles[i].Position.Sub(particles[j].Position).Mul(1.0 / distance)
				if relVel.Dot(dir) >= 0 {
					// already separating
					continue
				}

				relativeKineticEnergy := particles[i].Velocity.Mul(0.5 * particles[i].Mass()).
					Sub(particles[j].Velocity.Mul(0.5 * particles[j].Mass())).
					LenSqr() * 2.0

				if relativeKineticEnergy > fusionEnergyThreshold &&
					particles[i].ElectronsToShare() != 0 &&
					particles[j].ElectronsToShare() != 0 {
					fuseParticles(particles, i, j)
					toDelete = append(toDelete, i)
				} else {
					wasCollision = true
					bounceParticles(particles, i, j, distance)
				}
			}

			bounceOffWalls(&particles[i], walls, &wasCollision)
		}

		for k := len(toDelete) - 1; k >= 0; k-- {
			particles = append(particles[:toDelete[k]], particles[toDelete[k]+1:]...)
		}

		if !wasCollision {
			settled = true
		}
	}

	for i := range particles {
		particles[i].Position = particles[i].Position.Add(particles[i].Velocity.Mul(dt))
	}

	return particles, settled
}

// fuseParticles merges particle i into particle j. The heavier donor
// of bonds becomes the new base; total kinetic energy is preserved in
// the survivor's speed.
func fuseParticles(particles []Particle, i, j int) {
	baseElectronsI := particles[i].Base.ElectronsToShare()
	baseElectronsJ := particles[j].Base.ElectronsToShare()

	iKinetic := 0.5 * particles[i].Mass() * particles[i].Velocity.LenSqr()
	jKinetic := 0.5 * particles[j].Mass() * particles[j].Velocity.LenSqr()
	finalSpeed := float32(math.Sqrt(float64(
		(iKinetic + jKinetic) / (particles[i].Mass() + particles[j].Mass()) * 2.0,
	)))

	if baseElectronsI > baseElectronsJ {
		jBase := particles[j].Base
		particles[j].Attached[jBase]++
		particles[j].Base = particles[i].Base
	} else {
		particles[j].Attached[particles[i].Base]++
	}
	for e := Element(0); e < elementCount; e++ {
		particles[j].Attached[e] += particles[i].Attached[e]
	}

	particles[j].Velocity = particles[j].Velocity.Normalize().Mul(finalSpeed)
}

// bounceParticles resolves an elastic two-body collision.
// https://en.wikipedia.org/wiki/Elastic_collision#Two-dimensional_collision_with_two_moving_objects
func bounceParticles(particles []Particle, i, j int, distance float32) {
	m1 := particles[i].Mass()
	m2 := particles[j].Mass()
	v1 := particles[i].Velocity
	v2 := particles[j].Velocity
	x1 := particles[i].Position
	x2 := particles[j].Position

	particles[i].Velocity = v1.Sub(
		x1.Sub(x2).Mul((2.0 * m2 / (m1 + m2)) * (v1.Sub(v2).Dot(x1.Sub(x2)) / (distance * distance))))
	particles[j].Velocity = v2.Sub(
		x2.Sub(x1).Mul((2.0 * m1 / (m1 + m2)) * (v2.Sub(v1).Dot(x2.Sub(x1)) / (distance * distance))))
}

// bounceOffWalls reflects the particle velocity off the closest point
// of any wall it overlaps, if it is still moving into the wall.
func bounceOffWalls(p *Particle, walls []Wall, wasCollision *bool) {
	for _, wall := range walls {
		rel := p.Position.Sub(wall.Position)
		closest := mgl32.Vec2{
			mgl32.Clamp(rel.X(), -wall.Size.X()*0.5, wall.Size.X()*0.5),
			mgl32.Clamp(rel.Y(), -wall.Size.Y()*0.5, wall.Size.Y()*0.5),
		}
		if closest.Sub(rel).LenSqr() >= p.Radius()*p.Radius() {
			continue
		}
		normal := closest.Sub(rel).Normalize()
		if normal.Dot(p.Velocity) > 0 {
			*wasCollision = true
			p.Velocity = p.Velocity.Sub(normal.Mul(2.0 * p.Velocity.Dot(normal)))
		}
	}
}
