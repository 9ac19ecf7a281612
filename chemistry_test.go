package atomsim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestElementProperties(t *testing.T) {
	if Hydrogen.Mass() != 1 || Oxygen.Mass() != 16 {
		t.Errorf("Unexpected element masses: H=%f O=%f", Hydrogen.Mass(), Oxygen.Mass())
	}
	if Hydrogen.ElectronsToShare() != 1 || Oxygen.ElectronsToShare() != 2 {
		t.Errorf("Unexpected electron counts: H=%d O=%d", Hydrogen.ElectronsToShare(), Oxygen.ElectronsToShare())
	}
}

func TestParticleMassAndRadius(t *testing.T) {
	water := NewParticle(mgl32.Vec2{}, mgl32.Vec2{}, Oxygen)
	water.Attached[Hydrogen] = 2

	if got := water.Mass(); got != 18 {
		t.Errorf("Expected water mass 18, got %f", got)
	}
	want := float32(math.Sqrt(18.0 / math.Pi))
	if got := water.Radius(); mgl32.Abs(got-want) > 1e-6 {
		t.Errorf("Expected radius %f, got %f", want, got)
	}
	if got := water.ElectronsToShare(); got != 0 {
		t.Errorf("Water should have no free electrons, got %d", got)
	}
}

func TestParticleColorBlends(t *testing.T) {
	p := NewParticle(mgl32.Vec2{}, mgl32.Vec2{}, Oxygen)
	p.Attached[Hydrogen] = 1

	// average of red (oxygen) and white (hydrogen)
	want := mgl32.Vec3{1, 0.5, 0.5}
	got := p.Color()
	for i := 0; i < 3; i++ {
		if mgl32.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("Expected color %v, got %v", want, got)
		}
	}
}

func TestElasticCollisionSwapsVelocities(t *testing.T) {
	particles := []Particle{
		NewParticle(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, Hydrogen),
		NewParticle(mgl32.Vec2{1, 0}, mgl32.Vec2{-1, 0}, Hydrogen),
	}

	particles, settled := StepParticles(particles, nil, 0)
	if !settled {
		t.Fatal("Solver should settle")
	}
	if len(particles) != 2 {
		t.Fatalf("Slow collision must not fuse, got %d particles", len(particles))
	}

	// equal masses head-on swap velocities
	if particles[0].Velocity != (mgl32.Vec2{-1, 0}) {
		t.Errorf("Expected first velocity (-1,0), got %v", particles[0].Velocity)
	}
	if particles[1].Velocity != (mgl32.Vec2{1, 0}) {
		t.Errorf("Expected second velocity (1,0), got %v", particles[1].Velocity)
	}
}

func TestElasticCollisionConservesMomentum(t *testing.T) {
	particles := []Particle{
		NewParticle(mgl32.Vec2{0, 0}, mgl32.Vec2{0.2, 0.1}, Oxygen),
		NewParticle(mgl32.Vec2{1.5, 0.5}, mgl32.Vec2{-0.3, 0}, Hydrogen),
	}
	momentumBefore := particles[0].Velocity.Mul(particles[0].Mass()).
		Add(particles[1].Velocity.Mul(particles[1].Mass()))

	particles, _ = StepParticles(particles, nil, 0)
	if len(particles) != 2 {
		t.Fatalf("Expected 2 particles, got %d", len(particles))
	}

	momentumAfter := particles[0].Velocity.Mul(particles[0].Mass()).
		Add(particles[1].Velocity.Mul(particles[1].Mass()))
	if momentumBefore.Sub(momentumAfter).Len() > 1e-4 {
		t.Errorf("Momentum not conserved: before %v, after %v", momentumBefore, momentumAfter)
	}
}

func TestFastImpactFuses(t *testing.T) {
	particles := []Particle{
		NewParticle(mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}, Oxygen),
		NewParticle(mgl32.Vec2{2, 0}, mgl32.Vec2{-30, 0}, Hydrogen),
	}

	particles, _ = StepParticles(particles, nil, 0)
	if len(particles) != 1 {
		t.Fatalf("Expected fusion into 1 particle, got %d", len(particles))
	}

	merged := particles[0]
	if merged.Base != Oxygen {
		t.Errorf("Expected oxygen base, got %v", merged.Base)
	}
	if merged.Attached[Hydrogen] != 1 {
		t.Errorf("Expected 1 attached hydrogen, got %d", merged.Attached[Hydrogen])
	}
	if merged.Mass() != 17 {
		t.Errorf("Expected mass 17, got %f", merged.Mass())
	}

	// total kinetic energy carried over into the survivor's speed
	wantSpeed := float32(math.Sqrt(0.5 * 1 * 900 / 17 * 2))
	if mgl32.Abs(merged.Velocity.Len()-wantSpeed) > 1e-4 {
		t.Errorf("Expected speed %f, got %f", wantSpeed, merged.Velocity.Len())
	}
}

func TestWallBounceReflects(t *testing.T) {
	walls := []Wall{
		{Position: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{2, 2}},
	}
	particles := []Particle{
		NewParticle(mgl32.Vec2{1.2, 0}, mgl32.Vec2{-5, 0}, Hydrogen),
	}

	particles, _ = StepParticles(particles, walls, 0)
	if particles[0].Velocity != (mgl32.Vec2{5, 0}) {
		t.Errorf("Expected reflected velocity (5,0), got %v", particles[0].Velocity)
	}
}

func TestWallIgnoresSeparatingParticle(t *testing.T) {
	walls := []Wall{
		{Position: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{2, 2}},
	}
	particles := []Particle{
		NewParticle(mgl32.Vec2{1.2, 0}, mgl32.Vec2{5, 0}, Hydrogen),
	}

	particles, _ = StepParticles(particles, walls, 0)
	if particles[0].Velocity != (mgl32.Vec2{5, 0}) {
		t.Errorf("Velocity should be untouched, got %v", particles[0].Velocity)
	}
}

func TestStepIntegratesPositions(t *testing.T) {
	particles := []Particle{
		NewParticle(mgl32.Vec2{1, 2}, mgl32.Vec2{3, -4}, Hydrogen),
	}

	particles, settled := StepParticles(particles, nil, 0.5)
	if !settled {
		t.Fatal("Free particle should settle immediately")
	}
	want := mgl32.Vec2{2.5, 0}
	if particles[0].Position.Sub(want).Len() > 1e-6 {
		t.Errorf("Expected position %v, got %v", want, particles[0].Position)
	}
}
