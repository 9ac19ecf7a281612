package atomsim

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera2D is the orthographic view the renderer projects through.
// Aspect lives on the window state, not here: it follows the
// framebuffer and is folded in when the GPU camera block is packed.
type Camera2D struct {
	Position mgl32.Vec2
	Zoom     float32
}

// ScreenToWorld maps a cursor position in window pixels to world
// space, the inverse of the shader's camera transform.
func (c *Camera2D) ScreenToWorld(x, y float64, width, height int) mgl32.Vec2 {
	aspect := float32(width) / float32(height)
	ndcX := (float32(x)/float32(width))*2.0 - 1.0
	ndcY := -((float32(y)/float32(height))*2.0 - 1.0)
	return mgl32.Vec2{
		ndcX*aspect/c.Zoom + c.Position.X(),
		ndcY/c.Zoom + c.Position.Y(),
	}
}

type CameraModule struct {
	Zoom float32
}

func (mod CameraModule) Install(app *App, cmd *Commands) {
	zoom := mod.Zoom
	if zoom == 0 {
		zoom = 0.25
	}
	cmd.AddResources(&Camera2D{Zoom: zoom})

	app.UseSystem(
		System(cameraControlSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(selectionSystem).
			InStage(Update),
	)
}

// cameraControlSystem pans with the right mouse button held and zooms
// with the scroll wheel in 0.9x steps.
func cameraControlSystem(input *Input, cam *Camera2D, window *WindowState) {
	if input.MousePressed[MouseButtonRight] {
		aspect := window.Aspect()
		cam.Position[0] -= float32(input.MouseDeltaX) / cam.Zoom / float32(window.Width) * 2.0 * aspect
		cam.Position[1] += float32(input.MouseDeltaY) / cam.Zoom / float32(window.Height) * 2.0
	}

	if input.ScrollY < 0 {
		cam.Zoom *= 0.9
	} else if input.ScrollY > 0 {
		cam.Zoom /= 0.9
	}
}

// selectionSystem picks the object under the cursor on a left click.
func selectionSystem(input *Input, cam *Camera2D, window *WindowState, scene *Scene, log Logger) {
	if !input.MouseJustPressed[MouseButtonLeft] {
		return
	}

	world := cam.ScreenToWorld(input.MouseX, input.MouseY, window.Width, window.Height)
	if !scene.PickAt(world) {
		return
	}

	if i := scene.SelectedParticleIndex(); i >= 0 {
		p := &scene.Particles[i]
		log.Infof("selected particle %s: element=%s mass=%.2f radius=%.2f position=(%.2f, %.2f) velocity=(%.2f, %.2f)",
			p.ID, p.Base, p.Mass(), p.Radius(),
			p.Position.X(), p.Position.Y(), p.Velocity.X(), p.Velocity.Y())
	} else if scene.SelectedWall >= 0 {
		wall := scene.Walls[scene.SelectedWall]
		log.Infof("selected wall %d: position=(%.2f, %.2f) size=(%.2f, %.2f)",
			scene.SelectedWall, wall.Position.X(), wall.Position.Y(), wall.Size.X(), wall.Size.Y())
	}
}
