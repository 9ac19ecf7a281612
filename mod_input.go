package atomsim

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	MouseButtonLeft int = iota
	MouseButtonRight
	MouseButtonMiddle
	mouseButtonCount
)

const (
	KeySpace int = iota
	KeyEscape
	KeyComma
	KeyPeriod
	keyCount
)

type Input struct {
	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	ScrollY                  float64

	MousePressed     [mouseButtonCount]bool
	MouseJustPressed [mouseButtonCount]bool

	Pressed     [keyCount]bool
	JustPressed [keyCount]bool

	prevMouse [mouseButtonCount]bool
	prevKeys  [keyCount]bool
}

type InputModule struct{}

func (m InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(input *Input, s *WindowState) {
	mx, my := s.windowGlfw.GetCursorPos()
	input.MouseDeltaX = mx - input.MouseX
	input.MouseDeltaY = my - input.MouseY
	input.MouseX = mx
	input.MouseY = my

	input.ScrollY = s.scrollY
	s.scrollY = 0

	for btn := MouseButtonLeft; btn < mouseButtonCount; btn++ {
		var glfwBtn glfw.MouseButton
		switch btn {
		case MouseButtonLeft:
			glfwBtn = glfw.MouseButtonLeft
		case MouseButtonRight:
			glfwBtn = glfw.MouseButtonRight
		case MouseButtonMiddle:
			glfwBtn = glfw.MouseButtonMiddle
		}

		pressed := s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press
		input.MousePressed[btn] = pressed
		input.MouseJustPressed[btn] = pressed && !input.prevMouse[btn]
		input.prevMouse[btn] = pressed
	}

	for key := KeySpace; key < keyCount; key++ {
		var glfwKey glfw.Key
		switch key {
		case KeySpace:
			glfwKey = glfw.KeySpace
		case KeyEscape:
			glfwKey = glfw.KeyEscape
		case KeyComma:
			glfwKey = glfw.KeyComma
		case KeyPeriod:
			glfwKey = glfw.KeyPeriod
		}

		pressed := s.windowGlfw.GetKey(glfwKey) == glfw.Press
		input.Pressed[key] = pressed
		input.JustPressed[key] = pressed && !input.prevKeys[key]
		input.prevKeys[key] = pressed
	}
}
