package main

import (
	"github.com/gekko3d/atomsim"
)

func main() {
	atomsim.NewAppBuilder().
		UseModule(
			atomsim.LoggingModule{Prefix: "atomsim"},
			atomsim.WindowModule{Width: 1280, Height: 720, Title: "Atom Simulator"},
			atomsim.TimeModule{},
			atomsim.InputModule{},
			atomsim.CameraModule{Zoom: 0.25},
			atomsim.SimModule{},
			atomsim.RenderModule{},
		).
		Build().
		Run()
}
