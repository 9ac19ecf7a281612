package atomsim

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowModule opens the glfw window and brings up the wgpu device and
// swapchain for it. Must be installed before any module that renders.
type WindowModule struct {
	Width  int
	Height int
	Title  string
}

type WindowState struct {
	windowGlfw *glfw.Window
	Width      int
	Height     int

	// accumulated by the glfw scroll callback, drained by the input
	// system once per frame
	scrollY float64
}

// Aspect is the framebuffer width over height ratio the camera
// transform divides by.
func (s *WindowState) Aspect() float32 {
	return float32(s.Width) / float32(s.Height)
}

type GpuState struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

func (mod WindowModule) Install(app *App, cmd *Commands) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(mod.Width, mod.Height, mod.Title, nil, nil)
	if err != nil {
		panic(err)
	}

	windowState := &WindowState{
		windowGlfw: win,
		Width:      mod.Width,
		Height:     mod.Height,
	}
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		windowState.scrollY += yoff
	})

	gpuState := createGpuState(windowState)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(Prelude),
	)

	cmd.AddResources(windowState, gpuState)
}

func createGpuState(s *WindowState) *GpuState {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	// wraps the GLFW window into a wgpu surface.
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(s.windowGlfw))
	// finds a suitable GPU (discrete GPU preferred)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	// allocates the device and command queue
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Main Device",
		RequiredFeatures: nil,
		RequiredLimits:   nil,
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	// defines how the swapchain behaves (size, format, vsync)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(s.Width),
		Height:      uint32(s.Height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}

	surface.Configure(adapter, device, &surfaceConfig)

	return &GpuState{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
	}
}

// windowEventsSystem pumps glfw events, reconfigures the swapchain on
// resize and quits the app when the window is closed.
func windowEventsSystem(cmd *Commands, s *WindowState, gpu *GpuState) {
	if s.windowGlfw.ShouldClose() {
		cmd.Quit()
		return
	}
	glfw.PollEvents()

	w, h := s.windowGlfw.GetFramebufferSize()
	if (w != s.Width || h != s.Height) && w > 0 && h > 0 {
		s.Width = w
		s.Height = h
		gpu.surfaceConfig.Width = uint32(w)
		gpu.surfaceConfig.Height = uint32(h)
		gpu.surface.Configure(gpu.adapter, gpu.device, gpu.surfaceConfig)
	}
}
