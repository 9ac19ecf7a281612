package atomsim

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/atomsim/prim"
	"github.com/gekko3d/atomsim/shaders"
)

// RenderModule draws the scene with two instanced pipelines: every
// wall goes through the rectangle shader, every particle through the
// circle shader. One 4-vertex triangle-strip draw per pipeline, one
// instance per record in the storage buffer.
type RenderModule struct {
	ClearColor wgpu.Color
}

// primitivePipeline is the per-shader half of the render state: the
// pipeline, its camera bind group, and a grow-on-demand storage buffer
// holding the packed instance records.
type primitivePipeline struct {
	label           string
	pipeline        *wgpu.RenderPipeline
	cameraBindGroup *wgpu.BindGroup

	instanceBuffer    *wgpu.Buffer
	instanceBindGroup *wgpu.BindGroup
	instanceCap       uint64

	instanceBytes []byte
	instanceCount uint32
}

type renderState struct {
	cameraBuffer *wgpu.Buffer
	cameraBytes  []byte
	camera       prim.Camera

	rectangles primitivePipeline
	circles    primitivePipeline

	clearColor wgpu.Color
}

func (mod RenderModule) Install(app *App, cmd *Commands) {
	gpu := resourceOf[GpuState](app)

	clear := mod.ClearColor
	if clear == (wgpu.Color{}) {
		clear = wgpu.Color{R: 0.0, G: 0.0, B: 0.0, A: 1.0}
	}
	rState := createRenderState(gpu, clear)

	app.UseSystem(
		System(buildRenderInstances).
			InStage(PreRender),
	)
	app.UseSystem(
		System(renderFrame).
			InStage(Render),
	)

	cmd.AddResources(rState)
}

func createRenderState(gpu *GpuState, clear wgpu.Color) *renderState {
	cameraBuffer, err := gpu.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Buffer",
		Size:  prim.CameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}

	rState := &renderState{
		cameraBuffer: cameraBuffer,
		rectangles: primitivePipeline{
			label:    "Rectangle",
			pipeline: createPrimitivePipeline("Rectangle Pipeline", shaders.RectangleWGSL, gpu),
		},
		circles: primitivePipeline{
			label:    "Circle",
			pipeline: createPrimitivePipeline("Circle Pipeline", shaders.CircleWGSL, gpu),
		},
		clearColor: clear,
	}
	rState.rectangles.cameraBindGroup = createCameraBindGroup(rState.rectangles.pipeline, cameraBuffer, gpu)
	rState.circles.cameraBindGroup = createCameraBindGroup(rState.circles.pipeline, cameraBuffer, gpu)
	return rState
}

// createPrimitivePipeline builds one render pipeline over a WGSL
// program with vertex entry point "vertex" and fragment entry point
// "pixel". The quad corners come from the vertex index, so there are
// no vertex buffers at all.
func createPrimitivePipeline(name string, shaderCode string, gpu *GpuState) *wgpu.RenderPipeline {
	shader, err := gpu.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := gpu.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: name,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vertex",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "pixel",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    gpu.surfaceConfig.Format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleStrip,
			FrontFace: wgpu.FrontFaceCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		panic(err)
	}
	return pipeline
}

func createCameraBindGroup(pipeline *wgpu.RenderPipeline, cameraBuffer *wgpu.Buffer, gpu *GpuState) *wgpu.BindGroup {
	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()

	bindGroup, err := gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  cameraBuffer,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return bindGroup
}

// buildRenderInstances packs the scene into the instance byte arrays.
// A selected object gets a slightly larger white highlight instance
// placed first, so it rasterizes underneath the object itself.
func buildRenderInstances(scene *Scene, cam *Camera2D, window *WindowState, rs *renderState) {
	rs.camera = prim.Camera{
		Position: cam.Position,
		Aspect:   window.Aspect(),
		Zoom:     cam.Zoom,
	}
	rs.cameraBytes = prim.AppendCamera(rs.cameraBytes[:0], rs.camera)

	highlight := mgl32.Vec3{1.0, 1.0, 1.0}

	rs.circles.instanceBytes = rs.circles.instanceBytes[:0]
	rs.circles.instanceCount = 0
	if i := scene.SelectedParticleIndex(); i >= 0 {
		p := &scene.Particles[i]
		rs.circles.instanceBytes = prim.AppendCircle(rs.circles.instanceBytes, prim.Circle{
			Position: p.Position,
			Color:    highlight,
			Radius:   p.Radius() * 1.25,
		})
		rs.circles.instanceCount++
	}
	for i := range scene.Particles {
		p := &scene.Particles[i]
		rs.circles.instanceBytes = prim.AppendCircle(rs.circles.instanceBytes, prim.Circle{
			Position: p.Position,
			Color:    p.Color(),
			Radius:   p.Radius(),
		})
		rs.circles.instanceCount++
	}

	rs.rectangles.instanceBytes = rs.rectangles.instanceBytes[:0]
	rs.rectangles.instanceCount = 0
	if scene.SelectedWall >= 0 && scene.SelectedWall < len(scene.Walls) {
		wall := scene.Walls[scene.SelectedWall]
		rs.rectangles.instanceBytes = prim.AppendRectangle(rs.rectangles.instanceBytes, prim.Rectangle{
			Position: wall.Position,
			Color:    highlight,
			Size:     wall.Size.Add(mgl32.Vec2{0.2, 0.2}),
		})
		rs.rectangles.instanceCount++
	}
	for _, wall := range scene.Walls {
		rs.rectangles.instanceBytes = prim.AppendRectangle(rs.rectangles.instanceBytes, prim.Rectangle{
			Position: wall.Position,
			Color:    wall.Color,
			Size:     wall.Size,
		})
		rs.rectangles.instanceCount++
	}
}

// upload makes sure the storage buffer holds the packed instances,
// recreating buffer and bind group when the bytes outgrow the current
// capacity.
func (pp *primitivePipeline) upload(gpu *GpuState) {
	if len(pp.instanceBytes) == 0 {
		return
	}
	size := uint64(len(pp.instanceBytes))
	if pp.instanceBuffer == nil || size > pp.instanceCap {
		if pp.instanceBuffer != nil {
			pp.instanceBuffer.Release()
		}
		if pp.instanceBindGroup != nil {
			pp.instanceBindGroup.Release()
		}
		pp.instanceCap = size

		buffer, err := gpu.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: pp.label + " Instance Buffer",
			Size:  pp.instanceCap,
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			panic(err)
		}
		pp.instanceBuffer = buffer

		layout := pp.pipeline.GetBindGroupLayout(1)
		defer layout.Release()
		bindGroup, err := gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  pp.label + " Instance Bind Group",
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{
					Binding: 0,
					Buffer:  pp.instanceBuffer,
					Size:    wgpu.WholeSize,
				},
			},
		})
		if err != nil {
			panic(err)
		}
		pp.instanceBindGroup = bindGroup
	}

	if err := gpu.queue.WriteBuffer(pp.instanceBuffer, 0, pp.instanceBytes); err != nil {
		panic(err)
	}
}

func (pp *primitivePipeline) draw(renderPass *wgpu.RenderPassEncoder) {
	if pp.instanceCount == 0 {
		return
	}
	renderPass.SetPipeline(pp.pipeline)
	renderPass.SetBindGroup(0, pp.cameraBindGroup, nil)
	renderPass.SetBindGroup(1, pp.instanceBindGroup, nil)
	renderPass.Draw(4, pp.instanceCount, 0, 0)
}

func renderFrame(rs *renderState, gpu *GpuState) {
	nextTexture, err := gpu.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	if err := gpu.queue.WriteBuffer(rs.cameraBuffer, 0, rs.cameraBytes); err != nil {
		panic(err)
	}
	rs.circles.upload(gpu)
	rs.rectangles.upload(gpu)

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: rs.clearColor,
			},
		},
	})

	// circles first, then walls on top, matching the draw order the
	// simulation view expects
	rs.circles.draw(renderPass)
	rs.rectangles.draw(renderPass)

	if err := renderPass.End(); err != nil {
		panic(err)
	}
	renderPass.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpu.queue.Submit(cmdBuffer)
	gpu.surface.Present()
}
