package atomsim

type SimModule struct {
	// Scene to simulate; nil installs the default water box.
	Scene *Scene
}

func (mod SimModule) Install(app *App, cmd *Commands) {
	scene := mod.Scene
	if scene == nil {
		scene = WaterBoxScene()
	}
	cmd.AddResources(scene)

	app.UseSystem(
		System(simControlSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(simStepSystem).
			InStage(Update),
	)
}

// simControlSystem maps the keyboard to simulation speed: comma and
// period step TimeScale down and up, space toggles pause, escape quits.
func simControlSystem(cmd *Commands, input *Input, scene *Scene, log Logger) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
		return
	}
	if input.JustPressed[KeySpace] {
		if scene.TimeScale == 0 {
			scene.TimeScale = 1
		} else {
			scene.TimeScale = 0
		}
		log.Infof("time scale: %d", scene.TimeScale)
	}
	if input.JustPressed[KeyComma] && scene.TimeScale > 0 {
		scene.TimeScale--
		log.Infof("time scale: %d", scene.TimeScale)
	}
	if input.JustPressed[KeyPeriod] && scene.TimeScale < 20 {
		scene.TimeScale++
		log.Infof("time scale: %d", scene.TimeScale)
	}
}

func simStepSystem(scene *Scene, time *Time, log Logger) {
	dt := float32(time.Dt.Seconds())
	if dt <= 0 || dt > 1.0 { // Safety cap for dt
		return
	}

	for i := 0; i < scene.TimeScale; i++ {
		var settled bool
		scene.Particles, settled = StepParticles(scene.Particles, scene.Walls, dt)
		if !settled {
			log.Warnf("collision solver hit the iteration cap, the simulation may be unstable")
		}
	}
}
