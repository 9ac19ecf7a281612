package atomsim

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App runs the systems registered by the installed modules stage by
// stage, once per frame, until a system requests a quit.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	quitting  bool
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

func (app *App) Run() {
	for !app.quitting {
		for _, stage := range app.stages {
			for _, system := range app.systems[stage.Name] {
				app.callSystem(system)
			}
		}
	}
}

func (app *App) quit() {
	app.quitting = true
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// resourceOf resolves an installed resource by its value type. Modules
// installed later in the builder chain use it to reach state set up by
// earlier ones.
func resourceOf[T any](app *App) *T {
	resource, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		panic(fmt.Sprintf("resource %T is not installed", (*T)(nil)))
	}
	return resource.(*T)
}

var typeOfCommands = reflect.TypeOf(Commands{})

// callSystem resolves every parameter of the system function from the
// registered resources and invokes it. Systems declare what they need
// as pointer parameters (or as an interface, matched against whatever
// resource implements it); an unresolvable parameter is a wiring bug.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		if argType.Kind() == reflect.Interface {
			resource, ok := app.interfaceResource(argType)
			if !ok {
				panic(fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nDependency: %s",
					runtime.FuncForPC(systemValue.Pointer()).Name(),
					fmt.Sprint(argType),
				))
			}
			args[i] = resource
			continue
		}

		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			panic(fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			))
		}
	}
	systemValue.Call(args)
}

func (app *App) interfaceResource(t reflect.Type) (reflect.Value, bool) {
	for _, resource := range app.resources {
		value := reflect.ValueOf(resource)
		if value.Type().Implements(t) {
			return value, true
		}
	}
	return reflect.Value{}, false
}
