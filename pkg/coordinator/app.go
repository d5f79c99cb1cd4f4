package coordinator

import (
	"errors"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/config"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/features/coordinatorexample"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/features/mainmodule"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/host"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/router"
)

// App holds the single router of the process and everything built on it.
type App struct {
	config     config.Config
	host       navigation.Host
	router     *router.Router
	dispatcher *navigation.Dispatcher

	mainModule         *mainmodule.ViewModel
	coordinatorExample *coordinatorexample.ViewModel
}

// EntryPoints returns the start function of every feature module.
func EntryPoints() router.EntryPoints {
	return router.EntryPoints{
		MainModule:         mainmodule.Start,
		CoordinatorExample: coordinatorexample.Start,
	}
}

// New wires the router, the dispatcher and the feature view models for host.
// The router logs on the application logger with the configured history
// limit; opts are applied after both.
func New(cfg config.Config, h navigation.Host, opts ...router.Option) *App {
	opts = append([]router.Option{
		router.WithLogger(internal.GetLogger()),
		router.WithHistoryLimit(cfg.HistoryLimit),
	}, opts...)

	r := router.New(EntryPoints(), opts...)
	d := navigation.NewDispatcher(r)

	return &App{
		config:             cfg,
		host:               h,
		router:             r,
		dispatcher:         d,
		mainModule:         mainmodule.NewViewModel(d, h),
		coordinatorExample: coordinatorexample.NewViewModel(d, h),
	}
}

func (a *App) Router() *router.Router {
	return a.router
}

func (a *App) Dispatcher() *navigation.Dispatcher {
	return a.dispatcher
}

func (a *App) MainModule() *mainmodule.ViewModel {
	return a.mainModule
}

func (a *App) CoordinatorExample() *coordinatorexample.ViewModel {
	return a.coordinatorExample
}

// Start presents the configured start destination. An unknown identifier
// is logged by the router and leaves nothing on screen.
func (a *App) Start() error {
	return a.dispatcher.ChangeActivity(a.host, a.config.StartDestination, nil)
}

// Current returns the destination on screen, or nil before Start.
func (a *App) Current() navigation.Destination {
	top := a.router.History().Peek()
	if top == nil {
		return nil
	}
	return top.Destination
}

// HandleInput applies one user action to the destination on screen.
// It returns true when the application should exit.
func (a *App) HandleInput(in host.Input) (quit bool, err error) {
	switch in.Kind {
	case host.InputQuit:
		return true, nil
	case host.InputBack:
		ok, err := a.dispatcher.Back(a.host)
		if err != nil {
			return false, err
		}
		// Back on the first screen leaves the app.
		return !ok, nil
	}

	switch a.Current().(type) {
	case navigation.MainModule:
		if in.Kind != host.InputSelect {
			return false, nil
		}
		err := a.mainModule.Select(in.Index)
		if errors.Is(err, mainmodule.ErrInvalidSelection) {
			a.mainModule.Logger().Debug("Ignoring selection", "index", in.Index)
			return false, nil
		}
		return false, err
	case navigation.CoordinatorExample:
		if in.Kind == host.InputSelect {
			return false, a.coordinatorExample.OpenMain()
		}
		a.coordinatorExample.Increment()
	case nil:
		// Nothing was presented, start over.
		return false, a.Start()
	}

	return false, nil
}

// Run reads inputs from source until it is exhausted or asks to quit.
func (a *App) Run(source host.InputSource) error {
	for {
		in, ok := source.NextInput()
		if !ok {
			return nil
		}

		quit, err := a.HandleInput(in)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
