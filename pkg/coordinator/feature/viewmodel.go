// Package feature provides the base shared by feature view models.
//
// A view model holds a navigation.Navigator (normally a Dispatcher) and the
// host it presents on. It never imports the router, so feature modules can
// be built and tested without the composition root.
package feature

import (
	"log/slog"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

// ViewModel is embedded by feature view models to navigate.
type ViewModel struct {
	name      string
	navigator navigation.Navigator
	host      navigation.Host
	logger    *slog.Logger
}

// NewViewModel returns a ViewModel for the named feature.
func NewViewModel(name string, nav navigation.Navigator, host navigation.Host) ViewModel {
	return ViewModel{
		name:      name,
		navigator: nav,
		host:      host,
		logger:    internal.GetLogger().With("feature", name),
	}
}

// WithLogger returns a copy of vm logging to logger. A nil logger keeps the
// current one.
func (vm ViewModel) WithLogger(logger *slog.Logger) ViewModel {
	if logger == nil {
		return vm
	}
	vm.logger = logger.With("feature", vm.name)
	return vm
}

func (vm ViewModel) Name() string {
	return vm.name
}

func (vm ViewModel) Logger() *slog.Logger {
	return vm.logger
}

// NavigateTo requests a transition to dest.
func (vm ViewModel) NavigateTo(dest navigation.Destination) error {
	if vm.navigator == nil {
		return navigation.ErrNoNavigator
	}
	vm.logger.Debug("Navigation requested", "destination", navigation.Describe(dest))
	return vm.navigator.Navigate(vm.host, dest)
}

// NavigateByID requests a transition using a destination identifier.
func (vm ViewModel) NavigateByID(identifier string, payload any) error {
	if vm.navigator == nil {
		return navigation.ErrNoNavigator
	}
	vm.logger.Debug("Navigation requested", "identifier", identifier)
	return vm.navigator.ChangeActivity(vm.host, identifier, payload)
}

// Back returns to the previous destination when the navigator keeps history.
func (vm ViewModel) Back() (bool, error) {
	switch nav := vm.navigator.(type) {
	case nil:
		return false, navigation.ErrNoNavigator
	case navigation.Historian:
		return nav.Back(vm.host)
	default:
		return false, nil
	}
}
