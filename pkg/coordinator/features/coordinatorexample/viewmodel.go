package coordinatorexample

import (
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/feature"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

// ViewModel holds the example screen state: a counter.
type ViewModel struct {
	feature.ViewModel
	count int
}

func NewViewModel(nav navigation.Navigator, host navigation.Host) *ViewModel {
	return &ViewModel{ViewModel: feature.NewViewModel(FeatureName, nav, host)}
}

// Increment bumps the counter and returns the new value.
func (vm *ViewModel) Increment() int {
	vm.count++
	return vm.count
}

func (vm *ViewModel) Count() int {
	return vm.count
}

// OpenMain navigates to the main module, reporting the counter there.
func (vm *ViewModel) OpenMain() error {
	return vm.NavigateTo(navigation.MainModule{
		Payload: &navigation.MainModulePayload{Message: fmt.Sprintf("Counter reached %d", vm.count)},
	})
}
