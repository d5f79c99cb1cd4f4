package mainmodule

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/feature"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

// ErrInvalidSelection is returned by Select for an index outside the menu.
var ErrInvalidSelection = errors.New("mainmodule: invalid menu selection")

// ViewModel holds the launcher state.
type ViewModel struct {
	feature.ViewModel
	items    []MenuItem
	selected int
}

// NewViewModel returns a launcher view model navigating through nav.
func NewViewModel(nav navigation.Navigator, host navigation.Host) *ViewModel {
	return &ViewModel{
		ViewModel: feature.NewViewModel(FeatureName, nav, host),
		items:     DefaultMenu(),
		selected:  -1,
	}
}

func (vm *ViewModel) Items() []MenuItem {
	return vm.items
}

// Selected returns the index of the last selected item, or -1.
func (vm *ViewModel) Selected() int {
	return vm.selected
}

// Select navigates to the destination of the item at index.
func (vm *ViewModel) Select(index int) error {
	if index < 0 || index >= len(vm.items) {
		return fmt.Errorf("%w: %d", ErrInvalidSelection, index)
	}
	vm.selected = index
	return vm.NavigateTo(vm.items[index].Destination)
}

// OpenCoordinatorExample navigates to the coordinator example with values.
// Nil or empty values open it without data.
func (vm *ViewModel) OpenCoordinatorExample(values map[string]string) error {
	dest := navigation.CoordinatorExample{}
	if len(values) > 0 {
		dest.Payload = &navigation.CoordinatorExamplePayload{Values: values}
	}
	return vm.NavigateTo(dest)
}
