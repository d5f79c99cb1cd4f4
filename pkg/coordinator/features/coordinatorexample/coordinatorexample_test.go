package coordinatorexample

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

type screenRecorder struct {
	screens []navigation.Screen
}

func (r *screenRecorder) Present(screen navigation.Screen) error {
	r.screens = append(r.screens, screen)
	return nil
}

type fakeNavigator struct {
	navigated []navigation.Destination
}

func (f *fakeNavigator) Navigate(host navigation.Host, dest navigation.Destination) error {
	f.navigated = append(f.navigated, dest)
	return nil
}

func (f *fakeNavigator) ChangeActivity(host navigation.Host, identifier string, payload any) error {
	return nil
}

func TestStart(t *testing.T) {
	tests := []struct {
		name     string
		payload  *navigation.CoordinatorExamplePayload
		expected []string
	}{
		{"no payload", nil, []string{NoPayloadLine}},
		{"empty payload", &navigation.CoordinatorExamplePayload{}, []string{NoPayloadLine}},
		{
			"sorted values",
			&navigation.CoordinatorExamplePayload{Values: map[string]string{"key": "value", "another": "one"}},
			[]string{"another: one", "key: value"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			host := &screenRecorder{}
			if err := Start(host, test.payload); err != nil {
				t.Fatalf("Start() error: %v", err)
			}
			if len(host.screens) != 1 {
				t.Fatalf("presented %d screens, expected 1", len(host.screens))
			}
			screen := host.screens[0]
			if screen.Name != navigation.CoordinatorExampleID {
				t.Errorf("Name = %q", screen.Name)
			}
			if !reflect.DeepEqual(screen.Lines, test.expected) {
				t.Errorf("Lines = %v, expected %v", screen.Lines, test.expected)
			}
		})
	}
}

func TestViewModel(t *testing.T) {
	nav := &fakeNavigator{}
	vm := NewViewModel(nav, nil)
	vm.ViewModel = vm.ViewModel.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	vm.Increment()
	if got := vm.Increment(); got != 2 {
		t.Errorf("Increment() = %d, expected 2", got)
	}

	if err := vm.OpenMain(); err != nil {
		t.Fatalf("OpenMain() error: %v", err)
	}

	dest, ok := nav.navigated[0].(navigation.MainModule)
	if !ok {
		t.Fatalf("navigated to %T, expected MainModule", nav.navigated[0])
	}
	if dest.Payload.Message != "Counter reached 2" {
		t.Errorf("message = %q", dest.Payload.Message)
	}

	// fakeNavigator keeps no history
	if ok, err := vm.Back(); ok || err != nil {
		t.Errorf("Back() = %v, %v, expected false, nil", ok, err)
	}
}
