package coordinator

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/config"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/host"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/router"
)

func newTestApp(t *testing.T, cfg config.Config) (*App, *host.Headless, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	h := host.NewHeadless(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := New(cfg, h, router.WithLogger(slog.New(slog.NewJSONHandler(buf, nil))))
	return app, h, buf
}

func screenNames(h *host.Headless) []string {
	var names []string
	for _, p := range h.Presented() {
		names = append(names, p.Screen.Name)
	}
	return names
}

func TestApp_Start(t *testing.T) {
	app, h, _ := newTestApp(t, config.Default())

	if err := app.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	current, ok := h.Current()
	if !ok || current.Screen.Name != navigation.MainModuleID {
		t.Fatalf("current screen = %+v, expected the main module", current)
	}
	if _, ok := app.Current().(navigation.MainModule); !ok {
		t.Errorf("Current() = %T, expected MainModule", app.Current())
	}
}

func TestApp_StartUnknownDestination(t *testing.T) {
	cfg := config.Default()
	cfg.StartDestination = "UnknownTarget"
	app, h, logs := newTestApp(t, cfg)

	if err := app.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if len(h.Presented()) != 0 {
		t.Errorf("presented %v, expected nothing", screenNames(h))
	}
	if got := strings.Count(strings.TrimSpace(logs.String()), "\n") + 1; got != 1 {
		t.Errorf("got %d log lines, expected 1", got)
	}
	if app.Current() != nil {
		t.Errorf("Current() = %v, expected nil", app.Current())
	}
}

func TestApp_UnknownStartDestinationReachesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coordinator.log")
	cfg := config.Default()
	cfg.Log.Path = path
	cfg.StartDestination = "UnknownTarget"

	Init(cfg)
	t.Cleanup(Close)

	h := host.NewHeadless(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := New(cfg, h)
	if err := app.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	Close()

	if len(h.Presented()) != 0 {
		t.Errorf("presented %v, expected nothing", screenNames(h))
	}
	if got := app.Router().Stats().Unrecognized; got != 1 {
		t.Errorf("Stats().Unrecognized = %d, expected 1", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if strings.Contains(line, "UnknownTarget") {
			lines = append(lines, line)
		}
	}
	if len(lines) != 1 {
		t.Fatalf("found %d log lines naming UnknownTarget, expected 1:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], `"level":"WARN"`) {
		t.Errorf("log line %s, expected warn level", lines[0])
	}
}

func TestApp_Run(t *testing.T) {
	app, h, _ := newTestApp(t, config.Default())
	if err := app.Start(); err != nil {
		t.Fatal(err)
	}

	h.Script(
		host.Input{Kind: host.InputSelect, Index: 1}, // open the example with data
		host.Input{Kind: host.InputNext},             // counter 1
		host.Input{Kind: host.InputNext},             // counter 2
		host.Input{Kind: host.InputSelect, Index: 0}, // back to main with the counter
		host.Input{Kind: host.InputSelect, Index: 9}, // ignored
		host.Input{Kind: host.InputBack},             // example again
		host.Input{Kind: host.InputQuit},
		host.Input{Kind: host.InputNext}, // never read
	)

	if err := app.Run(h); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	expected := []string{
		navigation.MainModuleID,
		navigation.CoordinatorExampleID,
		navigation.MainModuleID,
		navigation.CoordinatorExampleID,
	}
	got := screenNames(h)
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Fatalf("screens = %v, expected %v", got, expected)
	}

	presented := h.Presented()
	if presented[1].Screen.Lines[0] != "key: value" {
		t.Errorf("example screen lines = %v, expected the menu payload", presented[1].Screen.Lines)
	}
	if presented[2].Screen.Lines[0] != "Counter reached 2" {
		t.Errorf("main screen lines = %v, expected the counter message", presented[2].Screen.Lines)
	}
	if app.CoordinatorExample().Count() != 2 {
		t.Errorf("Count() = %d, expected 2", app.CoordinatorExample().Count())
	}

	if _, ok := h.NextInput(); !ok {
		t.Error("Run() consumed input after quitting")
	}
}

func TestApp_BackOnFirstScreenQuits(t *testing.T) {
	app, h, _ := newTestApp(t, config.Default())
	_ = app.Start()

	quit, err := app.HandleInput(host.Input{Kind: host.InputBack})
	if err != nil || !quit {
		t.Errorf("HandleInput(Back) = %v, %v, expected quit", quit, err)
	}
	if len(h.Presented()) != 1 {
		t.Errorf("presented %d screens, expected 1", len(h.Presented()))
	}
}

func TestApp_HostFailure(t *testing.T) {
	app, h, _ := newTestApp(t, config.Default())
	cause := errors.New("no display")
	h.FailWith(cause)

	err := app.Start()
	if !navigation.IsTransitionError(err) || !errors.Is(err, cause) {
		t.Fatalf("Start() error = %v, expected a transition error", err)
	}
	if app.Router().Stats().Failed != 1 {
		t.Errorf("Stats().Failed = %d, expected 1", app.Router().Stats().Failed)
	}
}

func TestApp_ViewModelsShareDispatcher(t *testing.T) {
	app, h, _ := newTestApp(t, config.Default())

	if err := app.MainModule().OpenCoordinatorExample(map[string]string{"from": "main"}); err != nil {
		t.Fatal(err)
	}
	if err := app.CoordinatorExample().OpenMain(); err != nil {
		t.Fatal(err)
	}

	if app.Router().History().Len() != 2 {
		t.Errorf("history length = %d, expected 2", app.Router().History().Len())
	}
	if app.Dispatcher().Navigator() != navigation.Navigator(app.Router()) {
		t.Error("dispatcher does not wrap the app router")
	}
	if len(h.Presented()) != 2 {
		t.Errorf("presented %d screens, expected 2", len(h.Presented()))
	}
}
