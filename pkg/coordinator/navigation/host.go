package navigation

// Screen is what a feature entry point asks the host to present.
type Screen struct {
	Name    string   // Destination identifier the screen belongs to
	TitleID string   // Message id of the localized title
	Title   string   // Title used when TitleID has no translation
	Lines   []string // Body text, one entry per line
	Icon    []byte   // Optional SVG icon
}

// Host is the platform context a transition is performed on.
// Present must be called on the host's UI goroutine.
type Host interface {
	Present(screen Screen) error
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(screen Screen) error

func (f HostFunc) Present(screen Screen) error {
	return f(screen)
}
