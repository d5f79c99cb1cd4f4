// Package host provides platform hosts that present navigation screens.
// The SDL host lives in the sdlhost subpackage; this package holds the
// headless host used for tests, CI and HEADLESS=1 runs.
package host

import (
	"log/slog"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Presented is a screen as a headless host showed it.
type Presented struct {
	Screen navigation.Screen
	Title  string // Localized title
}

// Headless logs presented screens and keeps them in memory.
type Headless struct {
	localizer *i18n.Localizer
	logger    *slog.Logger
	presented []Presented
	script    []Input
	fail      error
}

// NewHeadless returns a headless host localizing titles with localizer,
// which may be nil.
func NewHeadless(localizer *i18n.Localizer, logger *slog.Logger) *Headless {
	if logger == nil {
		logger = internal.GetLogger()
	}
	return &Headless{localizer: localizer, logger: logger}
}

// Present records screen. It returns the error set with FailWith, if any.
func (h *Headless) Present(screen navigation.Screen) error {
	if h.fail != nil {
		return h.fail
	}

	title := internal.Translate(h.localizer, screen.TitleID, screen.Title)
	h.presented = append(h.presented, Presented{Screen: screen, Title: title})

	h.logger.Info("Screen presented",
		"screen", screen.Name,
		"title", title,
		"lines", screen.Lines)
	return nil
}

// FailWith makes subsequent Present calls return err. Pass nil to recover.
func (h *Headless) FailWith(err error) {
	h.fail = err
}

// Presented returns every screen shown so far, oldest first.
func (h *Headless) Presented() []Presented {
	out := make([]Presented, len(h.presented))
	copy(out, h.presented)
	return out
}

// Current returns the last presented screen. ok is false if none was shown.
func (h *Headless) Current() (p Presented, ok bool) {
	if len(h.presented) == 0 {
		return Presented{}, false
	}
	return h.presented[len(h.presented)-1], true
}
