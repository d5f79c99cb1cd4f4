// Package coordinator is the composition root of the navigation demo.
//
// It is the only package that imports every feature module. It builds
// exactly one Router wired to each feature's entry point, wraps it in a
// Dispatcher and hands that dispatcher to feature view models explicitly.
// There is no global navigation registry.
package coordinator

import (
	"log/slog"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/config"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Init configures logging from cfg. Call it before New so the router and
// hosts pick up the configured levels.
func Init(cfg config.Config) {
	if cfg.Log.Path != "" {
		internal.SetLogPath(cfg.Log.Path)
	}

	internal.SetRawLogLevel(cfg.Log.Level)
	internal.SetInternalLogLevel(internal.ParseLevel(cfg.Log.InternalLevel))
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// NewLocalizer returns a localizer over the embedded translations for lang.
// "system" and "" select English.
func NewLocalizer(lang string) (*i18n.Localizer, error) {
	return internal.NewLocalizer(lang)
}
