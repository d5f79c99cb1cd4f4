package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLanguage is used when no language, or "system", is configured.
var DefaultLanguage = language.English

// NewBundle builds a message bundle from the embedded TOML locale files.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}

	for _, name := range files {
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
	}

	return bundle, nil
}

// NewLocalizer returns a localizer for lang, falling back to English.
func NewLocalizer(lang string) (*i18n.Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	if lang == "" || lang == "system" {
		lang = DefaultLanguage.String()
	}

	return i18n.NewLocalizer(bundle, lang, DefaultLanguage.String()), nil
}

// Translate localizes messageID, returning fallback when the localizer is
// nil or the message is unknown.
func Translate(localizer *i18n.Localizer, messageID, fallback string) string {
	if localizer == nil || messageID == "" {
		return fallback
	}

	text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil || text == "" {
		return fallback
	}
	return text
}
