// Package mainmodule is the launcher feature. It lists the other features
// and navigates to them through the navigation contract.
package mainmodule

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

const (
	FeatureName = "main_module"
	TitleID     = "main_module_title"
)

// Start presents the launcher screen. A payload message, if any, is shown
// above the menu.
func Start(host navigation.Host, payload *navigation.MainModulePayload) error {
	var lines []string
	if payload != nil && payload.Message != "" {
		lines = append(lines, payload.Message, "")
	}
	lines = append(lines, menuLines(DefaultMenu())...)

	return host.Present(navigation.Screen{
		Name:    navigation.MainModuleID,
		TitleID: TitleID,
		Title:   "Main Module",
		Lines:   lines,
		Icon:    internal.Icon(internal.IconHome),
	})
}
