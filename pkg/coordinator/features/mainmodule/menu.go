package mainmodule

import (
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

// MenuItem is a single launcher entry.
type MenuItem struct {
	Text        string                 // Display text for the item
	Destination navigation.Destination // Where selecting the item navigates
}

// DefaultMenu returns the launcher entries, one per other feature.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{
			Text:        "Coordinator Example",
			Destination: navigation.CoordinatorExample{},
		},
		{
			Text: "Coordinator Example (with data)",
			Destination: navigation.CoordinatorExample{
				Payload: &navigation.CoordinatorExamplePayload{Values: map[string]string{"key": "value"}},
			},
		},
	}
}

func menuLines(items []MenuItem) []string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item.Text))
	}
	return lines
}
