// Package coordinatorexample is the sample feature reached through the
// coordinator. It shows whatever values it was opened with.
package coordinatorexample

import (
	"fmt"
	"sort"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
)

const (
	FeatureName = "coordinator_example"
	TitleID     = "coordinator_example_title"

	NoPayloadLine = "No data was passed to this screen."
)

// Start presents the example screen, listing payload values sorted by key.
func Start(host navigation.Host, payload *navigation.CoordinatorExamplePayload) error {
	return host.Present(navigation.Screen{
		Name:    navigation.CoordinatorExampleID,
		TitleID: TitleID,
		Title:   "Coordinator Example",
		Lines:   payloadLines(payload),
		Icon:    internal.Icon(internal.IconRoute),
	})
}

func payloadLines(payload *navigation.CoordinatorExamplePayload) []string {
	if payload == nil || len(payload.Values) == 0 {
		return []string{NoPayloadLine}
	}

	keys := make([]string, 0, len(payload.Values))
	for k := range payload.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, payload.Values[k]))
	}
	return lines
}
