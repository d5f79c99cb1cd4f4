package navigation

import (
	"fmt"
	"sort"
	"strings"
)

// Identifiers accepted by Resolve. They name the same destinations as the
// typed variants below and exist for callers that only have a string, such
// as a configured start screen.
const (
	MainModuleID         = "MainModuleUI"
	CoordinatorExampleID = "CoordinatorExampleUI"
)

// Destination is a navigation target. The set of destinations is closed:
// only the variants in this package implement it.
type Destination interface {
	// ID returns the identifier of the destination.
	ID() string
	destination()
}

// MainModulePayload is the data the main module screen accepts.
type MainModulePayload struct {
	Message string
}

// CoordinatorExamplePayload is the data the coordinator example screen accepts.
type CoordinatorExamplePayload struct {
	Values map[string]string
}

// MainModule navigates to the main module launcher.
type MainModule struct {
	Payload *MainModulePayload // nil if no data
}

// CoordinatorExample navigates to the coordinator example screen.
type CoordinatorExample struct {
	Payload *CoordinatorExamplePayload // nil if no data
}

func (MainModule) ID() string         { return MainModuleID }
func (CoordinatorExample) ID() string { return CoordinatorExampleID }

func (MainModule) destination()         {}
func (CoordinatorExample) destination() {}

// Resolution describes how Resolve treated a legacy payload.
type Resolution int

const (
	ResolvedNoPayload      Resolution = iota // payload was nil
	ResolvedPayload                          // payload converted to the typed form
	ResolvedDroppedPayload                   // payload had an unusable type and was discarded
	Unrecognized                             // identifier names no destination
)

// Resolve converts a string identifier and an untyped payload into a
// Destination. Matching is exact and case sensitive.
//
// Accepted payloads are nil, the destination's payload struct, a pointer to
// it, or a map[string]string. A nil or empty map counts as no payload. The
// main module also takes a plain string as its message. Any other payload is dropped and reported as
// ResolvedDroppedPayload so the caller can log it.
func Resolve(identifier string, payload any) (Destination, Resolution) {
	switch identifier {
	case MainModuleID:
		p, res := mainModulePayload(payload)
		return MainModule{Payload: p}, res
	case CoordinatorExampleID:
		p, res := coordinatorExamplePayload(payload)
		return CoordinatorExample{Payload: p}, res
	default:
		return nil, Unrecognized
	}
}

func mainModulePayload(payload any) (*MainModulePayload, Resolution) {
	switch p := payload.(type) {
	case nil:
		return nil, ResolvedNoPayload
	case *MainModulePayload:
		if p == nil {
			return nil, ResolvedNoPayload
		}
		return p, ResolvedPayload
	case MainModulePayload:
		return &p, ResolvedPayload
	case map[string]string:
		if len(p) == 0 {
			return nil, ResolvedNoPayload
		}
		return &MainModulePayload{Message: p["message"]}, ResolvedPayload
	case string:
		return &MainModulePayload{Message: p}, ResolvedPayload
	default:
		return nil, ResolvedDroppedPayload
	}
}

func coordinatorExamplePayload(payload any) (*CoordinatorExamplePayload, Resolution) {
	switch p := payload.(type) {
	case nil:
		return nil, ResolvedNoPayload
	case *CoordinatorExamplePayload:
		if p == nil {
			return nil, ResolvedNoPayload
		}
		return p, ResolvedPayload
	case CoordinatorExamplePayload:
		return &p, ResolvedPayload
	case map[string]string:
		if len(p) == 0 {
			return nil, ResolvedNoPayload
		}
		values := make(map[string]string, len(p))
		for k, v := range p {
			values[k] = v
		}
		return &CoordinatorExamplePayload{Values: values}, ResolvedPayload
	default:
		return nil, ResolvedDroppedPayload
	}
}

// HasPayload reports whether dest carries data.
func HasPayload(dest Destination) bool {
	switch d := dest.(type) {
	case MainModule:
		return d.Payload != nil
	case CoordinatorExample:
		return d.Payload != nil
	}
	return false
}

// Describe returns a short log-friendly description of dest.
func Describe(dest Destination) string {
	switch d := dest.(type) {
	case nil:
		return "<nil>"
	case MainModule:
		if d.Payload == nil {
			return d.ID()
		}
		return fmt.Sprintf("%s(message=%q)", d.ID(), d.Payload.Message)
	case CoordinatorExample:
		if d.Payload == nil {
			return d.ID()
		}
		keys := make([]string, 0, len(d.Payload.Values))
		for k := range d.Payload.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("%s(keys=%s)", d.ID(), strings.Join(keys, ","))
	default:
		return dest.ID()
	}
}
