// Package navigation defines the navigation contract shared by feature
// modules and the composition root.
//
// Feature modules depend on the Navigator capability, usually through a
// Dispatcher, and never on the concrete router. The router lives with the
// composition root, which is the only place that knows every feature's
// entry point. This keeps the dependency graph acyclic.
//
// # Destinations
//
// Destinations form a closed set of typed variants, each with its own
// optional payload:
//
//	nav.Navigate(host, navigation.CoordinatorExample{
//	    Payload: &navigation.CoordinatorExamplePayload{Values: map[string]string{"key": "value"}},
//	})
//
// Callers that only hold a string, such as a configured start screen, use
// ChangeActivity. Unknown identifiers are logged and ignored, never an error:
//
//	nav.ChangeActivity(host, "CoordinatorExampleUI", nil)
package navigation
