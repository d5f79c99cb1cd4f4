// Package router maps navigation destinations to feature entry points.
//
// A Router is owned by the composition root, the only package that imports
// every feature module. Each destination variant has one strongly-typed entry
// point field in EntryPoints, and Navigate resolves a destination with a type
// switch instead of comparing strings. Feature modules never see the Router;
// they hold a navigation.Dispatcher wrapping it.
//
// # Basic Usage
//
//	r := router.New(router.EntryPoints{
//	    MainModule:         mainmodule.Start,
//	    CoordinatorExample: coordinatorexample.Start,
//	})
//
//	d := navigation.NewDispatcher(r)
//
//	// Typed form
//	d.Navigate(host, navigation.CoordinatorExample{
//	    Payload: &navigation.CoordinatorExamplePayload{Values: map[string]string{"key": "value"}},
//	})
//
//	// Identifier form, for configured or deep-linked destinations
//	d.ChangeActivity(host, navigation.MainModuleID, nil)
//
// # Unknown Destinations
//
// An identifier that names no destination, or a destination without a
// registered entry point, produces one warning log line and no transition.
// It is never returned as an error.
//
// # History
//
// Every successful transition is pushed on the router's Stack. Back pops the
// current entry and presents the previous destination again with its
// original payload.
package router
