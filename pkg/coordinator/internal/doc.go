// Package internal contains the shared infrastructure for the coordinator
// module: logging, localisation and icon rasterising.
// Types and functions in this package are not part of the public API.
package internal
