// Package constants defines shared constants and environment helpers
// used throughout the coordinator module.
package constants

import (
	"os"
	"strconv"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the demo application and the SDL host.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	HeadlessEnvVar     = "HEADLESS"
	LogLevelEnvVar     = "LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// Development window size used when ENVIRONMENT=DEV and no override is set.
const (
	DevWindowWidth  int32 = 1024
	DevWindowHeight int32 = 768
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// IsHeadless reports whether HEADLESS is set to a truthy value.
func IsHeadless() bool {
	v := strings.TrimSpace(os.Getenv(HeadlessEnvVar))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

// EnvInt32 returns the named environment variable parsed as an int32.
// ok is false when the variable is unset or not a number.
func EnvInt32(name string) (value int32, ok bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// LogLevel returns the LOG_LEVEL environment variable.
func LogLevel() string {
	return strings.TrimSpace(os.Getenv(LogLevelEnvVar))
}
