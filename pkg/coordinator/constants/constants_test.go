package constants

import "testing"

func TestIsDevMode(t *testing.T) {
	t.Setenv(EnvironmentEnvVar, Development)
	if !IsDevMode() {
		t.Errorf("IsDevMode() = false with %s=%s", EnvironmentEnvVar, Development)
	}

	t.Setenv(EnvironmentEnvVar, "PROD")
	if IsDevMode() {
		t.Errorf("IsDevMode() = true with %s=PROD", EnvironmentEnvVar)
	}
}

func TestIsHeadless(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"nope", false},
	}

	for _, test := range tests {
		t.Setenv(HeadlessEnvVar, test.value)
		if got := IsHeadless(); got != test.expected {
			t.Errorf("IsHeadless() with %q = %v, expected %v", test.value, got, test.expected)
		}
	}
}

func TestEnvInt32(t *testing.T) {
	t.Setenv(WindowWidthEnvVar, "640")
	if v, ok := EnvInt32(WindowWidthEnvVar); !ok || v != 640 {
		t.Errorf("EnvInt32() = %d, %v, expected 640, true", v, ok)
	}

	t.Setenv(WindowWidthEnvVar, "wide")
	if _, ok := EnvInt32(WindowWidthEnvVar); ok {
		t.Error("EnvInt32() accepted a non-numeric value")
	}

	t.Setenv(WindowWidthEnvVar, "")
	if _, ok := EnvInt32(WindowWidthEnvVar); ok {
		t.Error("EnvInt32() accepted an unset value")
	}
}
