package navigation

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		payload    any
		wantID     string
		wantRes    Resolution
		hasPayload bool
	}{
		{"main no payload", MainModuleID, nil, MainModuleID, ResolvedNoPayload, false},
		{"main string payload", MainModuleID, "hello", MainModuleID, ResolvedPayload, true},
		{"main struct payload", MainModuleID, MainModulePayload{Message: "x"}, MainModuleID, ResolvedPayload, true},
		{"example no payload", CoordinatorExampleID, nil, CoordinatorExampleID, ResolvedNoPayload, false},
		{"example map payload", CoordinatorExampleID, map[string]string{"key": "value"}, CoordinatorExampleID, ResolvedPayload, true},
		{"example nil map", CoordinatorExampleID, map[string]string(nil), CoordinatorExampleID, ResolvedNoPayload, false},
		{"example empty map", CoordinatorExampleID, map[string]string{}, CoordinatorExampleID, ResolvedNoPayload, false},
		{"main nil map", MainModuleID, map[string]string(nil), MainModuleID, ResolvedNoPayload, false},
		{"example typed nil pointer", CoordinatorExampleID, (*CoordinatorExamplePayload)(nil), CoordinatorExampleID, ResolvedNoPayload, false},
		{"example wrong payload type", CoordinatorExampleID, 42, CoordinatorExampleID, ResolvedDroppedPayload, false},
		{"unknown", "UnknownTarget", nil, "", Unrecognized, false},
		{"case sensitive", "mainmoduleui", nil, "", Unrecognized, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dest, res := Resolve(test.identifier, test.payload)
			if res != test.wantRes {
				t.Fatalf("Resolve() resolution = %v, expected %v", res, test.wantRes)
			}
			if test.wantID == "" {
				if dest != nil {
					t.Fatalf("Resolve() = %v, expected nil destination", dest)
				}
				return
			}
			if dest.ID() != test.wantID {
				t.Errorf("ID() = %q, expected %q", dest.ID(), test.wantID)
			}
			if HasPayload(dest) != test.hasPayload {
				t.Errorf("HasPayload() = %v, expected %v", HasPayload(dest), test.hasPayload)
			}
		})
	}
}

func TestResolve_CopiesMapPayload(t *testing.T) {
	values := map[string]string{"key": "value"}
	dest, _ := Resolve(CoordinatorExampleID, values)
	values["key"] = "changed"

	got := dest.(CoordinatorExample).Payload.Values["key"]
	if got != "value" {
		t.Errorf("payload value = %q, expected the value at resolve time", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		dest     Destination
		expected string
	}{
		{nil, "<nil>"},
		{MainModule{}, "MainModuleUI"},
		{MainModule{Payload: &MainModulePayload{Message: "hi"}}, `MainModuleUI(message="hi")`},
		{CoordinatorExample{Payload: &CoordinatorExamplePayload{Values: map[string]string{"b": "2", "a": "1"}}}, "CoordinatorExampleUI(keys=a,b)"},
	}

	for _, test := range tests {
		if got := Describe(test.dest); got != test.expected {
			t.Errorf("Describe() = %q, expected %q", got, test.expected)
		}
	}
}
