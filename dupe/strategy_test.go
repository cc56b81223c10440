package dupe

import "testing"

func TestParseStrategyNames(t *testing.T) {
	cases := map[string]Strategy{
		"structural":       StructuralClone,
		"structural-clone": StructuralClone,
		"json":             JSONRoundTrip,
		"json-round-trip":  JSONRoundTrip,
		"recursive":        RecursiveClone,
		"recursive-clone":  RecursiveClone,
		"  JSON  ":         JSONRoundTrip,
	}
	for name, want := range cases {
		got, ok := ParseStrategy(name)
		if !ok || got != want {
			t.Fatalf("parse %q: got %v ok=%v want %v", name, got, ok, want)
		}
	}
	if _, ok := ParseStrategy("yaml"); ok {
		t.Fatalf("unknown strategy name should not parse")
	}
}

func TestStrategyStringRoundTrips(t *testing.T) {
	for _, s := range []Strategy{StructuralClone, JSONRoundTrip, RecursiveClone} {
		parsed, ok := ParseStrategy(s.String())
		if !ok || parsed != s {
			t.Fatalf("String form %q should parse back to %v", s.String(), s)
		}
	}
}
