package dupe

import (
	"fmt"
	"strings"
)

// Strategy selects how DeepCopy produces an independent copy.
type Strategy int

const (
	// StructuralClone rebuilds every container in the value graph, preserving
	// cycles and shared references. Callables are rejected.
	StructuralClone Strategy = iota
	// JSONRoundTrip encodes the value to JSON and decodes the result. Values
	// outside the JSON-safe subset are rejected, cycles included, and shared
	// references come back duplicated.
	JSONRoundTrip
	// RecursiveClone is StructuralClone without the rejection: callables pass
	// through by reference. It never fails.
	RecursiveClone
)

func (s Strategy) String() string {
	switch s {
	case StructuralClone:
		return "structural-clone"
	case JSONRoundTrip:
		return "json-round-trip"
	case RecursiveClone:
		return "recursive-clone"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name to a Strategy. The short form
// ("json") and the full form ("json-round-trip") are both accepted.
func ParseStrategy(name string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "structural", "structural-clone":
		return StructuralClone, true
	case "json", "json-round-trip":
		return JSONRoundTrip, true
	case "recursive", "recursive-clone":
		return RecursiveClone, true
	default:
		return StructuralClone, false
	}
}
