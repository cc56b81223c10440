package dupe

import (
	"errors"
	"testing"
)

func FuzzParseJSONDoesNotPanic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("null"))
	f.Add([]byte(`{"a": [1, 2.5, "x", true, null]}`))
	f.Add([]byte(`[[[[[[1]]]]]]`))
	f.Add([]byte(`{"a": 1} trailing`))
	f.Add([]byte(`9007199254740993`))

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) > 1<<16 {
			raw = raw[:1<<16]
		}
		_, _ = ParseJSON(raw)
	})
}

func FuzzDeepCopyMatchesSource(f *testing.F) {
	f.Add([]byte(`[1, 2, 3, 4, [5, 6, 7]]`))
	f.Add([]byte(`{"rows": [[1], [2]], "meta": {"null": null}}`))
	f.Add([]byte(`"scalar"`))
	f.Add([]byte(`[{"deep": [[[["x"]]]]}]`))

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) > 1<<16 {
			raw = raw[:1<<16]
		}
		src, err := ParseJSON(raw)
		if err != nil {
			return
		}
		for _, strategy := range []Strategy{StructuralClone, RecursiveClone} {
			clone, err := DeepCopy(src, strategy)
			if err != nil {
				t.Fatalf("%s failed on parsed json input: %v", strategy, err)
			}
			if !clone.Equal(src) {
				t.Fatalf("%s clone differs from source: got %v want %v", strategy, clone, src)
			}
			if clone.Aliases(src) {
				t.Fatalf("%s clone aliases its source", strategy)
			}
		}

		// Integral floats degrade to ints on the first pass, so the json
		// strategy is checked for stability rather than kind equality.
		once, err := DeepCopy(src, JSONRoundTrip)
		if errors.Is(err, ErrTooDeep) {
			return
		}
		if err != nil {
			t.Fatalf("json round-trip failed on parsed json input: %v", err)
		}
		if once.Aliases(src) {
			t.Fatalf("json round-trip clone aliases its source")
		}
		twice, err := DeepCopy(once, JSONRoundTrip)
		if err != nil {
			t.Fatalf("second json round-trip failed: %v", err)
		}
		if !twice.Equal(once) {
			t.Fatalf("json round-trip not stable: got %v want %v", twice, once)
		}
	})
}
