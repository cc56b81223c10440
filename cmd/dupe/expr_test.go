package main

import (
	"strings"
	"testing"

	"github.com/mgomes/duplicate/dupe"
)

func TestParseTargetBareName(t *testing.T) {
	ref, err := parseTarget("grid")
	if err != nil {
		t.Fatalf("parse target: %v", err)
	}
	if ref.name != "grid" || len(ref.steps) != 0 {
		t.Fatalf("unexpected target: %+v", ref)
	}
}

func TestParseTargetStepChain(t *testing.T) {
	ref, err := parseTarget(`grid[0].rows["odd key"][2]`)
	if err != nil {
		t.Fatalf("parse target: %v", err)
	}
	if ref.name != "grid" {
		t.Fatalf("name mismatch: %q", ref.name)
	}
	want := []dupe.Step{
		{Index: 0},
		{Key: "rows", IsKey: true},
		{Key: "odd key", IsKey: true},
		{Index: 2},
	}
	if len(ref.steps) != len(want) {
		t.Fatalf("step count mismatch: got %d want %d", len(ref.steps), len(want))
	}
	for i, step := range want {
		if ref.steps[i] != step {
			t.Fatalf("step %d mismatch: got %+v want %+v", i, ref.steps[i], step)
		}
	}
}

func TestParseTargetRejectsMalformedInput(t *testing.T) {
	for _, expr := range []string{"", "1abc", "a[", "a[x]", "a.", "a b"} {
		if _, err := parseTarget(expr); err == nil {
			t.Fatalf("expected parse error for %q", expr)
		}
	}
}

func TestResolveWalksSteps(t *testing.T) {
	m := newREPLModel()
	if _, isErr := m.evaluate(`grid = [[1, 2], {"k": 3}]`); isErr {
		t.Fatalf("define failed")
	}

	val, err := m.resolve("grid[1].k")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if val.Int() != 3 {
		t.Fatalf("resolved value mismatch: got %v", val)
	}

	if _, err := m.resolve("grid[5]"); err == nil {
		t.Fatalf("expected out-of-range resolve error")
	}
	if _, err := m.resolve("nope"); err == nil || !strings.Contains(err.Error(), "undefined variable") {
		t.Fatalf("expected undefined variable error, got %v", err)
	}
}

func TestEvalExprCopies(t *testing.T) {
	m := newREPLModel()
	if _, isErr := m.evaluate(`x = [[1, 2]]`); isErr {
		t.Fatalf("define failed")
	}

	shallow, err := m.evalExpr("shallow x")
	if err != nil {
		t.Fatalf("shallow: %v", err)
	}
	srcRow, _ := m.env["x"].Index(0)
	dupRow, _ := shallow.Index(0)
	if !srcRow.Aliases(dupRow) {
		t.Fatalf("shallow copy should share nested rows")
	}

	deep, err := m.evalExpr("deep x recursive")
	if err != nil {
		t.Fatalf("deep: %v", err)
	}
	deepRow, _ := deep.Index(0)
	if srcRow.Aliases(deepRow) {
		t.Fatalf("deep copy should not share nested rows")
	}

	if _, err := m.evalExpr("deep x yaml"); err == nil {
		t.Fatalf("expected unknown strategy error")
	}

	// Default strategy is recursive: callables pass through instead of
	// being rejected the way structural would.
	m.env["f"] = dupe.NewArray([]dupe.Value{dupe.NewFunc(&dupe.Func{Name: "hook"})})
	if _, err := m.evalExpr("deep f"); err != nil {
		t.Fatalf("deep without a strategy should clone callables: %v", err)
	}
	if _, err := m.evalExpr("deep f structural"); err == nil {
		t.Fatalf("structural strategy should reject callables")
	}
	if _, err := m.evalExpr("shallow"); err == nil {
		t.Fatalf("expected usage error for bare shallow")
	}
}
