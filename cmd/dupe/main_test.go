package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"dupe", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"dupe", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"dupe"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
}

func TestCloneCommandRoundTripsFile(t *testing.T) {
	path := writeInput(t, `{"b": [1, 2], "a": true}`)

	var out bytes.Buffer
	if err := cloneCommand(&out, []string{path}); err != nil {
		t.Fatalf("clone command failed: %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), `{"a":true,"b":[1,2]}`; got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestCloneCommandPrettyOutput(t *testing.T) {
	path := writeInput(t, `[1]`)

	var out bytes.Buffer
	if err := cloneCommand(&out, []string{"-pretty", path}); err != nil {
		t.Fatalf("clone command failed: %v", err)
	}
	want := "[\n  1\n]"
	if got := strings.TrimSpace(out.String()); got != want {
		t.Fatalf("unexpected pretty output: got %q want %q", got, want)
	}
}

func TestCloneCommandStrategyFlag(t *testing.T) {
	path := writeInput(t, `{"n": 7}`)

	for _, name := range []string{"structural", "json", "recursive"} {
		var out bytes.Buffer
		if err := cloneCommand(&out, []string{"-strategy", name, path}); err != nil {
			t.Fatalf("clone with strategy %q failed: %v", name, err)
		}
		if got, want := strings.TrimSpace(out.String()), `{"n":7}`; got != want {
			t.Fatalf("strategy %q output mismatch: got %q want %q", name, got, want)
		}
	}
}

func TestCloneCommandRejectsUnknownStrategy(t *testing.T) {
	path := writeInput(t, `1`)

	var out bytes.Buffer
	err := cloneCommand(&out, []string{"-strategy", "yaml", path})
	if err == nil {
		t.Fatalf("expected unknown strategy error")
	}
	if !strings.Contains(err.Error(), "unknown strategy") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCloneCommandRejectsInvalidJSON(t *testing.T) {
	path := writeInput(t, `{"open": `)

	var out bytes.Buffer
	err := cloneCommand(&out, []string{path})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse input") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCloneCommandMaxSizeLimit(t *testing.T) {
	path := writeInput(t, `["`+strings.Repeat("x", 2048)+`"]`)

	var out bytes.Buffer
	err := cloneCommand(&out, []string{"-max-size", "128", path})
	if err == nil {
		t.Fatalf("expected size limit error")
	}
	if !strings.Contains(err.Error(), "input too large") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCloneCommandMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := cloneCommand(&out, []string{filepath.Join(t.TempDir(), "absent.json")})
	if err == nil {
		t.Fatalf("expected access error for missing file")
	}
}
