package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mgomes/duplicate/dupe"
)

const maxInputBytes = 8 << 20

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "clone":
		return cloneCommand(os.Stdout, args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func cloneCommand(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("clone", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	strategyName := fs.String("strategy", "structural", "clone strategy: structural, json, or recursive")
	pretty := fs.Bool("pretty", false, "indent the cloned output")
	maxSize := fs.Int("max-size", 0, "reject inputs whose estimated size exceeds this many bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	strategy, ok := dupe.ParseStrategy(*strategyName)
	if !ok {
		return fmt.Errorf("unknown strategy %q", *strategyName)
	}
	input, err := readInput(fs.Args())
	if err != nil {
		return err
	}
	source, err := dupe.ParseJSON(input)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if *maxSize > 0 {
		if size := dupe.EstimateSize(source); size > *maxSize {
			return fmt.Errorf("input too large: estimated %d bytes exceeds %d", size, *maxSize)
		}
	}
	clone, err := dupe.DeepCopy(source, strategy)
	if err != nil {
		return fmt.Errorf("clone failed: %w", err)
	}
	var payload []byte
	if *pretty {
		payload, err = json.MarshalIndent(clone, "", "  ")
	} else {
		payload, err = json.Marshal(clone)
	}
	if err != nil {
		return fmt.Errorf("encode clone: %w", err)
	}
	fmt.Fprintln(out, string(payload))
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(os.Stdin, maxInputBytes+1))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(data) > maxInputBytes {
			return nil, fmt.Errorf("input exceeds limit %d bytes", maxInputBytes)
		}
		return data, nil
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return nil, fmt.Errorf("resolve input path: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("access input: %w", err)
	}
	if info.Size() > maxInputBytes {
		return nil, fmt.Errorf("input exceeds limit %d bytes", maxInputBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  clone [flags] [file]  deep-copy a JSON document and print the result")
	fmt.Fprintln(os.Stderr, "  repl                  interactive copy playground")
	fmt.Fprintln(os.Stderr, "Clone flags:")
	fmt.Fprintln(os.Stderr, "  -strategy string")
	fmt.Fprintln(os.Stderr, "    clone strategy: structural, json, or recursive (default \"structural\")")
	fmt.Fprintln(os.Stderr, "  -pretty")
	fmt.Fprintln(os.Stderr, "    indent the cloned output")
	fmt.Fprintln(os.Stderr, "  -max-size <bytes>")
	fmt.Fprintln(os.Stderr, "    reject inputs whose estimated in-memory size exceeds the limit")
	fmt.Fprintln(os.Stderr, "Reads from stdin when no file (or \"-\") is given.")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
