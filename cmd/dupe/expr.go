package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgomes/duplicate/dupe"
)

// targetRef names a slot in the playground environment: a variable plus an
// optional chain of steps into it, e.g. grid[0].rows[2].
type targetRef struct {
	name  string
	steps []dupe.Step
}

func parseTarget(expr string) (targetRef, error) {
	s := strings.TrimSpace(expr)
	i := 0
	for i < len(s) && identChar(s[i], i == 0) {
		i++
	}
	if i == 0 {
		return targetRef{}, fmt.Errorf("expected a variable name in %q", expr)
	}
	ref := targetRef{name: s[:i]}
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			start := i
			for i < len(s) && identChar(s[i], i == start) {
				i++
			}
			if i == start {
				return targetRef{}, fmt.Errorf("expected a key after '.' in %q", expr)
			}
			ref.steps = append(ref.steps, dupe.Step{Key: s[start:i], IsKey: true})
		case '[':
			i++
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return targetRef{}, fmt.Errorf("missing ']' in %q", expr)
			}
			inner := strings.TrimSpace(s[i : i+end])
			i += end + 1
			if len(inner) >= 2 && inner[0] == '"' {
				key, err := strconv.Unquote(inner)
				if err != nil {
					return targetRef{}, fmt.Errorf("bad key %s in %q", inner, expr)
				}
				ref.steps = append(ref.steps, dupe.Step{Key: key, IsKey: true})
				continue
			}
			idx, err := strconv.Atoi(inner)
			if err != nil {
				return targetRef{}, fmt.Errorf("bad index %q in %q", inner, expr)
			}
			ref.steps = append(ref.steps, dupe.Step{Index: idx})
		default:
			return targetRef{}, fmt.Errorf("unexpected %q in %q", string(s[i]), expr)
		}
	}
	return ref, nil
}

func identChar(b byte, first bool) bool {
	if b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
		return true
	}
	return !first && b >= '0' && b <= '9'
}

func (m replModel) resolve(expr string) (dupe.Value, error) {
	ref, err := parseTarget(expr)
	if err != nil {
		return dupe.NewMissing(), err
	}
	val, ok := m.env[ref.name]
	if !ok {
		return dupe.NewMissing(), fmt.Errorf("undefined variable %q", ref.name)
	}
	for _, step := range ref.steps {
		if step.IsKey {
			child, ok := val.Key(step.Key)
			if !ok {
				return dupe.NewMissing(), fmt.Errorf("no key %q in %s value", step.Key, val.Kind())
			}
			val = child
			continue
		}
		child, ok := val.Index(step.Index)
		if !ok {
			return dupe.NewMissing(), fmt.Errorf("no index %d in %s value", step.Index, val.Kind())
		}
		val = child
	}
	return val, nil
}

// assign binds a bare variable or writes through the step chain in place.
// Writing through a chain mutates shared storage, which is exactly what the
// playground is for.
func (m replModel) assign(ref targetRef, val dupe.Value) error {
	if len(ref.steps) == 0 {
		m.env[ref.name] = val
		return nil
	}
	container, ok := m.env[ref.name]
	if !ok {
		return fmt.Errorf("undefined variable %q", ref.name)
	}
	for _, step := range ref.steps[:len(ref.steps)-1] {
		if step.IsKey {
			child, ok := container.Key(step.Key)
			if !ok {
				return fmt.Errorf("no key %q in %s value", step.Key, container.Kind())
			}
			container = child
			continue
		}
		child, ok := container.Index(step.Index)
		if !ok {
			return fmt.Errorf("no index %d in %s value", step.Index, container.Kind())
		}
		container = child
	}
	last := ref.steps[len(ref.steps)-1]
	if last.IsKey {
		return container.SetKey(last.Key, val)
	}
	return container.SetIndex(last.Index, val)
}

func (m replModel) evalExpr(expr string) (dupe.Value, error) {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return dupe.NewMissing(), fmt.Errorf("missing value expression")
	}
	switch fields[0] {
	case "shallow":
		if len(fields) != 2 {
			return dupe.NewMissing(), fmt.Errorf("usage: shallow <expr>")
		}
		src, err := m.resolve(fields[1])
		if err != nil {
			return dupe.NewMissing(), err
		}
		return dupe.ShallowCopy(src), nil
	case "deep":
		if len(fields) != 2 && len(fields) != 3 {
			return dupe.NewMissing(), fmt.Errorf("usage: deep <expr> [structural|json|recursive]")
		}
		src, err := m.resolve(fields[1])
		if err != nil {
			return dupe.NewMissing(), err
		}
		strategy := dupe.RecursiveClone
		if len(fields) == 3 {
			parsed, ok := dupe.ParseStrategy(fields[2])
			if !ok {
				return dupe.NewMissing(), fmt.Errorf("unknown strategy %q", fields[2])
			}
			strategy = parsed
		}
		return dupe.DeepCopy(src, strategy)
	}
	if looksLikeJSON(expr) {
		return dupe.ParseJSON([]byte(expr))
	}
	return m.resolve(expr)
}

func looksLikeJSON(expr string) bool {
	switch expr {
	case "true", "false", "null":
		return true
	case "":
		return false
	}
	switch expr[0] {
	case '{', '[', '"', '-':
		return true
	}
	return expr[0] >= '0' && expr[0] <= '9'
}
