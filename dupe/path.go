package dupe

import (
	"fmt"
	"strings"
)

// Step is one hop in a Path: a hash key or an array index.
type Step struct {
	Key   string
	Index int
	IsKey bool
}

// Path locates a slot in a value graph. The root renders as "$", keys as
// ".key" (bracketed and quoted when the key is not identifier-shaped) and
// indexes as "[3]".
type Path []Step

func (p Path) String() string {
	var b strings.Builder
	b.WriteString("$")
	for _, step := range p {
		switch {
		case step.IsKey && identifierKey(step.Key):
			b.WriteString(".")
			b.WriteString(step.Key)
		case step.IsKey:
			fmt.Fprintf(&b, "[%q]", step.Key)
		default:
			fmt.Fprintf(&b, "[%d]", step.Index)
		}
	}
	return b.String()
}

func identifierKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

// pathNode is the traversal-side spine of a Path: a child extends its parent
// in O(1) and shares the tail, so tracking positions stays cheap at any
// depth. A nil node is the root.
type pathNode struct {
	parent *pathNode
	step   Step
}

func (n *pathNode) materialize() Path {
	depth := 0
	for cur := n; cur != nil; cur = cur.parent {
		depth++
	}
	path := make(Path, depth)
	for cur := n; cur != nil; cur = cur.parent {
		depth--
		path[depth] = cur.step
	}
	return path
}
