package dupe

import (
	"fmt"
	"math/big"
)

// DeepCopy returns a copy of source that shares no mutable storage with it:
// every container reachable from the result is a fresh instance and mutating
// either side never affects the other. How values outside the strategy's
// reach are handled is the strategy's call; see Strategy. JSONRoundTrip is
// lossy about primitive kinds: symbols and times come back as strings and
// integral floats as ints, so its result can differ from the source under
// Equal even when cloning succeeds. On error nothing of the partial copy is
// returned.
func DeepCopy(source Value, strategy Strategy) (Value, error) {
	switch strategy {
	case StructuralClone, RecursiveClone:
		return cloneValueGraph(source, strategy)
	case JSONRoundTrip:
		return jsonRoundTrip(source)
	default:
		return NewMissing(), fmt.Errorf("unknown strategy (%d)", int(strategy))
	}
}

// MustDeepCopy is DeepCopy for call sites whose inputs cannot fail under the
// chosen strategy; it panics otherwise.
func MustDeepCopy(source Value, strategy Strategy) Value {
	result, err := DeepCopy(source, strategy)
	if err != nil {
		panic(err)
	}
	return result
}

// The graph walk is iterative: frames on an explicit stack stand in for call
// frames, so input nesting depth never translates into goroutine stack
// growth. Each source container is cloned exactly once and registered before
// its slots are filled, which is what keeps cycles and shared references
// intact in the copy.
type cloner struct {
	strategy   Strategy
	rejectFunc bool
	seenArrays map[arrayIdentity]Value
	seenHashes map[uintptr]Value
	stack      []cloneFrame
}

type cloneFrame struct {
	srcArr  []Value
	dstArr  []Value
	srcHash map[string]Value
	dstHash map[string]Value
	keys    []string
	next    int
	path    *pathNode
}

func cloneValueGraph(source Value, strategy Strategy) (Value, error) {
	c := &cloner{
		strategy:   strategy,
		rejectFunc: strategy == StructuralClone,
		seenArrays: make(map[arrayIdentity]Value),
		seenHashes: make(map[uintptr]Value),
	}
	root, err := c.cloneValue(source, nil)
	if err != nil {
		return NewMissing(), err
	}
	if err := c.drain(); err != nil {
		return NewMissing(), err
	}
	return root, nil
}

func (c *cloner) drain() error {
	for len(c.stack) > 0 {
		frame := &c.stack[len(c.stack)-1]
		if frame.srcArr != nil {
			if frame.next >= len(frame.srcArr) {
				c.stack = c.stack[:len(c.stack)-1]
				continue
			}
			i := frame.next
			frame.next++
			src := frame.srcArr[i]
			dst := frame.dstArr
			elem, err := c.cloneValue(src, c.slotNode(src, frame.path, Step{Index: i}))
			if err != nil {
				return err
			}
			dst[i] = elem
			continue
		}
		if frame.next >= len(frame.keys) {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		key := frame.keys[frame.next]
		frame.next++
		src := frame.srcHash[key]
		dst := frame.dstHash
		elem, err := c.cloneValue(src, c.slotNode(src, frame.path, Step{Key: key, IsKey: true}))
		if err != nil {
			return err
		}
		dst[key] = elem
	}
	return nil
}

// slotNode extends the parent path only for slots that can need it, so plain
// scalar slots cost no allocation.
func (c *cloner) slotNode(val Value, parent *pathNode, step Step) *pathNode {
	switch val.kind {
	case KindArray, KindHash:
		return &pathNode{parent: parent, step: step}
	case KindFunc:
		if c.rejectFunc {
			return &pathNode{parent: parent, step: step}
		}
	}
	return nil
}

func (c *cloner) cloneValue(val Value, node *pathNode) (Value, error) {
	switch val.kind {
	case KindArray:
		src := val.data.([]Value)
		if len(src) > 0 {
			if clone, ok := c.seenArrays[arrayID(src)]; ok {
				return clone, nil
			}
		}
		dst := make([]Value, len(src))
		clone := Value{kind: KindArray, data: dst}
		if len(src) > 0 {
			c.seenArrays[arrayID(src)] = clone
			c.stack = append(c.stack, cloneFrame{srcArr: src, dstArr: dst, path: node})
		}
		return clone, nil
	case KindHash:
		src := val.data.(map[string]Value)
		id := hashID(src)
		if id != 0 {
			if clone, ok := c.seenHashes[id]; ok {
				return clone, nil
			}
		}
		dst := make(map[string]Value, len(src))
		clone := Value{kind: KindHash, data: dst}
		if id != 0 {
			c.seenHashes[id] = clone
		}
		if len(src) > 0 {
			c.stack = append(c.stack, cloneFrame{srcHash: src, dstHash: dst, keys: sortedKeys(src), path: node})
		}
		return clone, nil
	case KindFunc:
		if c.rejectFunc {
			return NewMissing(), &UnsupportedKindError{Kind: KindFunc, Path: node.materialize(), Strategy: c.strategy}
		}
		return val, nil
	case KindBigInt:
		return Value{kind: KindBigInt, data: new(big.Int).Set(val.data.(*big.Int))}, nil
	default:
		return val, nil
	}
}
