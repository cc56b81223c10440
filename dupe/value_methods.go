package dupe

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

func (k ValueKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindTime:
		return "time"
	case KindFunc:
		return "function"
	case KindArray:
		return "array"
	case KindHash:
		return "hash"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (v Value) String() string {
	return renderValue(v, &renderState{
		seenArrays: map[arrayIdentity]struct{}{},
		seenHashes: map[uintptr]struct{}{},
	})
}

type renderState struct {
	seenArrays map[arrayIdentity]struct{}
	seenHashes map[uintptr]struct{}
}

func renderValue(v Value, state *renderState) string {
	switch v.kind {
	case KindMissing:
		return ""
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.data.(int64))
	case KindFloat:
		return fmt.Sprintf("%g", v.data.(float64))
	case KindBigInt:
		return v.data.(*big.Int).String()
	case KindString, KindSymbol:
		return v.data.(string)
	case KindTime:
		return v.data.(time.Time).Format(time.RFC3339Nano)
	case KindFunc:
		fn := v.data.(*Func)
		if fn != nil && fn.Name != "" {
			return fmt.Sprintf("<fn %s>", fn.Name)
		}
		return "<fn>"
	case KindArray:
		elems := v.data.([]Value)
		if len(elems) > 0 {
			id := arrayID(elems)
			if _, seen := state.seenArrays[id]; seen {
				return "[...]"
			}
			state.seenArrays[id] = struct{}{}
			defer delete(state.seenArrays, id)
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = renderValue(e, state)
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case KindHash:
		entries := v.data.(map[string]Value)
		if len(entries) == 0 {
			return "{}"
		}
		id := hashID(entries)
		if id != 0 {
			if _, seen := state.seenHashes[id]; seen {
				return "{...}"
			}
			state.seenHashes[id] = struct{}{}
			defer delete(state.seenHashes, id)
		}
		parts := make([]string, 0, len(entries))
		for _, k := range sortedKeys(entries) {
			parts = append(parts, fmt.Sprintf("%s: %s", k, renderValue(entries[k], state)))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Equal reports structural equality: containers compare element by element at
// every depth. It does not terminate on cyclic values; compare identity with
// Aliases instead.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindMissing, KindNull:
		return true
	case KindBool:
		return v.data.(bool) == other.data.(bool)
	case KindInt:
		return v.data.(int64) == other.data.(int64)
	case KindFloat:
		return v.data.(float64) == other.data.(float64)
	case KindBigInt:
		return v.data.(*big.Int).Cmp(other.data.(*big.Int)) == 0
	case KindString, KindSymbol:
		return v.data.(string) == other.data.(string)
	case KindTime:
		return v.data.(time.Time).Equal(other.data.(time.Time))
	case KindFunc:
		return v.data.(*Func) == other.data.(*Func)
	case KindArray:
		a, b := v.data.([]Value), other.data.([]Value)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindHash:
		a, b := v.data.(map[string]Value), other.data.(map[string]Value)
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Aliases reports whether two values are the same container instance, i.e.
// whether a mutation through one is visible through the other. Empty arrays
// have no mutable slots and never alias.
func (v Value) Aliases(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindArray:
		a, b := v.data.([]Value), other.data.([]Value)
		if len(a) == 0 || len(b) == 0 {
			return false
		}
		return arrayID(a) == arrayID(b)
	case KindHash:
		a, b := hashID(v.data.(map[string]Value)), hashID(other.data.(map[string]Value))
		return a != 0 && a == b
	default:
		return false
	}
}
