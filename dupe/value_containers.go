package dupe

import (
	"fmt"
	"sort"
)

// Len returns the element count of a container and 0 for everything else.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.data.([]Value))
	case KindHash:
		return len(v.data.(map[string]Value))
	default:
		return 0
	}
}

func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray {
		return NewMissing(), false
	}
	arr := v.data.([]Value)
	if i < 0 || i >= len(arr) {
		return NewMissing(), false
	}
	return arr[i], true
}

// SetIndex replaces an existing slot in place. It never grows the array, so
// the backing storage (and therefore the instance identity) is stable.
func (v Value) SetIndex(i int, elem Value) error {
	if v.kind != KindArray {
		return fmt.Errorf("%w (%s)", ErrNotArray, v.kind)
	}
	arr := v.data.([]Value)
	if i < 0 || i >= len(arr) {
		return fmt.Errorf("%w (%d of %d)", ErrIndexOutOfRange, i, len(arr))
	}
	arr[i] = elem
	return nil
}

func (v Value) Key(key string) (Value, bool) {
	if v.kind != KindHash {
		return NewMissing(), false
	}
	elem, ok := v.data.(map[string]Value)[key]
	if !ok {
		return NewMissing(), false
	}
	return elem, true
}

func (v Value) SetKey(key string, elem Value) error {
	if v.kind != KindHash {
		return fmt.Errorf("%w (%s)", ErrNotHash, v.kind)
	}
	v.data.(map[string]Value)[key] = elem
	return nil
}

func (v Value) DeleteKey(key string) error {
	if v.kind != KindHash {
		return fmt.Errorf("%w (%s)", ErrNotHash, v.kind)
	}
	delete(v.data.(map[string]Value), key)
	return nil
}

// Keys returns the hash keys in sorted order and nil for everything else.
func (v Value) Keys() []string {
	if v.kind != KindHash {
		return nil
	}
	return sortedKeys(v.data.(map[string]Value))
}

func sortedKeys(entries map[string]Value) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
