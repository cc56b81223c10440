package dupe

import "maps"

// ShallowCopy duplicates the top level of a container: the result is a new
// instance holding the same element values, so nested containers stay shared
// with the source. Primitives come back unchanged. ShallowCopy is total and
// never fails.
func ShallowCopy(source Value) Value {
	switch source.kind {
	case KindArray:
		src := source.data.([]Value)
		dup := make([]Value, len(src))
		copy(dup, src)
		return Value{kind: KindArray, data: dup}
	case KindHash:
		src := source.data.(map[string]Value)
		dup := make(map[string]Value, len(src))
		maps.Copy(dup, src)
		return Value{kind: KindHash, data: dup}
	default:
		return source
	}
}
