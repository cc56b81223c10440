// Package dupe implements copying for dynamically shaped values. A Value is
// either a primitive (null, bool, int, float, big int, string, symbol, time,
// or a callable) or a container (array, hash). Containers have reference
// identity: two Values can share the same backing storage, and mutating
// through one is visible through the other.
//
// The package provides two entry points:
//   - ShallowCopy duplicates the top level of a container and shares
//     everything nested inside it.
//   - DeepCopy produces a fully independent copy under a chosen Strategy:
//     RecursiveClone (total, preserves cycles and shared references),
//     StructuralClone (same traversal, rejects callables), or JSONRoundTrip
//     (encode/decode through JSON, rejects anything outside the JSON-safe
//     subset).
//
// Traversal uses an explicit work stack, so deeply nested values do not grow
// the goroutine stack. EstimateSize approximates the retained bytes of a
// value graph; hosts handing untrusted input to DeepCopy can use it to bound
// cost up front.
package dupe
