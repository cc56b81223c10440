package dupe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"
)

// Encoding is capped below the decoder's own nesting limit so a document we
// produce always decodes back.
const maxJSONDepth = 5000

func jsonRoundTrip(source Value) (Value, error) {
	encoded, err := encodeJSONValue(source)
	if err != nil {
		return NewMissing(), err
	}
	payload, err := json.Marshal(encoded)
	if err != nil {
		return NewMissing(), fmt.Errorf("encode json: %w", err)
	}
	return ParseJSON(payload)
}

// ParseJSON decodes a single JSON document into a Value. Numbers become
// KindInt when they fit int64 and KindFloat otherwise; trailing data after
// the document is rejected.
func ParseJSON(data []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return NewMissing(), fmt.Errorf("invalid json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return NewMissing(), fmt.Errorf("invalid json: trailing data")
	}
	return decodedValue(decoded)
}

// MarshalJSON implements json.Marshaler. Missing entries are dropped from
// hashes and encoded as null elsewhere, symbols and times degrade to their
// text, and non-finite floats become null. Callables, big ints and cycles
// cannot be represented and produce an error.
func (v Value) MarshalJSON() ([]byte, error) {
	encoded, err := encodeJSONValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(encoded)
}

// UnmarshalJSON implements json.Unmarshaler with ParseJSON semantics.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// The decoded tree's depth is bounded by the decoder's nesting limit, so
// plain recursion is safe here.
func decodedValue(val any) (Value, error) {
	switch v := val.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(v), nil
	case string:
		return NewString(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return NewInt(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return NewMissing(), fmt.Errorf("invalid json number %q", v.String())
		}
		return NewFloat(f), nil
	case []any:
		arr := make([]Value, len(v))
		for i, item := range v {
			converted, err := decodedValue(item)
			if err != nil {
				return NewMissing(), err
			}
			arr[i] = converted
		}
		return NewArray(arr), nil
	case map[string]any:
		entries := make(map[string]Value, len(v))
		for key, item := range v {
			converted, err := decodedValue(item)
			if err != nil {
				return NewMissing(), err
			}
			entries[key] = converted
		}
		return NewHash(entries), nil
	default:
		return NewMissing(), fmt.Errorf("unsupported json value type %T", val)
	}
}

// The encode walk mirrors the cloner's frame stack. Seen-sets are scoped to
// the path in flight (entries are removed when a container completes), so a
// shared reference encodes once per occurrence while a true cycle is caught
// where the enclosing container reappears.
type jsonEncoder struct {
	seenArrays map[arrayIdentity]struct{}
	seenHashes map[uintptr]struct{}
	stack      []encodeFrame
}

type encodeFrame struct {
	srcArr  []Value
	dstArr  []any
	srcHash map[string]Value
	dstMap  map[string]any
	keys    []string
	next    int
	path    *pathNode
}

func encodeJSONValue(source Value) (any, error) {
	enc := &jsonEncoder{
		seenArrays: make(map[arrayIdentity]struct{}),
		seenHashes: make(map[uintptr]struct{}),
	}
	root, err := enc.encodeValue(source, nil)
	if err != nil {
		return nil, err
	}
	if err := enc.drain(); err != nil {
		return nil, err
	}
	return root, nil
}

func (enc *jsonEncoder) drain() error {
	for len(enc.stack) > 0 {
		frame := &enc.stack[len(enc.stack)-1]
		if frame.srcArr != nil {
			if frame.next >= len(frame.srcArr) {
				delete(enc.seenArrays, arrayID(frame.srcArr))
				enc.stack = enc.stack[:len(enc.stack)-1]
				continue
			}
			i := frame.next
			frame.next++
			src := frame.srcArr[i]
			dst := frame.dstArr
			encoded, err := enc.encodeValue(src, jsonSlotNode(src, frame.path, Step{Index: i}))
			if err != nil {
				return err
			}
			dst[i] = encoded
			continue
		}
		if frame.next >= len(frame.keys) {
			delete(enc.seenHashes, hashID(frame.srcHash))
			enc.stack = enc.stack[:len(enc.stack)-1]
			continue
		}
		key := frame.keys[frame.next]
		frame.next++
		src := frame.srcHash[key]
		if src.kind == KindMissing {
			continue
		}
		dst := frame.dstMap
		encoded, err := enc.encodeValue(src, jsonSlotNode(src, frame.path, Step{Key: key, IsKey: true}))
		if err != nil {
			return err
		}
		dst[key] = encoded
	}
	return nil
}

func jsonSlotNode(val Value, parent *pathNode, step Step) *pathNode {
	switch val.kind {
	case KindArray, KindHash, KindBigInt, KindFunc:
		return &pathNode{parent: parent, step: step}
	default:
		return nil
	}
}

func (enc *jsonEncoder) encodeValue(val Value, node *pathNode) (any, error) {
	switch val.kind {
	case KindMissing, KindNull:
		return nil, nil
	case KindBool:
		return val.data.(bool), nil
	case KindInt:
		return val.data.(int64), nil
	case KindFloat:
		f := val.data.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, nil
		}
		return f, nil
	case KindString, KindSymbol:
		return val.data.(string), nil
	case KindTime:
		return val.data.(time.Time).Format(time.RFC3339Nano), nil
	case KindArray:
		src := val.data.([]Value)
		if len(src) > 0 {
			id := arrayID(src)
			if _, seen := enc.seenArrays[id]; seen {
				return nil, enc.cycleError(KindArray, node)
			}
			if len(enc.stack) >= maxJSONDepth {
				return nil, enc.depthError(KindArray, node)
			}
			enc.seenArrays[id] = struct{}{}
		}
		dst := make([]any, len(src))
		if len(src) > 0 {
			enc.stack = append(enc.stack, encodeFrame{srcArr: src, dstArr: dst, path: node})
		}
		return dst, nil
	case KindHash:
		src := val.data.(map[string]Value)
		if len(src) > 0 {
			id := hashID(src)
			if _, seen := enc.seenHashes[id]; seen {
				return nil, enc.cycleError(KindHash, node)
			}
			if len(enc.stack) >= maxJSONDepth {
				return nil, enc.depthError(KindHash, node)
			}
			enc.seenHashes[id] = struct{}{}
		}
		dst := make(map[string]any, len(src))
		if len(src) > 0 {
			enc.stack = append(enc.stack, encodeFrame{srcHash: src, dstMap: dst, keys: sortedKeys(src), path: node})
		}
		return dst, nil
	default:
		return nil, &UnsupportedKindError{Kind: val.kind, Path: node.materialize(), Strategy: JSONRoundTrip}
	}
}

func (enc *jsonEncoder) cycleError(kind ValueKind, node *pathNode) error {
	return &UnsupportedKindError{
		Kind:     kind,
		Path:     node.materialize(),
		Strategy: JSONRoundTrip,
		Reason:   "cycle has no json representation",
	}
}

func (enc *jsonEncoder) depthError(kind ValueKind, node *pathNode) error {
	return &UnsupportedKindError{
		Kind:     kind,
		Path:     node.materialize(),
		Strategy: JSONRoundTrip,
		Reason:   fmt.Sprintf("nesting deeper than %d", maxJSONDepth),
		cause:    ErrTooDeep,
	}
}
