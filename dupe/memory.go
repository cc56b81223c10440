package dupe

import (
	"math/big"
	"unsafe"
)

const (
	estimatedValueBytes        = 24
	estimatedStringHeaderBytes = 16
	estimatedSliceBaseBytes    = 24
	estimatedMapBaseBytes      = 48
	estimatedMapEntryBytes     = 32
	estimatedBigIntBaseBytes   = 48
	estimatedFuncBytes         = 32
)

type sizeEstimator struct {
	seenSlices  map[arrayIdentity]struct{}
	seenMaps    map[uintptr]struct{}
	seenStrings map[stringIdentity]struct{}
	seenFuncs   map[*Func]struct{}
	work        []Value
}

type stringIdentity struct {
	ptr uintptr
	len int
}

// EstimateSize approximates the retained bytes of a value graph. Storage
// reachable through more than one path is counted once, so the estimate
// stays meaningful for values with shared references or cycles. Hosts that
// pass untrusted input to DeepCopy can use it to bound cost up front.
func EstimateSize(val Value) int {
	est := &sizeEstimator{
		seenSlices:  make(map[arrayIdentity]struct{}),
		seenMaps:    make(map[uintptr]struct{}),
		seenStrings: make(map[stringIdentity]struct{}),
		seenFuncs:   make(map[*Func]struct{}),
	}
	total := 0
	est.work = append(est.work, val)
	for len(est.work) > 0 {
		cur := est.work[len(est.work)-1]
		est.work = est.work[:len(est.work)-1]
		total += est.value(cur)
	}
	return total
}

func (est *sizeEstimator) value(val Value) int {
	size := estimatedValueBytes

	switch val.kind {
	case KindString, KindSymbol:
		size += estimatedStringHeaderBytes
		size += est.stringPayloadSize(val.data.(string))
	case KindBigInt:
		size += estimatedBigIntBaseBytes + len(val.data.(*big.Int).Bits())*8
	case KindFunc:
		fn := val.data.(*Func)
		if fn == nil {
			break
		}
		if _, seen := est.seenFuncs[fn]; seen {
			break
		}
		est.seenFuncs[fn] = struct{}{}
		size += estimatedFuncBytes + len(fn.Name)
	case KindArray:
		size += est.slice(val.data.([]Value))
	case KindHash:
		size += est.hash(val.data.(map[string]Value))
	}

	return size
}

func (est *sizeEstimator) stringPayloadSize(str string) int {
	if len(str) == 0 {
		return 0
	}

	key := stringIdentity{
		ptr: uintptr(unsafe.Pointer(unsafe.StringData(str))),
		len: len(str),
	}
	if _, seen := est.seenStrings[key]; seen {
		return 0
	}
	est.seenStrings[key] = struct{}{}
	return len(str)
}

func (est *sizeEstimator) slice(values []Value) int {
	size := estimatedSliceBaseBytes + cap(values)*estimatedValueBytes
	if cap(values) == 0 {
		return size
	}

	id := arrayID(values)
	if _, seen := est.seenSlices[id]; seen {
		return 0
	}
	est.seenSlices[id] = struct{}{}

	est.work = append(est.work, values...)
	return size
}

func (est *sizeEstimator) hash(values map[string]Value) int {
	id := hashID(values)
	if id != 0 {
		if _, seen := est.seenMaps[id]; seen {
			return 0
		}
		est.seenMaps[id] = struct{}{}
	}

	size := estimatedMapBaseBytes + len(values)*estimatedMapEntryBytes
	for key, val := range values {
		size += estimatedStringHeaderBytes + len(key)
		est.work = append(est.work, val)
	}
	return size
}
