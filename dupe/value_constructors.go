package dupe

import (
	"math/big"
	"time"
)

func NewMissing() Value           { return Value{kind: KindMissing} }
func NewNull() Value              { return Value{kind: KindNull} }
func NewBool(b bool) Value        { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value        { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value    { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value    { return Value{kind: KindString, data: s} }
func NewSymbol(name string) Value { return Value{kind: KindSymbol, data: name} }
func NewTime(t time.Time) Value   { return Value{kind: KindTime, data: t} }
func NewFunc(fn *Func) Value      { return Value{kind: KindFunc, data: fn} }
func NewArray(a []Value) Value    { return Value{kind: KindArray, data: a} }

// NewBigInt copies the provided integer so the Value never shares mutable
// storage with the caller. A nil argument yields zero.
func NewBigInt(i *big.Int) Value {
	n := new(big.Int)
	if i != nil {
		n.Set(i)
	}
	return Value{kind: KindBigInt, data: n}
}

// NewHash wraps the provided map. A nil map is replaced with an empty one so
// SetKey always has storage to write into.
func NewHash(h map[string]Value) Value {
	if h == nil {
		h = make(map[string]Value)
	}
	return Value{kind: KindHash, data: h}
}
