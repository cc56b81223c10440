package dupe

type ValueKind int

const (
	KindMissing ValueKind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindBigInt
	KindString
	KindSymbol
	KindTime
	KindFunc
	KindArray
	KindHash
)

type Value struct {
	kind ValueKind
	data any
}

// Func is a callable carried inside a Value. Callables have no structural
// representation: copies share the same *Func, and strategies that require
// full structural independence refuse them.
type Func struct {
	Name string
	Impl func(args []Value) (Value, error)
}

// Call invokes the callable with the given arguments.
func (f *Func) Call(args []Value) (Value, error) {
	if f == nil || f.Impl == nil {
		return NewNull(), errNoFuncImpl
	}
	return f.Impl(args)
}
