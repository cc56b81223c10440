package dupe

import "reflect"

// arrayIdentity distinguishes array instances. The base pointer alone is not
// enough: a prefix slice shares its base pointer with the full array.
type arrayIdentity struct {
	ptr uintptr
	len int
}

func arrayID(values []Value) arrayIdentity {
	return arrayIdentity{ptr: reflect.ValueOf(values).Pointer(), len: len(values)}
}

func hashID(entries map[string]Value) uintptr {
	return reflect.ValueOf(entries).Pointer()
}
