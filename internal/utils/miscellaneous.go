package utils

import (
	"reflect"
	"unsafe"
)

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// SamePointer compares the data pointers of a and b, both values are expected
// to be pointers or slices.
func SamePointer(a, b interface{}) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func GetByteSize[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}
