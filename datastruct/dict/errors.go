package dict

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument 表示 key 或 value 为 nil
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfMemory 表示存储无法再扩容
	ErrOutOfMemory = errors.New("out of memory")
)

// isNil 同时识别无类型 nil 与带类型的 nil 指针、map、slice 等
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func checkArgs(op string, key Key, value any) error {
	if isNil(key) {
		return errors.Wrapf(ErrInvalidArgument, "%s: nil key", op)
	}
	if isNil(value) {
		return errors.Wrapf(ErrInvalidArgument, "%s: nil value for key %v", op, key)
	}
	return nil
}
