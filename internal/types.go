package internal

import "reflect"

var ErrorType = reflect.TypeOf((*error)(nil)).Elem()

// IsNil determines if the value is typed or untyped nil.
func IsNil(val any) bool {
	if val == nil {
		return true
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}
