// Package validates provides a ready-made validation layer using
// https://github.com/go-playground/validator.
package validates

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/overlay-go/overlay"
)

var validate = validator.New()

// Op builds an override for an operation with the signature of fn
// that validates struct-typed arguments before delegating to the
// previous implementation.  A validation failure stops the chain and
// surfaces the validator error unchanged; the previous implementation
// is not invoked.
func Op(fn any) overlay.Value {
	return overlay.Decorate(fn, func(
		_    overlay.View,
		args []any,
		prev *overlay.Previous,
	) ([]any, error) {
		for _, arg := range args {
			if err := checkArg(arg); err != nil {
				return nil, err
			}
		}
		return prev.Call(args...)
	})
}

// Keys overrides each key in c with a validation layer.
// Every named key must currently hold an operation.
func Keys(c *overlay.Container, keys ...string) error {
	snap := c.Current()
	props := make(overlay.Props, len(keys))
	for _, key := range keys {
		val, ok := snap.Get(key)
		if !ok {
			return &overlay.UnknownKeyError{Key: key}
		}
		fn := val.Fn()
		if fn == nil {
			return &overlay.NotOperationError{Key: key}
		}
		props[key] = Op(fn)
	}
	return c.Update(props)
}

func checkArg(arg any) error {
	if arg == nil {
		return nil
	}
	v := reflect.ValueOf(arg)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return validate.Struct(v.Interface())
}
