package overlay

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidProps reports a nil props mapping passed
// to New or Container.Update.
var ErrInvalidProps = errors.New("overlay: props must be a non-nil mapping")

type (
	// InvalidPropError reports a props entry that is not a valid Value.
	InvalidPropError struct {
		Key string
	}

	// UnknownKeyError reports a call against a key missing
	// from the snapshot.
	UnknownKeyError struct {
		Key string
	}

	// NotOperationError reports a call against a key holding
	// plain data.
	NotOperationError struct {
		Key string
	}

	// ArityError reports an operation invoked with the wrong number
	// of arguments.  Counts are caller-facing: the injected evaluation
	// context and previous handle are excluded.
	ArityError struct {
		fn       reflect.Value
		declared int
		supplied int
	}

	// ArgumentError reports an operation argument that cannot be
	// assigned to its declared parameter.
	ArgumentError struct {
		fn    reflect.Value
		index int
		value any
	}
)

func (e *InvalidPropError) Error() string {
	return fmt.Sprintf("overlay: prop %q is not a valid Value", e.Key)
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("overlay: key %q not found", e.Key)
}

func (e *NotOperationError) Error() string {
	return fmt.Sprintf("overlay: key %q holds data, not an operation", e.Key)
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("overlay: %v expects %d arguments, got %d",
		e.fn.Type(), e.declared, e.supplied)
}

// Declared returns the number of arguments the operation accepts
// from callers.
func (e *ArityError) Declared() int {
	return e.declared
}

// Supplied returns the number of arguments the caller passed.
func (e *ArityError) Supplied() int {
	return e.supplied
}

func (e *ArgumentError) Error() string {
	typ := e.fn.Type()
	param := typ.In(typ.NumIn() - 1)
	if e.index < typ.NumIn()-1 {
		param = typ.In(e.index)
	} else if typ.IsVariadic() {
		param = param.Elem()
	}
	return fmt.Sprintf("overlay: argument %d (%T) is not assignable to %v",
		e.index, e.value, param)
}
