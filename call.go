package overlay

import (
	"reflect"

	"github.com/overlay-go/overlay/internal"
	"github.com/overlay-go/overlay/internal/slices"
)

var (
	viewType     = reflect.TypeOf((*View)(nil)).Elem()
	previousType = reflect.TypeOf((**Previous)(nil)).Elem()
)

// operation models a callable container entry.
// fn is an ordinary Go function invoked through reflection.
// An operation may declare a leading parameter of type View to receive
// its evaluation context.  Once composed over a previous operation,
// prev holds the handle injected according to the container's policy.
type operation struct {
	fn       reflect.Value
	typ      reflect.Type
	hasView  bool
	variadic bool
	domain   int
	prev     *Previous
}

func newOperation(fn any) *operation {
	val, ok := fn.(reflect.Value)
	if !ok {
		val = reflect.ValueOf(fn)
	}
	if !val.IsValid() || val.Kind() != reflect.Func {
		panic("overlay: fn is not a valid function")
	}
	typ := val.Type()
	op := &operation{fn: val, typ: typ, variadic: typ.IsVariadic()}
	if typ.NumIn() > 0 && typ.In(0) == viewType {
		op.hasView = true
	}
	op.domain = typ.NumIn()
	if op.hasView {
		op.domain--
	}
	return op
}

func (op *operation) source() any {
	return op.fn.Interface()
}

// withPrevious returns a copy of the operation wired to the handle.
// The receiver is left untouched so the same Op value can participate
// in several compositions.
func (op *operation) withPrevious(prev *Previous) *operation {
	composed := *op
	composed.prev = prev
	return &composed
}

// invoke calls the operation with view as its evaluation context.
// args are the caller's domain arguments; the previous handle, if any,
// is appended according to policy.  A trailing error result is split
// off and propagated unchanged.
func (op *operation) invoke(
	view   View,
	policy InjectionPolicy,
	args   []any,
) ([]any, error) {
	params := args
	injected := 0
	if prev := op.prev; prev != nil && policy.inject(op, len(args)) {
		params = make([]any, len(args), len(args)+1)
		copy(params, args)
		params = append(params, prev)
		injected = 1
	}
	supplied := len(params)
	if op.hasView {
		supplied++
	}
	numIn := op.typ.NumIn()
	if op.variadic {
		if supplied < numIn-1 {
			return nil, &ArityError{fn: op.fn, declared: op.domain - 1, supplied: len(args)}
		}
	} else if supplied != numIn {
		return nil, &ArityError{fn: op.fn, declared: op.domain - injected, supplied: len(args)}
	}
	in := make([]reflect.Value, 0, supplied)
	if op.hasView {
		in = append(in, reflect.ValueOf(view))
	}
	for _, param := range params {
		idx := len(in)
		pv, ok := coerceArg(param, op.paramType(idx))
		if !ok {
			return nil, &ArgumentError{fn: op.fn, index: idx, value: param}
		}
		in = append(in, pv)
	}
	return splitResults(op.typ, op.fn.Call(in))
}

// paramType resolves the declared type of the parameter at idx,
// unwrapping the variadic slice element when necessary.
func (op *operation) paramType(idx int) reflect.Type {
	numIn := op.typ.NumIn()
	if op.variadic && idx >= numIn-1 {
		return op.typ.In(numIn - 1).Elem()
	}
	return op.typ.In(idx)
}

func coerceArg(arg any, pt reflect.Type) (reflect.Value, bool) {
	if internal.IsNil(arg) {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface,
			reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(pt), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(pt):
		return v, true
	case v.Type().ConvertibleTo(pt):
		return v.Convert(pt), true
	}
	return reflect.Value{}, false
}

// splitResults normalizes the function outputs.  If the trailing
// result is an error it is detached; the remaining results become
// the output slice.
func splitResults(typ reflect.Type, outs []reflect.Value) ([]any, error) {
	numOut := typ.NumOut()
	if numOut > 0 && typ.Out(numOut-1) == internal.ErrorType {
		var err error
		if e := outs[numOut-1].Interface(); e != nil {
			err = e.(error)
		}
		return resultValues(outs[:numOut-1]), err
	}
	return resultValues(outs), nil
}

func resultValues(outs []reflect.Value) []any {
	if len(outs) == 0 {
		return []any{}
	}
	return slices.Map[reflect.Value, any](outs,
		func(v reflect.Value) any { return v.Interface() })
}
