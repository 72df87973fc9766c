package overlay

import (
	"fmt"
	"reflect"

	"github.com/overlay-go/overlay/internal"
)

// DecoratorFunc receives the evaluation context of the decorated
// operation (nil when the signature declares none), the domain
// arguments, and the previous handle.
type DecoratorFunc func(view View, args []any, prev *Previous) ([]any, error)

// Decorate builds an override for an operation with the signature of
// fn: the result shares fn's domain parameters with a trailing
// *Previous appended, and delegates every invocation to impl.  A
// trailing *Previous already declared by fn is the handle slot of an
// earlier composition, not a domain parameter, so it is replaced
// rather than duplicated; decorating a composed operation therefore
// preserves its caller-facing signature.  The built operation works
// under either injection policy.  fn must be a non-variadic function;
// if impl can fail, fn must declare a trailing error result.
func Decorate(fn any, impl DecoratorFunc) Value {
	base := newOperation(fn)
	if base.variadic {
		panic("overlay: cannot decorate a variadic operation")
	}
	bt := base.typ
	in := make([]reflect.Type, 0, bt.NumIn()+1)
	for i := 0; i < bt.NumIn(); i++ {
		in = append(in, bt.In(i))
	}
	if n := len(in); n > 0 && in[n-1] == previousType {
		in = in[:n-1]
	}
	in = append(in, previousType)
	out := make([]reflect.Type, bt.NumOut())
	for i := range out {
		out[i] = bt.Out(i)
	}
	hasErr := len(out) > 0 && out[len(out)-1] == internal.ErrorType
	wrapper := reflect.MakeFunc(reflect.FuncOf(in, out, false),
		func(callIn []reflect.Value) []reflect.Value {
			var view View
			argStart := 0
			if base.hasView {
				view, _ = callIn[0].Interface().(View)
				argStart = 1
			}
			prev := callIn[len(callIn)-1].Interface().(*Previous)
			args := make([]any, 0, len(callIn)-argStart-1)
			for _, v := range callIn[argStart : len(callIn)-1] {
				args = append(args, v.Interface())
			}
			results, err := impl(view, args, prev)
			return decoratorResults(out, hasErr, results, err)
		})
	return Value{tag: tagOperation, op: newOperation(wrapper)}
}

func decoratorResults(
	out     []reflect.Type,
	hasErr  bool,
	results []any,
	err     error,
) []reflect.Value {
	vals := make([]reflect.Value, len(out))
	n := len(out)
	if hasErr {
		n--
		ev := reflect.New(internal.ErrorType).Elem()
		if err != nil {
			ev.Set(reflect.ValueOf(err))
		}
		vals[n] = ev
	} else if err != nil {
		panic(fmt.Sprintf(
			"overlay: decorated operation cannot return error: %v", err))
	}
	for i := 0; i < n; i++ {
		if i < len(results) {
			rv, ok := coerceArg(results[i], out[i])
			if !ok {
				panic(fmt.Sprintf(
					"overlay: decorator result %d (%T) is not assignable to %v",
					i, results[i], out[i]))
			}
			vals[i] = rv
		} else {
			vals[i] = reflect.Zero(out[i])
		}
	}
	return vals
}
