package slices

import "fmt"

type MapFunc[IN, OUT any] interface {
	~func(int, IN) OUT | ~func(IN) OUT
}

// Map turns a []IN to a []OUT using a mapping function.
// The function receives the element with or without its index.
func Map[IN, OUT any, F MapFunc[IN, OUT]](in []IN, fun F) []OUT {
	if in == nil {
		return nil
	}
	if len(in) == 0 {
		var out []OUT
		return out
	}
	f := func(i int, item IN) OUT {
		switch typ := any(fun).(type) {
		case func(int, IN) OUT:
			return typ(i, item)
		case func(IN) OUT:
			return typ(item)
		}
		panic(fmt.Sprintf("unrecognized Map function type %T", fun))
	}
	out := make([]OUT, len(in))
	for i, item := range in {
		out[i] = f(i, item)
	}
	return out
}
