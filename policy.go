package overlay

import "fmt"

// InjectionPolicy decides whether a composed operation receives its
// Previous handle as the final positional argument.  A container uses
// exactly one policy for its entire lifetime; policies are never mixed.
type InjectionPolicy uint8

const (
	// InjectAlways appends the handle on every invocation of a composed
	// operation.  Overriding operations must declare a trailing
	// *Previous parameter.  Variadic operations have no trailing slot
	// to declare and never receive the handle.
	InjectAlways InjectionPolicy = iota

	// InjectByArity appends the handle only when the composed operation
	// declares more parameters than the call supplied.  Variadic
	// operations never receive arity-based injection.
	InjectByArity
)

func (p InjectionPolicy) String() string {
	switch p {
	case InjectByArity:
		return "arity"
	default:
		return "always"
	}
}

// ParseInjectionPolicy maps the configuration names "always" and
// "arity" to their policy.
func ParseInjectionPolicy(name string) (InjectionPolicy, error) {
	switch name {
	case "always":
		return InjectAlways, nil
	case "arity":
		return InjectByArity, nil
	}
	return InjectAlways, fmt.Errorf("overlay: unknown injection policy %q", name)
}

func (p InjectionPolicy) inject(op *operation, supplied int) bool {
	if op.variadic {
		return false
	}
	if p == InjectByArity {
		return op.domain > supplied
	}
	return true
}
