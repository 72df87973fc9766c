package overlay

type (
	// Value is a single container entry: either plain data or an
	// operation eligible for composition.  The zero Value is invalid
	// and rejected by New and Container.Update.
	Value struct {
		tag  tag
		data any
		op   *operation
	}

	// Props is a keyed set of values applied to a Container at
	// creation or through an update.
	Props map[string]Value

	tag uint8
)

const (
	tagInvalid tag = iota
	tagData
	tagOperation
)

// Data creates a Value holding plain data.
// Data entries always replace on update and never participate in wrapping.
func Data(v any) Value {
	return Value{tag: tagData, data: v}
}

// Op creates a Value holding an operation.
// fn must be a function; Op panics otherwise.
func Op(fn any) Value {
	return Value{tag: tagOperation, op: newOperation(fn)}
}

// IsData determines if the Value holds plain data.
func (v Value) IsData() bool {
	return v.tag == tagData
}

// IsOperation determines if the Value holds an operation.
func (v Value) IsOperation() bool {
	return v.tag == tagOperation
}

// Data returns the plain data held by the Value or nil
// if it holds an operation.
func (v Value) Data() any {
	if v.tag == tagData {
		return v.data
	}
	return nil
}

// Fn returns the function underlying an operation Value or nil
// if it holds plain data.  Decorators use it to inspect the
// signature of the operation they override.
func (v Value) Fn() any {
	if v.tag == tagOperation {
		return v.op.source()
	}
	return nil
}

func (v Value) valid() bool {
	return v.tag != tagInvalid
}
