package overlay

import (
	jsoniter "github.com/json-iterator/go"
)

// View is the read surface an operation evaluates against.
// Operations receive it by declaring a leading parameter of type View.
type View interface {
	// Get returns the entry for key and whether it exists.
	Get(key string) (Value, bool)

	// Keys returns the entry keys in snapshot order.
	Keys() []string

	// Call invokes the operation stored under key.
	Call(key string, args ...any) ([]any, error)
}

// Snapshot is an immutable keyed mapping representing container
// state at one instant.  Entries are fixed once the snapshot is
// built; updates produce a new Snapshot and never touch existing
// ones, so any holder of a Snapshot observes stable state.
type Snapshot struct {
	keys    []string
	entries map[string]Value
	policy  InjectionPolicy
}

var json = jsoniter.ConfigFastest

func newSnapshot(initial Props, policy InjectionPolicy) *Snapshot {
	snap := &Snapshot{
		keys:    sortedKeys(initial),
		entries: make(map[string]Value, len(initial)),
		policy:  policy,
	}
	for key, val := range initial {
		snap.entries[key] = val
	}
	return snap
}

// Get returns the entry for key and whether it exists.
func (s *Snapshot) Get(key string) (Value, bool) {
	val, ok := s.entries[key]
	return val, ok
}

// Keys returns the entry keys: carried keys first in the order of the
// originating snapshot, newly introduced keys sorted after them.
func (s *Snapshot) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Call invokes the operation stored under key, passing args and
// evaluating the operation with this snapshot as its context.
// Errors raised by the operation are propagated unchanged.
func (s *Snapshot) Call(key string, args ...any) ([]any, error) {
	val, ok := s.entries[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}
	if !val.IsOperation() {
		return nil, &NotOperationError{Key: key}
	}
	return val.op.invoke(s, s.policy, args)
}

// MarshalJSON renders the snapshot for diagnostics: data entries as
// their JSON value, operations as their signature string.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)
	stream.WriteObjectStart()
	for i, key := range s.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		if val := s.entries[key]; val.IsOperation() {
			stream.WriteString(val.op.typ.String())
		} else {
			stream.WriteVal(val.data)
		}
	}
	stream.WriteObjectEnd()
	if err := stream.Error; err != nil {
		return nil, err
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// DataAt reads the data entry for key from a View, typed.
// It returns false if the key is absent, holds an operation,
// or holds data of a different type.
func DataAt[T any](view View, key string) (T, bool) {
	if val, ok := view.Get(key); ok && val.IsData() {
		if data, ok := val.data.(T); ok {
			return data, true
		}
	}
	var zero T
	return zero, false
}
