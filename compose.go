package overlay

import (
	"sort"

	"github.com/go-logr/logr"
)

// compose produces the next snapshot from base and props.
//
// For every key in props: if the base entry and the incoming value are
// both operations, the result is a composed operation whose Previous
// handle pins the replaced operation to base; any other combination is
// a plain replace and the old entry becomes unreachable.  Keys present
// only in base are carried over unchanged.  Composition itself never
// fails; failures belong to eventual operation invocations.
func compose(base *Snapshot, props Props, logger logr.Logger) *Snapshot {
	next := &Snapshot{
		keys:    make([]string, len(base.keys), len(base.keys)+len(props)),
		entries: make(map[string]Value, len(base.entries)+len(props)),
		policy:  base.policy,
	}
	copy(next.keys, base.keys)
	for key, val := range base.entries {
		next.entries[key] = val
	}
	for _, key := range sortedKeys(props) {
		incoming := props[key]
		old, ok := base.entries[key]
		if ok && old.IsOperation() && incoming.IsOperation() {
			prev := newPrevious(old.op, base)
			next.entries[key] = Value{
				tag: tagOperation,
				op:  incoming.op.withPrevious(prev),
			}
			logger.V(1).Info("wrapped operation",
				"key", key, "layer", prev.id)
		} else {
			next.entries[key] = incoming
			logger.V(1).Info("replaced entry", "key", key)
		}
		if !ok {
			next.keys = append(next.keys, key)
		}
	}
	return next
}

func sortedKeys(props Props) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
