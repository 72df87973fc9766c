package overlay

import "github.com/google/uuid"

// Previous couples a replaced operation to the snapshot that was
// current when the wrap occurred.  The wrapped operation evaluates
// against that snapshot forever, regardless of later updates.
//
// A Previous also carries a mutable side-channel scoped to its own
// override layer, used for memoization, rate-limit timestamps and
// similar per-layer state.  One handle is created per Update that
// introduces the wrap and is reused across invocations, so fields
// written during one call are visible on the next.
//
// The side-channel is not synchronized; composition is single
// threaded by contract and concurrent mutation must be excluded
// by the host.
type Previous struct {
	op    *operation
	snap  *Snapshot
	id    uuid.UUID
	state map[string]any
}

func newPrevious(op *operation, snap *Snapshot) *Previous {
	return &Previous{
		op:    op,
		snap:  snap,
		id:    uuid.New(),
		state: make(map[string]any),
	}
}

// Call forwards args to the wrapped operation, evaluated with the
// captured snapshot as its context.  The operation's result or error
// is returned unchanged.
func (p *Previous) Call(args ...any) ([]any, error) {
	return p.op.invoke(p.snap, p.snap.policy, args)
}

// ID identifies the override layer owning this handle.
func (p *Previous) ID() uuid.UUID {
	return p.id
}

// Snapshot returns the captured snapshot the wrapped
// operation evaluates against.
func (p *Previous) Snapshot() *Snapshot {
	return p.snap
}

// Set stores val under key in the handle's side-channel.
func (p *Previous) Set(key string, val any) {
	p.state[key] = val
}

// Get returns the side-channel value for key or nil.
func (p *Previous) Get(key string) any {
	return p.state[key]
}

// Lookup returns the side-channel value for key and whether it exists.
func (p *Previous) Lookup(key string) (any, bool) {
	val, ok := p.state[key]
	return val, ok
}

// Delete removes key from the handle's side-channel.
func (p *Previous) Delete(key string) {
	delete(p.state, key)
}
