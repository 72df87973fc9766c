// Package overlay is an in-process behavior-composition primitive:
// a keyed container of data and operations where overriding an
// operation produces a nested chain in which the new implementation
// may delegate to the one it replaced.
package overlay

import (
	"sync"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
)

// Container owns the single mutable reference to the current
// Snapshot.  Updates compose a fresh snapshot and swap the reference;
// snapshots handed out earlier are unaffected.  The reference itself
// is guarded so Current and Update may interleave, but invoking an
// operation chain concurrently with updates on one layer's
// side-channel must be excluded by the host.
type Container struct {
	name    string
	logger  logr.Logger
	current *Snapshot
	lock    sync.RWMutex
}

// New creates a Container whose first snapshot is built directly from
// initial.  No wrapping occurs at construction; there is no previous
// to compose against.
func New(initial Props, opts ...Option) (*Container, error) {
	if err := validateProps(initial); err != nil {
		return nil, err
	}
	options := buildOptions(opts)
	logger := options.Logger
	if options.Name != "" {
		logger = logger.WithName(options.Name)
	}
	c := &Container{
		name:    options.Name,
		logger:  logger,
		current: newSnapshot(initial, options.Policy),
	}
	c.logger.V(1).Info("container created",
		"keys", len(initial), "policy", options.Policy.String())
	return c, nil
}

// Name returns the container name, empty unless configured.
func (c *Container) Name() string {
	return c.name
}

// Policy returns the container's injection policy.
func (c *Container) Policy() InjectionPolicy {
	return c.Current().policy
}

// Current returns the live snapshot reference at the time of the call.
func (c *Container) Current() *Snapshot {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.current
}

// Update composes props over the current snapshot and swaps the
// container's reference to the result.  Holders of snapshots obtained
// before the update are unaffected.
func (c *Container) Update(props Props) error {
	if err := validateProps(props); err != nil {
		return err
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.current = compose(c.current, props, c.logger)
	return nil
}

func validateProps(props Props) error {
	if props == nil {
		return ErrInvalidProps
	}
	var err error
	for _, key := range sortedKeys(props) {
		if !props[key].valid() {
			err = multierror.Append(err, &InvalidPropError{Key: key})
		}
	}
	return err
}
