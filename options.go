package overlay

import (
	"github.com/go-logr/logr"
	"github.com/imdario/mergo"
)

type (
	// Options represent extensible container settings.
	Options struct {
		Name   string
		Policy InjectionPolicy
		Logger logr.Logger
	}

	// Option applies a single setting to Options.
	Option func(*Options)
)

// WithName assigns a name to the container, used to
// scope its logger.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithPolicy selects the injection policy for composed operations.
func WithPolicy(policy InjectionPolicy) Option {
	return func(o *Options) {
		o.Policy = policy
	}
}

// WithLogger assigns the logger used to instrument updates.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// MergeOptions fills the empty fields of into with from.
func MergeOptions(from, into *Options) bool {
	return mergo.Merge(into, *from) == nil
}

func buildOptions(opts []Option) Options {
	var options Options
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.Logger.GetSink() == nil {
		options.Logger = logr.Discard()
	}
	return options
}
