// Package logs instruments containers and operations
// with logr loggers.
package logs

import "github.com/go-logr/logr"

// Factory creates named loggers for containers.
type Factory struct {
	root logr.Logger
}

func NewFactory(root logr.Logger) *Factory {
	return &Factory{root}
}

// Logger returns the root logger scoped to name.
func (f *Factory) Logger(name string) logr.Logger {
	if name == "" {
		return f.root
	}
	return f.root.WithName(name)
}
