package logs

import (
	"github.com/go-logr/logr"
	"github.com/overlay-go/overlay"
	"github.com/overlay-go/overlay/setup"
)

// Installer enables logging support for a setup.Builder.
type Installer struct {
	root      logr.Logger
	verbosity int
}

// SetVerbosity sets the default verbosity of the container logger.
func (l *Installer) SetVerbosity(level int) {
	l.verbosity = level
}

func (l *Installer) Install(b *setup.Builder) error {
	if b.Tag(&featureTag) {
		logger := l.root
		if l.verbosity > 0 {
			logger = logger.V(l.verbosity)
		}
		b.Options(overlay.WithLogger(logger))
	}
	return nil
}

// Feature creates and configures logging support
// with the supplied root logger.
func Feature(
	root logr.Logger,
	config ...func(*Installer),
) setup.Feature {
	installer := &Installer{root: root}
	for _, configure := range config {
		if configure != nil {
			configure(installer)
		}
	}
	return installer
}

// Verbosity raises the default verbosity of the container logger.
func Verbosity(level int) func(*Installer) {
	return func(i *Installer) {
		i.SetVerbosity(level)
	}
}

var featureTag byte
