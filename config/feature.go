package config

import (
	"github.com/knadh/koanf"
	"github.com/overlay-go/overlay/setup"
)

// Installer enables configuration support for a setup.Builder.
// Without configurers the whole configuration tree becomes the
// container's initial props.
type Installer struct {
	k         *koanf.Koanf
	props     string
	loadProps bool
	settings  string
}

func (i *Installer) Install(b *setup.Builder) error {
	if b.Tag(&featureTag) {
		if i.loadProps {
			props, err := Props(i.k, i.props)
			if err != nil {
				return err
			}
			b.Props(props)
		}
		if i.settings != "" {
			settings, err := Load(i.k, i.settings)
			if err != nil {
				return err
			}
			options, err := settings.Options()
			if err != nil {
				return err
			}
			b.Options(options...)
		}
	}
	return nil
}

// Feature creates and configures configuration support
// from the supplied koanf instance.
func Feature(
	k *koanf.Koanf,
	config ...func(*Installer),
) setup.Feature {
	if k == nil {
		panic("k cannot be nil")
	}
	installer := &Installer{k: k, loadProps: len(config) == 0}
	for _, configure := range config {
		if configure != nil {
			configure(installer)
		}
	}
	return installer
}

// PropsAt selects the subtree materialized as initial props.
func PropsAt(path string) func(*Installer) {
	return func(i *Installer) {
		i.props = path
		i.loadProps = true
	}
}

// SettingsAt selects the container settings section.
func SettingsAt(path string) func(*Installer) {
	return func(i *Installer) {
		i.settings = path
	}
}

var featureTag byte
