package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf"
	"github.com/overlay-go/overlay"
)

// Settings is the decoded container section of a configuration.
type Settings struct {
	Name   string `koanf:"name"`
	Policy string `koanf:"policy" validate:"omitempty,oneof=always arity"`
}

var validate = validator.New()

// Load decodes and validates the container settings at path.
func Load(k *koanf.Koanf, path string) (Settings, error) {
	if k == nil {
		panic("k cannot be nil")
	}
	var settings Settings
	if err := k.UnmarshalWithConf(path, &settings,
		koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Settings{}, err
	}
	if err := validate.Struct(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Options converts the settings into container options.
func (s Settings) Options() ([]overlay.Option, error) {
	var options []overlay.Option
	if s.Name != "" {
		options = append(options, overlay.WithName(s.Name))
	}
	if s.Policy != "" {
		policy, err := overlay.ParseInjectionPolicy(s.Policy)
		if err != nil {
			return nil, err
		}
		options = append(options, overlay.WithPolicy(policy))
	}
	return options, nil
}
