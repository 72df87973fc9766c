// Package config materializes container props and settings from
// configuration populated by the koanf library.
// https://github.com/knadh/koanf
package config

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/overlay-go/overlay"
)

// Props materializes the koanf subtree at path as plain data entries.
// Each top-level key of the subtree becomes a Data prop; nested maps
// stay intact as the prop's value.  An empty path selects the whole
// configuration.
func Props(k *koanf.Koanf, path string) (overlay.Props, error) {
	if k == nil {
		panic("k cannot be nil")
	}
	sub := k
	if path != "" {
		if !k.Exists(path) {
			return nil, fmt.Errorf("config: no section %q", path)
		}
		sub = k.Cut(path)
	}
	raw := sub.Raw()
	props := make(overlay.Props, len(raw))
	for key, val := range raw {
		props[key] = overlay.Data(val)
	}
	return props, nil
}
