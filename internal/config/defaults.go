package config

import (
	_ "embed"
)

//go:embed defaults/catto.yaml
var defaultCattoYAML []byte

// Default returns the hardcoded default configuration, the fallback of
// last resort when even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		DefaultCat: "",
		Caption:    true,
		Color:      ColorAuto,
	}
}
