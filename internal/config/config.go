// Package config loads user preferences for catto.
package config

import (
	"fmt"
)

// Color modes accepted by the config and the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the user preferences.
type Config struct {
	// DefaultCat names the portrait shown when no selection flag is
	// given. Empty means the random-pattern path runs.
	DefaultCat string `yaml:"default_cat"`
	// Caption toggles the line printed under the art.
	Caption bool `yaml:"caption"`
	// Color is auto, always or never.
	Color string `yaml:"color"`
}

// Validate checks the fields that admit bad values.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("config: bad color mode %q (want auto, always or never)", c.Color)
	}
}
