package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:  1100,
			Height: 650,
		},
		Avatar: AvatarConfig{
			StartX: 900,
			StartY: 400,
			Width:  90,
			Height: 90,
			Step:   5,
		},
		Projectile: ProjectileConfig{
			Radius: 10,
			Speed:  5,
			Color:  "#ff0000",
		},
		Timing: TimingConfig{
			TickRate:   60,
			EndPauseMS: 1000,
		},
		Input: InputConfig{
			HoldMS: 120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
