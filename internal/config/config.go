// Package config provides YAML-based game configuration loading for dodge.
// Values are read once at start-up and stay fixed for the whole session.
package config

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Avatar     AvatarConfig     `yaml:"avatar"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Timing     TimingConfig     `yaml:"timing"`
	Input      InputConfig      `yaml:"input"`
}

// FieldConfig defines the play area in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AvatarConfig defines the player-controlled sprite.
type AvatarConfig struct {
	StartX int `yaml:"start_x"` // Center at creation
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Step   int `yaml:"step"` // Pixels per axis per held key per tick
}

// ProjectileConfig defines the bouncing disc.
type ProjectileConfig struct {
	Radius int    `yaml:"radius"`
	Speed  int    `yaml:"speed"` // Magnitude of each velocity component
	Color  string `yaml:"color"` // #rrggbb
}

// TimingConfig defines frame cadence and the end-of-game pause.
type TimingConfig struct {
	TickRate   int `yaml:"tick_rate"`
	EndPauseMS int `yaml:"end_pause_ms"`
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldMS is how long a key counts as held after its last press event.
	// Terminals only report presses and auto-repeats, never releases.
	HoldMS int `yaml:"hold_ms"`
}

// PlayField returns the configured field bounds.
func (c DodgeConfig) PlayField() core.Field {
	return core.Field{W: c.Field.Width, H: c.Field.Height}
}

// EndPause returns the pause shown after a collision.
func (c DodgeConfig) EndPause() time.Duration {
	return time.Duration(c.Timing.EndPauseMS) * time.Millisecond
}

// HoldDuration returns the terminal key hold window.
func (c DodgeConfig) HoldDuration() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// AvatarStart returns the avatar rectangle at creation.
func (c DodgeConfig) AvatarStart() core.Rect {
	return core.RectFromCenter(c.Avatar.StartX, c.Avatar.StartY, c.Avatar.Width, c.Avatar.Height)
}

// ProjectileSize returns the side length of the projectile's bounding square.
func (c DodgeConfig) ProjectileSize() int {
	return 2 * c.Projectile.Radius
}
