package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game:
//   - field, avatar and projectile sizes are positive
//   - avatar step, projectile speed and tick rate are positive
//   - the avatar starts fully inside the field
//   - the projectile fits inside the field
//   - the projectile color parses
func (c DodgeConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"avatar.width", c.Avatar.Width},
		{"avatar.height", c.Avatar.Height},
		{"avatar.step", c.Avatar.Step},
		{"projectile.radius", c.Projectile.Radius},
		{"projectile.speed", c.Projectile.Speed},
		{"timing.tick_rate", c.Timing.TickRate},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{
				Code:    "NOT_POSITIVE",
				Message: fmt.Sprintf("%s must be > 0, got %d", p.name, p.value),
			}
		}
	}

	if c.Timing.EndPauseMS < 0 || c.Input.HoldMS < 0 {
		return ValidationError{
			Code:    "NEGATIVE_DURATION",
			Message: "timing.end_pause_ms and input.hold_ms must be >= 0",
		}
	}

	if start := c.AvatarStart(); !c.PlayField().Contains(start) {
		return ValidationError{
			Code:    "AVATAR_OUT_OF_FIELD",
			Message: fmt.Sprintf("avatar start %+v is not inside the %dx%d field", start, c.Field.Width, c.Field.Height),
		}
	}

	if size := c.ProjectileSize(); size > c.Field.Width || size > c.Field.Height {
		return ValidationError{
			Code:    "PROJECTILE_TOO_LARGE",
			Message: fmt.Sprintf("projectile diameter %d does not fit the field", size),
		}
	}

	if _, _, _, err := ParseHexColor(c.Projectile.Color); err != nil {
		return ValidationError{
			Code:    "INVALID_COLOR",
			Message: err.Error(),
		}
	}

	return nil
}

// ParseHexColor parses a "#rrggbb" string.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || len(hex) == len(s) {
		return 0, 0, 0, fmt.Errorf("color %q is not in #rrggbb form", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q is not in #rrggbb form", s)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
