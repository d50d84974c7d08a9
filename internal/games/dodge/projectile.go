package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Projectile is the bouncing disc the player must avoid.
type Projectile struct {
	rect core.Rect
	vel  core.Vec
}

// NewProjectile creates a projectile with the given bounding box and velocity.
func NewProjectile(rect core.Rect, vel core.Vec) *Projectile {
	return &Projectile{rect: rect, vel: vel}
}

// SpawnProjectile places a projectile of the given radius at a random center
// such that its bounding box lies fully inside the field, moving (+speed, +speed).
func SpawnProjectile(rng *rand.Rand, field core.Field, radius, speed int) *Projectile {
	size := 2 * radius
	cx := radius + rng.Intn(field.W-size+1)
	cy := radius + rng.Intn(field.H-size+1)
	return NewProjectile(
		core.RectFromCenter(cx, cy, size, size),
		core.Vec{X: speed, Y: speed},
	)
}

// Update advances one frame. Bounds are checked on the current position
// before moving: each axis found outside has its velocity negated, then the
// projectile always moves by its velocity.
func (p *Projectile) Update(field core.Field) {
	withinX, withinY := field.CheckBound(p.rect)
	if !withinX {
		p.vel.X = -p.vel.X
	}
	if !withinY {
		p.vel.Y = -p.vel.Y
	}
	p.rect = p.rect.Moved(p.vel)
}

// Rect returns the projectile's bounding box.
func (p *Projectile) Rect() core.Rect {
	return p.rect
}

// Velocity returns the per-tick displacement.
func (p *Projectile) Velocity() core.Vec {
	return p.vel
}

// Sprite returns the asset that represents the projectile.
func (p *Projectile) Sprite() Sprite {
	return SpriteProjectile
}
