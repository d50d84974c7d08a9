package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// keyDeltas maps each movement action to its unit displacement.
// Opposite keys cancel; two keys never share an axis and sign, so every
// summed component is -1, 0 or +1 times the step.
var keyDeltas = [...]struct {
	action core.Action
	unit   core.Vec
}{
	{core.ActionUp, core.Vec{X: 0, Y: -1}},
	{core.ActionDown, core.Vec{X: 0, Y: 1}},
	{core.ActionLeft, core.Vec{X: -1, Y: 0}},
	{core.ActionRight, core.Vec{X: 1, Y: 0}},
}

// Avatar is the player-controlled sprite.
type Avatar struct {
	rect        core.Rect
	orientation Orientation
	step        int
	defeated    bool
}

// NewAvatar creates an avatar occupying rect, facing East.
func NewAvatar(rect core.Rect, step int) *Avatar {
	return &Avatar{
		rect:        rect,
		orientation: East,
		step:        step,
	}
}

// Move sums the displacement of every held direction key.
func (a *Avatar) Move(in core.InputFrame) core.Vec {
	var sum core.Vec
	for _, kd := range keyDeltas {
		if in.Has(kd.action) {
			sum = sum.Add(core.Vec{X: kd.unit.X * a.step, Y: kd.unit.Y * a.step})
		}
	}
	return sum
}

// Update applies one frame of input. A move that takes the avatar outside the
// field on either axis is undone on both axes. A non-zero move turns the
// avatar to face it; no move keeps the previous facing.
func (a *Avatar) Update(in core.InputFrame, field core.Field) {
	move := a.Move(in)

	a.rect = a.rect.Moved(move)
	if withinX, withinY := field.CheckBound(a.rect); !withinX || !withinY {
		a.rect = a.rect.Moved(move.Neg())
	}

	if !move.IsZero() {
		a.orientation = OrientationOf(move, a.step)
	}
}

// Defeat switches the avatar to its defeated look.
func (a *Avatar) Defeat() {
	a.defeated = true
}

// Rect returns the avatar's bounding box.
func (a *Avatar) Rect() core.Rect {
	return a.rect
}

// Orientation returns the current facing.
func (a *Avatar) Orientation() Orientation {
	return a.orientation
}

// Defeated reports whether the avatar has been hit.
func (a *Avatar) Defeated() bool {
	return a.defeated
}

// Sprite returns the asset that currently represents the avatar.
func (a *Avatar) Sprite() Sprite {
	if a.defeated {
		return SpriteAvatarDefeated
	}
	return AvatarSprite(a.orientation)
}
