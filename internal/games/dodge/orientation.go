package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Orientation is the facing of the avatar. The zero value Neutral only
// classifies a zero movement vector; a live avatar always faces one of the
// eight compass directions.
type Orientation int

const (
	Neutral Orientation = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Orientations lists the eight compass directions in clockwise order from North.
var Orientations = [...]Orientation{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// String returns the compass abbreviation.
func (o Orientation) String() string {
	switch o {
	case Neutral:
		return "neutral"
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "unknown"
	}
}

// Angle returns the rotation from East in screen space (y down), in radians.
// Positive angles turn clockwise on screen.
func (o Orientation) Angle() float64 {
	switch o {
	case East:
		return 0
	case SouthEast:
		return math.Pi / 4
	case South:
		return math.Pi / 2
	case SouthWest:
		return 3 * math.Pi / 4
	case West:
		return math.Pi
	case NorthWest:
		return -3 * math.Pi / 4
	case North:
		return -math.Pi / 2
	case NorthEast:
		return -math.Pi / 4
	default:
		return 0
	}
}

// Glyph returns the arrow used by the terminal renderer.
func (o Orientation) Glyph() rune {
	switch o {
	case North:
		return '↑'
	case NorthEast:
		return '↗'
	case East:
		return '→'
	case SouthEast:
		return '↘'
	case South:
		return '↓'
	case SouthWest:
		return '↙'
	case West:
		return '←'
	case NorthWest:
		return '↖'
	default:
		return '•'
	}
}

// OrientationOf classifies a summed avatar move. Each component must be
// exactly -step, 0 or +step; anything else cannot come out of the key table
// and panics.
func OrientationOf(move core.Vec, step int) Orientation {
	sx, okX := axisSign(move.X, step)
	sy, okY := axisSign(move.Y, step)
	if !okX || !okY {
		panic(fmt.Sprintf("dodge: no orientation for move (%d, %d) with step %d", move.X, move.Y, step))
	}

	switch {
	case sx == 0 && sy == 0:
		return Neutral
	case sx == 0 && sy < 0:
		return North
	case sx > 0 && sy < 0:
		return NorthEast
	case sx > 0 && sy == 0:
		return East
	case sx > 0 && sy > 0:
		return SouthEast
	case sx == 0 && sy > 0:
		return South
	case sx < 0 && sy > 0:
		return SouthWest
	case sx < 0 && sy == 0:
		return West
	default:
		return NorthWest
	}
}

func axisSign(v, step int) (int, bool) {
	switch v {
	case 0:
		return 0, true
	case step:
		return 1, true
	case -step:
		return -1, true
	}
	return 0, false
}

// Sprite identifies a pre-rendered visual asset. Frontends own the actual
// images; the game only decides which one represents each entity.
type Sprite int

const (
	SpriteNone Sprite = iota
	SpriteAvatarNorth
	SpriteAvatarNorthEast
	SpriteAvatarEast
	SpriteAvatarSouthEast
	SpriteAvatarSouth
	SpriteAvatarSouthWest
	SpriteAvatarWest
	SpriteAvatarNorthWest
	SpriteAvatarDefeated
	SpriteProjectile
)

// AvatarSprite returns the directional sprite for an orientation.
func AvatarSprite(o Orientation) Sprite {
	switch o {
	case North:
		return SpriteAvatarNorth
	case NorthEast:
		return SpriteAvatarNorthEast
	case East:
		return SpriteAvatarEast
	case SouthEast:
		return SpriteAvatarSouthEast
	case South:
		return SpriteAvatarSouth
	case SouthWest:
		return SpriteAvatarSouthWest
	case West:
		return SpriteAvatarWest
	case NorthWest:
		return SpriteAvatarNorthWest
	}
	panic(fmt.Sprintf("dodge: no avatar sprite for orientation %v", o))
}

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteAvatarDefeated:
		return "avatar-defeated"
	case SpriteProjectile:
		return "projectile"
	case SpriteNone:
		return "none"
	}
	for _, o := range Orientations {
		if AvatarSprite(o) == s {
			return "avatar-" + o.String()
		}
	}
	return "unknown"
}
