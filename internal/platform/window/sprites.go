package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	avatarBody   = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	avatarBeak   = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	avatarEye    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	defeatedBody = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	defeatedMark = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// spriteSet holds one image per dodge.Sprite. Directional avatar images are
// rotations of a single east-facing drawing.
type spriteSet struct {
	images map[dodge.Sprite]*ebiten.Image
}

func newSpriteSet(avatarW, avatarH, projectileSize int, projectileColor color.Color) *spriteSet {
	s := &spriteSet{images: make(map[dodge.Sprite]*ebiten.Image)}

	base := drawAvatarEast(avatarW, avatarH)
	for _, o := range dodge.Orientations {
		s.images[dodge.AvatarSprite(o)] = rotated(base, o.Angle())
	}
	s.images[dodge.SpriteAvatarDefeated] = drawAvatarDefeated(avatarW, avatarH)
	s.images[dodge.SpriteProjectile] = drawDisc(projectileSize, projectileColor)
	return s
}

// image returns the image for a sprite, or nil for SpriteNone.
func (s *spriteSet) image(sp dodge.Sprite) *ebiten.Image {
	return s.images[sp]
}

func drawAvatarEast(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	r := float32(math.Min(float64(w), float64(h))) * 0.4

	vector.DrawFilledCircle(img, cx, cy, r, avatarBody, true)
	// Beak points along +X
	vector.StrokeLine(img, cx+r*0.6, cy, cx+r*1.2, cy, r*0.3, avatarBeak, true)
	vector.DrawFilledCircle(img, cx+r*0.35, cy-r*0.35, r*0.12, avatarEye, true)
	return img
}

func drawAvatarDefeated(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	r := float32(math.Min(float64(w), float64(h))) * 0.4

	vector.DrawFilledCircle(img, cx, cy, r, defeatedBody, true)
	d := r * 0.6
	vector.StrokeLine(img, cx-d, cy-d, cx+d, cy+d, r*0.2, defeatedMark, true)
	vector.StrokeLine(img, cx-d, cy+d, cx+d, cy-d, r*0.2, defeatedMark, true)
	return img
}

func drawDisc(size int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	half := float32(size) / 2
	vector.DrawFilledCircle(img, half, half, half, clr, true)
	return img
}

// rotated returns a copy of src turned by angle radians about its center.
func rotated(src *ebiten.Image, angle float64) *ebiten.Image {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	dst := ebiten.NewImage(b.Dx(), b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(w/2, h/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}
