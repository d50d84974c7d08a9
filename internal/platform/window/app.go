// Package window runs a game session in a desktop window with Ebiten.
// Field coordinates map one to one onto window pixels.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

var (
	backgroundColor = color.RGBA{R: 16, G: 24, B: 40, A: 255}
	hudColor        = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	bannerColor     = color.RGBA{R: 255, G: 80, B: 80, A: 255}
)

// App adapts a session to ebiten.Game.
type App struct {
	session *session.Session
	game    *dodge.Game
	cfg     config.DodgeConfig
	sprites *spriteSet
	pressed func(ebiten.Key) bool
}

// New creates a window frontend for a session driving a dodge game.
func New(s *session.Session, cfg config.DodgeConfig) (*App, error) {
	g, ok := s.Game().(*dodge.Game)
	if !ok {
		return nil, fmt.Errorf("window: unsupported game %q", s.Game().ID())
	}
	return &App{
		session: s,
		game:    g,
		cfg:     cfg,
		pressed: ebiten.IsKeyPressed,
	}, nil
}

// Update advances the session by one tick.
func (a *App) Update() error {
	a.session.Tick(pollFrame(a.pressed))
	if a.session.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the field, both entities and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	if a.sprites == nil {
		r, g, b, err := config.ParseHexColor(a.cfg.Projectile.Color)
		if err != nil {
			r, g, b = 255, 0, 0
		}
		a.sprites = newSpriteSet(
			a.cfg.Avatar.Width, a.cfg.Avatar.Height,
			a.cfg.ProjectileSize(),
			color.RGBA{R: r, G: g, B: b, A: 255},
		)
	}

	screen.Fill(backgroundColor)

	avatar := a.game.Avatar()
	a.drawSprite(screen, avatar.Sprite(), avatar.Rect())
	projectile := a.game.Projectile()
	a.drawSprite(screen, projectile.Sprite(), projectile.Rect())

	st := a.session.State()
	cfg := a.session.Config()
	hud := fmt.Sprintf("Ticks: %d  Seed: %d  FPS: %0.0f", st.Ticks, cfg.Seed, ebiten.ActualFPS())
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, hudColor)

	if st.GameOver && st.Reason == core.EndCollision {
		msg := fmt.Sprintf("OUCH! Hit after %d ticks", st.Ticks)
		mw := len(msg) * 7 // basicfont.Face7x13 glyphs are 7px wide
		text.Draw(screen, msg, basicfont.Face7x13, (a.cfg.Field.Width-mw)/2, a.cfg.Field.Height/2, bannerColor)
	}
}

func (a *App) drawSprite(screen *ebiten.Image, sp dodge.Sprite, r core.Rect) {
	img := a.sprites.image(sp)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Left()), float64(r.Top()))
	screen.DrawImage(img, op)
}

// Layout fixes the logical screen to the play field.
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.cfg.Field.Width, a.cfg.Field.Height
}

// Run opens the window and blocks until the session is done or the window
// is closed.
func Run(s *session.Session, cfg config.DodgeConfig) error {
	app, err := New(s, cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(s.Game().Title())
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(cfg.Field.Width, cfg.Field.Height)
	ebiten.SetTPS(s.Config().TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
