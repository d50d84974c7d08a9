package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultDodgeConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	cx, cy := g.avatar.Rect().Center()
	if cx != 900 || cy != 400 {
		t.Errorf("avatar center = (%d, %d), expected (900, 400)", cx, cy)
	}
	if g.avatar.Orientation() != East {
		t.Errorf("avatar facing = %v, expected E", g.avatar.Orientation())
	}
	if !g.field.Contains(g.projectile.Rect()) {
		t.Errorf("projectile %+v spawned outside", g.projectile.Rect())
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("fresh state = %+v, expected zero", g.State())
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		switch {
		case i%40 < 10:
			inputs[i] = core.NewInputFrameOf(core.ActionUp)
		case i%40 < 20:
			inputs[i] = core.NewInputFrameOf(core.ActionLeft, core.ActionDown)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() (*Game, core.GameState) {
		g := newTestGame(12345)
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return g, state
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if g1.avatar.Rect() != g2.avatar.Rect() || g1.projectile.Rect() != g2.projectile.Rect() {
		t.Error("entity positions differ between identical runs")
	}
}

func TestGameStepOrder(t *testing.T) {
	g := newTestGame(1)
	g.projectile = NewProjectile(core.RectFromCenter(100, 100, 20, 20), core.Vec{X: 5, Y: 5})

	res := g.Step(core.NewInputFrameOf(core.ActionLeft))

	if res.Ended || res.State.GameOver {
		t.Fatalf("unexpected end: %+v", res)
	}
	if res.State.Ticks != 1 {
		t.Errorf("ticks = %d, expected 1", res.State.Ticks)
	}
	if cx, _ := g.avatar.Rect().Center(); cx != 895 {
		t.Errorf("avatar x = %d, expected 895", cx)
	}
	if cx, cy := g.projectile.Rect().Center(); cx != 105 || cy != 105 {
		t.Errorf("projectile center = (%d, %d), expected (105, 105)", cx, cy)
	}
}

func TestGameCollisionEnds(t *testing.T) {
	g := newTestGame(1)
	// Projectile just right of the avatar, moving left into it
	ar := g.avatar.Rect()
	g.projectile = NewProjectile(core.NewRect(ar.Right()+2, ar.Y+10, 20, 20), core.Vec{X: -5, Y: 5})

	res := g.Step(core.NewInputFrame())

	if !res.Ended || !res.State.GameOver {
		t.Fatalf("expected collision to end the game in the same tick, got %+v", res)
	}
	if res.State.Reason != core.EndCollision {
		t.Errorf("reason = %v, expected collision", res.State.Reason)
	}
	if g.avatar.Sprite() != SpriteAvatarDefeated {
		t.Errorf("avatar sprite = %v, expected defeated", g.avatar.Sprite())
	}
}

func TestGameTouchingEdgesDoNotCollide(t *testing.T) {
	g := newTestGame(1)
	ar := g.avatar.Rect()
	// After one step the projectile's left edge sits exactly on the avatar's right edge
	g.projectile = NewProjectile(core.NewRect(ar.Right()+5, ar.Y+10, 20, 20), core.Vec{X: -5, Y: 5})

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver {
		t.Errorf("edge contact should not collide: avatar %+v projectile %+v", g.avatar.Rect(), g.projectile.Rect())
	}
}

func TestGameTerminalOneShot(t *testing.T) {
	g := newTestGame(1)
	g.projectile = NewProjectile(g.avatar.Rect(), core.Vec{X: 5, Y: 5})

	first := g.Step(core.NewInputFrame())
	if !first.Ended {
		t.Fatal("expected the game to end")
	}

	avatarBefore := g.avatar.Rect()
	projBefore := g.projectile.Rect()

	for i := 0; i < 5; i++ {
		res := g.Step(core.NewInputFrameOf(core.ActionUp))
		if res.Ended {
			t.Error("Ended must only be reported once")
		}
		if res.State != first.State {
			t.Errorf("state changed after end: %+v vs %+v", res.State, first.State)
		}
	}

	if g.avatar.Rect() != avatarBefore || g.projectile.Rect() != projBefore {
		t.Error("entities moved after the game ended")
	}
}

func TestGameQuitBeforeUpdates(t *testing.T) {
	g := newTestGame(1)
	avatarBefore := g.avatar.Rect()
	projBefore := g.projectile.Rect()

	res := g.Step(core.NewInputFrameOf(core.ActionQuit, core.ActionLeft))

	if !res.Ended || res.State.Reason != core.EndQuit {
		t.Fatalf("expected quit end, got %+v", res)
	}
	if g.avatar.Rect() != avatarBefore || g.projectile.Rect() != projBefore {
		t.Error("quit must be handled before entity updates")
	}
	if g.avatar.Defeated() {
		t.Error("quit should not defeat the avatar")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	g.projectile = NewProjectile(core.RectFromCenter(100, 100, 20, 20), core.Vec{X: 5, Y: 5})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, East.Glyph()) {
		t.Error("avatar facing glyph should be drawn")
	}
	if !strings.ContainsRune(out, ProjectileChar) {
		t.Error("projectile should be drawn")
	}
	if screen.Get(0, 0) != '┌' {
		t.Errorf("arena border expected at (0, 0), got %q", screen.Get(0, 0))
	}
	if !strings.Contains(screen.Row(23), "Ticks: 0") {
		t.Errorf("HUD row = %q", screen.Row(23))
	}

	// Projectile cell is red
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == ProjectileChar && c.Color == core.ColorRed {
				found = true
			}
		}
	}
	if !found {
		t.Error("projectile should be drawn in red")
	}
}

func TestGameRenderDefeated(t *testing.T) {
	g := newTestGame(1)
	g.projectile = NewProjectile(g.avatar.Rect(), core.Vec{X: 5, Y: 5})
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, DefeatedCenterChar) {
		t.Error("defeated avatar should be drawn")
	}
	if !strings.Contains(out, "OUCH!") {
		t.Error("game over message should be drawn")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(3, 2)
	g.Render(screen) // must not panic
}

func TestToCellsClipsAndHasArea(t *testing.T) {
	g := newTestGame(1)
	inner := core.NewRect(1, 1, 78, 21)

	tests := []core.Rect{
		core.NewRect(-5, -5, 20, 20),
		core.NewRect(1085, 635, 20, 20),
		core.NewRect(0, 0, 1100, 650),
		core.NewRect(500, 300, 1, 1),
	}
	for _, r := range tests {
		c := g.toCells(inner, r)
		if c.W < 1 || c.H < 1 {
			t.Errorf("toCells(%+v) = %+v has no area", r, c)
		}
		if c.X < inner.X || c.Y < inner.Y || c.Right() > inner.Right() || c.Bottom() > inner.Bottom() {
			t.Errorf("toCells(%+v) = %+v escapes %+v", r, c, inner)
		}
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("dodge should register itself")
	}
	game, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if game.ID() != GameID || game.Title() == "" {
		t.Errorf("unexpected game %q / %q", game.ID(), game.Title())
	}
}

func TestSetConfig(t *testing.T) {
	defer SetConfig(config.DefaultDodgeConfig())

	cfg := config.DefaultDodgeConfig()
	cfg.Avatar.Step = 3
	SetConfig(cfg)

	g := New()
	g.Reset(core.DefaultConfig())
	g.projectile = NewProjectile(core.RectFromCenter(100, 100, 20, 20), core.Vec{X: 5, Y: 5})
	g.Step(core.NewInputFrameOf(core.ActionRight))

	if cx, _ := g.avatar.Rect().Center(); cx != 903 {
		t.Errorf("avatar x = %d, expected 903 with step 3", cx)
	}
}
