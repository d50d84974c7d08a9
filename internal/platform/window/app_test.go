package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

func newTestApp(t *testing.T) (*App, *dodge.Game) {
	t.Helper()
	cfg := config.DefaultDodgeConfig()
	g := dodge.NewWithConfig(cfg)
	s := session.New(g, core.RuntimeConfig{TickRate: 60, Seed: 5}, time.Second, nil)
	app, err := New(s, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return app, g
}

func TestLayoutMatchesField(t *testing.T) {
	app, _ := newTestApp(t)
	w, h := app.Layout(0, 0)
	if w != 1100 || h != 650 {
		t.Errorf("Layout = %dx%d, expected 1100x650", w, h)
	}
}

func TestUpdateTerminatesOnQuit(t *testing.T) {
	app, g := newTestApp(t)

	app.pressed = pressedSet()
	if err := app.Update(); err != nil {
		t.Fatalf("Update on a running game returned %v", err)
	}
	if g.State().GameOver {
		t.Skip("seed produced an immediate collision")
	}

	app.pressed = pressedSet(ebiten.KeyEscape)
	if err := app.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Escape = %v, expected ebiten.Termination", err)
	}
	if g.State().Reason != core.EndQuit {
		t.Errorf("reason = %v, expected quit", g.State().Reason)
	}
}

// otherGame is any registered game that is not dodge.
type otherGame struct{}

func (otherGame) ID() string                           { return "other" }
func (otherGame) Title() string                        { return "Other" }
func (otherGame) Reset(core.RuntimeConfig)             {}
func (otherGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (otherGame) Render(*core.Screen)                  {}
func (otherGame) State() core.GameState                { return core.GameState{} }
func (otherGame) Details() []any                       { return nil }

func TestNewRejectsOtherGames(t *testing.T) {
	s := session.New(otherGame{}, core.RuntimeConfig{TickRate: 60, Seed: 1}, 0, nil)
	if _, err := New(s, config.DefaultDodgeConfig()); err == nil {
		t.Error("expected an error for a non-dodge game")
	}
}
