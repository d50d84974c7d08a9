package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// scriptedGame ends with a fixed reason after a fixed number of steps.
type scriptedGame struct {
	endAfter int
	reason   core.EndReason
	steps    int
	resets   int
	seed     int64
	over     bool
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seed = cfg.Seed
	g.steps = 0
	g.over = false
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.over = true
		g.reason = core.EndQuit
		return core.StepResult{State: g.State(), Ended: true}
	}
	g.steps++
	if g.steps == g.endAfter {
		g.over = true
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(*core.Screen) {}

func (g *scriptedGame) State() core.GameState {
	st := core.GameState{Ticks: g.steps, GameOver: g.over}
	if g.over {
		st.Reason = g.reason
	}
	return st
}

func (g *scriptedGame) Details() []any { return []any{"steps", g.steps} }

func TestPauseTicks(t *testing.T) {
	tests := []struct {
		pause    time.Duration
		rate     int
		expected int
	}{
		{time.Second, 60, 60},
		{500 * time.Millisecond, 60, 30},
		{10 * time.Millisecond, 60, 1},
		{0, 60, 0},
		{time.Second, 0, 0},
	}
	for _, tc := range tests {
		if got := PauseTicks(tc.pause, tc.rate); got != tc.expected {
			t.Errorf("PauseTicks(%v, %d) = %d, expected %d", tc.pause, tc.rate, got, tc.expected)
		}
	}
}

func TestSessionResolvesSeed(t *testing.T) {
	g := &scriptedGame{endAfter: 100, reason: core.EndCollision}
	s := New(g, core.RuntimeConfig{TickRate: 60}, time.Second, nil)

	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
	if s.Config().Seed == 0 || g.seed != s.Config().Seed {
		t.Errorf("seed not resolved: session %d, game %d", s.Config().Seed, g.seed)
	}

	fixed := New(&scriptedGame{endAfter: 1}, core.RuntimeConfig{TickRate: 60, Seed: 7}, 0, nil)
	if fixed.Config().Seed != 7 {
		t.Errorf("explicit seed overwritten: %d", fixed.Config().Seed)
	}
}

func TestSessionCollisionPause(t *testing.T) {
	g := &scriptedGame{endAfter: 3, reason: core.EndCollision}
	s := New(g, core.RuntimeConfig{TickRate: 10, Seed: 1}, 500*time.Millisecond, nil)

	for i := 0; i < 3; i++ {
		s.Tick(core.NewInputFrame())
	}
	if !s.State().GameOver || s.Done() {
		t.Fatalf("after collision: over=%v done=%v, expected over and not done", s.State().GameOver, s.Done())
	}

	// 500ms at 10 ticks/s = 5 pause ticks; the game is not stepped meanwhile
	for i := 0; i < 4; i++ {
		s.Tick(core.NewInputFrameOf(core.ActionUp))
		if s.Done() {
			t.Fatalf("done too early at pause tick %d", i+1)
		}
	}
	s.Tick(core.NewInputFrame())
	if !s.Done() {
		t.Error("expected done after the pause")
	}
	if g.steps != 3 {
		t.Errorf("game stepped %d times, expected 3", g.steps)
	}

	// Ticks after done are inert
	res := s.Tick(core.NewInputFrame())
	if res.Ended || res.State != s.State() {
		t.Errorf("tick after done returned %+v", res)
	}
}

func TestSessionQuitEndsImmediately(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	s := New(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, time.Second, nil)

	s.Tick(core.NewInputFrame())
	res := s.Tick(core.NewInputFrameOf(core.ActionQuit))

	if !res.Ended || !s.Done() {
		t.Errorf("quit should finish the session at once: ended=%v done=%v", res.Ended, s.Done())
	}
	if s.State().Reason != core.EndQuit {
		t.Errorf("reason = %v, expected quit", s.State().Reason)
	}
}

func TestSessionZeroPause(t *testing.T) {
	s := New(&scriptedGame{endAfter: 1, reason: core.EndCollision}, core.RuntimeConfig{TickRate: 60, Seed: 1}, 0, nil)
	s.Tick(core.NewInputFrame())
	if !s.Done() {
		t.Error("zero pause should finish on the collision tick")
	}
}

func TestSessionLogsDodgeRun(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	game := dodge.NewWithConfig(config.DefaultDodgeConfig())
	s := New(game, core.RuntimeConfig{TickRate: 60, Seed: 99}, time.Second, logger)

	s.Tick(core.NewInputFrameOf(core.ActionRight))
	if !s.State().GameOver {
		s.Tick(core.NewInputFrameOf(core.ActionQuit))
	}
	for i := 0; i < 120 && !s.Done(); i++ {
		s.Tick(core.NewInputFrame())
	}

	if !s.Done() {
		t.Fatal("session should be done")
	}
	out := buf.String()
	for _, want := range []string{"session started", "session ended", "game=dodge", "seed=99"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
