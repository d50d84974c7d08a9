// Package session drives one game from start to finish for a frontend.
// Frontends own the clock and the input devices; they call Tick once per
// frame and stop when Done reports true.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Session runs a single game through Running -> Ended -> Done.
//
// After a collision the final frame stays on screen for the end pause, counted
// in ticks so it follows the frontend's cadence. A quit ends the session at once.
type Session struct {
	game       registry.Game
	config     core.RuntimeConfig
	logger     *log.Logger
	endPause   time.Duration
	pauseTicks int
	state      core.GameState
	done       bool
	started    time.Time
}

// New resets the game and starts a session. A zero seed is replaced by the
// current time; a nil logger discards output.
func New(game registry.Game, cfg core.RuntimeConfig, endPause time.Duration, logger *log.Logger) *Session {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	s := &Session{
		game:     game,
		config:   cfg,
		logger:   logger.With("game", game.ID()),
		endPause: endPause,
		state:    game.State(),
		started:  time.Now(),
	}
	s.logger.Info("session started", game.Details()...)
	return s
}

// Tick runs one frame. While the game is running the input is passed to the
// game; during the end pause the input is ignored and only the countdown
// advances.
func (s *Session) Tick(in core.InputFrame) core.StepResult {
	if s.done {
		return core.StepResult{State: s.state}
	}

	if s.state.GameOver {
		s.pauseTicks--
		if s.pauseTicks <= 0 {
			s.finish()
		}
		return core.StepResult{State: s.state}
	}

	res := s.game.Step(in)
	s.state = res.State

	if res.Ended {
		switch res.State.Reason {
		case core.EndCollision:
			s.logger.Warn("collision", s.game.Details()...)
			s.pauseTicks = PauseTicks(s.endPause, s.config.TickRate)
			if s.pauseTicks <= 0 {
				s.finish()
			}
		default:
			s.finish()
		}
	}

	return res
}

// PauseTicks converts a pause into whole ticks at the given rate, rounding up.
func PauseTicks(pause time.Duration, tickRate int) int {
	if pause <= 0 || tickRate <= 0 {
		return 0
	}
	scaled := pause * time.Duration(tickRate)
	return int((scaled + time.Second - 1) / time.Second)
}

func (s *Session) finish() {
	s.done = true
	s.logger.Info("session ended",
		"reason", s.state.Reason.String(),
		"ticks", s.state.Ticks,
		"elapsed", time.Since(s.started).Round(time.Millisecond),
	)
}

// Done reports whether the frontend should stop.
func (s *Session) Done() bool {
	return s.done
}

// State returns the latest game state.
func (s *Session) State() core.GameState {
	return s.state
}

// Game returns the game being driven.
func (s *Session) Game() registry.Game {
	return s.game
}

// Config returns the runtime configuration with the resolved seed.
func (s *Session) Config() core.RuntimeConfig {
	return s.config
}
