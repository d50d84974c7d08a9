// Package dodge implements a single-projectile avoidance game.
// The player steers an avatar around a fixed field while a disc bounces off
// the walls; the first contact ends the game.
package dodge

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// GameID is the registry identifier.
const GameID = "dodge"

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultDodgeConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.DodgeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

func currentConfig() config.DodgeConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game implements the dodge game logic.
//
// States: running until the first collision or quit, then over. Over is
// terminal: Step no longer touches the entities.
type Game struct {
	cfg        config.DodgeConfig
	field      core.Field
	avatar     *Avatar
	projectile *Projectile
	runtime    core.RuntimeConfig
	tickCount  int
	gameOver   bool
	reason     core.EndReason
}

// New creates a game using the configuration set by SetConfig.
func New() *Game {
	return NewWithConfig(currentConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.DodgeConfig) *Game {
	return &Game{
		cfg:   cfg,
		field: cfg.PlayField(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Run Away!"
}

// Reset initializes or restarts the game.
// The projectile start position is drawn from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	rng := rand.New(rand.NewSource(runtime.Seed))

	g.avatar = NewAvatar(g.cfg.AvatarStart(), g.cfg.Avatar.Step)
	g.projectile = SpawnProjectile(rng, g.field, g.cfg.Projectile.Radius, g.cfg.Projectile.Speed)
	g.tickCount = 0
	g.gameOver = false
	g.reason = core.EndNone
}

// Step advances the game by one tick: quit check, avatar, projectile, collision.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.end(core.EndQuit)
		return core.StepResult{State: g.State(), Ended: true}
	}

	g.avatar.Update(in, g.field)
	g.projectile.Update(g.field)
	g.tickCount++

	if g.avatar.Rect().Intersects(g.projectile.Rect()) {
		g.avatar.Defeat()
		g.end(core.EndCollision)
		return core.StepResult{State: g.State(), Ended: true}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) end(reason core.EndReason) {
	g.gameOver = true
	g.reason = reason
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Ticks:    g.tickCount,
		GameOver: g.gameOver,
		Reason:   g.reason,
	}
}

// Field returns the play area.
func (g *Game) Field() core.Field {
	return g.field
}

// Avatar returns the player entity.
func (g *Game) Avatar() *Avatar {
	return g.avatar
}

// Projectile returns the bouncing disc.
func (g *Game) Projectile() *Projectile {
	return g.projectile
}

// Details returns key/value pairs describing the simulation for logs.
func (g *Game) Details() []any {
	return []any{
		"tick", g.tickCount,
		"seed", g.runtime.Seed,
		"avatar", g.avatar.Rect(),
		"facing", g.avatar.Orientation().String(),
		"projectile", g.projectile.Rect(),
		"velocity", g.projectile.Velocity(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(func() registry.Game {
		return New()
	})
}
