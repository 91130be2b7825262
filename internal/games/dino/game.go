// Package dino implements a Chrome Dino-style endless runner game.
// The player jumps over cacti and ducks under birds while the world speeds
// up with every score milestone.
package dino

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Game adapts a Session to the core.Game interface used by frontends.
type Game struct {
	cfg     config.DinoConfig
	store   ValueStore
	logger  *log.Logger
	runtime core.RuntimeConfig
	session *Session
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration.
func WithConfig(cfg config.DinoConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithStore sets the high score store shared by every session of this game.
func WithStore(store ValueStore) Option {
	return func(g *Game) {
		g.store = store
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a new Dino Runner game instance. Call Reset before Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultDinoConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Reset starts a fresh session in Intro.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = NewSession(g.cfg, runtime.Seed,
		WithSessionLogger(g.logger),
		WithSessionStore(g.store),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	cues := g.session.Tick(g.runtime.DeltaMs(), in)
	return core.StepResult{State: g.State(), Cues: cues}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		dst.Clear()
		return
	}
	Render(dst, g.session.View())
}

// View returns a snapshot for pixel renderers.
func (g *Game) View() View {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	return g.session.View()
}

// Session returns the running session, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	mode := g.session.Mode()
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Mode:      mode.String(),
		GameOver:  mode == ModeEnded,
	}
}
