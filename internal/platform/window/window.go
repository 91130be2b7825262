// Package window runs the runner in a desktop window with Ebitengine.
// Unlike a terminal it sees real key releases, so ducking follows the key.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/window/scene"
)

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(gameID, player string, score int) (int64, error)
}

// CuePlayer plays sound cues. *audio.Engine satisfies it.
type CuePlayer interface {
	PlayAll(cues []core.Cue)
	SetMuted(muted bool)
	Muted() bool
}

// Window drives a game as an ebiten.Game.
type Window struct {
	game     *dino.Game
	store    ScoreSaver
	audio    CuePlayer
	logger   *log.Logger
	player   string
	scale    float64
	bindings scene.Bindings
	edges    scene.Edges

	state      core.GameState
	scoreSaved bool
}

// Option configures a Window.
type Option func(*Window)

// WithScoreSaver saves each finished run.
func WithScoreSaver(s ScoreSaver) Option {
	return func(w *Window) {
		w.store = s
	}
}

// WithAudio plays cues through the given player.
func WithAudio(a CuePlayer) Option {
	return func(w *Window) {
		w.audio = a
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Window) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithPlayer names the player saved alongside each run.
func WithPlayer(name string) Option {
	return func(w *Window) {
		w.player = name
	}
}

// WithScale sets the window size as a multiple of the playfield.
func WithScale(scale float64) Option {
	return func(w *Window) {
		if scale > 0 {
			w.scale = scale
		}
	}
}

// New creates a window frontend for the game.
func New(game *dino.Game, opts ...Option) *Window {
	w := &Window{
		game:     game,
		logger:   log.New(io.Discard),
		scale:    1,
		bindings: scene.DefaultBindings(),
		edges:    &ebitenEdges{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	view := w.game.View()
	in := scene.Input(w.edges, w.bindings, view)
	if in.Pressed(core.ActionQuit) {
		return ebiten.Termination
	}
	if w.edges.JustPressed(scene.KeyM) && w.audio != nil {
		w.audio.SetMuted(!w.audio.Muted())
	}

	result := w.game.Step(in)
	w.state = result.State
	if w.audio != nil {
		w.audio.PlayAll(result.Cues)
	}

	if w.state.GameOver {
		w.saveScore()
	} else {
		w.scoreSaved = false
	}
	return nil
}

func (w *Window) saveScore() {
	if w.scoreSaved {
		return
	}
	w.scoreSaved = true
	if w.store == nil || w.state.Score <= 0 {
		return
	}
	if _, err := w.store.SaveScore(w.game.ID(), w.player, w.state.Score); err != nil {
		w.logger.Warn("could not save score", "score", w.state.Score, "error", err)
	}
}

// Draw renders the current view.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(scene.Background)

	f := scene.Build(w.game.View())
	for _, r := range f.Rects {
		vector.FillRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, l := range f.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout keeps the logical screen at playfield size; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scene.Size(w.game.View())
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run(cfg core.RuntimeConfig) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	w.game.Reset(cfg)

	width, height := scene.Size(w.game.View())
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(int(float64(width)*w.scale), int(float64(height)*w.scale))
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.logger.Info("window opened", "width", width, "height", height, "tps", cfg.TickRate)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
