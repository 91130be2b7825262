package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// DefaultDuckHold is how long a duck press lasts without a key repeat.
// Terminals auto-repeat a held key after roughly half a second.
const DefaultDuckHold = 550 * time.Millisecond

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

// Model is the Bubble Tea model for running the game.
type Model struct {
	game   core.Game
	screen *core.Screen
	store  ScoreSaver
	audio  CuePlayer
	logger *log.Logger
	player string
	config core.RuntimeConfig

	keys     KeyMap
	help     help.Model
	showHelp bool

	inputFrame core.InputFrame
	duckHeld   bool
	duckLeft   int // Ticks until a synthetic duck release
	duckTicks  int // Hold window in ticks

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithScoreSaver saves each finished run.
func WithScoreSaver(s ScoreSaver) ModelOption {
	return func(m *Model) {
		m.store = s
	}
}

// WithAudio plays cues through the given player.
func WithAudio(a CuePlayer) ModelOption {
	return func(m *Model) {
		m.audio = a
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer names the player saved alongside each run.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithDuckHold sets how long a duck press is held without a key repeat.
func WithDuckHold(d time.Duration) ModelOption {
	return func(m *Model) {
		m.duckTicks = holdTicks(d, m.config.TickRate)
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(m *Model) {
		m.keys = k
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:     log.New(io.Discard),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		duckTicks:  holdTicks(DefaultDuckHold, cfg.TickRate),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	return m
}

// holdTicks converts a hold window to a whole number of ticks, at least one.
func holdTicks(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := (d*time.Duration(tickRate) + time.Second - 1) / time.Second
	return max(int(n), 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.Muted())
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.screen.Resize(m.config.ScreenW, m.gameRows())
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionDuck:
		// A repeat only extends the hold.
		if !m.duckHeld {
			m.inputFrame.Press(core.ActionDuck)
			m.duckHeld = true
		}
		m.duckLeft = m.duckTicks
	case core.ActionNone:
	default:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// only the projection onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameRows())
	m.help.Width = msg.Width
	return m, nil
}

// gameRows is the screen height left for the game.
func (m Model) gameRows() int {
	if m.showHelp && m.config.ScreenH > 1 {
		return m.config.ScreenH - 1
	}
	return m.config.ScreenH
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.audio != nil {
		m.audio.PlayAll(result.Cues)
	}

	if m.gameState.GameOver {
		m.saveScore()
	} else {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.duckHeld {
		m.duckLeft--
		if m.duckLeft <= 0 {
			m.inputFrame.Release(core.ActionDuck)
			m.duckHeld = false
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run once per game over.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "score", m.gameState.Score, "error", err)
		return
	}
	m.logger.Debug("score saved", "player", m.player, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".dino", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
