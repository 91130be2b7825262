package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dino/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Seed fixes the RNG of every session. Zero seeds each session from the clock.
	Seed int64

	// Game is the runner configuration shared by all sessions.
	Game config.DinoConfig

	// DuckHold is how long a duck press lasts without a key repeat.
	DuckHold time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.dino/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.DefaultDinoConfig(),
		DuckHold:    DefaultDuckHold,
	}
}

// SSHServer wraps a Wish SSH server that gives every session its own run.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger

	mu     sync.RWMutex // guards store
	store  *storage.Store
	memory *storage.Memory
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dino-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, high score kept in memory", "error", err)
		srv.memory = storage.NewMemory()
	} else {
		srv.store = store
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dino", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// stores returns the stores shared by all sessions. scores is nil when the
// database is unavailable or closed.
func (s *SSHServer) stores() (high dino.ValueStore, scores *storage.Store) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store != nil {
		return s.store, s.store
	}
	return s.memory, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "dino needs an interactive terminal: ssh -t")
		return nil, nil
	}

	model := s.newSessionModel(sess.User(), pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newSessionModel builds the game model for one connected player.
func (s *SSHServer) newSessionModel(user string, width, height int) Model {
	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.config.TickRate,
		Seed:     seed,
	}

	high, scores := s.stores()
	sessionLogger := s.logger.With("user", user)
	game := dino.New(
		dino.WithConfig(s.config.Game),
		dino.WithStore(high),
		dino.WithLogger(sessionLogger),
	)

	opts := []ModelOption{
		WithPlayer(user),
		WithLogger(sessionLogger),
	}
	if s.config.DuckHold > 0 {
		opts = append(opts, WithDuckHold(s.config.DuckHold))
	}
	if scores != nil {
		opts = append(opts, WithScoreSaver(scores))
	}
	return NewModel(game, cfg, opts...)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"term", ptyTerm(sess),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

func ptyTerm(sess ssh.Session) string {
	if pty, _, ok := sess.Pty(); ok {
		return pty.Term
	}
	return ""
}

// ListenAndServe starts the SSH server and blocks until an interrupt or
// the context is cancelled.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			if shutdownErr := s.Shutdown(); shutdownErr != nil {
				s.logger.Warn("shutdown after listen failure", "error", shutdownErr)
			}
			return fmt.Errorf("tui: ssh server: %w", err)
		}
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and closes the database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

// closeStore closes the database. Sessions started afterwards fall back to
// the in-memory high score.
func (s *SSHServer) closeStore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close scores database", "error", err)
		}
		s.store = nil
		if s.memory == nil {
			s.memory = storage.NewMemory()
		}
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
