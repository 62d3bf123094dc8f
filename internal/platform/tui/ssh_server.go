package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// Env is everything a session needs besides the terminal.
// All sessions share the score stores, so every connection competes for
// the same high score.
type Env struct {
	Snake   config.SnakeConfig
	Runtime core.RuntimeConfig
	History storage.History
	Preset  config.DifficultyPreset
}

// SSHServer wraps a Wish SSH server for snake sessions.
type SSHServer struct {
	config SSHServerConfig
	env    Env
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. logger may be nil.
func NewSSHServer(cfg SSHServerConfig, env Env, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}
	if env.Runtime.Logger == nil {
		env.Runtime.Logger = logger
	}

	srv := &SSHServer{
		config: cfg,
		env:    env,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
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
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	env := s.env
	env.Runtime.ScreenW = pty.Window.Width
	env.Runtime.ScreenH = pty.Window.Height
	env.Runtime.Seed = 0

	model := NewSessionModel(env, sshSession.User())
	s.logger.Debug("session model created", "session", model.ID(), "user", sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		started := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionView is the screen a session is showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. It is the top-level model for SSH
// sessions.
type SessionModel struct {
	id         string
	env        Env
	username   string
	width      int
	height     int
	view       sessionView
	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, username string) SessionModel {
	m := SessionModel{
		id:       uuid.NewString(),
		env:      env,
		username: username,
		width:    env.Runtime.ScreenW,
		height:   env.Runtime.ScreenH,
	}
	m.menu = m.newMenu()
	return m
}

// newMenu builds a menu showing the current best score.
func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.env.Runtime.Scores != nil {
		if hs, err := m.env.Runtime.Scores.Load(); err == nil {
			best = hs
		}
	}
	return NewMenuModel(m.width, m.height, m.env.Preset, best)
}

// ID returns the session's unique id.
func (m SessionModel) ID() string {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, _ := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	// The menu's tea.Quit is for standalone use; sessions switch views instead.

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scoreboard = NewScoreboardModel(m.env.History, m.width, m.height)
		m.view = viewScores
		return m, m.scoreboard.Init()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, nil
	}

	m.env.Preset = m.menu.Preset()
	game, err := registry.Create(selected.GameID)
	if err != nil {
		m.warn("could not create game", "game", selected.GameID, "error", err)
		m.menu = m.newMenu()
		return m, nil
	}

	cfg := m.env.Runtime
	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	cfg.Pacer = m.env.Snake.Pacer(m.env.Preset)

	gameModel, err := NewGameModel(game, m.env.History, cfg)
	if err != nil {
		m.warn("could not start game", "game", selected.GameID, "error", err)
		m.menu = m.newMenu()
		return m, nil
	}
	if m.env.Runtime.Logger != nil {
		m.env.Runtime.Logger.Info("game started", "session", m.id, "user", m.username,
			"game", game.ID(), "difficulty", m.env.Preset)
	}

	m.gameModel = &gameModel
	m.view = viewGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) warn(msg string, keyvals ...interface{}) {
	if m.env.Runtime.Logger != nil {
		m.env.Runtime.Logger.Warn(msg, append([]interface{}{"session", m.id}, keyvals...)...)
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
