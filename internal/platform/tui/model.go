package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/water-sort/internal/audio"
	"github.com/vovakirdan/water-sort/internal/core"
	"github.com/vovakirdan/water-sort/internal/games/watersort"
	"github.com/vovakirdan/water-sort/internal/storage"
)

// Options configure a Model.
type Options struct {
	Config  core.RuntimeConfig
	Layout  watersort.Layout
	Palette Palette
	Player  audio.Player
	Store   *storage.Store // optional
	Logger  *log.Logger

	// Sound names the audio backend used when Player is nil. The bell
	// rings on Output, which must be the writer the program renders to.
	Sound  string
	Output io.Writer
}

// Model is the Bubble Tea model hosting one water sort engine.
type Model struct {
	engine  *watersort.Engine
	screen  *core.Screen
	config  core.RuntimeConfig
	layout  watersort.Layout
	palette Palette
	keys    KeyMap
	help    help.Model
	player  audio.Player
	store   *storage.Store
	logger  *log.Logger

	// Input collected since the last tick. The last one wins.
	pending watersort.Command
	restart bool

	saved    bool // current game already journaled
	quitting bool
}

// NewModel creates a model and deals the first board. A zero seed is
// replaced with the wall clock.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	l := opts.Layout
	if l.TubesPerRow <= 0 {
		l = watersort.DefaultLayout()
	}

	palette := opts.Palette
	if palette == nil {
		palette = defaultPalette
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := opts.Player
	if player == nil && opts.Sound != "" {
		p, err := audio.Create(opts.Sound, audio.Options{Out: opts.Output, Logger: logger})
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		}
		player = p
	}
	if player == nil {
		player = audio.None{}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		engine:  watersort.NewGame(cfg.Seed),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		layout:  l,
		palette: palette,
		keys:    DefaultKeyMap(),
		help:    h,
		player:  player,
		store:   opts.Store,
		logger:  logger,
	}
	m.fitScreen()
	m.logger.Info("new game", "seed", cfg.Seed)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if i, ok := TubeForMouse(msg, m.layout); ok {
			m.queue(watersort.SelectTube(i))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.journal()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.pending = watersort.CommandNone
		m.restart = true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()

	case key.Matches(msg, m.keys.Select):
		if i, ok := TubeForKey(msg); ok {
			m.queue(watersort.SelectTube(i))
		}
	}

	return m, nil
}

// fitScreen sizes the board screen to the rows the help view leaves free.
// Board plus help must never be taller than the terminal.
func (m *Model) fitScreen() {
	rows := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 0))
}

func (m *Model) queue(cmd watersort.Command) {
	m.pending = cmd
	m.restart = false
}

// handleTick applies the pending input and advances the engine one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restart {
		m.journal()
		m.newGame(time.Now().UnixNano())
		return m, tickCmd(m.config.TickRate)
	}

	pours := m.engine.Pours()
	m.engine.Tick(m.pending)
	m.pending = watersort.CommandNone

	if m.engine.Pours() > pours {
		if t, ok := m.engine.Transferring(); ok {
			m.logger.Debug("pour", "color", t.Color, "moved", t.Moved, "pours", m.engine.Pours())
		}
	}

	if m.engine.Cleared() && !m.saved {
		m.logger.Info("cleared", "seed", m.engine.Seed(), "pours", m.engine.Pours(), "frame", m.engine.Frame())
		m.journal()
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	for _, s := range m.engine.DrainSounds() {
		cmds = append(cmds, m.playSound(s))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) newGame(seed int64) {
	m.config.Seed = seed
	m.engine = watersort.NewGame(seed)
	m.pending = watersort.CommandNone
	m.restart = false
	m.saved = false
	m.logger.Info("new game", "seed", seed)
}

// journal records the current game once. Unfinished games are only
// recorded after at least one pour.
func (m *Model) journal() {
	if m.saved || m.store == nil {
		return
	}
	if !m.engine.Cleared() && m.engine.Pours() == 0 {
		return
	}

	rec := storage.GameRecord{
		Seed:    m.engine.Seed(),
		Cleared: m.engine.Cleared(),
		Pours:   m.engine.Pours(),
		Ticks:   m.engine.Frame() + 1,
	}
	if _, err := m.store.SaveGame(rec); err != nil {
		m.logger.Warn("could not journal game", "seed", rec.Seed, "error", err)
		return
	}
	m.saved = true
}

// playSound plays s outside the update loop.
func (m Model) playSound(s watersort.Sound) tea.Cmd {
	player, logger := m.player, m.logger
	return func() tea.Msg {
		if err := player.Play(string(s)); err != nil {
			logger.Warn("sound failed", "sound", s, "error", err)
		}
		return nil
	}
}

// Seed returns the seed of the current board.
func (m Model) Seed() int64 {
	return m.engine.Seed()
}

// Engine exposes the hosted engine for inspection.
func (m Model) Engine() *watersort.Engine {
	return m.engine
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen, m.layout)
	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program on stdout and returns the seed of the
// last board played.
func Run(opts Options) (int64, error) {
	out := NewOutput(os.Stdout)
	opts.Output = out
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return model.Seed(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Seed(), nil
	}
	return model.Seed(), nil
}
