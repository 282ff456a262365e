package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vlegaspi/heartchase/internal/audio"
	"github.com/vlegaspi/heartchase/internal/core"
	"github.com/vlegaspi/heartchase/internal/game"
	"github.com/vlegaspi/heartchase/internal/storage"
)

// Model is the Bubble Tea model for one Heart Chase session. It owns the
// terminal loop and translates game events into sound, log lines and
// persisted runs.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	sound      *audio.Player
	logger     *log.Logger
	clock      *core.Clock
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	state      game.State
	quitting   bool
	msPerTick  uint32

	run *sessionRun
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, sound *audio.Player,
	logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sound:      sound,
		logger:     logger,
		clock:      core.NewClock(),
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		msPerTick:  uint32(1000 / cfg.TickRate),
		run:        &sessionRun{store: store, logger: logger},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if m.sound != nil {
		m.sound.PlayStartup()
		if m.game.Config().Timing.BackgroundTuneOn {
			m.sound.StartBackground()
		}
	}

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
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.run.abandon()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.SetScreenSize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks. The clock advances in lockstep with
// the simulation, so the model needs no timer goroutine of its own.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.clock.Advance(m.msPerTick)

	result := m.game.Step(m.inputFrame)
	m.state = result.State

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}
	m.run.observe(m.clock.Now(), m.state)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvent turns one game event into its side effects.
func (m *Model) handleEvent(ev game.Event) {
	cfg := m.game.Config()

	switch ev.Kind {
	case game.EventRunStarted:
		m.run.begin(m.clock.Now())
		m.logger.Info("run started", "seed", m.config.Seed)

	case game.EventHeartEaten:
		if m.sound != nil {
			m.sound.PlayPickup(cfg.Timing.PickupNoteFreq, cfg.Timing.PickupNoteMs)
		}
		m.logger.Info("heart eaten", "slot", ev.Index, "level", m.state.Level)

	case game.EventLevelAdvanced:
		m.logger.Info("level advanced", "level", ev.Level)

	case game.EventVictory:
		if m.sound != nil {
			m.sound.PlayFanfare()
		}
		m.logger.Info("game won, all hearts collected", "levels", m.state.Level)
		m.run.complete(storage.OutcomeVictory, m.clock.Now(), m.state)

	case game.EventDefeat:
		m.logger.Info("game over",
			"level", m.state.Level, "hearts", m.state.HeartsCollected)
		m.run.complete(storage.OutcomeDefeat, m.clock.Now(), m.state)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, sound *audio.Player,
	logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, sound, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// sessionRun persists the outcome of the current run exactly once. It is
// shared by pointer between the model and, on the SSH path, a watcher that
// fires when the connection ends without a quit key, so all state changes
// hold the mutex.
type sessionRun struct {
	mu     sync.Mutex
	store  *storage.Store
	logger *log.Logger

	inRun   bool
	saved   bool
	startMs uint32
	nowMs   uint32
	level   int
	hearts  int
}

// begin marks a fresh run starting now.
func (r *sessionRun) begin(now uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inRun = true
	r.saved = false
	r.startMs = now
	r.nowMs = now
}

// observe records the latest simulation state so a later abandon knows how
// far the run got.
func (r *sessionRun) observe(now uint32, st game.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nowMs = now
	r.level = st.Level
	r.hearts = st.HeartsCollected
	if st.Phase != game.PhasePlaying && st.Phase != game.PhaseSplash {
		r.inRun = false
	}
}

// complete saves a finished run with the given outcome.
func (r *sessionRun) complete(outcome string, now uint32, st game.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nowMs = now
	r.level = st.Level
	r.hearts = st.HeartsCollected
	r.inRun = false
	r.save(outcome)
}

// abandon records an in-flight run as quit. Safe to call more than once and
// after complete; only the first outcome per run is kept.
func (r *sessionRun) abandon() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inRun {
		return
	}
	r.inRun = false
	r.save(storage.OutcomeQuit)
}

// save writes the run row once. Callers hold the mutex.
func (r *sessionRun) save(outcome string) {
	if r.saved || r.store == nil {
		return
	}
	r.saved = true

	_, err := r.store.SaveRun(storage.RunEntry{
		Outcome:         outcome,
		LevelReached:    r.level,
		HeartsCollected: r.hearts,
		DurationMs:      int64(r.nowMs - r.startMs),
	})
	if err != nil {
		r.logger.Warn("could not save run", "error", err)
	}
}
