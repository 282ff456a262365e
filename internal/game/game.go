package game

import (
	"math/rand"

	"github.com/vlegaspi/heartchase/internal/config"
	"github.com/vlegaspi/heartchase/internal/core"
)

// Game drives one Heart Chase session through the menu, play, splash and
// ended phases. All timing is derived from the tick counter, so two sessions
// stepped with the same seed and inputs stay identical.
type Game struct {
	cfg      config.GameConfig
	world    *World
	rng      *rand.Rand
	tick     uint64
	tickRate int

	phase Phase

	// Cadence anchors, in derived milliseconds.
	enemyMovedAt int64
	heartMovedAt int64
	menuReadyAt  int64 // Earliest ms the next menu action is accepted
	splashUntil  int64

	enemyUpdates int // Chase updates so far; parity throttles level 2

	menuSel  int
	endedSel int // 0 = play again, 1 = main menu

	screenW  int
	screenH  int
	tooSmall bool

	events []Event
}

// Package-level knobs set by the CLI before Reset, mirroring how the
// platform passes flag values down without threading them through every call.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the game config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// MenuOptionCount is the number of main menu entries (start, controls,
// credits).
const MenuOptionCount = 3

// New creates an unreset Game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier used for storage and CLI commands.
func (g *Game) ID() string {
	return "heartchase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Heart Chase"
}

// Reset initializes the session: loads the game config, seeds the RNG and
// lands on the main menu.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	config.ApplyPreset(&cfg, config.ParsePreset(difficultyPreset))
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.world = NewWorld(cfg)
	g.phase = PhaseMenu
	g.enemyMovedAt = 0
	g.heartMovedAt = 0
	g.menuReadyAt = 0
	g.splashUntil = 0
	g.enemyUpdates = 0
	g.menuSel = 0
	g.endedSel = 0

	g.SetScreenSize(rc.ScreenW, rc.ScreenH)
}

// SetScreenSize records a new terminal size without resetting the session.
// Play pauses while the window is too small for the board.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < boardW+2 || h < boardH+hudHeight+1
}

// Config returns the loaded game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// nowMs converts the tick counter to elapsed milliseconds. Integer division
// keeps it exact for tick rates that divide 1000.
func (g *Game) nowMs() int64 {
	return int64(g.tick) * 1000 / int64(g.tickRate)
}

// Step advances the session by one fixed tick.
func (g *Game) Step(input core.InputFrame) StepResult {
	g.tick++
	g.events = g.events[:0]

	if g.tooSmall {
		return g.result()
	}

	now := g.nowMs()
	switch g.phase {
	case PhaseMenu:
		g.stepMenu(now, input)
	case PhaseControls, PhaseCredits:
		g.stepInfoScreen(now, input)
	case PhaseSplash:
		if now >= g.splashUntil {
			g.phase = PhasePlaying
		}
	case PhasePlaying:
		g.stepPlaying(now, input)
	case PhaseEnded:
		g.stepEnded(now, input)
	}

	return g.result()
}

func (g *Game) result() StepResult {
	var evs []Event
	if len(g.events) > 0 {
		evs = append(evs, g.events...)
	}
	return StepResult{State: g.State(), Events: evs}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// settle marks the menu input window consumed for the configured settle
// interval, so one keypress maps to one menu action.
func (g *Game) settle(now int64) {
	g.menuReadyAt = now + int64(g.cfg.Timing.MenuSettle)
}

func (g *Game) stepMenu(now int64, input core.InputFrame) {
	if now < g.menuReadyAt {
		return
	}

	switch {
	case input.Has(core.ActionDown):
		g.menuSel = (g.menuSel + 1) % MenuOptionCount
		g.settle(now)
	case input.Has(core.ActionUp):
		g.menuSel = (g.menuSel - 1 + MenuOptionCount) % MenuOptionCount
		g.settle(now)
	case input.Has(core.ActionRight), input.Has(core.ActionConfirm):
		g.settle(now)
		switch g.menuSel {
		case 0:
			g.startRun(now)
		case 1:
			g.phase = PhaseControls
		case 2:
			g.phase = PhaseCredits
		}
	}
}

func (g *Game) stepInfoScreen(now int64, input core.InputFrame) {
	if now < g.menuReadyAt {
		return
	}
	if input.Has(core.ActionRight) || input.Has(core.ActionConfirm) {
		g.phase = PhaseMenu
		g.settle(now)
	}
}

// startRun resets the world to level 1 and enters play.
func (g *Game) startRun(now int64) {
	g.world.ResetRun(g.cfg)
	g.phase = PhasePlaying
	g.enemyMovedAt = now
	g.heartMovedAt = now
	g.enemyUpdates = 0
	g.endedSel = 0
	g.emit(Event{Kind: EventRunStarted})
}

func (g *Game) stepPlaying(now int64, input core.InputFrame) {
	w := g.world

	// Win condition first, so a heart collected last tick advances before
	// anything else moves.
	g.evaluate(now)
	if g.phase != PhasePlaying {
		return
	}

	if !w.GameWon {
		interval := int64(g.cfg.Timing.EnemyIntervalL1)
		if w.Level >= 2 {
			interval = int64(g.cfg.Timing.EnemyIntervalL2)
		}
		if now-g.enemyMovedAt >= interval {
			g.enemyMovedAt = now
			ChaseStep(w, g.enemyUpdates)
			g.enemyUpdates++
		}
	}

	g.movePlayer(now, input)
	if g.phase != PhasePlaying {
		return
	}

	// Heart walk and the enemy collision check share one cadence gate.
	if now-g.heartMovedAt >= int64(g.cfg.Timing.HeartInterval) && !w.GameOver {
		WalkHearts(w, g.rng, g.cfg.Movement.HeartStep)

		if !w.GameWon && EnemyHits(w) {
			w.GameOver = true
			w.DeactivateEnemies()
			g.phase = PhaseEnded
			g.endedSel = 0
			g.settle(now)
			g.emit(Event{Kind: EventDefeat})
		}

		g.heartMovedAt = now
	}
}

// movePlayer applies held directional input, one pixel per axis per tick.
// The guards keep the sprite on screen; walls never block the player.
func (g *Game) movePlayer(now int64, input core.InputFrame) {
	w := g.world
	if w.GameOver || w.GameWon {
		return
	}

	step := g.cfg.Movement.PlayerStep
	hmoved, vmoved := false, false

	if input.Has(core.ActionRight) && w.Player.X < MaxPosX {
		w.Player.X += step
		hmoved = true
		w.Player.FlipH = false
	}
	if input.Has(core.ActionLeft) && w.Player.X > 2 {
		w.Player.X -= step
		hmoved = true
		w.Player.FlipH = true
	}
	if input.Has(core.ActionDown) && w.Player.Y < MaxPosY {
		w.Player.Y += step
		vmoved = true
		w.Player.FlipV = false
	}
	if input.Has(core.ActionUp) && w.Player.Y > 1 {
		w.Player.Y -= step
		vmoved = true
		w.Player.FlipV = true
	}

	if !hmoved && !vmoved {
		return
	}
	w.Player.Horizontal = hmoved
	if hmoved {
		w.Player.Anim = !w.Player.Anim
	}

	// Pickups only register on a movement tick.
	for _, idx := range CollectHearts(w) {
		g.emit(Event{Kind: EventHeartEaten, Index: idx})
	}
	g.evaluate(now)
}

// evaluate runs the win evaluator and translates its outcome into phase
// transitions and events.
func (g *Game) evaluate(now int64) {
	res := Evaluate(g.world, g.cfg)
	switch {
	case res.LeveledUp:
		g.phase = PhaseSplash
		g.splashUntil = now + int64(g.cfg.Timing.LevelSplash)
		g.emit(Event{Kind: EventLevelAdvanced, Level: g.world.Level})
	case res.Won:
		g.phase = PhaseEnded
		g.endedSel = 0
		g.settle(now)
		g.emit(Event{Kind: EventVictory})
	}
}

func (g *Game) stepEnded(now int64, input core.InputFrame) {
	if now < g.menuReadyAt {
		return
	}

	switch {
	// Up and down both flip the two-entry selection.
	case input.Has(core.ActionDown), input.Has(core.ActionUp):
		g.endedSel = 1 - g.endedSel
		g.settle(now)
	case input.Has(core.ActionRight), input.Has(core.ActionConfirm):
		g.settle(now)
		if g.endedSel == 0 {
			g.startRun(now)
		} else {
			g.world.ResetRun(g.cfg)
			g.phase = PhaseMenu
			g.menuSel = 0
		}
	}
}

// State returns the platform-visible session summary.
func (g *Game) State() State {
	return State{
		Phase:           g.phase,
		Level:           g.world.Level,
		HeartsCollected: g.world.HeartsCollected,
		GameOver:        g.world.GameOver,
		GameWon:         g.world.GameWon,
	}
}
