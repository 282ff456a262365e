// Package game implements the Heart Chase simulation: a tile-maze chase where
// the player collects wandering hearts while pumpkin enemies pursue. The
// package is pure logic with no terminal dependencies; the platform layer
// drives it tick by tick and renders the resulting world.
package game

import (
	"github.com/vlegaspi/heartchase/internal/config"
)

// Entity and screen limits, in pixels of the 128x160 logical display.
const (
	MaxEnemies = 6
	MaxHearts  = 6

	SpriteW = 12 // Entity bounding-box width
	SpriteH = 16 // Entity bounding-box height

	ScreenPxW = 128
	ScreenPxH = 160

	// Positions clamp to these so a 12x16 sprite stays fully on screen.
	MaxPosX = 115
	MaxPosY = 144
)

// Player is the controllable token.
type Player struct {
	X, Y int

	// Render-facing state: which way the last move pointed and the
	// two-frame walk animation toggle.
	FlipH      bool
	FlipV      bool
	Horizontal bool
	Anim       bool
}

// Enemy is a chasing adversary. Lifetime is one level; the win evaluator
// re-initializes the set on every level entry and replay.
type Enemy struct {
	X, Y   int
	Active bool
	Speed  int
}

// Heart is a collectible pickup doing a bounded random walk.
type Heart struct {
	X, Y       int
	DirX, DirY int // Last walk direction per axis, in {-1, 0, 1}
	Eaten      bool
}

// Boss is a reserved large adversary. It is instantiated but never activated
// or moved by any code path.
type Boss struct {
	X, Y   int
	Active bool
	Speed  int
	Size   int
}

// World aggregates all mutable entity and progression state. It is owned by
// the Game and passed by reference into the controllers, so unit tests can
// construct isolated worlds.
type World struct {
	Player  Player
	Enemies [MaxEnemies]Enemy
	Hearts  [MaxHearts]Heart
	Boss    Boss

	Level           int // 1 or 2
	HeartsCollected int // Recomputed by the evaluator, never incremented directly
	GameOver        bool
	GameWon         bool
}

// NewWorld creates a world reset to the start of level 1.
func NewWorld(cfg config.GameConfig) *World {
	w := &World{
		Boss: Boss{X: 64, Y: 80, Active: false, Speed: 2, Size: 24},
	}
	w.ResetRun(cfg)
	return w
}

// ResetRun performs a full reset to the start of level 1: player to spawn,
// every heart back to its spawn with its eaten flag cleared, enemies
// re-initialized, all progression flags cleared.
func (w *World) ResetRun(cfg config.GameConfig) {
	w.Level = 1
	w.HeartsCollected = 0
	w.GameOver = false
	w.GameWon = false

	w.Player = Player{X: cfg.Spawns.Player.X, Y: cfg.Spawns.Player.Y}

	for i := range w.Hearts {
		w.Hearts[i] = Heart{DirX: 1, DirY: 1}
		if i < len(cfg.Spawns.Hearts) {
			w.Hearts[i].X = cfg.Spawns.Hearts[i].X
			w.Hearts[i].Y = cfg.Spawns.Hearts[i].Y
		}
	}

	w.InitEnemies(cfg)
}

// InitEnemies configures the enemy set for the current level. All slots are
// deactivated first so a level never inherits stale adversaries.
func (w *World) InitEnemies(cfg config.GameConfig) {
	for i := range w.Enemies {
		w.Enemies[i] = Enemy{}
	}

	spawns := cfg.Spawns.EnemiesLevel1
	if w.Level >= 2 {
		spawns = cfg.Spawns.EnemiesLevel2
	}
	for i, s := range spawns {
		if i >= MaxEnemies {
			break
		}
		w.Enemies[i] = Enemy{X: s.X, Y: s.Y, Active: true, Speed: 1}
	}
}

// HeartSetSize returns how many hearts participate in the current level.
// Level 1 uses the first two; level 2 adds two more. Hearts 5 and 6 exist in
// the data model but are never wired into any level's set.
func (w *World) HeartSetSize() int {
	if w.Level >= 2 {
		return 4
	}
	return 2
}

// RequiredHearts returns the collection goal for the current level.
func (w *World) RequiredHearts(goals config.GoalConfig) int {
	if w.Level >= 2 {
		return goals.HeartsLevel2
	}
	return goals.HeartsLevel1
}

// ActiveEnemyCount returns the number of currently active enemies.
func (w *World) ActiveEnemyCount() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Active {
			n++
		}
	}
	return n
}

// DeactivateEnemies clears every enemy's active flag. Used on defeat so the
// ended screen shows no adversaries.
func (w *World) DeactivateEnemies() {
	for i := range w.Enemies {
		w.Enemies[i].Active = false
	}
}
