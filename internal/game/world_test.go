package game

import (
	"testing"

	"github.com/vlegaspi/heartchase/internal/config"
)

func TestResetRun(t *testing.T) {
	cfg := config.DefaultGameConfig()
	w := NewWorld(cfg)

	// Dirty the world, then reset.
	w.Level = 2
	w.HeartsCollected = 3
	w.GameOver = true
	w.GameWon = true
	w.Player.X = 7
	w.Hearts[0].Eaten = true
	w.Hearts[0].X = 1

	w.ResetRun(cfg)

	if w.Level != 1 || w.HeartsCollected != 0 || w.GameOver || w.GameWon {
		t.Errorf("run flags not reset: %+v", w)
	}
	if w.Player.X != cfg.Spawns.Player.X || w.Player.Y != cfg.Spawns.Player.Y {
		t.Errorf("player at (%d,%d), want spawn (%d,%d)",
			w.Player.X, w.Player.Y, cfg.Spawns.Player.X, cfg.Spawns.Player.Y)
	}
	for i, s := range cfg.Spawns.Hearts {
		if w.Hearts[i].X != s.X || w.Hearts[i].Y != s.Y {
			t.Errorf("heart %d at (%d,%d), want spawn (%d,%d)",
				i, w.Hearts[i].X, w.Hearts[i].Y, s.X, s.Y)
		}
		if w.Hearts[i].Eaten {
			t.Errorf("heart %d still eaten after reset", i)
		}
	}
}

func TestInitEnemiesPerLevel(t *testing.T) {
	cfg := config.DefaultGameConfig()
	w := NewWorld(cfg)

	if got := w.ActiveEnemyCount(); got != 1 {
		t.Errorf("level 1 active enemies = %d, want 1", got)
	}

	// Pollute a high slot; a level change must not inherit it.
	w.Enemies[5].Active = true
	w.Level = 2
	w.InitEnemies(cfg)

	if got := w.ActiveEnemyCount(); got != 3 {
		t.Errorf("level 2 active enemies = %d, want 3", got)
	}
	if w.Enemies[5].Active {
		t.Error("stale enemy slot survived InitEnemies")
	}
	for i := 0; i < 3; i++ {
		if w.Enemies[i].Speed != 1 {
			t.Errorf("enemy %d speed = %d, want 1", i, w.Enemies[i].Speed)
		}
	}
}

func TestHeartSetSize(t *testing.T) {
	cfg := config.DefaultGameConfig()
	w := NewWorld(cfg)

	if w.HeartSetSize() != 2 {
		t.Errorf("level 1 set size = %d, want 2", w.HeartSetSize())
	}
	w.Level = 2
	if w.HeartSetSize() != 4 {
		t.Errorf("level 2 set size = %d, want 4", w.HeartSetSize())
	}
	if w.RequiredHearts(cfg.Goals) != 4 {
		t.Errorf("level 2 goal = %d, want 4", w.RequiredHearts(cfg.Goals))
	}
}

func TestBossStaysDormant(t *testing.T) {
	cfg := config.DefaultGameConfig()
	w := NewWorld(cfg)

	if w.Boss.Active {
		t.Error("boss should start inactive")
	}
	w.ResetRun(cfg)
	w.Level = 2
	w.InitEnemies(cfg)
	if w.Boss.Active {
		t.Error("no code path should activate the boss")
	}
}
