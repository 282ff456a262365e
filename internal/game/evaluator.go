package game

import "github.com/vlegaspi/heartchase/internal/config"

// EvalResult reports what the win evaluator decided.
type EvalResult struct {
	LeveledUp bool
	Won       bool
}

// Evaluate recomputes the collected-heart count from the eaten flags of the
// current level's set and, when it equals the level goal, advances the run:
// level 1 rolls over into level 2 (eaten flags cleared, enemies
// re-initialized, player back at spawn), level 2 sets the victory flag.
// Calling it again after victory is a no-op, so redundant calls are safe.
//
// Heart positions deliberately carry over on level-up; only the eaten flags
// reset, so the level 2 set resumes wandering from wherever it stood.
func Evaluate(w *World, cfg config.GameConfig) EvalResult {
	w.HeartsCollected = 0
	n := w.HeartSetSize()
	for i := 0; i < n; i++ {
		if w.Hearts[i].Eaten {
			w.HeartsCollected++
		}
	}

	if w.HeartsCollected != w.RequiredHearts(cfg.Goals) || w.GameWon {
		return EvalResult{}
	}

	if w.Level == 1 {
		w.Level = 2
		for i := range w.Hearts {
			w.Hearts[i].Eaten = false
		}
		w.InitEnemies(cfg)
		w.Player.X = cfg.Spawns.Player.X
		w.Player.Y = cfg.Spawns.Player.Y
		return EvalResult{LeveledUp: true}
	}

	w.GameWon = true
	return EvalResult{Won: true}
}
