package game

import (
	"math/rand"

	"github.com/vlegaspi/heartchase/internal/core"
)

// WalkHearts moves every uneaten heart in the current level's set one random
// step. Each axis independently picks a direction from {-1, 0, 1} and the
// heart shifts by step pixels along it, clamped to the screen. Hearts outside
// the level's set stay frozen.
func WalkHearts(w *World, rng *rand.Rand, step int) {
	n := w.HeartSetSize()
	for i := 0; i < n; i++ {
		h := &w.Hearts[i]
		if h.Eaten {
			continue
		}

		h.DirX = rng.Intn(3) - 1
		h.DirY = rng.Intn(3) - 1
		h.X = core.Clamp(h.X+step*h.DirX, 0, MaxPosX)
		h.Y = core.Clamp(h.Y+step*h.DirY, 0, MaxPosY)
	}
}

// CollectHearts marks every uneaten heart in the level's set whose bounding
// box contains the player's anchor point as eaten, and returns the indices
// collected this call. A heart transitions eaten at most once per run.
func CollectHearts(w *World) []int {
	var eaten []int
	n := w.HeartSetSize()
	for i := 0; i < n; i++ {
		h := &w.Hearts[i]
		if h.Eaten {
			continue
		}
		box := core.NewRect(h.X, h.Y, SpriteW, SpriteH)
		if box.ContainsPoint(w.Player.X, w.Player.Y) {
			h.Eaten = true
			eaten = append(eaten, i)
		}
	}
	return eaten
}
