package game

import "github.com/vlegaspi/heartchase/internal/core"

// ChaseStep advances every active enemy one greedy step toward the player.
// Each axis moves independently by the effective speed, then clamps so the
// sprite stays on screen. updateCount is the running number of chase updates;
// on level 2 and above its parity alternates the effective speed between 1
// and 0, halving the chase rate without touching the update cadence.
func ChaseStep(w *World, updateCount int) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active {
			continue
		}

		speed := e.Speed
		if w.Level >= 2 {
			if updateCount%2 == 0 {
				speed = 1
			} else {
				speed = 0
			}
		}

		if e.X < w.Player.X {
			e.X += speed
		}
		if e.X > w.Player.X {
			e.X -= speed
		}
		if e.Y < w.Player.Y {
			e.Y += speed
		}
		if e.Y > w.Player.Y {
			e.Y -= speed
		}

		e.X = core.Clamp(e.X, 0, MaxPosX)
		e.Y = core.Clamp(e.Y, 0, MaxPosY)
	}
}

// EnemyHits reports whether the player's anchor point lies inside any active
// enemy's bounding box. Edges count as inside.
func EnemyHits(w *World) bool {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active {
			continue
		}
		box := core.NewRect(e.X, e.Y, SpriteW, SpriteH)
		if box.ContainsPoint(w.Player.X, w.Player.Y) {
			return true
		}
	}
	return false
}
