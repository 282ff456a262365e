package game

// Snapshot captures the complete session state for determinism testing and
// replay comparison.
type Snapshot struct {
	Tick            uint64
	Phase           Phase
	Level           int
	HeartsCollected int
	GameOver        bool
	GameWon         bool

	PlayerX int
	PlayerY int

	Enemies [MaxEnemies]Enemy
	Hearts  [MaxHearts]Heart

	MenuSel  int
	EndedSel int
}

// Snapshot returns the current session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		Phase:           g.phase,
		Level:           g.world.Level,
		HeartsCollected: g.world.HeartsCollected,
		GameOver:        g.world.GameOver,
		GameWon:         g.world.GameWon,
		PlayerX:         g.world.Player.X,
		PlayerY:         g.world.Player.Y,
		Enemies:         g.world.Enemies,
		Hearts:          g.world.Hearts,
		MenuSel:         g.menuSel,
		EndedSel:        g.endedSel,
	}
}
