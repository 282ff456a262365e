package config

import (
	_ "embed"
)

//go:embed defaults/heartchase.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration. Values mirror the
// embedded defaults/heartchase.yaml and act as the last-resort fallback.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Timing: TimingConfig{
			TickRate:         50,
			EnemyIntervalL1:  30,
			EnemyIntervalL2:  65,
			HeartInterval:    400,
			MenuSettle:       200,
			LevelSplash:      2000,
			PickupNoteMs:     500,
			PickupNoteFreq:   500,
			BackgroundTuneOn: true,
		},
		Movement: MovementConfig{
			PlayerStep: 1,
			HeartStep:  3,
		},
		Spawns: SpawnConfig{
			Player: Spawn{X: 50, Y: 50},
			Hearts: []Spawn{
				{X: 40, Y: 80},
				{X: 60, Y: 90},
				{X: 80, Y: 70},
				{X: 30, Y: 100},
				{X: 90, Y: 110},
				{X: 20, Y: 60},
			},
			EnemiesLevel1: []Spawn{
				{X: 10, Y: 10},
			},
			EnemiesLevel2: []Spawn{
				{X: 10, Y: 10},
				{X: 100, Y: 10},
				{X: 60, Y: 140},
			},
		},
		Goals: GoalConfig{
			HeartsLevel1: 2,
			HeartsLevel2: 4,
		},
	}
}
