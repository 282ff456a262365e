// Package config provides YAML-based tuning for the Heart Chase game.
package config

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Movement MovementConfig `yaml:"movement"`
	Spawns   SpawnConfig    `yaml:"spawns"`
	Goals    GoalConfig     `yaml:"goals"`
}

// TimingConfig defines the cadence gates of the simulation, in milliseconds
// of simulated clock time.
type TimingConfig struct {
	TickRate         int  `yaml:"tick_rate"`            // Simulation ticks per second
	EnemyIntervalL1  int  `yaml:"enemy_interval_l1_ms"` // Chase update cadence at level 1
	EnemyIntervalL2  int  `yaml:"enemy_interval_l2_ms"` // Chase update cadence at level 2+
	HeartInterval    int  `yaml:"heart_interval_ms"`    // Heart walk + collision cadence
	MenuSettle       int  `yaml:"menu_settle_ms"`       // Debounce delay for menu actions
	LevelSplash      int  `yaml:"level_splash_ms"`      // Duration of the level banner
	PickupNoteMs     int  `yaml:"pickup_note_ms"`       // Pickup sound length
	PickupNoteFreq   int  `yaml:"pickup_note_freq"`     // Pickup sound frequency (Hz)
	BackgroundTuneOn bool `yaml:"background_tune"`      // Loop the background tune
}

// MovementConfig defines per-step movement distances in pixels.
type MovementConfig struct {
	PlayerStep int `yaml:"player_step"` // Pixels per input frame per axis
	HeartStep  int `yaml:"heart_step"`  // Pixels per random-walk step per axis
}

// Spawn is a spawn position in pixel coordinates.
type Spawn struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpawnConfig defines entity starting positions.
type SpawnConfig struct {
	Player        Spawn   `yaml:"player"`
	Hearts        []Spawn `yaml:"hearts"`         // Up to 6 heart positions
	EnemiesLevel1 []Spawn `yaml:"enemies_level1"` // Active enemies at level 1
	EnemiesLevel2 []Spawn `yaml:"enemies_level2"` // Active enemies at level 2+
}

// GoalConfig defines how many hearts each level requires.
type GoalConfig struct {
	HeartsLevel1 int `yaml:"hearts_level1"`
	HeartsLevel2 int `yaml:"hearts_level2"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a user-supplied preset name to a DifficultyPreset.
// Anything unrecognized (including empty) is treated as normal.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	}
	return DifficultyNormal
}

// ApplyPreset adjusts chase cadences for a difficulty preset. Slower enemy
// updates mean slower pursuit. Unknown presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.EnemyIntervalL1 = 60
		cfg.Timing.EnemyIntervalL2 = 100
	case DifficultyHard:
		cfg.Timing.EnemyIntervalL1 = 20
		cfg.Timing.EnemyIntervalL2 = 40
	}
}
