// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for gomba.
package config

// Point is a world-space position in config files.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// GombaConfig contains all tunable parameters of the game.
type GombaConfig struct {
	Player       PlayerConfig       `yaml:"player" toml:"player"`
	Physics      PhysicsConfig      `yaml:"physics" toml:"physics"`
	Patroller    PatrollerConfig    `yaml:"patroller" toml:"patroller"`
	AxePatroller AxePatrollerConfig `yaml:"axe_patroller" toml:"axe_patroller"`
	Axe          AxeConfig          `yaml:"axe" toml:"axe"`
	Kill         KillConfig         `yaml:"kill" toml:"kill"`
	Round        RoundConfig        `yaml:"round" toml:"round"`
	Layout       []LayoutEntry      `yaml:"layout" toml:"layout"`
}

// PlayerConfig defines the player body and movement speeds.
type PlayerConfig struct {
	Spawn           Point   `yaml:"spawn" toml:"spawn"`
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	HorizontalSpeed float64 `yaml:"horizontal_speed" toml:"horizontal_speed"` // units per second
	VerticalSpeed   float64 `yaml:"vertical_speed" toml:"vertical_speed"`     // jump impulse, units per second
}

// PhysicsConfig defines the world the physics collaborator simulates.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	GroundY      float64 `yaml:"ground_y" toml:"ground_y"` // top surface of the ground
	MinX         float64 `yaml:"min_x" toml:"min_x"`       // left wall
	MaxX         float64 `yaml:"max_x" toml:"max_x"`       // right wall
}

// PatrollerConfig defines the triangle-wave patrol and jump-over bounds.
type PatrollerConfig struct {
	Period    float64 `yaml:"period" toml:"period"`
	Amplitude float64 `yaml:"amplitude" toml:"amplitude"`
	JumpOverX float64 `yaml:"jump_over_x" toml:"jump_over_x"` // maximum x-distance
	JumpOverY float64 `yaml:"jump_over_y" toml:"jump_over_y"` // minimum height above the enemy
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
}

// AxePatrollerConfig defines the chase policy and weapon trigger.
type AxePatrollerConfig struct {
	ReloadTime         float64 `yaml:"reload_time" toml:"reload_time"`
	SwitchableDistance float64 `yaml:"switchable_distance" toml:"switchable_distance"`
	SwitchDistance     float64 `yaml:"switch_distance" toml:"switch_distance"`
	BaseSpeed          float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedVariation     float64 `yaml:"speed_variation" toml:"speed_variation"`
	ActivateXRange     float64 `yaml:"activate_x_range" toml:"activate_x_range"`
	ActivateYRange     float64 `yaml:"activate_y_range" toml:"activate_y_range"`
	Width              float64 `yaml:"width" toml:"width"`
	Height             float64 `yaml:"height" toml:"height"`
}

// AxeConfig defines the weapon swing and its hitbox.
type AxeConfig struct {
	SwingPeriod    float64 `yaml:"swing_period" toml:"swing_period"`
	SwingAmplitude float64 `yaml:"swing_amplitude" toml:"swing_amplitude"` // degrees each side of vertical
	Reach          float64 `yaml:"reach" toml:"reach"`                     // pivot to hitbox center
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
}

// KillConfig defines what happens visually and to the player on a kill.
type KillConfig struct {
	BounceFactor  float64 `yaml:"bounce_factor" toml:"bounce_factor"` // fraction of player vertical speed
	SquashScale   float64 `yaml:"squash_scale" toml:"squash_scale"`
	SquashDrop    float64 `yaml:"squash_drop" toml:"squash_drop"`
	RemovalDelay  float64 `yaml:"removal_delay" toml:"removal_delay"`
	PopupOffset   float64 `yaml:"popup_offset" toml:"popup_offset"`
	PopupDuration float64 `yaml:"popup_duration" toml:"popup_duration"`
}

// RoundConfig defines spawn cadence and scoring.
type RoundConfig struct {
	CheckoffTime   float64 `yaml:"checkoff_time" toml:"checkoff_time"`   // delay before the first spawn
	SpawnInterval  float64 `yaml:"spawn_interval" toml:"spawn_interval"` // delay between later spawns
	JumpOverPoints int     `yaml:"jump_over_points" toml:"jump_over_points"`
	SpawnLocations []Point `yaml:"spawn_locations" toml:"spawn_locations"`
}

// LayoutEntry places one enemy of the initial layout.
type LayoutEntry struct {
	Kind string  `yaml:"kind" toml:"kind"` // "patroller" or "axe_patroller"
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values map to
// the empty preset, which leaves the config untouched.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}

// ApplyPreset scales spawn cadence and axe patroller aggression.
func ApplyPreset(cfg *GombaConfig, preset DifficultyPreset) {
	var spawn, speed, reload float64
	switch preset {
	case DifficultyEasy:
		spawn, speed, reload = 1.5, 0.8, 1.3
	case DifficultyHard:
		spawn, speed, reload = 0.6, 1.2, 0.7
	default:
		return
	}
	cfg.Round.CheckoffTime *= spawn
	cfg.Round.SpawnInterval *= spawn
	cfg.AxePatroller.BaseSpeed *= speed
	cfg.AxePatroller.ReloadTime *= reload
}
