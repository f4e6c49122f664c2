package config

import (
	_ "embed"
)

//go:embed defaults/gomba.yaml
var defaultGombaYAML []byte

// DefaultGombaConfig returns the built-in configuration. It mirrors
// defaults/gomba.yaml and is used when the embedded file cannot be parsed.
func DefaultGombaConfig() GombaConfig {
	return GombaConfig{
		Player: PlayerConfig{
			Spawn:           Point{X: -20, Y: 0.5},
			Width:           1,
			Height:          1,
			HorizontalSpeed: 6,
			VerticalSpeed:   13,
		},
		Physics: PhysicsConfig{
			Gravity:      30,
			MaxFallSpeed: 25,
			GroundY:      0,
			MinX:         -30,
			MaxX:         30,
		},
		Patroller: PatrollerConfig{
			Period:    5,
			Amplitude: 5,
			JumpOverX: 0.5,
			JumpOverY: 0.25,
			Width:     1,
			Height:    1,
		},
		AxePatroller: AxePatrollerConfig{
			ReloadTime:         3,
			SwitchableDistance: 2.5,
			SwitchDistance:     5,
			BaseSpeed:          4,
			SpeedVariation:     0.5,
			ActivateXRange:     2,
			ActivateYRange:     3,
			Width:              1,
			Height:             1,
		},
		Axe: AxeConfig{
			SwingPeriod:    0.125,
			SwingAmplitude: 75,
			Reach:          0.9,
			Width:          0.6,
			Height:         0.8,
		},
		Kill: KillConfig{
			BounceFactor:  0.8,
			SquashScale:   0.5,
			SquashDrop:    0.25,
			RemovalDelay:  0.5,
			PopupOffset:   0.5,
			PopupDuration: 0.5,
		},
		Round: RoundConfig{
			CheckoffTime:   5,
			SpawnInterval:  10,
			JumpOverPoints: 1,
			SpawnLocations: []Point{
				{X: -28, Y: 0.5},
				{X: 28, Y: 0.5},
			},
		},
		Layout: []LayoutEntry{
			{Kind: "patroller", X: -10, Y: 0.5},
			{Kind: "patroller", X: 4, Y: 0.5},
			{Kind: "patroller", X: 16, Y: 0.5},
			{Kind: "axe_patroller", X: 24, Y: 0.5},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGombaYAML
}
