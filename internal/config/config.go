// Package config provides YAML-based configuration loading for the game.
package config

import "fmt"

// Config contains all tunable game settings.
type Config struct {
	Timing   TimingConfig   `yaml:"timing"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Keyboard KeyboardConfig `yaml:"keyboard"`
}

// TimingConfig defines the activity tick intervals. The ball interval is the
// knob that sets the game speed.
type TimingConfig struct {
	BallIntervalMs int `yaml:"ball_interval_ms"`
	AIIntervalMs   int `yaml:"ai_interval_ms"`
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width int `yaml:"width"` // paddle height in cells, must be odd
}

// KeyboardConfig defines the X keyboard auto-repeat profile applied while the
// game runs. The previous profile is restored on exit.
type KeyboardConfig struct {
	Tune        bool `yaml:"tune"`         // whether to touch the repeat settings at all
	RepeatDelay int  `yaml:"repeat_delay"` // ms before a held key repeats
	RepeatRate  int  `yaml:"repeat_rate"`  // repeats per second
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			BallIntervalMs: 25,
			AIIntervalMs:   25,
		},
		Paddle: PaddleConfig{
			Width: 5,
		},
		Keyboard: KeyboardConfig{
			Tune:        true,
			RepeatDelay: 100,
			RepeatRate:  30,
		},
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Timing.BallIntervalMs <= 0 {
		return fmt.Errorf("config: ball_interval_ms must be positive, got %d", c.Timing.BallIntervalMs)
	}
	if c.Timing.AIIntervalMs <= 0 {
		return fmt.Errorf("config: ai_interval_ms must be positive, got %d", c.Timing.AIIntervalMs)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width%2 == 0 {
		return fmt.Errorf("config: paddle width must be a positive odd number, got %d", c.Paddle.Width)
	}
	return nil
}
