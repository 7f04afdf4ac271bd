// Package config handles flywheel configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/akmonengine/flywheel"
	"github.com/akmonengine/flywheel/actor"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Input   InputConfig   `yaml:"input"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// PhysicsConfig holds the spin engine calibration.
type PhysicsConfig struct {
	ReferenceSize float64       `yaml:"reference_size"` // px
	PressFriction float64       `yaml:"press_friction"` // deg/s²
	RestEpsilon   float64       `yaml:"rest_epsilon"`   // deg/s
	IdleAxis      []float64     `yaml:"idle_axis"`
	IdleSpeed     float64       `yaml:"idle_speed"` // deg/s
	TickInterval  time.Duration `yaml:"tick_interval"`
}

// InputConfig maps terminal cells to pointer pixels.
type InputConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// RenderConfig holds the book extents and the viewer distance, in pixels.
type RenderConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	Depth         float64       `yaml:"depth"`
	Perspective   float64       `yaml:"perspective"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			ReferenceSize: flywheel.DEFAULT_REFERENCE_SIZE,
			PressFriction: flywheel.DEFAULT_PRESS_FRICTION,
			RestEpsilon:   flywheel.DEFAULT_REST_EPSILON,
			IdleAxis:      append([]float64(nil), flywheel.DEFAULT_IDLE_AXIS[:]...),
			IdleSpeed:     flywheel.DEFAULT_IDLE_SPEED,
			TickInterval:  time.Millisecond,
		},
		Input: InputConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Render: RenderConfig{
			Width:         384,
			Height:        576,
			Depth:         64,
			Perspective:   1600,
			FrameInterval: 16 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case p.ReferenceSize <= 0:
		return fmt.Errorf("%w: physics.reference_size must be positive, got %v", ErrInvalidConfig, p.ReferenceSize)
	case p.PressFriction < 0:
		return fmt.Errorf("%w: physics.press_friction must not be negative, got %v", ErrInvalidConfig, p.PressFriction)
	case p.RestEpsilon <= 0:
		return fmt.Errorf("%w: physics.rest_epsilon must be positive, got %v", ErrInvalidConfig, p.RestEpsilon)
	case len(p.IdleAxis) != 3:
		return fmt.Errorf("%w: physics.idle_axis needs 3 components, got %d", ErrInvalidConfig, len(p.IdleAxis))
	case p.TickInterval <= 0:
		return fmt.Errorf("%w: physics.tick_interval must be positive, got %v", ErrInvalidConfig, p.TickInterval)
	}

	if c.Input.CellWidth <= 0 || c.Input.CellHeight <= 0 {
		return fmt.Errorf("%w: input cell size must be positive, got %vx%v", ErrInvalidConfig, c.Input.CellWidth, c.Input.CellHeight)
	}

	r := c.Render
	if r.Width <= 0 || r.Height <= 0 || r.Depth < 0 || r.Perspective <= 0 || r.FrameInterval <= 0 {
		return fmt.Errorf("%w: render settings must be positive", ErrInvalidConfig)
	}

	return nil
}

// ToParams maps the physics settings onto engine parameters.
// The config must be valid.
func (c *Config) ToParams() flywheel.Params {
	p := c.Physics
	return flywheel.Params{
		ReferenceSize: p.ReferenceSize,
		PressFriction: p.PressFriction,
		RestEpsilon:   p.RestEpsilon,
		IdleMomentum: actor.AxisAngle{
			Axis:  mgl64.Vec3{p.IdleAxis[0], p.IdleAxis[1], p.IdleAxis[2]},
			Angle: p.IdleSpeed,
		},
	}
}
