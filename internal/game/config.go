// Package game implements the per-tick paddleball simulation: playfield
// geometry, entity spawning, paddle control, collision response, and
// progressive ball acceleration.
package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the tuning values for the simulation. Values are loaded
// from a JSON file so the feel can be adjusted without recompiling.
type Config struct {
	// Surface dimensions for the game window, in pixels
	SurfaceWidth  int `json:"surface_width"`
	SurfaceHeight int `json:"surface_height"`

	// Padding between the window edges and the playfield, per side
	Padding float64 `json:"padding"`

	// Thickness of the four border walls
	BorderThickness float64 `json:"border_thickness"`

	// Ball shape and initial motion
	BallRadius    float64 `json:"ball_radius"`
	BallVelocityX float64 `json:"ball_velocity_x"`
	BallVelocityY float64 `json:"ball_velocity_y"`

	// Paddle shape and motion
	PaddleWidth  float64 `json:"paddle_width"`
	PaddleHeight float64 `json:"paddle_height"`
	PaddleSpeed  float64 `json:"paddle_speed"`

	// Vertical clearance the paddle keeps from the horizontal borders
	PaddleMargin float64 `json:"paddle_margin"`

	// Progressive speed-up: multiply the ball velocity by Factor once
	// per Period seconds
	AccelerationPeriod float64 `json:"acceleration_period"`
	AccelerationFactor float64 `json:"acceleration_factor"`
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() *Config {
	return &Config{
		SurfaceWidth:       800,
		SurfaceHeight:      600,
		Padding:            20,
		BorderThickness:    20,
		BallRadius:         10,
		BallVelocityX:      200,
		BallVelocityY:      200,
		PaddleWidth:        10,
		PaddleHeight:       50,
		PaddleSpeed:        300,
		PaddleMargin:       30,
		AccelerationPeriod: 0.1,
		AccelerationFactor: 1.001,
	}
}

// LoadConfig loads game tuning from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	return config, nil
}
