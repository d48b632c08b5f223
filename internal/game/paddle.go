package game

import (
	"chosenoffset.com/paddleball/internal/input"
	"chosenoffset.com/paddleball/internal/physics"
)

// PaddleController turns held up/down actions into a clamped vertical
// paddle position, once per tick.
type PaddleController struct {
	// Speed is the paddle travel rate in units per second.
	Speed float64

	// MaxY bounds the paddle center to [-MaxY, MaxY].
	MaxY float64
}

// NewPaddleController builds a controller from the game tuning.
func NewPaddleController(field Playfield, cfg *Config) PaddleController {
	return PaddleController{
		Speed: cfg.PaddleSpeed,
		MaxY:  field.MaxPaddleY(cfg.PaddleMargin),
	}
}

// Update moves the paddle by the held direction scaled by the tick delta,
// then clamps it to the playfield. Scaling by elapsed time rather than
// tick count keeps the motion frame-rate independent. Holding both
// actions cancels to no movement.
func (c PaddleController) Update(paddle *Entity, state input.State, dt float64) {
	direction := 0.0
	if state.Up {
		direction += 1
	}
	if state.Down {
		direction -= 1
	}

	pos := paddle.Body.Position()
	newY := pos.Y + direction*dt*c.Speed
	paddle.Body.SetPosition(physics.Vec2{X: pos.X, Y: clamp(newY, -c.MaxY, c.MaxY)})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
