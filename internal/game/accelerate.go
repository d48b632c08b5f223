package game

import (
	"math"
)

// RepeatTimer fires once per fixed period of accumulated time. Leftover
// time beyond whole periods is retained across ticks, so the long-run
// firing rate tracks real elapsed time regardless of tick rate. At most
// one firing is reported per tick even when several periods elapsed,
// which bounds the firing rate under heavy load instead of letting it
// spike.
type RepeatTimer struct {
	period  float64
	elapsed float64
}

// NewRepeatTimer creates a repeating timer with the given period in
// seconds.
func NewRepeatTimer(period float64) *RepeatTimer {
	return &RepeatTimer{period: period}
}

// Tick advances the timer by dt seconds and reports whether it fired.
func (t *RepeatTimer) Tick(dt float64) bool {
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.period)
	return true
}

// Accelerator applies the progressive speed-up: each time its timer
// fires, the full velocity vector of every ball is multiplied by a
// constant factor. This is the only logic that changes ball speed;
// collision response only changes direction.
type Accelerator struct {
	timer  *RepeatTimer
	factor float64
}

// NewAccelerator builds the accelerator from the game tuning.
func NewAccelerator(cfg *Config) *Accelerator {
	return &Accelerator{
		timer:  NewRepeatTimer(cfg.AccelerationPeriod),
		factor: cfg.AccelerationFactor,
	}
}

// Update advances the timer by the tick delta and scales ball velocities
// on firing.
func (a *Accelerator) Update(dt float64, entities []*Entity) {
	if !a.timer.Tick(dt) {
		return
	}
	for _, e := range entities {
		if e.Kind != KindBall {
			continue
		}
		e.Body.SetVelocity(e.Body.Velocity().Scaled(a.factor))
	}
}
