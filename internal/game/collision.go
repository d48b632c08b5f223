package game

import (
	"chosenoffset.com/paddleball/internal/physics"
)

// RespondToCollisions processes the collision-start events drained from
// the physics world this tick. Each event in which the ball participates
// inverts the horizontal velocity of every ball in play, once per event:
// an odd number of qualifying events this tick flips the direction, an
// even number leaves it unchanged. Vertical velocity is never touched
// here; bouncing off the horizontal borders is the physics engine's
// elastic response.
func RespondToCollisions(events []physics.CollisionStart, entities []*Entity) {
	for _, ev := range events {
		if !isBall(ev.A) && !isBall(ev.B) {
			continue
		}
		for _, e := range entities {
			if e.Kind != KindBall {
				continue
			}
			v := e.Body.Velocity()
			v.X = -v.X
			e.Body.SetVelocity(v)
		}
	}
}

func isBall(b physics.Body) bool {
	e, ok := b.UserData().(*Entity)
	return ok && e.Kind == KindBall
}
