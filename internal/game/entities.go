package game

import (
	"chosenoffset.com/paddleball/internal/physics"
)

// Kind identifies what role an entity plays in the game.
type Kind string

const (
	KindBorder Kind = "border"
	KindPaddle Kind = "paddle"
	KindBall   Kind = "ball"
)

// Side tags which edge of the playfield a border covers. Currently only
// recorded, not acted on.
type Side string

const (
	SideNone   Side = ""
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Entity is a game object bound to a physics body. Width/Height describe
// rectangular entities (paddle, borders); Radius describes the ball.
type Entity struct {
	Kind Kind
	Side Side
	Body physics.Body

	Width  float64
	Height float64
	Radius float64
}

// elastic is the material shared by everything that bounces: frictionless
// and perfectly elastic, so non-accelerated bounces conserve speed.
func elastic() physics.Material {
	return physics.Material{Friction: 0, Restitution: 1}
}

// SpawnBall registers the ball with the physics world: a dynamic circle at
// the playfield center with the initial velocity, no gravity, and rotation
// locked.
func SpawnBall(world physics.World, cfg *Config) *Entity {
	e := &Entity{
		Kind:   KindBall,
		Radius: cfg.BallRadius,
	}
	e.Body = world.CreateCircleBody(physics.BodyDef{
		Type:          physics.Dynamic,
		Position:      physics.Vec2{X: 0, Y: 0},
		Material:      elastic(),
		FixedRotation: true,
		GravityScale:  0,
		UserData:      e,
	}, cfg.BallRadius)
	e.Body.SetVelocity(physics.Vec2{X: cfg.BallVelocityX, Y: cfg.BallVelocityY})
	return e
}

// SpawnPaddle registers the paddle: a kinematic rectangle near the left
// border, vertically centered. Kinematic bodies move only by direct
// position writes and ignore incoming forces.
func SpawnPaddle(world physics.World, field Playfield, cfg *Config) *Entity {
	// Keep the paddle clear of the left border
	paddleX := -(field.Width / 2) + cfg.PaddleWidth*2

	e := &Entity{
		Kind:   KindPaddle,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
	e.Body = world.CreateBoxBody(physics.BodyDef{
		Type:     physics.Kinematic,
		Position: physics.Vec2{X: paddleX, Y: 0},
		Material: elastic(),
		UserData: e,
	}, cfg.PaddleWidth, cfg.PaddleHeight)
	return e
}

// SpawnBorders registers the four static border walls around the
// playfield. The vertical borders extend past the nominal height to close
// the corners, and the horizontal borders are shortened by the same amount
// so they do not overlap the verticals.
func SpawnBorders(world physics.World, field Playfield, cfg *Config) []*Entity {
	thickness := cfg.BorderThickness
	halfWidth := field.Width / 2
	halfHeight := field.Height / 2

	verticalHeight := field.Height + thickness
	horizontalWidth := field.Width - thickness

	borders := []struct {
		side Side
		pos  physics.Vec2
		w, h float64
	}{
		{SideLeft, physics.Vec2{X: -halfWidth, Y: 0}, thickness, verticalHeight},
		{SideRight, physics.Vec2{X: halfWidth, Y: 0}, thickness, verticalHeight},
		{SideTop, physics.Vec2{X: 0, Y: halfHeight}, horizontalWidth, thickness},
		{SideBottom, physics.Vec2{X: 0, Y: -halfHeight}, horizontalWidth, thickness},
	}

	entities := make([]*Entity, 0, len(borders))
	for _, b := range borders {
		e := &Entity{
			Kind:   KindBorder,
			Side:   b.side,
			Width:  b.w,
			Height: b.h,
		}
		e.Body = world.CreateBoxBody(physics.BodyDef{
			Type:     physics.Static,
			Position: b.pos,
			Material: elastic(),
			UserData: e,
		}, b.w, b.h)
		entities = append(entities, e)
	}
	return entities
}
