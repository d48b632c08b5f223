package box2d

import (
	"github.com/ByteArena/box2d"

	"chosenoffset.com/paddleball/internal/physics"
)

// Box2D works best with bodies in the 0.1–10 meter range, so playfield
// pixels are scaled down on the way in and back up on the way out.
const pixelsPerMeter = 50.0

// Solver iteration counts recommended by the Box2D manual.
const (
	velocityIterations = 8
	positionIterations = 3
)

// World implements physics.World on top of the ByteArena Box2D port.
type World struct {
	world   box2d.B2World
	pending []physics.CollisionStart
}

// NewWorld creates a physics world with the given gravity vector in
// playfield units per second squared.
func NewWorld(gravity physics.Vec2) *World {
	w := &World{}
	w.world = box2d.MakeB2World(box2d.MakeB2Vec2(gravity.X/pixelsPerMeter, gravity.Y/pixelsPerMeter))
	w.world.SetContactListener(&contactListener{w: w})
	return w
}

// CreateCircleBody registers a circular body.
func (w *World) CreateCircleBody(def physics.BodyDef, radius float64) physics.Body {
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = radius / pixelsPerMeter
	return w.createBody(def, &shape)
}

// CreateBoxBody registers a rectangular body.
func (w *World) CreateBoxBody(def physics.BodyDef, width, height float64) physics.Body {
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(width/2/pixelsPerMeter, height/2/pixelsPerMeter)
	return w.createBody(def, &shape)
}

func (w *World) createBody(def physics.BodyDef, shape box2d.B2ShapeInterface) physics.Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = bodyType(def.Type)
	bd.Position.Set(def.Position.X/pixelsPerMeter, def.Position.Y/pixelsPerMeter)
	bd.FixedRotation = def.FixedRotation
	bd.GravityScale = def.GravityScale

	b := w.world.CreateBody(&bd)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = 1.0
	fd.Friction = def.Material.Friction
	fd.Restitution = def.Material.Restitution
	b.CreateFixtureFromDef(&fd)

	wrapped := &body{b: b, userData: def.UserData}
	// The wrapper rides on the Box2D body so the contact listener can
	// surface physics.Body values in events.
	b.SetUserData(wrapped)
	return wrapped
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.world.Step(dt, velocityIterations, positionIterations)
}

// DrainCollisions returns and clears the collision-start events queued
// during stepping since the previous drain.
func (w *World) DrainCollisions() []physics.CollisionStart {
	events := w.pending
	w.pending = nil
	return events
}

func bodyType(t physics.BodyType) uint8 {
	switch t {
	case physics.Kinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case physics.Dynamic:
		return box2d.B2BodyType.B2_dynamicBody
	default:
		return box2d.B2BodyType.B2_staticBody
	}
}

// body wraps a Box2D body and converts between meters and playfield units.
type body struct {
	b        *box2d.B2Body
	userData any
}

// Position returns the body center in playfield units.
func (b *body) Position() physics.Vec2 {
	p := b.b.GetPosition()
	return physics.Vec2{X: p.X * pixelsPerMeter, Y: p.Y * pixelsPerMeter}
}

// SetPosition moves the body directly, preserving its angle.
func (b *body) SetPosition(p physics.Vec2) {
	b.b.SetTransform(box2d.MakeB2Vec2(p.X/pixelsPerMeter, p.Y/pixelsPerMeter), b.b.GetAngle())
}

// Velocity returns the linear velocity in playfield units per second.
func (b *body) Velocity() physics.Vec2 {
	v := b.b.GetLinearVelocity()
	return physics.Vec2{X: v.X * pixelsPerMeter, Y: v.Y * pixelsPerMeter}
}

// SetVelocity overwrites the linear velocity.
func (b *body) SetVelocity(v physics.Vec2) {
	b.b.SetLinearVelocity(box2d.MakeB2Vec2(v.X/pixelsPerMeter, v.Y/pixelsPerMeter))
}

// UserData returns the tag supplied at creation.
func (b *body) UserData() any {
	return b.userData
}

// contactListener queues a collision-start event for each newly begun
// contact. Box2D invokes it during Step; events are drained afterwards.
type contactListener struct {
	w *World
}

// BeginContact implements box2d.B2ContactListenerInterface.
func (l *contactListener) BeginContact(contact box2d.B2ContactInterface) {
	a, okA := contact.GetFixtureA().GetBody().GetUserData().(physics.Body)
	b, okB := contact.GetFixtureB().GetBody().GetUserData().(physics.Body)
	if !okA || !okB {
		return
	}
	l.w.pending = append(l.w.pending, physics.CollisionStart{A: a, B: b})
}

// EndContact implements box2d.B2ContactListenerInterface.
func (l *contactListener) EndContact(contact box2d.B2ContactInterface) {}

// PreSolve implements box2d.B2ContactListenerInterface.
func (l *contactListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

// PostSolve implements box2d.B2ContactListenerInterface.
func (l *contactListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}
