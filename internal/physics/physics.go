// Package physics defines the interface to the rigid-body engine. Game
// logic registers bodies, writes velocities and kinematic positions, and
// drains collision-start events; the backend owns integration and contact
// resolution.
package physics

// Vec2 is a 2D vector in playfield units (pixels), center origin, +Y up.
type Vec2 struct {
	X, Y float64
}

// Scaled returns the vector multiplied by a scalar.
func (v Vec2) Scaled(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// BodyType determines how the engine moves a body.
type BodyType int

const (
	// Static bodies never move (the borders).
	Static BodyType = iota
	// Kinematic bodies are driven by direct position writes and are
	// immune to incoming forces (the paddle).
	Kinematic
	// Dynamic bodies are fully governed by integration and contact
	// response (the ball).
	Dynamic
)

// Material holds the surface properties used in contact resolution.
// Restitution combines with the max rule: a contact bounces with the
// larger of the two bodies' coefficients.
type Material struct {
	Friction    float64
	Restitution float64
}

// BodyDef describes a body to register with the engine.
type BodyDef struct {
	Type     BodyType
	Position Vec2
	Material Material

	// FixedRotation locks angular dynamics (no spin).
	FixedRotation bool

	// GravityScale multiplies the world gravity for this body.
	GravityScale float64

	// UserData is an opaque tag carried on the body, returned on
	// collision events. The game stores its entity here.
	UserData any
}

// Body is a registered rigid body.
type Body interface {
	// Position returns the body center in playfield units.
	Position() Vec2

	// SetPosition moves the body directly. Intended for kinematic
	// bodies.
	SetPosition(p Vec2)

	// Velocity returns the linear velocity in playfield units per second.
	Velocity() Vec2

	// SetVelocity overwrites the linear velocity.
	SetVelocity(v Vec2)

	// UserData returns the tag supplied at creation.
	UserData() any
}

// CollisionStart names the two bodies of a newly begun contact. It is
// emitted once at start of contact, not while contact persists.
type CollisionStart struct {
	A, B Body
}

// World is the rigid-body engine.
type World interface {
	// CreateCircleBody registers a body with a circular shape of the
	// given radius.
	CreateCircleBody(def BodyDef, radius float64) Body

	// CreateBoxBody registers a body with a rectangular shape of the
	// given full width and height, centered on the body position.
	CreateBoxBody(def BodyDef, width, height float64) Body

	// Step advances the simulation by dt seconds, resolving contacts
	// and queuing collision-start events.
	Step(dt float64)

	// DrainCollisions returns the collision-start events queued since
	// the previous drain and clears the queue.
	DrainCollisions() []CollisionStart
}
