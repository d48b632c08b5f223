package game

import (
	"chosenoffset.com/paddleball/internal/physics"
	"chosenoffset.com/paddleball/internal/render"
)

// stubWorld implements physics.World for tests. It records registered
// bodies and hands back queued collision events on drain; tests inject
// events directly instead of simulating contacts.
type stubWorld struct {
	bodies  []*stubBody
	pending []physics.CollisionStart
	stepped float64
}

type stubBody struct {
	def    physics.BodyDef
	radius float64
	w, h   float64
	circle bool

	pos physics.Vec2
	vel physics.Vec2
}

func (w *stubWorld) CreateCircleBody(def physics.BodyDef, radius float64) physics.Body {
	b := &stubBody{def: def, radius: radius, circle: true, pos: def.Position}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *stubWorld) CreateBoxBody(def physics.BodyDef, width, height float64) physics.Body {
	b := &stubBody{def: def, w: width, h: height, pos: def.Position}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *stubWorld) Step(dt float64) {
	w.stepped += dt
}

func (w *stubWorld) DrainCollisions() []physics.CollisionStart {
	events := w.pending
	w.pending = nil
	return events
}

func (w *stubWorld) queueCollision(a, b physics.Body) {
	w.pending = append(w.pending, physics.CollisionStart{A: a, B: b})
}

func (b *stubBody) Position() physics.Vec2     { return b.pos }
func (b *stubBody) SetPosition(p physics.Vec2) { b.pos = p }
func (b *stubBody) Velocity() physics.Vec2     { return b.vel }
func (b *stubBody) SetVelocity(v physics.Vec2) { b.vel = v }
func (b *stubBody) UserData() any              { return b.def.UserData }

// stubInput implements render.InputManager with a settable key set.
type stubInput struct {
	held map[render.Key]bool
}

func newStubInput() *stubInput {
	return &stubInput{held: make(map[render.Key]bool)}
}

func (s *stubInput) IsKeyPressed(key render.Key) bool {
	return s.held[key]
}
