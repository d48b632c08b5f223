package game

import (
	"math"
	"testing"

	"chosenoffset.com/paddleball/internal/physics"
	"chosenoffset.com/paddleball/internal/render"
)

func newTestGame(t *testing.T) (*Game, *stubWorld, *stubInput) {
	t.Helper()
	world := &stubWorld{}
	in := newStubInput()
	g, err := New(DefaultConfig(), world, nil, in)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g, world, in
}

func findKind(entities []*Entity, kind Kind) *Entity {
	for _, e := range entities {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}

func TestNew_SpawnsFullScene(t *testing.T) {
	g, world, _ := newTestGame(t)

	if g.Field.Width != 760 || g.Field.Height != 560 {
		t.Errorf("Expected 760x560 playfield, got %gx%g", g.Field.Width, g.Field.Height)
	}

	// Four borders, one paddle, one ball
	if len(g.Entities) != 6 {
		t.Fatalf("Expected 6 entities, got %d", len(g.Entities))
	}
	if len(world.bodies) != 6 {
		t.Fatalf("Expected 6 bodies registered, got %d", len(world.bodies))
	}

	counts := map[Kind]int{}
	for _, e := range g.Entities {
		counts[e.Kind]++
	}
	if counts[KindBorder] != 4 || counts[KindPaddle] != 1 || counts[KindBall] != 1 {
		t.Errorf("Expected 4 borders, 1 paddle, 1 ball; got %v", counts)
	}
}

func TestNew_FailsWithoutSurface(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SurfaceWidth = 0

	if _, err := New(cfg, &stubWorld{}, nil, newStubInput()); err == nil {
		t.Error("Expected startup error for missing surface, got nil")
	}
}

func TestTick_StepsPhysicsAndRespondsToCollisions(t *testing.T) {
	g, world, _ := newTestGame(t)
	ball := findKind(g.Entities, KindBall)
	border := findKind(g.Entities, KindBorder)

	// A contact begins during the physics step of this tick
	world.queueCollision(ball.Body, border.Body)
	g.Tick(1.0 / 60.0)

	if world.stepped == 0 {
		t.Error("Expected the physics world to be stepped")
	}
	if v := ball.Body.Velocity(); v.X != -200 || v.Y != 200 {
		t.Errorf("Expected velocity (-200,200) after bounce, got %+v", v)
	}

	// The event queue was drained; the next tick must not flip again
	g.Tick(1.0 / 60.0)
	if v := ball.Body.Velocity(); v.X >= 0 {
		t.Errorf("Expected horizontal direction still negative, got %+v", v)
	}
}

func TestTick_OneSimulatedSecondOfAcceleration(t *testing.T) {
	g, world, _ := newTestGame(t)
	ball := findKind(g.Entities, KindBall)
	border := findKind(g.Entities, KindBorder)

	// Bounce once, then run a simulated second with no further contacts
	world.queueCollision(ball.Body, border.Body)
	g.Tick(0.1)
	for i := 0; i < 9; i++ {
		g.Tick(0.1)
	}

	v := ball.Body.Velocity()
	if v.X >= 0 || v.Y <= 0 {
		t.Errorf("Expected direction (-,+) preserved, got %+v", v)
	}

	speed := math.Hypot(v.X, v.Y)
	expected := math.Hypot(200, 200) * math.Pow(1.001, 10)
	if math.Abs(speed-expected) > 1e-9 {
		t.Errorf("Expected speed %g after 1s, got %g", expected, speed)
	}
}

func TestTick_MovesPaddleFromHeldKeys(t *testing.T) {
	g, _, in := newTestGame(t)

	in.held[render.KeyUp] = true
	g.Tick(0.016)

	if y := g.Paddle.Body.Position().Y; y != 4.8 {
		t.Errorf("Expected paddle y=4.8, got %g", y)
	}
}

func TestLayout_FixedLogicalSize(t *testing.T) {
	g, _, _ := newTestGame(t)

	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Expected 800x600 logical size, got %dx%d", w, h)
	}
}

var _ physics.World = (*stubWorld)(nil)
var _ render.InputManager = (*stubInput)(nil)
