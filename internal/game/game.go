package game

import (
	"image/color"

	"chosenoffset.com/paddleball/internal/input"
	"chosenoffset.com/paddleball/internal/physics"
	"chosenoffset.com/paddleball/internal/render"
)

var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	entityColor     = color.RGBA{64, 64, 64, 255}
)

// Game holds all game state and runs the per-tick simulation.
type Game struct {
	Config   *Config
	Field    Playfield
	World    physics.World
	Renderer render.Renderer
	Actions  *input.ActionMap

	Entities []*Entity
	Paddle   *Entity

	PaddleCtl PaddleController
	Accel     *Accelerator
}

// New derives the playfield, spawns all entities into the physics world,
// and wires up the controllers. It fails only when no valid playfield can
// be derived from the surface size.
func New(cfg *Config, world physics.World, renderer render.Renderer, inputMgr render.InputManager) (*Game, error) {
	field, err := NewPlayfield(float64(cfg.SurfaceWidth), float64(cfg.SurfaceHeight), cfg.Padding)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:   cfg,
		Field:    field,
		World:    world,
		Renderer: renderer,
		Actions:  input.NewActionMap(inputMgr),
	}

	g.Entities = append(g.Entities, SpawnBorders(world, field, cfg)...)
	g.Paddle = SpawnPaddle(world, field, cfg)
	g.Entities = append(g.Entities, g.Paddle)
	g.Entities = append(g.Entities, SpawnBall(world, cfg))

	g.PaddleCtl = NewPaddleController(field, cfg)
	g.Accel = NewAccelerator(cfg)
	return g, nil
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	// Ebiten ticks at a fixed 60 TPS
	dt := 1.0 / 60.0
	g.Tick(dt)
	return nil
}

// Tick advances the simulation by dt seconds. The physics step completes,
// and its collision events are drained, before collision response runs.
func (g *Game) Tick(dt float64) {
	g.World.Step(dt)
	events := g.World.DrainCollisions()

	g.PaddleCtl.Update(g.Paddle, g.Actions.Snapshot(), dt)
	RespondToCollisions(events, g.Entities)
	g.Accel.Update(dt, g.Entities)
}

// Draw renders the playfield contents: borders and paddle as rectangles,
// the ball as a circle.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	for _, e := range g.Entities {
		x, y := g.toScreen(e.Body.Position())

		switch e.Kind {
		case KindBall:
			g.Renderer.FillCircle(screen, x, y, float32(e.Radius), entityColor)
		default:
			g.Renderer.FillRect(screen,
				x-float32(e.Width/2),
				y-float32(e.Height/2),
				float32(e.Width),
				float32(e.Height),
				entityColor)
		}
	}
}

// toScreen converts playfield coordinates (center origin, +Y up) to
// screen coordinates (top-left origin, +Y down).
func (g *Game) toScreen(p physics.Vec2) (float32, float32) {
	x := p.X + float64(g.Config.SurfaceWidth)/2
	y := float64(g.Config.SurfaceHeight)/2 - p.Y
	return float32(x), float32(y)
}

// Layout implements render.Game with a fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.SurfaceWidth, g.Config.SurfaceHeight
}
