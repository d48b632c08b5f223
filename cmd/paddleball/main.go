package main

import (
	"flag"
	"log"

	"chosenoffset.com/paddleball/internal/game"
	"chosenoffset.com/paddleball/internal/physics"
	physicsbox2d "chosenoffset.com/paddleball/internal/physics/box2d"
	ebitenrender "chosenoffset.com/paddleball/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "paddleball.json", "Game tuning config file")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Top-down playfield, no gravity
	world := physicsbox2d.NewWorld(physics.Vec2{X: 0, Y: 0})

	g, err := game.New(cfg, world, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	log.Printf("Playfield: %gx%g (surface %dx%d)",
		g.Field.Width, g.Field.Height, cfg.SurfaceWidth, cfg.SurfaceHeight)

	// Set up the window
	engine.SetWindowSize(cfg.SurfaceWidth, cfg.SurfaceHeight)
	engine.SetWindowTitle("Paddleball - Arrow keys to move")
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
