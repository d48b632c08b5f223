package game

import "fmt"

// Playfield is the bounded region the ball moves in, centered on the
// origin with +Y up. It is derived once at startup from the surface size
// and never changes afterwards; window resizing is not handled.
type Playfield struct {
	Width  float64
	Height float64
}

// NewPlayfield derives the playfield from the display surface size by
// subtracting the padding from each side. A missing surface (non-positive
// dimensions) is a startup error; there is no valid geometry to derive.
func NewPlayfield(surfaceWidth, surfaceHeight, padding float64) (Playfield, error) {
	if surfaceWidth <= 0 || surfaceHeight <= 0 {
		return Playfield{}, fmt.Errorf("no display surface: %gx%g", surfaceWidth, surfaceHeight)
	}
	return Playfield{
		Width:  surfaceWidth - padding*2,
		Height: surfaceHeight - padding*2,
	}, nil
}

// MaxPaddleY returns the clamp bound for the paddle center: the paddle
// stays within [-maxY, maxY], keeping the given clearance from the
// horizontal borders.
func (p Playfield) MaxPaddleY(margin float64) float64 {
	return p.Height/2 - margin
}
