package game

import (
	"testing"
)

func TestNewPlayfield(t *testing.T) {
	testCases := []struct {
		name      string
		surfaceW  float64
		surfaceH  float64
		padding   float64
		expectedW float64
		expectedH float64
	}{
		{"standard surface", 800, 600, 20, 760, 560},
		{"wide surface", 1280, 800, 20, 1240, 760},
		{"square surface", 500, 500, 20, 460, 460},
		{"zero padding", 800, 600, 0, 800, 600},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			field, err := NewPlayfield(tc.surfaceW, tc.surfaceH, tc.padding)
			if err != nil {
				t.Fatalf("NewPlayfield failed: %v", err)
			}
			if field.Width != tc.expectedW {
				t.Errorf("Expected width %g, got %g", tc.expectedW, field.Width)
			}
			if field.Height != tc.expectedH {
				t.Errorf("Expected height %g, got %g", tc.expectedH, field.Height)
			}
		})
	}
}

func TestNewPlayfield_NoSurface(t *testing.T) {
	if _, err := NewPlayfield(0, 600, 20); err == nil {
		t.Error("Expected error for zero surface width, got nil")
	}
	if _, err := NewPlayfield(800, 0, 20); err == nil {
		t.Error("Expected error for zero surface height, got nil")
	}
	if _, err := NewPlayfield(-800, -600, 20); err == nil {
		t.Error("Expected error for negative surface, got nil")
	}
}

func TestMaxPaddleY(t *testing.T) {
	field := Playfield{Width: 760, Height: 560}
	if got := field.MaxPaddleY(30); got != 250 {
		t.Errorf("Expected maxY 250, got %g", got)
	}
}
