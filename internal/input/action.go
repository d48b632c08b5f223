// Package input provides the logical action layer between raw key polling
// and game logic. Game code asks about actions (move up, move down), not
// about physical keys.
package input

import (
	"chosenoffset.com/paddleball/internal/render"
)

// Action identifies a logical player action.
type Action int

const (
	ActionUp Action = iota
	ActionDown
)

// State is a per-tick snapshot of which actions are held.
type State struct {
	Up   bool
	Down bool
}

// ActionMap binds logical actions to physical keys and answers pressed
// queries through an InputManager.
type ActionMap struct {
	input    render.InputManager
	bindings map[Action][]render.Key
}

// NewActionMap creates an ActionMap with the default bindings
// (arrow up / arrow down).
func NewActionMap(input render.InputManager) *ActionMap {
	m := &ActionMap{
		input:    input,
		bindings: make(map[Action][]render.Key),
	}
	m.Bind(ActionUp, render.KeyUp)
	m.Bind(ActionDown, render.KeyDown)
	return m
}

// Bind replaces the keys bound to an action.
func (m *ActionMap) Bind(action Action, keys ...render.Key) {
	m.bindings[action] = keys
}

// Pressed reports whether any key bound to the action is currently held.
func (m *ActionMap) Pressed(action Action) bool {
	for _, key := range m.bindings[action] {
		if m.input.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Snapshot reads the current held state of all actions for one tick.
func (m *ActionMap) Snapshot() State {
	return State{
		Up:   m.Pressed(ActionUp),
		Down: m.Pressed(ActionDown),
	}
}
