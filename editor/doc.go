// Package editor provides a Bubble Tea text editor component backed by the
// layout engine.
//
// The package maps key, mouse, and resize messages onto the engine's
// operations and renders the engine's cell placements into a scrolling
// viewport. It never computes positions itself.
package editor
