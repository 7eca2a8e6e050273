// Package scene defines the Scene interface for showcase screens.
//
// Each screen implements Scene to handle its own input, layout and
// rendering. The game manager only forwards ticks.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents one screen of the showcase
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the loop; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw lays out and renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Recordings are flushed here.
	OnExit()
}
