// Package scene defines the Scene interface for game screens.
//
// The main menu and the arena implement Scene; pause, config and death
// menus are overlays owned by the arena scene.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (main menu, arena)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed tick.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error (ebiten.Termination to quit) to end the game.
	Update(dt time.Duration) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including on shutdown.
	OnExit()
}
