package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads keyboard and mouse state into intents
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() Intent {
	return Intent{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump: inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Cast: inpututil.IsKeyJustPressed(ebiten.KeyK) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}
