package state

// GameState represents which screen or overlay is active
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateConfig
	StateDead
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateConfig:
		return "Config"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the simulation advances in this state.
// Enemies keep moving behind the death menu.
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateDead
}

// Overlay reports whether a menu is drawn on top of the arena
func (s GameState) Overlay() bool {
	return s == StatePaused || s == StateConfig || s == StateDead
}
