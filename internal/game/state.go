// Package game provides the demo game loop on top of generated levels.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player roams the floor.
	StateExplore State = iota
	// StateOnExit means the player stands on the exit tile and may
	// confirm the descent to the next floor.
	StateOnExit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateOnExit:
		return "on-exit"
	default:
		return "unknown"
	}
}
