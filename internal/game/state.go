// Package game provides the viewer's main loop and page state.
package game

// State represents the page currently shown.
type State int

const (
	// StateTitle shows the banner until any key is pressed.
	StateTitle State = iota
	// StateBattle shows the map, the player and the movement range.
	StateBattle
	// StatePrompt reads a map path on the message line.
	StatePrompt
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateBattle:
		return "battle"
	case StatePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}
