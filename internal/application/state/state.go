package state

// GameState represents the phase of a match
type GameState int

const (
	StatePlaying GameState = iota
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the match is over
func (s GameState) IsTerminal() bool {
	return s == StateWon || s == StateLost
}
