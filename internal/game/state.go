// Package game provides the main loop and the input modes that drive the engine.
package game

// Mode is what the keyboard currently controls.
type Mode int

const (
	// ModeSetup edits the player list before a game.
	ModeSetup Mode = iota
	// ModeSpin takes the host's spin entry for the current player.
	ModeSpin
	// ModeGuess waits for a single letter key.
	ModeGuess
	// ModeSolve takes a full-phrase answer.
	ModeSolve
	// ModeWinner shows the finished round.
	ModeWinner
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSetup:
		return "setup"
	case ModeSpin:
		return "spin"
	case ModeGuess:
		return "guess"
	case ModeSolve:
		return "solve"
	case ModeWinner:
		return "winner"
	default:
		return "unknown"
	}
}

// textEntry reports whether Esc should cancel input instead of quitting.
func (m Mode) textEntry() bool {
	return m == ModeSolve
}
