// Package engine runs the turn state machine: spins, letter guesses, solve
// attempts and the scoring and turn rotation they cause.
package engine

// Phase is where the current turn stands.
type Phase int

const (
	// PhaseNoRound - no round has been started for the current game
	PhaseNoRound Phase = iota
	// PhaseAwaitingSpin - the current player has to spin before guessing
	PhaseAwaitingSpin
	// PhaseSpinConfirmed - a point value is armed, waiting for a letter
	PhaseSpinConfirmed
	// PhaseRoundWon - the phrase is fully revealed
	PhaseRoundWon
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNoRound:
		return "no_round"
	case PhaseAwaitingSpin:
		return "awaiting_spin"
	case PhaseSpinConfirmed:
		return "spin_confirmed"
	case PhaseRoundWon:
		return "round_won"
	default:
		return "unknown"
	}
}

// Active reports whether a round is in progress.
func (p Phase) Active() bool {
	return p == PhaseAwaitingSpin || p == PhaseSpinConfirmed
}
