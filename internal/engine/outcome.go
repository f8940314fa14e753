package engine

import (
	"slices"

	"github.com/samdwyer/wordwheel/internal/round"
	"github.com/samdwyer/wordwheel/internal/roster"
)

// Outcome classifies what an action did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRoundStarted
	OutcomeSpinAccepted
	OutcomeBankrupt
	OutcomeLoseTurn
	OutcomeCorrectGuess
	OutcomeIncorrectGuess
	OutcomeInvalidInput
	OutcomeWrongSolve
	OutcomeWonBySolve
	OutcomeWonByReveal
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRoundStarted:
		return "round_started"
	case OutcomeSpinAccepted:
		return "spin_accepted"
	case OutcomeBankrupt:
		return "bankrupt"
	case OutcomeLoseTurn:
		return "lose_turn"
	case OutcomeCorrectGuess:
		return "correct_guess"
	case OutcomeIncorrectGuess:
		return "incorrect_guess"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeWrongSolve:
		return "wrong_solve"
	case OutcomeWonBySolve:
		return "won_by_solve"
	case OutcomeWonByReveal:
		return "won_by_reveal"
	default:
		return "unknown"
	}
}

// Won reports whether the outcome ended the round.
func (o Outcome) Won() bool {
	return o == OutcomeWonBySolve || o == OutcomeWonByReveal
}

// Result is what an action returns to the presentation layer.
type Result struct {
	Outcome  Outcome
	Player   string // Name of the player who acted
	Spin     int    // Armed spin value for spins and guesses
	Letter   rune   // Guessed letter, if any
	Count    int    // Occurrences of Letter in the phrase
	Delta    int    // Score change for Player
	Snapshot Snapshot
}

// Listener receives every action result once the state change is complete.
type Listener interface {
	OnResult(Result)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(Result)

// OnResult calls f(r).
func (f ListenerFunc) OnResult(r Result) { f(r) }

// Snapshot is a read-only view of the game for rendering.
type Snapshot struct {
	Phase     Phase
	RoundID   string
	Category  string
	Question  string
	Board     [][]round.Tile
	Guessed   []rune
	SpinValue int
	SpinArmed bool
	Players   []roster.Player
	Current   int // Index into Players of the player whose turn it is
	Winner    int // Index into Players of the round winner, -1 if none
}

// CurrentPlayer returns the player whose turn it is.
func (s Snapshot) CurrentPlayer() (roster.Player, bool) {
	if s.Current < 0 || s.Current >= len(s.Players) {
		return roster.Player{}, false
	}
	return s.Players[s.Current], true
}

// WinnerPlayer returns the round winner.
func (s Snapshot) WinnerPlayer() (roster.Player, bool) {
	if s.Winner < 0 || s.Winner >= len(s.Players) {
		return roster.Player{}, false
	}
	return s.Players[s.Winner], true
}

// IsGuessed reports whether c has been guessed this round.
func (s Snapshot) IsGuessed(c rune) bool {
	return slices.Contains(s.Guessed, c)
}

// CanGuess reports whether the key for c should be enabled.
func (s Snapshot) CanGuess(c rune) bool {
	return s.Phase == PhaseSpinConfirmed && !s.IsGuessed(c)
}
