package game

import (
	"errors"
	"fmt"

	"github.com/samdwyer/wordwheel/internal/engine"
	"github.com/samdwyer/wordwheel/internal/puzzle"
	"github.com/samdwyer/wordwheel/internal/roster"
)

var spinHint = fmt.Sprintf("Enter a number from 1 to %d, BANKRUPT or LOSE TURN.", engine.MaxSpin)

// describe turns an action result into the status line text.
func describe(res engine.Result) string {
	next := "Next player"
	if p, ok := res.Snapshot.CurrentPlayer(); ok {
		next = p.Name
	}

	switch res.Outcome {
	case engine.OutcomeRoundStarted:
		return fmt.Sprintf("New round! %s to spin.", next)
	case engine.OutcomeSpinAccepted:
		return fmt.Sprintf("%s spun %d. Pick a letter.", res.Player, res.Spin)
	case engine.OutcomeBankrupt:
		return fmt.Sprintf("BANKRUPT! %s loses %d points. %s to spin.", res.Player, -res.Delta, next)
	case engine.OutcomeLoseTurn:
		return fmt.Sprintf("%s loses the turn. %s to spin.", res.Player, next)
	case engine.OutcomeCorrectGuess:
		return fmt.Sprintf("%d × %c! %s earns %d and spins again.", res.Count, res.Letter, res.Player, res.Delta)
	case engine.OutcomeIncorrectGuess:
		return fmt.Sprintf("No %c. %s to spin.", res.Letter, next)
	case engine.OutcomeWrongSolve:
		return fmt.Sprintf("Not quite, %s. %s to spin.", res.Player, next)
	case engine.OutcomeWonBySolve:
		return fmt.Sprintf("%s solved it and wins the round!", res.Player)
	case engine.OutcomeWonByReveal:
		return fmt.Sprintf("%d × %c! %s revealed the phrase and wins the round!", res.Count, res.Letter, res.Player)
	case engine.OutcomeInvalidInput:
		return spinHint
	default:
		return ""
	}
}

// describeError turns a rejected action into the status line text.
func describeError(err error, letter rune) string {
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		return spinHint
	case errors.Is(err, engine.ErrLetterAlreadyGuessed):
		return fmt.Sprintf("%c has already been called.", letter)
	case errors.Is(err, engine.ErrInvalidLetter):
		return fmt.Sprintf("%c is not on the board.", letter)
	case errors.Is(err, roster.ErrInsufficientPlayers):
		return "Enter at least two player names."
	case errors.Is(err, puzzle.ErrNoPuzzlesAvailable):
		return "No puzzles available."
	default:
		return err.Error()
	}
}
