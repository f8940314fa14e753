package engine

import "errors"

var (
	// ErrInvalidInput is returned for a spin entry that is not a positive number or a known action.
	ErrInvalidInput = errors.New("invalid spin input")
	// ErrNoGame is returned when an action needs players and no game has been set up.
	ErrNoGame = errors.New("no game in progress")
	// ErrRoundNotActive is returned for turn actions outside a running round.
	ErrRoundNotActive = errors.New("round is not active")
	// ErrSpinNotConfirmed is returned for a letter guess without an armed spin.
	ErrSpinNotConfirmed = errors.New("spin not confirmed")
	// ErrLetterAlreadyGuessed is returned when a letter is guessed twice in one round.
	ErrLetterAlreadyGuessed = errors.New("letter already guessed")
	// ErrInvalidLetter is returned for a character that is not a puzzle tile.
	ErrInvalidLetter = errors.New("not a guessable letter")
)
