// Package round holds the state of a single puzzle round: the phrase being
// revealed, the letters guessed so far and the spin the current guess is worth.
package round

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/samdwyer/wordwheel/internal/puzzle"
)

// DefaultSpin is the spin value a round starts with.
const DefaultSpin = 200

// Round is the state of the active puzzle.
type Round struct {
	ID        string        // Correlates logs and traces for this round
	Puzzle    puzzle.Puzzle // Puzzle as loaded
	SpinValue int           // Points per occurrence for the next guess
	SpinArmed bool          // True between a numeric spin and the guess it pays for

	phrase  []rune
	guessed map[rune]bool
}

// New starts a round on p with no letters guessed.
func New(p puzzle.Puzzle, defaultSpin int) *Round {
	return &Round{
		ID:        uuid.NewString(),
		Puzzle:    p,
		SpinValue: defaultSpin,
		phrase:    []rune(puzzle.Normalize(strings.TrimSpace(p.Phrase))),
		guessed:   make(map[rune]bool),
	}
}

// Phrase returns the normalized phrase.
func (r *Round) Phrase() string {
	return string(r.phrase)
}

// Count returns how many times c occurs in the phrase.
func (r *Round) Count(c rune) int {
	return lo.Count(r.phrase, c)
}

// Has reports whether c has been guessed.
func (r *Round) Has(c rune) bool {
	return r.guessed[c]
}

// Guess marks c as guessed and returns its occurrence count.
func (r *Round) Guess(c rune) int {
	r.guessed[c] = true
	return r.Count(c)
}

// Solved reports whether every guessable character has been guessed.
func (r *Round) Solved() bool {
	return lo.EveryBy(r.phrase, func(c rune) bool {
		return !puzzle.IsGuessable(c) || r.guessed[c]
	})
}

// RevealAll marks every character of the phrase as guessed.
func (r *Round) RevealAll() {
	for _, c := range r.phrase {
		r.guessed[c] = true
	}
}

// Matches reports whether text is the phrase, ignoring case and
// surrounding whitespace.
func (r *Round) Matches(text string) bool {
	return puzzle.Normalize(strings.TrimSpace(text)) == string(r.phrase)
}

// Guessed returns the guessed characters in keyboard order.
func (r *Round) Guessed() []rune {
	return lo.Filter(puzzle.Keyboard(), func(c rune, _ int) bool {
		return r.guessed[c]
	})
}

// Remaining returns how many distinct guessable characters are still hidden.
func (r *Round) Remaining() int {
	hidden := lo.Filter(r.phrase, func(c rune, _ int) bool {
		return puzzle.IsGuessable(c) && !r.guessed[c]
	})
	return len(lo.Uniq(hidden))
}
