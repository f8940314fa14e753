// Package puzzle provides the puzzle records a round is played on and the
// sources they are drawn from.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrNoPuzzlesAvailable is returned when a source holds no puzzles.
var ErrNoPuzzlesAvailable = errors.New("no puzzles available")

// Puzzle is a single phrase to be revealed.
type Puzzle struct {
	Category string `json:"category"`
	Question string `json:"question,omitempty"` // Optional clue shown under the category
	Phrase   string `json:"phrase"`
}

// Source is a random-access collection of puzzles.
type Source interface {
	Len() int
	At(i int) Puzzle
}

// List is a Source backed by a slice.
type List []Puzzle

// Len returns the number of puzzles in the list.
func (l List) Len() int { return len(l) }

// At returns the puzzle at index i.
func (l List) At(i int) Puzzle { return l[i] }

// Validate checks that the list is not empty and that every phrase has at
// least one tile to guess.
func (l List) Validate() error {
	if len(l) == 0 {
		return ErrNoPuzzlesAvailable
	}
	for i, p := range l {
		switch {
		case strings.TrimSpace(p.Phrase) == "":
			return &RecordError{Index: i, Category: p.Category, Reason: "has an empty phrase"}
		case !lo.SomeBy([]rune(Normalize(p.Phrase)), IsGuessable):
			return &RecordError{Index: i, Category: p.Category, Reason: "has no letters or digits to guess"}
		}
	}
	return nil
}

// RecordError reports a puzzle record that cannot be played.
type RecordError struct {
	Index    int
	Category string
	Reason   string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("puzzle %d (%s) %s", e.Index, e.Category, e.Reason)
}
