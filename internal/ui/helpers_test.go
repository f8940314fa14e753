package ui

import "github.com/samdwyer/wordwheel/internal/puzzle"

func puzzleFor(phrase string) puzzle.Puzzle {
	return puzzle.Puzzle{Category: "Test", Phrase: phrase}
}
