package round

import (
	"strings"

	"github.com/samdwyer/wordwheel/internal/puzzle"
)

// RowWidth is the widest a board row gets before words wrap.
const RowWidth = 14

// Tile is one cell of the puzzle board.
type Tile struct {
	Char     rune
	Gap      bool // Space between two words
	Revealed bool // Letter found, or punctuation which is always shown
}

// Rows lays the phrase out as board rows of at most width cells.
// Words are never split; a word longer than width gets a row of its own.
func (r *Round) Rows(width int) [][]Tile {
	if width <= 0 {
		width = RowWidth
	}

	words := strings.Fields(string(r.phrase))
	if len(words) == 0 {
		return nil
	}

	var lines [][]string
	var line []string
	length := 0
	for _, w := range words {
		n := len([]rune(w))
		if length+n+1 > width && length > 0 {
			lines = append(lines, line)
			line = nil
			length = 0
		}
		line = append(line, w)
		length += n + 1
	}
	lines = append(lines, line)

	rows := make([][]Tile, 0, len(lines))
	for _, ws := range lines {
		var row []Tile
		for i, w := range ws {
			if i > 0 {
				row = append(row, Tile{Char: ' ', Gap: true, Revealed: true})
			}
			for _, c := range w {
				row = append(row, Tile{
					Char:     c,
					Revealed: !puzzle.IsGuessable(c) || r.guessed[c],
				})
			}
		}
		rows = append(rows, row)
	}
	return rows
}
