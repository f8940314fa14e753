package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/wordwheel/internal/engine"
	"github.com/samdwyer/wordwheel/internal/puzzle"
	"github.com/samdwyer/wordwheel/internal/round"
)

const (
	title        = "W O R D W H E E L"
	hiddenGlyph  = '_'
	keysPerRow   = 14
	tileStride   = 2
	cardSpacing  = 2
	boardTop     = 5
	footerHeight = 3
)

// View is everything the renderer needs for one frame.
type View struct {
	// Setup switches to the player entry form.
	Setup bool
	Names []string
	Focus int

	Snapshot engine.Snapshot
	Prompt   string
	Input    string
	Status   string
}

// Renderer handles drawing the game to a canvas.
type Renderer struct {
	canvas Canvas
	theme  Theme
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, theme Theme) *Renderer {
	return &Renderer{canvas: canvas, theme: theme}
}

// Render draws one full frame.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()

	width, _ := r.canvas.Size()
	r.drawCentered(0, width, title, r.theme.activeStyle())

	if v.Setup {
		r.renderSetup(v)
	} else {
		r.renderBoard(v.Snapshot)
	}
	r.renderFooter(v)

	r.canvas.Show()
}

func (r *Renderer) renderSetup(v View) {
	width, _ := r.canvas.Size()
	r.drawCentered(2, width, "Who is playing?", r.theme.textStyle())

	y := boardTop
	for i, name := range v.Names {
		style := r.theme.textStyle()
		marker := "  "
		if i == v.Focus {
			style = r.theme.activeStyle()
			marker = "> "
		}
		r.drawText(4, y, fmt.Sprintf("%s%2d. %s", marker, i+1, name), style)
		y++
	}
	r.drawText(4, y+1, "Tab: add player  Up/Down: move  Enter: start", r.theme.dimStyle())
}

func (r *Renderer) renderBoard(s engine.Snapshot) {
	width, _ := r.canvas.Size()

	if s.RoundID == "" {
		r.drawCentered(2, width, "Waiting for the first round", r.theme.dimStyle())
		return
	}

	r.drawCentered(2, width, s.Category, r.theme.activeStyle())
	if s.Question != "" {
		r.drawCentered(3, width, s.Question, r.theme.textStyle())
	}

	y := boardTop
	for _, row := range s.Board {
		r.drawTiles(y, width, row)
		y += 2
	}

	y = r.drawPlayers(y+1, width, s)
	y = r.drawKeyboard(y+1, width, s)

	spin := fmt.Sprintf("Spin: %d", s.SpinValue)
	if s.SpinArmed {
		spin += "  (pick a letter)"
	}
	r.drawCentered(y+1, width, spin, r.theme.textStyle())
}

func (r *Renderer) drawTiles(y, width int, row []round.Tile) {
	x := (width - len(row)*tileStride) / 2
	if x < 0 {
		x = 0
	}
	for _, t := range row {
		switch {
		case t.Gap:
		case t.Revealed:
			r.canvas.SetContent(x, y, t.Char, nil, r.theme.revealedStyle())
		default:
			r.canvas.SetContent(x, y, hiddenGlyph, nil, r.theme.hiddenStyle())
		}
		x += tileStride
	}
}

// drawPlayers lays player cards out left to right, wrapping on overflow.
// It returns the first free line below them.
func (r *Renderer) drawPlayers(y, width int, s engine.Snapshot) int {
	x := 2
	for i, p := range s.Players {
		card := fmt.Sprintf("[ %s  %d ]", p.Name, p.Score)
		if i == s.Winner {
			card = fmt.Sprintf("[ * %s  %d * ]", p.Name, p.Score)
		}
		w := uniseg.StringWidth(card)
		if x > 2 && x+w > width {
			x = 2
			y++
		}
		style := r.theme.textStyle()
		if i == s.Current {
			style = r.theme.activeStyle()
		}
		r.drawText(x, y, card, style)
		x += w + cardSpacing
	}
	return y + 1
}

// drawKeyboard draws the guessable keys, dimming the ones already used.
func (r *Renderer) drawKeyboard(y, width int, s engine.Snapshot) int {
	keys := puzzle.Keyboard()
	for start := 0; start < len(keys); start += keysPerRow {
		end := min(start+keysPerRow, len(keys))
		row := keys[start:end]
		x := (width - len(row)*tileStride) / 2
		if x < 0 {
			x = 0
		}
		for _, k := range row {
			style := r.theme.textStyle()
			if !s.CanGuess(k) {
				style = r.theme.dimStyle()
			}
			r.canvas.SetContent(x, y, k, nil, style)
			x += tileStride
		}
		y++
	}
	return y
}

func (r *Renderer) renderFooter(v View) {
	_, height := r.canvas.Size()
	status := height - footerHeight + 1
	r.drawText(1, status, v.Status, r.theme.activeStyle())
	if v.Prompt != "" {
		line := v.Prompt + " " + v.Input
		r.drawText(1, status+1, line, r.theme.textStyle())
		r.canvas.SetContent(1+uniseg.StringWidth(line), status+1, '_', nil, r.theme.activeStyle())
	}
}

func (r *Renderer) drawCentered(y, width int, s string, style tcell.Style) {
	x := (width - uniseg.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, s, style)
}

// drawText writes s one grapheme cluster per cell run, keeping combining marks
// with their base character.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		r.canvas.SetContent(x, y, runes[0], runes[1:], style)
		x += max(g.Width(), 1)
	}
}
