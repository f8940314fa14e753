package game

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordwheel/internal/engine"
	"github.com/samdwyer/wordwheel/internal/puzzle"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	source := puzzle.List{{Category: "Animal", Question: "Purrs", Phrase: "Cat"}}
	eng := engine.New(source, func(int) int { return 0 }, engine.Config{})
	return New(nil, eng, cfg)
}

func press(g *Game, k tcell.Key) {
	g.handleKeyEvent(context.Background(), tcell.NewEventKey(k, 0, tcell.ModNone))
}

func typeText(g *Game, s string) {
	for _, r := range s {
		g.handleKeyEvent(context.Background(), tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func clearInput(g *Game, n int) {
	for i := 0; i < n; i++ {
		press(g, tcell.KeyBackspace2)
	}
}

// startedGame returns a game in spin mode with Ayşe and Bora seated.
func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, Config{})
	clearInput(g, len("Player 1"))
	typeText(g, "Ayşe")
	press(g, tcell.KeyDown)
	clearInput(g, len("Player 2"))
	typeText(g, "Bora")
	press(g, tcell.KeyEnter)
	if g.Mode() != ModeSpin {
		t.Fatalf("mode after setup = %v, want spin (status %q)", g.Mode(), g.status)
	}
	return g
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSetup, "setup"},
		{ModeSpin, "spin"},
		{ModeGuess, "guess"},
		{ModeSolve, "solve"},
		{ModeWinner, "winner"},
		{Mode(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestSetupDefaults(t *testing.T) {
	g := newTestGame(t, Config{})
	if g.Mode() != ModeSetup {
		t.Fatalf("initial mode = %v, want setup", g.Mode())
	}
	if len(g.names) != 2 || g.names[0] != "Player 1" || g.names[1] != "Player 2" {
		t.Errorf("names = %v, want default Player 1 and Player 2", g.names)
	}
	if g.cfg.DefaultSpin != 200 || g.cfg.MaxPlayers != 10 {
		t.Errorf("cfg = %+v, want default spin 200 and 10 players", g.cfg)
	}

	press(g, tcell.KeyEnter)
	if g.Mode() != ModeSpin {
		t.Errorf("default names should start a game, mode = %v", g.Mode())
	}
	if string(g.input) != "200" {
		t.Errorf("spin input = %q, want prefilled 200", string(g.input))
	}
}

func TestSetupPlayerLimit(t *testing.T) {
	g := newTestGame(t, Config{MaxPlayers: 3})

	press(g, tcell.KeyTab)
	if len(g.names) != 3 || g.names[2] != "Player 3" || g.focus != 2 {
		t.Fatalf("after Tab names = %v focus = %d", g.names, g.focus)
	}

	press(g, tcell.KeyTab)
	if len(g.names) != 3 {
		t.Errorf("Tab past the limit added a player: %v", g.names)
	}
	if g.status == "" {
		t.Error("full table should be reported on the status line")
	}
}

func TestSetupRejectsTooFewPlayers(t *testing.T) {
	g := newTestGame(t, Config{})
	clearInput(g, len("Player 1"))
	press(g, tcell.KeyDown)
	clearInput(g, len("Player 2"))
	typeText(g, "  ")

	press(g, tcell.KeyEnter)
	if g.Mode() != ModeSetup {
		t.Errorf("mode = %v, want setup after rejection", g.Mode())
	}
	if g.status != "Enter at least two player names." {
		t.Errorf("status = %q", g.status)
	}
}

func TestSetupNoPuzzles(t *testing.T) {
	eng := engine.New(puzzle.List{}, nil, engine.Config{})
	g := New(nil, eng, Config{})

	press(g, tcell.KeyEnter)
	if g.Mode() != ModeSetup {
		t.Errorf("mode = %v, want setup", g.Mode())
	}
	if g.status != "No puzzles available." {
		t.Errorf("status = %q", g.status)
	}
}

func TestFullRound(t *testing.T) {
	g := startedGame(t)

	press(g, tcell.KeyEnter)
	if g.Mode() != ModeGuess {
		t.Fatalf("mode after spin = %v, want guess", g.Mode())
	}

	typeText(g, "a")
	if g.Mode() != ModeSpin {
		t.Fatalf("mode after hit = %v, want spin", g.Mode())
	}
	if got := g.snapshot.Players[0].Score; got != 200 {
		t.Errorf("Ayşe score = %d, want 200", got)
	}
	if !strings.Contains(g.status, "Ayşe earns 200") {
		t.Errorf("status = %q", g.status)
	}

	clearInput(g, 3)
	typeText(g, "300")
	press(g, tcell.KeyEnter)
	typeText(g, "z")
	if g.snapshot.Current != 1 {
		t.Errorf("current = %d after miss, want Bora", g.snapshot.Current)
	}
	if g.status != "No Z. Bora to spin." {
		t.Errorf("status = %q", g.status)
	}

	press(g, tcell.KeyCtrlS)
	if g.Mode() != ModeSolve {
		t.Fatalf("mode after Ctrl+S = %v, want solve", g.Mode())
	}
	typeText(g, "cat")
	press(g, tcell.KeyEnter)
	if g.Mode() != ModeWinner {
		t.Fatalf("mode after solve = %v, want winner", g.Mode())
	}
	if g.snapshot.Winner != 1 {
		t.Errorf("winner = %d, want Bora", g.snapshot.Winner)
	}

	typeText(g, "n")
	if g.Mode() != ModeSpin {
		t.Fatalf("mode after next round = %v, want spin", g.Mode())
	}
	if g.snapshot.Current != 1 {
		t.Errorf("round winner should open the next round, current = %d", g.snapshot.Current)
	}
	if g.snapshot.Players[0].Score != 200 {
		t.Errorf("scores should carry over, Ayşe = %d", g.snapshot.Players[0].Score)
	}
}

func TestInvalidSpinReprompts(t *testing.T) {
	g := startedGame(t)
	clearInput(g, 3)
	typeText(g, "abc")
	press(g, tcell.KeyEnter)

	if g.Mode() != ModeSpin {
		t.Errorf("mode = %v, want spin", g.Mode())
	}
	if string(g.input) != "abc" {
		t.Errorf("input = %q, should be kept for editing", string(g.input))
	}
	if !strings.Contains(g.status, "BANKRUPT") {
		t.Errorf("status = %q, want a hint", g.status)
	}
}

func TestBankruptSpin(t *testing.T) {
	g := startedGame(t)
	clearInput(g, 3)
	typeText(g, "bankrupt")
	press(g, tcell.KeyEnter)

	if g.Mode() != ModeSpin {
		t.Errorf("mode = %v, want spin", g.Mode())
	}
	if g.snapshot.Current != 1 {
		t.Errorf("current = %d, want turn passed", g.snapshot.Current)
	}
	if string(g.input) != "200" {
		t.Errorf("input = %q, want prefilled default", string(g.input))
	}
	if !strings.HasPrefix(g.status, "BANKRUPT!") {
		t.Errorf("status = %q", g.status)
	}
}

func TestRepeatLetterRejected(t *testing.T) {
	g := startedGame(t)
	press(g, tcell.KeyEnter)
	typeText(g, "a")
	press(g, tcell.KeyEnter)

	typeText(g, "a")
	if g.Mode() != ModeGuess {
		t.Errorf("mode = %v, want guess", g.Mode())
	}
	if g.status != "A has already been called." {
		t.Errorf("status = %q", g.status)
	}
	if g.snapshot.Players[0].Score != 200 {
		t.Errorf("score = %d, repeat guess should not score", g.snapshot.Players[0].Score)
	}

	typeText(g, "!")
	if g.status != "! is not on the board." {
		t.Errorf("status = %q", g.status)
	}
}

func TestGuessBackspaceCorrectsSpin(t *testing.T) {
	g := startedGame(t)
	clearInput(g, 3)
	typeText(g, "300")
	press(g, tcell.KeyEnter)

	press(g, tcell.KeyBackspace2)
	if g.Mode() != ModeSpin {
		t.Fatalf("mode = %v, want spin", g.Mode())
	}
	if string(g.input) != "300" {
		t.Errorf("input = %q, want current spin", string(g.input))
	}

	clearInput(g, 3)
	typeText(g, "500")
	press(g, tcell.KeyEnter)
	typeText(g, "t")
	if g.snapshot.Players[0].Score != 500 {
		t.Errorf("score = %d, want corrected spin 500", g.snapshot.Players[0].Score)
	}
}

func TestSolveCancel(t *testing.T) {
	g := startedGame(t)
	press(g, tcell.KeyEnter)

	press(g, tcell.KeyCtrlS)
	typeText(g, "dog")
	press(g, tcell.KeyEscape)

	if !g.running {
		t.Fatal("Esc in solve should cancel, not quit")
	}
	if g.Mode() != ModeGuess {
		t.Errorf("mode = %v, want guess restored", g.Mode())
	}
}

func TestWrongSolve(t *testing.T) {
	g := startedGame(t)
	press(g, tcell.KeyCtrlS)
	typeText(g, "dog")
	press(g, tcell.KeyEnter)

	if g.Mode() != ModeSpin {
		t.Errorf("mode = %v, want spin", g.Mode())
	}
	if g.snapshot.Current != 1 {
		t.Errorf("current = %d, wrong solve should pass the turn", g.snapshot.Current)
	}
}

func TestWinnerNewGame(t *testing.T) {
	g := startedGame(t)
	press(g, tcell.KeyCtrlS)
	typeText(g, "cat")
	press(g, tcell.KeyEnter)

	typeText(g, "G")
	if g.Mode() != ModeSetup {
		t.Fatalf("mode = %v, want setup", g.Mode())
	}
	if len(g.names) != 2 || g.names[0] != "Ayşe" || g.names[1] != "Bora" {
		t.Errorf("names = %v, want the previous roster", g.names)
	}

	press(g, tcell.KeyEnter)
	if g.snapshot.Players[0].Score != 0 {
		t.Errorf("new game should reset scores, got %d", g.snapshot.Players[0].Score)
	}
}

func TestQuitKeys(t *testing.T) {
	g := newTestGame(t, Config{})
	press(g, tcell.KeyEscape)
	if g.running {
		t.Error("Esc in setup should quit")
	}

	g = startedGame(t)
	press(g, tcell.KeyCtrlS)
	press(g, tcell.KeyCtrlC)
	if g.running {
		t.Error("Ctrl+C should quit from any mode")
	}
}

func TestView(t *testing.T) {
	g := startedGame(t)
	v := g.view()
	if v.Setup {
		t.Error("view should show the board after setup")
	}
	if v.Input != "200" || v.Prompt == "" {
		t.Errorf("view input = %q prompt = %q", v.Input, v.Prompt)
	}
	if v.Snapshot.Category != "Animal" {
		t.Errorf("view category = %q", v.Snapshot.Category)
	}
}
