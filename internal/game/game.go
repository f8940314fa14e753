package game

import (
	"context"
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wordwheel/internal/engine"
	"github.com/samdwyer/wordwheel/internal/logger"
	"github.com/samdwyer/wordwheel/internal/puzzle"
	"github.com/samdwyer/wordwheel/internal/roster"
	"github.com/samdwyer/wordwheel/internal/telemetry"
	"github.com/samdwyer/wordwheel/internal/ui"
)

// Game holds the presentation state and forwards actions to the engine.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *engine.Engine
	cfg      Config

	mode     Mode
	prevMode Mode // restored when a solve attempt is cancelled
	names    []string
	focus    int
	input    []rune
	status   string
	snapshot engine.Snapshot
	running  bool
}

// New creates a game drawing on screen. screen may be nil when the loop is not run.
func New(screen *ui.Screen, eng *engine.Engine, cfg Config) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		screen:   screen,
		engine:   eng,
		cfg:      cfg,
		mode:     ModeSetup,
		names:    []string{roster.DefaultName(1), roster.DefaultName(2)},
		snapshot: eng.Snapshot(),
		running:  true,
	}
	if screen != nil {
		g.renderer = ui.NewRenderer(screen, cfg.Theme)
	}
	return g
}

// Mode returns the current input mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Run executes the main loop until the players quit.
func (g *Game) Run(ctx context.Context) error {
	_, initSpan := telemetry.Tracer("game").Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("max_players", g.cfg.MaxPlayers),
		attribute.Int("default_spin", g.cfg.DefaultSpin),
	)
	initSpan.End()
	logger.Log.Infow("game loop started", "max_players", g.cfg.MaxPlayers)

	for g.running {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	g.screen.Close()
	logger.Log.Infow("game loop stopped")
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		g.running = false
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent routes a key press to the active mode.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch {
	case isCtrl(ev, 'c', tcell.KeyCtrlC):
		g.running = false
		return
	case ev.Key() == tcell.KeyEscape && !g.mode.textEntry():
		g.running = false
		return
	}

	switch g.mode {
	case ModeSetup:
		g.handleSetupKey(ctx, ev)
	case ModeSpin:
		g.handleSpinKey(ctx, ev)
	case ModeGuess:
		g.handleGuessKey(ctx, ev)
	case ModeSolve:
		g.handleSolveKey(ctx, ev)
	case ModeWinner:
		g.handleWinnerKey(ctx, ev)
	}
}

func (g *Game) handleSetupKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		g.focus = max(g.focus-1, 0)
	case tcell.KeyDown:
		g.focus = min(g.focus+1, len(g.names)-1)
	case tcell.KeyTab:
		if len(g.names) >= g.cfg.MaxPlayers {
			g.status = "The table is full."
			return
		}
		g.names = append(g.names, roster.DefaultName(len(g.names)+1))
		g.focus = len(g.names) - 1
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if name := []rune(g.names[g.focus]); len(name) > 0 {
			g.names[g.focus] = string(name[:len(name)-1])
		}
	case tcell.KeyEnter:
		g.startGame(ctx)
	case tcell.KeyRune:
		g.names[g.focus] += string(ev.Rune())
	}
}

func (g *Game) handleSpinKey(ctx context.Context, ev *tcell.EventKey) {
	if isCtrl(ev, 's', tcell.KeyCtrlS) {
		g.openSolve()
		return
	}
	if g.editInput(ev) {
		return
	}
	if ev.Key() != tcell.KeyEnter {
		return
	}

	res, err := g.engine.ConfirmSpin(ctx, string(g.input))
	if err != nil {
		g.snapshot = res.Snapshot
		g.status = describeError(err, 0)
		return
	}
	g.apply(res)
}

func (g *Game) handleGuessKey(ctx context.Context, ev *tcell.EventKey) {
	switch {
	case isCtrl(ev, 's', tcell.KeyCtrlS):
		g.openSolve()
		return
	case ev.Key() == tcell.KeyBackspace, ev.Key() == tcell.KeyBackspace2:
		// back to the spin entry to correct the value
		g.mode = ModeSpin
		g.input = []rune(strconv.Itoa(g.snapshot.SpinValue))
		return
	case ev.Key() != tcell.KeyRune || unicode.IsSpace(ev.Rune()):
		return
	}

	letter := puzzle.NormalizeRune(ev.Rune())
	res, err := g.engine.GuessLetter(ctx, letter)
	if err != nil {
		g.status = describeError(err, letter)
		return
	}
	g.apply(res)
}

func (g *Game) handleSolveKey(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		g.mode = g.prevMode
		g.resetInput()
		return
	}
	if g.editInput(ev) {
		return
	}
	if ev.Key() != tcell.KeyEnter {
		return
	}

	res, err := g.engine.AttemptSolve(ctx, string(g.input))
	if err != nil {
		g.status = describeError(err, 0)
		return
	}
	g.apply(res)
}

func (g *Game) handleWinnerKey(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch unicode.ToUpper(ev.Rune()) {
	case 'N':
		g.startRound(ctx)
	case 'G':
		g.names = g.names[:0]
		for _, p := range g.snapshot.Players {
			g.names = append(g.names, p.Name)
		}
		g.focus = 0
		g.mode = ModeSetup
		g.status = ""
	}
}

func (g *Game) startGame(ctx context.Context) {
	if _, err := g.engine.NewGame(ctx, g.names); err != nil {
		g.status = describeError(err, 0)
		return
	}
	g.startRound(ctx)
}

func (g *Game) startRound(ctx context.Context) {
	res, err := g.engine.StartRound(ctx)
	if err != nil {
		g.status = describeError(err, 0)
		return
	}
	g.apply(res)
}

func (g *Game) openSolve() {
	g.prevMode = g.mode
	g.mode = ModeSolve
	g.input = nil
}

// apply moves to the mode that follows an accepted action.
func (g *Game) apply(res engine.Result) {
	g.snapshot = res.Snapshot
	g.status = describe(res)

	switch res.Outcome {
	case engine.OutcomeSpinAccepted:
		g.mode = ModeGuess
		g.input = nil
	case engine.OutcomeWonBySolve, engine.OutcomeWonByReveal:
		g.mode = ModeWinner
		g.input = nil
	default:
		g.mode = ModeSpin
		g.resetInput()
	}
}

func (g *Game) resetInput() {
	switch g.mode {
	case ModeSpin:
		g.input = []rune(strconv.Itoa(g.cfg.DefaultSpin))
	default:
		g.input = nil
	}
}

// editInput applies typing and backspace to the text input.
func (g *Game) editInput(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
		return true
	case tcell.KeyRune:
		g.input = append(g.input, ev.Rune())
		return true
	}
	return false
}

func (g *Game) view() ui.View {
	v := ui.View{
		Setup:    g.mode == ModeSetup,
		Names:    g.names,
		Focus:    g.focus,
		Snapshot: g.snapshot,
		Input:    string(g.input),
		Status:   g.status,
	}
	switch g.mode {
	case ModeSpin:
		v.Prompt = "Spin (number, BANKRUPT, LOSE TURN), Ctrl+S to solve:"
	case ModeGuess:
		v.Prompt = "Pick a letter (Backspace changes the spin, Ctrl+S to solve):"
	case ModeSolve:
		v.Prompt = "Solve (Esc to cancel):"
	case ModeWinner:
		v.Prompt = "N: next round  G: new game  Esc: quit"
	}
	return v
}

// isCtrl matches a control chord whether the terminal reports it as a
// control key or as a rune with the Ctrl modifier.
func isCtrl(ev *tcell.EventKey, r rune, key tcell.Key) bool {
	if ev.Key() == key {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == r
}
