package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wordwheel/internal/logger"
	"github.com/samdwyer/wordwheel/internal/puzzle"
	"github.com/samdwyer/wordwheel/internal/round"
	"github.com/samdwyer/wordwheel/internal/roster"
	"github.com/samdwyer/wordwheel/internal/telemetry"
)

// Config holds engine rules that vary per installation.
type Config struct {
	// DefaultSpin is the spin value a new round starts with.
	DefaultSpin int
	// HostSolveToken, when set, is accepted by AttemptSolve as a correct solve.
	// It lets the host award a round that was solved out loud.
	HostSolveToken string
}

// Engine owns the game state and applies player actions to it.
// It is not safe for concurrent use; the presentation feeds it one action at a time.
type Engine struct {
	cfg       Config
	source    puzzle.Source
	pick      func(n int) int
	roster    *roster.Roster
	round     *round.Round
	phase     Phase
	winner    int
	listeners []Listener
}

// New creates an engine drawing puzzles from source. pick returns a uniform
// index in [0, n); nil uses math/rand.
func New(source puzzle.Source, pick func(n int) int, cfg Config) *Engine {
	if pick == nil {
		pick = rand.Intn
	}
	if cfg.DefaultSpin <= 0 {
		cfg.DefaultSpin = round.DefaultSpin
	}
	return &Engine{
		cfg:    cfg,
		source: source,
		pick:   pick,
		phase:  PhaseNoRound,
		winner: -1,
	}
}

// AddListener registers l to receive every action result.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// NewGame replaces the roster with players built from names.
// On error the existing game is left untouched.
func (e *Engine) NewGame(ctx context.Context, names []string) (Result, error) {
	_, span := telemetry.Tracer("engine").Start(ctx, "game.new")
	defer span.End()

	r, err := roster.New(names)
	if err != nil {
		span.RecordError(err)
		return Result{Outcome: OutcomeNone, Snapshot: e.Snapshot()}, err
	}

	e.roster = r
	e.round = nil
	e.phase = PhaseNoRound
	e.winner = -1

	span.SetAttributes(attribute.Int("players", r.Len()))
	logger.Log.Infow("new game", "players", r.Len())

	return Result{Outcome: OutcomeNone, Snapshot: e.Snapshot()}, nil
}

// StartRound picks a random puzzle and resets the turn state.
// The player whose turn it was keeps it.
func (e *Engine) StartRound(ctx context.Context) (Result, error) {
	_, span := telemetry.Tracer("engine").Start(ctx, "round.start")
	defer span.End()

	if e.source == nil || e.source.Len() == 0 {
		span.RecordError(puzzle.ErrNoPuzzlesAvailable)
		return Result{Snapshot: e.Snapshot()}, puzzle.ErrNoPuzzlesAvailable
	}
	if e.roster == nil {
		span.RecordError(ErrNoGame)
		return Result{Snapshot: e.Snapshot()}, ErrNoGame
	}

	idx := e.pick(e.source.Len())
	e.round = round.New(e.source.At(idx), e.cfg.DefaultSpin)
	e.phase = PhaseAwaitingSpin
	e.winner = -1

	span.SetAttributes(
		attribute.String("round.id", e.round.ID),
		attribute.Int("puzzle.index", idx),
		attribute.String("puzzle.category", e.round.Puzzle.Category),
		attribute.Int("players", e.roster.Len()),
	)
	logger.Log.Infow("round started",
		"round_id", e.round.ID,
		"puzzle_index", idx,
		"category", e.round.Puzzle.Category,
	)

	return e.finish(Result{Outcome: OutcomeRoundStarted, Player: e.roster.Current().Name}), nil
}

// ConfirmSpin applies a spin entry for the current player.
// A number arms the next letter guess; BANKRUPT and LOSE TURN end the turn.
func (e *Engine) ConfirmSpin(ctx context.Context, raw string) (Result, error) {
	_, span := telemetry.Tracer("engine").Start(ctx, "turn.spin")
	defer span.End()

	if err := e.requireActiveRound(span); err != nil {
		return Result{Snapshot: e.Snapshot()}, err
	}
	e.annotate(span)

	spin, err := ParseSpin(raw)
	if err != nil {
		span.RecordError(err)
		logger.Log.Warnw("invalid spin", "round_id", e.round.ID, "input", raw)
		return e.finish(Result{Outcome: OutcomeInvalidInput, Player: e.roster.Current().Name}), err
	}

	player := e.roster.Current().Name
	res := Result{Player: player}

	switch spin.Kind {
	case SpinBankrupt:
		prior := e.roster.Current().Score
		e.roster.SetScore(e.roster.CurrentIndex(), 0)
		res.Outcome = OutcomeBankrupt
		res.Delta = -prior
		e.endTurn()
	case SpinLoseTurn:
		res.Outcome = OutcomeLoseTurn
		e.endTurn()
	default:
		e.round.SpinValue = spin.Value
		e.round.SpinArmed = true
		e.phase = PhaseSpinConfirmed
		res.Outcome = OutcomeSpinAccepted
		res.Spin = spin.Value
	}

	span.SetAttributes(
		attribute.String("outcome", res.Outcome.String()),
		attribute.Int("spin", spin.Value),
	)
	logger.Log.Infow("spin",
		"round_id", e.round.ID,
		"player", player,
		"outcome", res.Outcome.String(),
		"spin", spin.Value,
	)

	return e.finish(res), nil
}

// GuessLetter resolves a letter guess against the armed spin.
// A hit scores spin × occurrences and the player spins again; a miss passes the turn.
func (e *Engine) GuessLetter(ctx context.Context, c rune) (Result, error) {
	_, span := telemetry.Tracer("engine").Start(ctx, "turn.guess")
	defer span.End()

	if err := e.requireActiveRound(span); err != nil {
		return Result{Snapshot: e.Snapshot()}, err
	}
	e.annotate(span)

	if e.phase != PhaseSpinConfirmed {
		span.RecordError(ErrSpinNotConfirmed)
		return Result{Snapshot: e.Snapshot()}, ErrSpinNotConfirmed
	}

	c = puzzle.NormalizeRune(c)
	if !puzzle.IsGuessable(c) {
		err := fmt.Errorf("%w: %q", ErrInvalidLetter, c)
		span.RecordError(err)
		return Result{Snapshot: e.Snapshot()}, err
	}
	if e.round.Has(c) {
		err := fmt.Errorf("%w: %q", ErrLetterAlreadyGuessed, c)
		span.RecordError(err)
		return Result{Snapshot: e.Snapshot()}, err
	}

	idx := e.roster.CurrentIndex()
	player := e.roster.Current().Name
	spin := e.round.SpinValue
	count := e.round.Guess(c)
	e.round.SpinArmed = false

	res := Result{Player: player, Spin: spin, Letter: c, Count: count}

	switch {
	case count == 0:
		res.Outcome = OutcomeIncorrectGuess
		e.endTurn()
	default:
		res.Delta = spin * count
		e.roster.AddScore(idx, res.Delta)
		if e.round.Solved() {
			res.Outcome = OutcomeWonByReveal
			e.win(idx)
		} else {
			res.Outcome = OutcomeCorrectGuess
			e.phase = PhaseAwaitingSpin
		}
	}

	span.SetAttributes(
		attribute.String("letter", string(c)),
		attribute.Int("count", count),
		attribute.Int("delta", res.Delta),
		attribute.String("outcome", res.Outcome.String()),
	)
	logger.Log.Infow("guess",
		"round_id", e.round.ID,
		"player", player,
		"letter", string(c),
		"count", count,
		"delta", res.Delta,
		"outcome", res.Outcome.String(),
	)

	return e.finish(res), nil
}

// AttemptSolve checks a full-phrase answer from the current player.
// Only an exact match, ignoring case and surrounding whitespace, wins.
func (e *Engine) AttemptSolve(ctx context.Context, text string) (Result, error) {
	_, span := telemetry.Tracer("engine").Start(ctx, "turn.solve")
	defer span.End()

	if err := e.requireActiveRound(span); err != nil {
		return Result{Snapshot: e.Snapshot()}, err
	}
	e.annotate(span)

	idx := e.roster.CurrentIndex()
	player := e.roster.Current().Name
	res := Result{Player: player}

	if e.round.Matches(text) || e.isHostToken(text) {
		e.round.RevealAll()
		res.Outcome = OutcomeWonBySolve
		e.win(idx)
	} else {
		res.Outcome = OutcomeWrongSolve
		e.endTurn()
	}

	span.SetAttributes(attribute.String("outcome", res.Outcome.String()))
	logger.Log.Infow("solve attempt",
		"round_id", e.round.ID,
		"player", player,
		"outcome", res.Outcome.String(),
	)

	return e.finish(res), nil
}

// Snapshot returns a copy of the observable state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:   e.phase,
		Current: -1,
		Winner:  e.winner,
	}
	if e.roster != nil {
		s.Players = e.roster.Players()
		s.Current = e.roster.CurrentIndex()
	}
	if e.round != nil {
		s.RoundID = e.round.ID
		s.Category = e.round.Puzzle.Category
		s.Question = e.round.Puzzle.Question
		s.Board = e.round.Rows(round.RowWidth)
		s.Guessed = e.round.Guessed()
		s.SpinValue = e.round.SpinValue
		s.SpinArmed = e.round.SpinArmed
	}
	return s
}

// requireActiveRound fails unless a round is awaiting a spin or a guess.
func (e *Engine) requireActiveRound(span trace.Span) error {
	if e.roster == nil {
		span.RecordError(ErrNoGame)
		return ErrNoGame
	}
	if e.round == nil || !e.phase.Active() {
		err := fmt.Errorf("%w: phase %s", ErrRoundNotActive, e.phase)
		span.RecordError(err)
		return err
	}
	return nil
}

func (e *Engine) annotate(span trace.Span) {
	span.SetAttributes(
		attribute.String("round.id", e.round.ID),
		attribute.String("phase", e.phase.String()),
		attribute.String("player", e.roster.Current().Name),
		attribute.Int("score", e.roster.Current().Score),
	)
}

// endTurn disarms the spin and hands the turn to the next player.
func (e *Engine) endTurn() {
	e.round.SpinArmed = false
	e.phase = PhaseAwaitingSpin
	e.roster.Advance()
}

func (e *Engine) win(idx int) {
	e.round.SpinArmed = false
	e.phase = PhaseRoundWon
	e.winner = idx
	logger.Log.Infow("round won",
		"round_id", e.round.ID,
		"winner", e.roster.Current().Name,
		"score", e.roster.Current().Score,
	)
}

func (e *Engine) isHostToken(text string) bool {
	if e.cfg.HostSolveToken == "" {
		return false
	}
	return puzzle.Normalize(strings.TrimSpace(text)) == puzzle.Normalize(strings.TrimSpace(e.cfg.HostSolveToken))
}

// finish attaches a fresh snapshot and notifies listeners.
func (e *Engine) finish(res Result) Result {
	res.Snapshot = e.Snapshot()
	for _, l := range e.listeners {
		l.OnResult(res)
	}
	return res
}
