// Package feedback turns action outcomes into audible cues.
// Cues are fire-and-forget: a cue that fails to play is logged and dropped.
package feedback

import (
	"github.com/samdwyer/wordwheel/internal/engine"
	"github.com/samdwyer/wordwheel/internal/logger"
)

// Cue is a category of feedback sound.
type Cue int

const (
	CueNone Cue = iota
	CueCorrect
	CueWrong
	CueWin
)

// String returns a human-readable cue name.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// CueFor maps an outcome to the cue played for it.
func CueFor(o engine.Outcome) Cue {
	switch o {
	case engine.OutcomeCorrectGuess:
		return CueCorrect
	case engine.OutcomeIncorrectGuess, engine.OutcomeWrongSolve, engine.OutcomeBankrupt:
		return CueWrong
	case engine.OutcomeWonBySolve, engine.OutcomeWonByReveal:
		return CueWin
	default:
		return CueNone
	}
}

// Player plays a cue.
type Player interface {
	Play(Cue) error
}

// Dispatcher plays the cue for every engine result without blocking the caller.
type Dispatcher struct {
	player Player
	async  func(func())
}

// NewDispatcher creates a dispatcher playing cues on p in their own goroutine.
func NewDispatcher(p Player) *Dispatcher {
	return &Dispatcher{
		player: p,
		async:  func(f func()) { go f() },
	}
}

// OnResult implements engine.Listener.
func (d *Dispatcher) OnResult(r engine.Result) {
	cue := CueFor(r.Outcome)
	if cue == CueNone || d.player == nil {
		return
	}
	d.async(func() {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Warnw("feedback cue panicked", "cue", cue.String(), "panic", rec)
			}
		}()
		if err := d.player.Play(cue); err != nil {
			logger.Log.Warnw("feedback cue failed", "cue", cue.String(), "error", err)
		}
	})
}
