package feedback

import "time"

// Beeper is anything that can ring the terminal bell.
type Beeper interface {
	Beep() error
}

// Bell plays cues as bursts of terminal bell rings.
type Bell struct {
	beeper Beeper
	gap    time.Duration
}

// NewBell creates a bell player ringing b with gap between pulses.
func NewBell(b Beeper, gap time.Duration) *Bell {
	return &Bell{beeper: b, gap: gap}
}

// Pulses returns how many rings a cue gets.
func Pulses(c Cue) int {
	switch c {
	case CueCorrect:
		return 1
	case CueWrong:
		return 2
	case CueWin:
		return 4
	default:
		return 0
	}
}

// Play rings the bell for c. The first failed ring aborts the cue.
func (b *Bell) Play(c Cue) error {
	for i := 0; i < Pulses(c); i++ {
		if i > 0 {
			time.Sleep(b.gap)
		}
		if err := b.beeper.Beep(); err != nil {
			return err
		}
	}
	return nil
}
