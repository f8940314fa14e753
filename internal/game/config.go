package game

import (
	"github.com/samdwyer/wordwheel/internal/roster"
	"github.com/samdwyer/wordwheel/internal/round"
	"github.com/samdwyer/wordwheel/internal/ui"
)

// Config holds presentation options.
type Config struct {
	// MaxPlayers caps the setup form. Values above roster.MaxPlayers are lowered.
	MaxPlayers int
	// DefaultSpin prefills the spin entry at the start of each turn.
	DefaultSpin int
	Theme       ui.Theme
}

func (c Config) withDefaults() Config {
	if c.MaxPlayers < roster.MinPlayers || c.MaxPlayers > roster.MaxPlayers {
		c.MaxPlayers = roster.MaxPlayers
	}
	if c.DefaultSpin <= 0 {
		c.DefaultSpin = round.DefaultSpin
	}
	return c
}
