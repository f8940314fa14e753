// Package roster provides the players taking part in a game and the turn order.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// MinPlayers is the fewest players a game can start with.
const MinPlayers = 2

// MaxPlayers is the most players the setup form accepts.
const MaxPlayers = 10

// ErrInsufficientPlayers is returned when fewer than MinPlayers names remain after cleanup.
var ErrInsufficientPlayers = errors.New("at least 2 players required")

// Player is a named participant with a running score.
type Player struct {
	Name  string
	Score int
}

// Roster is the fixed-order cycle of players and whose turn it is.
type Roster struct {
	players []Player
	current int
}

// CleanNames trims each name and drops the empty ones.
func CleanNames(names []string) []string {
	trimmed := lo.Map(names, func(n string, _ int) string {
		return strings.TrimSpace(n)
	})
	return lo.Compact(trimmed)
}

// New builds a roster from raw setup input. At most MaxPlayers names are kept.
func New(names []string) (*Roster, error) {
	cleaned := CleanNames(names)
	if len(cleaned) < MinPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPlayers, len(cleaned))
	}
	if len(cleaned) > MaxPlayers {
		cleaned = cleaned[:MaxPlayers]
	}

	return &Roster{
		players: lo.Map(cleaned, func(n string, _ int) Player {
			return Player{Name: n}
		}),
	}, nil
}

// DefaultName is the placeholder name for the nth setup slot, counting from 1.
func DefaultName(n int) string {
	return fmt.Sprintf("Player %d", n)
}

// Len returns the number of players.
func (r *Roster) Len() int {
	return len(r.players)
}

// CurrentIndex returns the index of the player whose turn it is.
func (r *Roster) CurrentIndex() int {
	return r.current
}

// Current returns the player whose turn it is.
func (r *Roster) Current() Player {
	return r.players[r.current]
}

// Players returns a copy of the players in turn order.
func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

// Advance passes the turn to the next player.
// Rosters below MinPlayers never reach here after setup; Advance leaves them alone.
func (r *Roster) Advance() {
	if len(r.players) < MinPlayers {
		return
	}
	r.current = (r.current + 1) % len(r.players)
}

// SetScore sets player i's score, clamped at zero.
func (r *Roster) SetScore(i, score int) {
	if score < 0 {
		score = 0
	}
	r.players[i].Score = score
}

// AddScore adds delta to player i's score, clamped at zero, and returns the new score.
func (r *Roster) AddScore(i, delta int) int {
	r.SetScore(i, r.players[i].Score+delta)
	return r.players[i].Score
}
