package roster

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewCleansNames(t *testing.T) {
	r, err := New([]string{"  Ayşe ", "", "   ", "Bob", "\tCem\n"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	want := []string{"Ayşe", "Bob", "Cem"}
	players := r.Players()
	if len(players) != len(want) {
		t.Fatalf("New() kept %d players, want %d", len(players), len(want))
	}
	for i, p := range players {
		if p.Name != want[i] {
			t.Errorf("player %d name = %q, want %q", i, p.Name, want[i])
		}
		if p.Score != 0 {
			t.Errorf("player %d score = %d, want 0", i, p.Score)
		}
	}
	if r.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", r.CurrentIndex())
	}
}

func TestNewInsufficientPlayers(t *testing.T) {
	tests := [][]string{
		nil,
		{},
		{"Solo"},
		{"Solo", "  ", ""},
	}

	for _, names := range tests {
		r, err := New(names)
		if !errors.Is(err, ErrInsufficientPlayers) {
			t.Errorf("New(%q) error = %v, want ErrInsufficientPlayers", names, err)
		}
		if r != nil {
			t.Errorf("New(%q) returned a roster alongside the error", names)
		}
	}
}

func TestNewCapsAtMaxPlayers(t *testing.T) {
	names := make([]string, MaxPlayers+3)
	for i := range names {
		names[i] = DefaultName(i + 1)
	}

	r, err := New(names)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if r.Len() != MaxPlayers {
		t.Errorf("Len() = %d, want %d", r.Len(), MaxPlayers)
	}
}

func TestAdvanceCycles(t *testing.T) {
	for n := MinPlayers; n <= MaxPlayers; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("P%d", i)
		}
		r, err := New(names)
		if err != nil {
			t.Fatalf("New(%d names) error: %v", n, err)
		}

		// Start from a non-zero index to make the property meaningful.
		r.Advance()
		start := r.CurrentIndex()
		for i := 0; i < n; i++ {
			r.Advance()
			if idx := r.CurrentIndex(); idx < 0 || idx >= n {
				t.Fatalf("CurrentIndex() = %d out of range for %d players", idx, n)
			}
		}
		if r.CurrentIndex() != start {
			t.Errorf("%d players: after %d advances index = %d, want %d", n, n, r.CurrentIndex(), start)
		}
	}
}

func TestAdvanceOrder(t *testing.T) {
	r, _ := New([]string{"A", "B", "C"})

	want := []string{"B", "C", "A", "B"}
	for _, name := range want {
		r.Advance()
		if got := r.Current().Name; got != name {
			t.Errorf("Current() = %q, want %q", got, name)
		}
	}
}

func TestAdvanceBelowMinimumIsNoop(t *testing.T) {
	r := &Roster{players: []Player{{Name: "Solo"}}}
	r.Advance()
	if r.CurrentIndex() != 0 {
		t.Errorf("Advance() on single-player roster moved to %d", r.CurrentIndex())
	}
}

func TestScoreNeverNegative(t *testing.T) {
	r, _ := New([]string{"A", "B"})

	if got := r.AddScore(0, 500); got != 500 {
		t.Errorf("AddScore(0, 500) = %d, want 500", got)
	}
	if got := r.AddScore(0, -900); got != 0 {
		t.Errorf("AddScore(0, -900) = %d, want 0", got)
	}

	r.SetScore(1, -5)
	if got := r.Players()[1].Score; got != 0 {
		t.Errorf("SetScore(1, -5) left score %d, want 0", got)
	}
}

func TestPlayersReturnsCopy(t *testing.T) {
	r, _ := New([]string{"A", "B"})
	players := r.Players()
	players[0].Score = 999

	if r.Current().Score != 0 {
		t.Error("mutating Players() result changed the roster")
	}
}
