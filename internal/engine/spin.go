package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Special spin outcomes the host can enter instead of a number.
const (
	TokenBankrupt = "BANKRUPT"
	TokenLoseTurn = "LOSE TURN"
)

// MaxSpin is the largest points value a spin entry may carry.
const MaxSpin = 1_000_000

// SpinKind classifies a spin entry.
type SpinKind int

const (
	SpinPoints SpinKind = iota
	SpinBankrupt
	SpinLoseTurn
)

// Spin is a parsed spin entry.
type Spin struct {
	Kind  SpinKind
	Value int // Points per letter; zero unless Kind is SpinPoints
}

// ParseSpin reads a spin entry: an integer in [1, MaxSpin], BANKRUPT or LOSE TURN.
// Case and whitespace around and between words are ignored.
func ParseSpin(raw string) (Spin, error) {
	token := strings.Join(strings.Fields(strings.ToUpper(raw)), " ")

	switch token {
	case "":
		return Spin{}, fmt.Errorf("%w: empty spin value", ErrInvalidInput)
	case TokenBankrupt:
		return Spin{Kind: SpinBankrupt}, nil
	case TokenLoseTurn:
		return Spin{Kind: SpinLoseTurn}, nil
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return Spin{}, fmt.Errorf("%w: %q is not a number, %s or %s", ErrInvalidInput, raw, TokenBankrupt, TokenLoseTurn)
	}
	if value <= 0 {
		return Spin{}, fmt.Errorf("%w: spin value must be positive, got %d", ErrInvalidInput, value)
	}
	if value > MaxSpin {
		return Spin{}, fmt.Errorf("%w: spin value must be at most %d, got %d", ErrInvalidInput, MaxSpin, value)
	}
	return Spin{Kind: SpinPoints, Value: value}, nil
}
