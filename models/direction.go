package models

import (
	"errors"
	"fmt"
	"strings"
)

// MoveDirection tells a reorder which neighbour to swap with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// ErrUnknownMoveDirection is returned by ParseMoveDirection for anything
// other than "up" or "down".
var ErrUnknownMoveDirection = errors.New("unknown move direction")

// ParseMoveDirection converts s (case-insensitive, surrounding spaces
// ignored) into a MoveDirection.
func ParseMoveDirection(s string) (MoveDirection, error) {
	switch d := MoveDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case MoveUp, MoveDown:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMoveDirection, s)
	}
}

// Valid reports whether d is MoveUp or MoveDown.
func (d MoveDirection) Valid() bool {
	return d == MoveUp || d == MoveDown
}
