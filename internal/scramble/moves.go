// Package scramble generates scramble sequences for the 3x3x3 cube and
// renders them, either through the VisualCube image service or locally as
// an unfolded net.
package scramble

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned for notation outside the supported face turns.
var ErrInvalidMove = errors.New("invalid move")

// Faces in the order used for generation and rendering.
const Faces = "URFDLB"

// Move is a single outer-face turn.
type Move struct {
	Face  byte // one of Faces
	Turns int  // clockwise quarter turns: 1, 2 or 3
}

// String returns the move in standard notation (R, R2, R').
func (m Move) String() string {
	switch m.Turns % 4 {
	case 2:
		return string(m.Face) + "2"
	case 3:
		return string(m.Face) + "'"
	default:
		return string(m.Face)
	}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turns: (4 - m.Turns%4) % 4}
}

// axis groups opposite faces: U/D, R/L, F/B.
func axis(face byte) int {
	switch face {
	case 'U', 'D':
		return 0
	case 'R', 'L':
		return 1
	default:
		return 2
	}
}

// ParseMoves parses whitespace-separated notation such as "R U2 F' D".
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := parseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseMove(tok string) (Move, error) {
	if tok == "" || !strings.ContainsRune(Faces, rune(tok[0])) {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, tok)
	}
	m := Move{Face: tok[0]}
	switch tok[1:] {
	case "":
		m.Turns = 1
	case "'":
		m.Turns = 3
	case "2", "2'":
		m.Turns = 2
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, tok)
	}
	return m, nil
}

// FormatMoves joins moves with single spaces.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
