package scramble

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// ErrUnsupportedSize is returned for cube sizes other than 3.
var ErrUnsupportedSize = errors.New("unsupported cube size")

// DefaultLength is the number of moves in a generated scramble.
const DefaultLength = 20

// Provider produces scramble notation for a cube size. The notation is
// opaque to callers.
type Provider interface {
	Scramble(size int) (string, error)
}

// RandomMoves generates random-move scrambles. Consecutive moves never
// turn the same face, and no three consecutive moves share an axis
// (R L R would collapse to R2 L). It is safe for concurrent use.
type RandomMoves struct {
	length int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomMoves creates a generator producing length moves per scramble.
// A nil rng uses a randomly seeded source.
func NewRandomMoves(length int, rng *rand.Rand) *RandomMoves {
	if length <= 0 {
		length = DefaultLength
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomMoves{length: length, rng: rng}
}

// Scramble returns a new scramble for the given cube size.
func (g *RandomMoves) Scramble(size int) (string, error) {
	if size != 3 {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	return FormatMoves(g.Moves()), nil
}

// Moves returns a new random move sequence.
func (g *RandomMoves) Moves() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	moves := make([]Move, 0, g.length)
	for len(moves) < g.length {
		face := Faces[g.rng.IntN(len(Faces))]
		if !allowed(moves, face) {
			continue
		}
		moves = append(moves, Move{Face: face, Turns: 1 + g.rng.IntN(3)})
	}
	return moves
}

func allowed(moves []Move, face byte) bool {
	n := len(moves)
	if n == 0 {
		return true
	}
	last := moves[n-1].Face
	if last == face {
		return false
	}
	if n >= 2 {
		prev := moves[n-2].Face
		if axis(prev) == axis(last) && axis(last) == axis(face) {
			return false
		}
	}
	return true
}
