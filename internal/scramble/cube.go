package scramble

import "fmt"

type vec [3]int

func (a vec) dot(b vec) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec) cross(b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// rotateCW turns v a quarter clockwise about axis n, as seen looking at
// the face whose outward normal is n.
func rotateCW(v, n vec) vec {
	c := n.cross(v)
	d := n.dot(v)
	return vec{-c[0] + n[0]*d, -c[1] + n[1]*d, -c[2] + n[2]*d}
}

// Outward normals: x to the right, y up, z towards the viewer.
var faceNormals = map[byte]vec{
	'U': {0, 1, 0},
	'D': {0, -1, 0},
	'R': {1, 0, 0},
	'L': {-1, 0, 0},
	'F': {0, 0, 1},
	'B': {0, 0, -1},
}

// faceCoord maps a facelet at row r, column c of a face (as drawn on the
// standard net) to its cubie position.
func faceCoord(face byte, r, c int) vec {
	switch face {
	case 'U':
		return vec{c - 1, 1, r - 1}
	case 'D':
		return vec{c - 1, -1, 1 - r}
	case 'F':
		return vec{c - 1, 1 - r, 1}
	case 'B':
		return vec{1 - c, 1 - r, -1}
	case 'R':
		return vec{1, 1 - r, 1 - c}
	case 'L':
		return vec{-1, 1 - r, c - 1}
	}
	panic(fmt.Sprintf("scramble: unknown face %q", face))
}

type sticker struct {
	pos    vec
	normal vec
	color  byte
}

// Cube is a facelet model of the 3x3x3 cube. Colours are named after the
// face they start on (U, R, F, D, L, B).
type Cube struct {
	stickers [54]sticker
}

// NewCube returns a solved cube.
func NewCube() *Cube {
	c := &Cube{}
	i := 0
	for f := 0; f < len(Faces); f++ {
		face := Faces[f]
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				c.stickers[i] = sticker{pos: faceCoord(face, r, col), normal: faceNormals[face], color: face}
				i++
			}
		}
	}
	return c
}

// Apply performs the moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		n := faceNormals[m.Face]
		for t := 0; t < ((m.Turns%4)+4)%4; t++ {
			for i := range c.stickers {
				s := &c.stickers[i]
				if s.pos.dot(n) == 1 {
					s.pos = rotateCW(s.pos, n)
					s.normal = rotateCW(s.normal, n)
				}
			}
		}
	}
}

// ApplyScramble parses and applies a scramble string.
func (c *Cube) ApplyScramble(scramble string) error {
	moves, err := ParseMoves(scramble)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Face returns the nine facelet colours of a face in net reading order.
func (c *Cube) Face(face byte) [9]byte {
	var out [9]byte
	n := faceNormals[face]
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			p := faceCoord(face, r, col)
			for _, s := range c.stickers {
				if s.pos == p && s.normal == n {
					out[r*3+col] = s.color
					break
				}
			}
		}
	}
	return out
}

// Solved reports whether every face shows a single colour.
func (c *Cube) Solved() bool {
	for f := 0; f < len(Faces); f++ {
		face := Faces[f]
		for _, col := range c.Face(face) {
			if col != face {
				return false
			}
		}
	}
	return true
}

// String returns the facelets in URFDLB order, nine per face.
func (c *Cube) String() string {
	b := make([]byte, 0, 54)
	for f := 0; f < len(Faces); f++ {
		face := c.Face(Faces[f])
		b = append(b, face[:]...)
	}
	return string(b)
}
