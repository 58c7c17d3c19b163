package scramble

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Image is a rendered scramble. Alt is always set and is what callers
// show when the image could not be loaded.
type Image struct {
	Scramble    string
	URL         string
	ContentType string
	Data        []byte
	Alt         string
	Loaded      bool
}

// AltText returns the textual fallback for a scramble.
func AltText(scramble string) string {
	return "Scramble: " + scramble
}

// Renderer maps a scramble to a displayable image.
type Renderer interface {
	Render(ctx context.Context, scramble string) (Image, error)
}

// Sticker colours of the standard western scheme.
var stickerColors = map[byte]lipgloss.Color{
	'U': lipgloss.Color("15"),  // white
	'R': lipgloss.Color("196"), // red
	'F': lipgloss.Color("40"),  // green
	'D': lipgloss.Color("226"), // yellow
	'L': lipgloss.Color("208"), // orange
	'B': lipgloss.Color("27"),  // blue
}

// NetRenderer draws the scrambled cube as an unfolded net:
//
//	    U
//	L   F   R   B
//	    D
type NetRenderer struct {
	// Plain draws face letters instead of coloured blocks.
	Plain bool
}

// Render applies the scramble to a solved cube and draws the net.
func (n NetRenderer) Render(_ context.Context, scramble string) (Image, error) {
	img := Image{Scramble: scramble, ContentType: "text/plain", Alt: AltText(scramble)}

	cube := NewCube()
	if err := cube.ApplyScramble(scramble); err != nil {
		return img, err
	}

	img.Data = []byte(n.draw(cube))
	img.Loaded = true
	return img, nil
}

func (n NetRenderer) draw(c *Cube) string {
	const pad = "       " // one face row is 3 cells of 2 columns plus a gap

	var lines []string
	u := c.Face('U')
	for r := 0; r < 3; r++ {
		lines = append(lines, pad+n.row(u, r))
	}
	l, f, rt, b := c.Face('L'), c.Face('F'), c.Face('R'), c.Face('B')
	for r := 0; r < 3; r++ {
		lines = append(lines, n.row(l, r)+" "+n.row(f, r)+" "+n.row(rt, r)+" "+n.row(b, r))
	}
	d := c.Face('D')
	for r := 0; r < 3; r++ {
		lines = append(lines, pad+n.row(d, r))
	}
	return strings.Join(lines, "\n")
}

func (n NetRenderer) row(face [9]byte, r int) string {
	var sb strings.Builder
	for col := 0; col < 3; col++ {
		color := face[r*3+col]
		if n.Plain {
			sb.WriteByte(color)
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(stickerColors[color]).Render("██"))
	}
	return sb.String()
}
