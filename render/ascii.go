package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/lguibr/asciiring/helpers"

	"github.com/lguibr/plethora/game"
	"github.com/lguibr/plethora/utils"
)

const (
	goalChar   = '*'
	deadChar   = '.'
	paddleChar = '#'
	ballChar   = 'O'

	cursorHome = "\033[H"
	clearLine  = "\033[K"
	resetColor = "\033[0m"
)

type cell struct {
	ch    rune
	color *utils.Color
}

// Renderer rasterizes snapshots into ASCII frames. Each cell is printed twice
// side by side so the arena keeps its aspect ratio in a terminal.
type Renderer struct {
	Width  int
	Height int
	Color  bool // emit 24-bit ANSI colors for goal lines
}

func NewRenderer(width, height int, color bool) *Renderer {
	return &Renderer{Width: width, Height: height, Color: color}
}

// rgbToAnsi converts a color to the ANSI escape selecting it as foreground.
func rgbToAnsi(c utils.Color) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c[0], c[1], c[2])
}

// Header returns the title line and the score line.
func Header(s game.Snapshot) (string, string) {
	title := fmt.Sprintf("%s v%s | %s", utils.GameName, utils.GameVersion, s.MatchName)
	scores := make([]string, len(s.Goals))
	for i, g := range s.Goals {
		mark := ""
		if g.Eliminated {
			mark = "x"
		}
		scores[i] = fmt.Sprintf("P%d:%d%s", g.Player, g.Score, mark)
	}
	return title, strings.Join(scores, " ")
}

// Frame renders the snapshot. Lines end with CRLF so the frame also reads
// right on a terminal in raw mode.
func (r *Renderer) Frame(s game.Snapshot) string {
	grid := make([][]cell, r.Height)
	for i := range grid {
		grid[i] = make([]cell, r.Width)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	for _, g := range s.Goals {
		ch := goalChar
		if g.Eliminated {
			ch = deadChar
		}
		color := g.Color
		r.line(grid, s.Radius, g.Segment, cell{ch: ch, color: &color})
	}
	for _, p := range s.Paddles {
		r.line(grid, s.Radius, p.Segment, cell{ch: paddleChar})
	}
	for _, b := range s.Balls {
		r.plot(grid, s.Radius, b.Position, cell{ch: ballChar})
	}

	return r.write(s, grid)
}

func (r *Renderer) write(s game.Snapshot, grid [][]cell) string {
	msg := s.Overlay.Message
	if len(msg)%2 == 1 {
		msg += " "
	}
	span := len(msg) / 2
	overlayRow, overlayCol := -1, 0
	if span > 0 && span <= r.Width {
		overlayRow, overlayCol = r.Height/2, (r.Width-span)/2
	}

	var b strings.Builder
	title, scores := Header(s)
	b.WriteString(title + clearLine + "\r\n")
	b.WriteString(scores + clearLine + "\r\n")
	for y, row := range grid {
		for x := 0; x < len(row); x++ {
			if y == overlayRow && x == overlayCol {
				b.WriteString(msg)
				x += span - 1
				continue
			}
			c := row[x]
			text := string([]rune{c.ch, c.ch})
			if r.Color && c.color != nil {
				b.WriteString(rgbToAnsi(*c.color) + text + resetColor)
				continue
			}
			b.WriteString(text)
		}
		b.WriteString(clearLine + "\r\n")
	}
	return b.String()
}

// toCell maps arena coordinates to the grid, with Y pointing up.
func (r *Renderer) toCell(radius float64, p utils.Vector) (int, int, bool) {
	if radius <= 0 {
		return 0, 0, false
	}
	col := int(math.Round((p.X + radius) / (2 * radius) * float64(r.Width-1)))
	row := int(math.Round((radius - p.Y) / (2 * radius) * float64(r.Height-1)))
	if col < 0 || col >= r.Width || row < 0 || row >= r.Height {
		return 0, 0, false
	}
	return row, col, true
}

func (r *Renderer) plot(grid [][]cell, radius float64, p utils.Vector, c cell) {
	if row, col, ok := r.toCell(radius, p); ok {
		grid[row][col] = c
	}
}

func (r *Renderer) line(grid [][]cell, radius float64, s utils.Segment, c cell) {
	steps := 2 * utils.MaxInt(r.Width, r.Height)
	for i := 0; i <= steps; i++ {
		r.plot(grid, radius, utils.Lerp(s.A, s.B, float64(i)/float64(steps)), c)
	}
}

// Clear wipes the terminal once; frames then overwrite it in place.
func Clear() {
	helpers.ClearScreen()
}

// Draw writes the frame of s at the top left of the terminal.
func (r *Renderer) Draw(w io.Writer, s game.Snapshot) error {
	_, err := io.WriteString(w, cursorHome+r.Frame(s))
	return err
}
