// Package console implements a display backend that draws the field as ASCII hexagons
// on the terminal.
//
// It registers itself as the "console" display. Parameters:
//
//   - color: use colors (default true).
//   - clear: clear the screen before each frame (default false).
//   - center: center the drawing on the terminal (default true).
package console

import (
	"bytes"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/hexmaze/internal/display"
	"github.com/janpfeifer/hexmaze/internal/parameters"
	. "github.com/janpfeifer/hexmaze/internal/state"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
)

// Name of the backend, used to select it with display.Open.
const Name = "console"

func init() {
	display.Register(Name, NewFromParams)
}

const (
	// CharsPerColumn is the horizontal distance between cells of the same row.
	CharsPerColumn = 6

	// OddRowShift is the horizontal shift of the cells in odd rows.
	OddRowShift = CharsPerColumn / 2
)

// PlayerGlyphs is how the player is drawn, indexed by the direction it is facing.
var PlayerGlyphs = [NumDirections]string{
	UpLeft:    "<^",
	Up:        "^^",
	UpRight:   "^>",
	DownRight: "v>",
	Down:      "vv",
	DownLeft:  "<v",
}

// Options of the console display.
type Options struct {
	Color, ClearScreen, Center bool
}

// UI draws the game to a writer.
type UI struct {
	Options
	w io.Writer

	wallStyle, obstacleStyle, playerStyle, finishStyle lipgloss.Style
}

// New creates a console display writing to w.
func New(w io.Writer, opts Options) *UI {
	ui := &UI{Options: opts, w: w}
	ui.wallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	ui.obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Background(lipgloss.Color("8"))
	ui.playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true)
	ui.finishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Bold(true)
	return ui
}

// NewFromParams is the display.Factory of the console backend. It writes to the standard output.
func NewFromParams(params parameters.Params) (display.Display, error) {
	var opts Options
	var err error
	if opts.Color, err = parameters.PopParamOr(params, "color", true); err != nil {
		return nil, err
	}
	if opts.ClearScreen, err = parameters.PopParamOr(params, "clear", false); err != nil {
		return nil, err
	}
	if opts.Center, err = parameters.PopParamOr(params, "center", true); err != nil {
		return nil, err
	}
	return New(os.Stdout, opts), nil
}

// Setup implements display.Display.
func (ui *UI) Setup(game *Game) error {
	f := game.Field()
	_, err := fmt.Fprintf(ui.w, "Hex maze %dx%d\n", f.Width(), f.Height())
	if err != nil {
		return err
	}
	ui.Update(game)
	return nil
}

// Update implements display.Display: it prints the current frame.
func (ui *UI) Update(game *Game) {
	if ui.ClearScreen {
		_, _ = fmt.Fprint(ui.w, "\033c")
	}
	frame := ui.Render(game)
	if ui.Center {
		frame = centerBlock(frame, terminalWidth(ui.w))
	}
	_, _ = fmt.Fprintln(ui.w, frame)
	status := fmt.Sprintf("Player at %s facing %s", game.PlayerPos(), game.PlayerDir())
	if game.Finished() {
		status += ": finish reached!"
	}
	_, _ = fmt.Fprintln(ui.w, status)
}

// Cleanup implements display.Display.
func (ui *UI) Cleanup(game *Game) {
	if game.Finished() {
		msg := "*** Maze solved! ***"
		if ui.Color {
			msg = lipgloss.NewStyle().
				Background(lipgloss.Color("13")).
				Foreground(lipgloss.Color("0")).
				Padding(1, 2).
				Render(msg)
		}
		_, _ = fmt.Fprintln(ui.w, msg)
	}
	if ui.Color {
		_, _ = fmt.Fprint(ui.w, "\033[39;49;0m")
	}
}

// glyph is one character of the drawing, and what it represents (for coloring).
type glyph struct {
	r    rune
	kind Cell
	wall bool
}

// Render the field as lines of text, without a trailing new line.
//
// Each cell is a flat-top hexagon 4 characters wide and 3 lines tall, with the
// rows of the field going upwards. Only closed walls are drawn, including the
// field boundaries.
func (ui *UI) Render(game *Game) string {
	f := game.Field()
	if f.NumCells() == 0 {
		return "<empty field>"
	}
	numLines := f.Height() + 2
	numColumns := CharsPerColumn*f.Width() + 1
	canvas := make([][]glyph, numLines)
	for line := range canvas {
		canvas[line] = make([]glyph, numColumns)
		for col := range canvas[line] {
			canvas[line][col].r = ' '
		}
	}
	setWall := func(line, col int, s string) {
		for ii, r := range []rune(s) {
			canvas[line][col+ii] = glyph{r: r, wall: true}
		}
	}

	for y := range f.Height() {
		for x := range f.Width() {
			pos := Pos{X: x, Y: y}
			top, col := CellOrigin(f, pos)
			walls := f.ClosedWallsAt(pos)
			if walls.Has(Up) {
				setWall(top, col+1, "__")
			}
			if walls.Has(UpLeft) {
				setWall(top+1, col, "/")
			}
			if walls.Has(UpRight) {
				setWall(top+1, col+3, "\\")
			}
			if walls.Has(DownLeft) {
				setWall(top+2, col, "\\")
			}
			if walls.Has(Down) {
				setWall(top+2, col+1, "__")
			}
			if walls.Has(DownRight) {
				setWall(top+2, col+3, "/")
			}
			cell := f.CellAt(pos, CellEmpty)
			content := []rune(contentOf(game, pos, cell))
			for ii := range 2 {
				canvas[top+1][col+1+ii] = glyph{r: content[ii], kind: cell}
			}
		}
	}

	var buf bytes.Buffer
	for line, glyphs := range canvas {
		if line > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.TrimRight(ui.renderLine(glyphs), " "))
	}
	return buf.String()
}

// CellOrigin returns the line of the top edge of the cell in pos, and the column of its left corner.
func CellOrigin(f *Field, pos Pos) (line, column int) {
	line = f.Height() - 1 - pos.Y
	column = CharsPerColumn * pos.X
	if pos.Y%2 == 1 {
		column += OddRowShift
	}
	return
}

func contentOf(game *Game, pos Pos, cell Cell) string {
	if pos == game.PlayerPos() {
		return PlayerGlyphs[game.PlayerDir()]
	}
	symbol := string(cell.Symbol())
	return symbol + symbol
}

func (ui *UI) renderLine(glyphs []glyph) string {
	var sb strings.Builder
	for _, g := range glyphs {
		s := string(g.r)
		if ui.Color && (g.wall || g.kind != CellEmpty) {
			switch {
			case g.wall:
				s = ui.wallStyle.Render(s)
			case g.kind == CellWall:
				s = ui.obstacleStyle.Render(s)
			case g.kind == CellPlayer:
				s = ui.playerStyle.Render(s)
			case g.kind == CellFinish:
				s = ui.finishStyle.Render(s)
			}
		}
		sb.WriteString(s)
	}
	return sb.String()
}

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// terminalWidth returns the width of w if it is a terminal, or 0 otherwise.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// centerBlock indents all lines of block so that it is centered in the given width.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := (width - blockWidth) / 2
	if indent <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", indent)
	for ii, line := range lines {
		if len(line) > 0 {
			lines[ii] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
