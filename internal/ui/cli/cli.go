// Package cli implements an interactive command-line driver for the engine: it reads
// commands from the input and executes the corresponding player actions.
package cli

import (
	"bufio"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/hexmaze/internal/engine"
	. "github.com/janpfeifer/hexmaze/internal/state"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"regexp"
	"strings"
)

// KeyDirections maps the movement keys to the direction the player faces before stepping.
// On a QWERTY keyboard they form a hexagon.
var KeyDirections = map[rune]Direction{
	'q': UpLeft,
	'w': Up,
	'e': UpRight,
	'd': DownRight,
	's': Down,
	'a': DownLeft,
}

// Word commands, and the key they are equivalent to.
var wordCommands = map[string]rune{
	"go":    'g',
	"left":  'l',
	"right": 'r',
	"sonar": 'o',
	"maze":  'm',
	"help":  'h',
	"quit":  'x',
	"exit":  'x',
}

var (
	keysParser = regexp.MustCompile(`^[qwedsalrgomhx]+$`)
	wordParser = regexp.MustCompile(`^([a-z]+)$`)

	// ErrQuit is returned by Execute when the user asks to quit.
	ErrQuit = errors.New("quit")
)

const helpMessage = `Commands (keys can be combined in one line, e.g. "wwe"):
  q, w, e, d, s, a: face UpLeft, Up, UpRight, DownRight, Down, DownLeft and step forward
  g (go):    step forward
  l (left):  rotate left
  r (right): rotate right
  o (sonar): print the open directions around the player, relative to where it is facing
  m (maze):  generate a new maze starting from the player position
  h (help):  this message
  x (quit):  quit`

// UI reads commands from an input and executes them on an engine.
type UI struct {
	engine *engine.Engine
	reader *bufio.Reader
	w      io.Writer
	color  bool

	finishAnnounced bool
}

// New creates a command-line UI for the engine, reading commands from r and writing messages to w.
func New(e *engine.Engine, r io.Reader, w io.Writer, color bool) *UI {
	return &UI{
		engine: e,
		reader: bufio.NewReader(r),
		w:      w,
		color:  color,
	}
}

// Run reads and executes commands until the user quits or the input ends.
func (ui *UI) Run() error {
	ui.printf("Type 'h' for help.\n")
	for {
		ui.prompt()
		text, err := ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			if err == io.EOF {
				ui.printf("\n")
				return nil
			}
			return errors.Wrap(err, "failed to read command")
		}
		err = ui.Execute(text)
		if err == ErrQuit {
			return nil
		}
		if err != nil {
			ui.printf("    * %v\n", err)
		}
	}
}

func (ui *UI) prompt() {
	prompt := "> "
	if ui.color {
		prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true).Render(prompt)
	}
	ui.printf("%s", prompt)
}

func (ui *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ui.w, format, args...)
}

// Execute one line of commands. It returns ErrQuit if the user asked to quit, or an error
// if the line couldn't be parsed. Blocked moves are reported, but are not errors.
func (ui *UI) Execute(line string) error {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return nil
	}
	if matches := wordParser.FindStringSubmatch(line); len(matches) == 2 {
		if key, found := wordCommands[matches[1]]; found {
			return ui.executeKey(key)
		}
	}
	if !keysParser.MatchString(line) {
		return errors.Errorf("failed to parse your input %q, type 'h' for help", line)
	}
	for _, key := range line {
		if err := ui.executeKey(key); err != nil {
			return err
		}
	}
	return nil
}

func (ui *UI) executeKey(key rune) error {
	e := ui.engine
	if d, found := KeyDirections[key]; found {
		e.Face(d)
		ui.step()
		return nil
	}
	switch key {
	case 'g':
		ui.step()
	case 'l':
		e.RotateLeft()
	case 'r':
		e.RotateRight()
	case 'o':
		ui.printf("Sonar: %06b (facing %s)\n", e.Sonar(), e.Game().PlayerDir())
	case 'm':
		result := e.GenerateMaze()
		ui.finishAnnounced = false
		ui.printf("New maze: finish at %s\n", result.Finish)
	case 'h':
		ui.printf("%s\n", helpMessage)
	case 'x':
		return ErrQuit
	default:
		return errors.Errorf("unknown command key %q", key)
	}
	return nil
}

func (ui *UI) step() {
	g := ui.engine.Game()
	from := g.PlayerPos()
	if !ui.engine.Go() {
		ui.printf("    * Can't move %s from %s\n", g.PlayerDir(), from)
		return
	}
	klog.V(2).Infof("Moved %s from %s to %s", g.PlayerDir(), from, g.PlayerPos())
	if g.Finished() && !ui.finishAnnounced {
		ui.finishAnnounced = true
		msg := "*** You reached the finish! Congratulations! ***"
		if ui.color {
			msg = lipgloss.NewStyle().
				Background(lipgloss.Color("13")).
				Foreground(lipgloss.Color("0")).
				Padding(1, 2).
				Render(msg)
		}
		ui.printf("\n%s\n\n", msg)
	}
}
