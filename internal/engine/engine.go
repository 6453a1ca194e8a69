// Package engine owns a game and its display, and implements the actions available
// to the player (the "robot"): moving, rotating, probing the walls around it with the
// sonar, and generating new mazes.
//
// Every action optionally waits for Config.OpDelay, acts on the game and then refreshes
// the display.
package engine

import (
	"github.com/janpfeifer/hexmaze/internal/display"
	"github.com/janpfeifer/hexmaze/internal/maze"
	. "github.com/janpfeifer/hexmaze/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"time"
)

// DefaultSide of the square field.
const DefaultSide = 10

// Config of an Engine.
type Config struct {
	// Side of the square field: it will have Side columns and 2*Side+1 rows.
	Side int

	// Display configuration, see display.Open. Empty for no display.
	Display string

	// OpDelay to wait before each player action, to allow following the actions on a display.
	OpDelay time.Duration

	// Seed for the maze generator.
	Seed uint64
}

// Engine holds the game and the display used to show it.
// It is not safe for concurrent use.
type Engine struct {
	config  Config
	game    *Game
	display *display.Handle
	rng     *rand.Rand
	closed  bool

	// sleep is replaced in tests.
	sleep func(time.Duration)
}

// New creates the game with a square field, places the player at the origin, and
// opens and sets up the configured display.
//
// If anything fails, the display is released before returning the error.
func New(config Config) (e *Engine, err error) {
	if config.Side <= 0 {
		return nil, errors.Errorf("invalid field side %d, it must be > 0", config.Side)
	}
	e = &Engine{
		config: config,
		game:   NewSquareGame(config.Side),
		rng:    maze.NewRandom(config.Seed),
		sleep:  time.Sleep,
	}
	e.game.SetPlayerPos(Pos{X: 0, Y: 0})
	e.display, err = display.Open(config.Display)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			e.display.Close(e.game)
			e = nil
		}
	}()
	if err = e.display.Setup(e.game); err != nil {
		return
	}
	klog.V(1).Infof("Engine created: %dx%d field, display %q",
		e.game.Field().Width(), e.game.Field().Height(), e.display.Name())
	return
}

// Game returns the game owned by the engine.
func (e *Engine) Game() *Game { return e.game }

// Config used to create the engine.
func (e *Engine) Config() Config { return e.config }

// SetSleep replaces the function used to wait the operation delay. Used for testing.
func (e *Engine) SetSleep(sleep func(time.Duration)) {
	e.sleep = sleep
}

// Refresh the display with the current state of the game.
func (e *Engine) Refresh() {
	e.display.Update(e.game)
}

func (e *Engine) delay() {
	if e.config.OpDelay > 0 {
		e.sleep(e.config.OpDelay)
	}
}

// Go moves the player one step forward, if possible, and refreshes the display.
// It returns whether the player moved.
func (e *Engine) Go() bool {
	e.delay()
	moved := e.game.StepForward()
	if moved {
		e.Refresh()
		if e.game.Finished() {
			klog.V(1).Infof("Finish reached at %s", e.game.PlayerPos())
		}
	}
	return moved
}

// RotateLeft turns the player 60 degrees counter-clockwise.
func (e *Engine) RotateLeft() {
	e.delay()
	e.game.RotateLeft()
	e.Refresh()
}

// RotateRight turns the player 60 degrees clockwise.
func (e *Engine) RotateRight() {
	e.delay()
	e.game.RotateRight()
	e.Refresh()
}

// Face turns the player to the given direction.
func (e *Engine) Face(d Direction) {
	e.delay()
	e.game.SetPlayerDir(d)
	e.Refresh()
}

// Sonar returns the open directions around the player, relative to where it's facing.
// See Game.Sonar for the meaning of the bits.
func (e *Engine) Sonar() uint8 {
	e.delay()
	return e.game.Sonar()
}

// GenerateMaze carves a new maze from the player position, and refreshes the display.
func (e *Engine) GenerateMaze() maze.Result {
	result := maze.Generate(e.game, e.rng)
	e.Refresh()
	return result
}

// Close the display, calling its cleanup. It is safe to call more than once.
func (e *Engine) Close() {
	if e == nil || e.closed {
		return
	}
	e.closed = true
	e.display.Close(e.game)
}
