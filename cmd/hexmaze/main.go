// hexmaze runs an interactive hexagonal maze: the player is moved with the keyboard
// (see the 'h' command), and the game is shown with the configured display.
package main

import (
	"flag"
	"fmt"
	"github.com/janpfeifer/hexmaze/internal/display"
	_ "github.com/janpfeifer/hexmaze/internal/display/console"
	_ "github.com/janpfeifer/hexmaze/internal/display/gifrec"
	"github.com/janpfeifer/hexmaze/internal/engine"
	"github.com/janpfeifer/hexmaze/internal/ui/cli"
	"github.com/janpfeifer/hexmaze/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
	"os"
	"strings"
	"time"
)

var (
	_ = fmt.Printf

	flagDisplay = flag.String("display", "console",
		"Display configuration: a built-in display ("+strings.Join(display.Registered(), ", ")+
			") with optional parameters (e.g. \"console:clear\"), the path to a display plugin, or empty for no display.")
	flagSide  = flag.Int("side", engine.DefaultSide, "Side of the field: it will have side columns and 2*side+1 rows.")
	flagSeed  = flag.Uint64("seed", 0, "Seed for the maze generator. If 0, a seed is taken from the clock.")
	flagMaze  = flag.Bool("maze", true, "Generate a maze at the start.")
	flagDelay = flag.Duration("delay", 0, "Delay before each action of the player, e.g. \"100ms\".")
	flagColor = flag.Bool("color", true, "Use colors in the command-line messages.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagSide <= 0 {
		klog.Exitf("Invalid --side=%d, it must be > 0", *flagSide)
	}
	seed := *flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := must.M1(engine.New(engine.Config{
		Side:    *flagSide,
		Display: *flagDisplay,
		OpDelay: *flagDelay,
		Seed:    seed,
	}))
	defer e.Close()

	// Capture Control+C: the display still gets cleaned up.
	spinning.SafeInterrupt(func() {
		e.Close()
		spinning.Reset(os.Stdout)
		os.Exit(1)
	}, 3*time.Second)

	if *flagMaze {
		result := e.GenerateMaze()
		klog.V(1).Infof("Seed %d: %s", seed, result)
	}
	ui := cli.New(e, os.Stdin, os.Stdout, *flagColor)
	if err := ui.Run(); err != nil {
		e.Close()
		klog.Exitf("Failed to run: %+v", err)
	}
}
