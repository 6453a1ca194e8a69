// console-plugin is a display plugin that draws the game on the terminal, using the
// built-in console display. Build it with:
//
//	go build -buildmode=plugin -o console.so ./cmd/console-plugin
//
// And use it with "hexmaze --display=./console.so".
package main

import (
	"github.com/janpfeifer/hexmaze/internal/display/console"
	"github.com/janpfeifer/hexmaze/internal/state"
	"os"
)

var ui = console.New(os.Stdout, console.Options{Color: true, ClearScreen: true, Center: true})

// SetupDisplay is called once, before the first update.
func SetupDisplay(game *state.Game) error {
	return ui.Setup(game)
}

// UpdateDisplay is called after every change of the game.
func UpdateDisplay(game *state.Game) {
	ui.Update(game)
}

// CleanupDisplay is called at the end of the game.
func CleanupDisplay(game *state.Game) {
	ui.Cleanup(game)
}

func main() {}
