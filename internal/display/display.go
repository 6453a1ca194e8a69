// Package display defines how the game is presented, and how display backends are selected.
//
// A display backend is notified when the game starts (Setup), after every change of
// state (Update) and when the game is over (Cleanup). Backends are either built-in,
// registered with Register, or external Go plugins (built with -buildmode=plugin)
// that export the symbols:
//
//	func SetupDisplay(game *state.Game) error
//	func UpdateDisplay(game *state.Game)
//	func CleanupDisplay(game *state.Game)
//
// Open selects the backend from a configuration string and returns a Handle that the
// owner of the game uses to drive it.
package display

import (
	"github.com/janpfeifer/hexmaze/internal/parameters"
	"github.com/janpfeifer/hexmaze/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"plugin"
	"slices"
)

// Display is anything that is able to present a game.
type Display interface {
	// Setup is called once, before the first Update. If it fails, the display is not used.
	Setup(game *state.Game) error

	// Update is called after every change of the game state.
	Update(game *state.Game)

	// Cleanup is called once at the end, if Setup succeeded.
	Cleanup(game *state.Game)
}

// Factory creates a display backend configured with the given parameters.
// It should consume the parameters it knows about with parameters.PopParamOr: left
// over parameters are reported as errors.
type Factory func(params parameters.Params) (Display, error)

var (
	// Registered built-in backends.
	registry = make(map[string]Factory)

	// ErrMalformedPlugin is returned (wrapped) by Open when a plugin loads but doesn't export
	// the display symbols with the expected types.
	ErrMalformedPlugin = errors.New("malformed display plugin")
)

// Register a built-in display backend, so it can be selected by name with Open.
// Backends usually register themselves in their package init.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Registered returns the sorted names of the registered backends.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Symbol names a display plugin must export.
const (
	SetupSymbol   = "SetupDisplay"
	UpdateSymbol  = "UpdateDisplay"
	CleanupSymbol = "CleanupDisplay"
)

// symbolLookup is the part of *plugin.Plugin used to find the display symbols.
type symbolLookup interface {
	Lookup(symName string) (plugin.Symbol, error)
}

// openPlugin opens the plugin in path. It can be replaced in tests.
var openPlugin = func(path string) (symbolLookup, error) {
	return plugin.Open(path)
}

// Open the display backend selected by config, in the format "name:key=value,...".
//
//   - An empty config selects no display: the returned handle is headless and skips all notifications.
//   - A registered name selects a built-in backend, created with its Factory and the given parameters.
//   - Any other name is taken as the path to a Go plugin. If the plugin can't be opened, a warning is
//     logged and a headless handle is returned. If it opens but doesn't export the display symbols,
//     an error wrapping ErrMalformedPlugin is returned.
func Open(config string) (*Handle, error) {
	name, params := parameters.Parse(config)
	if name == "" {
		klog.V(1).Info("No display configured, running headless")
		return &Handle{}, nil
	}

	if factory, found := registry[name]; found {
		d, err := factory(params)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create display %q", name)
		}
		if err = parameters.CheckAllUsed(params); err != nil {
			return nil, errors.WithMessagef(err, "display %q configuration %q", name, config)
		}
		klog.V(1).Infof("Using built-in display %q", name)
		return &Handle{name: name, display: d}, nil
	}

	if len(params) > 0 {
		klog.Warningf("Display plugin %q doesn't take parameters, ignoring %v", name, params)
	}
	p, err := openPlugin(name)
	if err != nil {
		klog.Warningf("Failed to open display plugin %q, running without display: %v", name, err)
		return &Handle{}, nil
	}
	d, err := lookupPluginDisplay(p)
	if err != nil {
		return nil, errors.WithMessagef(err, "display plugin %q", name)
	}
	klog.V(1).Infof("Using display plugin %q", name)
	return &Handle{name: name, display: d}, nil
}

// pluginDisplay implements Display with the functions exported by a plugin.
type pluginDisplay struct {
	setup   func(*state.Game) error
	update  func(*state.Game)
	cleanup func(*state.Game)
}

func (d *pluginDisplay) Setup(game *state.Game) error { return d.setup(game) }
func (d *pluginDisplay) Update(game *state.Game)      { d.update(game) }
func (d *pluginDisplay) Cleanup(game *state.Game)     { d.cleanup(game) }

// lookupPluginDisplay resolves the three display symbols: all of them are required.
func lookupPluginDisplay(p symbolLookup) (*pluginDisplay, error) {
	d := &pluginDisplay{}
	var err error
	if d.setup, err = lookupFunc[func(*state.Game) error](p, SetupSymbol); err != nil {
		return nil, err
	}
	if d.update, err = lookupFunc[func(*state.Game)](p, UpdateSymbol); err != nil {
		return nil, err
	}
	if d.cleanup, err = lookupFunc[func(*state.Game)](p, CleanupSymbol); err != nil {
		return nil, err
	}
	return d, nil
}

func lookupFunc[F any](p symbolLookup, name string) (fn F, err error) {
	sym, err := p.Lookup(name)
	if err != nil {
		err = errors.Wrapf(ErrMalformedPlugin, "missing symbol %q: %v", name, err)
		return
	}
	// Exported functions are looked up as function values, but accept also pointers to
	// function variables.
	switch typed := sym.(type) {
	case F:
		fn = typed
	case *F:
		if typed == nil {
			err = errors.Wrapf(ErrMalformedPlugin, "symbol %q is a nil pointer", name)
			return
		}
		fn = *typed
	default:
		err = errors.Wrapf(ErrMalformedPlugin, "symbol %q has type %T, wanted %T", name, sym, fn)
	}
	return
}
