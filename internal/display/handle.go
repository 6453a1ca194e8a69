package display

import (
	"github.com/janpfeifer/hexmaze/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Handle to an opened display, created by Open.
//
// A nil or headless Handle is valid: all its methods are no-ops.
type Handle struct {
	name           string
	display        Display
	setupSucceeded bool
	closed         bool
}

// Name of the backend (or plugin path), or "" for a headless handle.
func (h *Handle) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// Headless returns whether there is no display behind the handle, or it has already been closed.
func (h *Handle) Headless() bool {
	return h == nil || h.display == nil
}

// Setup the display. It returns an error if the backend setup failed, in which case
// Cleanup will not be called on Close.
func (h *Handle) Setup(game *state.Game) error {
	if h.Headless() {
		return nil
	}
	if h.setupSucceeded {
		klog.Warningf("display %q setup called twice, ignoring", h.name)
		return nil
	}
	if err := h.display.Setup(game); err != nil {
		return errors.WithMessagef(err, "failed to setup display %q", h.name)
	}
	h.setupSucceeded = true
	return nil
}

// Update the display with the current game state. It is skipped if Setup hasn't succeeded.
func (h *Handle) Update(game *state.Game) {
	if h.Headless() || !h.setupSucceeded {
		return
	}
	h.display.Update(game)
}

// Close calls the backend Cleanup, if Setup succeeded, and releases the display.
// It is safe to call more than once: only the first call has any effect.
//
// Notice Go plugins can't be unloaded: releasing a plugin only drops the references to its functions.
func (h *Handle) Close(game *state.Game) {
	if h == nil || h.closed {
		return
	}
	h.closed = true
	if h.display != nil && h.setupSucceeded {
		h.display.Cleanup(game)
	}
	if h.display != nil {
		klog.V(1).Infof("Display %q released", h.name)
	}
	h.display = nil
	h.setupSucceeded = false
}
