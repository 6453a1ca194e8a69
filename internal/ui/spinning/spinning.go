// Package spinning provides a spinning symbol with a progress counter, to use while a
// program is busy, and a handler for interruptions that restores the terminal.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

var (
	ThemeAscii = []rune(`|/-\`)
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeHex   = []rune("⬡⬢")
)

// SafeInterrupt captures SigInt (Ctrl+C) and SigTerm and calls onInterrupt.
// If the program hasn't exited after gracePeriod, it resets the terminal and exits.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset(os.Stdout)
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h\033[39;49;0m\n")
}

// Spinner displays a spinning symbol followed by a progress count, on a separate goroutine.
// It stops when Spinner.Done is called.
type Spinner struct {
	w        io.Writer
	theme    []rune
	label    string
	total    int64
	progress atomic.Int64

	wg     sync.WaitGroup
	cancel func()
}

// New starts a spinner writing to w, with the given label. If total > 0, the progress
// is shown as a fraction of total.
func New(ctx context.Context, w io.Writer, theme []rune, label string, total int) *Spinner {
	s := &Spinner{w: w, theme: theme, label: label, total: int64(total)}
	if len(s.theme) == 0 {
		s.theme = ThemeAscii
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		_, _ = fmt.Fprint(s.w, "\033[?25l")       // Hide cursor.
		defer fmt.Fprint(s.w, "\033[?25h\033[0K") // Restore cursor, clear line.
		for idx := 0; ; idx = (idx + 1) % len(s.theme) {
			s.print(s.theme[idx])
			select {
			case <-ctx.Done():
				s.print(' ')
				_, _ = fmt.Fprint(s.w, "\r")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

func (s *Spinner) print(symbol rune) {
	count := s.progress.Load()
	if s.total > 0 {
		_, _ = fmt.Fprintf(s.w, "\r%c %s %d/%d", symbol, s.label, count, s.total)
	} else {
		_, _ = fmt.Fprintf(s.w, "\r%c %s %d", symbol, s.label, count)
	}
}

// Add to the progress count. It is safe to call concurrently.
func (s *Spinner) Add(n int) {
	s.progress.Add(int64(n))
}

// Progress returns the current progress count.
func (s *Spinner) Progress() int {
	return int(s.progress.Load())
}

// Done stops the spinner and waits for its goroutine to finish.
func (s *Spinner) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
