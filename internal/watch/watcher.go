// Package watch re-runs a callback whenever a file's modification time
// changes, using a fixed-interval polling loop. Polling is deliberate: the
// refresh is low-frequency and a single-threaded sleep-check-invoke loop is
// all the feature needs.
package watch

import (
	"context"
	"os"
	"time"
)

// Watcher polls one file's modification timestamp and invokes a callback
// when it changes. The first successful poll always counts as a change, so
// an initial invocation happens as soon as the file is readable.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func() error

	// OnPollError, if set, is called when a poll cycle cannot stat the
	// file (editors briefly remove files mid-save). The loop continues.
	OnPollError func(error)

	lastMod time.Time
	seen    bool
}

// New returns a Watcher for path that calls onChange on every detected
// modification, polling every interval.
func New(path string, interval time.Duration, onChange func() error) *Watcher {
	return &Watcher{path: path, interval: interval, onChange: onChange}
}

// Run polls until ctx is canceled or onChange returns an error. A canceled
// context is normal termination and returns nil; an onChange error is fatal
// and returned as-is.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.poll(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *Watcher) poll() error {
	info, err := os.Stat(w.path)
	if err != nil {
		if w.OnPollError != nil {
			w.OnPollError(err)
		}
		return nil
	}
	mod := info.ModTime()
	if w.seen && mod.Equal(w.lastMod) {
		return nil
	}
	w.lastMod = mod
	w.seen = true
	return w.onChange()
}
