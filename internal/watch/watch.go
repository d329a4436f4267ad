// Package watch reruns an action when a markdown file or directory changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces editor save bursts into one event.
const DefaultDebounce = 200 * time.Millisecond

// ErrWatch indicates the watcher could not be set up.
var ErrWatch = errors.New("cannot watch")

// Options configures Watch.
type Options struct {
	Debounce time.Duration
	Logger   *zerolog.Logger // nil discards
}

// Watch calls onChange with the changed path each time target changes.
// A file target matches only itself; a directory target matches the .md
// files directly inside it. The parent directory is watched so that
// editors which save by rename are still seen.
//
// Watch blocks until ctx is cancelled, then returns nil.
func Watch(ctx context.Context, target string, opt Options, onChange func(path string)) error {
	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}

	dir, match := filepath.Dir(abs), func(name string) bool { return name == abs }
	if info.IsDir() {
		dir = abs
		match = func(name string) bool {
			return filepath.Dir(name) == abs && strings.EqualFold(filepath.Ext(name), ".md")
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWatch, dir, err)
	}

	debounce := opt.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	log.Debug().Str("path", abs).Dur("debounce", debounce).Msg("watching")

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(ev.Name)
			if !match(name) || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Trace().Str("path", name).Str("op", ev.Op.String()).Msg("change")
			pending = name
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")

		case <-fire:
			fire = nil
			onChange(pending)
		}
	}
}
