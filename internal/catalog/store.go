package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/cureplus/website/internal/domain"
	"github.com/fsnotify/fsnotify"
)

// Store hands out the current Catalog snapshot. Snapshots are immutable; a
// reload swaps in a whole new snapshot so readers never observe a partial
// update.
type Store struct {
	current atomic.Pointer[Catalog]
	loader  *Loader
}

// NewStore creates a Store serving c. The loader is used by Reload and Watch
// and may be nil when the store never reloads.
func NewStore(c *Catalog, loader *Loader) *Store {
	s := &Store{loader: loader}
	s.current.Store(c)
	return s
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Rewrites returns the rewrite table of the current snapshot.
func (s *Store) Rewrites() []domain.Rewrite {
	return s.Catalog().Rewrites()
}

// Reload re-reads path and swaps the snapshot. On error the previous
// snapshot stays in place.
func (s *Store) Reload(path string) error {
	if s.loader == nil {
		return fmt.Errorf("catalog store has no loader")
	}
	c, err := s.loader.Load(path)
	if err != nil {
		return err
	}
	s.current.Store(c)
	return nil
}

// Watch reloads the dataset whenever the file at path changes, until ctx is
// cancelled. The directory is watched rather than the file so editors that
// save by rename keep triggering reloads.
func (s *Store) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create dataset watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	target := filepath.Clean(path)
	slog.Info("Watching hospital dataset for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Reload(target); err != nil {
				slog.Error("Hospital dataset reload failed, keeping previous snapshot", "path", target, "error", err)
				continue
			}
			slog.Info("Hospital dataset reloaded", "path", target, "hospitals", s.Catalog().Len())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Dataset watcher error", "error", err)
		}
	}
}
