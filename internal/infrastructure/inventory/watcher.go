package inventory

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the inventory file must settle before a reload
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a FileRegistry when its inventory file changes.
// It watches the parent directory so editors that replace the file on save
// are still observed.
type Watcher struct {
	registry *FileRegistry
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
	events   chan struct{}

	mu      sync.Mutex
	pending time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for the registry's inventory file
func NewWatcher(registry *FileRegistry, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{
		registry: registry,
		watcher:  fw,
		logger:   logger,
		debounce: debounce,
		events:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Events signals after each successful reload. Signals coalesce when the
// consumer falls behind.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.registry.Path())
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Debug("Watching inventory", zap.String("dir", dir))

	go w.run(ctx)
	return nil
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 4)
	defer ticker.Stop()

	target := filepath.Clean(w.registry.Path())

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Inventory watcher error", zap.Error(err))
		case <-ticker.C:
			w.flush()
		}
	}
}

// flush reloads once the last change has settled past the debounce window
func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	if err := w.registry.Reload(); err != nil {
		w.logger.Warn("Inventory reload failed, keeping previous snapshot", zap.Error(err))
		return
	}
	w.logger.Info("Inventory reloaded", zap.String("path", w.registry.Path()))

	select {
	case w.events <- struct{}{}:
	default:
	}
}
