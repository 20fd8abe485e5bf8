package inventory

import (
	"sync"

	"go.uber.org/zap"

	"tabsearch.dev/cli/internal/core/panel"
)

// FileRegistry is a panel.Registry backed by an inventory file.
// Snapshots are swapped atomically on Reload.
type FileRegistry struct {
	path   string
	logger *zap.Logger

	mu          sync.RWMutex
	descriptors []panel.Descriptor
}

// NewFileRegistry loads the inventory at path
func NewFileRegistry(path string, logger *zap.Logger) (*FileRegistry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &FileRegistry{path: path, logger: logger}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the inventory file path
func (r *FileRegistry) Path() string {
	return r.path
}

// Descriptors returns the current snapshot
func (r *FileRegistry) Descriptors() []panel.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]panel.Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Reload re-reads the inventory file. On error the previous snapshot is kept.
func (r *FileRegistry) Reload() error {
	descriptors, err := LoadFile(r.path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.descriptors = descriptors
	r.mu.Unlock()

	r.logger.Debug("Inventory loaded", zap.String("path", r.path), zap.Int("panels", len(descriptors)))
	return nil
}

var _ panel.Registry = (*FileRegistry)(nil)
