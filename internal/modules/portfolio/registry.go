package portfolio

import (
	"errors"
	"sync"

	"github.com/aristath/fundfolio/internal/modules/aggregation"
	"github.com/google/uuid"
)

// ErrSnapshotNotFound is returned for an id that was never registered.
var ErrSnapshotNotFound = errors.New("portfolio snapshot not found")

// Registry keeps compiled snapshots in memory, keyed by a generated id.
// Snapshots are immutable once stored; the lock only guards the map.
type Registry struct {
	mu        sync.RWMutex
	snapshots map[string]*aggregation.Snapshot
	order     []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{snapshots: make(map[string]*aggregation.Snapshot)}
}

// Put stores snap and returns its new id.
func (r *Registry) Put(snap *aggregation.Snapshot) string {
	id := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[id] = snap
	r.order = append(r.order, id)
	return id
}

// Get returns the snapshot stored under id.
func (r *Registry) Get(id string) (*aggregation.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.snapshots[id]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return snap, nil
}

// IDs returns all ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of stored snapshots.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.snapshots)
}
