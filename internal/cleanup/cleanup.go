// Package cleanup guarantees removal of run-scoped temporary resources on every exit path.
package cleanup

import (
	"os"
	"sync"
)

// Registry records temporary files and directories created during a run and
// removes them on release. It replaces ambient trap-style cleanup: callers
// register every temp resource they create and the CLI releases the registry
// on success, fatal error, and signal alike.
type Registry struct {
	mu      sync.Mutex
	handles []*Handle
}

// Handle releases a single registered resource. Release is idempotent.
type Handle struct {
	once sync.Once
	path string
}

// Release removes the resource from disk. Non-empty directories are left in
// place: a holding directory that still has content mid-move must never be
// deleted, only reported.
func (h *Handle) Release() {
	h.once.Do(func() {
		_ = os.Remove(h.path)
	})
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register records path for removal and returns its Handle. Callers may
// release individual handles early; ReleaseAll covers the rest.
func (r *Registry) Register(path string) *Handle {
	h := &Handle{path: path}
	r.mu.Lock()
	r.handles = append(r.handles, h)
	r.mu.Unlock()
	return h
}

// ReleaseAll releases every registered resource, newest first.
func (r *Registry) ReleaseAll() {
	r.mu.Lock()
	handles := make([]*Handle, len(r.handles))
	copy(handles, r.handles)
	r.handles = r.handles[:0]
	r.mu.Unlock()

	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].Release()
	}
}
