package swagview

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goodluckxu-go/swagview/swagger"
)

var ErrAlreadyPublished = errors.New("swagview: handle already published")

// Registry holds handles under well known names. Every name is written once.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]any
}

func NewRegistry() *Registry {
	return &Registry{handles: map[string]any{}}
}

func (r *Registry) Publish(name string, handle any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handles == nil {
		r.handles = map[string]any{}
	}
	if _, ok := r.handles[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyPublished, name)
	}
	r.handles[name] = handle
	return nil
}

func (r *Registry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, ok := r.handles[name]
	return handle, ok
}

// UI returns the viewer published under HandleName
func (r *Registry) UI() (*swagger.UI, bool) {
	handle, ok := r.Lookup(HandleName)
	if !ok {
		return nil, false
	}
	ui, ok := handle.(*swagger.UI)
	return ui, ok
}

var global atomic.Pointer[Registry]

func init() {
	global.Store(NewRegistry())
}

// Global returns the process wide registry
func Global() *Registry {
	return global.Load()
}

// SetGlobal replaces the process wide registry and returns the previous one
func SetGlobal(r *Registry) *Registry {
	return global.Swap(r)
}
