// Package registry maps opaque window identifiers to their input trackers.
//
// The surrounding application owns the lifecycle: a tracker is created when
// a window opts into input tracking and destroyed when the window is
// deregistered. The registry guarantees exactly one tracker per window;
// registering an already-registered window returns the existing tracker
// untouched.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/inputtrack/internal/input"
)

// WindowID is an opaque window identifier (an HWND-like handle). The
// registry never interprets it.
type WindowID uintptr

// TrackerInfo describes a registration for diagnostics and logging.
type TrackerInfo struct {
	// Window is the registered window identifier.
	Window WindowID

	// InstanceID is a unique ID assigned at registration, used to
	// correlate log lines across a window's lifetime.
	InstanceID string

	// RegisteredAt is when the tracker was created.
	RegisteredAt time.Time
}

// entry pairs a tracker with its registration metadata.
type entry struct {
	tracker *input.Tracker
	info    TrackerInfo
}

// Registry is a concurrency-safe window-to-tracker map.
type Registry struct {
	mu      sync.RWMutex
	entries map[WindowID]*entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[WindowID]*entry),
	}
}

// Register creates a tracker for the window, or returns the existing one
// if the window is already registered. Tracker options apply only on
// creation.
func (r *Registry) Register(window WindowID, opts ...input.Option) *input.Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[window]; ok {
		return e.tracker
	}

	e := &entry{
		tracker: input.New(opts...),
		info: TrackerInfo{
			Window:       window,
			InstanceID:   uuid.NewString(),
			RegisteredAt: time.Now(),
		},
	}
	r.entries[window] = e
	return e.tracker
}

// Unregister removes the window's tracker. It reports whether a tracker
// was registered.
func (r *Registry) Unregister(window WindowID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[window]; !ok {
		return false
	}
	delete(r.entries, window)
	return true
}

// Lookup returns the tracker for a window.
func (r *Registry) Lookup(window WindowID) (*input.Tracker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[window]
	if !ok {
		return nil, false
	}
	return e.tracker, true
}

// Info returns the registration metadata for a window.
func (r *Registry) Info(window WindowID) (TrackerInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[window]
	if !ok {
		return TrackerInfo{}, false
	}
	return e.info, true
}

// Windows returns the registered window identifiers in ascending order.
func (r *Registry) Windows() []WindowID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]WindowID, 0, len(r.entries))
	for w := range r.entries {
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Each calls fn for every registered tracker. Used for applying
// configuration changes, e.g. a reloaded grace period.
func (r *Registry) Each(fn func(WindowID, *input.Tracker)) {
	r.mu.RLock()
	trackers := make(map[WindowID]*input.Tracker, len(r.entries))
	for w, e := range r.entries {
		trackers[w] = e.tracker
	}
	r.mu.RUnlock()

	for w, t := range trackers {
		fn(w, t)
	}
}
