package canvas

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// DefaultCapacity bounds registry growth when no explicit capacity is set.
const DefaultCapacity = 64

// Registry maps opaque canvas identifiers to live canvases for the pen
// workflow. It is owned by the session (CLI invocation or server process)
// rather than being package-global state.
//
// Lookups and lifecycle operations are mutex-guarded so distinct canvases
// can be used from separate goroutines; concurrent drawing on the same
// canvas is the caller's responsibility to serialize.
type Registry struct {
	mu       sync.Mutex
	capacity int
	canvases map[string]*Canvas
	order    []string // insertion order, oldest first
}

// NewRegistry creates a registry holding at most capacity live canvases.
// A non-positive capacity selects DefaultCapacity. When full, creating a
// canvas evicts the oldest one.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		capacity: capacity,
		canvases: make(map[string]*Canvas),
	}
}

// Create allocates a new canvas filled with bg, registers it under a fresh
// identifier, and returns it. Fails with INVALID_DIMENSION for non-positive
// dimensions, leaving the registry unchanged.
func (r *Registry) Create(w, h int, bg paint.Color) (*Canvas, error) {
	c, err := New(w, h, bg)
	if err != nil {
		return nil, err
	}
	c.id = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.canvases, oldest)
	}
	r.canvases[c.id] = c
	r.order = append(r.order, c.id)
	return c, nil
}

// Get returns the canvas registered under id.
// Fails with UNKNOWN_CANVAS if no such canvas exists.
func (r *Registry) Get(id string) (*Canvas, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.canvases[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownCanvas, "canvas %q does not exist; create one with pen_create_canvas first", id)
	}
	return c, nil
}

// Remove evicts the canvas registered under id, releasing its buffer.
// Removing an unknown id is a no-op and returns false.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.canvases[id]; !ok {
		return false
	}
	delete(r.canvases, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the number of live canvases.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.canvases)
}
