// Package sensor provides the opaque identity handle shared by all history
// entries that originate from the same logical sensor instance.
package sensor

import "github.com/google/uuid"

// Handle identifies one logical sensor instance. Every entry produced by a
// sensor carries the same handle, and consumers compare handles by identity
// only; the history store never inspects or owns the sensor behind it.
type Handle struct {
	id   uuid.UUID
	name string
}

// New issues a fresh handle for a sensor with the given display name.
// Two handles created with the same name are still distinct sensors.
func New(name string) *Handle {
	return &Handle{id: uuid.New(), name: name}
}

// ID returns the unique identity of this handle.
func (h *Handle) ID() uuid.UUID { return h.id }

// Name returns the display name given at creation.
func (h *Handle) Name() string { return h.name }

// Same reports whether h and o refer to the same sensor instance.
// A nil handle is the same only as another nil handle.
func (h *Handle) Same(o *Handle) bool {
	if h == nil || o == nil {
		return h == o
	}
	return h.id == o.id
}

// String returns the display name, or a placeholder for a nil handle.
func (h *Handle) String() string {
	if h == nil {
		return "<none>"
	}
	return h.name
}
