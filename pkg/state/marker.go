package state

import (
	"sync/atomic"
)

// Marker records that a condition has been observed, such as a system call
// being unsupported on the running kernel. It is safe for concurrent usage.
// The zero value of Marker is unmarked.
type Marker struct {
	// storage is the underlying marker storage.
	storage atomic.Bool
}

// Mark idempotently marks the marker.
func (m *Marker) Mark() {
	m.storage.Store(true)
}

// Marked returns whether or not the marker is marked.
func (m *Marker) Marked() bool {
	return m.storage.Load()
}
