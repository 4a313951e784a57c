// Package registry tracks registered vehicles and detection log
// entries. The pipeline core only ever sees the Registry and Log
// contracts; implementations own whatever storage the deployment uses.
package registry

import (
	"sync"
	"time"

	"github.com/Kru5hna/SecureGate/internal/plate"
)

// Vehicle is one registered vehicle.
type Vehicle struct {
	Plate string
	Owner string
	Kind  string
}

// Registry answers whether a plate is registered. Lookups are keyed by
// canonical plate text, so callers may pass raw or formatted strings.
type Registry interface {
	Lookup(plateText string) (Vehicle, bool)
}

// Entry is one detection log record.
type Entry struct {
	Plate       string
	Confidence  float64
	Registered  bool
	ArtifactRef string
	DetectedAt  time.Time
}

// Log appends detection events.
type Log interface {
	Append(Entry) error
}

// MemoryRegistry is a map-backed Registry safe for concurrent use.
type MemoryRegistry struct {
	mu       sync.RWMutex
	vehicles map[string]Vehicle
}

// NewMemoryRegistry builds a registry pre-populated with vehicles.
func NewMemoryRegistry(vehicles ...Vehicle) *MemoryRegistry {
	r := &MemoryRegistry{vehicles: make(map[string]Vehicle, len(vehicles))}
	for _, v := range vehicles {
		r.Add(v)
	}
	return r
}

// Add registers a vehicle, canonicalizing its plate text.
func (r *MemoryRegistry) Add(v Vehicle) {
	key := plate.Clean(v.Plate)
	if key == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[key] = v
}

// Lookup reports the vehicle registered under plateText, if any.
func (r *MemoryRegistry) Lookup(plateText string) (Vehicle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[plate.Clean(plateText)]
	return v, ok
}

// MemoryLog keeps detection entries in memory, newest last.
type MemoryLog struct {
	mu      sync.Mutex
	entries []Entry
}

// Append records one detection event, stamping it if the caller did not.
func (l *MemoryLog) Append(e Entry) error {
	if e.DetectedAt.IsZero() {
		e.DetectedAt = time.Now()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	return nil
}

// Entries returns a copy of the recorded events.
func (l *MemoryLog) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
