package metrics

import (
	"sync"
	"time"
)

type storageStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters for storage operations and depth
// chart mutations, and forwards everything to OpenTelemetry when configured.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu        sync.Mutex
	storage   map[string]*storageStats
	mutations map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		storage:   make(map[string]*storageStats),
		mutations: make(map[string]int),
		otel:      otel,
	}
}

// RecordStorageOp counts one backend call (load, save, list) for resource.
func (r *Recorder) RecordStorageOp(op, resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.storage[op]
	if !ok {
		stats = &storageStats{}
		r.storage[op] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStorageOp(op, resource, duration, err)
	}
}

// RecordMutation counts a depth chart mutation (add, remove, upsert_player)
// and whether it succeeded.
func (r *Recorder) RecordMutation(op string, err error) {
	if r == nil {
		return
	}
	if err == nil {
		r.mu.Lock()
		r.mutations[op]++
		r.mu.Unlock()
	}
	if r.otel != nil {
		r.otel.recordMutation(op, err)
	}
}

// Snapshot returns a copy of the current stats for a storage operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.storage[op]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// StorageCalls returns the total attempts recorded for a storage operation.
func (r *Recorder) StorageCalls(op string) int {
	return r.Snapshot(op).Calls
}

// StorageErrors returns the failed attempts recorded for a storage operation.
func (r *Recorder) StorageErrors(op string) int {
	return r.Snapshot(op).Errors
}

// Mutations returns the successful mutations recorded for op.
func (r *Recorder) Mutations(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutations[op]
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
