// Package store implements the resource store engine: a cached collection of
// one remote resource type plus request lifecycle flags, kept consistent with
// the upstream API through CRUD-shaped operations.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymcore/admin-console/internal/api/metrics"
)

// Operations binds a store to the upstream API calls for one resource.
type Operations[R, C, U any, K comparable] struct {
	List   func(ctx context.Context) ([]R, error)
	Get    func(ctx context.Context, id K) (R, error)
	Create func(ctx context.Context, req C) (R, error)
	Update func(ctx context.Context, id K, req U) error
	Delete func(ctx context.Context, id K) error
}

// Store owns the local cache for one resource. All state mutations are
// serialized by the mutex; overlapping operations are not queued or
// deduplicated, but a completion only lands if it belongs to the most recent
// invocation (sequence-number last-writer rule), so a slow stale response can
// never overwrite a newer one or leave the loading flag stuck.
type Store[R, C, U any, K comparable] struct {
	resource string
	identify func(R) K
	ops      Operations[R, C, U, K]
	log      zerolog.Logger

	mu       sync.Mutex
	items    []R
	selected *R
	loading  bool
	errMsg   string
	seq      uint64
}

// New builds a store for one resource. identify extracts the server-assigned
// identifier from a record.
func New[R, C, U any, K comparable](resource string, identify func(R) K, ops Operations[R, C, U, K], log zerolog.Logger) *Store[R, C, U, K] {
	return &Store[R, C, U, K]{
		resource: resource,
		identify: identify,
		ops:      ops,
		log:      log.With().Str("store", resource).Logger(),
	}
}

// begin opens an operation: bumps the sequence, raises the loading flag and
// clears the previous error. Returns the invocation's sequence number.
func (s *Store[R, C, U, K]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	s.errMsg = ""
	return s.seq
}

// settle closes an operation. apply runs under the lock only when this
// invocation is still the most recent one; stale completions are discarded
// and leave the loading flag to the invocation that superseded them.
// Reports whether the completion was applied.
func (s *Store[R, C, U, K]) settle(seq uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	if apply != nil {
		apply()
	}
	s.loading = false
	return true
}

// fail records a failure message for this invocation, same staleness rule.
func (s *Store[R, C, U, K]) fail(seq uint64, msg string, cause error) {
	s.log.Error().Err(cause).Str("error", msg).Msg("store operation failed")
	s.settle(seq, func() { s.errMsg = msg })
}

func (s *Store[R, C, U, K]) observe(operation string, start time.Time, outcome string) {
	metrics.StoreOperationsTotal.WithLabelValues(s.resource, operation, outcome).Inc()
	metrics.StoreOperationDuration.WithLabelValues(s.resource, operation).Observe(time.Since(start).Seconds())
}

// FetchAll replaces the collection wholesale with the upstream listing. On
// failure the collection is left untouched and the error message is set.
func (s *Store[R, C, U, K]) FetchAll(ctx context.Context) {
	start := time.Now()
	seq := s.begin()

	items, err := s.ops.List(ctx)
	if err != nil {
		s.fail(seq, fmt.Sprintf("failed to fetch %s", s.resource), err)
		s.observe("fetch_all", start, "failure")
		return
	}
	if s.settle(seq, func() { s.items = items }) {
		s.observe("fetch_all", start, "success")
	} else {
		s.observe("fetch_all", start, "superseded")
	}
}

// FetchOne loads a single record into the selection slot. The collection is
// never touched.
func (s *Store[R, C, U, K]) FetchOne(ctx context.Context, id K) {
	start := time.Now()
	seq := s.begin()

	record, err := s.ops.Get(ctx, id)
	if err != nil {
		s.fail(seq, fmt.Sprintf("failed to fetch %s record", s.resource), err)
		s.observe("fetch_one", start, "failure")
		return
	}
	if s.settle(seq, func() { s.selected = &record }) {
		s.observe("fetch_one", start, "success")
	} else {
		s.observe("fetch_one", start, "superseded")
	}
}

// Create submits a new record and appends the server's response (which carries
// the server-assigned identifier) at the end of the collection. Reports
// whether the upstream accepted the creation.
func (s *Store[R, C, U, K]) Create(ctx context.Context, req C) bool {
	start := time.Now()
	seq := s.begin()

	record, err := s.ops.Create(ctx, req)
	if err != nil {
		s.fail(seq, fmt.Sprintf("failed to create %s record", s.resource), err)
		s.observe("create", start, "failure")
		return false
	}
	if s.settle(seq, func() { s.items = append(s.items, record) }) {
		s.observe("create", start, "success")
	} else {
		s.observe("create", start, "superseded")
	}
	return true
}

// Update issues the update then refetches the record by id, because the
// upstream returns no body on PUT; only the refetched copy is trusted as the
// authoritative post-update state. If either call fails the collection is
// left exactly as it was (no partial patch) and false is returned.
func (s *Store[R, C, U, K]) Update(ctx context.Context, id K, req U) bool {
	start := time.Now()
	seq := s.begin()

	if err := s.ops.Update(ctx, id, req); err != nil {
		s.fail(seq, fmt.Sprintf("failed to update %s record", s.resource), err)
		s.observe("update", start, "failure")
		return false
	}

	fresh, err := s.ops.Get(ctx, id)
	if err != nil {
		// The upstream record did change; the local cache stays stale until
		// the next FetchAll. Classified as an update failure overall.
		s.fail(seq, fmt.Sprintf("failed to confirm %s update", s.resource), err)
		s.observe("update", start, "failure")
		return false
	}

	applied := s.settle(seq, func() {
		for i := range s.items {
			if s.identify(s.items[i]) == id {
				s.items[i] = fresh
				break
			}
		}
		if s.selected != nil && s.identify(*s.selected) == id {
			s.selected = &fresh
		}
	})
	if applied {
		s.observe("update", start, "success")
	} else {
		s.observe("update", start, "superseded")
	}
	return true
}

// Delete removes the matching record from the collection after the upstream
// confirms the deletion; a matching selection is cleared.
func (s *Store[R, C, U, K]) Delete(ctx context.Context, id K) bool {
	start := time.Now()
	seq := s.begin()

	if err := s.ops.Delete(ctx, id); err != nil {
		s.fail(seq, fmt.Sprintf("failed to delete %s record", s.resource), err)
		s.observe("delete", start, "failure")
		return false
	}
	applied := s.settle(seq, func() {
		kept := s.items[:0]
		for _, item := range s.items {
			if s.identify(item) != id {
				kept = append(kept, item)
			}
		}
		s.items = kept
		if s.selected != nil && s.identify(*s.selected) == id {
			s.selected = nil
		}
	})
	if applied {
		s.observe("delete", start, "success")
	} else {
		s.observe("delete", start, "superseded")
	}
	return true
}

// Items returns a copy of the cached collection in fetch order.
func (s *Store[R, C, U, K]) Items() []R {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]R, len(s.items))
	copy(out, s.items)
	return out
}

// Selected returns the focused record, if any.
func (s *Store[R, C, U, K]) Selected() (R, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		var zero R
		return zero, false
	}
	return *s.selected, true
}

// SetSelected focuses a record for edit, or clears the focus with nil.
// Purely local, no network effect.
func (s *Store[R, C, U, K]) SetSelected(record *R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record == nil {
		s.selected = nil
		return
	}
	clone := *record
	s.selected = &clone
}

// IsLoading reports whether a network operation is currently in flight.
func (s *Store[R, C, U, K]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, or "" when none is pending. The
// message sticks until ClearError or the next operation.
func (s *Store[R, C, U, K]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError dismisses the pending failure message.
func (s *Store[R, C, U, K]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
