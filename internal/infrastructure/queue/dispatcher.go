package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/gymcore/admin-console/internal/core/domain"
	"github.com/gymcore/admin-console/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher decouples audit writes from request handling: entries are routed
// to a fixed set of workers using consistent hashing on the resource name,
// guaranteeing per-resource write ordering while keeping mutations fast.
// It implements ports.AuditRepository so handlers never know writes are async.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	sink    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers draining
// into sink. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues one audit entry to the worker responsible for its resource.
// The call is non-blocking up to channelBuffer capacity and never fails the
// surrounding request.
func (d *Dispatcher) Record(_ context.Context, entry domain.AuditEntry) error {
	d.workers[d.shardIndex(entry.Resource)] <- entry
	return nil
}

// shardIndex maps a resource name deterministically to a worker index.
func (d *Dispatcher) shardIndex(resource string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resource))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Record(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("resource", entry.Resource).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
