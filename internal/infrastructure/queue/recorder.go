package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/parcelpro/tracking-service/internal/api/metrics"
	"github.com/parcelpro/tracking-service/internal/core/domain"
)

const (
	defaultWorkers   = 4
	channelBuffer    = 256
	collectionEvents = "status_events"
	insertTimeout    = 10 * time.Second
)

type auditEntry struct {
	trackingNumber string
	event          domain.TrackingEvent
}

// Recorder persists applied tracking events to the status_events audit
// collection asynchronously. Entries are sharded onto a fixed set of
// workers by consistent hashing on the tracking number, preserving
// per-parcel ordering of the audit trail. Audit failures are logged,
// never surfaced to the request path.
type Recorder struct {
	workers []chan auditEntry
	db      *mongo.Database
	log     zerolog.Logger
}

// NewRecorder creates a Recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRecorder(numWorkers int, db *mongo.Database, log zerolog.Logger) *Recorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Recorder{
		workers: make([]chan auditEntry, numWorkers),
		db:      db,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan auditEntry, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Record enqueues an applied event for the audit trail. When the shard's
// buffer is full the entry is dropped with a warning: the primary record
// in the parcel's history is already durable.
func (r *Recorder) Record(trackingNumber string, event domain.TrackingEvent) {
	idx := r.shardIndex(trackingNumber)
	select {
	case r.workers[idx] <- auditEntry{trackingNumber: trackingNumber, event: event}:
		metrics.AuditQueueDepth.WithLabelValues(fmt.Sprint(idx)).Set(float64(len(r.workers[idx])))
	default:
		r.log.Warn().
			Str("tracking_number", trackingNumber).
			Int("worker_id", idx).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps a tracking number deterministically to a worker index.
func (r *Recorder) shardIndex(trackingNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingNumber))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Recorder) runWorker(ctx context.Context, id int, ch <-chan auditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(fmt.Sprint(id)).Set(float64(len(ch)))
			if err := r.insert(entry); err != nil {
				r.log.Error().Err(err).
					Str("tracking_number", entry.trackingNumber).
					Int("worker_id", id).
					Msg("audit insert failed")
			}
		}
	}
}

func (r *Recorder) insert(entry auditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()

	doc := bson.M{
		"tracking_number": entry.trackingNumber,
		"status":          string(entry.event.Status),
		"location":        entry.event.Location,
		"description":     entry.event.Description,
		"timestamp":       entry.event.Timestamp.UTC(),
		"recorded_at":     time.Now().UTC(),
	}
	_, err := r.db.Collection(collectionEvents).InsertOne(ctx, doc)
	return err
}
