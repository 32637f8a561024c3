package analytics

import (
	"sync"
	"time"

	"github.com/khanglvm/toolbelt/internal/storage"
	"go.uber.org/zap"
)

const (
	// eventQueueSize is the buffer size for the event queue.
	// If full, events are dropped (non-blocking).
	eventQueueSize = 1000

	// batchFlushSize is the number of events that triggers an immediate flush.
	batchFlushSize = 10

	// flushInterval is how often pending events are written.
	flushInterval = 50 * time.Millisecond
)

// Tracker records searches in the background with non-blocking writes.
type Tracker struct {
	storage    storage.Storage
	eventQueue chan SearchEvent
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	enabled    bool
	mu         sync.RWMutex
}

// NewTracker creates a tracker and starts its background flusher.
// If the storage fails to initialize, the tracker starts disabled.
func NewTracker(s storage.Storage) *Tracker {
	t := &Tracker{
		storage:    s,
		eventQueue: make(chan SearchEvent, eventQueueSize),
		stopChan:   make(chan struct{}),
		enabled:    s != nil,
	}

	if s != nil {
		if err := s.Init(); err != nil {
			zap.L().Warn("analytics storage initialization failed", zap.Error(err))
			t.enabled = false
		}
	}

	t.wg.Add(1)
	go t.processEvents()

	return t
}

// TrackSearch records that query returned resultCount results.
// It never blocks; when the queue is full the event is dropped.
func (t *Tracker) TrackSearch(query string, resultCount int) {
	t.Track(NewSearchEvent(query, resultCount))
}

// Track queues an event (non-blocking).
func (t *Tracker) Track(event SearchEvent) {
	if !t.IsEnabled() {
		return
	}

	select {
	case t.eventQueue <- event:
	default:
		zap.L().Warn("analytics queue full, dropping event", zap.String("search_id", event.SearchID))
	}
}

// Stop flushes queued events and stops the background goroutine.
// It is safe to call more than once.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
		t.wg.Wait()
	})
}

// Disable makes Track a no-op.
func (t *Tracker) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = false
}

// Enable resumes tracking. It has no effect without storage.
func (t *Tracker) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = t.storage != nil
}

// IsEnabled returns whether tracking is enabled.
func (t *Tracker) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

// QueueLength returns the number of events waiting to be flushed.
func (t *Tracker) QueueLength() int {
	return len(t.eventQueue)
}

// processEvents batches events and flushes them to storage.
func (t *Tracker) processEvents() {
	defer t.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]SearchEvent, 0, batchFlushSize)

	for {
		select {
		case event := <-t.eventQueue:
			batch = append(batch, event)
			if len(batch) >= batchFlushSize {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-t.stopChan:
			// Drain whatever is still queued, then exit.
			for {
				select {
				case event := <-t.eventQueue:
					batch = append(batch, event)
				default:
					t.flush(batch)
					return
				}
			}
		}
	}
}

// flush writes a batch of events to storage.
func (t *Tracker) flush(events []SearchEvent) {
	if len(events) == 0 || t.storage == nil {
		return
	}

	for _, event := range events {
		if err := t.storage.RecordSearch(event.ToStorage()); err != nil {
			zap.L().Warn("failed to record search", zap.String("search_id", event.SearchID), zap.Error(err))
		}
	}
}
