package cashbook

import (
	"log"
	"sync"
)

// SaveQueue serializes document saves through a single writer goroutine.
//
// Every mutation enqueues a snapshot of the document; the queue drains in
// enqueue order, so the data file always ends up holding the most recent
// enqueued state and two rapid mutations can no longer race their writes.
type SaveQueue struct {
	store *Store
	jobs  chan *Document
	done  chan struct{}

	mu  sync.Mutex
	err error // first write failure, kept for Close
}

// NewSaveQueue starts the writer goroutine for the given store.
func NewSaveQueue(store *Store) *SaveQueue {
	q := &SaveQueue{
		store: store,
		jobs:  make(chan *Document, 16),
		done:  make(chan struct{}),
	}
	go q.drain()
	return q
}

// Enqueue schedules a save of the document. The document is deep-copied
// before the call returns, so the caller may keep mutating it.
func (q *SaveQueue) Enqueue(doc *Document) {
	q.jobs <- doc.Clone()
}

func (q *SaveQueue) drain() {
	defer close(q.done)
	for doc := range q.jobs {
		if err := q.store.Save(doc); err != nil {
			log.Printf("warning: could not save ledger: %v", err)
			q.mu.Lock()
			if q.err == nil {
				q.err = err
			}
			q.mu.Unlock()
		}
	}
}

// Close flushes pending saves and stops the writer. It returns the first
// write error encountered, if any. The queue must not be used after Close.
func (q *SaveQueue) Close() error {
	close(q.jobs)
	<-q.done
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}
