// Package store implements the observable project store: the single owner
// of all project records and the mutation + notification gateway.
package store

import (
	"pboard/internal/model"
)

// Listener is a callback invoked with a full snapshot of the record
// sequence whenever the store's data changes. Only side effects are
// consumed; there is no return value. Listeners stay registered for the
// lifetime of the store (no unsubscribe).
type Listener func(records []model.Record)

// Store owns the canonical ordered sequence of project records
// (insertion order == creation order, never reordered) and the listener
// registry. Construct exactly one per process and pass it by reference to
// every component that needs it.
//
// Store is not safe for concurrent use. All mutations must happen on a
// single goroutine; mutating the store from inside a listener during a
// broadcast panics.
type Store struct {
	prefix    string
	nextID    int
	records   []model.Record
	listeners []Listener

	// broadcasting guards against re-entrant mutation from listeners.
	broadcasting bool
}

// New creates an empty store. Record IDs are issued as <prefix>-NN.
func New(prefix string) *Store {
	return &Store{
		prefix: prefix,
		nextID: 1,
	}
}

// AddProject creates a new record with a fresh unique ID and active
// status, appends it to the end of the sequence, and broadcasts.
//
// Input validation is the form collaborator's responsibility and happens
// before this is called; AddProject performs none.
func (s *Store) AddProject(title, description string, effort int) {
	s.checkReentry()

	rec := model.Record{
		ID:          model.FormatRecordID(s.prefix, s.nextID),
		Title:       title,
		Description: description,
		Effort:      effort,
		Status:      model.StatusActive,
	}
	s.nextID++
	s.records = append(s.records, rec)
	s.broadcast()
}

// MoveProject changes the status of the record with the given ID.
//
// An unknown ID is not exceptional in this design: the call is a silent
// no-op with no broadcast. Likewise, moving a record to the status it
// already has is a no-op with no broadcast, so redundant drops never
// cause duplicate notifications.
func (s *Store) MoveProject(id string, status model.Status) {
	s.checkReentry()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if s.records[i].Status == status {
			return
		}
		s.records[i].Status = status
		s.broadcast()
		return
	}
}

// AddListener appends fn to the registry. There is no de-duplication:
// registering the same function twice yields two invocations per
// broadcast.
func (s *Store) AddListener(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns an independent copy of the full current sequence.
// Callers may mutate the result freely.
func (s *Store) Snapshot() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// Find returns a copy of the record with the given ID, looked up fresh.
// The second return value reports whether it was found.
func (s *Store) Find(id string) (model.Record, bool) {
	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], true
		}
	}
	return model.Record{}, false
}

// broadcast invokes every registered listener, in registration order,
// synchronously, each with its own independent snapshot. It completes
// before control returns to the mutating caller.
func (s *Store) broadcast() {
	s.broadcasting = true
	defer func() { s.broadcasting = false }()

	for _, fn := range s.listeners {
		fn(s.Snapshot())
	}
}

// checkReentry panics if a mutation is attempted while a broadcast is in
// flight. The store has exactly one writer; a listener calling back into
// it would observe a half-notified registry, so the misuse is rejected
// loudly instead of left undefined.
func (s *Store) checkReentry() {
	if s.broadcasting {
		panic("store: re-entrant mutation during broadcast")
	}
}
