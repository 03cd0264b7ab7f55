package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/andre0707/pfterm/internal/pf"
	"github.com/andre0707/pfterm/internal/session"
)

// Snapshot represents the latest resolved data for the current query date.
type Snapshot struct {
	Date        time.Time
	Attendance  *pf.Attendance
	Entries     []pf.TimeEntry
	Totals      session.Totals
	LastUpdated time.Time
	LastError   error
}

// Store coordinates concurrent updates to the snapshot. It is single-writer,
// multi-reader. Every update is tagged with the date it was resolved for;
// once SetDate moves to a new date, results still in flight for the old one
// are discarded rather than overwriting current state.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetDate establishes the query date. Moving to a different day clears all
// derived state so a stale aggregate never shows under the new date.
func (s *Store) SetDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if SameDay(s.snapshot.Date, date) {
		return
	}
	s.snapshot = Snapshot{Date: date}
}

// Update replaces the snapshot wholesale with the results of a read for date.
// It reports whether the update was applied; a read superseded by a later
// SetDate is discarded.
func (s *Store) Update(date time.Time, att *pf.Attendance, entries []pf.TimeEntry, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !SameDay(s.snapshot.Date, date) {
		return false
	}
	cloned := cloneEntries(entries)
	s.snapshot = Snapshot{
		Date:        s.snapshot.Date,
		Attendance:  att,
		Entries:     cloned,
		Totals:      session.Compute(att, cloned, time.Now()),
		LastUpdated: time.Now(),
		LastError:   err,
	}
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	snap.Totals.Entries = cloneEntries(s.snapshot.Totals.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func cloneEntries(entries []pf.TimeEntry) []pf.TimeEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]pf.TimeEntry, len(entries))
	copy(dup, entries)
	return dup
}
