// Package session derives presentation-ready totals from one day's attendance
// record and time entries. It is pure; nothing here performs I/O.
package session

import (
	"time"

	"github.com/andre0707/pfterm/internal/pf"
)

// Totals is the derived aggregate for one day. It is always replaced as a
// unit, never patched field by field.
type Totals struct {
	Entries  []pf.TimeEntry
	Total    time.Duration
	Billable time.Duration

	Login  time.Time // zero when no attendance record exists
	Logout time.Time // zero while still logged in
	Break  time.Duration

	// Unbooked is the gap between the attended window and the booked time,
	// clamped at zero. HasUnbooked is false when no login time is known;
	// "unavailable" and "zero" are distinct states.
	Unbooked    time.Duration
	HasUnbooked bool
}

// Compute derives Totals from an attendance record (nil when absent) and the
// day's entries. now is consulted only while the user is still logged in, so
// the result is deterministic for a fixed now.
func Compute(att *pf.Attendance, entries []pf.TimeEntry, now time.Time) Totals {
	t := Totals{Entries: entries}
	for _, e := range entries {
		t.Total += e.Duration
		t.Billable += e.Billable
	}
	if att == nil {
		return t
	}

	t.Login = att.Begin
	t.Logout = att.End
	t.Break = att.Break

	end := att.End
	if end.IsZero() {
		end = now
	}
	unbooked := end.Sub(att.Begin) - t.Total - t.Break
	if unbooked < 0 {
		unbooked = 0
	}
	t.Unbooked = unbooked
	t.HasUnbooked = true
	return t
}
