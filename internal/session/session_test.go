package session

import (
	"testing"
	"time"

	"github.com/andre0707/pfterm/internal/pf"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 4, 23, hour, minute, 0, 0, time.UTC)
}

func TestCompute_FullDay(t *testing.T) {
	att := &pf.Attendance{
		Begin: at(8, 24),
		End:   at(17, 24),
		Break: time.Hour,
	}
	entries := []pf.TimeEntry{
		{ID: 1, Duration: 60 * time.Minute, Billable: 45 * time.Minute, Description: "This is a test item entry"},
		{ID: 2, Duration: 22 * time.Minute, Billable: 22 * time.Minute, Description: "Here is some description"},
		{ID: 3, Duration: 45 * time.Minute, Billable: 45 * time.Minute, Description: "Dev. new awesome app"},
	}

	totals := Compute(att, entries, at(23, 0))

	if totals.Total != 127*time.Minute {
		t.Fatalf("Total = %v, want 127m", totals.Total)
	}
	if totals.Billable != 112*time.Minute {
		t.Fatalf("Billable = %v, want 112m", totals.Billable)
	}
	// (17:24 - 08:24) - 127m booked - 60m break = 540 - 127 - 60 = 353m.
	if !totals.HasUnbooked || totals.Unbooked != 353*time.Minute {
		t.Fatalf("Unbooked = %v (has %v), want 353m", totals.Unbooked, totals.HasUnbooked)
	}
	if !totals.Login.Equal(at(8, 24)) || !totals.Logout.Equal(at(17, 24)) {
		t.Fatalf("window = %v..%v", totals.Login, totals.Logout)
	}
	if totals.Break != time.Hour {
		t.Fatalf("Break = %v, want 1h", totals.Break)
	}
}

func TestCompute_StillLoggedInUsesNow(t *testing.T) {
	att := &pf.Attendance{Begin: at(9, 0)}
	entries := []pf.TimeEntry{{ID: 1, Duration: 30 * time.Minute}}

	totals := Compute(att, entries, at(11, 0))
	if totals.Unbooked != 90*time.Minute {
		t.Fatalf("Unbooked = %v, want 90m", totals.Unbooked)
	}
	if !totals.Logout.IsZero() {
		t.Fatalf("Logout = %v, want zero while logged in", totals.Logout)
	}
}

func TestCompute_UnbookedClampsToZero(t *testing.T) {
	// Booked duration exceeds the elapsed time since login.
	att := &pf.Attendance{Begin: at(9, 0)}
	entries := []pf.TimeEntry{{ID: 1, Duration: 5 * time.Hour}}

	totals := Compute(att, entries, at(10, 0))
	if !totals.HasUnbooked {
		t.Fatal("HasUnbooked = false, want true with a login time present")
	}
	if totals.Unbooked != 0 {
		t.Fatalf("Unbooked = %v, want exactly 0", totals.Unbooked)
	}
}

func TestCompute_NoAttendanceMeansUnavailable(t *testing.T) {
	entries := []pf.TimeEntry{{ID: 1, Duration: 30 * time.Minute, Billable: 30 * time.Minute}}

	totals := Compute(nil, entries, at(10, 0))
	if totals.HasUnbooked {
		t.Fatal("HasUnbooked = true, want false without a login time")
	}
	if totals.Unbooked != 0 {
		t.Fatalf("Unbooked = %v, want 0", totals.Unbooked)
	}
	// Entry sums are independent of attendance.
	if totals.Total != 30*time.Minute || totals.Billable != 30*time.Minute {
		t.Fatalf("sums = %v/%v, want 30m/30m", totals.Total, totals.Billable)
	}
}

func TestCompute_EmptyDay(t *testing.T) {
	totals := Compute(nil, nil, at(10, 0))
	if totals.Total != 0 || totals.Billable != 0 || totals.HasUnbooked {
		t.Fatalf("totals = %#v, want all zero and unavailable", totals)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	att := &pf.Attendance{Begin: at(8, 0), Break: 45 * time.Minute}
	entries := []pf.TimeEntry{
		{ID: 1, Duration: 60 * time.Minute, Billable: 30 * time.Minute},
		{ID: 2, Duration: 15 * time.Minute, Billable: 15 * time.Minute},
	}
	now := at(12, 0)

	first := Compute(att, entries, now)
	second := Compute(att, entries, now)

	if first.Total != second.Total ||
		first.Billable != second.Billable ||
		first.Unbooked != second.Unbooked ||
		first.HasUnbooked != second.HasUnbooked ||
		!first.Login.Equal(second.Login) ||
		!first.Logout.Equal(second.Logout) ||
		first.Break != second.Break {
		t.Fatalf("Compute not deterministic:\n%#v\n%#v", first, second)
	}
}
