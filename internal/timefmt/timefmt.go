// Package timefmt provides display formatting for clock times and durations.
package timefmt

import (
	"fmt"
	"time"
)

// Clock formats t as a 24h clock time, or "-" for the zero time.
func Clock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("15:04")
}

// Day formats t as yyyy-mm-dd.
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}

// Minutes formats d as whole minutes like "60 min", or "-" for zero.
func Minutes(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d min", int(d.Minutes()))
}

// Duration formats d as a human-readable string like "1h 40m", "45m" or "30s".
func Duration(d time.Duration) string {
	seconds := int64(d.Seconds())
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// HHMM formats d as HH:MM.
func HHMM(d time.Duration) string {
	minutes := int64(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
