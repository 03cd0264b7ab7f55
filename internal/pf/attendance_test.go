package pf

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"
)

var testDate = time.Date(2024, 4, 23, 0, 0, 0, 0, time.UTC)

func TestAttendance_ResolvesRecord(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/day/":
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{"items": [{"value": 17, "caption": "Tuesday"}]}`))
		case "/api/day/17":
			_, _ = w.Write([]byte(`{"begin": "2024-04-23T08:24:00.000+00:00", "end": "2024-04-23T17:24:00.000+00:00", "sumBreak": 60}`))
		default:
			http.NotFound(w, r)
		}
	}))

	att, err := c.Attendance(testContext(t), testDate)
	if err != nil {
		t.Fatalf("Attendance returned error: %v", err)
	}
	if att == nil {
		t.Fatal("Attendance returned nil record")
	}

	if gotQuery.Get("date") != "2024-04-23" {
		t.Fatalf("date query = %q, want 2024-04-23", gotQuery.Get("date"))
	}
	if gotQuery.Get("worker") != "77" {
		t.Fatalf("worker query = %q, want 77", gotQuery.Get("worker"))
	}

	wantBegin := time.Date(2024, 4, 23, 8, 24, 0, 0, time.UTC)
	if !att.Begin.Equal(wantBegin) {
		t.Fatalf("Begin = %v, want %v", att.Begin, wantBegin)
	}
	wantEnd := time.Date(2024, 4, 23, 17, 24, 0, 0, time.UTC)
	if !att.End.Equal(wantEnd) {
		t.Fatalf("End = %v, want %v", att.End, wantEnd)
	}
	if att.Break != time.Hour {
		t.Fatalf("Break = %v, want 1h (60 server minutes)", att.Break)
	}
	if att.LoggedIn() {
		t.Fatal("LoggedIn() = true with an end time present")
	}
}

func TestAttendance_MissingEndMeansLoggedIn(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/day/":
			_, _ = w.Write([]byte(`{"items": [{"value": 17}]}`))
		case "/api/day/17":
			_, _ = w.Write([]byte(`{"begin": "2024-04-23T08:24:00.000+00:00", "sumBreak": 30}`))
		default:
			http.NotFound(w, r)
		}
	}))

	att, err := c.Attendance(testContext(t), testDate)
	if err != nil {
		t.Fatalf("Attendance returned error: %v", err)
	}
	if att == nil || !att.LoggedIn() {
		t.Fatalf("att = %#v, want a still-logged-in record", att)
	}
	if att.Break != 30*time.Minute {
		t.Fatalf("Break = %v, want 30m", att.Break)
	}
}

func TestAttendance_EmptyListingIsInvalidLogin(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))

	if _, err := c.Attendance(testContext(t), testDate); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("error = %v, want ErrInvalidLogin", err)
	}
}

func TestAttendance_MissingItemsFieldIsInvalidLogin(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	if _, err := c.Attendance(testContext(t), testDate); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("error = %v, want ErrInvalidLogin", err)
	}
}

func TestAttendance_UndecodableDetailMeansNoRecord(t *testing.T) {
	t.Parallel()

	for name, detail := range map[string]string{
		"not json":      `<html>maintenance</html>`,
		"missing begin": `{"sumBreak": 0}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/api/day/":
					_, _ = w.Write([]byte(`{"items": [{"value": 17}]}`))
				case "/api/day/17":
					_, _ = w.Write([]byte(detail))
				default:
					http.NotFound(w, r)
				}
			}))

			att, err := c.Attendance(testContext(t), testDate)
			if err != nil {
				t.Fatalf("Attendance returned error: %v, want absent record", err)
			}
			if att != nil {
				t.Fatalf("att = %#v, want nil", att)
			}
		})
	}
}

func TestAttendance_BadBeginTimestampIsInvalidLogin(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/day/":
			_, _ = w.Write([]byte(`{"items": [{"value": 17}]}`))
		case "/api/day/17":
			_, _ = w.Write([]byte(`{"begin": "yesterday morning", "sumBreak": 0}`))
		default:
			http.NotFound(w, r)
		}
	}))

	if _, err := c.Attendance(testContext(t), testDate); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("error = %v, want ErrInvalidLogin", err)
	}
}
