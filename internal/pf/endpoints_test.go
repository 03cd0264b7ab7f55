package pf

import (
	"net/http"
	"testing"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"items": [
			{"caption": "Days", "href": "/api/day/", "value": 1},
			{"caption": "Times", "href": "/api/time/", "value": 2}
		]}`))
	}))

	resources, err := c.Endpoints(testContext(t))
	if err != nil {
		t.Fatalf("Endpoints returned error: %v", err)
	}
	if len(resources) != 2 {
		t.Fatalf("len(resources) = %d, want 2", len(resources))
	}
	if resources[0].Caption != "Days" || resources[0].Href != "/api/day/" {
		t.Fatalf("resources[0] = %#v", resources[0])
	}
}

func TestTicketDescription(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ticket/333" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"description": "<p>fix the importer</p>"}`))
	}))

	description, err := c.TicketDescription(testContext(t), 333)
	if err != nil {
		t.Fatalf("TicketDescription returned error: %v", err)
	}
	if description != "<p>fix the importer</p>" {
		t.Fatalf("description = %q", description)
	}
}

func TestTicketDescription_MissingField(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	description, err := c.TicketDescription(testContext(t), 333)
	if err != nil {
		t.Fatalf("TicketDescription returned error: %v", err)
	}
	if description != "" {
		t.Fatalf("description = %q, want empty", description)
	}
}
