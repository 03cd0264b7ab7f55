package pf

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"time"
)

// TimeEntry is one booked time entry of a day. Ordering follows the server's
// collection listing; no client-side reordering happens.
type TimeEntry struct {
	ID          int
	Duration    time.Duration
	Billable    time.Duration
	Description string
	TicketID    int // 0 when no ticket is linked
}

// timeDetail is the phase-two detail shape of the time endpoint.
type timeDetail struct {
	Amount          int      `json:"amount"`         // minutes
	AmountBillable  int      `json:"amountBillable"` // minutes
	Description     string   `json:"description"`
	Begin           *string  `json:"begin"`
	End             *string  `json:"end"`
	ReferenceNumber *string  `json:"referenceNumber"`
	Date            string   `json:"date"`
	Ticket          *itemRef `json:"ticket"`
}

// TimeEntries resolves all booked time entries for date. Phase two runs for
// every reference in listing order. One detail fetch failing with an HTTP or
// transport error skips that entry and continues; one bad item must not void
// the whole day. A decode failure on the listing itself, or on a detail body
// that did arrive, is fatal.
func (c *Client) TimeEntries(ctx context.Context, date time.Time) ([]TimeEntry, error) {
	ids, err := c.listRefs(ctx, endpointTime, date)
	if err != nil {
		return nil, err
	}

	entries := make([]TimeEntry, 0, len(ids))
	for _, id := range ids {
		body, err := c.getBytes(ctx, &url.URL{Path: detailPath(endpointTime, id)})
		if err != nil {
			log.Printf("time entry %d skipped: %v", id, err)
			continue
		}
		var detail timeDetail
		if err := json.Unmarshal(body, &detail); err != nil {
			return nil, &DecodeError{Err: err}
		}
		entry := TimeEntry{
			ID:          id,
			Duration:    time.Duration(detail.Amount) * time.Minute,
			Billable:    time.Duration(detail.AmountBillable) * time.Minute,
			Description: detail.Description,
		}
		if detail.Ticket != nil {
			entry.TicketID = detail.Ticket.Value
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
