package pf

import (
	"context"
	"net/url"
	"path"
	"strconv"
	"time"
)

// apiDateLayout is the date-only format the collection endpoints accept. No
// time or timezone component is sent.
const apiDateLayout = "2006-01-02"

// itemRef is the lightweight reference the collection endpoints return per
// item. Only the numeric value (the detail endpoint id) is load-bearing; the
// remaining fields are carried for callers that display them.
type itemRef struct {
	Caption          string `json:"caption"`
	Title            string `json:"title"`
	Href             string `json:"href"`
	LastModifiedDate string `json:"lastModifiedDate"`
	Value            int    `json:"value"`
	IDKey            string `json:"idKey"`
}

// collectionResponse is the phase-one listing shape shared by all collection
// endpoints. A response without an items field decodes as an empty list; a day
// with nothing booked must not fail the call.
type collectionResponse struct {
	Items []itemRef `json:"items"`
}

// listRefs runs phase one of the list-then-detail protocol: query a collection
// endpoint for the given day and worker, returning the detail ids in server
// order.
func (c *Client) listRefs(ctx context.Context, resource string, date time.Time) ([]int, error) {
	values := url.Values{}
	values.Set("date", date.Format(apiDateLayout))
	values.Set("worker", strconv.Itoa(c.token.UserID))

	var payload collectionResponse
	if err := c.get(ctx, &url.URL{Path: resource, RawQuery: values.Encode()}, &payload); err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(payload.Items))
	for _, item := range payload.Items {
		ids = append(ids, item.Value)
	}
	return ids, nil
}

// detailPath returns the phase-two detail endpoint path for one collection item.
func detailPath(resource string, id int) string {
	return path.Join(resource, strconv.Itoa(id))
}
