package pf

import (
	"context"
	"net/url"
)

// Resource describes one API resource from the root listing.
type Resource struct {
	Caption string
	Href    string
}

// Endpoints lists the API resources available to the authenticated user.
func (c *Client) Endpoints(ctx context.Context) ([]Resource, error) {
	var payload collectionResponse
	if err := c.get(ctx, &url.URL{Path: endpointRoot}, &payload); err != nil {
		return nil, err
	}
	resources := make([]Resource, 0, len(payload.Items))
	for _, item := range payload.Items {
		resources = append(resources, Resource{Caption: item.Caption, Href: item.Href})
	}
	return resources, nil
}

type ticketDetail struct {
	Description *string `json:"description"`
}

// TicketDescription fetches the raw description text of a ticket. The returned
// string may contain HTML; it is passed through untouched.
func (c *Client) TicketDescription(ctx context.Context, ticketID int) (string, error) {
	var detail ticketDetail
	if err := c.get(ctx, &url.URL{Path: detailPath(endpointTicket, ticketID)}, &detail); err != nil {
		return "", err
	}
	if detail.Description == nil {
		return "", nil
	}
	return *detail.Description, nil
}
