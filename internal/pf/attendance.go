package pf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// pfTimestampLayout is the fixed ISO-8601 profile the server uses for all
// timestamp fields in detail responses: explicit UTC offset, millisecond
// precision, locale-insensitive.
const pfTimestampLayout = "2006-01-02T15:04:05.000-07:00"

// Attendance is one calendar day's clock-in/out window. At most one record
// exists per user and date on the server.
type Attendance struct {
	Begin time.Time
	End   time.Time // zero while the user is still logged in
	Break time.Duration
}

// LoggedIn reports whether the user has not clocked out yet.
func (a Attendance) LoggedIn() bool { return a.End.IsZero() }

// dayDetail is the phase-two detail shape of the day endpoint. Pointer fields
// distinguish an absent key from a present zero value.
type dayDetail struct {
	Begin    *string `json:"begin"`
	End      *string `json:"end"`
	SumBreak int     `json:"sumBreak"` // minutes
}

// Attendance resolves the attendance record for date. A date with no
// references at all fails with ErrInvalidLogin. A detail body that does not
// carry the day shape returns (nil, nil): the server omits the record entirely
// for days without a clock-in, so an undecodable detail means "no attendance
// record", not a failure. This is the one deliberate exception to the
// decode-failure-is-fatal rule.
func (c *Client) Attendance(ctx context.Context, date time.Time) (*Attendance, error) {
	ids, err := c.listRefs(ctx, endpointDay, date)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrInvalidLogin
	}

	body, err := c.getBytes(ctx, &url.URL{Path: detailPath(endpointDay, ids[0])})
	if err != nil {
		return nil, err
	}

	var detail dayDetail
	if err := json.Unmarshal(body, &detail); err != nil || detail.Begin == nil {
		return nil, nil
	}

	begin, err := time.Parse(pfTimestampLayout, *detail.Begin)
	if err != nil {
		return nil, fmt.Errorf("%w: begin %q", ErrInvalidLogin, *detail.Begin)
	}
	att := &Attendance{
		Begin: begin,
		Break: time.Duration(detail.SumBreak) * time.Minute,
	}
	if detail.End != nil {
		// An unparsable end is treated like a missing one: still logged in.
		if end, err := time.Parse(pfTimestampLayout, *detail.End); err == nil {
			att.End = end
		}
	}
	return att, nil
}
