// Package pf provides an HTTP client for the ProjectFacts time-tracking API.
//
// # Overview
//
// The client covers three concerns: exchanging user credentials for a
// long-lived access token (CreateToken), resolving one day's attendance
// window (Attendance), and resolving one day's booked time entries
// (TimeEntries). Every read follows the same two-phase protocol the server
// exposes: GET a collection endpoint filtered by date and worker, then GET
// the detail endpoint per returned item id.
//
// # Authentication
//
// Authenticated requests carry an Authorization header of the form
//
//	Basic base64("{tokenId}:{secret}")
//
// built from the stored token. The header is constructed in one place;
// callers never assemble it themselves. An incomplete token fails with
// ErrInvalidCredentials before any request is sent.
//
// # Error handling
//
// Failures are classified, not retried:
//
//   - non-2xx HTTP status: *StatusError with code and raw body
//   - transport failure (DNS, TLS, timeout): wrapped and propagated
//   - JSON shape mismatch: *DecodeError with the cause preserved
//
// Phase-two failures differ by resolver. The attendance path has a single
// reference and surfaces them, except that an undecodable detail body means
// the server has no record for that day and resolves to an absent state.
// The time path skips a failing item and keeps the rest of the day intact.
//
// Retry and re-authentication policy belongs to the caller.
package pf
