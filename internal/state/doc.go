// Package state provides the thread-safe snapshot store that mediates between
// background reads and the presentation layer.
//
// The Store holds exactly one Snapshot: the resolved attendance, time entries,
// and derived totals for the current query date. Readers get defensive copies;
// the single writer replaces the snapshot wholesale so partial aggregate
// states are never observable.
//
// Superseding is date-based. SetDate establishes which day the store is
// about; Update carries the day its results were fetched for and is dropped
// when the two no longer match. This guards against out-of-order completion
// when the user moves to another date while a read is still in flight.
package state
