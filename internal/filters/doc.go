// Package filters models the dashboard's URL-driven filter and sort state.
//
// The filter state is a pure value derived from query parameters on every
// navigation; it has no server-side persistence. The package provides the
// bidirectional mapping between the typed State and flat url.Values, plus
// the checkbox toggle semantics the toolbar relies on.
//
// The one rule that matters: an absent filter means "no constraint", and is
// always represented as a nil field, never as an empty string or empty
// slice. An empty slice would read as "match nothing" downstream.
package filters
