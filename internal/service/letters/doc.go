// Package letters implements the letter catalog read side: the template
// list, its summary stats, and the distinct-name lookup that feeds the
// dashboard's letter-type filter.
//
// The name lookup is the hottest read (every toolbar render) and changes
// rarely, so the service fronts it with a short-lived Redis cache when a
// client is configured. The cache is best effort: Redis being down never
// fails a request.
package letters
