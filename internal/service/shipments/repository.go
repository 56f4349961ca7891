package shipments

import (
	"context"

	"github.com/ignite/letter-tracker/internal/domain"
	"github.com/ignite/letter-tracker/internal/filters"
)

// Repository defines the data access contract for shipments.
// Implementations must be safe for concurrent use.
type Repository interface {
	// ListJoined returns account letters joined with their letter metadata,
	// matching the filter state and ordered by its sort. TrackingEvents on
	// the returned rows is left nil; the service attaches history.
	ListJoined(ctx context.Context, f filters.State) ([]domain.Shipment, error)

	// Get returns a single shipment by account letter ID, without events.
	// Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.Shipment, error)

	// EventsFor returns the tracking events for the given account letter
	// IDs, grouped by account letter and in ascending occurred_at order
	// within each group.
	EventsFor(ctx context.Context, ids []int64) (map[int64][]domain.TrackingEvent, error)

	// StatusCounts returns the number of account letters per status,
	// restricted by the filter state (its sort is ignored).
	StatusCounts(ctx context.Context, f filters.State) (map[domain.LetterStatus]int, error)
}
