package letters

import (
	"context"

	"github.com/ignite/letter-tracker/internal/domain"
)

// Repository defines the data access contract for the letter catalog.
// Implementations must be safe for concurrent use.
type Repository interface {
	// List returns every letter template, newest first.
	List(ctx context.Context) ([]domain.Letter, error)

	// Get returns a single letter. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.Letter, error)

	// Names returns the distinct letter names in alphabetical order.
	Names(ctx context.Context) ([]string, error)
}
