package shipments

import (
	"context"
	"time"

	"github.com/ignite/letter-tracker/internal/domain"
	"github.com/ignite/letter-tracker/internal/filters"
)

// View is one dashboard row: the shipment read model plus the derived
// deadline and transit fields the table renders.
type View struct {
	domain.Shipment
	domain.DeadlineResult
	StuckInTransit bool `json:"stuck_in_transit"`
}

// Stats summarizes the filtered shipment set for the dashboard cards.
type Stats struct {
	Total          int `json:"total"`
	NotSent        int `json:"not_sent"`
	Shipped        int `json:"shipped"`
	Delivered      int `json:"delivered"`
	Returned       int `json:"returned"`
	Exception      int `json:"exception"`
	Overdue        int `json:"overdue"`
	StuckInTransit int `json:"stuck_in_transit"`
}

// Service implements shipment read logic. All public methods are safe for
// concurrent use if the underlying repository is concurrency-safe.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a shipments service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the clock used for deadline evaluation.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns the dashboard rows matching the filter, with tracking
// history attached and derived fields computed. The result is never nil.
func (s *Service) List(ctx context.Context, f filters.State) ([]View, error) {
	rows, err := s.repo.ListJoined(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		// No rows means no event lookup either.
		return []View{}, nil
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	events, err := s.repo.EventsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	today := s.now()
	out := make([]View, len(rows))
	for i, r := range rows {
		r.TrackingEvents = events[r.ID]
		if r.TrackingEvents == nil {
			r.TrackingEvents = []domain.TrackingEvent{}
		}
		out[i] = View{
			Shipment:       r,
			DeadlineResult: domain.EvaluateDeadline(r.Status, r.MailedAt, r.ControlDayCount, today),
			StuckInTransit: domain.StuckInTransit(r.Status, r.ETA, today),
		}
	}
	return out, nil
}

// Get returns a single dashboard row with its full tracking history.
func (s *Service) Get(ctx context.Context, id int64) (*View, error) {
	row, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.EventsFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	row.TrackingEvents = events[id]
	if row.TrackingEvents == nil {
		row.TrackingEvents = []domain.TrackingEvent{}
	}

	today := s.now()
	return &View{
		Shipment:       *row,
		DeadlineResult: domain.EvaluateDeadline(row.Status, row.MailedAt, row.ControlDayCount, today),
		StuckInTransit: domain.StuckInTransit(row.Status, row.ETA, today),
	}, nil
}

// Stats aggregates the filtered set: per-status counts from the database,
// overdue and stuck counts derived row by row.
func (s *Service) Stats(ctx context.Context, f filters.State) (*Stats, error) {
	counts, err := s.repo.StatusCounts(ctx, f)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		NotSent:   counts[domain.StatusNotSent],
		Shipped:   counts[domain.StatusShipped],
		Delivered: counts[domain.StatusDelivered],
		Returned:  counts[domain.StatusReturned],
		Exception: counts[domain.StatusException],
	}
	st.Total = st.NotSent + st.Shipped + st.Delivered + st.Returned + st.Exception

	rows, err := s.repo.ListJoined(ctx, f)
	if err != nil {
		return nil, err
	}
	today := s.now()
	for _, r := range rows {
		if domain.EvaluateDeadline(r.Status, r.MailedAt, r.ControlDayCount, today).Overdue {
			st.Overdue++
		}
		if domain.StuckInTransit(r.Status, r.ETA, today) {
			st.StuckInTransit++
		}
	}
	return st, nil
}
