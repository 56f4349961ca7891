package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/ignite/letter-tracker/internal/domain"
	"github.com/ignite/letter-tracker/internal/filters"
	"github.com/ignite/letter-tracker/internal/service/shipments"
)

// ShipmentRepo implements shipments.Repository against PostgreSQL.
type ShipmentRepo struct{ db *sql.DB }

// NewShipmentRepo creates a Postgres-backed shipments repository.
func NewShipmentRepo(db *sql.DB) *ShipmentRepo { return &ShipmentRepo{db: db} }

const shipmentColumns = `al.id, al.account_id, al.letter_id, al.address,
	       al.mailed_at, al.eta, al.status, al.created_at,
	       l.name, l.description, l.category, l.control_id, l.control_day_count`

// sortColumns is the allow-list mapping sort parameter names to ORDER BY
// expressions. Anything not listed falls back to the default sort.
var sortColumns = map[string]string{
	"mailed_at":   "al.mailed_at",
	"account_id":  "al.account_id",
	"letter_name": "l.name",
	"status":      statusRankCase(),
	"eta":         "al.eta",
	"created_at":  "al.created_at",
}

// statusRankCase builds the CASE expression that orders statuses by their
// fixed display precedence instead of alphabetically.
func statusRankCase() string {
	var b strings.Builder
	b.WriteString("CASE al.status")
	for rank, status := range domain.StatusesByRank {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", status, rank)
	}
	b.WriteString(" END")
	return b.String()
}

// buildWhere translates the filter state into a conjunction of SQL
// conditions. Absent filters contribute nothing; every present filter
// narrows the set. Argument placeholders start at $1.
func buildWhere(f filters.State) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.AccountID != "" {
		conds = append(conds, "al.account_id ILIKE "+next("%"+f.AccountID+"%"))
	}
	if f.Status != nil {
		conds = append(conds, "al.status = ANY("+next(pq.Array(f.Status))+")")
	}
	if f.LetterType != nil {
		conds = append(conds, "l.name = ANY("+next(pq.Array(f.LetterType))+")")
	}
	if f.From != nil {
		conds = append(conds, "al.mailed_at >= "+next(*f.From))
	}
	if f.To != nil {
		// Inclusive calendar upper bound: strictly before the next day.
		conds = append(conds, "al.mailed_at < "+next(f.To.AddDate(0, 0, 1)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy resolves the sort through the allow-list. Nullable columns sort
// NULLS FIRST ascending and NULLS LAST descending, so unmailed letters
// cluster at the same end either way.
func orderBy(s filters.Sort) string {
	expr, ok := sortColumns[s.Column]
	if !ok {
		expr = sortColumns[filters.DefaultSortColumn]
		s.Direction = filters.DefaultSortDirection
	}
	if s.Direction == filters.DirAsc {
		return " ORDER BY " + expr + " ASC NULLS FIRST, al.id ASC"
	}
	return " ORDER BY " + expr + " DESC NULLS LAST, al.id ASC"
}

func buildListQuery(f filters.State) (string, []interface{}) {
	where, args := buildWhere(f)
	q := "SELECT " + shipmentColumns + `
	FROM account_letters al
	JOIN letters l ON l.id = al.letter_id` + where + orderBy(f.Sort)
	return q, args
}

func (r *ShipmentRepo) ListJoined(ctx context.Context, f filters.State) ([]domain.Shipment, error) {
	q, args := buildListQuery(f)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	var out []domain.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return out, nil
}

func (r *ShipmentRepo) Get(ctx context.Context, id int64) (*domain.Shipment, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+shipmentColumns+`
	FROM account_letters al
	JOIN letters l ON l.id = al.letter_id
	WHERE al.id = $1`, id)

	s, err := scanShipment(row)
	if err == sql.ErrNoRows {
		return nil, shipments.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanShipment(row scanner) (*domain.Shipment, error) {
	s := &domain.Shipment{}
	err := row.Scan(
		&s.ID, &s.AccountID, &s.LetterID, &s.Address,
		&s.MailedAt, &s.ETA, &s.Status, &s.CreatedAt,
		&s.LetterName, &s.LetterDescription, &s.LetterCategory,
		&s.ControlID, &s.ControlDayCount,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ShipmentRepo) EventsFor(ctx context.Context, ids []int64) (map[int64][]domain.TrackingEvent, error) {
	out := make(map[int64][]domain.TrackingEvent)
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_letter_id, status, location, occurred_at
		FROM tracking_events
		WHERE account_letter_id = ANY($1)
		ORDER BY occurred_at ASC, id ASC
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev domain.TrackingEvent
		if err := rows.Scan(&ev.ID, &ev.AccountLetterID, &ev.Status, &ev.Location, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan tracking event: %w", err)
		}
		out[ev.AccountLetterID] = append(out[ev.AccountLetterID], ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	return out, nil
}

func (r *ShipmentRepo) StatusCounts(ctx context.Context, f filters.State) (map[domain.LetterStatus]int, error) {
	where, args := buildWhere(f)
	q := `SELECT al.status, COUNT(*)
	FROM account_letters al
	JOIN letters l ON l.id = al.letter_id` + where + ` GROUP BY al.status`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("count shipments: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.LetterStatus]int)
	for rows.Next() {
		var status domain.LetterStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count shipments: %w", err)
	}
	return out, nil
}
