package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ignite/letter-tracker/internal/domain"
	"github.com/ignite/letter-tracker/internal/service/letters"
)

// LetterRepo implements letters.Repository against PostgreSQL.
type LetterRepo struct{ db *sql.DB }

// NewLetterRepo creates a Postgres-backed letter catalog repository.
func NewLetterRepo(db *sql.DB) *LetterRepo { return &LetterRepo{db: db} }

const letterColumns = `id, name, description, category, business_unit,
	       created_by, control_id, control_day_count, is_active, created_at`

func (r *LetterRepo) List(ctx context.Context) ([]domain.Letter, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+letterColumns+`
	FROM letters
	ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	defer rows.Close()

	var out []domain.Letter
	for rows.Next() {
		var l domain.Letter
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Description, &l.Category, &l.BusinessUnit,
			&l.CreatedBy, &l.ControlID, &l.ControlDayCount, &l.IsActive, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan letter: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	return out, nil
}

func (r *LetterRepo) Get(ctx context.Context, id int64) (*domain.Letter, error) {
	l := &domain.Letter{}
	err := r.db.QueryRowContext(ctx, "SELECT "+letterColumns+`
	FROM letters
	WHERE id = $1`, id).Scan(
		&l.ID, &l.Name, &l.Description, &l.Category, &l.BusinessUnit,
		&l.CreatedBy, &l.ControlID, &l.ControlDayCount, &l.IsActive, &l.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, letters.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get letter: %w", err)
	}
	return l, nil
}

func (r *LetterRepo) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT name FROM letters ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list letter names: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan letter name: %w", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list letter names: %w", err)
	}
	return out, nil
}
