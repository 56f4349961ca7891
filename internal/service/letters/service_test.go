package letters_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ignite/letter-tracker/internal/domain"
	"github.com/ignite/letter-tracker/internal/service/letters"
)

// memRepo is an in-memory catalog repository for unit testing.
type memRepo struct {
	mu        sync.Mutex
	list      []domain.Letter
	nameCalls int
}

func (m *memRepo) List(_ context.Context) ([]domain.Letter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Letter(nil), m.list...), nil
}

func (m *memRepo) Get(_ context.Context, id int64) (*domain.Letter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.list {
		if l.ID == id {
			cp := l
			return &cp, nil
		}
	}
	return nil, letters.ErrNotFound
}

func (m *memRepo) Names(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nameCalls++
	seen := map[string]struct{}{}
	var out []string
	for _, l := range m.list {
		if _, ok := seen[l.Name]; !ok {
			seen[l.Name] = struct{}{}
			out = append(out, l.Name)
		}
	}
	return out, nil
}

func sp(s string) *string { return &s }

func catalog() []domain.Letter {
	return []domain.Letter{
		{ID: 1, Name: "Payment Reminder", Category: sp("Collections"), BusinessUnit: sp("Retail"), IsActive: true},
		{ID: 2, Name: "Final Notice", Category: sp("Collections"), BusinessUnit: sp("Retail"), IsActive: true},
		{ID: 3, Name: "Welcome Letter", Category: sp("Onboarding"), BusinessUnit: sp("Commercial"), IsActive: false},
	}
}

func TestNamesWithoutCache(t *testing.T) {
	repo := &memRepo{list: catalog()}
	svc := letters.NewService(repo, nil)

	names, err := svc.Names(context.Background())
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %v", names)
	}

	svc.Names(context.Background())
	if repo.nameCalls != 2 {
		t.Fatalf("expected repo hit per call without cache, got %d", repo.nameCalls)
	}
}

func TestNamesCached(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := &memRepo{list: catalog()}
	svc := letters.NewService(repo, cache)

	first, err := svc.Names(context.Background())
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	second, err := svc.Names(context.Background())
	if err != nil {
		t.Fatalf("names (cached): %v", err)
	}

	if repo.nameCalls != 1 {
		t.Fatalf("expected a single repo hit, got %d", repo.nameCalls)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result diverged: %v vs %v", first, second)
	}
}

func TestNamesCacheDownIsBestEffort(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	repo := &memRepo{list: catalog()}
	svc := letters.NewService(repo, cache)

	names, err := svc.Names(context.Background())
	if err != nil {
		t.Fatalf("names should survive a dead cache: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %v", names)
	}
}

func TestInvalidateNames(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := &memRepo{list: catalog()}
	svc := letters.NewService(repo, cache)

	svc.Names(context.Background())
	svc.InvalidateNames(context.Background())
	svc.Names(context.Background())

	if repo.nameCalls != 2 {
		t.Fatalf("expected repo hit after invalidation, got %d", repo.nameCalls)
	}
}

func TestStats(t *testing.T) {
	svc := letters.NewService(&memRepo{list: catalog()}, nil)

	st, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Total != 3 || st.Active != 2 {
		t.Fatalf("totals off: %+v", st)
	}
	if st.Categories != 2 || st.BusinessUnits != 2 {
		t.Fatalf("distinct counts off: %+v", st)
	}
}

func TestGet(t *testing.T) {
	svc := letters.NewService(&memRepo{list: catalog()}, nil)

	l, err := svc.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.Name != "Final Notice" {
		t.Fatalf("wrong letter: %+v", l)
	}

	if _, err := svc.Get(context.Background(), 99); err != letters.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
