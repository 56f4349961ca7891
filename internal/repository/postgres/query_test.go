package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/ignite/letter-tracker/internal/filters"
)

func TestBuildWhereEmptyFilter(t *testing.T) {
	where, args := buildWhere(filters.Reset())
	if where != "" {
		t.Fatalf("expected no WHERE clause, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildWhereConjunction(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	f := filters.State{
		AccountID:  "ACC-0",
		Status:     []string{"shipped", "exception"},
		LetterType: []string{"Final Notice"},
		From:       &from,
		To:         &to,
		Sort:       filters.DefaultSort(),
	}

	where, args := buildWhere(f)

	for _, want := range []string{
		"al.account_id ILIKE $1",
		"al.status = ANY($2)",
		"l.name = ANY($3)",
		"al.mailed_at >= $4",
		"al.mailed_at < $5",
	} {
		if !strings.Contains(where, want) {
			t.Errorf("WHERE missing %q:\n%s", want, where)
		}
	}
	if strings.Count(where, " AND ") != 4 {
		t.Errorf("expected 4 ANDs, got %q", where)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
	if args[0] != "%ACC-0%" {
		t.Errorf("account pattern = %v, want substring match", args[0])
	}
	// Upper bound is exclusive on the day after "to".
	if got := args[4].(time.Time); !got.Equal(to.AddDate(0, 0, 1)) {
		t.Errorf("to bound = %v, want %v", got, to.AddDate(0, 0, 1))
	}
}

func TestBuildWhereAbsentVsEmpty(t *testing.T) {
	// A nil status slice is "no constraint": no status condition at all.
	f := filters.Reset()
	f.AccountID = "ACC-00001"
	where, args := buildWhere(f)

	if strings.Contains(where, "al.status") {
		t.Errorf("absent status filter leaked into WHERE: %q", where)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
}

func TestOrderByAllowList(t *testing.T) {
	tests := []struct {
		sort filters.Sort
		want string
	}{
		{filters.Sort{Column: "mailed_at", Direction: "desc"}, " ORDER BY al.mailed_at DESC NULLS LAST, al.id ASC"},
		{filters.Sort{Column: "mailed_at", Direction: "asc"}, " ORDER BY al.mailed_at ASC NULLS FIRST, al.id ASC"},
		{filters.Sort{Column: "letter_name", Direction: "asc"}, " ORDER BY l.name ASC NULLS FIRST, al.id ASC"},
		{filters.Sort{Column: "eta", Direction: "desc"}, " ORDER BY al.eta DESC NULLS LAST, al.id ASC"},
		// Unknown columns fall back to the default sort entirely.
		{filters.Sort{Column: "drop table", Direction: "asc"}, " ORDER BY al.mailed_at DESC NULLS LAST, al.id ASC"},
	}

	for _, tt := range tests {
		if got := orderBy(tt.sort); got != tt.want {
			t.Errorf("orderBy(%+v) = %q, want %q", tt.sort, got, tt.want)
		}
	}
}

func TestOrderByStatusRank(t *testing.T) {
	got := orderBy(filters.Sort{Column: "status", Direction: "asc"})

	// Precedence order, not alphabetical: exception first, not_sent last.
	wantCase := "CASE al.status WHEN 'exception' THEN 0 WHEN 'shipped' THEN 1 WHEN 'delivered' THEN 2 WHEN 'returned' THEN 3 WHEN 'not_sent' THEN 4 END"
	if !strings.Contains(got, wantCase) {
		t.Errorf("status ORDER BY missing rank CASE:\n%s", got)
	}
	if !strings.HasSuffix(got, "ASC NULLS FIRST, al.id ASC") {
		t.Errorf("unexpected direction clause: %q", got)
	}
}

func TestBuildListQueryPlaceholderNumbering(t *testing.T) {
	f := filters.Reset().ToggleStatus("shipped")
	f.AccountID = "ACC"

	q, args := buildListQuery(f)

	if !strings.Contains(q, "$1") || !strings.Contains(q, "$2") {
		t.Errorf("placeholders not numbered sequentially:\n%s", q)
	}
	if strings.Contains(q, "$3") {
		t.Errorf("too many placeholders for 2 filters:\n%s", q)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if !strings.Contains(q, "JOIN letters l ON l.id = al.letter_id") {
		t.Errorf("missing letters join:\n%s", q)
	}
}
