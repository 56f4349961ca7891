package filters

import "strings"

// Sort directions. Only these two values ever appear in a parsed Sort.
const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

// Default sort applied when the sort parameter is absent or empty.
const (
	DefaultSortColumn    = "mailed_at"
	DefaultSortDirection = DirDesc
)

// Sort is a parsed sort specification: a column name and a direction.
// Column is not validated here — the query builder resolves it through its
// allow-list and falls back to the default for unknown names.
type Sort struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

// DefaultSort returns the dashboard default, mailed_at descending.
func DefaultSort() Sort {
	return Sort{Column: DefaultSortColumn, Direction: DefaultSortDirection}
}

// IsDefault reports whether s equals the default sort.
func (s Sort) IsDefault() bool {
	return s == DefaultSort()
}

// String encodes the sort as "<column>.<direction>".
func (s Sort) String() string {
	return s.Column + "." + s.Direction
}

// ParseSort parses a "<column>.<direction>" string. It never fails:
// a missing column falls back to mailed_at and a missing or invalid
// direction falls back to desc. Unknown column names pass through
// unchanged so the query builder owns the allow-list decision.
func ParseSort(raw string) Sort {
	column, direction, _ := strings.Cut(raw, ".")
	if column == "" {
		column = DefaultSortColumn
	}
	if direction != DirAsc && direction != DirDesc {
		direction = DefaultSortDirection
	}
	return Sort{Column: column, Direction: direction}
}
