package filters

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want Sort
	}{
		{"status.asc", Sort{Column: "status", Direction: "asc"}},
		{"eta.desc", Sort{Column: "eta", Direction: "desc"}},
		{"bogus", Sort{Column: "bogus", Direction: "desc"}},
		{"", Sort{Column: "mailed_at", Direction: "desc"}},
		{"account_id.sideways", Sort{Column: "account_id", Direction: "desc"}},
		{".asc", Sort{Column: "mailed_at", Direction: "asc"}},
		{"mailed_at.desc.extra", Sort{Column: "mailed_at", Direction: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSort(tt.raw))
		})
	}
}

func TestParseEmptyQuery(t *testing.T) {
	s := Parse(url.Values{})

	assert.Empty(t, s.AccountID)
	assert.Nil(t, s.Status)
	assert.Nil(t, s.LetterType)
	assert.Nil(t, s.From)
	assert.Nil(t, s.To)
	assert.Equal(t, DefaultSort(), s.Sort)
	assert.False(t, s.HasFilters())
}

func TestParseFullQuery(t *testing.T) {
	q := url.Values{
		"accountId":  {"ACC-00042"},
		"status":     {"shipped", "exception"},
		"letterType": {"Payment Reminder"},
		"from":       {"2024-01-01"},
		"to":         {"2024-03-31"},
		"sort":       {"status.asc"},
	}

	s := Parse(q)

	assert.Equal(t, "ACC-00042", s.AccountID)
	assert.Equal(t, []string{"shipped", "exception"}, s.Status)
	assert.Equal(t, []string{"Payment Reminder"}, s.LetterType)
	require.NotNil(t, s.From)
	require.NotNil(t, s.To)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *s.From)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), *s.To)
	assert.Equal(t, Sort{Column: "status", Direction: "asc"}, s.Sort)
	assert.True(t, s.HasFilters())
}

func TestParseMalformedDates(t *testing.T) {
	q := url.Values{
		"from": {"01/02/2024"},
		"to":   {"not-a-date"},
	}

	s := Parse(q)

	assert.Nil(t, s.From)
	assert.Nil(t, s.To)
}

func TestValuesOmitsAbsentAndDefaultSort(t *testing.T) {
	assert.Empty(t, Reset().Values())

	s := Reset().ToggleStatus("shipped")
	q := s.Values()
	assert.Equal(t, []string{"shipped"}, q["status"])
	assert.NotContains(t, q, "sort")
	assert.NotContains(t, q, "accountId")
}

func TestValuesRoundTrip(t *testing.T) {
	from := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	s := State{
		AccountID:  "ACC-00007",
		Status:     []string{"returned", "exception"},
		LetterType: []string{"Final Notice", "Welcome Letter"},
		From:       &from,
		Sort:       Sort{Column: "eta", Direction: "asc"},
	}

	assert.Equal(t, s, Parse(s.Values()))
}

func TestToggleRoundTrip(t *testing.T) {
	s := Reset()

	s = s.ToggleStatus("shipped")
	assert.Equal(t, []string{"shipped"}, s.Status)

	s = s.ToggleStatus("shipped")
	assert.Nil(t, s.Status)
	assert.NotContains(t, s.Values(), "status")
}

func TestTogglePreservesOthers(t *testing.T) {
	s := Reset().ToggleStatus("shipped").ToggleStatus("delivered").ToggleStatus("returned")
	s = s.ToggleStatus("delivered")
	assert.Equal(t, []string{"shipped", "returned"}, s.Status)

	s = s.ToggleLetterType("Final Notice")
	assert.Equal(t, []string{"Final Notice"}, s.LetterType)
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	orig := Reset().ToggleStatus("shipped")
	_ = orig.ToggleStatus("delivered")
	_ = orig.ToggleStatus("shipped")
	assert.Equal(t, []string{"shipped"}, orig.Status)
}

func TestReset(t *testing.T) {
	s := Parse(url.Values{
		"accountId": {"ACC-00001"},
		"status":    {"shipped"},
		"sort":      {"status.asc"},
	})
	require.True(t, s.HasFilters())

	s = Reset()
	assert.False(t, s.HasFilters())
	assert.Equal(t, DefaultSort(), s.Sort)
	assert.Empty(t, s.Values())
}
