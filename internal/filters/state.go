package filters

import (
	"net/url"
	"time"
)

// Query parameter names — the wire contract shared with the frontend.
const (
	ParamAccountID  = "accountId"
	ParamStatus     = "status"
	ParamLetterType = "letterType"
	ParamFrom       = "from"
	ParamTo         = "to"
	ParamSort       = "sort"
)

// dateLayout is the ISO calendar date used by the from/to parameters.
// No time component; parsed dates are midnight UTC.
const dateLayout = "2006-01-02"

// State holds the active dashboard filters and sort.
//
// Zero values mean "absent": empty AccountID, nil slices and nil date
// bounds impose no constraint. Sort's zero value is normalized to the
// default by Parse; construct State via Parse or start from Reset() to
// avoid an empty Sort.
type State struct {
	AccountID  string     `json:"account_id,omitempty"`
	Status     []string   `json:"status,omitempty"`
	LetterType []string   `json:"letter_type,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	Sort       Sort       `json:"sort"`
}

// Parse derives a State from raw query parameters. Malformed values never
// produce an error: unparseable dates resolve to absent and the sort
// resolves through ParseSort's defaults.
func Parse(q url.Values) State {
	s := State{
		AccountID: q.Get(ParamAccountID),
		Sort:      ParseSort(q.Get(ParamSort)),
	}
	if vals := q[ParamStatus]; len(vals) > 0 {
		s.Status = append([]string(nil), vals...)
	}
	if vals := q[ParamLetterType]; len(vals) > 0 {
		s.LetterType = append([]string(nil), vals...)
	}
	s.From = parseDate(q.Get(ParamFrom))
	s.To = parseDate(q.Get(ParamTo))
	return s
}

// Values encodes the State back into query parameters. Absent filters emit
// no parameter at all, and the default sort is omitted, so cleared filters
// produce a clean URL instead of a trail of empty params.
func (s State) Values() url.Values {
	q := url.Values{}
	if s.AccountID != "" {
		q.Set(ParamAccountID, s.AccountID)
	}
	for _, v := range s.Status {
		q.Add(ParamStatus, v)
	}
	for _, v := range s.LetterType {
		q.Add(ParamLetterType, v)
	}
	if s.From != nil {
		q.Set(ParamFrom, s.From.Format(dateLayout))
	}
	if s.To != nil {
		q.Set(ParamTo, s.To.Format(dateLayout))
	}
	if !s.Sort.IsDefault() && s.Sort != (Sort{}) {
		q.Set(ParamSort, s.Sort.String())
	}
	return q
}

// HasFilters reports whether any filter (not sort) is active.
func (s State) HasFilters() bool {
	return s.AccountID != "" || len(s.Status) > 0 || len(s.LetterType) > 0 ||
		s.From != nil || s.To != nil
}

// ToggleStatus adds value to the status filter if absent, removes it if
// present. An empty result collapses to nil — absent, not an empty list.
func (s State) ToggleStatus(value string) State {
	s.Status = toggle(s.Status, value)
	return s
}

// ToggleLetterType behaves like ToggleStatus for the letter-type filter.
func (s State) ToggleLetterType(value string) State {
	s.LetterType = toggle(s.LetterType, value)
	return s
}

// Reset returns a State with every filter absent and the default sort.
func Reset() State {
	return State{Sort: DefaultSort()}
}

func toggle(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			out := append(append([]string(nil), values[:i]...), values[i+1:]...)
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
	return append(append([]string(nil), values...), value)
}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
