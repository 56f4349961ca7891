package domain

import (
	"math"
	"time"
)

// StuckAfterDays is the generic staleness threshold: a shipped letter this
// many days past its ETA is flagged "stuck in transit" on the dashboard.
const StuckAfterDays = 20

// DeadlineResult is the outcome of evaluating a shipment against its
// letter's regulatory control deadline.
//
// DaysToViolation is nil when no deadline concept applies to the shipment.
// When non-nil it is the whole-day distance to (or past) the deadline;
// Overdue distinguishes the two directions. A deadline landing today yields
// {0, false}.
type DeadlineResult struct {
	DaysToViolation *int `json:"days_to_violation"`
	Overdue         bool `json:"overdue"`
}

// EvaluateDeadline derives the regulatory deadline state for a shipment.
//
// The deadline applies only when the status is shipped or exception, the
// letter has been mailed, and the letter template carries a control day
// count. The comparison is date-only: both the deadline and "today" are
// truncated to midnight UTC, so time of day never shifts the result.
//
// Callers inject today explicitly; this function never reads the clock.
func EvaluateDeadline(status LetterStatus, mailedAt *time.Time, controlDayCount *int, today time.Time) DeadlineResult {
	if status != StatusShipped && status != StatusException {
		return DeadlineResult{}
	}
	if mailedAt == nil || controlDayCount == nil {
		return DeadlineResult{}
	}

	deadline := atMidnightUTC(*mailedAt).AddDate(0, 0, *controlDayCount)
	signed := int(math.Ceil(deadline.Sub(atMidnightUTC(today)).Hours() / 24))

	overdue := signed < 0
	days := signed
	if days < 0 {
		days = -days
	}
	return DeadlineResult{DaysToViolation: &days, Overdue: overdue}
}

// DeadlineSortKey maps a DeadlineResult onto a single ascending ordering:
// most-overdue, least-overdue, soonest-due, latest-due. The second return
// is false for inapplicable results, which sort after every applicable one.
func DeadlineSortKey(r DeadlineResult) (int, bool) {
	if r.DaysToViolation == nil {
		return 0, false
	}
	if r.Overdue {
		return -*r.DaysToViolation, true
	}
	return *r.DaysToViolation, true
}

// LessByDeadline orders two results per DeadlineSortKey, inapplicable last.
func LessByDeadline(a, b DeadlineResult) bool {
	ka, aok := DeadlineSortKey(a)
	kb, bok := DeadlineSortKey(b)
	if aok != bok {
		return aok
	}
	return ka < kb
}

// StuckInTransit reports whether a shipment should carry the "stuck" badge:
// shipped and at least StuckAfterDays full days past its ETA. This is a
// presentation heuristic independent of any regulatory deadline; the two
// signals must not be conflated.
func StuckInTransit(status LetterStatus, eta *time.Time, today time.Time) bool {
	if status != StatusShipped || eta == nil {
		return false
	}
	daysPastEta := int(math.Floor(today.Sub(*eta).Hours() / 24))
	return daysPastEta >= StuckAfterDays
}

func atMidnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
