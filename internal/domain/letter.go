package domain

import "time"

// LetterStatus enumerates the lifecycle states of an account letter.
//
// not_sent is the initial state; shipped letters terminate in delivered or
// returned. exception is a terminal flag state used to mark a regulatory
// breach and can be set independently of the carrier lifecycle.
type LetterStatus string

const (
	StatusNotSent   LetterStatus = "not_sent"
	StatusShipped   LetterStatus = "shipped"
	StatusDelivered LetterStatus = "delivered"
	StatusReturned  LetterStatus = "returned"
	StatusException LetterStatus = "exception"
)

// StatusRank is the fixed display precedence used when sorting by status.
// Lower rank sorts first ascending. This is a contract, not alphabetical
// order: attention-demanding states come first.
var StatusRank = map[LetterStatus]int{
	StatusException: 0,
	StatusShipped:   1,
	StatusDelivered: 2,
	StatusReturned:  3,
	StatusNotSent:   4,
}

// StatusesByRank lists every status in rank order. Kept alongside StatusRank
// so SQL CASE expressions and UI pickers iterate deterministically.
var StatusesByRank = []LetterStatus{
	StatusException,
	StatusShipped,
	StatusDelivered,
	StatusReturned,
	StatusNotSent,
}

// Valid reports whether s is a member of the closed status set.
func (s LetterStatus) Valid() bool {
	_, ok := StatusRank[s]
	return ok
}

// Letter is a template/category of correspondence. Letters are created by
// catalog administration and are immutable from the tracking UI's
// perspective.
type Letter struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Description     *string    `json:"description" db:"description"`
	Category        *string    `json:"category" db:"category"`
	BusinessUnit    *string    `json:"business_unit" db:"business_unit"`
	CreatedBy       *string    `json:"created_by" db:"created_by"`
	ControlID       *string    `json:"control_id" db:"control_id"`
	ControlDayCount *int       `json:"control_day_count" db:"control_day_count"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// AccountLetter is one mailing of one letter template to one account.
//
// Invariant: MailedAt and ETA are both nil iff Status is not_sent; once
// mailed, ETA = MailedAt + 5 days exactly (EtaOffsetDays).
type AccountLetter struct {
	ID        int64        `json:"id" db:"id"`
	AccountID string       `json:"account_id" db:"account_id"`
	LetterID  int64        `json:"letter_id" db:"letter_id"`
	Address   *string      `json:"address" db:"address"`
	MailedAt  *time.Time   `json:"mailed_at" db:"mailed_at"`
	ETA       *time.Time   `json:"eta" db:"eta"`
	Status    LetterStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// EtaOffsetDays is the fixed delivery estimate applied when a letter is
// mailed: eta = mailed_at + 5 days.
const EtaOffsetDays = 5

// TrackingEvent is an immutable, append-only carrier observation for one
// shipment. Ascending occurred_at is the canonical order.
type TrackingEvent struct {
	ID              int64      `json:"id" db:"id"`
	AccountLetterID int64      `json:"account_letter_id" db:"account_letter_id"`
	Status          string     `json:"status" db:"status"`
	Location        *string    `json:"location" db:"location"`
	OccurredAt      time.Time  `json:"occurred_at" db:"occurred_at"`
}

// Shipment is the read model for the dashboard table: an account letter
// joined with its letter's metadata and its tracking events in ascending
// chronological order. TrackingEvents is never nil; a shipment with no
// events carries an empty slice.
type Shipment struct {
	AccountLetter
	LetterName        string          `json:"letter_name"`
	LetterDescription *string         `json:"letter_description"`
	LetterCategory    *string         `json:"letter_category"`
	ControlID         *string         `json:"control_id"`
	ControlDayCount   *int            `json:"control_day_count"`
	TrackingEvents    []TrackingEvent `json:"tracking_events"`
}
