package valueobject

import (
	"errors"
	"time"
)

// DateRange is an optional, inclusive date window used to filter dated
// ledger events. A nil Start or End means the window is unbounded on
// that side; the zero DateRange matches every date.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange creates a DateRange, rejecting windows that end before
// they start.
func NewDateRange(start, end *time.Time) (DateRange, error) {
	if start != nil && end != nil && end.Before(*start) {
		return DateRange{}, errors.New("date range end before start")
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether date falls inside the window, inclusive on
// both ends.
func (r DateRange) Contains(date time.Time) bool {
	if r.Start != nil && date.Before(*r.Start) {
		return false
	}
	if r.End != nil && date.After(*r.End) {
		return false
	}
	return true
}

// IsUnbounded reports whether the range places no restriction at all
func (r DateRange) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}
