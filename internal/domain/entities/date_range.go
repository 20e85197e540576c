package entities

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive calendar-day window evaluated in UTC.
//
// From is the first instant of the first day. To is the first instant of the day
// after the last one, so membership is From <= t < To. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange reads a YYYY-MM-DD pair. Both empty means no range (nil).
func ParseDateRange(from, to string) (*DateRange, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" && to == "" {
		return nil, nil
	}
	var r DateRange
	if from != "" {
		t, err := time.ParseInLocation(DateLayout, from, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: from %q", ErrInvalidDateRange, from)
		}
		r.From = t
	}
	if to != "" {
		t, err := time.ParseInLocation(DateLayout, to, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: to %q", ErrInvalidDateRange, to)
		}
		r.To = t.AddDate(0, 0, 1)
	}
	if !r.From.IsZero() && !r.To.IsZero() && !r.From.Before(r.To) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidDateRange)
	}
	return &r, nil
}

// ParseOrderDateRange is ParseDateRange for order listings, where a lone from
// date selects that single day instead of an open-ended window.
func ParseOrderDateRange(from, to string) (*DateRange, error) {
	r, err := ParseDateRange(from, to)
	if err != nil || r == nil {
		return r, err
	}
	if !r.From.IsZero() && r.To.IsZero() {
		r.To = r.From.AddDate(0, 0, 1)
	}
	return r, nil
}

// Contains reports whether t falls in the window. A nil range contains everything.
func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

// ContainsPtr is Contains for optional timestamps. A missing timestamp is
// excluded whenever a range is active.
func (r *DateRange) ContainsPtr(t *time.Time) bool {
	if r == nil {
		return true
	}
	if t == nil {
		return false
	}
	return r.Contains(*t)
}
