package domain

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// MonthKey is a calendar month in the "YYYY-MM" form.
type MonthKey string

func ParseMonthKey(raw string) (MonthKey, error) {
	t, err := time.Parse(monthLayout, raw)
	if err != nil || len(raw) != len(monthLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonthKey, raw)
	}
	return MonthKey(t.Format(monthLayout)), nil
}

func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthLayout))
}

func (k MonthKey) String() string {
	return string(k)
}

// Time returns midnight UTC on the first day of the month. Invalid keys yield the zero time.
func (k MonthKey) Time() time.Time {
	t, err := time.Parse(monthLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// MonthsBetween counts calendar months from start to end; negative when end precedes start.
func MonthsBetween(start, end MonthKey) int {
	s, e := start.Time(), end.Time()
	return (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
}
