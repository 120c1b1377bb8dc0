package roster

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of every date key
const DateLayout = "2006-01-02"

// DateKey identifies a calendar day as YYYY-MM-DD with no time or zone component
type DateKey string

// KeyOf returns the date key for the calendar day of t in t's own location
func KeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateLayout))
}

// ParseDateKey validates s and returns it as a DateKey
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", s, err)
	}
	// time.Parse accepts some non-canonical inputs, normalise through the layout
	return KeyOf(t), nil
}

// Time returns the key as midnight UTC on that day
func (k DateKey) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(k))
}

// String implements fmt.Stringer
func (k DateKey) String() string {
	return string(k)
}

// Date normalises t to midnight UTC of its calendar day
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayNumber counts days since the Unix epoch for the calendar day of t
func dayNumber(t time.Time) int64 {
	return Date(t).Unix() / 86400
}
