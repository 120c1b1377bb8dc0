package roster

import "time"

// AnchorDay is the day of month on which every duty cycle starts
const AnchorDay = 26

// DutyCycle is the 26th-to-25th range of days active for a reference date
type DutyCycle struct {
	StartDate time.Time
	EndDate   time.Time
	Dates     []time.Time
}

// CycleFor returns the duty cycle containing ref.
//
// A reference day on or after the anchor starts a cycle in its own month, any
// earlier day belongs to the cycle that started in the previous month. All
// returned dates are midnight UTC.
func CycleFor(ref time.Time) DutyCycle {
	year, month, day := ref.Date()
	if day < AnchorDay {
		month--
	}
	// time.Date normalises month 0 to December of the previous year and
	// month 13 to January of the next one.
	start := time.Date(year, month, AnchorDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+1, AnchorDay-1, 0, 0, 0, 0, time.UTC)

	dates := make([]time.Time, 0, 31)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return DutyCycle{
		StartDate: start,
		EndDate:   end,
		Dates:     dates,
	}
}

// Keys returns the cycle dates as date keys in ascending order
func (c DutyCycle) Keys() []DateKey {
	keys := make([]DateKey, len(c.Dates))
	for i, d := range c.Dates {
		keys[i] = KeyOf(d)
	}
	return keys
}

// Contains reports whether key falls within the cycle
func (c DutyCycle) Contains(key DateKey) bool {
	t, err := key.Time()
	if err != nil {
		return false
	}
	return !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// LeadingBlanks is the number of empty cells before the first date in a
// Monday-first week grid
func (c DutyCycle) LeadingBlanks() int {
	if len(c.Dates) == 0 {
		return 0
	}
	return (int(c.Dates[0].Weekday()) + 6) % 7
}
