package roster

import (
	"math"
	"time"
)

// Sunday unit labels
const (
	UnitOne = "Unit 1"
	UnitTwo = "Unit 2"
)

// unitReference anchors the weekly Sunday alternation; its week resolves to UnitTwo
var unitReference = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

// DefaultAnnotation derives the label for a date that has no explicit override.
// Only Sundays carry a default: weeks an even distance from the reference date
// are UnitTwo, odd ones UnitOne.
func DefaultAnnotation(date time.Time) string {
	if date.Weekday() != time.Sunday {
		return ""
	}
	days := float64(dayNumber(date) - dayNumber(unitReference))
	weeks := int64(math.Floor(math.Ceil(days) / 7))
	if weeks < 0 {
		weeks = -weeks
	}
	if weeks%2 == 0 {
		return UnitTwo
	}
	return UnitOne
}

// AnnotationStore holds explicit per-date label overrides.
// An empty string is a valid override that suppresses the default label.
type AnnotationStore struct {
	notes map[DateKey]string
}

// NewAnnotationStore creates an empty annotation store
func NewAnnotationStore() *AnnotationStore {
	return &AnnotationStore{notes: make(map[DateKey]string)}
}

// SetNote stores text verbatim as the override for date
func (s *AnnotationStore) SetNote(date DateKey, text string) {
	s.notes[date] = text
}

// Override returns the explicit override for date, if any
func (s *AnnotationStore) Override(date DateKey) (string, bool) {
	text, ok := s.notes[date]
	return text, ok
}

// GetNote returns the override for date, falling back to DefaultAnnotation
func (s *AnnotationStore) GetNote(date DateKey) string {
	if text, ok := s.notes[date]; ok {
		return text
	}
	t, err := date.Time()
	if err != nil {
		return ""
	}
	return DefaultAnnotation(t)
}

// Snapshot returns a copy of every override
func (s *AnnotationStore) Snapshot() map[DateKey]string {
	out := make(map[DateKey]string, len(s.notes))
	for k, v := range s.notes {
		out[k] = v
	}
	return out
}

// Replace discards all overrides and installs a copy of notes
func (s *AnnotationStore) Replace(notes map[DateKey]string) {
	s.notes = make(map[DateKey]string, len(notes))
	for k, v := range notes {
		s.notes[k] = v
	}
}
