package roster_test

import (
	"testing"
	"time"

	"duty-roster-backend/internal/roster"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAnnotation(t *testing.T) {
	testCases := []struct {
		name string
		date time.Time
		want string
	}{
		{"reference sunday", day(2026, time.February, 1), roster.UnitTwo},
		{"one week later", day(2026, time.February, 8), roster.UnitOne},
		{"two weeks later", day(2026, time.February, 15), roster.UnitTwo},
		{"one week earlier", day(2026, time.January, 25), roster.UnitOne},
		{"two weeks earlier", day(2026, time.January, 18), roster.UnitTwo},
		{"sunday in 2025", day(2025, time.March, 9), roster.UnitOne},
		{"monday", day(2026, time.February, 2), ""},
		{"saturday", day(2026, time.January, 31), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, roster.DefaultAnnotation(tc.date))
		})
	}
}

func TestDefaultAnnotation_AlternatesWeekly(t *testing.T) {
	sunday := day(2024, time.January, 7)
	prev := roster.DefaultAnnotation(sunday)
	for i := 1; i < 200; i++ {
		next := roster.DefaultAnnotation(sunday.AddDate(0, 0, 7*i))
		assert.NotEqual(t, prev, next)
		assert.Contains(t, []string{roster.UnitOne, roster.UnitTwo}, next)
		prev = next
	}
}

func TestAnnotationStore(t *testing.T) {
	t.Run("non sunday without override is empty", func(t *testing.T) {
		s := roster.NewAnnotationStore()
		assert.Equal(t, "", s.GetNote("2026-02-02"))
	})

	t.Run("sunday without override uses default", func(t *testing.T) {
		s := roster.NewAnnotationStore()
		assert.Equal(t, roster.UnitTwo, s.GetNote("2026-02-01"))
		assert.Equal(t, roster.UnitOne, s.GetNote("2026-02-08"))
	})

	t.Run("override wins", func(t *testing.T) {
		s := roster.NewAnnotationStore()
		s.SetNote("2026-02-01", "Ward 7")
		s.SetNote("2026-02-02", "Conference")
		assert.Equal(t, "Ward 7", s.GetNote("2026-02-01"))
		assert.Equal(t, "Conference", s.GetNote("2026-02-02"))
	})

	t.Run("empty override suppresses default", func(t *testing.T) {
		s := roster.NewAnnotationStore()
		s.SetNote("2026-02-01", "")
		assert.Equal(t, "", s.GetNote("2026-02-01"))

		text, ok := s.Override("2026-02-01")
		assert.True(t, ok)
		assert.Equal(t, "", text)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := roster.NewAnnotationStore()
		s.SetNote("2026-02-03", "a")
		s.SetNote("2026-02-03", "b")
		assert.Equal(t, "b", s.GetNote("2026-02-03"))
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		s := roster.NewAnnotationStore()
		s.SetNote("2026-02-03", "a")
		snap := s.Snapshot()
		snap["2026-02-03"] = "changed"
		assert.Equal(t, "a", s.GetNote("2026-02-03"))
	})

	t.Run("replace drops previous overrides", func(t *testing.T) {
		s := roster.NewAnnotationStore()
		s.SetNote("2026-02-01", "old")
		s.Replace(map[roster.DateKey]string{"2026-02-03": "new"})
		assert.Equal(t, roster.UnitTwo, s.GetNote("2026-02-01"))
		assert.Equal(t, "new", s.GetNote("2026-02-03"))
	})
}
