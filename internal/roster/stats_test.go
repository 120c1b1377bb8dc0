package roster_test

import (
	"testing"
	"time"

	"duty-roster-backend/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDutyStatistics(t *testing.T) {
	staff := roster.NewDirectory([]roster.StaffMember{
		{ID: "f1", Name: "Faculty One", Category: roster.CategoryFaculty},
		{ID: "s1", Name: "Senior One", Category: roster.CategorySeniorPG},
		{ID: "j1", Name: "Junior One", Category: roster.CategoryJuniorPG},
		{ID: "f2", Name: "Faculty Two", Category: roster.CategoryFaculty},
	})
	assignments := roster.NewAssignmentStore()
	assignments.Assign("2025-03-09", "f1") // Sunday
	assignments.Assign("2025-03-09", "j1")
	assignments.Assign("2025-03-10", "f1")
	assignments.Assign("2025-03-16", "j1") // Sunday
	assignments.Assign("2025-03-17", "ghost")

	groups := roster.DutyStatistics(staff, assignments)
	require.Len(t, groups, 3)

	assert.Equal(t, roster.CategoryFaculty, groups[0].Category)
	assert.Equal(t, "Faculty", groups[0].Label)
	require.Len(t, groups[0].Staff, 2)
	assert.Equal(t, roster.StaffID("f1"), groups[0].Staff[0].Member.ID)
	assert.Equal(t, 2, groups[0].Staff[0].Total)
	assert.Equal(t, 1, groups[0].Staff[0].Sundays)
	assert.Equal(t, 0, groups[0].Staff[1].Total)

	require.Len(t, groups[1].Staff, 1)
	assert.Equal(t, 0, groups[1].Staff[0].Total)

	require.Len(t, groups[2].Staff, 1)
	assert.Equal(t, 2, groups[2].Staff[0].Total)
	assert.Equal(t, 2, groups[2].Staff[0].Sundays)
}

func TestFacultySummary(t *testing.T) {
	staff := roster.NewDirectory([]roster.StaffMember{
		{ID: "f1", Name: "Faculty One", Category: roster.CategoryFaculty},
		{ID: "f2", Name: "Faculty Two", Category: roster.CategoryFaculty},
		{ID: "s1", Name: "Senior One", Category: roster.CategorySeniorPG},
	})
	assignments := roster.NewAssignmentStore()
	assignments.Assign("2025-02-26", "f1")
	assignments.Assign("2025-03-09", "f1")
	assignments.Assign("2025-03-26", "f1") // next cycle
	assignments.Assign("2025-03-10", "s1")
	assignments.Assign("2025-04-01", "f2") // outside cycle

	summary := roster.FacultySummary(roster.CycleFor(day(2025, time.March, 10)), staff, assignments)
	require.Len(t, summary, 1)
	assert.Equal(t, roster.StaffID("f1"), summary[0].Member.ID)
	assert.Equal(t, []int{26, 9}, summary[0].Days)
}
