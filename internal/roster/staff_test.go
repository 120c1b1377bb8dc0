package roster_test

import (
	"encoding/json"
	"testing"

	"duty-roster-backend/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffID_UnmarshalJSON(t *testing.T) {
	var members []roster.StaffMember
	require.NoError(t, json.Unmarshal([]byte(`[{"id": "a1"}, {"id": 1712345678901}]`), &members))
	assert.Equal(t, roster.StaffID("a1"), members[0].ID)
	assert.Equal(t, roster.StaffID("1712345678901"), members[1].ID)

	var id roster.StaffID
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &id))
}

func TestDirectory_ResolveAndCopy(t *testing.T) {
	input := []roster.StaffMember{
		{ID: "j", Name: "Junior", Category: roster.CategoryJuniorPG},
		{ID: "f", Name: "Faculty", Category: roster.CategoryFaculty},
	}
	dir := roster.NewDirectory(input)
	input[0].Name = "changed"

	m, ok := dir.Get("j")
	require.True(t, ok)
	assert.Equal(t, "Junior", m.Name, "directory keeps its own copy")
	assert.Equal(t, 2, dir.Len())
	assert.Equal(t, roster.PastelColors[2], dir.NextColor())

	assert.False(t, dir.Add(roster.StaffMember{ID: "f", Name: "Duplicate"}))
	assert.True(t, dir.Add(roster.StaffMember{ID: "s", Name: "Senior", Category: roster.CategorySeniorPG}))

	assert.True(t, dir.Update(roster.StaffMember{ID: "s", Name: "Senior Resident", Category: roster.CategorySeniorPG}))
	assert.False(t, dir.Update(roster.StaffMember{ID: "missing"}))

	resolved := dir.Resolve([]roster.StaffID{"j", "gone", "s", "f"})
	require.Len(t, resolved, 3)
	assert.Equal(t, []roster.StaffID{"f", "s", "j"}, []roster.StaffID{resolved[0].ID, resolved[1].ID, resolved[2].ID})
	assert.Equal(t, "Senior Resident", resolved[1].Name)

	assert.True(t, dir.Remove("j"))
	assert.False(t, dir.Remove("j"))
	assert.Equal(t, []roster.StaffID{"f", "s"}, []roster.StaffID{dir.List()[0].ID, dir.List()[1].ID})

	dir.Replace(nil)
	assert.Equal(t, 0, dir.Len())
	assert.Equal(t, roster.PastelColors[0], dir.NextColor())
}

func TestDirectory_PaletteWraps(t *testing.T) {
	dir := roster.NewDirectory(nil)
	for i := 0; i < len(roster.PastelColors); i++ {
		dir.Add(roster.StaffMember{ID: roster.StaffID(rune('a' + i))})
	}
	assert.Equal(t, roster.PastelColors[0], dir.NextColor())
}
