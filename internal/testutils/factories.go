package testutils

import (
	"encoding/json"
	"time"

	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/roster"

	"github.com/google/uuid"
)

// StaffFactory provides methods to create test staff members
type StaffFactory struct {
	count int
}

// NewStaffFactory creates a new StaffFactory
func NewStaffFactory() *StaffFactory {
	return &StaffFactory{}
}

// Create creates a staff member of the given category with a fresh id and palette colour
func (f *StaffFactory) Create(name string, category roster.Category) roster.StaffMember {
	member := roster.StaffMember{
		ID:       roster.StaffID(uuid.NewString()),
		Name:     name,
		Category: category,
		Color:    roster.PastelColors[f.count%len(roster.PastelColors)],
	}
	f.count++
	return member
}

// Team creates one member per category, ordered faculty, senior PG, junior PG
func (f *StaffFactory) Team() []roster.StaffMember {
	return []roster.StaffMember{
		f.Create("Dr. Faculty", roster.CategoryFaculty),
		f.Create("Dr. Senior", roster.CategorySeniorPG),
		f.Create("Dr. Junior", roster.CategoryJuniorPG),
	}
}

// RosterDocumentFactory provides methods to create test roster rows
type RosterDocumentFactory struct{}

// NewRosterDocumentFactory creates a new RosterDocumentFactory
func NewRosterDocumentFactory() *RosterDocumentFactory {
	return &RosterDocumentFactory{}
}

// Create creates a roster row holding the given collections, JSON-encoded
func (f *RosterDocumentFactory) Create(key string, staff []roster.StaffMember, assignments map[roster.DateKey][]roster.StaffID, annotations map[roster.DateKey]string) *models.RosterDocument {
	if staff == nil {
		staff = []roster.StaffMember{}
	}
	if assignments == nil {
		assignments = map[roster.DateKey][]roster.StaffID{}
	}
	if annotations == nil {
		annotations = map[roster.DateKey]string{}
	}
	return &models.RosterDocument{
		Key:         key,
		Staff:       mustJSON(staff),
		Assignments: mustJSON(assignments),
		Annotations: mustJSON(annotations),
		StartDay:    roster.AnchorDay,
		LastUpdated: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// Empty creates a roster row with empty collections
func (f *RosterDocumentFactory) Empty(key string) *models.RosterDocument {
	return f.Create(key, nil, nil, nil)
}

func mustJSON(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
