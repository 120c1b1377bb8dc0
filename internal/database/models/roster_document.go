package models

import (
	"encoding/json"
	"time"
)

// Roster document column names used for top-level merge writes
const (
	RosterColumnStaff       = "staff"
	RosterColumnAssignments = "assignments"
	RosterColumnAnnotations = "annotations"
	RosterColumnStartDay    = "start_day"
	RosterColumnLastUpdated = "last_updated"
	RosterColumnUpdatedAt   = "updated_at"
)

// RosterDocument is the persisted shared roster aggregate.
// Each collection is stored whole in its own jsonb column; a NULL column
// means the collection was never written.
type RosterDocument struct {
	Key         string          `json:"key" gorm:"primaryKey;size:64"`
	Staff       json.RawMessage `json:"staff" gorm:"type:jsonb"`
	Assignments json.RawMessage `json:"assignments" gorm:"type:jsonb"`
	Annotations json.RawMessage `json:"annotations" gorm:"type:jsonb"`
	StartDay    int             `json:"start_day" gorm:"not null"`
	LastUpdated time.Time       `json:"last_updated"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName returns the table name for RosterDocument
func (RosterDocument) TableName() string {
	return "roster_documents"
}
