package docstore

import (
	"encoding/json"
	"fmt"
	"time"

	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/roster"
)

// patchToModel converts a merge write into a document row and the columns it overwrites
func patchToModel(key string, patch roster.Patch) (*models.RosterDocument, []string, error) {
	doc := &models.RosterDocument{
		Key:         key,
		StartDay:    patch.StartDay,
		LastUpdated: patch.LastUpdated,
	}
	columns := []string{models.RosterColumnStartDay, models.RosterColumnLastUpdated, models.RosterColumnUpdatedAt}

	// marshal through the patch so the persisted shape matches the wire shape
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode roster patch: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nil, fmt.Errorf("failed to encode roster patch: %w", err)
	}

	if patch.Fields.Has(roster.FieldStaff) {
		doc.Staff = fields["staff"]
		columns = append(columns, models.RosterColumnStaff)
	}
	if patch.Fields.Has(roster.FieldAssignments) {
		doc.Assignments = fields["assignments"]
		columns = append(columns, models.RosterColumnAssignments)
	}
	if patch.Fields.Has(roster.FieldAnnotations) {
		doc.Annotations = fields["annotations"]
		columns = append(columns, models.RosterColumnAnnotations)
	}
	return doc, columns, nil
}

// modelPayload renders a stored row as the snapshot JSON delivered to subscribers
func modelPayload(doc *models.RosterDocument) ([]byte, error) {
	out := map[string]interface{}{
		"startDay": doc.StartDay,
	}
	if !doc.LastUpdated.IsZero() {
		out["lastUpdated"] = doc.LastUpdated.UTC().Format(time.RFC3339Nano)
	}
	if len(doc.Staff) > 0 {
		out["staff"] = doc.Staff
	}
	if len(doc.Assignments) > 0 {
		out["assignments"] = doc.Assignments
	}
	if len(doc.Annotations) > 0 {
		out["annotations"] = doc.Annotations
	}
	return json.Marshal(out)
}
