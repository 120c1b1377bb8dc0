package roster

import (
	"encoding/json"
	"time"
)

// Field selects top-level collections of the roster document
type Field uint8

const (
	FieldStaff Field = 1 << iota
	FieldAssignments
	FieldAnnotations

	AllFields = FieldStaff | FieldAssignments | FieldAnnotations
)

// Has reports whether f includes every field of other
func (f Field) Has(other Field) bool {
	return f&other == other
}

// Snapshot is a full copy of the shared roster document
type Snapshot struct {
	Staff       []StaffMember         `json:"staff"`
	Assignments map[DateKey][]StaffID `json:"assignments"`
	Annotations map[DateKey]string    `json:"annotations"`
	StartDay    int                   `json:"startDay,omitempty"`
	LastUpdated string                `json:"lastUpdated,omitempty"`
}

// Patch is a top-level merge write. Collections not named in Fields are left
// untouched on the remote document; named ones replace it wholesale.
type Patch struct {
	Fields      Field
	Staff       []StaffMember
	Assignments map[DateKey][]StaffID
	Annotations map[DateKey]string
	StartDay    int
	LastUpdated time.Time
}

// MarshalJSON emits only the collections named in Fields plus the cycle anchor
// and modification time
func (p Patch) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"startDay":    p.StartDay,
		"lastUpdated": p.LastUpdated.UTC().Format(time.RFC3339Nano),
	}
	if p.Fields.Has(FieldStaff) {
		out["staff"] = nonNilStaff(p.Staff)
	}
	if p.Fields.Has(FieldAssignments) {
		out["assignments"] = nonNilAssignments(p.Assignments)
	}
	if p.Fields.Has(FieldAnnotations) {
		out["annotations"] = nonNilAnnotations(p.Annotations)
	}
	return json.Marshal(out)
}

// DecodeSnapshot parses an inbound document leniently.
//
// Missing, null or mistyped collections decode as empty; malformed entries
// inside a collection are skipped. The names of collections that needed
// substitution are returned so callers can log them.
func DecodeSnapshot(data []byte) (Snapshot, []string) {
	snap := Snapshot{
		Staff:       []StaffMember{},
		Assignments: map[DateKey][]StaffID{},
		Annotations: map[DateKey]string{},
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return snap, []string{"document"}
	}

	var bad []string
	staffRaw := firstPresent(raw, "staff", "doctors")
	if !decodeStaff(staffRaw, &snap) {
		bad = append(bad, "staff")
	}
	if !decodeAssignments(raw["assignments"], &snap) {
		bad = append(bad, "assignments")
	}
	if !decodeAnnotations(firstPresent(raw, "annotations", "notes"), &snap) {
		bad = append(bad, "annotations")
	}
	if v, ok := raw["startDay"]; ok {
		_ = json.Unmarshal(v, &snap.StartDay)
	}
	if v, ok := raw["lastUpdated"]; ok {
		_ = json.Unmarshal(v, &snap.LastUpdated)
	}
	return snap, bad
}

// firstPresent returns the first non-null value among keys
func firstPresent(raw map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, k := range keys {
		if v, ok := raw[k]; ok && !isNull(v) {
			return v
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || string(v) == "null"
}

func decodeStaff(v json.RawMessage, snap *Snapshot) bool {
	if isNull(v) {
		return true
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return false
	}
	ok := true
	for _, item := range items {
		var m StaffMember
		if err := json.Unmarshal(item, &m); err != nil || m.ID == "" {
			ok = false
			continue
		}
		snap.Staff = append(snap.Staff, m)
	}
	return ok
}

func decodeAssignments(v json.RawMessage, snap *Snapshot) bool {
	if isNull(v) {
		return true
	}
	var days map[string]json.RawMessage
	if err := json.Unmarshal(v, &days); err != nil {
		return false
	}
	ok := true
	for k, idsRaw := range days {
		key, err := ParseDateKey(k)
		if err != nil {
			ok = false
			continue
		}
		var ids []StaffID
		if err := json.Unmarshal(idsRaw, &ids); err != nil {
			ok = false
			continue
		}
		if len(ids) > 0 {
			snap.Assignments[key] = ids
		}
	}
	return ok
}

func decodeAnnotations(v json.RawMessage, snap *Snapshot) bool {
	if isNull(v) {
		return true
	}
	var notes map[string]json.RawMessage
	if err := json.Unmarshal(v, &notes); err != nil {
		return false
	}
	ok := true
	for k, textRaw := range notes {
		key, err := ParseDateKey(k)
		if err != nil {
			ok = false
			continue
		}
		var text string
		if err := json.Unmarshal(textRaw, &text); err != nil {
			ok = false
			continue
		}
		snap.Annotations[key] = text
	}
	return ok
}

func nonNilStaff(v []StaffMember) []StaffMember {
	if v == nil {
		return []StaffMember{}
	}
	return v
}

func nonNilAssignments(v map[DateKey][]StaffID) map[DateKey][]StaffID {
	if v == nil {
		return map[DateKey][]StaffID{}
	}
	return v
}

func nonNilAnnotations(v map[DateKey]string) map[DateKey]string {
	if v == nil {
		return map[DateKey]string{}
	}
	return v
}
