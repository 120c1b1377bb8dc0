package roster

// DayCapacity is the most staff members one date can hold
const DayCapacity = 3

// AssignmentStore maps dates to the staff placed on them.
//
// Capacity and duplicate violations are silent no-ops: callers are expected
// to pre-filter, and a rejected placement is not an error. The store is not
// safe for concurrent use, the Coordinator serialises access to it.
type AssignmentStore struct {
	days map[DateKey][]StaffID
}

// NewAssignmentStore creates an empty assignment store
func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{days: make(map[DateKey][]StaffID)}
}

// Assign appends id to date unless it is already there or the date is full.
// It reports whether the store changed.
func (s *AssignmentStore) Assign(date DateKey, id StaffID) bool {
	current := s.days[date]
	if len(current) >= DayCapacity || indexOf(current, id) >= 0 {
		return false
	}
	next := make([]StaffID, len(current), len(current)+1)
	copy(next, current)
	s.days[date] = append(next, id)
	return true
}

// Unassign removes id from date if present and reports whether the store changed
func (s *AssignmentStore) Unassign(date DateKey, id StaffID) bool {
	current := s.days[date]
	i := indexOf(current, id)
	if i < 0 {
		return false
	}
	if len(current) == 1 {
		delete(s.days, date)
		return true
	}
	next := make([]StaffID, 0, len(current)-1)
	next = append(next, current[:i]...)
	next = append(next, current[i+1:]...)
	s.days[date] = next
	return true
}

// Toggle unassigns id from date if present, otherwise assigns it
func (s *AssignmentStore) Toggle(date DateKey, id StaffID) bool {
	if s.Has(date, id) {
		return s.Unassign(date, id)
	}
	return s.Assign(date, id)
}

// ClearDate empties date entirely and reports whether it held anyone
func (s *AssignmentStore) ClearDate(date DateKey) bool {
	if _, ok := s.days[date]; !ok {
		return false
	}
	delete(s.days, date)
	return true
}

// Has reports whether id is placed on date
func (s *AssignmentStore) Has(date DateKey, id StaffID) bool {
	return indexOf(s.days[date], id) >= 0
}

// IDs returns the staff on date in insertion order
func (s *AssignmentStore) IDs(date DateKey) []StaffID {
	current := s.days[date]
	out := make([]StaffID, len(current))
	copy(out, current)
	return out
}

// Sorted returns the staff on date ordered by category rank for display
func (s *AssignmentStore) Sorted(date DateKey, staff *Directory) []StaffMember {
	return staff.Resolve(s.days[date])
}

// Snapshot returns a deep copy of every non-empty date
func (s *AssignmentStore) Snapshot() map[DateKey][]StaffID {
	out := make(map[DateKey][]StaffID, len(s.days))
	for k, v := range s.days {
		if len(v) == 0 {
			continue
		}
		ids := make([]StaffID, len(v))
		copy(ids, v)
		out[k] = ids
	}
	return out
}

// Replace discards all assignments and installs a copy of days.
// Duplicate ids and entries beyond capacity in the input are dropped.
func (s *AssignmentStore) Replace(days map[DateKey][]StaffID) {
	s.days = make(map[DateKey][]StaffID, len(days))
	for k, v := range days {
		for _, id := range v {
			s.Assign(k, id)
		}
	}
}

func indexOf(ids []StaffID, id StaffID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
