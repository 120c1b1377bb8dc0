package roster

import "time"

// StaffDuties counts the dates one staff member is assigned to
type StaffDuties struct {
	Member  StaffMember `json:"member"`
	Total   int         `json:"total"`
	Sundays int         `json:"sundays"`
}

// CategoryDuties groups duty counts of one category
type CategoryDuties struct {
	Category Category      `json:"category"`
	Label    string        `json:"label"`
	Staff    []StaffDuties `json:"staff"`
}

// CycleDays lists the days of month within a cycle that a member is on duty
type CycleDays struct {
	Member StaffMember `json:"member"`
	Days   []int       `json:"days"`
}

// DutyStatistics counts every member's duties over the whole assignment map,
// grouped by category in rank order
func DutyStatistics(staff *Directory, assignments *AssignmentStore) []CategoryDuties {
	totals := make(map[StaffID]int)
	sundays := make(map[StaffID]int)
	for key, ids := range assignments.days {
		isSunday := false
		if t, err := key.Time(); err == nil {
			isSunday = t.Weekday() == time.Sunday
		}
		for _, id := range ids {
			totals[id]++
			if isSunday {
				sundays[id]++
			}
		}
	}

	groups := make([]CategoryDuties, 0, len(categories))
	for _, cat := range Categories() {
		group := CategoryDuties{Category: cat, Label: cat.Label(), Staff: []StaffDuties{}}
		for _, m := range staff.members {
			if m.Category != cat {
				continue
			}
			group.Staff = append(group.Staff, StaffDuties{
				Member:  m,
				Total:   totals[m.ID],
				Sundays: sundays[m.ID],
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// FacultySummary lists, for each faculty member with at least one duty in
// cycle, the days of month they are assigned
func FacultySummary(cycle DutyCycle, staff *Directory, assignments *AssignmentStore) []CycleDays {
	out := []CycleDays{}
	for _, m := range staff.members {
		if m.Category != CategoryFaculty {
			continue
		}
		var days []int
		for _, d := range cycle.Dates {
			if assignments.Has(KeyOf(d), m.ID) {
				days = append(days, d.Day())
			}
		}
		if len(days) > 0 {
			out = append(out, CycleDays{Member: m, Days: days})
		}
	}
	return out
}
