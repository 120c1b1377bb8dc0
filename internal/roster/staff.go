package roster

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Category defines the ranked staff categories
type Category string

const (
	CategoryFaculty  Category = "faculty"
	CategorySeniorPG Category = "senior_pg"
	CategoryJuniorPG Category = "junior_pg"
)

type categoryInfo struct {
	Label string
	Rank  int
}

var categories = map[Category]categoryInfo{
	CategoryFaculty:  {Label: "Faculty", Rank: 1},
	CategorySeniorPG: {Label: "Senior PG", Rank: 2},
	CategoryJuniorPG: {Label: "Junior PG", Rank: 3},
}

// unrankedRank sorts members with an unknown category after every known one
const unrankedRank = 1 << 30

// Categories returns every category in rank order
func Categories() []Category {
	return []Category{CategoryFaculty, CategorySeniorPG, CategoryJuniorPG}
}

// IsValid checks if the Category is valid
func (c Category) IsValid() bool {
	_, ok := categories[c]
	return ok
}

// Rank returns the display priority of the category, 1 being highest
func (c Category) Rank() int {
	if info, ok := categories[c]; ok {
		return info.Rank
	}
	return unrankedRank
}

// Label returns the human readable category name
func (c Category) Label() string {
	if info, ok := categories[c]; ok {
		return info.Label
	}
	return string(c)
}

// StaffID is an opaque staff member identity.
// Older roster documents used numeric ids, those decode to their decimal form.
type StaffID string

// UnmarshalJSON accepts both JSON strings and JSON numbers
func (id *StaffID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StaffID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("staff id must be a string or number: %w", err)
	}
	*id = StaffID(n.String())
	return nil
}

// StaffMember is one person who can be placed on a date
type StaffMember struct {
	ID       StaffID  `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
}

// PastelColors is the palette new staff members are coloured from
var PastelColors = []string{
	"#FFB3BA", "#FFDFBA", "#FFFFBA", "#BAFFC9", "#BAE1FF",
	"#E2F0CB", "#FFDAC1", "#E0BBE4", "#957DAD", "#D291BC",
	"#FEC8D8", "#FF9AA2", "#C7CEEA", "#B5EAD7", "#FF9CEE",
}

// Directory is the ordered staff list, looked up by id
type Directory struct {
	members []StaffMember
}

// NewDirectory creates a directory holding a copy of members
func NewDirectory(members []StaffMember) *Directory {
	d := &Directory{}
	d.Replace(members)
	return d
}

// Get returns the member with the given id
func (d *Directory) Get(id StaffID) (StaffMember, bool) {
	for _, m := range d.members {
		if m.ID == id {
			return m, true
		}
	}
	return StaffMember{}, false
}

// List returns a copy of all members in roster order
func (d *Directory) List() []StaffMember {
	out := make([]StaffMember, len(d.members))
	copy(out, d.members)
	return out
}

// Len returns the number of members
func (d *Directory) Len() int {
	return len(d.members)
}

// NextColor returns the palette colour for the next added member
func (d *Directory) NextColor() string {
	return PastelColors[len(d.members)%len(PastelColors)]
}

// Add appends a member; it returns false if the id is already taken
func (d *Directory) Add(m StaffMember) bool {
	if _, ok := d.Get(m.ID); ok {
		return false
	}
	d.members = append(d.members, m)
	return true
}

// Update replaces the member with m.ID; it returns false if no such member exists
func (d *Directory) Update(m StaffMember) bool {
	for i := range d.members {
		if d.members[i].ID == m.ID {
			d.members[i] = m
			return true
		}
	}
	return false
}

// Remove deletes the member with id; it returns false if no such member exists
func (d *Directory) Remove(id StaffID) bool {
	for i := range d.members {
		if d.members[i].ID == id {
			d.members = append(d.members[:i], d.members[i+1:]...)
			return true
		}
	}
	return false
}

// Replace discards the current list and installs a copy of members
func (d *Directory) Replace(members []StaffMember) {
	d.members = make([]StaffMember, len(members))
	copy(d.members, members)
}

// Resolve maps ids to members sorted by category rank, dropping unknown ids.
// Members of equal rank keep the order of ids.
func (d *Directory) Resolve(ids []StaffID) []StaffMember {
	out := make([]StaffMember, 0, len(ids))
	for _, id := range ids {
		if m, ok := d.Get(id); ok {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Category.Rank() < out[j].Category.Rank()
	})
	return out
}
