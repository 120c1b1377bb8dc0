package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/logger"
	"duty-roster-backend/internal/roster"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RosterService handles business logic for the shared duty roster
type RosterService struct {
	coordinator *roster.Coordinator
	gate        *EditGate
	validator   *validator.Validate
	now         func() time.Time
}

// Ensure RosterService implements RosterServiceInterface
var _ RosterServiceInterface = (*RosterService)(nil)

// NewRosterService creates a new roster service
func NewRosterService(coordinator *roster.Coordinator, gate *EditGate, validator *validator.Validate) *RosterService {
	return &RosterService{
		coordinator: coordinator,
		gate:        gate,
		validator:   validator,
		now:         time.Now,
	}
}

// checkEditable rejects mutations while the gate is locked or before the
// stored roster has been loaded
func (s *RosterService) checkEditable() error {
	if err := s.gate.Check(); err != nil {
		return err
	}
	if !s.coordinator.Synced() {
		return apperrors.ErrRosterNotSynced
	}
	return nil
}

// WithClock replaces the clock used to pick the default reference date
func (s *RosterService) WithClock(now func() time.Time) *RosterService {
	s.now = now
	return s
}

// AssignRequest places or toggles a staff member on a date
type AssignRequest struct {
	StaffID roster.StaffID `json:"staff_id" validate:"required,max=64"`
}

// SetNoteRequest overrides the annotation of a date; an empty text suppresses the default label
type SetNoteRequest struct {
	Text *string `json:"text" validate:"required,max=200"`
}

// CreateStaffRequest represents the request to add a staff member
type CreateStaffRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Category roster.Category `json:"category" validate:"required"`
	Color    string          `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// UpdateStaffRequest represents a partial update of a staff member
type UpdateStaffRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Category *roster.Category `json:"category,omitempty"`
	Color    *string          `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// UnlockRequest carries the editing passcode
type UnlockRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

// StaffResponse represents a staff member
type StaffResponse struct {
	ID            roster.StaffID  `json:"id"`
	Name          string          `json:"name"`
	Category      roster.Category `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Color         string          `json:"color"`
}

// StaffListResponse represents the staff roster in roster order
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

// DayResponse represents one date of the roster
type DayResponse struct {
	Date           roster.DateKey  `json:"date"`
	Day            int             `json:"day"`
	Weekday        string          `json:"weekday"`
	IsSunday       bool            `json:"is_sunday"`
	Staff          []StaffResponse `json:"staff"`
	Full           bool            `json:"full"`
	Note           string          `json:"note"`
	NoteOverridden bool            `json:"note_overridden"`
}

// CycleResponse represents the active duty cycle for a reference date
type CycleResponse struct {
	StartDate     roster.DateKey `json:"start_date"`
	EndDate       roster.DateKey `json:"end_date"`
	LeadingBlanks int            `json:"leading_blanks"`
	Days          []DayResponse  `json:"days"`
}

// StatisticsResponse represents duty counts and the faculty summary of a cycle
type StatisticsResponse struct {
	CycleStart     roster.DateKey          `json:"cycle_start"`
	CycleEnd       roster.DateKey          `json:"cycle_end"`
	Categories     []roster.CategoryDuties `json:"categories"`
	FacultySummary []roster.CycleDays      `json:"faculty_summary"`
}

// StatusResponse represents the synchronisation status and editing lock
type StatusResponse struct {
	roster.StatusReport
	Locked bool `json:"locked"`
}

// LockStateResponse represents the editing lock
type LockStateResponse struct {
	Locked bool `json:"locked"`
}

// GetCycle returns the cycle containing date, or today when date is empty
func (s *RosterService) GetCycle(date string) (*CycleResponse, error) {
	ref, err := s.referenceDate(date)
	if err != nil {
		return nil, err
	}
	cycle := roster.CycleFor(ref)

	resp := &CycleResponse{
		StartDate:     roster.KeyOf(cycle.StartDate),
		EndDate:       roster.KeyOf(cycle.EndDate),
		LeadingBlanks: cycle.LeadingBlanks(),
		Days:          make([]DayResponse, 0, len(cycle.Dates)),
	}
	s.coordinator.View(func(st roster.State) {
		for _, d := range cycle.Dates {
			resp.Days = append(resp.Days, dayView(st, d))
		}
	})
	return resp, nil
}

// GetDay returns the assignments and annotation of one date
func (s *RosterService) GetDay(date string) (*DayResponse, error) {
	_, t, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	var resp DayResponse
	s.coordinator.View(func(st roster.State) {
		resp = dayView(st, t)
	})
	return &resp, nil
}

// Assign places a known staff member on date; duplicates and full dates are left unchanged
func (s *RosterService) Assign(ctx context.Context, date string, req *AssignRequest) (*DayResponse, error) {
	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	key, _, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	unknown := false
	s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		if _, ok := st.Staff.Get(req.StaffID); !ok {
			unknown = true
			return 0
		}
		if st.Assignments.Assign(key, req.StaffID) {
			return roster.FieldAssignments
		}
		return 0
	})
	if unknown {
		return nil, apperrors.ErrStaffNotFound
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"date": key, "staff_id": req.StaffID}).Debug("Assign requested")
	return s.GetDay(date)
}

// Unassign removes staffID from date; ids no longer in the staff list can still be removed
func (s *RosterService) Unassign(ctx context.Context, date, staffID string) (*DayResponse, error) {
	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	key, _, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	id := roster.StaffID(strings.TrimSpace(staffID))
	if id == "" {
		return nil, apperrors.NewValidationError("staff_id", "is required")
	}

	s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		if st.Assignments.Unassign(key, id) {
			return roster.FieldAssignments
		}
		return 0
	})
	return s.GetDay(date)
}

// Toggle assigns staffID to date if absent, otherwise removes it
func (s *RosterService) Toggle(ctx context.Context, date string, req *AssignRequest) (*DayResponse, error) {
	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	key, _, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	unknown := false
	s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		if !st.Assignments.Has(key, req.StaffID) {
			if _, ok := st.Staff.Get(req.StaffID); !ok {
				unknown = true
				return 0
			}
		}
		if st.Assignments.Toggle(key, req.StaffID) {
			return roster.FieldAssignments
		}
		return 0
	})
	if unknown {
		return nil, apperrors.ErrStaffNotFound
	}
	return s.GetDay(date)
}

// ClearDate removes every assignment of date
func (s *RosterService) ClearDate(ctx context.Context, date string) (*DayResponse, error) {
	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	key, _, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		if st.Assignments.ClearDate(key) {
			return roster.FieldAssignments
		}
		return 0
	})
	return s.GetDay(date)
}

// SetNote stores an explicit annotation override for date
func (s *RosterService) SetNote(ctx context.Context, date string, req *SetNoteRequest) (*DayResponse, error) {
	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	key, _, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	text := *req.Text
	s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		if current, ok := st.Annotations.Override(key); ok && current == text {
			return 0
		}
		st.Annotations.SetNote(key, text)
		return roster.FieldAnnotations
	})
	return s.GetDay(date)
}

// ListStaff returns the staff list in roster order
func (s *RosterService) ListStaff() *StaffListResponse {
	resp := &StaffListResponse{Staff: []StaffResponse{}}
	s.coordinator.View(func(st roster.State) {
		for _, m := range st.Staff.List() {
			resp.Staff = append(resp.Staff, toStaffResponse(m))
		}
	})
	resp.Total = len(resp.Staff)
	return resp
}

// CreateStaff adds a staff member with a generated id; the colour defaults to the next palette entry
func (s *RosterService) CreateStaff(ctx context.Context, req *CreateStaffRequest) (*StaffResponse, error) {
	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if !req.Category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	member := roster.StaffMember{
		ID:       roster.StaffID(uuid.NewString()),
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
	}
	s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		if member.Color == "" {
			member.Color = st.Staff.NextColor()
		}
		if st.Staff.Add(member) {
			return roster.FieldStaff
		}
		return 0
	})

	logger.WithContext(ctx).WithField("staff_id", member.ID).Info("Staff member added")
	resp := toStaffResponse(member)
	return &resp, nil
}

// UpdateStaff changes the given fields of a staff member
func (s *RosterService) UpdateStaff(ctx context.Context, id string, req *UpdateStaffRequest) (*StaffResponse, error) {
	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		req.Name = &name
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.Category != nil && !req.Category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	var updated roster.StaffMember
	found := false
	s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		current, ok := st.Staff.Get(roster.StaffID(id))
		if !ok {
			return 0
		}
		found = true
		updated = current
		if req.Name != nil {
			updated.Name = *req.Name
		}
		if req.Category != nil {
			updated.Category = *req.Category
		}
		if req.Color != nil && *req.Color != "" {
			updated.Color = *req.Color
		}
		if updated == current {
			return 0
		}
		st.Staff.Update(updated)
		return roster.FieldStaff
	})
	if !found {
		return nil, apperrors.ErrStaffNotFound
	}

	resp := toStaffResponse(updated)
	return &resp, nil
}

// DeleteStaff removes a staff member; their existing assignments are kept and hidden from views
func (s *RosterService) DeleteStaff(ctx context.Context, id string) error {
	if err := s.checkEditable(); err != nil {
		return err
	}

	changed := s.coordinator.Mutate(ctx, func(st roster.State) roster.Field {
		if st.Staff.Remove(roster.StaffID(id)) {
			return roster.FieldStaff
		}
		return 0
	})
	if changed == 0 {
		return apperrors.ErrStaffNotFound
	}

	logger.WithContext(ctx).WithField("staff_id", id).Info("Staff member removed")
	return nil
}

// GetStatistics counts duties over all assignments and summarises faculty days of the cycle containing date
func (s *RosterService) GetStatistics(date string) (*StatisticsResponse, error) {
	ref, err := s.referenceDate(date)
	if err != nil {
		return nil, err
	}
	cycle := roster.CycleFor(ref)

	resp := &StatisticsResponse{
		CycleStart: roster.KeyOf(cycle.StartDate),
		CycleEnd:   roster.KeyOf(cycle.EndDate),
	}
	s.coordinator.View(func(st roster.State) {
		resp.Categories = roster.DutyStatistics(st.Staff, st.Assignments)
		resp.FacultySummary = roster.FacultySummary(cycle, st.Staff, st.Assignments)
	})
	return resp, nil
}

// GetStatus returns the synchronisation status and the editing lock
func (s *RosterService) GetStatus() *StatusResponse {
	return &StatusResponse{
		StatusReport: s.coordinator.Status(),
		Locked:       s.gate.Locked(),
	}
}

// GetLockState returns the editing lock
func (s *RosterService) GetLockState() *LockStateResponse {
	return &LockStateResponse{Locked: s.gate.Locked()}
}

// Unlock opens the editing lock when the passcode matches
func (s *RosterService) Unlock(req *UnlockRequest) (*LockStateResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := s.gate.Unlock(req.Passcode); err != nil {
		return nil, err
	}
	return s.GetLockState(), nil
}

// Lock closes the editing lock
func (s *RosterService) Lock() *LockStateResponse {
	s.gate.Lock()
	return s.GetLockState()
}

func (s *RosterService) referenceDate(date string) (time.Time, error) {
	if date == "" {
		return roster.Date(s.now()), nil
	}
	_, t, err := parseDate(date)
	return t, err
}

// validate runs struct validation and reports the first failing field
func (s *RosterService) validate(req interface{}) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError(jsonFieldName(fe), validationMessage(fe)))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

func parseDate(date string) (roster.DateKey, time.Time, error) {
	key, err := roster.ParseDateKey(date)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateKey, date)
	}
	t, _ := key.Time()
	return key, t, nil
}

func dayView(st roster.State, t time.Time) DayResponse {
	key := roster.KeyOf(t)
	_, overridden := st.Annotations.Override(key)
	members := st.Assignments.Sorted(key, st.Staff)

	staff := make([]StaffResponse, 0, len(members))
	for _, m := range members {
		staff = append(staff, toStaffResponse(m))
	}
	return DayResponse{
		Date:           key,
		Day:            t.Day(),
		Weekday:        t.Weekday().String(),
		IsSunday:       t.Weekday() == time.Sunday,
		Staff:          staff,
		Full:           len(st.Assignments.IDs(key)) >= roster.DayCapacity,
		Note:           st.Annotations.GetNote(key),
		NoteOverridden: overridden,
	}
}

func toStaffResponse(m roster.StaffMember) StaffResponse {
	return StaffResponse{
		ID:            m.ID,
		Name:          m.Name,
		Category:      m.Category,
		CategoryLabel: m.Category.Label(),
		Color:         m.Color,
	}
}

func jsonFieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "StaffID":
		return "staff_id"
	default:
		return strings.ToLower(fe.Field())
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "hexcolor":
		return "must be a hex colour such as #FFB3BA"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
