package handlers

import (
	"net/http"

	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/logger"
	"duty-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RosterHandler handles HTTP requests for the duty roster
type RosterHandler struct {
	service service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(service service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{service: service}
}

// GetCycle handles GET /roster/cycle
// @Summary Get the active duty cycle
// @Description Get every date of the 26th-to-25th cycle containing the reference date, with assigned staff and annotations
// @Tags roster
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.CycleResponse "Active cycle"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Router /roster/cycle [get]
func (h *RosterHandler) GetCycle(c *gin.Context) {
	cycle, err := h.service.GetCycle(c.Query("date"))
	if err != nil {
		h.respondError(c, err, "Failed to get cycle")
		return
	}
	c.JSON(http.StatusOK, cycle)
}

// GetDay handles GET /roster/days/:date
// @Summary Get one roster date
// @Tags roster
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.DayResponse "Roster date"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Router /roster/days/{date} [get]
func (h *RosterHandler) GetDay(c *gin.Context) {
	day, err := h.service.GetDay(c.Param("date"))
	if err != nil {
		h.respondError(c, err, "Failed to get date")
		return
	}
	c.JSON(http.StatusOK, day)
}

// Assign handles POST /roster/days/:date/assignments
// @Summary Assign a staff member to a date
// @Description Duplicates and dates already holding three staff members are left unchanged
// @Tags roster
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param assignment body service.AssignRequest true "Staff member"
// @Success 200 {object} service.DayResponse "Updated date"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /roster/days/{date}/assignments [post]
func (h *RosterHandler) Assign(c *gin.Context) {
	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	day, err := h.service.Assign(c.Request.Context(), c.Param("date"), &req)
	if err != nil {
		h.respondError(c, err, "Failed to assign staff member")
		return
	}
	c.JSON(http.StatusOK, day)
}

// Unassign handles DELETE /roster/days/:date/assignments/:staffId
// @Summary Remove a staff member from a date
// @Tags roster
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param staffId path string true "Staff member ID"
// @Success 200 {object} service.DayResponse "Updated date"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Router /roster/days/{date}/assignments/{staffId} [delete]
func (h *RosterHandler) Unassign(c *gin.Context) {
	day, err := h.service.Unassign(c.Request.Context(), c.Param("date"), c.Param("staffId"))
	if err != nil {
		h.respondError(c, err, "Failed to remove staff member")
		return
	}
	c.JSON(http.StatusOK, day)
}

// Toggle handles POST /roster/days/:date/toggle
// @Summary Toggle a staff member on a date
// @Tags roster
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param assignment body service.AssignRequest true "Staff member"
// @Success 200 {object} service.DayResponse "Updated date"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /roster/days/{date}/toggle [post]
func (h *RosterHandler) Toggle(c *gin.Context) {
	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	day, err := h.service.Toggle(c.Request.Context(), c.Param("date"), &req)
	if err != nil {
		h.respondError(c, err, "Failed to toggle staff member")
		return
	}
	c.JSON(http.StatusOK, day)
}

// ClearDate handles DELETE /roster/days/:date/assignments
// @Summary Clear every assignment of a date
// @Tags roster
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.DayResponse "Cleared date"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Router /roster/days/{date}/assignments [delete]
func (h *RosterHandler) ClearDate(c *gin.Context) {
	day, err := h.service.ClearDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.respondError(c, err, "Failed to clear date")
		return
	}
	c.JSON(http.StatusOK, day)
}

// SetNote handles PUT /roster/days/:date/note
// @Summary Override the annotation of a date
// @Description An empty text suppresses the default Sunday label
// @Tags roster
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param note body service.SetNoteRequest true "Annotation"
// @Success 200 {object} service.DayResponse "Updated date"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Router /roster/days/{date}/note [put]
func (h *RosterHandler) SetNote(c *gin.Context) {
	var req service.SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	day, err := h.service.SetNote(c.Request.Context(), c.Param("date"), &req)
	if err != nil {
		h.respondError(c, err, "Failed to set note")
		return
	}
	c.JSON(http.StatusOK, day)
}

// ListStaff handles GET /roster/staff
// @Summary List staff members
// @Tags staff
// @Produce json
// @Success 200 {object} service.StaffListResponse "Staff in roster order"
// @Router /roster/staff [get]
func (h *RosterHandler) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListStaff())
}

// CreateStaff handles POST /roster/staff
// @Summary Add a staff member
// @Description The colour defaults to the next entry of the pastel palette
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body service.CreateStaffRequest true "Staff member"
// @Success 201 {object} service.StaffResponse "Created staff member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Router /roster/staff [post]
func (h *RosterHandler) CreateStaff(c *gin.Context) {
	var req service.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.CreateStaff(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create staff member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateStaff handles PUT /roster/staff/:id
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID"
// @Param staff body service.UpdateStaffRequest true "Fields to change"
// @Success 200 {object} service.StaffResponse "Updated staff member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /roster/staff/{id} [put]
func (h *RosterHandler) UpdateStaff(c *gin.Context) {
	var req service.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.UpdateStaff(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err, "Failed to update staff member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteStaff handles DELETE /roster/staff/:id
// @Summary Remove a staff member
// @Description Existing assignments of the member are kept but no longer displayed
// @Tags staff
// @Param id path string true "Staff member ID"
// @Success 204 "Staff member removed"
// @Failure 403 {object} ErrorResponse "Roster is locked"
// @Failure 503 {object} ErrorResponse "Roster not loaded yet"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /roster/staff/{id} [delete]
func (h *RosterHandler) DeleteStaff(c *gin.Context) {
	if err := h.service.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Failed to delete staff member")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStatistics handles GET /roster/stats
// @Summary Duty statistics
// @Description Duty and Sunday counts per staff member, plus faculty days of the cycle containing the reference date
// @Tags roster
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.StatisticsResponse "Statistics"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Router /roster/stats [get]
func (h *RosterHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Query("date"))
	if err != nil {
		h.respondError(c, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetStatus handles GET /roster/status
// @Summary Synchronisation status
// @Tags roster
// @Produce json
// @Success 200 {object} service.StatusResponse "Status"
// @Router /roster/status [get]
func (h *RosterHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetStatus())
}

// GetLockState handles GET /roster/lock
// @Summary Editing lock state
// @Tags lock
// @Produce json
// @Success 200 {object} service.LockStateResponse "Lock state"
// @Router /roster/lock [get]
func (h *RosterHandler) GetLockState(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetLockState())
}

// Unlock handles POST /roster/unlock
// @Summary Unlock the roster for editing
// @Tags lock
// @Accept json
// @Produce json
// @Param passcode body service.UnlockRequest true "Passcode"
// @Success 200 {object} service.LockStateResponse "Lock state"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Invalid passcode"
// @Router /roster/unlock [post]
func (h *RosterHandler) Unlock(c *gin.Context) {
	var req service.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	state, err := h.service.Unlock(&req)
	if err != nil {
		h.respondError(c, err, "Failed to unlock roster")
		return
	}
	c.JSON(http.StatusOK, state)
}

// Lock handles POST /roster/lock
// @Summary Lock the roster
// @Tags lock
// @Produce json
// @Success 200 {object} service.LockStateResponse "Lock state"
// @Router /roster/lock [post]
func (h *RosterHandler) Lock(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Lock())
}

// respondError maps service errors to HTTP status codes
func (h *RosterHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
