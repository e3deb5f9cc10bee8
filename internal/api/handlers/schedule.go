package handlers

import (
	"errors"
	"net/http"

	"shiftboard-backend/internal/auth"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for schedule operations
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// CopyDayRequest represents the request to copy a schedule day
type CopyDayRequest struct {
	SourceDate string `json:"source_date" binding:"required"`
	TargetDate string `json:"target_date" binding:"required"`
}

// GetDay handles GET /schedule/:date
// @Summary Get a day's schedule
// @Description Get the team's assignments for one date plus the quarter-hour display grid
// @Tags schedule
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Param team_id query string false "Team ID (super admin only)"
// @Success 200 {object} service.DayScheduleResponse "Successfully retrieved schedule"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 403 {object} map[string]interface{} "Caller has no team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/{date} [get]
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	teamID, ok := auth.ScopedTeamID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserHasNoTeam.Error()})
		return
	}

	day, err := h.scheduleService.GetDay(teamID, c.Param("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, day)
}

// GetTimeSlots handles GET /schedule/slots
// @Summary Get the display slot grid
// @Description Get the quarter-hour slot grid classified against the active shifts' break windows
// @Tags schedule
// @Accept json
// @Produce json
// @Success 200 {array} scheduling.TimeSlot "Successfully retrieved slots"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/slots [get]
func (h *ScheduleHandler) GetTimeSlots(c *gin.Context) {
	slots, err := h.scheduleService.GetTimeSlots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ValidateAssignment handles POST /schedule/validate
// @Summary Validate a candidate assignment
// @Description Run the assignment rules without persisting anything. Always returns 200 with the full violation list.
// @Tags schedule
// @Accept json
// @Produce json
// @Param assignment body service.ValidateAssignmentRequest true "Candidate assignment"
// @Success 200 {object} scheduling.ValidationResult "Validation outcome"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/validate [post]
func (h *ScheduleHandler) ValidateAssignment(c *gin.Context) {
	var req service.ValidateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scheduleService.Validate(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateAssignment handles POST /schedule/assignments
// @Summary Create an assignment
// @Description Validate and persist a new assignment. Rule violations return 422 with the full violation list and nothing is written.
// @Tags schedule
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee, job function or shift not found"
// @Failure 422 {object} scheduling.ValidationResult "Assignment violates scheduling rules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/assignments [post]
func (h *ScheduleHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, result, err := h.scheduleService.CreateAssignment(&req)
	if err != nil {
		h.writeAssignmentError(c, err)
		return
	}
	if result != nil && !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment handles PUT /schedule/assignments/:id
// @Summary Update an assignment
// @Description Validate and persist changes to an assignment. Rule violations return 422 and nothing is written.
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} service.AssignmentResponse "Successfully updated assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 422 {object} scheduling.ValidationResult "Assignment violates scheduling rules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/assignments/{id} [put]
func (h *ScheduleHandler) UpdateAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, result, err := h.scheduleService.UpdateAssignment(id, &req)
	if err != nil {
		h.writeAssignmentError(c, err)
		return
	}
	if result != nil && !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /schedule/assignments/:id
// @Summary Delete an assignment
// @Description Delete an assignment by its UUID
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully deleted assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/assignments/{id} [delete]
func (h *ScheduleHandler) DeleteAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	if err := h.scheduleService.DeleteAssignment(id); err != nil {
		if errors.Is(err, apperrors.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// CopyDay handles POST /schedule/copy
// @Summary Copy a schedule day
// @Description Replicate the team's assignments from one date onto another, replacing the target day
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body CopyDayRequest true "Source and target dates"
// @Param team_id query string false "Team ID (super admin only)"
// @Success 200 {object} service.CopyDayResponse "Successfully copied schedule"
// @Failure 400 {object} map[string]interface{} "Invalid dates or empty source day"
// @Failure 403 {object} map[string]interface{} "Caller has no team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/copy [post]
func (h *ScheduleHandler) CopyDay(c *gin.Context) {
	teamID, ok := auth.ScopedTeamID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserHasNoTeam.Error()})
		return
	}

	var req CopyDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.scheduleService.CopyDay(teamID, req.SourceDate, req.TargetDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) ||
			errors.Is(err, apperrors.ErrInvalidTimeRange) ||
			errors.Is(err, apperrors.ErrNothingToCopy) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClearDay handles DELETE /schedule/:date
// @Summary Clear a schedule day
// @Description Remove every assignment for the team on one date
// @Tags schedule
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Param team_id query string false "Team ID (super admin only)"
// @Success 200 {object} map[string]interface{} "Number of assignments removed"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 403 {object} map[string]interface{} "Caller has no team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule/{date} [delete]
func (h *ScheduleHandler) ClearDay(c *gin.Context) {
	teamID, ok := auth.ScopedTeamID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserHasNoTeam.Error()})
		return
	}

	deleted, err := h.scheduleService.ClearDay(teamID, c.Param("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// writeAssignmentError maps assignment service errors to HTTP statuses
func (h *ScheduleHandler) writeAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmployeeNotFound),
		errors.Is(err, apperrors.ErrJobFunctionNotFound),
		errors.Is(err, apperrors.ErrShiftNotFound),
		errors.Is(err, apperrors.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidDateFormat),
		errors.Is(err, apperrors.ErrEmployeeInactive),
		errors.Is(err, apperrors.ErrJobFunctionInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
