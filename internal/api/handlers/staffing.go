package handlers

import (
	"errors"
	"net/http"

	"shiftboard-backend/internal/auth"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StaffingHandler handles HTTP requests for staffing targets and adequacy
type StaffingHandler struct {
	staffingService service.StaffingServiceInterface
}

// NewStaffingHandler creates a new staffing handler
func NewStaffingHandler(staffingService service.StaffingServiceInterface) *StaffingHandler {
	return &StaffingHandler{
		staffingService: staffingService,
	}
}

// UpsertTarget handles PUT /staffing/targets
// @Summary Set a daily staffing target
// @Description Create or replace the workload target for one job function on one date
// @Tags staffing
// @Accept json
// @Produce json
// @Param target body service.UpsertTargetRequest true "Target data"
// @Success 200 {object} service.DailyTargetResponse "Successfully stored target"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Job function not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /staffing/targets [put]
func (h *StaffingHandler) UpsertTarget(c *gin.Context) {
	var req service.UpsertTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := h.staffingService.UpsertTarget(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobFunctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, target)
}

// GetTargets handles GET /staffing/targets/:date
// @Summary List a day's staffing targets
// @Description Get every stored workload target for one date
// @Tags staffing
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} service.DailyTargetResponse "Successfully retrieved targets"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /staffing/targets/{date} [get]
func (h *StaffingHandler) GetTargets(c *gin.Context) {
	targets, err := h.staffingService.GetTargets(c.Param("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, targets)
}

// GetSummary handles GET /staffing/summary/:date
// @Summary Get the staffing adequacy summary
// @Description Compare scheduled hours against required hours per job function, with meter stations pooled into one row
// @Tags staffing
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Param team_id query string false "Team ID (super admin only)"
// @Success 200 {object} service.StaffingSummaryResponse "Successfully retrieved summary"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 403 {object} map[string]interface{} "Caller has no team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /staffing/summary/{date} [get]
func (h *StaffingHandler) GetSummary(c *gin.Context) {
	teamID, ok := auth.ScopedTeamID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserHasNoTeam.Error()})
		return
	}

	summary, err := h.staffingService.GetSummary(teamID, c.Param("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
