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

// ShiftSwapHandler handles HTTP requests for shift swap operations
type ShiftSwapHandler struct {
	swapService service.ShiftSwapServiceInterface
}

// NewShiftSwapHandler creates a new shift swap handler
func NewShiftSwapHandler(swapService service.ShiftSwapServiceInterface) *ShiftSwapHandler {
	return &ShiftSwapHandler{
		swapService: swapService,
	}
}

// UpsertSwap handles POST /shift-swaps
// @Summary Record a shift swap
// @Description Record that an employee works a different shift on one date. A second swap for the same employee and date replaces the first.
// @Tags shift-swaps
// @Accept json
// @Produce json
// @Param swap body service.UpsertSwapRequest true "Swap data"
// @Success 200 {object} service.ShiftSwapResponse "Successfully recorded swap"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee or shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-swaps [post]
func (h *ShiftSwapHandler) UpsertSwap(c *gin.Context) {
	var req service.UpsertSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	swap, err := h.swapService.Upsert(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmployeeNotFound),
			errors.Is(err, apperrors.ErrShiftNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err),
			errors.Is(err, apperrors.ErrInvalidDateFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, swap)
}

// GetSwapsForDay handles GET /shift-swaps/:date
// @Summary List a day's shift swaps
// @Description Get every shift swap for the team on one date
// @Tags shift-swaps
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Param team_id query string false "Team ID (super admin only)"
// @Success 200 {array} service.ShiftSwapResponse "Successfully retrieved swaps"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 403 {object} map[string]interface{} "Caller has no team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-swaps/{date} [get]
func (h *ShiftSwapHandler) GetSwapsForDay(c *gin.Context) {
	teamID, ok := auth.ScopedTeamID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserHasNoTeam.Error()})
		return
	}

	swaps, err := h.swapService.GetByTeamAndDate(teamID, c.Param("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, swaps)
}

// DeleteSwap handles DELETE /shift-swaps/:id
// @Summary Delete a shift swap
// @Description Remove a swap so the employee reverts to their planned shift. Deleting an already-removed swap succeeds.
// @Tags shift-swaps
// @Accept json
// @Produce json
// @Param id path string true "Swap ID (UUID)"
// @Success 204 "Successfully deleted swap"
// @Failure 400 {object} map[string]interface{} "Invalid swap ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-swaps/{id} [delete]
func (h *ShiftSwapHandler) DeleteSwap(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid swap ID"})
		return
	}

	if err := h.swapService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
