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

// PTOHandler handles HTTP requests for PTO day operations
type PTOHandler struct {
	ptoService service.PTOServiceInterface
}

// NewPTOHandler creates a new PTO handler
func NewPTOHandler(ptoService service.PTOServiceInterface) *PTOHandler {
	return &PTOHandler{
		ptoService: ptoService,
	}
}

// CreatePTO handles POST /pto
// @Summary Record a PTO day
// @Description Record a full, half or partial day off for an employee
// @Tags pto
// @Accept json
// @Produce json
// @Param pto body service.CreatePTORequest true "PTO data"
// @Success 201 {object} service.PTOResponse "Successfully recorded PTO"
// @Failure 400 {object} map[string]interface{} "Invalid request or PTO window"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "PTO already recorded for this employee and date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pto [post]
func (h *PTOHandler) CreatePTO(c *gin.Context) {
	var req service.CreatePTORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pto, err := h.ptoService.Create(&req)
	if err != nil {
		h.writePTOError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pto)
}

// GetPTO handles GET /pto/:id
// @Summary Get PTO day by ID
// @Description Get a specific PTO record by its UUID
// @Tags pto
// @Accept json
// @Produce json
// @Param id path string true "PTO ID (UUID)"
// @Success 200 {object} service.PTOResponse "Successfully retrieved PTO"
// @Failure 400 {object} map[string]interface{} "Invalid PTO ID"
// @Failure 404 {object} map[string]interface{} "PTO day not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pto/{id} [get]
func (h *PTOHandler) GetPTO(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid PTO ID"})
		return
	}

	pto, err := h.ptoService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPTODayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pto)
}

// GetPTOForDay handles GET /pto/day/:date
// @Summary List a day's PTO
// @Description Get every PTO record for the team on one date
// @Tags pto
// @Accept json
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Param team_id query string false "Team ID (super admin only)"
// @Success 200 {array} service.PTOResponse "Successfully retrieved PTO"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 403 {object} map[string]interface{} "Caller has no team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pto/day/{date} [get]
func (h *PTOHandler) GetPTOForDay(c *gin.Context) {
	teamID, ok := auth.ScopedTeamID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserHasNoTeam.Error()})
		return
	}

	ptos, err := h.ptoService.GetByTeamAndDate(teamID, c.Param("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ptos)
}

// GetPTOForEmployee handles GET /pto/employee/:id
// @Summary List an employee's PTO
// @Description Get an employee's PTO history with pagination
// @Tags pto
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PTOListResponse "Successfully retrieved PTO"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pto/employee/{id} [get]
func (h *PTOHandler) GetPTOForEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	page, pageSize := parsePagination(c)

	ptos, err := h.ptoService.GetByEmployee(id, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ptos)
}

// UpdatePTO handles PUT /pto/:id
// @Summary Update a PTO day
// @Description Update a PTO record's type or partial-day window
// @Tags pto
// @Accept json
// @Produce json
// @Param id path string true "PTO ID (UUID)"
// @Param pto body service.UpdatePTORequest true "Fields to update"
// @Success 200 {object} service.PTOResponse "Successfully updated PTO"
// @Failure 400 {object} map[string]interface{} "Invalid request or PTO window"
// @Failure 404 {object} map[string]interface{} "PTO day not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pto/{id} [put]
func (h *PTOHandler) UpdatePTO(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid PTO ID"})
		return
	}

	var req service.UpdatePTORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pto, err := h.ptoService.Update(id, &req)
	if err != nil {
		h.writePTOError(c, err)
		return
	}

	c.JSON(http.StatusOK, pto)
}

// DeletePTO handles DELETE /pto/:id
// @Summary Delete a PTO day
// @Description Delete a PTO record by its UUID
// @Tags pto
// @Accept json
// @Produce json
// @Param id path string true "PTO ID (UUID)"
// @Success 204 "Successfully deleted PTO"
// @Failure 400 {object} map[string]interface{} "Invalid PTO ID"
// @Failure 404 {object} map[string]interface{} "PTO day not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pto/{id} [delete]
func (h *PTOHandler) DeletePTO(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid PTO ID"})
		return
	}

	if err := h.ptoService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPTODayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// writePTOError maps PTO service errors to HTTP statuses
func (h *PTOHandler) writePTOError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrPTODayNotFound),
		errors.Is(err, apperrors.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPTODayExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidDateFormat),
		errors.Is(err, apperrors.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
