package handlers

import (
	"errors"
	"net/http"

	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PreferredAssignmentHandler handles HTTP requests for preferred assignment operations
type PreferredAssignmentHandler struct {
	prefService service.PreferredAssignmentServiceInterface
}

// NewPreferredAssignmentHandler creates a new preferred assignment handler
func NewPreferredAssignmentHandler(prefService service.PreferredAssignmentServiceInterface) *PreferredAssignmentHandler {
	return &PreferredAssignmentHandler{
		prefService: prefService,
	}
}

// CreatePreferredAssignment handles POST /preferred-assignments
// @Summary Create a preferred assignment
// @Description Record an employee's default job function and hours for schedule pre-filling
// @Tags preferred-assignments
// @Accept json
// @Produce json
// @Param preference body service.CreatePreferredAssignmentRequest true "Preference data"
// @Success 201 {object} service.PreferredAssignmentResponse "Successfully created preference"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee or job function not found"
// @Failure 409 {object} map[string]interface{} "Preference already exists for this pair"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /preferred-assignments [post]
func (h *PreferredAssignmentHandler) CreatePreferredAssignment(c *gin.Context) {
	var req service.CreatePreferredAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := h.prefService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmployeeNotFound),
			errors.Is(err, apperrors.ErrJobFunctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPreferredAssignmentExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, pref)
}

// GetAllPreferredAssignments handles GET /preferred-assignments
// @Summary List all preferred assignments
// @Description Get all preferred assignments with pagination
// @Tags preferred-assignments
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PreferredAssignmentListResponse "Successfully retrieved preferences"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /preferred-assignments [get]
func (h *PreferredAssignmentHandler) GetAllPreferredAssignments(c *gin.Context) {
	page, pageSize := parsePagination(c)

	prefs, err := h.prefService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// GetPreferredAssignmentsForEmployee handles GET /preferred-assignments/employee/:id
// @Summary List an employee's preferred assignments
// @Description Get every preference recorded for one employee
// @Tags preferred-assignments
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {array} service.PreferredAssignmentResponse "Successfully retrieved preferences"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /preferred-assignments/employee/{id} [get]
func (h *PreferredAssignmentHandler) GetPreferredAssignmentsForEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	prefs, err := h.prefService.GetByEmployee(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferredAssignment handles PUT /preferred-assignments/:id
// @Summary Update a preferred assignment
// @Description Update a preference's job function or default hours
// @Tags preferred-assignments
// @Accept json
// @Produce json
// @Param id path string true "Preference ID (UUID)"
// @Param preference body service.UpdatePreferredAssignmentRequest true "Fields to update"
// @Success 200 {object} service.PreferredAssignmentResponse "Successfully updated preference"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Preferred assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /preferred-assignments/{id} [put]
func (h *PreferredAssignmentHandler) UpdatePreferredAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preference ID"})
		return
	}

	var req service.UpdatePreferredAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := h.prefService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPreferredAssignmentNotFound),
			errors.Is(err, apperrors.ErrJobFunctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, pref)
}

// DeletePreferredAssignment handles DELETE /preferred-assignments/:id
// @Summary Delete a preferred assignment
// @Description Delete a preference by its UUID
// @Tags preferred-assignments
// @Accept json
// @Produce json
// @Param id path string true "Preference ID (UUID)"
// @Success 204 "Successfully deleted preference"
// @Failure 400 {object} map[string]interface{} "Invalid preference ID"
// @Failure 404 {object} map[string]interface{} "Preferred assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /preferred-assignments/{id} [delete]
func (h *PreferredAssignmentHandler) DeletePreferredAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preference ID"})
		return
	}

	if err := h.prefService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPreferredAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
