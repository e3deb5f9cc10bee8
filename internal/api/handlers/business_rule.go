package handlers

import (
	"errors"
	"net/http"

	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BusinessRuleHandler handles HTTP requests for business rule operations
type BusinessRuleHandler struct {
	ruleService service.BusinessRuleServiceInterface
}

// NewBusinessRuleHandler creates a new business rule handler
func NewBusinessRuleHandler(ruleService service.BusinessRuleServiceInterface) *BusinessRuleHandler {
	return &BusinessRuleHandler{
		ruleService: ruleService,
	}
}

// CreateBusinessRule handles POST /business-rules
// @Summary Create a business rule
// @Description Create a coverage rule for a job function
// @Tags business-rules
// @Accept json
// @Produce json
// @Param rule body service.CreateBusinessRuleRequest true "Rule data"
// @Success 201 {object} service.BusinessRuleResponse "Successfully created rule"
// @Failure 400 {object} map[string]interface{} "Invalid request or rule window"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /business-rules [post]
func (h *BusinessRuleHandler) CreateBusinessRule(c *gin.Context) {
	var req service.CreateBusinessRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetBusinessRule handles GET /business-rules/:id
// @Summary Get business rule by ID
// @Description Get a specific business rule by its UUID
// @Tags business-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} service.BusinessRuleResponse "Successfully retrieved rule"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Business rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /business-rules/{id} [get]
func (h *BusinessRuleHandler) GetBusinessRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	rule, err := h.ruleService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// GetAllBusinessRules handles GET /business-rules
// @Summary List all business rules
// @Description Get all business rules with pagination, or filter by job function name
// @Tags business-rules
// @Accept json
// @Produce json
// @Param job_function query string false "Filter by job function name"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BusinessRuleListResponse "Successfully retrieved rules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /business-rules [get]
func (h *BusinessRuleHandler) GetAllBusinessRules(c *gin.Context) {
	if name := c.Query("job_function"); name != "" {
		rules, err := h.ruleService.GetByJobFunctionName(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rules)
		return
	}

	page, pageSize := parsePagination(c)

	rules, err := h.ruleService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// UpdateBusinessRule handles PUT /business-rules/:id
// @Summary Update a business rule
// @Description Update a rule's window, headcount or active flag
// @Tags business-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param rule body service.UpdateBusinessRuleRequest true "Fields to update"
// @Success 200 {object} service.BusinessRuleResponse "Successfully updated rule"
// @Failure 400 {object} map[string]interface{} "Invalid request or rule window"
// @Failure 404 {object} map[string]interface{} "Business rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /business-rules/{id} [put]
func (h *BusinessRuleHandler) UpdateBusinessRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	var req service.UpdateBusinessRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeleteBusinessRule handles DELETE /business-rules/:id
// @Summary Delete a business rule
// @Description Delete a business rule by its UUID
// @Tags business-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 204 "Successfully deleted rule"
// @Failure 400 {object} map[string]interface{} "Invalid rule ID"
// @Failure 404 {object} map[string]interface{} "Business rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /business-rules/{id} [delete]
func (h *BusinessRuleHandler) DeleteBusinessRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	if err := h.ruleService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrBusinessRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
