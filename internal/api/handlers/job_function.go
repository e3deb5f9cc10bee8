package handlers

import (
	"errors"
	"net/http"

	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JobFunctionHandler handles HTTP requests for job function operations
type JobFunctionHandler struct {
	jobFunctionService service.JobFunctionServiceInterface
}

// NewJobFunctionHandler creates a new job function handler
func NewJobFunctionHandler(jobFunctionService service.JobFunctionServiceInterface) *JobFunctionHandler {
	return &JobFunctionHandler{
		jobFunctionService: jobFunctionService,
	}
}

// CreateJobFunction handles POST /job-functions
// @Summary Create a new job function
// @Description Create a new job function with optional productivity rate
// @Tags job-functions
// @Accept json
// @Produce json
// @Param job_function body service.CreateJobFunctionRequest true "Job function data"
// @Success 201 {object} service.JobFunctionResponse "Successfully created job function"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Job function name already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /job-functions [post]
func (h *JobFunctionHandler) CreateJobFunction(c *gin.Context) {
	var req service.CreateJobFunctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jf, err := h.jobFunctionService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobFunctionExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, jf)
}

// GetJobFunction handles GET /job-functions/:id
// @Summary Get job function by ID
// @Description Get a specific job function by its UUID
// @Tags job-functions
// @Accept json
// @Produce json
// @Param id path string true "Job function ID (UUID)"
// @Success 200 {object} service.JobFunctionResponse "Successfully retrieved job function"
// @Failure 400 {object} map[string]interface{} "Invalid job function ID"
// @Failure 404 {object} map[string]interface{} "Job function not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /job-functions/{id} [get]
func (h *JobFunctionHandler) GetJobFunction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job function ID"})
		return
	}

	jf, err := h.jobFunctionService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobFunctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jf)
}

// GetAllJobFunctions handles GET /job-functions
// @Summary List all job functions
// @Description Get all job functions with pagination
// @Tags job-functions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.JobFunctionListResponse "Successfully retrieved job functions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /job-functions [get]
func (h *JobFunctionHandler) GetAllJobFunctions(c *gin.Context) {
	page, pageSize := parsePagination(c)

	jfs, err := h.jobFunctionService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jfs)
}

// GetGroupedCatalog handles GET /job-functions/grouped
// @Summary List the grouped job function catalog
// @Description Get the active catalog with interchangeable meter stations collapsed into one group entry
// @Tags job-functions
// @Accept json
// @Produce json
// @Success 200 {array} service.GroupedJobFunctionResponse "Successfully retrieved grouped catalog"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /job-functions/grouped [get]
func (h *JobFunctionHandler) GetGroupedCatalog(c *gin.Context) {
	catalog, err := h.jobFunctionService.GetGroupedCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// UpdateJobFunction handles PUT /job-functions/:id
// @Summary Update a job function
// @Description Update a job function's fields
// @Tags job-functions
// @Accept json
// @Produce json
// @Param id path string true "Job function ID (UUID)"
// @Param job_function body service.UpdateJobFunctionRequest true "Fields to update"
// @Success 200 {object} service.JobFunctionResponse "Successfully updated job function"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Job function not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /job-functions/{id} [put]
func (h *JobFunctionHandler) UpdateJobFunction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job function ID"})
		return
	}

	var req service.UpdateJobFunctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jf, err := h.jobFunctionService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobFunctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jf)
}

// DeleteJobFunction handles DELETE /job-functions/:id
// @Summary Delete a job function
// @Description Delete a job function by its UUID
// @Tags job-functions
// @Accept json
// @Produce json
// @Param id path string true "Job function ID (UUID)"
// @Success 204 "Successfully deleted job function"
// @Failure 400 {object} map[string]interface{} "Invalid job function ID"
// @Failure 404 {object} map[string]interface{} "Job function not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /job-functions/{id} [delete]
func (h *JobFunctionHandler) DeleteJobFunction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job function ID"})
		return
	}

	if err := h.jobFunctionService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrJobFunctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
