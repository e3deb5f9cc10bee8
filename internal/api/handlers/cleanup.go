package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CleanupHandler handles HTTP requests for retention cleanup operations
type CleanupHandler struct {
	cleanupService service.CleanupServiceInterface
}

// NewCleanupHandler creates a new cleanup handler
func NewCleanupHandler(cleanupService service.CleanupServiceInterface) *CleanupHandler {
	return &CleanupHandler{
		cleanupService: cleanupService,
	}
}

// RunCleanup handles POST /cleanup/run
// @Summary Run the retention sweep
// @Description Archive and purge assignments older than the retention window. Requires super admin.
// @Tags cleanup
// @Accept json
// @Produce json
// @Success 200 {object} service.CleanupResult "Sweep outcome"
// @Failure 400 {object} map[string]interface{} "Retention period below the allowed minimum"
// @Failure 403 {object} map[string]interface{} "Super admin required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cleanup/run [post]
func (h *CleanupHandler) RunCleanup(c *gin.Context) {
	result, err := h.cleanupService.Run()
	if err != nil {
		if errors.Is(err, apperrors.ErrRetentionTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCleanupLogs handles GET /cleanup/logs
// @Summary List recent cleanup runs
// @Description Get the audit log of recent retention sweeps, newest first. Requires super admin.
// @Tags cleanup
// @Accept json
// @Produce json
// @Param limit query int false "Maximum rows to return" default(20)
// @Success 200 {array} service.CleanupLogResponse "Successfully retrieved logs"
// @Failure 403 {object} map[string]interface{} "Super admin required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /cleanup/logs [get]
func (h *CleanupHandler) GetCleanupLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	logs, err := h.cleanupService.GetRecentLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
