package handlers

import (
	"net/http"
	"strconv"

	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleTypeHandler handles HTTP requests for schedule type operations
type ScheduleTypeHandler struct {
	scheduleTypeService service.ScheduleTypeServiceInterface
}

// NewScheduleTypeHandler creates a new schedule type handler
func NewScheduleTypeHandler(scheduleTypeService service.ScheduleTypeServiceInterface) *ScheduleTypeHandler {
	return &ScheduleTypeHandler{
		scheduleTypeService: scheduleTypeService,
	}
}

// CreateScheduleType handles POST /schedule-types
// @Summary Create a new schedule type
// @Description Create a new schedule type with a short code and display color
// @Tags schedule-types
// @Accept json
// @Produce json
// @Param scheduleType body service.CreateScheduleTypeRequest true "Schedule type data"
// @Success 201 {object} service.ScheduleTypeResponse "Successfully created schedule type"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-types [post]
func (h *ScheduleTypeHandler) CreateScheduleType(c *gin.Context) {
	var req service.CreateScheduleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scheduleType, err := h.scheduleTypeService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, scheduleType)
}

// GetScheduleType handles GET /schedule-types/:id
// @Summary Get schedule type by ID
// @Description Get a specific schedule type by its UUID
// @Tags schedule-types
// @Accept json
// @Produce json
// @Param id path string true "Schedule type ID (UUID)"
// @Success 200 {object} service.ScheduleTypeResponse "Successfully retrieved schedule type"
// @Failure 400 {object} map[string]interface{} "Invalid schedule type ID"
// @Failure 404 {object} map[string]interface{} "Schedule type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-types/{id} [get]
func (h *ScheduleTypeHandler) GetScheduleType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule type ID"})
		return
	}

	scheduleType, err := h.scheduleTypeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scheduleType)
}

// ListScheduleTypes handles GET /schedule-types
// @Summary List all schedule types
// @Description Get all schedule types with pagination support
// @Tags schedule-types
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ScheduleTypeListResponse "Successfully retrieved schedule types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-types [get]
func (h *ScheduleTypeHandler) ListScheduleTypes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.scheduleTypeService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateScheduleType handles PUT /schedule-types/:id
// @Summary Update a schedule type
// @Description Update a schedule type's details
// @Tags schedule-types
// @Accept json
// @Produce json
// @Param id path string true "Schedule type ID (UUID)"
// @Param scheduleType body service.UpdateScheduleTypeRequest true "Schedule type data"
// @Success 200 {object} service.ScheduleTypeResponse "Successfully updated schedule type"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Schedule type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-types/{id} [put]
func (h *ScheduleTypeHandler) UpdateScheduleType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule type ID"})
		return
	}

	var req service.UpdateScheduleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scheduleType, err := h.scheduleTypeService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scheduleType)
}

// DeleteScheduleType handles DELETE /schedule-types/:id
// @Summary Delete a schedule type
// @Description Delete a schedule type that no rotation plan references
// @Tags schedule-types
// @Accept json
// @Produce json
// @Param id path string true "Schedule type ID (UUID)"
// @Success 204 "Successfully deleted schedule type"
// @Failure 400 {object} map[string]interface{} "Invalid schedule type ID"
// @Failure 404 {object} map[string]interface{} "Schedule type not found"
// @Failure 409 {object} map[string]interface{} "Schedule type still referenced by plans"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-types/{id} [delete]
func (h *ScheduleTypeHandler) DeleteScheduleType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule type ID"})
		return
	}

	if err := h.scheduleTypeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
