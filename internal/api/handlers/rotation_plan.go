package handlers

import (
	"net/http"
	"strconv"

	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RotationPlanHandler handles HTTP requests for daily rotation plans and
// their rotation periods
type RotationPlanHandler struct {
	planService service.RotationPlanServiceInterface
}

// NewRotationPlanHandler creates a new rotation plan handler
func NewRotationPlanHandler(planService service.RotationPlanServiceInterface) *RotationPlanHandler {
	return &RotationPlanHandler{
		planService: planService,
	}
}

// CreatePlan handles POST /rotation-plans
// @Summary Create a new daily rotation plan
// @Description Create a new daily rotation plan tied to a schedule type
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param plan body service.CreateRotationPlanRequest true "Plan data"
// @Success 201 {object} service.RotationPlanResponse "Successfully created plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Schedule type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-plans [post]
func (h *RotationPlanHandler) CreatePlan(c *gin.Context) {
	var req service.CreateRotationPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /rotation-plans/:id
// @Summary Get rotation plan by ID
// @Description Get a rotation plan with its periods
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.RotationPlanResponse "Successfully retrieved plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-plans/{id} [get]
func (h *RotationPlanHandler) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	plan, err := h.planService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlans handles GET /rotation-plans
// @Summary List all rotation plans
// @Description Get all daily rotation plans with pagination support
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RotationPlanListResponse "Successfully retrieved plans"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-plans [get]
func (h *RotationPlanHandler) ListPlans(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.planService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePlan handles PUT /rotation-plans/:id
// @Summary Update a rotation plan
// @Description Update a rotation plan's details
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param plan body service.UpdateRotationPlanRequest true "Plan data"
// @Success 200 {object} service.RotationPlanResponse "Successfully updated plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-plans/{id} [put]
func (h *RotationPlanHandler) UpdatePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	var req service.UpdateRotationPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /rotation-plans/:id
// @Summary Delete a rotation plan
// @Description Delete a rotation plan that no shift schedule weekday references
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 204 "Successfully deleted plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 409 {object} map[string]interface{} "Plan still referenced by weekday assignments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-plans/{id} [delete]
func (h *RotationPlanHandler) DeletePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	if err := h.planService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePeriod handles POST /rotation-plans/:id/periods
// @Summary Create a rotation period
// @Description Create a new rotation period under a plan; the date range must not overlap the plan's other periods
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param period body service.SaveRotationPeriodRequest true "Period data"
// @Success 201 {object} service.RotationPeriodResponse "Successfully created period"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 409 {object} map[string]interface{} "Period overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-plans/{id}/periods [post]
func (h *RotationPlanHandler) CreatePeriod(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	var req service.SaveRotationPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.planService.CreatePeriod(planID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, period)
}

// UpdatePeriod handles PUT /rotation-periods/:id
// @Summary Update a rotation period
// @Description Update a rotation period; the record being edited is excluded from the overlap check
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Param period body service.SaveRotationPeriodRequest true "Period data"
// @Success 200 {object} service.RotationPeriodResponse "Successfully updated period"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 409 {object} map[string]interface{} "Period overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-periods/{id} [put]
func (h *RotationPlanHandler) UpdatePeriod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	var req service.SaveRotationPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.planService.UpdatePeriod(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// DeletePeriod handles DELETE /rotation-periods/:id
// @Summary Delete a rotation period
// @Description Delete a rotation period
// @Tags rotation-plans
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 204 "Successfully deleted period"
// @Failure 400 {object} map[string]interface{} "Invalid period ID"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-periods/{id} [delete]
func (h *RotationPlanHandler) DeletePeriod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	if err := h.planService.DeletePeriod(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
