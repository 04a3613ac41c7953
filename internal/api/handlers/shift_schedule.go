package handlers

import (
	"net/http"
	"strconv"

	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftScheduleHandler handles HTTP requests for the shift schedule hierarchy
type ShiftScheduleHandler struct {
	scheduleService service.ShiftScheduleServiceInterface
}

// NewShiftScheduleHandler creates a new shift schedule handler
func NewShiftScheduleHandler(scheduleService service.ShiftScheduleServiceInterface) *ShiftScheduleHandler {
	return &ShiftScheduleHandler{
		scheduleService: scheduleService,
	}
}

// CreateSchedule handles POST /shift-schedules
// @Summary Create a new shift schedule
// @Description Create a new shift schedule of kind day or shift
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param schedule body service.CreateShiftScheduleRequest true "Schedule data"
// @Success 201 {object} service.ShiftScheduleResponse "Successfully created schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shift-schedules [post]
func (h *ShiftScheduleHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateShiftScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedule handles GET /shift-schedules/:id
// @Summary Get shift schedule by ID
// @Description Get a shift schedule with its periods
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} service.ShiftScheduleResponse "Successfully retrieved schedule"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shift-schedules/{id} [get]
func (h *ShiftScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	schedule, err := h.scheduleService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListSchedules handles GET /shift-schedules
// @Summary List all shift schedules
// @Description Get all shift schedules with pagination support
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ShiftScheduleListResponse "Successfully retrieved schedules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shift-schedules [get]
func (h *ShiftScheduleHandler) ListSchedules(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.scheduleService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSchedule handles PUT /shift-schedules/:id
// @Summary Update a shift schedule
// @Description Update a shift schedule's details
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param schedule body service.UpdateShiftScheduleRequest true "Schedule data"
// @Success 200 {object} service.ShiftScheduleResponse "Successfully updated schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shift-schedules/{id} [put]
func (h *ShiftScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	var req service.UpdateShiftScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule handles DELETE /shift-schedules/:id
// @Summary Delete a shift schedule
// @Description Delete a shift schedule and its periods, weeks and daily plans
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 204 "Successfully deleted schedule"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shift-schedules/{id} [delete]
func (h *ShiftScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	if err := h.scheduleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePeriod handles POST /shift-schedules/:id/periods
// @Summary Create a schedule period
// @Description Create a new period under a schedule; the date range must not overlap the schedule's other periods
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param period body service.SaveSchedulePeriodRequest true "Period data"
// @Success 201 {object} service.SchedulePeriodResponse "Successfully created period"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 409 {object} map[string]interface{} "Period overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /shift-schedules/{id}/periods [post]
func (h *ShiftScheduleHandler) CreatePeriod(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	var req service.SaveSchedulePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.scheduleService.CreatePeriod(scheduleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, period)
}

// UpdatePeriod handles PUT /schedule-periods/:id
// @Summary Update a schedule period
// @Description Update a schedule period; the record being edited is excluded from the overlap check
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Param period body service.SaveSchedulePeriodRequest true "Period data"
// @Success 200 {object} service.SchedulePeriodResponse "Successfully updated period"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 409 {object} map[string]interface{} "Period overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-periods/{id} [put]
func (h *ShiftScheduleHandler) UpdatePeriod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	var req service.SaveSchedulePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.scheduleService.UpdatePeriod(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// DeletePeriod handles DELETE /schedule-periods/:id
// @Summary Delete a schedule period
// @Description Delete a schedule period and its weeks
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 204 "Successfully deleted period"
// @Failure 400 {object} map[string]interface{} "Invalid period ID"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-periods/{id} [delete]
func (h *ShiftScheduleHandler) DeletePeriod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	if err := h.scheduleService.DeletePeriod(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DuplicatePeriod handles POST /schedule-periods/:id/duplicate
// @Summary Duplicate a schedule period
// @Description Copy a period with all its weeks and weekday assignments to a new date range
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Source period ID (UUID)"
// @Param period body service.SaveSchedulePeriodRequest true "New date range"
// @Success 201 {object} service.SchedulePeriodResponse "Successfully duplicated period"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 409 {object} map[string]interface{} "New range overlaps an existing period"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-periods/{id}/duplicate [post]
func (h *ShiftScheduleHandler) DuplicatePeriod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	var req service.SaveSchedulePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.scheduleService.DuplicatePeriod(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, period)
}

// CreateWeek handles POST /schedule-periods/:id/weeks
// @Summary Append a week to a period
// @Description Create a new week numbered after the period's current last week
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 201 {object} service.ScheduleWeekResponse "Successfully created week"
// @Failure 400 {object} map[string]interface{} "Invalid period ID"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-periods/{id}/weeks [post]
func (h *ShiftScheduleHandler) CreateWeek(c *gin.Context) {
	periodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	week, err := h.scheduleService.CreateWeek(periodID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, week)
}

// ListWeeks handles GET /schedule-periods/:id/weeks
// @Summary List a period's weeks
// @Description Get all weeks of a period in week-number order
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 200 {array} service.ScheduleWeekResponse "Successfully retrieved weeks"
// @Failure 400 {object} map[string]interface{} "Invalid period ID"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-periods/{id}/weeks [get]
func (h *ShiftScheduleHandler) ListWeeks(c *gin.Context) {
	periodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	weeks, err := h.scheduleService.GetWeeks(periodID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, weeks)
}

// GetWeek handles GET /schedule-weeks/:id
// @Summary Get week by ID
// @Description Get a week with its weekday assignments
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Week ID (UUID)"
// @Success 200 {object} service.ScheduleWeekResponse "Successfully retrieved week"
// @Failure 400 {object} map[string]interface{} "Invalid week ID"
// @Failure 404 {object} map[string]interface{} "Week not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-weeks/{id} [get]
func (h *ShiftScheduleHandler) GetWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week ID"})
		return
	}

	week, err := h.scheduleService.GetWeek(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, week)
}

// DeleteWeek handles DELETE /schedule-weeks/:id
// @Summary Delete a week
// @Description Delete a week; the period's remaining weeks are renumbered to stay dense
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Week ID (UUID)"
// @Success 204 "Successfully deleted week"
// @Failure 400 {object} map[string]interface{} "Invalid week ID"
// @Failure 404 {object} map[string]interface{} "Week not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-weeks/{id} [delete]
func (h *ShiftScheduleHandler) DeleteWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week ID"})
		return
	}

	if err := h.scheduleService.DeleteWeek(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DuplicateWeek handles POST /schedule-weeks/:id/duplicate
// @Summary Duplicate a week
// @Description Copy a week with its weekday assignments to the end of the same period
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Source week ID (UUID)"
// @Success 201 {object} service.ScheduleWeekResponse "Successfully duplicated week"
// @Failure 400 {object} map[string]interface{} "Invalid week ID"
// @Failure 404 {object} map[string]interface{} "Week not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-weeks/{id}/duplicate [post]
func (h *ShiftScheduleHandler) DuplicateWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week ID"})
		return
	}

	week, err := h.scheduleService.DuplicateWeek(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, week)
}

// AssignDailyPlan handles PUT /schedule-weeks/:id/daily-plans
// @Summary Assign a rotation plan to a weekday
// @Description Upsert the rotation plan of a week's weekday; the plan must own at least one rotation period
// @Tags shift-schedules
// @Accept json
// @Produce json
// @Param id path string true "Week ID (UUID)"
// @Param assignment body service.AssignDailyPlanRequest true "Weekday assignment"
// @Success 200 {object} service.DailyPlanResponse "Successfully assigned plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Week or plan not found"
// @Failure 409 {object} map[string]interface{} "Plan has no rotation periods"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-weeks/{id}/daily-plans [put]
func (h *ShiftScheduleHandler) AssignDailyPlan(c *gin.Context) {
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week ID"})
		return
	}

	var req service.AssignDailyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.scheduleService.AssignDailyPlan(weekID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
