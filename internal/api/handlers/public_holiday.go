package handlers

import (
	"net/http"
	"strconv"

	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHolidayHandler handles HTTP requests for public holidays
type PublicHolidayHandler struct {
	holidayService service.PublicHolidayServiceInterface
}

// NewPublicHolidayHandler creates a new public holiday handler
func NewPublicHolidayHandler(holidayService service.PublicHolidayServiceInterface) *PublicHolidayHandler {
	return &PublicHolidayHandler{
		holidayService: holidayService,
	}
}

// CreateHoliday handles POST /public-holidays
// @Summary Create a new public holiday
// @Description Create a new public holiday; a calendar date can carry only one
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param holiday body service.SavePublicHolidayRequest true "Holiday data"
// @Success 201 {object} service.PublicHolidayResponse "Successfully created holiday"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Date already marked as a holiday"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /public-holidays [post]
func (h *PublicHolidayHandler) CreateHoliday(c *gin.Context) {
	var req service.SavePublicHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.holidayService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// GetHoliday handles GET /public-holidays/:id
// @Summary Get public holiday by ID
// @Description Get a specific public holiday by its UUID
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday ID (UUID)"
// @Success 200 {object} service.PublicHolidayResponse "Successfully retrieved holiday"
// @Failure 400 {object} map[string]interface{} "Invalid holiday ID"
// @Failure 404 {object} map[string]interface{} "Holiday not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /public-holidays/{id} [get]
func (h *PublicHolidayHandler) GetHoliday(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	holiday, err := h.holidayService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, holiday)
}

// ListHolidays handles GET /public-holidays
// @Summary List all public holidays
// @Description Get all public holidays in date order with pagination support
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PublicHolidayListResponse "Successfully retrieved holidays"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /public-holidays [get]
func (h *PublicHolidayHandler) ListHolidays(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.holidayService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateHoliday handles PUT /public-holidays/:id
// @Summary Update a public holiday
// @Description Update a public holiday, keeping the one-holiday-per-date rule
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday ID (UUID)"
// @Param holiday body service.SavePublicHolidayRequest true "Holiday data"
// @Success 200 {object} service.PublicHolidayResponse "Successfully updated holiday"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Holiday not found"
// @Failure 409 {object} map[string]interface{} "Date already marked as a holiday"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /public-holidays/{id} [put]
func (h *PublicHolidayHandler) UpdateHoliday(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	var req service.SavePublicHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.holidayService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, holiday)
}

// DeleteHoliday handles DELETE /public-holidays/:id
// @Summary Delete a public holiday
// @Description Delete a public holiday
// @Tags public-holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday ID (UUID)"
// @Success 204 "Successfully deleted holiday"
// @Failure 400 {object} map[string]interface{} "Invalid holiday ID"
// @Failure 404 {object} map[string]interface{} "Holiday not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /public-holidays/{id} [delete]
func (h *PublicHolidayHandler) DeleteHoliday(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday ID"})
		return
	}

	if err := h.holidayService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
