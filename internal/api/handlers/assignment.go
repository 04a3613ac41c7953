package handlers

import (
	"net/http"
	"time"

	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for agent and rotation assignments
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// parseDay reads an optional "date" query parameter, defaulting to today
func parseDay(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}

// CreateAgentAssignment handles POST /positions/:id/agent-assignments
// @Summary Assign an agent to a position
// @Description Place an agent on a position for a date range; the range must not overlap the position's other agent assignments
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Param assignment body service.SaveAgentAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AgentAssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Position or agent not found"
// @Failure 409 {object} map[string]interface{} "Range overlaps an existing assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /positions/{id}/agent-assignments [post]
func (h *AssignmentHandler) CreateAgentAssignment(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	var req service.SaveAgentAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateAgentAssignment(positionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ListAgentAssignments handles GET /positions/:id/agent-assignments
// @Summary List a position's agent assignments
// @Description Get all agent assignments of a position in date order
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 200 {array} service.AgentAssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid position ID"
// @Failure 404 {object} map[string]interface{} "Position not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /positions/{id}/agent-assignments [get]
func (h *AssignmentHandler) ListAgentAssignments(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	assignments, err := h.assignmentService.GetAgentAssignments(positionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetCurrentAgentAssignment handles GET /positions/:id/agent-assignments/current
// @Summary Resolve the agent covering a position
// @Description Get the agent assignment whose date range contains the given day (defaults to today)
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Param date query string false "Reference day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.AgentAssignmentResponse "Successfully resolved assignment"
// @Failure 400 {object} map[string]interface{} "Invalid position ID or date"
// @Failure 404 {object} map[string]interface{} "Position not found or no covering assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /positions/{id}/agent-assignments/current [get]
func (h *AssignmentHandler) GetCurrentAgentAssignment(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	day, ok := parseDay(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetCurrentAgentAssignment(positionID, day)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// UpdateAgentAssignment handles PUT /agent-assignments/:id
// @Summary Update an agent assignment
// @Description Update an agent assignment; the record being edited is excluded from the overlap check
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.SaveAgentAssignmentRequest true "Assignment data"
// @Success 200 {object} service.AgentAssignmentResponse "Successfully updated assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Assignment or agent not found"
// @Failure 409 {object} map[string]interface{} "Range overlaps an existing assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agent-assignments/{id} [put]
func (h *AssignmentHandler) UpdateAgentAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	var req service.SaveAgentAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.UpdateAgentAssignment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAgentAssignment handles DELETE /agent-assignments/:id
// @Summary Delete an agent assignment
// @Description Delete an agent assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully deleted assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agent-assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAgentAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	if err := h.assignmentService.DeleteAgentAssignment(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateRotationAssignment handles POST /positions/:id/rotation-assignments
// @Summary Assign a rotation plan to a position
// @Description Place a rotation plan on a position for a date range; the plan must own at least one period and the range must not overlap the position's other rotation assignments
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Param assignment body service.SaveRotationAssignmentRequest true "Assignment data"
// @Success 201 {object} service.RotationAssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Position or plan not found"
// @Failure 409 {object} map[string]interface{} "Range overlaps an existing assignment or plan has no periods"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /positions/{id}/rotation-assignments [post]
func (h *AssignmentHandler) CreateRotationAssignment(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	var req service.SaveRotationAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateRotationAssignment(positionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ListRotationAssignments handles GET /positions/:id/rotation-assignments
// @Summary List a position's rotation assignments
// @Description Get all rotation assignments of a position in date order
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 200 {array} service.RotationAssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid position ID"
// @Failure 404 {object} map[string]interface{} "Position not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /positions/{id}/rotation-assignments [get]
func (h *AssignmentHandler) ListRotationAssignments(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	assignments, err := h.assignmentService.GetRotationAssignments(positionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetCurrentRotationAssignment handles GET /positions/:id/rotation-assignments/current
// @Summary Resolve the rotation plan governing a position
// @Description Get the rotation assignment whose date range contains the given day (defaults to today)
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Param date query string false "Reference day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.RotationAssignmentResponse "Successfully resolved assignment"
// @Failure 400 {object} map[string]interface{} "Invalid position ID or date"
// @Failure 404 {object} map[string]interface{} "Position not found or no covering assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /positions/{id}/rotation-assignments/current [get]
func (h *AssignmentHandler) GetCurrentRotationAssignment(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	day, ok := parseDay(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetCurrentRotationAssignment(positionID, day)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// UpdateRotationAssignment handles PUT /rotation-assignments/:id
// @Summary Update a rotation assignment
// @Description Update a rotation assignment; the record being edited is excluded from the overlap check
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.SaveRotationAssignmentRequest true "Assignment data"
// @Success 200 {object} service.RotationAssignmentResponse "Successfully updated assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body or malformed range"
// @Failure 404 {object} map[string]interface{} "Assignment or plan not found"
// @Failure 409 {object} map[string]interface{} "Range overlaps an existing assignment or plan has no periods"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-assignments/{id} [put]
func (h *AssignmentHandler) UpdateRotationAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	var req service.SaveRotationAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.UpdateRotationAssignment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteRotationAssignment handles DELETE /rotation-assignments/:id
// @Summary Delete a rotation assignment
// @Description Delete a rotation assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully deleted assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rotation-assignments/{id} [delete]
func (h *AssignmentHandler) DeleteRotationAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	if err := h.assignmentService.DeleteRotationAssignment(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
