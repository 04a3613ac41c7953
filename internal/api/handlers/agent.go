package handlers

import (
	"net/http"
	"strconv"

	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentHandler handles HTTP requests for agent operations
type AgentHandler struct {
	agentService service.AgentServiceInterface
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// CreateAgent handles POST /agents
// @Summary Create a new agent
// @Description Create a new agent with a unique badge number
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body service.CreateAgentRequest true "Agent data"
// @Success 201 {object} service.AgentResponse "Successfully created agent"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Badge number already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req service.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, agent)
}

// GetAgent handles GET /agents/:id
// @Summary Get agent by ID
// @Description Get a specific agent by its UUID
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 200 {object} service.AgentResponse "Successfully retrieved agent"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	agent, err := h.agentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, agent)
}

// GetAgentByMatricule handles GET /agents/by-matricule/:matricule
// @Summary Get agent by badge number
// @Description Get a specific agent by its badge number
// @Tags agents
// @Accept json
// @Produce json
// @Param matricule path string true "Badge number"
// @Success 200 {object} service.AgentResponse "Successfully retrieved agent"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agents/by-matricule/{matricule} [get]
func (h *AgentHandler) GetAgentByMatricule(c *gin.Context) {
	agent, err := h.agentService.GetByMatricule(c.Param("matricule"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, agent)
}

// ListAgents handles GET /agents
// @Summary List all agents
// @Description Get all agents with pagination support
// @Tags agents
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AgentListResponse "Successfully retrieved agents"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.agentService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAgent handles PUT /agents/:id
// @Summary Update an agent
// @Description Update an agent's details; the badge number is immutable
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param agent body service.UpdateAgentRequest true "Agent data"
// @Success 200 {object} service.AgentResponse "Successfully updated agent"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	var req service.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, agent)
}

// DeleteAgent handles DELETE /agents/:id
// @Summary Delete an agent
// @Description Delete an agent that has no remaining assignments
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 204 "Successfully deleted agent"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 409 {object} map[string]interface{} "Agent still assigned"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	if err := h.agentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
