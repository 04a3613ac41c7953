package handlers

import (
	"net/http"
	"strconv"

	"shift-planning-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FunctionHandler handles HTTP requests for function operations
type FunctionHandler struct {
	functionService service.FunctionServiceInterface
}

// NewFunctionHandler creates a new function handler
func NewFunctionHandler(functionService service.FunctionServiceInterface) *FunctionHandler {
	return &FunctionHandler{
		functionService: functionService,
	}
}

// CreateFunction handles POST /functions
// @Summary Create a new function
// @Description Create a new function with the provided details
// @Tags functions
// @Accept json
// @Produce json
// @Param function body service.CreateFunctionRequest true "Function data"
// @Success 201 {object} service.FunctionResponse "Successfully created function"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /functions [post]
func (h *FunctionHandler) CreateFunction(c *gin.Context) {
	var req service.CreateFunctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	function, err := h.functionService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, function)
}

// GetFunction handles GET /functions/:id
// @Summary Get function by ID
// @Description Get a specific function by its UUID
// @Tags functions
// @Accept json
// @Produce json
// @Param id path string true "Function ID (UUID)"
// @Success 200 {object} service.FunctionResponse "Successfully retrieved function"
// @Failure 400 {object} map[string]interface{} "Invalid function ID"
// @Failure 404 {object} map[string]interface{} "Function not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /functions/{id} [get]
func (h *FunctionHandler) GetFunction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid function ID"})
		return
	}

	function, err := h.functionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, function)
}

// ListFunctions handles GET /functions
// @Summary List all functions
// @Description Get all functions with pagination support
// @Tags functions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FunctionListResponse "Successfully retrieved functions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /functions [get]
func (h *FunctionHandler) ListFunctions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.functionService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateFunction handles PUT /functions/:id
// @Summary Update a function
// @Description Update a function's details
// @Tags functions
// @Accept json
// @Produce json
// @Param id path string true "Function ID (UUID)"
// @Param function body service.UpdateFunctionRequest true "Function data"
// @Success 200 {object} service.FunctionResponse "Successfully updated function"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Function not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /functions/{id} [put]
func (h *FunctionHandler) UpdateFunction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid function ID"})
		return
	}

	var req service.UpdateFunctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	function, err := h.functionService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, function)
}

// DeleteFunction handles DELETE /functions/:id
// @Summary Delete a function
// @Description Delete a function that no team position references
// @Tags functions
// @Accept json
// @Produce json
// @Param id path string true "Function ID (UUID)"
// @Success 204 "Successfully deleted function"
// @Failure 400 {object} map[string]interface{} "Invalid function ID"
// @Failure 404 {object} map[string]interface{} "Function not found"
// @Failure 409 {object} map[string]interface{} "Function still referenced by positions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /functions/{id} [delete]
func (h *FunctionHandler) DeleteFunction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid function ID"})
		return
	}

	if err := h.functionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
