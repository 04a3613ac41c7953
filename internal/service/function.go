package service

import (
	"errors"
	"fmt"
	"time"

	"shift-planning-backend/internal/database/models"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FunctionService handles business logic for functions
type FunctionService struct {
	repo      *repository.FunctionRepository
	validator *validator.Validate
}

// NewFunctionService creates a new function service
func NewFunctionService(repo *repository.FunctionRepository, validator *validator.Validate) *FunctionService {
	return &FunctionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateFunctionRequest represents the request to create a function
type CreateFunctionRequest struct {
	Designation string `json:"designation" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateFunctionRequest represents the request to update a function
type UpdateFunctionRequest struct {
	Designation *string `json:"designation,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *bool   `json:"status,omitempty"`
}

// FunctionResponse represents the response for function operations
type FunctionResponse struct {
	ID          uuid.UUID `json:"id"`
	Designation string    `json:"designation"`
	Description string    `json:"description,omitempty"`
	Status      bool      `json:"status"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// FunctionListResponse represents a paginated list of functions
type FunctionListResponse struct {
	Functions []FunctionResponse `json:"functions"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new function
func (s *FunctionService) Create(req *CreateFunctionRequest) (*FunctionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	function := &models.Function{
		Designation: req.Designation,
		Description: req.Description,
		Status:      true,
	}

	if err := s.repo.Create(function); err != nil {
		return nil, fmt.Errorf("failed to create function: %w", err)
	}

	return s.toResponse(function), nil
}

// GetByID retrieves a function by ID
func (s *FunctionService) GetByID(id uuid.UUID) (*FunctionResponse, error) {
	function, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFunctionNotFound
		}
		return nil, fmt.Errorf("failed to get function: %w", err)
	}

	return s.toResponse(function), nil
}

// GetAll retrieves functions with pagination
func (s *FunctionService) GetAll(page, pageSize int) (*FunctionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	functions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get functions: %w", err)
	}

	responses := make([]FunctionResponse, len(functions))
	for i := range functions {
		responses[i] = *s.toResponse(&functions[i])
	}

	return &FunctionListResponse{
		Functions: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a function
func (s *FunctionService) Update(id uuid.UUID, req *UpdateFunctionRequest) (*FunctionResponse, error) {
	function, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFunctionNotFound
		}
		return nil, fmt.Errorf("failed to get function: %w", err)
	}

	if req.Designation != nil {
		function.Designation = *req.Designation
	}
	if req.Description != nil {
		function.Description = *req.Description
	}
	if req.Status != nil {
		function.Status = *req.Status
	}

	if err := s.repo.Update(function); err != nil {
		return nil, fmt.Errorf("failed to update function: %w", err)
	}

	return s.toResponse(function), nil
}

// Delete deletes a function. Functions still tied to team positions cannot be
// removed; the rejection names the referencing positions.
func (s *FunctionService) Delete(id uuid.UUID) error {
	function, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFunctionNotFound
		}
		return fmt.Errorf("failed to get function: %w", err)
	}

	labels, err := s.repo.GetReferencingPositionLabels(id)
	if err != nil {
		return fmt.Errorf("failed to list referencing positions: %w", err)
	}
	if len(labels) > 0 {
		return apperrors.NewStillReferencedError("function", function.Designation, labels)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete function: %w", err)
	}
	return nil
}

// toResponse converts a function model to response
func (s *FunctionService) toResponse(function *models.Function) *FunctionResponse {
	return &FunctionResponse{
		ID:          function.ID,
		Designation: function.Designation,
		Description: function.Description,
		Status:      function.Status,
		CreatedAt:   function.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   function.UpdatedAt.Format(time.RFC3339),
	}
}
