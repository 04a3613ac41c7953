package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shift-planning-backend/internal/database/models"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTypeService handles business logic for schedule types
type ScheduleTypeService struct {
	repo      *repository.ScheduleTypeRepository
	validator *validator.Validate
}

// NewScheduleTypeService creates a new schedule type service
func NewScheduleTypeService(repo *repository.ScheduleTypeRepository, validator *validator.Validate) *ScheduleTypeService {
	return &ScheduleTypeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateScheduleTypeRequest represents the request to create a schedule type
type CreateScheduleTypeRequest struct {
	Designation      string `json:"designation" validate:"required,max=100"`
	ShortDesignation string `json:"short_designation" validate:"max=3"`
	Color            string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateScheduleTypeRequest represents the request to update a schedule type
type UpdateScheduleTypeRequest struct {
	Designation      *string `json:"designation,omitempty"`
	ShortDesignation *string `json:"short_designation,omitempty"`
	Color            *string `json:"color,omitempty"`
}

// ScheduleTypeResponse represents the response for schedule type operations
type ScheduleTypeResponse struct {
	ID               uuid.UUID `json:"id"`
	Designation      string    `json:"designation"`
	ShortDesignation string    `json:"short_designation"`
	Color            string    `json:"color"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        string    `json:"updated_at"`
}

// ScheduleTypeListResponse represents a paginated list of schedule types
type ScheduleTypeListResponse struct {
	ScheduleTypes []ScheduleTypeResponse `json:"schedule_types"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new schedule type
func (s *ScheduleTypeService) Create(req *CreateScheduleTypeRequest) (*ScheduleTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	scheduleType := &models.ScheduleType{
		Designation:      req.Designation,
		ShortDesignation: strings.ToUpper(req.ShortDesignation),
		Color:            req.Color,
	}

	if err := s.repo.Create(scheduleType); err != nil {
		return nil, fmt.Errorf("failed to create schedule type: %w", err)
	}

	return s.toResponse(scheduleType), nil
}

// GetByID retrieves a schedule type by ID
func (s *ScheduleTypeService) GetByID(id uuid.UUID) (*ScheduleTypeResponse, error) {
	scheduleType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleTypeNotFound
		}
		return nil, fmt.Errorf("failed to get schedule type: %w", err)
	}

	return s.toResponse(scheduleType), nil
}

// GetAll retrieves schedule types with pagination
func (s *ScheduleTypeService) GetAll(page, pageSize int) (*ScheduleTypeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	scheduleTypes, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule types: %w", err)
	}

	responses := make([]ScheduleTypeResponse, len(scheduleTypes))
	for i, scheduleType := range scheduleTypes {
		responses[i] = *s.toResponse(&scheduleType)
	}

	return &ScheduleTypeListResponse{
		ScheduleTypes: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates a schedule type
func (s *ScheduleTypeService) Update(id uuid.UUID, req *UpdateScheduleTypeRequest) (*ScheduleTypeResponse, error) {
	scheduleType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleTypeNotFound
		}
		return nil, fmt.Errorf("failed to get schedule type: %w", err)
	}

	if req.Designation != nil {
		scheduleType.Designation = *req.Designation
	}
	if req.ShortDesignation != nil {
		if len(*req.ShortDesignation) > 3 {
			return nil, apperrors.NewValidationError("short_designation", "must be at most 3 characters")
		}
		scheduleType.ShortDesignation = strings.ToUpper(*req.ShortDesignation)
	}
	if req.Color != nil {
		scheduleType.Color = *req.Color
	}

	if err := s.repo.Update(scheduleType); err != nil {
		return nil, fmt.Errorf("failed to update schedule type: %w", err)
	}

	return s.toResponse(scheduleType), nil
}

// Delete deletes a schedule type. Deletion is blocked while any daily
// rotation plan references it; the rejection names up to three plans.
func (s *ScheduleTypeService) Delete(id uuid.UUID) error {
	scheduleType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScheduleTypeNotFound
		}
		return fmt.Errorf("failed to get schedule type: %w", err)
	}

	planNames, err := s.repo.GetReferencingPlanNames(id)
	if err != nil {
		return fmt.Errorf("failed to check schedule type references: %w", err)
	}
	if len(planNames) > 0 {
		return apperrors.NewStillReferencedError("schedule type", scheduleType.Designation, planNames)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete schedule type: %w", err)
	}

	return nil
}

// toResponse converts a schedule type model to response
func (s *ScheduleTypeService) toResponse(scheduleType *models.ScheduleType) *ScheduleTypeResponse {
	return &ScheduleTypeResponse{
		ID:               scheduleType.ID,
		Designation:      scheduleType.Designation,
		ShortDesignation: scheduleType.ShortDesignation,
		Color:            scheduleType.Color,
		CreatedAt:        scheduleType.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        scheduleType.UpdatedAt.Format(time.RFC3339),
	}
}
