package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"shift-planning-backend/internal/database/models"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// matriculeRegex enforces badge number format: one uppercase letter followed
// by four digits, e.g. T1234
var matriculeRegex = regexp.MustCompile(`^[A-Z][0-9]{4}$`)

// AgentService handles business logic for agents
type AgentService struct {
	repo      *repository.AgentRepository
	validator *validator.Validate
}

// NewAgentService creates a new agent service
func NewAgentService(repo *repository.AgentRepository, validator *validator.Validate) *AgentService {
	return &AgentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAgentRequest represents the request to create an agent
type CreateAgentRequest struct {
	Matricule       string                 `json:"matricule" validate:"required,len=5"`
	FirstName       string                 `json:"first_name" validate:"required,max=100"`
	LastName        string                 `json:"last_name" validate:"required,max=100"`
	Grade           models.Grade           `json:"grade" validate:"required"`
	PermissionLevel models.PermissionLevel `json:"permission_level"`
	HireDate        *time.Time             `json:"hire_date,omitempty"`
}

// UpdateAgentRequest represents the request to update an agent
type UpdateAgentRequest struct {
	FirstName       *string                 `json:"first_name,omitempty"`
	LastName        *string                 `json:"last_name,omitempty"`
	Grade           *models.Grade           `json:"grade,omitempty"`
	PermissionLevel *models.PermissionLevel `json:"permission_level,omitempty"`
	HireDate        *time.Time              `json:"hire_date,omitempty"`
	DepartureDate   *time.Time              `json:"departure_date,omitempty"`
}

// AgentResponse represents the response for agent operations
type AgentResponse struct {
	ID              uuid.UUID              `json:"id"`
	Matricule       string                 `json:"matricule"`
	FirstName       string                 `json:"first_name"`
	LastName        string                 `json:"last_name"`
	FullName        string                 `json:"full_name"`
	Grade           models.Grade           `json:"grade"`
	PermissionLevel models.PermissionLevel `json:"permission_level"`
	HireDate        *string                `json:"hire_date,omitempty"`
	DepartureDate   *string                `json:"departure_date,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// AgentListResponse represents a paginated list of agents
type AgentListResponse struct {
	Agents   []AgentResponse `json:"agents"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new agent
func (s *AgentService) Create(req *CreateAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !matriculeRegex.MatchString(req.Matricule) {
		return nil, apperrors.NewValidationError("matricule", "must be one uppercase letter followed by four digits")
	}
	if !req.Grade.IsValid() {
		return nil, apperrors.ErrInvalidGrade
	}
	if !req.PermissionLevel.IsValid() {
		return nil, apperrors.NewValidationError("permission_level", "unknown permission level")
	}

	if _, err := s.repo.GetByMatricule(req.Matricule); err == nil {
		return nil, &apperrors.DuplicateKeyError{Key: "matricule", Value: req.Matricule}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check matricule: %w", err)
	}

	agent := &models.Agent{
		Matricule:       req.Matricule,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Grade:           req.Grade,
		PermissionLevel: req.PermissionLevel,
		HireDate:        req.HireDate,
	}

	if err := s.repo.Create(agent); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return s.toResponse(agent), nil
}

// GetByID retrieves an agent by ID
func (s *AgentService) GetByID(id uuid.UUID) (*AgentResponse, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return s.toResponse(agent), nil
}

// GetByMatricule retrieves an agent by badge number
func (s *AgentService) GetByMatricule(matricule string) (*AgentResponse, error) {
	agent, err := s.repo.GetByMatricule(matricule)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return s.toResponse(agent), nil
}

// GetAll retrieves agents with pagination
func (s *AgentService) GetAll(page, pageSize int) (*AgentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	agents, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get agents: %w", err)
	}

	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = *s.toResponse(&agents[i])
	}

	return &AgentListResponse{
		Agents:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an agent. The matricule is immutable once assigned.
func (s *AgentService) Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	if req.FirstName != nil {
		agent.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		agent.LastName = *req.LastName
	}
	if req.Grade != nil {
		if !req.Grade.IsValid() {
			return nil, apperrors.ErrInvalidGrade
		}
		agent.Grade = *req.Grade
	}
	if req.PermissionLevel != nil {
		if !req.PermissionLevel.IsValid() {
			return nil, apperrors.NewValidationError("permission_level", "unknown permission level")
		}
		agent.PermissionLevel = *req.PermissionLevel
	}
	if req.HireDate != nil {
		agent.HireDate = req.HireDate
	}
	if req.DepartureDate != nil {
		agent.DepartureDate = req.DepartureDate
	}

	if err := s.repo.Update(agent); err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	return s.toResponse(agent), nil
}

// Delete deletes an agent. Agents still placed on a position cannot be removed.
func (s *AgentService) Delete(id uuid.UUID) error {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgentNotFound
		}
		return fmt.Errorf("failed to get agent: %w", err)
	}

	count, err := s.repo.CountAssignmentsReferencing(id)
	if err != nil {
		return fmt.Errorf("failed to count referencing assignments: %w", err)
	}
	if count > 0 {
		return &apperrors.UnassignableReferenceError{
			Entity: "agent",
			Name:   agent.Matricule,
			Reason: fmt.Sprintf("still referenced by %d assignment(s)", count),
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// toResponse converts an agent model to response
func (s *AgentService) toResponse(agent *models.Agent) *AgentResponse {
	response := &AgentResponse{
		ID:              agent.ID,
		Matricule:       agent.Matricule,
		FirstName:       agent.FirstName,
		LastName:        agent.LastName,
		FullName:        agent.FullName(),
		Grade:           agent.Grade,
		PermissionLevel: agent.PermissionLevel,
		CreatedAt:       agent.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       agent.UpdatedAt.Format(time.RFC3339),
	}
	if agent.HireDate != nil {
		hired := agent.HireDate.Format("2006-01-02")
		response.HireDate = &hired
	}
	if agent.DepartureDate != nil {
		departed := agent.DepartureDate.Format("2006-01-02")
		response.DepartureDate = &departed
	}
	return response
}
