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

// TeamService handles business logic for departments, teams and team positions
type TeamService struct {
	repo           *repository.TeamRepository
	departmentRepo *repository.DepartmentRepository
	functionRepo   *repository.FunctionRepository
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo *repository.TeamRepository, departmentRepo *repository.DepartmentRepository, functionRepo *repository.FunctionRepository, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		departmentRepo: departmentRepo,
		functionRepo:   functionRepo,
		validator:      validator,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Designation string `json:"designation" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Designation *string `json:"designation,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	Designation  string    `json:"designation" validate:"required,max=100"`
	Description  string    `json:"description" validate:"max=500"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Designation *string `json:"designation,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateTeamPositionRequest represents the request to create a team position
type CreateTeamPositionRequest struct {
	FunctionID uuid.UUID `json:"function_id" validate:"required"`
	Label      string    `json:"label" validate:"required,max=100"`
}

// UpdateTeamPositionRequest represents the request to update a team position
type UpdateTeamPositionRequest struct {
	FunctionID *uuid.UUID `json:"function_id,omitempty"`
	Label      *string    `json:"label,omitempty"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID          uuid.UUID      `json:"id"`
	Designation string         `json:"designation"`
	Description string         `json:"description,omitempty"`
	Teams       []TeamResponse `json:"teams,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID           uuid.UUID              `json:"id"`
	DepartmentID uuid.UUID              `json:"department_id"`
	Designation  string                 `json:"designation"`
	Description  string                 `json:"description,omitempty"`
	Positions    []TeamPositionResponse `json:"positions,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}

// TeamPositionResponse represents the response for team position operations
type TeamPositionResponse struct {
	ID           uuid.UUID `json:"id"`
	TeamID       uuid.UUID `json:"team_id"`
	FunctionID   uuid.UUID `json:"function_id"`
	FunctionName string    `json:"function_name,omitempty"`
	Label        string    `json:"label"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateDepartment creates a new department
func (s *TeamService) CreateDepartment(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department := &models.Department{
		Designation: req.Designation,
		Description: req.Description,
	}

	if err := s.departmentRepo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return s.toDepartmentResponse(department), nil
}

// GetDepartment retrieves a department with its teams
func (s *TeamService) GetDepartment(id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.GetWithTeams(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return s.toDepartmentResponse(department), nil
}

// GetDepartments retrieves departments with pagination
func (s *TeamService) GetDepartments(page, pageSize int) (*DepartmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	departments, total, err := s.departmentRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *s.toDepartmentResponse(&departments[i])
	}

	return &DepartmentListResponse{
		Departments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// UpdateDepartment updates a department
func (s *TeamService) UpdateDepartment(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	if req.Designation != nil {
		department.Designation = *req.Designation
	}
	if req.Description != nil {
		department.Description = *req.Description
	}

	if err := s.departmentRepo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return s.toDepartmentResponse(department), nil
}

// DeleteDepartment deletes a department and its teams
func (s *TeamService) DeleteDepartment(id uuid.UUID) error {
	if _, err := s.departmentRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}

	if err := s.departmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// CreateTeam creates a new team under a department
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.departmentRepo.GetByID(req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	team := &models.Team{
		DepartmentID: req.DepartmentID,
		Designation:  req.Designation,
		Description:  req.Description,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toTeamResponse(team), nil
}

// GetTeam retrieves a team with its positions
func (s *TeamService) GetTeam(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithPositions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toTeamResponse(team), nil
}

// GetTeamsByDepartment retrieves a department's teams with pagination
func (s *TeamService) GetTeamsByDepartment(departmentID uuid.UUID, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.departmentRepo.GetByID(departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetByDepartmentID(departmentID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toTeamResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateTeam updates a team
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Designation != nil {
		team.Designation = *req.Designation
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toTeamResponse(team), nil
}

// DeleteTeam deletes a team and its positions
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// CreatePosition creates a new position on a team
func (s *TeamService) CreatePosition(teamID uuid.UUID, req *CreateTeamPositionRequest) (*TeamPositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if _, err := s.functionRepo.GetByID(req.FunctionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFunctionNotFound
		}
		return nil, fmt.Errorf("failed to get function: %w", err)
	}

	position := &models.TeamPosition{
		TeamID:     teamID,
		FunctionID: req.FunctionID,
		Label:      req.Label,
	}

	if err := s.repo.CreatePosition(position); err != nil {
		return nil, fmt.Errorf("failed to create team position: %w", err)
	}

	return s.toPositionResponse(position), nil
}

// GetPositions retrieves a team's positions
func (s *TeamService) GetPositions(teamID uuid.UUID) ([]TeamPositionResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	positions, err := s.repo.GetPositionsByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team positions: %w", err)
	}

	responses := make([]TeamPositionResponse, len(positions))
	for i := range positions {
		responses[i] = *s.toPositionResponse(&positions[i])
	}
	return responses, nil
}

// UpdatePosition updates a team position
func (s *TeamService) UpdatePosition(id uuid.UUID, req *UpdateTeamPositionRequest) (*TeamPositionResponse, error) {
	position, err := s.repo.GetPositionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamPositionNotFound
		}
		return nil, fmt.Errorf("failed to get team position: %w", err)
	}

	if req.FunctionID != nil {
		if _, err := s.functionRepo.GetByID(*req.FunctionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrFunctionNotFound
			}
			return nil, fmt.Errorf("failed to get function: %w", err)
		}
		position.FunctionID = *req.FunctionID
	}
	if req.Label != nil {
		position.Label = *req.Label
	}

	if err := s.repo.UpdatePosition(position); err != nil {
		return nil, fmt.Errorf("failed to update team position: %w", err)
	}

	return s.toPositionResponse(position), nil
}

// DeletePosition deletes a team position and its assignments
func (s *TeamService) DeletePosition(id uuid.UUID) error {
	if _, err := s.repo.GetPositionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamPositionNotFound
		}
		return fmt.Errorf("failed to get team position: %w", err)
	}

	if err := s.repo.DeletePosition(id); err != nil {
		return fmt.Errorf("failed to delete team position: %w", err)
	}
	return nil
}

// toDepartmentResponse converts a department model to response
func (s *TeamService) toDepartmentResponse(department *models.Department) *DepartmentResponse {
	response := &DepartmentResponse{
		ID:          department.ID,
		Designation: department.Designation,
		Description: department.Description,
		CreatedAt:   department.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   department.UpdatedAt.Format(time.RFC3339),
	}
	for i := range department.Teams {
		response.Teams = append(response.Teams, *s.toTeamResponse(&department.Teams[i]))
	}
	return response
}

// toTeamResponse converts a team model to response
func (s *TeamService) toTeamResponse(team *models.Team) *TeamResponse {
	response := &TeamResponse{
		ID:           team.ID,
		DepartmentID: team.DepartmentID,
		Designation:  team.Designation,
		Description:  team.Description,
		CreatedAt:    team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    team.UpdatedAt.Format(time.RFC3339),
	}
	for i := range team.Positions {
		response.Positions = append(response.Positions, *s.toPositionResponse(&team.Positions[i]))
	}
	return response
}

// toPositionResponse converts a team position model to response
func (s *TeamService) toPositionResponse(position *models.TeamPosition) *TeamPositionResponse {
	response := &TeamPositionResponse{
		ID:         position.ID,
		TeamID:     position.TeamID,
		FunctionID: position.FunctionID,
		Label:      position.Label,
	}
	if position.Function.ID != uuid.Nil {
		response.FunctionName = position.Function.Designation
	}
	return response
}
