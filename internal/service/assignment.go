package service

import (
	"errors"
	"fmt"
	"time"

	"shift-planning-backend/internal/database/models"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"
	"shift-planning-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService handles business logic for placing agents and rotation
// plans on team positions over date ranges
type AssignmentService struct {
	repo      *repository.AssignmentRepository
	teamRepo  *repository.TeamRepository
	agentRepo *repository.AgentRepository
	planRepo  *repository.RotationPlanRepository
	validator *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo *repository.AssignmentRepository, teamRepo *repository.TeamRepository, agentRepo *repository.AgentRepository, planRepo *repository.RotationPlanRepository, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		teamRepo:  teamRepo,
		agentRepo: agentRepo,
		planRepo:  planRepo,
		validator: validator,
	}
}

// SaveAgentAssignmentRequest represents the request to create or update an agent assignment
type SaveAgentAssignmentRequest struct {
	AgentID   uuid.UUID `json:"agent_id" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// SaveRotationAssignmentRequest represents the request to create or update a rotation assignment
type SaveRotationAssignmentRequest struct {
	DailyRotationPlanID uuid.UUID `json:"daily_rotation_plan_id" validate:"required"`
	StartDate           time.Time `json:"start_date" validate:"required"`
	EndDate             time.Time `json:"end_date" validate:"required"`
}

// AgentAssignmentResponse represents the response for agent assignment operations
type AgentAssignmentResponse struct {
	ID             uuid.UUID `json:"id"`
	TeamPositionID uuid.UUID `json:"team_position_id"`
	AgentID        uuid.UUID `json:"agent_id"`
	AgentName      string    `json:"agent_name,omitempty"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	IsActive       bool      `json:"is_active"`
}

// RotationAssignmentResponse represents the response for rotation assignment operations
type RotationAssignmentResponse struct {
	ID                  uuid.UUID `json:"id"`
	TeamPositionID      uuid.UUID `json:"team_position_id"`
	DailyRotationPlanID uuid.UUID `json:"daily_rotation_plan_id"`
	PlanDesignation     string    `json:"plan_designation,omitempty"`
	StartDate           string    `json:"start_date"`
	EndDate             string    `json:"end_date"`
	IsActive            bool      `json:"is_active"`
}

// CreateAgentAssignment places an agent on a position, overlap-validated
// against the position's other agent assignments.
func (s *AssignmentService) CreateAgentAssignment(positionID uuid.UUID, req *SaveAgentAssignmentRequest) (*AgentAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	dateRange, err := scheduling.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetPositionByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamPositionNotFound
		}
		return nil, fmt.Errorf("failed to get team position: %w", err)
	}
	if _, err := s.agentRepo.GetByID(req.AgentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	assignment := &models.AgentAssignment{
		TeamPositionID: positionID,
		AgentID:        req.AgentID,
		StartDate:      dateRange.Start,
		EndDate:        dateRange.End,
	}

	err = s.repo.Transaction(func(tx *repository.AssignmentRepository) error {
		siblings, err := tx.GetAgentAssignmentsByPositionID(positionID)
		if err != nil {
			return fmt.Errorf("failed to read sibling assignments: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, uuid.Nil, agentAssignmentRecords(siblings)); err != nil {
			return err
		}
		return tx.CreateAgentAssignment(assignment)
	})
	if err != nil {
		return nil, err
	}

	return s.toAgentAssignmentResponse(assignment, time.Now()), nil
}

// UpdateAgentAssignment edits an agent assignment; its own record is excluded
// from the overlap check.
func (s *AssignmentService) UpdateAgentAssignment(id uuid.UUID, req *SaveAgentAssignmentRequest) (*AgentAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	dateRange, err := scheduling.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	assignment, err := s.repo.GetAgentAssignmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get agent assignment: %w", err)
	}

	if _, err := s.agentRepo.GetByID(req.AgentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	assignment.AgentID = req.AgentID
	assignment.StartDate = dateRange.Start
	assignment.EndDate = dateRange.End

	err = s.repo.Transaction(func(tx *repository.AssignmentRepository) error {
		siblings, err := tx.GetAgentAssignmentsByPositionID(assignment.TeamPositionID)
		if err != nil {
			return fmt.Errorf("failed to read sibling assignments: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, assignment.ID, agentAssignmentRecords(siblings)); err != nil {
			return err
		}
		return tx.UpdateAgentAssignment(assignment)
	})
	if err != nil {
		return nil, err
	}

	return s.toAgentAssignmentResponse(assignment, time.Now()), nil
}

// DeleteAgentAssignment deletes an agent assignment
func (s *AssignmentService) DeleteAgentAssignment(id uuid.UUID) error {
	if _, err := s.repo.GetAgentAssignmentByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get agent assignment: %w", err)
	}

	if err := s.repo.DeleteAgentAssignment(id); err != nil {
		return fmt.Errorf("failed to delete agent assignment: %w", err)
	}
	return nil
}

// GetAgentAssignments retrieves a position's agent assignments in date order
func (s *AssignmentService) GetAgentAssignments(positionID uuid.UUID) ([]AgentAssignmentResponse, error) {
	if _, err := s.teamRepo.GetPositionByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamPositionNotFound
		}
		return nil, fmt.Errorf("failed to get team position: %w", err)
	}

	assignments, err := s.repo.GetAgentAssignmentsByPositionID(positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent assignments: %w", err)
	}

	now := time.Now()
	responses := make([]AgentAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *s.toAgentAssignmentResponse(&assignments[i], now)
	}
	return responses, nil
}

// GetCurrentAgentAssignment resolves which agent covers a position today.
// Returns ErrAssignmentNotFound when no assignment's range contains today.
func (s *AssignmentService) GetCurrentAgentAssignment(positionID uuid.UUID, today time.Time) (*AgentAssignmentResponse, error) {
	if _, err := s.teamRepo.GetPositionByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamPositionNotFound
		}
		return nil, fmt.Errorf("failed to get team position: %w", err)
	}

	assignment, err := s.repo.GetCurrentAgentAssignment(positionID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get current agent assignment: %w", err)
	}

	return s.toAgentAssignmentResponse(assignment, today), nil
}

// CreateRotationAssignment places a rotation plan on a position. The plan must
// own at least one rotation period, and the range must not overlap the
// position's other rotation assignments.
func (s *AssignmentService) CreateRotationAssignment(positionID uuid.UUID, req *SaveRotationAssignmentRequest) (*RotationAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	dateRange, err := scheduling.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetPositionByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamPositionNotFound
		}
		return nil, fmt.Errorf("failed to get team position: %w", err)
	}

	plan, err := s.assignablePlan(req.DailyRotationPlanID)
	if err != nil {
		return nil, err
	}

	assignment := &models.RotationAssignment{
		TeamPositionID:      positionID,
		DailyRotationPlanID: plan.ID,
		StartDate:           dateRange.Start,
		EndDate:             dateRange.End,
	}

	err = s.repo.Transaction(func(tx *repository.AssignmentRepository) error {
		siblings, err := tx.GetRotationAssignmentsByPositionID(positionID)
		if err != nil {
			return fmt.Errorf("failed to read sibling assignments: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, uuid.Nil, rotationAssignmentRecords(siblings)); err != nil {
			return err
		}
		return tx.CreateRotationAssignment(assignment)
	})
	if err != nil {
		return nil, err
	}

	return s.toRotationAssignmentResponse(assignment, time.Now()), nil
}

// UpdateRotationAssignment edits a rotation assignment; its own record is
// excluded from the overlap check.
func (s *AssignmentService) UpdateRotationAssignment(id uuid.UUID, req *SaveRotationAssignmentRequest) (*RotationAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	dateRange, err := scheduling.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	assignment, err := s.repo.GetRotationAssignmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get rotation assignment: %w", err)
	}

	plan, err := s.assignablePlan(req.DailyRotationPlanID)
	if err != nil {
		return nil, err
	}

	assignment.DailyRotationPlanID = plan.ID
	assignment.StartDate = dateRange.Start
	assignment.EndDate = dateRange.End

	err = s.repo.Transaction(func(tx *repository.AssignmentRepository) error {
		siblings, err := tx.GetRotationAssignmentsByPositionID(assignment.TeamPositionID)
		if err != nil {
			return fmt.Errorf("failed to read sibling assignments: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, assignment.ID, rotationAssignmentRecords(siblings)); err != nil {
			return err
		}
		return tx.UpdateRotationAssignment(assignment)
	})
	if err != nil {
		return nil, err
	}

	return s.toRotationAssignmentResponse(assignment, time.Now()), nil
}

// DeleteRotationAssignment deletes a rotation assignment
func (s *AssignmentService) DeleteRotationAssignment(id uuid.UUID) error {
	if _, err := s.repo.GetRotationAssignmentByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get rotation assignment: %w", err)
	}

	if err := s.repo.DeleteRotationAssignment(id); err != nil {
		return fmt.Errorf("failed to delete rotation assignment: %w", err)
	}
	return nil
}

// GetRotationAssignments retrieves a position's rotation assignments in date order
func (s *AssignmentService) GetRotationAssignments(positionID uuid.UUID) ([]RotationAssignmentResponse, error) {
	if _, err := s.teamRepo.GetPositionByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamPositionNotFound
		}
		return nil, fmt.Errorf("failed to get team position: %w", err)
	}

	assignments, err := s.repo.GetRotationAssignmentsByPositionID(positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation assignments: %w", err)
	}

	now := time.Now()
	responses := make([]RotationAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *s.toRotationAssignmentResponse(&assignments[i], now)
	}
	return responses, nil
}

// GetCurrentRotationAssignment resolves which rotation plan governs a position
// today. Returns ErrAssignmentNotFound when no assignment's range contains today.
func (s *AssignmentService) GetCurrentRotationAssignment(positionID uuid.UUID, today time.Time) (*RotationAssignmentResponse, error) {
	if _, err := s.teamRepo.GetPositionByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamPositionNotFound
		}
		return nil, fmt.Errorf("failed to get team position: %w", err)
	}

	assignment, err := s.repo.GetCurrentRotationAssignment(positionID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get current rotation assignment: %w", err)
	}

	return s.toRotationAssignmentResponse(assignment, today), nil
}

// assignablePlan loads a rotation plan and enforces the assignability gate: a
// plan with no periods carries no hours and must not be placed anywhere.
func (s *AssignmentService) assignablePlan(planID uuid.UUID) (*models.DailyRotationPlan, error) {
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationPlanNotFound
		}
		return nil, fmt.Errorf("failed to get rotation plan: %w", err)
	}

	periodCount, err := s.planRepo.CountPeriods(plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count rotation periods: %w", err)
	}
	if periodCount == 0 {
		return nil, apperrors.NewEmptyPlanError(plan.Designation)
	}

	return plan, nil
}

func agentAssignmentRecords(assignments []models.AgentAssignment) []scheduling.RangeRecord {
	records := make([]scheduling.RangeRecord, len(assignments))
	for i, a := range assignments {
		records[i] = scheduling.RangeRecord{ID: a.ID, Range: a.Range()}
	}
	return records
}

func rotationAssignmentRecords(assignments []models.RotationAssignment) []scheduling.RangeRecord {
	records := make([]scheduling.RangeRecord, len(assignments))
	for i, a := range assignments {
		records[i] = scheduling.RangeRecord{ID: a.ID, Range: a.Range()}
	}
	return records
}

// toAgentAssignmentResponse converts an agent assignment model to response
func (s *AssignmentService) toAgentAssignmentResponse(assignment *models.AgentAssignment, today time.Time) *AgentAssignmentResponse {
	response := &AgentAssignmentResponse{
		ID:             assignment.ID,
		TeamPositionID: assignment.TeamPositionID,
		AgentID:        assignment.AgentID,
		StartDate:      assignment.StartDate.Format("2006-01-02"),
		EndDate:        assignment.EndDate.Format("2006-01-02"),
		IsActive:       assignment.Range().IsActive(today),
	}
	if assignment.Agent.ID != uuid.Nil {
		response.AgentName = assignment.Agent.FullName()
	}
	return response
}

// toRotationAssignmentResponse converts a rotation assignment model to response
func (s *AssignmentService) toRotationAssignmentResponse(assignment *models.RotationAssignment, today time.Time) *RotationAssignmentResponse {
	response := &RotationAssignmentResponse{
		ID:                  assignment.ID,
		TeamPositionID:      assignment.TeamPositionID,
		DailyRotationPlanID: assignment.DailyRotationPlanID,
		StartDate:           assignment.StartDate.Format("2006-01-02"),
		EndDate:             assignment.EndDate.Format("2006-01-02"),
		IsActive:            assignment.Range().IsActive(today),
	}
	if assignment.DailyRotationPlan.ID != uuid.Nil {
		response.PlanDesignation = assignment.DailyRotationPlan.Designation
	}
	return response
}
