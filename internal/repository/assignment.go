package repository

import (
	"time"

	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for agent and rotation
// assignments on team positions
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Transaction runs fn against a repository bound to a database transaction
func (r *AssignmentRepository) Transaction(fn func(tx *AssignmentRepository) error) error {
	return r.db.Transaction(func(txdb *gorm.DB) error {
		return fn(&AssignmentRepository{db: txdb})
	})
}

// CreateAgentAssignment creates a new agent assignment
func (r *AssignmentRepository) CreateAgentAssignment(assignment *models.AgentAssignment) error {
	return r.db.Create(assignment).Error
}

// GetAgentAssignmentByID retrieves an agent assignment by ID
func (r *AssignmentRepository) GetAgentAssignmentByID(id uuid.UUID) (*models.AgentAssignment, error) {
	var assignment models.AgentAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAgentAssignmentsByPositionID retrieves all agent assignments of a position
func (r *AssignmentRepository) GetAgentAssignmentsByPositionID(positionID uuid.UUID) ([]models.AgentAssignment, error) {
	var assignments []models.AgentAssignment
	err := r.db.Where("team_position_id = ?", positionID).Order("start_date ASC").Find(&assignments).Error
	return assignments, err
}

// GetCurrentAgentAssignment retrieves the assignment of a position whose date
// range contains today, if any
func (r *AssignmentRepository) GetCurrentAgentAssignment(positionID uuid.UUID, today time.Time) (*models.AgentAssignment, error) {
	var assignment models.AgentAssignment
	err := r.db.Preload("Agent").
		Where("team_position_id = ? AND start_date <= ? AND end_date >= ?", positionID, today, today).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateAgentAssignment updates an agent assignment
func (r *AssignmentRepository) UpdateAgentAssignment(assignment *models.AgentAssignment) error {
	return r.db.Save(assignment).Error
}

// DeleteAgentAssignment deletes an agent assignment
func (r *AssignmentRepository) DeleteAgentAssignment(id uuid.UUID) error {
	return r.db.Delete(&models.AgentAssignment{}, "id = ?", id).Error
}

// CreateRotationAssignment creates a new rotation assignment
func (r *AssignmentRepository) CreateRotationAssignment(assignment *models.RotationAssignment) error {
	return r.db.Create(assignment).Error
}

// GetRotationAssignmentByID retrieves a rotation assignment by ID
func (r *AssignmentRepository) GetRotationAssignmentByID(id uuid.UUID) (*models.RotationAssignment, error) {
	var assignment models.RotationAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetRotationAssignmentsByPositionID retrieves all rotation assignments of a position
func (r *AssignmentRepository) GetRotationAssignmentsByPositionID(positionID uuid.UUID) ([]models.RotationAssignment, error) {
	var assignments []models.RotationAssignment
	err := r.db.Where("team_position_id = ?", positionID).Order("start_date ASC").Find(&assignments).Error
	return assignments, err
}

// GetCurrentRotationAssignment retrieves the rotation assignment of a position
// whose date range contains today, if any
func (r *AssignmentRepository) GetCurrentRotationAssignment(positionID uuid.UUID, today time.Time) (*models.RotationAssignment, error) {
	var assignment models.RotationAssignment
	err := r.db.Preload("DailyRotationPlan").
		Where("team_position_id = ? AND start_date <= ? AND end_date >= ?", positionID, today, today).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateRotationAssignment updates a rotation assignment
func (r *AssignmentRepository) UpdateRotationAssignment(assignment *models.RotationAssignment) error {
	return r.db.Save(assignment).Error
}

// DeleteRotationAssignment deletes a rotation assignment
func (r *AssignmentRepository) DeleteRotationAssignment(id uuid.UUID) error {
	return r.db.Delete(&models.RotationAssignment{}, "id = ?", id).Error
}
