package repository

import (
	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentRepository handles database operations for agents
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create creates a new agent
func (r *AgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// GetByID retrieves an agent by ID
func (r *AgentRepository) GetByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByMatricule retrieves an agent by badge number
func (r *AgentRepository) GetByMatricule(matricule string) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "matricule = ?", matricule).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAll retrieves all agents ordered by badge number
func (r *AgentRepository) GetAll(limit, offset int) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	if err := r.db.Model(&models.Agent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("matricule ASC").Limit(limit).Offset(offset).Find(&agents).Error
	return agents, total, err
}

// Update updates an agent
func (r *AgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

// Delete deletes an agent
func (r *AgentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Agent{}, "id = ?", id).Error
}

// CountAssignmentsReferencing counts assignments still pointing at the agent
func (r *AgentRepository) CountAssignmentsReferencing(agentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.AgentAssignment{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}
