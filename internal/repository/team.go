package repository

import (
	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and their positions
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithPositions retrieves a team with its positions and their functions preloaded
func (r *TeamRepository) GetWithPositions(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Positions").Preload("Positions.Function").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByDepartmentID retrieves all teams of a department
func (r *TeamRepository) GetByDepartmentID(departmentID uuid.UUID, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Where("department_id = ?", departmentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("department_id = ?", departmentID).Order("designation ASC").Limit(limit).Offset(offset).Find(&teams).Error
	return teams, total, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team and cascades to its positions
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// CreatePosition creates a new team position
func (r *TeamRepository) CreatePosition(position *models.TeamPosition) error {
	return r.db.Create(position).Error
}

// GetPositionByID retrieves a team position by ID
func (r *TeamRepository) GetPositionByID(id uuid.UUID) (*models.TeamPosition, error) {
	var position models.TeamPosition
	err := r.db.First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetPositionsByTeamID retrieves all positions of a team
func (r *TeamRepository) GetPositionsByTeamID(teamID uuid.UUID) ([]models.TeamPosition, error) {
	var positions []models.TeamPosition
	err := r.db.Where("team_id = ?", teamID).Order("label ASC").Find(&positions).Error
	return positions, err
}

// UpdatePosition updates a team position
func (r *TeamRepository) UpdatePosition(position *models.TeamPosition) error {
	return r.db.Save(position).Error
}

// DeletePosition deletes a team position and cascades to its assignments
func (r *TeamRepository) DeletePosition(id uuid.UUID) error {
	return r.db.Delete(&models.TeamPosition{}, "id = ?", id).Error
}
