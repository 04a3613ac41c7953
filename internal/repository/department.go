package repository

import (
	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetWithTeams retrieves a department with its teams preloaded
func (r *DepartmentRepository) GetWithTeams(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.Preload("Teams").First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetAll retrieves all departments ordered by designation
func (r *DepartmentRepository) GetAll(limit, offset int) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	if err := r.db.Model(&models.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("designation ASC").Limit(limit).Offset(offset).Find(&departments).Error
	return departments, total, err
}

// Update updates a department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete deletes a department and cascades to its teams
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Department{}, "id = ?", id).Error
}
