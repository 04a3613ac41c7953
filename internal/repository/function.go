package repository

import (
	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FunctionRepository handles database operations for functions
type FunctionRepository struct {
	db *gorm.DB
}

// NewFunctionRepository creates a new function repository
func NewFunctionRepository(db *gorm.DB) *FunctionRepository {
	return &FunctionRepository{db: db}
}

// Create creates a new function
func (r *FunctionRepository) Create(function *models.Function) error {
	return r.db.Create(function).Error
}

// GetByID retrieves a function by ID
func (r *FunctionRepository) GetByID(id uuid.UUID) (*models.Function, error) {
	var function models.Function
	err := r.db.First(&function, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &function, nil
}

// GetByDesignation retrieves a function by designation
func (r *FunctionRepository) GetByDesignation(designation string) (*models.Function, error) {
	var function models.Function
	err := r.db.First(&function, "designation = ?", designation).Error
	if err != nil {
		return nil, err
	}
	return &function, nil
}

// GetAll retrieves all functions ordered by designation
func (r *FunctionRepository) GetAll(limit, offset int) ([]models.Function, int64, error) {
	var functions []models.Function
	var total int64

	if err := r.db.Model(&models.Function{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("designation ASC").Limit(limit).Offset(offset).Find(&functions).Error
	return functions, total, err
}

// Update updates a function
func (r *FunctionRepository) Update(function *models.Function) error {
	return r.db.Save(function).Error
}

// Delete deletes a function
func (r *FunctionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Function{}, "id = ?", id).Error
}

// GetReferencingPositionLabels lists labels of team positions still tied to the function
func (r *FunctionRepository) GetReferencingPositionLabels(functionID uuid.UUID) ([]string, error) {
	var labels []string
	err := r.db.Model(&models.TeamPosition{}).
		Where("function_id = ?", functionID).
		Order("label ASC").
		Pluck("label", &labels).Error
	return labels, err
}
