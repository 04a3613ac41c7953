package repository

import (
	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTypeRepository handles database operations for schedule types
type ScheduleTypeRepository struct {
	db *gorm.DB
}

// NewScheduleTypeRepository creates a new schedule type repository
func NewScheduleTypeRepository(db *gorm.DB) *ScheduleTypeRepository {
	return &ScheduleTypeRepository{db: db}
}

// Create creates a new schedule type
func (r *ScheduleTypeRepository) Create(scheduleType *models.ScheduleType) error {
	return r.db.Create(scheduleType).Error
}

// GetByID retrieves a schedule type by ID
func (r *ScheduleTypeRepository) GetByID(id uuid.UUID) (*models.ScheduleType, error) {
	var scheduleType models.ScheduleType
	err := r.db.First(&scheduleType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scheduleType, nil
}

// GetAll retrieves all schedule types ordered by designation
func (r *ScheduleTypeRepository) GetAll(limit, offset int) ([]models.ScheduleType, int64, error) {
	var scheduleTypes []models.ScheduleType
	var total int64

	if err := r.db.Model(&models.ScheduleType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("designation ASC").Limit(limit).Offset(offset).Find(&scheduleTypes).Error
	return scheduleTypes, total, err
}

// Update updates a schedule type
func (r *ScheduleTypeRepository) Update(scheduleType *models.ScheduleType) error {
	return r.db.Save(scheduleType).Error
}

// Delete deletes a schedule type
func (r *ScheduleTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScheduleType{}, "id = ?", id).Error
}

// GetReferencingPlanNames lists designations of rotation plans still using the type
func (r *ScheduleTypeRepository) GetReferencingPlanNames(scheduleTypeID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.Model(&models.DailyRotationPlan{}).
		Where("schedule_type_id = ?", scheduleTypeID).
		Order("designation ASC").
		Pluck("designation", &names).Error
	return names, err
}
