package repository

import (
	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RotationPlanRepository handles database operations for daily rotation plans
// and their rotation periods
type RotationPlanRepository struct {
	db *gorm.DB
}

// NewRotationPlanRepository creates a new rotation plan repository
func NewRotationPlanRepository(db *gorm.DB) *RotationPlanRepository {
	return &RotationPlanRepository{db: db}
}

// Transaction runs fn against a repository bound to a database transaction.
// Validating writes use this so the sibling read and the write share one
// transaction and concurrent writers cannot both pass validation.
func (r *RotationPlanRepository) Transaction(fn func(tx *RotationPlanRepository) error) error {
	return r.db.Transaction(func(txdb *gorm.DB) error {
		return fn(&RotationPlanRepository{db: txdb})
	})
}

// Create creates a new daily rotation plan
func (r *RotationPlanRepository) Create(plan *models.DailyRotationPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a daily rotation plan by ID
func (r *RotationPlanRepository) GetByID(id uuid.UUID) (*models.DailyRotationPlan, error) {
	var plan models.DailyRotationPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetWithPeriods retrieves a plan with its periods preloaded in display order
func (r *RotationPlanRepository) GetWithPeriods(id uuid.UUID) (*models.DailyRotationPlan, error) {
	var plan models.DailyRotationPlan
	err := r.db.Preload("Periods", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date ASC, start_time ASC")
	}).Preload("ScheduleType").First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetAll retrieves all daily rotation plans ordered by designation. Periods
// are preloaded so the has_periods flag is accurate on the list path.
func (r *RotationPlanRepository) GetAll(limit, offset int) ([]models.DailyRotationPlan, int64, error) {
	var plans []models.DailyRotationPlan
	var total int64

	if err := r.db.Model(&models.DailyRotationPlan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Periods", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date ASC, start_time ASC")
	}).Preload("ScheduleType").Order("designation ASC").Limit(limit).Offset(offset).Find(&plans).Error
	return plans, total, err
}

// Update updates a daily rotation plan
func (r *RotationPlanRepository) Update(plan *models.DailyRotationPlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a plan and cascades to its rotation periods
func (r *RotationPlanRepository) Delete(id uuid.UUID) error {
	return r.db.Select("Periods").Delete(&models.DailyRotationPlan{BaseModel: models.BaseModel{ID: id}}).Error
}

// CountPeriods counts the rotation periods owned by a plan
func (r *RotationPlanRepository) CountPeriods(planID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.RotationPeriod{}).Where("daily_rotation_plan_id = ?", planID).Count(&count).Error
	return count, err
}

// CountDailyPlansReferencing counts weekday slots still referencing the plan
func (r *RotationPlanRepository) CountDailyPlansReferencing(planID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShiftScheduleDailyPlan{}).Where("daily_rotation_plan_id = ?", planID).Count(&count).Error
	return count, err
}

// CreatePeriod creates a new rotation period
func (r *RotationPlanRepository) CreatePeriod(period *models.RotationPeriod) error {
	return r.db.Create(period).Error
}

// GetPeriodByID retrieves a rotation period by ID
func (r *RotationPlanRepository) GetPeriodByID(id uuid.UUID) (*models.RotationPeriod, error) {
	var period models.RotationPeriod
	err := r.db.First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetPeriodsByPlanID retrieves a plan's periods sorted for display
func (r *RotationPlanRepository) GetPeriodsByPlanID(planID uuid.UUID) ([]models.RotationPeriod, error) {
	var periods []models.RotationPeriod
	err := r.db.Where("daily_rotation_plan_id = ?", planID).
		Order("start_date ASC, start_time ASC").
		Find(&periods).Error
	return periods, err
}

// UpdatePeriod updates a rotation period
func (r *RotationPlanRepository) UpdatePeriod(period *models.RotationPeriod) error {
	return r.db.Save(period).Error
}

// DeletePeriod deletes a rotation period
func (r *RotationPlanRepository) DeletePeriod(id uuid.UUID) error {
	return r.db.Delete(&models.RotationPeriod{}, "id = ?", id).Error
}
