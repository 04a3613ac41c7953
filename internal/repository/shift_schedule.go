package repository

import (
	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftScheduleRepository handles database operations for shift schedules,
// their periods, weeks and daily plans
type ShiftScheduleRepository struct {
	db *gorm.DB
}

// NewShiftScheduleRepository creates a new shift schedule repository
func NewShiftScheduleRepository(db *gorm.DB) *ShiftScheduleRepository {
	return &ShiftScheduleRepository{db: db}
}

// Transaction runs fn against a repository bound to a database transaction.
// Week renumbering and period/week duplication are multi-row mutations and
// must never be left half applied.
func (r *ShiftScheduleRepository) Transaction(fn func(tx *ShiftScheduleRepository) error) error {
	return r.db.Transaction(func(txdb *gorm.DB) error {
		return fn(&ShiftScheduleRepository{db: txdb})
	})
}

// Create creates a new shift schedule
func (r *ShiftScheduleRepository) Create(schedule *models.ShiftSchedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a shift schedule by ID
func (r *ShiftScheduleRepository) GetByID(id uuid.UUID) (*models.ShiftSchedule, error) {
	var schedule models.ShiftSchedule
	err := r.db.First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetWithPeriods retrieves a schedule with periods preloaded in date order
func (r *ShiftScheduleRepository) GetWithPeriods(id uuid.UUID) (*models.ShiftSchedule, error) {
	var schedule models.ShiftSchedule
	err := r.db.Preload("Periods", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date ASC")
	}).First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetAll retrieves all shift schedules ordered by name
func (r *ShiftScheduleRepository) GetAll(limit, offset int) ([]models.ShiftSchedule, int64, error) {
	var schedules []models.ShiftSchedule
	var total int64

	if err := r.db.Model(&models.ShiftSchedule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&schedules).Error
	return schedules, total, err
}

// Update updates a shift schedule
func (r *ShiftScheduleRepository) Update(schedule *models.ShiftSchedule) error {
	return r.db.Save(schedule).Error
}

// Delete deletes a schedule and cascades to periods, weeks and daily plans
func (r *ShiftScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftSchedule{}, "id = ?", id).Error
}

// CreatePeriod creates a new shift schedule period
func (r *ShiftScheduleRepository) CreatePeriod(period *models.ShiftSchedulePeriod) error {
	return r.db.Create(period).Error
}

// GetPeriodByID retrieves a shift schedule period by ID
func (r *ShiftScheduleRepository) GetPeriodByID(id uuid.UUID) (*models.ShiftSchedulePeriod, error) {
	var period models.ShiftSchedulePeriod
	err := r.db.First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetPeriodsByScheduleID retrieves a schedule's periods in date order
func (r *ShiftScheduleRepository) GetPeriodsByScheduleID(scheduleID uuid.UUID) ([]models.ShiftSchedulePeriod, error) {
	var periods []models.ShiftSchedulePeriod
	err := r.db.Where("shift_schedule_id = ?", scheduleID).Order("start_date ASC").Find(&periods).Error
	return periods, err
}

// UpdatePeriod updates a shift schedule period
func (r *ShiftScheduleRepository) UpdatePeriod(period *models.ShiftSchedulePeriod) error {
	return r.db.Save(period).Error
}

// DeletePeriod deletes a period and cascades to its weeks
func (r *ShiftScheduleRepository) DeletePeriod(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftSchedulePeriod{}, "id = ?", id).Error
}

// CreateWeek creates a new week within a period
func (r *ShiftScheduleRepository) CreateWeek(week *models.ShiftScheduleWeek) error {
	return r.db.Create(week).Error
}

// GetWeekByID retrieves a week by ID
func (r *ShiftScheduleRepository) GetWeekByID(id uuid.UUID) (*models.ShiftScheduleWeek, error) {
	var week models.ShiftScheduleWeek
	err := r.db.First(&week, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// GetWeekWithDailyPlans retrieves a week with its daily plans preloaded in weekday order
func (r *ShiftScheduleRepository) GetWeekWithDailyPlans(id uuid.UUID) (*models.ShiftScheduleWeek, error) {
	var week models.ShiftScheduleWeek
	err := r.db.Preload("DailyPlans", func(db *gorm.DB) *gorm.DB {
		return db.Order("weekday ASC")
	}).First(&week, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// GetWeeksByPeriodID retrieves a period's weeks in week-number order
func (r *ShiftScheduleRepository) GetWeeksByPeriodID(periodID uuid.UUID) ([]models.ShiftScheduleWeek, error) {
	var weeks []models.ShiftScheduleWeek
	err := r.db.Where("period_id = ?", periodID).Order("week_number ASC").Find(&weeks).Error
	return weeks, err
}

// CountWeeks counts the weeks of a period
func (r *ShiftScheduleRepository) CountWeeks(periodID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShiftScheduleWeek{}).Where("period_id = ?", periodID).Count(&count).Error
	return count, err
}

// DeleteWeek deletes a week and shifts every higher-numbered week in the same
// period down by one, keeping the numbering dense and starting at 1. The
// renumbering goes lowest-first, one row at a time: each week moves into the
// slot freed by the delete or by the previous update, so the unique index on
// (period_id, week_number) is satisfied at every step.
func (r *ShiftScheduleRepository) DeleteWeek(week *models.ShiftScheduleWeek) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ShiftScheduleWeek{}, "id = ?", week.ID).Error; err != nil {
			return err
		}

		var following []models.ShiftScheduleWeek
		if err := tx.Where("period_id = ? AND week_number > ?", week.PeriodID, week.WeekNumber).
			Order("week_number ASC").Find(&following).Error; err != nil {
			return err
		}

		for i := range following {
			err := tx.Model(&following[i]).
				UpdateColumn("week_number", following[i].WeekNumber-1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateDailyPlan creates a new weekday assignment within a week
func (r *ShiftScheduleRepository) CreateDailyPlan(plan *models.ShiftScheduleDailyPlan) error {
	return r.db.Create(plan).Error
}

// GetDailyPlansByWeekID retrieves a week's daily plans in weekday order
func (r *ShiftScheduleRepository) GetDailyPlansByWeekID(weekID uuid.UUID) ([]models.ShiftScheduleDailyPlan, error) {
	var plans []models.ShiftScheduleDailyPlan
	err := r.db.Where("week_id = ?", weekID).Order("weekday ASC").Find(&plans).Error
	return plans, err
}

// GetDailyPlanByWeekday retrieves a week's assignment for one weekday, if any
func (r *ShiftScheduleRepository) GetDailyPlanByWeekday(weekID uuid.UUID, weekday models.Weekday) (*models.ShiftScheduleDailyPlan, error) {
	var plan models.ShiftScheduleDailyPlan
	err := r.db.First(&plan, "week_id = ? AND weekday = ?", weekID, weekday).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateDailyPlan updates a weekday assignment
func (r *ShiftScheduleRepository) UpdateDailyPlan(plan *models.ShiftScheduleDailyPlan) error {
	return r.db.Save(plan).Error
}

// DeleteDailyPlan deletes a weekday assignment
func (r *ShiftScheduleRepository) DeleteDailyPlan(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftScheduleDailyPlan{}, "id = ?", id).Error
}
