package repository

import (
	"time"

	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicHolidayRepository handles database operations for public holidays
type PublicHolidayRepository struct {
	db *gorm.DB
}

// NewPublicHolidayRepository creates a new public holiday repository
func NewPublicHolidayRepository(db *gorm.DB) *PublicHolidayRepository {
	return &PublicHolidayRepository{db: db}
}

// Transaction runs fn against a repository bound to a database transaction.
// The duplicate-date check and the write share one transaction so concurrent
// writers cannot both pass validation.
func (r *PublicHolidayRepository) Transaction(fn func(tx *PublicHolidayRepository) error) error {
	return r.db.Transaction(func(txdb *gorm.DB) error {
		return fn(&PublicHolidayRepository{db: txdb})
	})
}

// Create creates a new public holiday
func (r *PublicHolidayRepository) Create(holiday *models.PublicHoliday) error {
	return r.db.Create(holiday).Error
}

// GetByID retrieves a public holiday by ID
func (r *PublicHolidayRepository) GetByID(id uuid.UUID) (*models.PublicHoliday, error) {
	var holiday models.PublicHoliday
	err := r.db.First(&holiday, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

// GetByDate retrieves the holiday on a given date, if any
func (r *PublicHolidayRepository) GetByDate(date time.Time) (*models.PublicHoliday, error) {
	var holiday models.PublicHoliday
	err := r.db.First(&holiday, "date = ?", date).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

// GetAll retrieves all public holidays in date order
func (r *PublicHolidayRepository) GetAll(limit, offset int) ([]models.PublicHoliday, int64, error) {
	var holidays []models.PublicHoliday
	var total int64

	if err := r.db.Model(&models.PublicHoliday{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("date ASC").Limit(limit).Offset(offset).Find(&holidays).Error
	return holidays, total, err
}

// Update updates a public holiday
func (r *PublicHolidayRepository) Update(holiday *models.PublicHoliday) error {
	return r.db.Save(holiday).Error
}

// Delete deletes a public holiday
func (r *PublicHolidayRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PublicHoliday{}, "id = ?", id).Error
}
