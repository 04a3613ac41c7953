package service

import (
	"errors"
	"fmt"
	"time"

	"shift-planning-backend/internal/database/models"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicHolidayService handles business logic for public holidays
type PublicHolidayService struct {
	repo      *repository.PublicHolidayRepository
	validator *validator.Validate
}

// NewPublicHolidayService creates a new public holiday service
func NewPublicHolidayService(repo *repository.PublicHolidayRepository, validator *validator.Validate) *PublicHolidayService {
	return &PublicHolidayService{
		repo:      repo,
		validator: validator,
	}
}

// SavePublicHolidayRequest represents the request to create or update a public holiday
type SavePublicHolidayRequest struct {
	Designation string    `json:"designation" validate:"required,max=100"`
	Date        time.Time `json:"date" validate:"required"`
}

// PublicHolidayResponse represents the response for public holiday operations
type PublicHolidayResponse struct {
	ID          uuid.UUID `json:"id"`
	Designation string    `json:"designation"`
	Date        string    `json:"date"`
}

// PublicHolidayListResponse represents a paginated list of public holidays
type PublicHolidayListResponse struct {
	Holidays []PublicHolidayResponse `json:"holidays"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create creates a new public holiday. A calendar date can carry only one holiday.
func (s *PublicHolidayService) Create(req *SavePublicHolidayRequest) (*PublicHolidayResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date := truncateDate(req.Date)
	holiday := &models.PublicHoliday{
		Designation: req.Designation,
		Date:        date,
	}

	err := s.repo.Transaction(func(tx *repository.PublicHolidayRepository) error {
		if _, err := tx.GetByDate(date); err == nil {
			return &apperrors.DuplicateKeyError{Key: "date", Value: date.Format("2006-01-02")}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check holiday date: %w", err)
		}
		return tx.Create(holiday)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(holiday), nil
}

// GetByID retrieves a public holiday by ID
func (s *PublicHolidayService) GetByID(id uuid.UUID) (*PublicHolidayResponse, error) {
	holiday, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPublicHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get public holiday: %w", err)
	}

	return s.toResponse(holiday), nil
}

// GetAll retrieves public holidays with pagination, in date order
func (s *PublicHolidayService) GetAll(page, pageSize int) (*PublicHolidayListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	holidays, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get public holidays: %w", err)
	}

	responses := make([]PublicHolidayResponse, len(holidays))
	for i := range holidays {
		responses[i] = *s.toResponse(&holidays[i])
	}

	return &PublicHolidayListResponse{
		Holidays: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a public holiday, keeping the one-holiday-per-date rule
func (s *PublicHolidayService) Update(id uuid.UUID, req *SavePublicHolidayRequest) (*PublicHolidayResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	holiday, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPublicHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get public holiday: %w", err)
	}

	date := truncateDate(req.Date)
	holiday.Designation = req.Designation
	holiday.Date = date

	err = s.repo.Transaction(func(tx *repository.PublicHolidayRepository) error {
		if existing, err := tx.GetByDate(date); err == nil {
			if existing.ID != holiday.ID {
				return &apperrors.DuplicateKeyError{Key: "date", Value: date.Format("2006-01-02")}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check holiday date: %w", err)
		}
		return tx.Update(holiday)
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(holiday), nil
}

// Delete deletes a public holiday
func (s *PublicHolidayService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPublicHolidayNotFound
		}
		return fmt.Errorf("failed to get public holiday: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete public holiday: %w", err)
	}
	return nil
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// toResponse converts a public holiday model to response
func (s *PublicHolidayService) toResponse(holiday *models.PublicHoliday) *PublicHolidayResponse {
	return &PublicHolidayResponse{
		ID:          holiday.ID,
		Designation: holiday.Designation,
		Date:        holiday.Date.Format("2006-01-02"),
	}
}
