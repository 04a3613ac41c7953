package service

import (
	"errors"
	"fmt"
	"time"

	"shift-planning-backend/internal/database/models"
	apperrors "shift-planning-backend/internal/errors"
	"shift-planning-backend/internal/repository"
	"shift-planning-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RotationPlanService handles business logic for daily rotation plans and
// their rotation periods
type RotationPlanService struct {
	repo             *repository.RotationPlanRepository
	scheduleTypeRepo *repository.ScheduleTypeRepository
	validator        *validator.Validate
}

// NewRotationPlanService creates a new rotation plan service
func NewRotationPlanService(repo *repository.RotationPlanRepository, scheduleTypeRepo *repository.ScheduleTypeRepository, validator *validator.Validate) *RotationPlanService {
	return &RotationPlanService{
		repo:             repo,
		scheduleTypeRepo: scheduleTypeRepo,
		validator:        validator,
	}
}

// CreateRotationPlanRequest represents the request to create a daily rotation plan
type CreateRotationPlanRequest struct {
	Designation    string    `json:"designation" validate:"required,max=100"`
	Description    string    `json:"description" validate:"max=500"`
	ScheduleTypeID uuid.UUID `json:"schedule_type_id" validate:"required"`
}

// UpdateRotationPlanRequest represents the request to update a daily rotation plan
type UpdateRotationPlanRequest struct {
	Designation    *string    `json:"designation,omitempty"`
	Description    *string    `json:"description,omitempty"`
	ScheduleTypeID *uuid.UUID `json:"schedule_type_id,omitempty"`
}

// SaveRotationPeriodRequest represents the request to create or update a rotation period
type SaveRotationPeriodRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
}

// RotationPeriodResponse represents the response for rotation period operations
type RotationPeriodResponse struct {
	ID            uuid.UUID `json:"id"`
	PlanID        uuid.UUID `json:"daily_rotation_plan_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	IsNightShift  bool      `json:"is_night_shift"`
	IsActive      bool      `json:"is_active"`
}

// RotationPlanResponse represents the response for rotation plan operations
type RotationPlanResponse struct {
	ID             uuid.UUID                `json:"id"`
	Designation    string                   `json:"designation"`
	Description    string                   `json:"description"`
	ScheduleTypeID uuid.UUID                `json:"schedule_type_id"`
	HasPeriods     bool                     `json:"has_periods"`
	Periods        []RotationPeriodResponse `json:"periods,omitempty"`
	CreatedAt      string                   `json:"created_at"`
	UpdatedAt      string                   `json:"updated_at"`
}

// RotationPlanListResponse represents a paginated list of rotation plans
type RotationPlanListResponse struct {
	Plans    []RotationPlanResponse `json:"plans"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// Create creates a new daily rotation plan
func (s *RotationPlanService) Create(req *CreateRotationPlanRequest) (*RotationPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate schedule type exists
	if _, err := s.scheduleTypeRepo.GetByID(req.ScheduleTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleTypeNotFound
		}
		return nil, fmt.Errorf("failed to verify schedule type: %w", err)
	}

	plan := &models.DailyRotationPlan{
		Designation:    req.Designation,
		Description:    req.Description,
		ScheduleTypeID: req.ScheduleTypeID,
	}

	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create rotation plan: %w", err)
	}

	return s.toPlanResponse(plan, time.Now()), nil
}

// GetByID retrieves a rotation plan with its periods in display order
func (s *RotationPlanService) GetByID(id uuid.UUID) (*RotationPlanResponse, error) {
	plan, err := s.repo.GetWithPeriods(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationPlanNotFound
		}
		return nil, fmt.Errorf("failed to get rotation plan: %w", err)
	}

	return s.toPlanResponse(plan, time.Now()), nil
}

// GetAll retrieves rotation plans with pagination
func (s *RotationPlanService) GetAll(page, pageSize int) (*RotationPlanListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	plans, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation plans: %w", err)
	}

	now := time.Now()
	responses := make([]RotationPlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = *s.toPlanResponse(&plan, now)
	}

	return &RotationPlanListResponse{
		Plans:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a rotation plan
func (s *RotationPlanService) Update(id uuid.UUID, req *UpdateRotationPlanRequest) (*RotationPlanResponse, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationPlanNotFound
		}
		return nil, fmt.Errorf("failed to get rotation plan: %w", err)
	}

	if req.Designation != nil {
		plan.Designation = *req.Designation
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.ScheduleTypeID != nil {
		if _, err := s.scheduleTypeRepo.GetByID(*req.ScheduleTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrScheduleTypeNotFound
			}
			return nil, fmt.Errorf("failed to verify schedule type: %w", err)
		}
		plan.ScheduleTypeID = *req.ScheduleTypeID
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update rotation plan: %w", err)
	}

	return s.toPlanResponse(plan, time.Now()), nil
}

// Delete deletes a rotation plan and its periods. Deletion is blocked while
// any shift-schedule weekday slot still references the plan.
func (s *RotationPlanService) Delete(id uuid.UUID) error {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRotationPlanNotFound
		}
		return fmt.Errorf("failed to get rotation plan: %w", err)
	}

	referencing, err := s.repo.CountDailyPlansReferencing(id)
	if err != nil {
		return fmt.Errorf("failed to check plan references: %w", err)
	}
	if referencing > 0 {
		return &apperrors.UnassignableReferenceError{
			Entity: "daily rotation plan",
			Name:   plan.Designation,
			Reason: fmt.Sprintf("still assigned to %d shift schedule weekday(s)", referencing),
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete rotation plan: %w", err)
	}

	return nil
}

// HasPeriods reports whether the plan owns at least one rotation period
func (s *RotationPlanService) HasPeriods(id uuid.UUID) (bool, error) {
	count, err := s.repo.CountPeriods(id)
	if err != nil {
		return false, fmt.Errorf("failed to count rotation periods: %w", err)
	}
	return count > 0, nil
}

// CreatePeriod creates a rotation period after running the full validation
// chain: range well-formedness, night-shift rule, overlap against siblings.
// The sibling read and the write share one transaction.
func (s *RotationPlanService) CreatePeriod(planID uuid.UUID, req *SaveRotationPeriodRequest) (*RotationPeriodResponse, error) {
	window, dateRange, err := s.validatePeriodRequest(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationPlanNotFound
		}
		return nil, fmt.Errorf("failed to get rotation plan: %w", err)
	}

	period := &models.RotationPeriod{
		DailyRotationPlanID: planID,
		StartDate:           dateRange.Start,
		EndDate:             dateRange.End,
		StartTime:           window.Start,
		EndTime:             window.End,
	}

	err = s.repo.Transaction(func(tx *repository.RotationPlanRepository) error {
		siblings, err := tx.GetPeriodsByPlanID(planID)
		if err != nil {
			return fmt.Errorf("failed to read sibling periods: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, uuid.Nil, periodRecords(siblings)); err != nil {
			return err
		}
		return tx.CreatePeriod(period)
	})
	if err != nil {
		return nil, err
	}

	return s.toPeriodResponse(period, time.Now()), nil
}

// UpdatePeriod edits a rotation period in place; the period's own record is
// excluded from the overlap check.
func (s *RotationPlanService) UpdatePeriod(id uuid.UUID, req *SaveRotationPeriodRequest) (*RotationPeriodResponse, error) {
	window, dateRange, err := s.validatePeriodRequest(req)
	if err != nil {
		return nil, err
	}

	period, err := s.repo.GetPeriodByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get rotation period: %w", err)
	}

	period.StartDate = dateRange.Start
	period.EndDate = dateRange.End
	period.StartTime = window.Start
	period.EndTime = window.End

	err = s.repo.Transaction(func(tx *repository.RotationPlanRepository) error {
		siblings, err := tx.GetPeriodsByPlanID(period.DailyRotationPlanID)
		if err != nil {
			return fmt.Errorf("failed to read sibling periods: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, period.ID, periodRecords(siblings)); err != nil {
			return err
		}
		return tx.UpdatePeriod(period)
	})
	if err != nil {
		return nil, err
	}

	return s.toPeriodResponse(period, time.Now()), nil
}

// DeletePeriod deletes a rotation period
func (s *RotationPlanService) DeletePeriod(id uuid.UUID) error {
	if _, err := s.repo.GetPeriodByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRotationPeriodNotFound
		}
		return fmt.Errorf("failed to get rotation period: %w", err)
	}

	if err := s.repo.DeletePeriod(id); err != nil {
		return fmt.Errorf("failed to delete rotation period: %w", err)
	}

	return nil
}

// validatePeriodRequest runs the write-independent part of the validation
// chain and parses the clock times.
func (s *RotationPlanService) validatePeriodRequest(req *SaveRotationPeriodRequest) (scheduling.TimeWindow, scheduling.DateRange, error) {
	if err := s.validator.Struct(req); err != nil {
		return scheduling.TimeWindow{}, scheduling.DateRange{}, fmt.Errorf("validation failed: %w", err)
	}

	startTime, err := scheduling.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return scheduling.TimeWindow{}, scheduling.DateRange{}, apperrors.NewValidationError("start_time", err.Error())
	}
	endTime, err := scheduling.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return scheduling.TimeWindow{}, scheduling.DateRange{}, apperrors.NewValidationError("end_time", err.Error())
	}

	dateRange, err := scheduling.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return scheduling.TimeWindow{}, scheduling.DateRange{}, err
	}

	window := scheduling.TimeWindow{Start: startTime, End: endTime}
	if err := window.Validate(); err != nil {
		return scheduling.TimeWindow{}, scheduling.DateRange{}, err
	}

	return window, dateRange, nil
}

func periodRecords(periods []models.RotationPeriod) []scheduling.RangeRecord {
	records := make([]scheduling.RangeRecord, len(periods))
	for i, p := range periods {
		records[i] = scheduling.RangeRecord{ID: p.ID, Range: p.Range()}
	}
	return records
}

// toPlanResponse converts a rotation plan model to response
func (s *RotationPlanService) toPlanResponse(plan *models.DailyRotationPlan, today time.Time) *RotationPlanResponse {
	response := &RotationPlanResponse{
		ID:             plan.ID,
		Designation:    plan.Designation,
		Description:    plan.Description,
		ScheduleTypeID: plan.ScheduleTypeID,
		HasPeriods:     plan.HasPeriods(),
		CreatedAt:      plan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      plan.UpdatedAt.Format(time.RFC3339),
	}

	for i := range plan.Periods {
		response.Periods = append(response.Periods, *s.toPeriodResponse(&plan.Periods[i], today))
	}

	return response
}

// toPeriodResponse converts a rotation period model to response
func (s *RotationPlanService) toPeriodResponse(period *models.RotationPeriod, today time.Time) *RotationPeriodResponse {
	return &RotationPeriodResponse{
		ID:            period.ID,
		PlanID:        period.DailyRotationPlanID,
		StartDate:     period.StartDate.Format("2006-01-02"),
		EndDate:       period.EndDate.Format("2006-01-02"),
		StartTime:     period.StartTime.String(),
		EndTime:       period.EndTime.String(),
		DurationHours: period.DurationHours(),
		IsNightShift:  period.IsNightShift(),
		IsActive:      period.IsActive(today),
	}
}
