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

// ShiftScheduleService handles business logic for the shift schedule
// hierarchy: schedule, period, week and weekday plan
type ShiftScheduleService struct {
	repo      *repository.ShiftScheduleRepository
	planRepo  *repository.RotationPlanRepository
	validator *validator.Validate
}

// NewShiftScheduleService creates a new shift schedule service
func NewShiftScheduleService(repo *repository.ShiftScheduleRepository, planRepo *repository.RotationPlanRepository, validator *validator.Validate) *ShiftScheduleService {
	return &ShiftScheduleService{
		repo:      repo,
		planRepo:  planRepo,
		validator: validator,
	}
}

// CreateShiftScheduleRequest represents the request to create a shift schedule
type CreateShiftScheduleRequest struct {
	Name       string              `json:"name" validate:"required,max=200"`
	Kind       models.ScheduleKind `json:"kind" validate:"required"`
	BreakTimes *int                `json:"break_times,omitempty" validate:"omitempty,min=0,max=10"`
}

// UpdateShiftScheduleRequest represents the request to update a shift schedule
type UpdateShiftScheduleRequest struct {
	Name       *string              `json:"name,omitempty"`
	Kind       *models.ScheduleKind `json:"kind,omitempty"`
	BreakTimes *int                 `json:"break_times,omitempty"`
}

// SaveSchedulePeriodRequest represents the request to create, update or
// duplicate a shift schedule period
type SaveSchedulePeriodRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// AssignDailyPlanRequest represents the request to assign a rotation plan to a weekday
type AssignDailyPlanRequest struct {
	Weekday             models.Weekday `json:"weekday" validate:"required,min=1,max=7"`
	DailyRotationPlanID uuid.UUID      `json:"daily_rotation_plan_id" validate:"required"`
}

// ShiftScheduleResponse represents the response for shift schedule operations
type ShiftScheduleResponse struct {
	ID         uuid.UUID                `json:"id"`
	Name       string                   `json:"name"`
	Kind       models.ScheduleKind      `json:"kind"`
	BreakTimes int                      `json:"break_times"`
	Periods    []SchedulePeriodResponse `json:"periods,omitempty"`
	CreatedAt  string                   `json:"created_at"`
	UpdatedAt  string                   `json:"updated_at"`
}

// SchedulePeriodResponse represents the response for period operations
type SchedulePeriodResponse struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

// ScheduleWeekResponse represents the response for week operations
type ScheduleWeekResponse struct {
	ID         uuid.UUID           `json:"id"`
	PeriodID   uuid.UUID           `json:"period_id"`
	WeekNumber int                 `json:"week_number"`
	DailyPlans []DailyPlanResponse `json:"daily_plans,omitempty"`
}

// DailyPlanResponse represents the response for weekday assignments
type DailyPlanResponse struct {
	ID                  uuid.UUID      `json:"id"`
	Weekday             models.Weekday `json:"weekday"`
	DailyRotationPlanID uuid.UUID      `json:"daily_rotation_plan_id"`
}

// ShiftScheduleListResponse represents a paginated list of shift schedules
type ShiftScheduleListResponse struct {
	Schedules []ShiftScheduleResponse `json:"schedules"`
	Total     int64                   `json:"total"`
	Page      int                     `json:"page"`
	PageSize  int                     `json:"page_size"`
}

// Create creates a new shift schedule
func (s *ShiftScheduleService) Create(req *CreateShiftScheduleRequest) (*ShiftScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.ErrInvalidScheduleKind
	}

	breakTimes := 2
	if req.BreakTimes != nil {
		breakTimes = *req.BreakTimes
	}

	schedule := &models.ShiftSchedule{
		Name:       req.Name,
		Kind:       req.Kind,
		BreakTimes: breakTimes,
	}

	if err := s.repo.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create shift schedule: %w", err)
	}

	return s.toScheduleResponse(schedule, time.Now()), nil
}

// GetByID retrieves a shift schedule with its periods
func (s *ShiftScheduleService) GetByID(id uuid.UUID) (*ShiftScheduleResponse, error) {
	schedule, err := s.repo.GetWithPeriods(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule: %w", err)
	}

	return s.toScheduleResponse(schedule, time.Now()), nil
}

// GetAll retrieves shift schedules with pagination
func (s *ShiftScheduleService) GetAll(page, pageSize int) (*ShiftScheduleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	schedules, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift schedules: %w", err)
	}

	now := time.Now()
	responses := make([]ShiftScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = *s.toScheduleResponse(&schedule, now)
	}

	return &ShiftScheduleListResponse{
		Schedules: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a shift schedule
func (s *ShiftScheduleService) Update(id uuid.UUID, req *UpdateShiftScheduleRequest) (*ShiftScheduleResponse, error) {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule: %w", err)
	}

	if req.Name != nil {
		schedule.Name = *req.Name
	}
	if req.Kind != nil {
		if !req.Kind.IsValid() {
			return nil, apperrors.ErrInvalidScheduleKind
		}
		schedule.Kind = *req.Kind
	}
	if req.BreakTimes != nil {
		if *req.BreakTimes < 0 || *req.BreakTimes > 10 {
			return nil, apperrors.NewValidationError("break_times", "must be between 0 and 10")
		}
		schedule.BreakTimes = *req.BreakTimes
	}

	if err := s.repo.Update(schedule); err != nil {
		return nil, fmt.Errorf("failed to update shift schedule: %w", err)
	}

	return s.toScheduleResponse(schedule, time.Now()), nil
}

// Delete deletes a shift schedule and all its descendants
func (s *ShiftScheduleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftScheduleNotFound
		}
		return fmt.Errorf("failed to get shift schedule: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift schedule: %w", err)
	}

	return nil
}

// CreatePeriod creates a new period under a schedule, overlap-validated
// against sibling periods of the same schedule.
func (s *ShiftScheduleService) CreatePeriod(scheduleID uuid.UUID, req *SaveSchedulePeriodRequest) (*SchedulePeriodResponse, error) {
	dateRange, err := s.validatePeriodRequest(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule: %w", err)
	}

	period := &models.ShiftSchedulePeriod{
		ShiftScheduleID: scheduleID,
		StartDate:       dateRange.Start,
		EndDate:         dateRange.End,
	}

	err = s.repo.Transaction(func(tx *repository.ShiftScheduleRepository) error {
		siblings, err := tx.GetPeriodsByScheduleID(scheduleID)
		if err != nil {
			return fmt.Errorf("failed to read sibling periods: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, uuid.Nil, schedulePeriodRecords(siblings)); err != nil {
			return err
		}
		return tx.CreatePeriod(period)
	})
	if err != nil {
		return nil, err
	}

	return s.toPeriodResponse(period, time.Now()), nil
}

// UpdatePeriod edits a period in place; its own record is excluded from the
// overlap check.
func (s *ShiftScheduleService) UpdatePeriod(id uuid.UUID, req *SaveSchedulePeriodRequest) (*SchedulePeriodResponse, error) {
	dateRange, err := s.validatePeriodRequest(req)
	if err != nil {
		return nil, err
	}

	period, err := s.repo.GetPeriodByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftSchedulePeriodNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule period: %w", err)
	}

	period.StartDate = dateRange.Start
	period.EndDate = dateRange.End

	err = s.repo.Transaction(func(tx *repository.ShiftScheduleRepository) error {
		siblings, err := tx.GetPeriodsByScheduleID(period.ShiftScheduleID)
		if err != nil {
			return fmt.Errorf("failed to read sibling periods: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, period.ID, schedulePeriodRecords(siblings)); err != nil {
			return err
		}
		return tx.UpdatePeriod(period)
	})
	if err != nil {
		return nil, err
	}

	return s.toPeriodResponse(period, time.Now()), nil
}

// DeletePeriod deletes a period and all its weeks
func (s *ShiftScheduleService) DeletePeriod(id uuid.UUID) error {
	if _, err := s.repo.GetPeriodByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftSchedulePeriodNotFound
		}
		return fmt.Errorf("failed to get shift schedule period: %w", err)
	}

	if err := s.repo.DeletePeriod(id); err != nil {
		return fmt.Errorf("failed to delete shift schedule period: %w", err)
	}

	return nil
}

// CreateWeek appends a new week to a period. The week number is always the
// current week count plus one.
func (s *ShiftScheduleService) CreateWeek(periodID uuid.UUID) (*ScheduleWeekResponse, error) {
	if _, err := s.repo.GetPeriodByID(periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftSchedulePeriodNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule period: %w", err)
	}

	var week *models.ShiftScheduleWeek
	err := s.repo.Transaction(func(tx *repository.ShiftScheduleRepository) error {
		count, err := tx.CountWeeks(periodID)
		if err != nil {
			return fmt.Errorf("failed to count weeks: %w", err)
		}
		week = &models.ShiftScheduleWeek{
			PeriodID:   periodID,
			WeekNumber: int(count) + 1,
		}
		return tx.CreateWeek(week)
	})
	if err != nil {
		return nil, err
	}

	return s.toWeekResponse(week), nil
}

// DeleteWeek deletes a week and renumbers the remaining weeks of the period
// so they stay dense, starting at 1.
func (s *ShiftScheduleService) DeleteWeek(id uuid.UUID) error {
	week, err := s.repo.GetWeekByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftScheduleWeekNotFound
		}
		return fmt.Errorf("failed to get shift schedule week: %w", err)
	}

	if err := s.repo.DeleteWeek(week); err != nil {
		return fmt.Errorf("failed to delete shift schedule week: %w", err)
	}

	return nil
}

// DuplicateWeek creates a new week at the end of the same period and copies
// every weekday assignment of the source week into it.
func (s *ShiftScheduleService) DuplicateWeek(id uuid.UUID) (*ScheduleWeekResponse, error) {
	source, err := s.repo.GetWeekWithDailyPlans(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftScheduleWeekNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule week: %w", err)
	}

	var copied *models.ShiftScheduleWeek
	err = s.repo.Transaction(func(tx *repository.ShiftScheduleRepository) error {
		var err error
		copied, err = s.copyWeek(tx, source, source.PeriodID)
		return err
	})
	if err != nil {
		return nil, err
	}

	week, err := s.repo.GetWeekWithDailyPlans(copied.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload duplicated week: %w", err)
	}
	return s.toWeekResponse(week), nil
}

// DuplicatePeriod creates a new period under the same schedule with the
// caller-supplied date range, then copies every week of the source period in
// week-number order with all weekday assignments. The whole cascade is
// atomic; a failure leaves nothing behind.
func (s *ShiftScheduleService) DuplicatePeriod(id uuid.UUID, req *SaveSchedulePeriodRequest) (*SchedulePeriodResponse, error) {
	dateRange, err := s.validatePeriodRequest(req)
	if err != nil {
		return nil, err
	}

	source, err := s.repo.GetPeriodByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftSchedulePeriodNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule period: %w", err)
	}

	copied := &models.ShiftSchedulePeriod{
		ShiftScheduleID: source.ShiftScheduleID,
		StartDate:       dateRange.Start,
		EndDate:         dateRange.End,
	}

	err = s.repo.Transaction(func(tx *repository.ShiftScheduleRepository) error {
		siblings, err := tx.GetPeriodsByScheduleID(source.ShiftScheduleID)
		if err != nil {
			return fmt.Errorf("failed to read sibling periods: %w", err)
		}
		if err := scheduling.CheckOverlap(dateRange, uuid.Nil, schedulePeriodRecords(siblings)); err != nil {
			return err
		}
		if err := tx.CreatePeriod(copied); err != nil {
			return err
		}

		weeks, err := tx.GetWeeksByPeriodID(source.ID)
		if err != nil {
			return fmt.Errorf("failed to read source weeks: %w", err)
		}
		for i := range weeks {
			week, err := tx.GetWeekWithDailyPlans(weeks[i].ID)
			if err != nil {
				return fmt.Errorf("failed to read source week: %w", err)
			}
			if _, err := s.copyWeek(tx, week, copied.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toPeriodResponse(copied, time.Now()), nil
}

// AssignDailyPlan assigns a rotation plan to a weekday of a week with upsert
// semantics. The plan must own at least one rotation period.
func (s *ShiftScheduleService) AssignDailyPlan(weekID uuid.UUID, req *AssignDailyPlanRequest) (*DailyPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Weekday.IsValid() {
		return nil, apperrors.ErrInvalidWeekday
	}

	if _, err := s.repo.GetWeekByID(weekID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftScheduleWeekNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule week: %w", err)
	}

	plan, err := s.planRepo.GetByID(req.DailyRotationPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRotationPlanNotFound
		}
		return nil, fmt.Errorf("failed to get rotation plan: %w", err)
	}

	// Assignability gate: a plan with no periods has no hours to contribute
	periodCount, err := s.planRepo.CountPeriods(plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count rotation periods: %w", err)
	}
	if periodCount == 0 {
		return nil, apperrors.NewEmptyPlanError(plan.Designation)
	}

	var saved *models.ShiftScheduleDailyPlan
	err = s.repo.Transaction(func(tx *repository.ShiftScheduleRepository) error {
		existing, err := tx.GetDailyPlanByWeekday(weekID, req.Weekday)
		switch {
		case err == nil:
			existing.DailyRotationPlanID = plan.ID
			saved = existing
			return tx.UpdateDailyPlan(existing)
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = &models.ShiftScheduleDailyPlan{
				WeekID:              weekID,
				Weekday:             req.Weekday,
				DailyRotationPlanID: plan.ID,
			}
			return tx.CreateDailyPlan(saved)
		default:
			return fmt.Errorf("failed to read weekday assignment: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return s.toDailyPlanResponse(saved), nil
}

// GetWeek retrieves a week with its weekday assignments
func (s *ShiftScheduleService) GetWeek(id uuid.UUID) (*ScheduleWeekResponse, error) {
	week, err := s.repo.GetWeekWithDailyPlans(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftScheduleWeekNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule week: %w", err)
	}

	return s.toWeekResponse(week), nil
}

// GetWeeks retrieves a period's weeks in week-number order
func (s *ShiftScheduleService) GetWeeks(periodID uuid.UUID) ([]ScheduleWeekResponse, error) {
	if _, err := s.repo.GetPeriodByID(periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftSchedulePeriodNotFound
		}
		return nil, fmt.Errorf("failed to get shift schedule period: %w", err)
	}

	weeks, err := s.repo.GetWeeksByPeriodID(periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weeks: %w", err)
	}

	responses := make([]ScheduleWeekResponse, len(weeks))
	for i := range weeks {
		responses[i] = *s.toWeekResponse(&weeks[i])
	}
	return responses, nil
}

// copyWeek appends a copy of source (with its weekday assignments) to the
// target period, numbering it after the period's current last week.
func (s *ShiftScheduleService) copyWeek(tx *repository.ShiftScheduleRepository, source *models.ShiftScheduleWeek, targetPeriodID uuid.UUID) (*models.ShiftScheduleWeek, error) {
	count, err := tx.CountWeeks(targetPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to count weeks: %w", err)
	}

	week := &models.ShiftScheduleWeek{
		PeriodID:   targetPeriodID,
		WeekNumber: int(count) + 1,
	}
	if err := tx.CreateWeek(week); err != nil {
		return nil, err
	}

	for _, plan := range source.DailyPlans {
		copied := &models.ShiftScheduleDailyPlan{
			WeekID:              week.ID,
			Weekday:             plan.Weekday,
			DailyRotationPlanID: plan.DailyRotationPlanID,
		}
		if err := tx.CreateDailyPlan(copied); err != nil {
			return nil, err
		}
	}

	return week, nil
}

func (s *ShiftScheduleService) validatePeriodRequest(req *SaveSchedulePeriodRequest) (scheduling.DateRange, error) {
	if err := s.validator.Struct(req); err != nil {
		return scheduling.DateRange{}, fmt.Errorf("validation failed: %w", err)
	}
	return scheduling.NewDateRange(req.StartDate, req.EndDate)
}

func schedulePeriodRecords(periods []models.ShiftSchedulePeriod) []scheduling.RangeRecord {
	records := make([]scheduling.RangeRecord, len(periods))
	for i, p := range periods {
		records[i] = scheduling.RangeRecord{ID: p.ID, Range: p.Range()}
	}
	return records
}

// toScheduleResponse converts a shift schedule model to response
func (s *ShiftScheduleService) toScheduleResponse(schedule *models.ShiftSchedule, today time.Time) *ShiftScheduleResponse {
	response := &ShiftScheduleResponse{
		ID:         schedule.ID,
		Name:       schedule.Name,
		Kind:       schedule.Kind,
		BreakTimes: schedule.BreakTimes,
		CreatedAt:  schedule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  schedule.UpdatedAt.Format(time.RFC3339),
	}

	for i := range schedule.Periods {
		response.Periods = append(response.Periods, *s.toPeriodResponse(&schedule.Periods[i], today))
	}

	return response
}

// toPeriodResponse converts a period model to response
func (s *ShiftScheduleService) toPeriodResponse(period *models.ShiftSchedulePeriod, today time.Time) *SchedulePeriodResponse {
	return &SchedulePeriodResponse{
		ID:        period.ID,
		StartDate: period.StartDate.Format("2006-01-02"),
		EndDate:   period.EndDate.Format("2006-01-02"),
		IsActive:  period.IsActive(today),
	}
}

// toWeekResponse converts a week model to response
func (s *ShiftScheduleService) toWeekResponse(week *models.ShiftScheduleWeek) *ScheduleWeekResponse {
	response := &ScheduleWeekResponse{
		ID:         week.ID,
		PeriodID:   week.PeriodID,
		WeekNumber: week.WeekNumber,
	}
	for i := range week.DailyPlans {
		response.DailyPlans = append(response.DailyPlans, *s.toDailyPlanResponse(&week.DailyPlans[i]))
	}
	return response
}

// toDailyPlanResponse converts a weekday assignment model to response
func (s *ShiftScheduleService) toDailyPlanResponse(plan *models.ShiftScheduleDailyPlan) *DailyPlanResponse {
	return &DailyPlanResponse{
		ID:                  plan.ID,
		Weekday:             plan.Weekday,
		DailyRotationPlanID: plan.DailyRotationPlanID,
	}
}
