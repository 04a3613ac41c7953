package repository

import (
	"time"

	"shift-planning-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AgentRepositoryInterface defines the interface for agent repository operations
type AgentRepositoryInterface interface {
	Create(agent *models.Agent) error
	GetByID(id uuid.UUID) (*models.Agent, error)
	GetByMatricule(matricule string) (*models.Agent, error)
	GetAll(limit, offset int) ([]models.Agent, int64, error)
	Update(agent *models.Agent) error
	Delete(id uuid.UUID) error
	CountAssignmentsReferencing(agentID uuid.UUID) (int64, error)
}

// FunctionRepositoryInterface defines the interface for function repository operations
type FunctionRepositoryInterface interface {
	Create(function *models.Function) error
	GetByID(id uuid.UUID) (*models.Function, error)
	GetByDesignation(designation string) (*models.Function, error)
	GetAll(limit, offset int) ([]models.Function, int64, error)
	Update(function *models.Function) error
	Delete(id uuid.UUID) error
	GetReferencingPositionLabels(functionID uuid.UUID) ([]string, error)
}

// ScheduleTypeRepositoryInterface defines the interface for schedule type repository operations
type ScheduleTypeRepositoryInterface interface {
	Create(scheduleType *models.ScheduleType) error
	GetByID(id uuid.UUID) (*models.ScheduleType, error)
	GetAll(limit, offset int) ([]models.ScheduleType, int64, error)
	Update(scheduleType *models.ScheduleType) error
	Delete(id uuid.UUID) error
	GetReferencingPlanNames(scheduleTypeID uuid.UUID) ([]string, error)
}

// RotationPlanRepositoryInterface defines the interface for rotation plan repository operations
type RotationPlanRepositoryInterface interface {
	Create(plan *models.DailyRotationPlan) error
	GetByID(id uuid.UUID) (*models.DailyRotationPlan, error)
	GetWithPeriods(id uuid.UUID) (*models.DailyRotationPlan, error)
	GetAll(limit, offset int) ([]models.DailyRotationPlan, int64, error)
	Update(plan *models.DailyRotationPlan) error
	Delete(id uuid.UUID) error
	CountPeriods(planID uuid.UUID) (int64, error)
	CountDailyPlansReferencing(planID uuid.UUID) (int64, error)
	CreatePeriod(period *models.RotationPeriod) error
	GetPeriodByID(id uuid.UUID) (*models.RotationPeriod, error)
	GetPeriodsByPlanID(planID uuid.UUID) ([]models.RotationPeriod, error)
	UpdatePeriod(period *models.RotationPeriod) error
	DeletePeriod(id uuid.UUID) error
}

// ShiftScheduleRepositoryInterface defines the interface for shift schedule repository operations
type ShiftScheduleRepositoryInterface interface {
	Create(schedule *models.ShiftSchedule) error
	GetByID(id uuid.UUID) (*models.ShiftSchedule, error)
	GetWithPeriods(id uuid.UUID) (*models.ShiftSchedule, error)
	GetAll(limit, offset int) ([]models.ShiftSchedule, int64, error)
	Update(schedule *models.ShiftSchedule) error
	Delete(id uuid.UUID) error
	CreatePeriod(period *models.ShiftSchedulePeriod) error
	GetPeriodByID(id uuid.UUID) (*models.ShiftSchedulePeriod, error)
	GetPeriodsByScheduleID(scheduleID uuid.UUID) ([]models.ShiftSchedulePeriod, error)
	UpdatePeriod(period *models.ShiftSchedulePeriod) error
	DeletePeriod(id uuid.UUID) error
	CreateWeek(week *models.ShiftScheduleWeek) error
	GetWeekByID(id uuid.UUID) (*models.ShiftScheduleWeek, error)
	GetWeekWithDailyPlans(id uuid.UUID) (*models.ShiftScheduleWeek, error)
	GetWeeksByPeriodID(periodID uuid.UUID) ([]models.ShiftScheduleWeek, error)
	CountWeeks(periodID uuid.UUID) (int64, error)
	DeleteWeek(week *models.ShiftScheduleWeek) error
	CreateDailyPlan(plan *models.ShiftScheduleDailyPlan) error
	GetDailyPlansByWeekID(weekID uuid.UUID) ([]models.ShiftScheduleDailyPlan, error)
	GetDailyPlanByWeekday(weekID uuid.UUID, weekday models.Weekday) (*models.ShiftScheduleDailyPlan, error)
	UpdateDailyPlan(plan *models.ShiftScheduleDailyPlan) error
	DeleteDailyPlan(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	CreateAgentAssignment(assignment *models.AgentAssignment) error
	GetAgentAssignmentByID(id uuid.UUID) (*models.AgentAssignment, error)
	GetAgentAssignmentsByPositionID(positionID uuid.UUID) ([]models.AgentAssignment, error)
	GetCurrentAgentAssignment(positionID uuid.UUID, today time.Time) (*models.AgentAssignment, error)
	UpdateAgentAssignment(assignment *models.AgentAssignment) error
	DeleteAgentAssignment(id uuid.UUID) error
	CreateRotationAssignment(assignment *models.RotationAssignment) error
	GetRotationAssignmentByID(id uuid.UUID) (*models.RotationAssignment, error)
	GetRotationAssignmentsByPositionID(positionID uuid.UUID) ([]models.RotationAssignment, error)
	GetCurrentRotationAssignment(positionID uuid.UUID, today time.Time) (*models.RotationAssignment, error)
	UpdateRotationAssignment(assignment *models.RotationAssignment) error
	DeleteRotationAssignment(id uuid.UUID) error
}

// PublicHolidayRepositoryInterface defines the interface for public holiday repository operations
type PublicHolidayRepositoryInterface interface {
	Create(holiday *models.PublicHoliday) error
	GetByID(id uuid.UUID) (*models.PublicHoliday, error)
	GetByDate(date time.Time) (*models.PublicHoliday, error)
	GetAll(limit, offset int) ([]models.PublicHoliday, int64, error)
	Update(holiday *models.PublicHoliday) error
	Delete(id uuid.UUID) error
}
