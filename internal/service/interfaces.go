package service

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AgentServiceInterface defines the contract for agent operations
type AgentServiceInterface interface {
	Create(req *CreateAgentRequest) (*AgentResponse, error)
	GetByID(id uuid.UUID) (*AgentResponse, error)
	GetByMatricule(matricule string) (*AgentResponse, error)
	GetAll(page, pageSize int) (*AgentListResponse, error)
	Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error)
	Delete(id uuid.UUID) error
}

// FunctionServiceInterface defines the contract for function operations
type FunctionServiceInterface interface {
	Create(req *CreateFunctionRequest) (*FunctionResponse, error)
	GetByID(id uuid.UUID) (*FunctionResponse, error)
	GetAll(page, pageSize int) (*FunctionListResponse, error)
	Update(id uuid.UUID, req *UpdateFunctionRequest) (*FunctionResponse, error)
	Delete(id uuid.UUID) error
}

// ScheduleTypeServiceInterface defines the contract for schedule type operations
type ScheduleTypeServiceInterface interface {
	Create(req *CreateScheduleTypeRequest) (*ScheduleTypeResponse, error)
	GetByID(id uuid.UUID) (*ScheduleTypeResponse, error)
	GetAll(page, pageSize int) (*ScheduleTypeListResponse, error)
	Update(id uuid.UUID, req *UpdateScheduleTypeRequest) (*ScheduleTypeResponse, error)
	Delete(id uuid.UUID) error
}

// RotationPlanServiceInterface defines the contract for daily rotation plan operations
type RotationPlanServiceInterface interface {
	Create(req *CreateRotationPlanRequest) (*RotationPlanResponse, error)
	GetByID(id uuid.UUID) (*RotationPlanResponse, error)
	GetAll(page, pageSize int) (*RotationPlanListResponse, error)
	Update(id uuid.UUID, req *UpdateRotationPlanRequest) (*RotationPlanResponse, error)
	Delete(id uuid.UUID) error
	HasPeriods(id uuid.UUID) (bool, error)
	CreatePeriod(planID uuid.UUID, req *SaveRotationPeriodRequest) (*RotationPeriodResponse, error)
	UpdatePeriod(id uuid.UUID, req *SaveRotationPeriodRequest) (*RotationPeriodResponse, error)
	DeletePeriod(id uuid.UUID) error
}

// ShiftScheduleServiceInterface defines the contract for the shift schedule hierarchy
type ShiftScheduleServiceInterface interface {
	Create(req *CreateShiftScheduleRequest) (*ShiftScheduleResponse, error)
	GetByID(id uuid.UUID) (*ShiftScheduleResponse, error)
	GetAll(page, pageSize int) (*ShiftScheduleListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftScheduleRequest) (*ShiftScheduleResponse, error)
	Delete(id uuid.UUID) error
	CreatePeriod(scheduleID uuid.UUID, req *SaveSchedulePeriodRequest) (*SchedulePeriodResponse, error)
	UpdatePeriod(id uuid.UUID, req *SaveSchedulePeriodRequest) (*SchedulePeriodResponse, error)
	DeletePeriod(id uuid.UUID) error
	DuplicatePeriod(id uuid.UUID, req *SaveSchedulePeriodRequest) (*SchedulePeriodResponse, error)
	CreateWeek(periodID uuid.UUID) (*ScheduleWeekResponse, error)
	GetWeek(id uuid.UUID) (*ScheduleWeekResponse, error)
	GetWeeks(periodID uuid.UUID) ([]ScheduleWeekResponse, error)
	DeleteWeek(id uuid.UUID) error
	DuplicateWeek(id uuid.UUID) (*ScheduleWeekResponse, error)
	AssignDailyPlan(weekID uuid.UUID, req *AssignDailyPlanRequest) (*DailyPlanResponse, error)
}

// TeamServiceInterface defines the contract for department, team and position operations
type TeamServiceInterface interface {
	CreateDepartment(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetDepartment(id uuid.UUID) (*DepartmentResponse, error)
	GetDepartments(page, pageSize int) (*DepartmentListResponse, error)
	UpdateDepartment(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(id uuid.UUID) error
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(id uuid.UUID) (*TeamResponse, error)
	GetTeamsByDepartment(departmentID uuid.UUID, page, pageSize int) (*TeamListResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) error
	CreatePosition(teamID uuid.UUID, req *CreateTeamPositionRequest) (*TeamPositionResponse, error)
	GetPositions(teamID uuid.UUID) ([]TeamPositionResponse, error)
	UpdatePosition(id uuid.UUID, req *UpdateTeamPositionRequest) (*TeamPositionResponse, error)
	DeletePosition(id uuid.UUID) error
}

// AssignmentServiceInterface defines the contract for agent and rotation assignments
type AssignmentServiceInterface interface {
	CreateAgentAssignment(positionID uuid.UUID, req *SaveAgentAssignmentRequest) (*AgentAssignmentResponse, error)
	UpdateAgentAssignment(id uuid.UUID, req *SaveAgentAssignmentRequest) (*AgentAssignmentResponse, error)
	DeleteAgentAssignment(id uuid.UUID) error
	GetAgentAssignments(positionID uuid.UUID) ([]AgentAssignmentResponse, error)
	GetCurrentAgentAssignment(positionID uuid.UUID, today time.Time) (*AgentAssignmentResponse, error)
	CreateRotationAssignment(positionID uuid.UUID, req *SaveRotationAssignmentRequest) (*RotationAssignmentResponse, error)
	UpdateRotationAssignment(id uuid.UUID, req *SaveRotationAssignmentRequest) (*RotationAssignmentResponse, error)
	DeleteRotationAssignment(id uuid.UUID) error
	GetRotationAssignments(positionID uuid.UUID) ([]RotationAssignmentResponse, error)
	GetCurrentRotationAssignment(positionID uuid.UUID, today time.Time) (*RotationAssignmentResponse, error)
}

// PublicHolidayServiceInterface defines the contract for public holiday operations
type PublicHolidayServiceInterface interface {
	Create(req *SavePublicHolidayRequest) (*PublicHolidayResponse, error)
	GetByID(id uuid.UUID) (*PublicHolidayResponse, error)
	GetAll(page, pageSize int) (*PublicHolidayListResponse, error)
	Update(id uuid.UUID, req *SavePublicHolidayRequest) (*PublicHolidayResponse, error)
	Delete(id uuid.UUID) error
}
