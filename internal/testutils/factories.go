package testutils

import (
	"fmt"
	"time"

	"shift-planning-backend/internal/database/models"
	"shift-planning-backend/internal/scheduling"

	"github.com/google/uuid"
)

// AgentFactory provides methods to create test Agent data
type AgentFactory struct{}

// NewAgentFactory creates a new AgentFactory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{}
}

// Create creates a test Agent with default values
func (f *AgentFactory) Create() *models.Agent {
	id := uuid.New()
	// Badge numbers must be unique; derive digits from the UUID
	matricule := fmt.Sprintf("T%04d", id.ID()%10000)

	return &models.Agent{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Matricule:       matricule,
		FirstName:       "Jean",
		LastName:        "Dupont",
		Grade:           models.GradeAgent,
		PermissionLevel: models.PermissionViewer,
	}
}

// WithMatricule sets a custom badge number for the agent
func (f *AgentFactory) WithMatricule(matricule string) *models.Agent {
	agent := f.Create()
	agent.Matricule = matricule
	return agent
}

// WithGrade sets a custom grade for the agent
func (f *AgentFactory) WithGrade(grade models.Grade) *models.Agent {
	agent := f.Create()
	agent.Grade = grade
	return agent
}

// FunctionFactory provides methods to create test Function data
type FunctionFactory struct{}

// NewFunctionFactory creates a new FunctionFactory
func NewFunctionFactory() *FunctionFactory {
	return &FunctionFactory{}
}

// Create creates a test Function with default values
func (f *FunctionFactory) Create() *models.Function {
	id := uuid.New()
	return &models.Function{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Designation: "Operator " + id.String()[:8],
		Description: "A test function",
		Status:      true,
	}
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Designation: "Department " + id.String()[:8],
		Description: "A test department",
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team attached to the given department
func (f *TeamFactory) Create(departmentID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DepartmentID: departmentID,
		Designation:  "Team " + id.String()[:8],
	}
}

// CreatePosition creates a test TeamPosition on the given team and function
func (f *TeamFactory) CreatePosition(teamID, functionID uuid.UUID) *models.TeamPosition {
	id := uuid.New()
	return &models.TeamPosition{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:     teamID,
		FunctionID: functionID,
		Label:      "Position " + id.String()[:8],
	}
}

// ScheduleTypeFactory provides methods to create test ScheduleType data
type ScheduleTypeFactory struct{}

// NewScheduleTypeFactory creates a new ScheduleTypeFactory
func NewScheduleTypeFactory() *ScheduleTypeFactory {
	return &ScheduleTypeFactory{}
}

// Create creates a test ScheduleType with default values
func (f *ScheduleTypeFactory) Create() *models.ScheduleType {
	id := uuid.New()
	return &models.ScheduleType{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Designation:      "Type " + id.String()[:8],
		ShortDesignation: "TST",
		Color:            "#3366FF",
	}
}

// RotationPlanFactory provides methods to create test rotation plan data
type RotationPlanFactory struct{}

// NewRotationPlanFactory creates a new RotationPlanFactory
func NewRotationPlanFactory() *RotationPlanFactory {
	return &RotationPlanFactory{}
}

// Create creates a test DailyRotationPlan tied to the given schedule type
func (f *RotationPlanFactory) Create(scheduleTypeID uuid.UUID) *models.DailyRotationPlan {
	id := uuid.New()
	return &models.DailyRotationPlan{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Designation:    "Plan " + id.String()[:8],
		ScheduleTypeID: scheduleTypeID,
	}
}

// CreatePeriod creates a test RotationPeriod under the given plan, covering
// the given dates with a standard 08:00-16:00 day window
func (f *RotationPlanFactory) CreatePeriod(planID uuid.UUID, start, end time.Time) *models.RotationPeriod {
	return &models.RotationPeriod{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DailyRotationPlanID: planID,
		StartDate:           start,
		EndDate:             end,
		StartTime:           scheduling.MustTimeOfDay("08:00"),
		EndTime:             scheduling.MustTimeOfDay("16:00"),
	}
}

// ShiftScheduleFactory provides methods to create test shift schedule data
type ShiftScheduleFactory struct{}

// NewShiftScheduleFactory creates a new ShiftScheduleFactory
func NewShiftScheduleFactory() *ShiftScheduleFactory {
	return &ShiftScheduleFactory{}
}

// Create creates a test ShiftSchedule with default values
func (f *ShiftScheduleFactory) Create() *models.ShiftSchedule {
	id := uuid.New()
	return &models.ShiftSchedule{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Schedule " + id.String()[:8],
		Kind:       models.ScheduleKindShift,
		BreakTimes: 2,
	}
}

// CreatePeriod creates a test ShiftSchedulePeriod under the given schedule
func (f *ShiftScheduleFactory) CreatePeriod(scheduleID uuid.UUID, start, end time.Time) *models.ShiftSchedulePeriod {
	return &models.ShiftSchedulePeriod{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShiftScheduleID: scheduleID,
		StartDate:       start,
		EndDate:         end,
	}
}

// CreateWeek creates a test ShiftScheduleWeek with the given number
func (f *ShiftScheduleFactory) CreateWeek(periodID uuid.UUID, number int) *models.ShiftScheduleWeek {
	return &models.ShiftScheduleWeek{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PeriodID:   periodID,
		WeekNumber: number,
	}
}

// Day returns a UTC midnight date, convenient for date-typed columns
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
