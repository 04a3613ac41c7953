package models

import (
	"github.com/google/uuid"
)

// Team represents a working team inside a department
type Team struct {
	BaseModel
	DepartmentID uuid.UUID `json:"department_id" gorm:"type:uuid;not null;index" validate:"required"`
	Designation  string    `json:"designation" gorm:"size:100;not null" validate:"required,max=100"`
	Description  string    `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Department Department     `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Positions  []TeamPosition `json:"positions,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamPosition is a named slot within a team, tied to a function. It can hold
// a time-bounded agent assignment and a time-bounded rotation assignment.
type TeamPosition struct {
	BaseModel
	TeamID     uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	FunctionID uuid.UUID `json:"function_id" gorm:"type:uuid;not null;index" validate:"required"`
	Label      string    `json:"label" gorm:"size:100;not null" validate:"required,max=100"`

	// Relationships
	Team                Team                 `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Function            Function             `json:"function,omitempty" gorm:"foreignKey:FunctionID"`
	AgentAssignments    []AgentAssignment    `json:"agent_assignments,omitempty" gorm:"foreignKey:TeamPositionID"`
	RotationAssignments []RotationAssignment `json:"rotation_assignments,omitempty" gorm:"foreignKey:TeamPositionID"`
}

// TableName returns the table name for TeamPosition
func (TeamPosition) TableName() string {
	return "team_positions"
}
