package models

import (
	"time"

	"github.com/google/uuid"

	"shift-planning-backend/internal/scheduling"
)

// AgentAssignment places an agent on a team position for a date range.
// Assignments of the same position must not overlap.
type AgentAssignment struct {
	BaseModel
	TeamPositionID uuid.UUID `json:"team_position_id" gorm:"type:uuid;not null;index" validate:"required"`
	AgentID        uuid.UUID `json:"agent_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate      time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate        time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`

	// Relationships
	TeamPosition TeamPosition `json:"team_position,omitempty" gorm:"foreignKey:TeamPositionID;constraint:OnDelete:CASCADE"`
	Agent        Agent        `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
}

// TableName returns the table name for AgentAssignment
func (AgentAssignment) TableName() string {
	return "agent_assignments"
}

// Range returns the assignment's date bounds as a scheduling.DateRange
func (a *AgentAssignment) Range() scheduling.DateRange {
	return scheduling.DateRange{Start: a.StartDate, End: a.EndDate}
}

// RotationAssignment places a daily rotation plan on a team position for a
// date range. Assignments of the same position must not overlap.
type RotationAssignment struct {
	BaseModel
	TeamPositionID      uuid.UUID `json:"team_position_id" gorm:"type:uuid;not null;index" validate:"required"`
	DailyRotationPlanID uuid.UUID `json:"daily_rotation_plan_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate           time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate             time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`

	// Relationships
	TeamPosition      TeamPosition      `json:"team_position,omitempty" gorm:"foreignKey:TeamPositionID;constraint:OnDelete:CASCADE"`
	DailyRotationPlan DailyRotationPlan `json:"daily_rotation_plan,omitempty" gorm:"foreignKey:DailyRotationPlanID"`
}

// TableName returns the table name for RotationAssignment
func (RotationAssignment) TableName() string {
	return "rotation_assignments"
}

// Range returns the assignment's date bounds as a scheduling.DateRange
func (a *RotationAssignment) Range() scheduling.DateRange {
	return scheduling.DateRange{Start: a.StartDate, End: a.EndDate}
}
