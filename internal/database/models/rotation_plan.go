package models

import (
	"time"

	"github.com/google/uuid"

	"shift-planning-backend/internal/scheduling"
)

// DailyRotationPlan is a named, reusable daily work rhythm. Its hours over
// calendar time are described by the rotation periods it owns; a plan with no
// periods is not assignable.
type DailyRotationPlan struct {
	BaseModel
	Designation    string    `json:"designation" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Description    string    `json:"description" gorm:"size:500" validate:"max=500"`
	ScheduleTypeID uuid.UUID `json:"schedule_type_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	ScheduleType ScheduleType     `json:"schedule_type,omitempty" gorm:"foreignKey:ScheduleTypeID"`
	Periods      []RotationPeriod `json:"periods,omitempty" gorm:"foreignKey:DailyRotationPlanID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DailyRotationPlan
func (DailyRotationPlan) TableName() string {
	return "daily_rotation_plans"
}

// HasPeriods reports whether the plan owns at least one rotation period.
// Only meaningful when Periods has been preloaded.
func (p *DailyRotationPlan) HasPeriods() bool {
	return len(p.Periods) > 0
}

// RotationPeriod states when a plan's daily rhythm applies and what clock
// times it covers on each of those days.
type RotationPeriod struct {
	BaseModel
	DailyRotationPlanID uuid.UUID            `json:"daily_rotation_plan_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate           time.Time            `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate             time.Time            `json:"end_date" gorm:"type:date;not null" validate:"required"`
	StartTime           scheduling.TimeOfDay `json:"start_time" gorm:"type:time;not null"`
	EndTime             scheduling.TimeOfDay `json:"end_time" gorm:"type:time;not null"`

	// Relationships
	DailyRotationPlan DailyRotationPlan `json:"daily_rotation_plan,omitempty" gorm:"foreignKey:DailyRotationPlanID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RotationPeriod
func (RotationPeriod) TableName() string {
	return "rotation_periods"
}

// Range returns the period's date bounds as a scheduling.DateRange
func (p *RotationPeriod) Range() scheduling.DateRange {
	return scheduling.DateRange{Start: p.StartDate, End: p.EndDate}
}

// Window returns the period's clock-time bounds as a scheduling.TimeWindow
func (p *RotationPeriod) Window() scheduling.TimeWindow {
	return scheduling.TimeWindow{Start: p.StartTime, End: p.EndTime}
}

// IsActive reports whether the period has not yet expired relative to today
func (p *RotationPeriod) IsActive(today time.Time) bool {
	return p.Range().IsActive(today)
}

// DurationHours returns the elapsed daily working time in fractional hours
func (p *RotationPeriod) DurationHours() float64 {
	return p.Window().DurationHours()
}

// IsNightShift reports whether the period's hours wrap past midnight
func (p *RotationPeriod) IsNightShift() bool {
	return p.Window().IsNightShift()
}
