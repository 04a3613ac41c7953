package models

import (
	"time"

	"github.com/google/uuid"

	"shift-planning-backend/internal/scheduling"
)

// ShiftSchedule is a named weekly-repeating roster composed of periods, each
// subdivided into numbered weeks assigning one daily rotation plan per weekday.
type ShiftSchedule struct {
	BaseModel
	Name       string       `json:"name" gorm:"size:200;not null;uniqueIndex" validate:"required,max=200"`
	Kind       ScheduleKind `json:"kind" gorm:"type:varchar(10);not null;default:'day'" validate:"required"`
	BreakTimes int          `json:"break_times" gorm:"not null;default:2" validate:"min=0,max=10"`

	// Relationships
	Periods []ShiftSchedulePeriod `json:"periods,omitempty" gorm:"foreignKey:ShiftScheduleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftSchedule
func (ShiftSchedule) TableName() string {
	return "shift_schedules"
}

// ShiftSchedulePeriod is a date range during which a schedule's weekly rhythm
// applies. Periods of the same schedule must not overlap.
type ShiftSchedulePeriod struct {
	BaseModel
	ShiftScheduleID uuid.UUID `json:"shift_schedule_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate       time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate         time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`

	// Relationships
	ShiftSchedule ShiftSchedule       `json:"shift_schedule,omitempty" gorm:"foreignKey:ShiftScheduleID;constraint:OnDelete:CASCADE"`
	Weeks         []ShiftScheduleWeek `json:"weeks,omitempty" gorm:"foreignKey:PeriodID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftSchedulePeriod
func (ShiftSchedulePeriod) TableName() string {
	return "shift_schedule_periods"
}

// Range returns the period's date bounds as a scheduling.DateRange
func (p *ShiftSchedulePeriod) Range() scheduling.DateRange {
	return scheduling.DateRange{Start: p.StartDate, End: p.EndDate}
}

// IsActive reports whether the period has not yet expired relative to today
func (p *ShiftSchedulePeriod) IsActive(today time.Time) bool {
	return p.Range().IsActive(today)
}

// ShiftScheduleWeek is one week of a period's repeating cycle. Week numbers
// within a period are a dense 1..N sequence with no gaps.
type ShiftScheduleWeek struct {
	BaseModel
	PeriodID   uuid.UUID `json:"period_id" gorm:"type:uuid;not null;index:idx_week_period_number,unique" validate:"required"`
	WeekNumber int       `json:"week_number" gorm:"not null;index:idx_week_period_number,unique" validate:"required,min=1"`

	// Relationships
	Period     ShiftSchedulePeriod      `json:"period,omitempty" gorm:"foreignKey:PeriodID;constraint:OnDelete:CASCADE"`
	DailyPlans []ShiftScheduleDailyPlan `json:"daily_plans,omitempty" gorm:"foreignKey:WeekID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftScheduleWeek
func (ShiftScheduleWeek) TableName() string {
	return "shift_schedule_weeks"
}

// ShiftScheduleDailyPlan assigns one daily rotation plan to one weekday of a
// week. The referenced plan must own at least one rotation period.
type ShiftScheduleDailyPlan struct {
	BaseModel
	WeekID              uuid.UUID `json:"week_id" gorm:"type:uuid;not null;index:idx_daily_plan_week_weekday,unique" validate:"required"`
	Weekday             Weekday   `json:"weekday" gorm:"not null;index:idx_daily_plan_week_weekday,unique" validate:"required,min=1,max=7"`
	DailyRotationPlanID uuid.UUID `json:"daily_rotation_plan_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Week              ShiftScheduleWeek `json:"week,omitempty" gorm:"foreignKey:WeekID;constraint:OnDelete:CASCADE"`
	DailyRotationPlan DailyRotationPlan `json:"daily_rotation_plan,omitempty" gorm:"foreignKey:DailyRotationPlanID"`
}

// TableName returns the table name for ShiftScheduleDailyPlan
func (ShiftScheduleDailyPlan) TableName() string {
	return "shift_schedule_daily_plans"
}
