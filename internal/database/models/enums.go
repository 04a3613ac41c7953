package models

// Grade defines the contractual grade of an agent
type Grade string

const (
	GradeAgent    Grade = "agent"
	GradeMaitrise Grade = "maitrise"
	GradeCadre    Grade = "cadre"
)

// IsValid checks if the Grade is valid
func (g Grade) IsValid() bool {
	switch g {
	case GradeAgent, GradeMaitrise, GradeCadre:
		return true
	}
	return false
}

// PermissionLevel is an ordered capability set; higher levels include lower ones
type PermissionLevel int

const (
	PermissionViewer PermissionLevel = iota
	PermissionEditor
	PermissionAdmin
	PermissionSuperAdmin
)

// IsValid checks if the PermissionLevel is valid
func (p PermissionLevel) IsValid() bool {
	return p >= PermissionViewer && p <= PermissionSuperAdmin
}

// AtLeast reports whether the level grants the capabilities of the given level
func (p PermissionLevel) AtLeast(other PermissionLevel) bool {
	return p >= other
}

func (p PermissionLevel) String() string {
	switch p {
	case PermissionViewer:
		return "viewer"
	case PermissionEditor:
		return "editor"
	case PermissionAdmin:
		return "admin"
	case PermissionSuperAdmin:
		return "super_admin"
	}
	return "unknown"
}

// ScheduleKind defines whether a shift schedule covers day work or posted shifts
type ScheduleKind string

const (
	ScheduleKindDay   ScheduleKind = "day"
	ScheduleKindShift ScheduleKind = "shift"
)

// IsValid checks if the ScheduleKind is valid
func (k ScheduleKind) IsValid() bool {
	switch k {
	case ScheduleKindDay, ScheduleKindShift:
		return true
	}
	return false
}

// Weekday is an ISO weekday, 1=Monday through 7=Sunday
type Weekday int

const (
	WeekdayMonday Weekday = iota + 1
	WeekdayTuesday
	WeekdayWednesday
	WeekdayThursday
	WeekdayFriday
	WeekdaySaturday
	WeekdaySunday
)

// IsValid checks if the Weekday is valid
func (w Weekday) IsValid() bool {
	return w >= WeekdayMonday && w <= WeekdaySunday
}
