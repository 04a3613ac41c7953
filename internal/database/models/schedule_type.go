package models

// ScheduleType labels a daily work rhythm (e.g. morning, afternoon, night)
// with a short code and a display color. Deletion is blocked while any daily
// rotation plan references it.
type ScheduleType struct {
	BaseModel
	Designation      string `json:"designation" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	ShortDesignation string `json:"short_designation" gorm:"size:3" validate:"max=3"`
	Color            string `json:"color" gorm:"size:7" validate:"omitempty,hexcolor"`
}

// TableName returns the table name for ScheduleType
func (ScheduleType) TableName() string {
	return "schedule_types"
}
