package models

import (
	"time"
)

// PublicHoliday marks a calendar date as a holiday. A date can only be used
// by one holiday.
type PublicHoliday struct {
	BaseModel
	Designation string    `json:"designation" gorm:"size:100;not null" validate:"required,max=100"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex" validate:"required"`
}

// TableName returns the table name for PublicHoliday
func (PublicHoliday) TableName() string {
	return "public_holidays"
}
