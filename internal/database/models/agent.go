package models

import (
	"time"
)

// Agent represents a workforce member identified by a badge number (matricule)
type Agent struct {
	BaseModel
	Matricule       string          `json:"matricule" gorm:"size:5;not null;uniqueIndex" validate:"required,len=5"`
	FirstName       string          `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName        string          `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Grade           Grade           `json:"grade" gorm:"type:varchar(10);not null" validate:"required"`
	PermissionLevel PermissionLevel `json:"permission_level" gorm:"not null;default:0"`
	HireDate        *time.Time      `json:"hire_date,omitempty" gorm:"type:date"`
	DepartureDate   *time.Time      `json:"departure_date,omitempty" gorm:"type:date"`
}

// TableName returns the table name for Agent
func (Agent) TableName() string {
	return "agents"
}

// FullName returns the agent's display name
func (a *Agent) FullName() string {
	return a.FirstName + " " + a.LastName
}
