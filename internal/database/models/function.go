package models

// Function represents a role an agent can hold on a team position
type Function struct {
	BaseModel
	Designation string `json:"designation" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
	Status      bool   `json:"status" gorm:"not null;default:true"`
}

// TableName returns the table name for Function
func (Function) TableName() string {
	return "functions"
}
