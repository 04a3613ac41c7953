package models

// Department groups teams under one organizational unit
type Department struct {
	BaseModel
	Designation string `json:"designation" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
