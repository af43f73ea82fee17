package model

import "time"

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	DepartmentCode string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	DepartmentName string  `gorm:"type:varchar(100);not null"`
	GrossSalary    float64 `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Employees []EmployeeModel `gorm:"foreignKey:DepartmentID"`
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}
