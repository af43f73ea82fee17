package model

import "time"

// EmployeeModel mirrors the 'employees' table. DepartmentID references departments.id.
type EmployeeModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	EmployeeNumber string `gorm:"type:varchar(50);uniqueIndex;not null"`
	FirstName      string `gorm:"type:varchar(100);not null"`
	LastName       string `gorm:"type:varchar(100);not null"`
	Position       string `gorm:"type:varchar(100);not null"`
	Address        string `gorm:"type:varchar(255);not null"`
	Telephone      string `gorm:"type:varchar(50);not null"`
	DepartmentID   int64  `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Department *DepartmentModel `gorm:"foreignKey:DepartmentID"`
	Salaries   []SalaryModel    `gorm:"foreignKey:EmployeeID"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
