package model

import "time"

// SalaryModel mirrors the 'salaries' table. EmployeeID references employees.id.
type SalaryModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	TotalDeduction float64 `gorm:"not null"`
	NetSalary      float64 `gorm:"not null"`
	Month          string  `gorm:"type:varchar(20);not null;index"`
	EmployeeID     int64   `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Employee *EmployeeModel `gorm:"foreignKey:EmployeeID"`
}

// TableName explicitly sets the table name for GORM.
func (SalaryModel) TableName() string {
	return "salaries"
}
