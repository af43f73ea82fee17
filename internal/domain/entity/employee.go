package entity

import "time"

// Employee is a person on the payroll. The employee number is the unique
// business identifier; DepartmentID links the employee to the department
// that defines their gross salary.
type Employee struct {
	ID             int64     `json:"id"`
	EmployeeNumber string    `json:"employeeNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Position       string    `json:"position"`
	Address        string    `json:"address"`
	Telephone      string    `json:"telephone"`
	DepartmentID   int64     `json:"departmentId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Joined department fields, populated by list/get queries only.
	DepartmentName string  `json:"departmentName,omitempty"`
	GrossSalary    float64 `json:"grossSalary,omitempty"`
}
