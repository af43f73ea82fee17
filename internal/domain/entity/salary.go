package entity

import "time"

// Salary records one employee's pay for one month. Net salary is stored as
// provided by the payroll officer; the system does not recompute it from the
// department's gross salary.
type Salary struct {
	ID             int64     `json:"id"`
	TotalDeduction float64   `json:"totalDeduction"`
	NetSalary      float64   `json:"netSalary"`
	Month          string    `json:"month"` // e.g. "2026-02"
	EmployeeID     int64     `json:"employeeId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Joined employee and department fields, populated by list queries only.
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Position       string `json:"position,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}

// PayrollEntry is one row of the monthly payroll report. It is assembled by a
// join query and never persisted.
type PayrollEntry struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Position       string  `json:"position"`
	DepartmentName string  `json:"departmentName"`
	NetSalary      float64 `json:"netSalary"`
	Month          string  `json:"month"`
}
