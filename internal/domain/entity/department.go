package entity

import "time"

// Department groups employees and fixes their gross salary. The department
// code is the business identifier shown on payslips; it is unique across the
// company and enforced by the storage layer.
type Department struct {
	ID             int64     `json:"id"`
	DepartmentCode string    `json:"departmentCode"`
	DepartmentName string    `json:"departmentName"`
	GrossSalary    float64   `json:"grossSalary"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
