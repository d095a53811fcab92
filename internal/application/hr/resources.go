// Package hr exposes employees, attendance and leave requests.
package hr

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the HR API.
const Module = "hr"

const employeesTable = "hr_employee"

var (
	Employees = resource.Definition{
		Module: Module, Path: "employees", Name: "Employee",
		Filters:         []string{"department", "is_active"},
		Search:          []string{"first_name", "last_name", "employee_id", "email"},
		DefaultOrdering: []string{"first_name"},
		Unique:          []string{"employee_id", "user", "email"},
		References:      []resource.Reference{resource.Ref("user", "authentication_user", shared.Cascade)},
	}

	Attendance = resource.Definition{
		Module: Module, Path: "attendance", Name: "Attendance",
		Filters:         []string{"employee", "status", "date"},
		DefaultOrdering: []string{"-date"},
		UniqueTogether:  [][]string{{"employee", "date"}},
		References:      []resource.Reference{resource.Ref("employee", employeesTable, shared.Cascade)},
	}

	Leaves = resource.Definition{
		Module: Module, Path: "leaves", Name: "Leave",
		Filters:         []string{"employee", "leave_type", "status"},
		DefaultOrdering: []string{"-start_date"},
		References: []resource.Reference{
			resource.Ref("employee", employeesTable, shared.Cascade),
			resource.Ref("approved_by", employeesTable, shared.SetNull),
		},
	}
)
