// Package expense exposes employee expense reports, their expenses and
// reimbursements.
package expense

import (
	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/shared"
)

// Module is the URL segment of the employee expenses API.
const Module = "employee-expenses"

const reportsTable = "employee_expense_reports"

var (
	Reports = resource.Definition{
		Module: Module, Path: "expense-reports", Name: "ExpenseReport",
		Filters:         []string{"status", "employee_name"},
		Search:          []string{"report_number", "employee_name"},
		DefaultOrdering: []string{"-report_period_start"},
		Unique:          []string{"report_number"},
	}

	Expenses = resource.Definition{
		Module: Module, Path: "expenses", Name: "Expense",
		Filters:         []string{"expense_report", "category", "payment_method"},
		Search:          []string{"description"},
		DefaultOrdering: []string{"-expense_date"},
		References:      []resource.Reference{resource.Ref("expense_report", reportsTable, shared.Cascade)},
	}

	Reimbursements = resource.Definition{
		Module: Module, Path: "reimbursements", Name: "Reimbursement",
		Filters:         []string{"status", "expense_report"},
		Search:          []string{"reimbursement_number"},
		DefaultOrdering: []string{"-payment_date"},
		Unique:          []string{"reimbursement_number"},
		References:      []resource.Reference{resource.Ref("expense_report", reportsTable, shared.Cascade)},
	}
)
