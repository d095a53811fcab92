// Package cashmanagement exposes treasury accounts and payment schedules.
package cashmanagement

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the cash management API.
const Module = "cash-management"

var (
	TreasuryAccounts = resource.Definition{
		Module: Module, Path: "treasury-accounts", Name: "TreasuryAccount",
		Filters:         []string{"account_type", "currency", "is_active"},
		Search:          []string{"account_code", "account_name"},
		DefaultOrdering: []string{"account_code"},
		Unique:          []string{"account_code"},
	}

	PaymentSchedules = resource.Definition{
		Module: Module, Path: "payment-schedules", Name: "PaymentSchedule",
		Filters:         []string{"status"},
		Search:          []string{"description"},
		Ordering:        []string{"scheduled_date", "scheduled_amount"},
		DefaultOrdering: []string{"scheduled_date"},
	}
)
