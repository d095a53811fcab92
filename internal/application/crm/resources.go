// Package crm exposes leads, opportunities, contacts, contracts and
// campaigns.
package crm

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the CRM API.
const Module = "crm"

var (
	Leads = resource.Definition{
		Module: Module, Path: "leads", Name: "Lead",
		Filters:         []string{"status", "lead_source", "assigned_to"},
		Search:          []string{"lead_name", "company", "email"},
		DefaultOrdering: []string{"-created_date"},
	}

	Opportunities = resource.Definition{
		Module: Module, Path: "opportunities", Name: "Opportunity",
		Filters:         []string{"status"},
		Search:          []string{"opportunity_name", "customer_name"},
		Ordering:        []string{"opportunity_amount", "expected_close_date", "probability_percentage"},
		DefaultOrdering: []string{"-created_date"},
	}

	Contacts = resource.Definition{
		Module: Module, Path: "contacts", Name: "Contact",
		Filters:         []string{"company", "country"},
		Search:          []string{"first_name", "last_name", "email", "company"},
		DefaultOrdering: []string{"last_name", "first_name"},
	}

	Contracts = resource.Definition{
		Module: Module, Path: "contracts", Name: "Contract",
		Filters:         []string{"status"},
		Search:          []string{"contract_number", "contract_name", "customer_name"},
		DefaultOrdering: []string{"-start_date"},
		Unique:          []string{"contract_number"},
	}

	Campaigns = resource.Definition{
		Module: Module, Path: "campaigns", Name: "Campaign",
		Filters:         []string{"status", "campaign_type"},
		Search:          []string{"campaign_name"},
		DefaultOrdering: []string{"-start_date"},
	}
)
