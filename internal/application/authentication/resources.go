// Package authentication exposes user and group records. It manages the
// records only; sessions and tokens are out of scope.
package authentication

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the authentication API.
const Module = "authentication"

var (
	Groups = resource.Definition{
		Module: Module, Path: "groups", Name: "Group",
		Filters:         []string{"is_active"},
		Search:          []string{"name"},
		DefaultOrdering: []string{"name"},
		Unique:          []string{"name"},
	}

	Users = resource.Definition{
		Module: Module, Path: "users", Name: "User",
		Filters:         []string{"status", "is_staff", "is_superuser"},
		Search:          []string{"username", "email", "first_name", "last_name"},
		Ordering:        []string{"username", "date_joined", "last_login"},
		DefaultOrdering: []string{"username"},
		Unique:          []string{"username", "email"},
		ReadOnly:        []string{"last_login"},
	}
)
