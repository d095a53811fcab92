// Package project exposes projects, their tasks and time entries.
package project

import "github.com/erp/erpapi/internal/application/resource"

// Module is the URL segment of the project management API.
const Module = "project-management"

var (
	Projects = resource.Definition{
		Module: Module, Path: "projects", Name: "Project",
		Filters:         []string{"status", "project_manager"},
		Search:          []string{"project_code", "project_name"},
		DefaultOrdering: []string{"-start_date"},
		Unique:          []string{"project_code"},
	}

	Tasks = resource.Definition{
		Module: Module, Path: "tasks", Name: "Task",
		Filters:         []string{"status", "priority", "project_name", "assigned_to"},
		Search:          []string{"task_number", "task_name"},
		Ordering:        []string{"due_date", "priority", "completion_percentage"},
		DefaultOrdering: []string{"due_date"},
		Unique:          []string{"task_number"},
	}

	TimeEntries = resource.Definition{
		Module: Module, Path: "time-entries", Name: "TimeEntry",
		Filters:         []string{"task_number", "employee_name", "entry_date"},
		Search:          []string{"employee_name", "description"},
		DefaultOrdering: []string{"-entry_date"},
	}
)
