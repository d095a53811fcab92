// Package migrations embeds the versioned postgres migrations. Entity tables
// come from gorm AutoMigrate; these files add what it cannot express.
package migrations

import "embed"

// FS holds the NNNNNN_name.{up,down}.sql files.
//
//go:embed *.sql
var FS embed.FS
