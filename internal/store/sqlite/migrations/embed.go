// Package migrations embeds the versioned SQLite schema files.
package migrations

import "embed"

// FS holds NNNN_name.sql files; NNNN is the schema version the file upgrades to.
//
//go:embed *.sql
var FS embed.FS
