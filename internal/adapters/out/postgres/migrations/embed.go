// Package migrations contains the embedded goose migrations of the registry schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
