// Package migrations embeds the schema and seed files so the binary can
// apply them at startup regardless of the working directory.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
