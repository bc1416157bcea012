// Package migrations embeds the SQL schema. The seeder applies it before
// populating demonstration data; the server assumes the tables exist.
package migrations

import _ "embed"

//go:embed schema.sql
var Schema string
