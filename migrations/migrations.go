// Package migrations содержит goose-миграции схемы БД
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
