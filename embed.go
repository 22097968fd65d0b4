package embedded

import "embed"

//go:embed "migrations"
var RatingMigrations embed.FS
