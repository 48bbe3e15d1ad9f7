// Package assets embeds the bundled level definitions and SQL migrations.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed levels.yaml sql/*.sql
var FS embed.FS

// LevelsYAML returns the bundled level definitions.
func LevelsYAML() ([]byte, error) {
	return FS.ReadFile("levels.yaml")
}

// Migrations returns the SQL migration files rooted at "sql".
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
