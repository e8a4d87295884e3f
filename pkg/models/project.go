// Package models defines the project specification record and the
// enumerations collected from the user before generation.
package models

import (
	"fmt"
	"strings"
)

// Database identifies the database integration baked into a generated project.
type Database string

const (
	// DatabaseNone generates a project without any database wiring.
	DatabaseNone Database = "none"
	// DatabaseMongoDB generates Mongoose-based database wiring.
	DatabaseMongoDB Database = "mongodb"
	// DatabasePostgreSQL generates node-postgres (pg) database wiring.
	DatabasePostgreSQL Database = "postgresql"
	// DatabaseMySQL generates mysql2-based database wiring.
	DatabaseMySQL Database = "mysql"
	// DatabaseSQLite generates sqlite3-based database wiring.
	DatabaseSQLite Database = "sqlite"
)

// ValidDatabases returns all valid database values in prompt order.
func ValidDatabases() []Database {
	return []Database{DatabaseNone, DatabaseMongoDB, DatabasePostgreSQL, DatabaseMySQL, DatabaseSQLite}
}

// IsValid checks if the database is a valid value.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseNone, DatabaseMongoDB, DatabasePostgreSQL, DatabaseMySQL, DatabaseSQLite:
		return true
	}
	return false
}

// String returns the database value as a plain string.
func (d Database) String() string {
	return string(d)
}

// PackageManager identifies the Node package manager used for dependency
// installation and for the commands shown in the next-steps summary.
type PackageManager string

const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPnpm PackageManager = "pnpm"
)

// ValidPackageManagers returns all valid package manager values in prompt order.
func ValidPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNpm, PackageManagerYarn, PackageManagerPnpm}
}

// IsValid checks if the package manager is a valid value.
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerNpm, PackageManagerYarn, PackageManagerPnpm:
		return true
	}
	return false
}

// String returns the package manager value as a plain string.
func (p PackageManager) String() string {
	return string(p)
}

// InstallArgs returns the argv used to install dependencies.
func (p PackageManager) InstallArgs() []string {
	if p == PackageManagerYarn {
		return []string{"yarn"}
	}
	return []string{p.String(), "install"}
}

// InstallCommandLine returns the install command as shown to the user.
func (p PackageManager) InstallCommandLine() string {
	return strings.Join(p.InstallArgs(), " ")
}

// RunCommandLine returns the command line that runs a package.json script.
func (p PackageManager) RunCommandLine(script string) string {
	switch p {
	case PackageManagerYarn:
		return "yarn " + script
	case PackageManagerPnpm:
		return "pnpm run " + script
	default:
		if script == "start" {
			return "npm start"
		}
		return "npm run " + script
	}
}

// ProjectSpec is the in-memory record of all user-supplied scaffolding
// choices. It is created once from prompts or flags, read by every template
// function, and discarded after the generation run.
type ProjectSpec struct {
	Name           string
	Description    string
	Version        string
	Author         string
	License        string
	Database       Database
	PackageManager PackageManager
	InstallDeps    bool
}

// Validate checks the spec for values that must never reach generation.
func (s ProjectSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !s.Database.IsValid() {
		return fmt.Errorf("invalid database %q: must be one of: none, mongodb, postgresql, mysql, sqlite", s.Database)
	}
	if !s.PackageManager.IsValid() {
		return fmt.Errorf("invalid package manager %q: must be one of: npm, yarn, pnpm", s.PackageManager)
	}
	return nil
}

// Slug returns the slug form of the project name.
func (s ProjectSpec) Slug() string {
	return Slugify(s.Name)
}

// Slugify lowercases a name and collapses whitespace runs to single hyphens.
// "My App" becomes "my-app". The slug is used for the generated package name,
// the created directory, and default connection strings.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
