// Package template is the pure mapping from a project specification to the
// text content of every generated file. All functions are deterministic and
// side-effect free; an unrecognized database value is a programming error and
// panics.
package template

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vuedapt/create-node/pkg/models"
)

// Context provides data for template rendering. All fields are exported for
// use with Go's text/template package.
type Context struct {
	Name        string // Project name as entered by the user.
	DisplayName string // Human-readable name used in README headings.
	Slug        string // Lowercase, hyphenated form of the name.
	Description string
	Version     string
	Author      string
	License     string

	Database       models.Database
	PackageManager models.PackageManager
}

var titleCaser = cases.Title(language.English)

// NewContext builds a rendering context from a project specification.
func NewContext(spec models.ProjectSpec) Context {
	slug := spec.Slug()

	// A name like "my-app" reads better as "My App" in the README heading;
	// a name that already carries spacing or casing is kept as entered.
	display := spec.Name
	if display == slug {
		display = titleCaser.String(strings.ReplaceAll(slug, "-", " "))
	}

	return Context{
		Name:           spec.Name,
		DisplayName:    display,
		Slug:           slug,
		Description:    spec.Description,
		Version:        spec.Version,
		Author:         spec.Author,
		License:        spec.License,
		Database:       spec.Database,
		PackageManager: spec.PackageManager,
	}
}

// HasDatabase reports whether a database was selected.
func (c Context) HasDatabase() bool {
	return c.Database != models.DatabaseNone
}
