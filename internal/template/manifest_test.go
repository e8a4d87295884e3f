package template

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vuedapt/create-node/pkg/models"
)

// packageManifest mirrors the shape of the generated package.json.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	License         string            `json:"license"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func TestPackageJSON_ValidJSONAndSlugName(t *testing.T) {
	for _, db := range models.ValidDatabases() {
		t.Run(string(db), func(t *testing.T) {
			content := PackageJSON(NewContext(testSpec(db)))

			var m packageManifest
			if err := json.Unmarshal([]byte(content), &m); err != nil {
				t.Fatalf("package.json is not valid JSON: %v\n%s", err, content)
			}

			if m.Name != "my-app" {
				t.Errorf("name = %q, want %q", m.Name, "my-app")
			}
			if m.Version != "1.0.0" {
				t.Errorf("version = %q, want %q", m.Version, "1.0.0")
			}
			if m.License != "MIT" {
				t.Errorf("license = %q, want %q", m.License, "MIT")
			}
		})
	}
}

func TestPackageJSON_DatabaseDriver(t *testing.T) {
	tests := []struct {
		db     models.Database
		driver string
	}{
		{models.DatabaseMongoDB, "mongoose"},
		{models.DatabasePostgreSQL, "pg"},
		{models.DatabaseMySQL, "mysql2"},
		{models.DatabaseSQLite, "sqlite3"},
	}

	for _, tt := range tests {
		t.Run(string(tt.db), func(t *testing.T) {
			content := PackageJSON(NewContext(testSpec(tt.db)))

			var m packageManifest
			if err := json.Unmarshal([]byte(content), &m); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}

			if _, ok := m.Dependencies[tt.driver]; !ok {
				t.Errorf("dependencies missing driver %q: %v", tt.driver, m.Dependencies)
			}
			if _, ok := m.Scripts["seed"]; !ok {
				t.Error("scripts missing \"seed\" entry")
			}
		})
	}
}

func TestPackageJSON_NoDatabase(t *testing.T) {
	content := PackageJSON(NewContext(testSpec(models.DatabaseNone)))

	var m packageManifest
	if err := json.Unmarshal([]byte(content), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	for _, driver := range []string{"mongoose", "pg", "mysql2", "sqlite3"} {
		if _, ok := m.Dependencies[driver]; ok {
			t.Errorf("dependencies must not include %q without a database", driver)
		}
	}
	if _, ok := m.Scripts["seed"]; ok {
		t.Error("scripts must not include \"seed\" without a database")
	}
	for _, dep := range []string{"express", "dotenv", "jsonwebtoken", "bcryptjs"} {
		if _, ok := m.Dependencies[dep]; !ok {
			t.Errorf("dependencies missing %q", dep)
		}
	}
}

func TestPackageJSON_EscapesDescription(t *testing.T) {
	spec := testSpec(models.DatabaseNone)
	spec.Description = `He said "hello" \ world`
	content := PackageJSON(NewContext(spec))

	var m packageManifest
	if err := json.Unmarshal([]byte(content), &m); err != nil {
		t.Fatalf("invalid JSON with quoted description: %v\n%s", err, content)
	}
	if m.Description != spec.Description {
		t.Errorf("description = %q, want %q", m.Description, spec.Description)
	}
}

func TestReadme_UsesDisplayNameAndCommands(t *testing.T) {
	spec := testSpec(models.DatabaseMongoDB)
	spec.PackageManager = models.PackageManagerYarn
	content := Readme(NewContext(spec))

	if !strings.Contains(content, "# My App") {
		t.Errorf("README missing display-name heading:\n%s", content)
	}
	if !strings.Contains(content, "yarn seed") {
		t.Errorf("README missing seed command for yarn:\n%s", content)
	}
}
