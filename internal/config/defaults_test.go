package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vuedapt/create-node/pkg/models"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	got := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	want := NewDefaults()
	if got != want {
		t.Errorf("LoadFrom(missing) = %+v, want built-ins %+v", got, want)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultsFileName)
	content := "author: Jamie\nlicense: Apache-2.0\npackage_manager: yarn\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}

	got := LoadFrom(path)
	if got.Author != "Jamie" {
		t.Errorf("Author = %q, want %q", got.Author, "Jamie")
	}
	if got.License != "Apache-2.0" {
		t.Errorf("License = %q, want %q", got.License, "Apache-2.0")
	}
	if got.PackageManager != models.PackageManagerYarn {
		t.Errorf("PackageManager = %q, want %q", got.PackageManager, models.PackageManagerYarn)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultsFileName)
	if err := os.WriteFile(path, []byte("author: Jamie\n"), 0o644); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}

	got := LoadFrom(path)
	if got.Author != "Jamie" {
		t.Errorf("Author = %q, want %q", got.Author, "Jamie")
	}
	// Unset fields keep built-in defaults.
	if got.License != "MIT" {
		t.Errorf("License = %q, want %q", got.License, "MIT")
	}
	if got.PackageManager != models.PackageManagerNpm {
		t.Errorf("PackageManager = %q, want %q", got.PackageManager, models.PackageManagerNpm)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultsFileName)
	if err := os.WriteFile(path, []byte("author: [unclosed"), 0o644); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}

	got := LoadFrom(path)
	if got != NewDefaults() {
		t.Errorf("LoadFrom(invalid) = %+v, want built-ins", got)
	}
}

func TestLoadFrom_InvalidPackageManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultsFileName)
	if err := os.WriteFile(path, []byte("package_manager: bun\n"), 0o644); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}

	got := LoadFrom(path)
	if got.PackageManager != models.PackageManagerNpm {
		t.Errorf("PackageManager = %q, want built-in npm", got.PackageManager)
	}
}
