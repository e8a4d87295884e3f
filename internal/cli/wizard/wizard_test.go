package wizard

import (
	"testing"

	"github.com/vuedapt/create-node/internal/config"
)

func TestRun_NoQuestions(t *testing.T) {
	if _, err := Run(nil); err != ErrNoQuestions {
		t.Errorf("Run(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestDefaultQuestions_OrderAndIDs(t *testing.T) {
	questions := DefaultQuestions("node-app", config.NewDefaults())

	wantIDs := []string{
		"project_name", "description", "version", "author",
		"license", "database", "package_manager", "install_deps",
	}
	if len(questions) != len(wantIDs) {
		t.Fatalf("got %d questions, want %d", len(questions), len(wantIDs))
	}
	for i, id := range wantIDs {
		if questions[i].ID != id {
			t.Errorf("question %d ID = %q, want %q", i, questions[i].ID, id)
		}
	}
}

func TestDefaultQuestions_Defaults(t *testing.T) {
	defaults := config.Defaults{Author: "Jamie", License: "Apache-2.0", PackageManager: "pnpm"}
	questions := DefaultQuestions("my-project", defaults)

	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	tests := []struct {
		id      string
		def     string
		require bool
	}{
		{"project_name", "my-project", true},
		{"version", "1.0.0", false},
		{"author", "Jamie", false},
		{"license", "Apache-2.0", false},
		{"database", "none", true},
		{"package_manager", "pnpm", true},
		{"install_deps", "true", false},
	}
	for _, tt := range tests {
		q, ok := byID[tt.id]
		if !ok {
			t.Errorf("missing question %q", tt.id)
			continue
		}
		if q.Default != tt.def {
			t.Errorf("question %q default = %q, want %q", tt.id, q.Default, tt.def)
		}
		if q.Required != tt.require {
			t.Errorf("question %q required = %v, want %v", tt.id, q.Required, tt.require)
		}
	}
}

func TestDefaultQuestions_DatabaseOptions(t *testing.T) {
	questions := DefaultQuestions("node-app", config.NewDefaults())

	var dbQuestion *Question
	for i := range questions {
		if questions[i].ID == "database" {
			dbQuestion = &questions[i]
			break
		}
	}
	if dbQuestion == nil {
		t.Fatal("database question not found")
	}

	want := []string{"none", "mongodb", "postgresql", "mysql", "sqlite"}
	if len(dbQuestion.Options) != len(want) {
		t.Fatalf("got %d options, want %d", len(dbQuestion.Options), len(want))
	}
	for i, v := range want {
		if dbQuestion.Options[i].Value != v {
			t.Errorf("option %d value = %q, want %q", i, dbQuestion.Options[i].Value, v)
		}
	}
}

func TestSaveAnswer(t *testing.T) {
	result := &Result{}

	answers := map[string]string{
		"project_name":    "My App",
		"description":     "desc",
		"version":         "2.0.0",
		"author":          "Jamie",
		"license":         "MIT",
		"database":        "sqlite",
		"package_manager": "yarn",
	}
	for id, val := range answers {
		saveAnswer(id, val, result)
	}
	saveBoolAnswer("install_deps", true, result)

	if result.ProjectName != "My App" || result.Description != "desc" ||
		result.Version != "2.0.0" || result.Author != "Jamie" ||
		result.License != "MIT" || result.Database != "sqlite" ||
		result.PackageManager != "yarn" || !result.InstallDeps {
		t.Errorf("unexpected result: %+v", result)
	}

	// Unknown IDs are ignored.
	saveAnswer("unknown", "x", result)
	saveBoolAnswer("unknown", false, result)
	if result.ProjectName != "My App" || !result.InstallDeps {
		t.Errorf("unknown IDs must not change the result: %+v", result)
	}
}
