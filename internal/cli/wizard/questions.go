package wizard

import (
	"github.com/vuedapt/create-node/internal/config"
	"github.com/vuedapt/create-node/pkg/models"
)

// DefaultQuestions returns the standard question set for project generation.
// The questions follow this order:
// 1. Project name (required)
// 2. Description
// 3. Version
// 4. Author
// 5. License
// 6. Database
// 7. Package manager
// 8. Install dependencies
func DefaultQuestions(defaultName string, defaults config.Defaults) []Question {
	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Used for the directory name and the package name (in slug form).",
			Default:     defaultName,
			Required:    true,
		},
		{
			ID:          "description",
			Type:        QuestionTypeInput,
			Title:       "Description",
			Description: "Short description for package.json and the README. Press Enter to skip.",
		},
		{
			ID:      "version",
			Type:    QuestionTypeInput,
			Title:   "Version",
			Default: "1.0.0",
		},
		{
			ID:          "author",
			Type:        QuestionTypeInput,
			Title:       "Author",
			Description: "Press Enter to skip.",
			Default:     defaults.Author,
		},
		{
			ID:      "license",
			Type:    QuestionTypeInput,
			Title:   "License",
			Default: defaults.License,
		},
		{
			ID:          "database",
			Type:        QuestionTypeSelect,
			Title:       "Select a database",
			Description: "Determines the connection config, user model, and seed script.",
			Options: []Option{
				{Label: "None", Value: string(models.DatabaseNone), Desc: "no database wiring"},
				{Label: "MongoDB", Value: string(models.DatabaseMongoDB), Desc: "mongoose"},
				{Label: "PostgreSQL", Value: string(models.DatabasePostgreSQL), Desc: "pg"},
				{Label: "MySQL", Value: string(models.DatabaseMySQL), Desc: "mysql2"},
				{Label: "SQLite", Value: string(models.DatabaseSQLite), Desc: "sqlite3"},
			},
			Default:  string(models.DatabaseNone),
			Required: true,
		},
		{
			ID:    "package_manager",
			Type:  QuestionTypeSelect,
			Title: "Select a package manager",
			Options: []Option{
				{Label: "npm", Value: string(models.PackageManagerNpm)},
				{Label: "yarn", Value: string(models.PackageManagerYarn)},
				{Label: "pnpm", Value: string(models.PackageManagerPnpm)},
			},
			Default:  string(defaults.PackageManager),
			Required: true,
		},
		{
			ID:          "install_deps",
			Type:        QuestionTypeConfirm,
			Title:       "Install dependencies now?",
			Description: "Runs the package manager's install command after generation.",
			Default:     "true",
		},
	}
}
