// Package scaffold orchestrates project generation: directory creation,
// template writes, optional dependency installation, and the result summary.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vuedapt/create-node/internal/defs"
	"github.com/vuedapt/create-node/internal/template"
	"github.com/vuedapt/create-node/pkg/models"
)

// Installer runs the package manager's install command in a directory.
type Installer interface {
	Install(ctx context.Context, dir string, pm models.PackageManager) error
}

// Options configures a generation run.
type Options struct {
	Spec          models.ProjectSpec
	TargetDir     string // Directory the project is written into.
	UseCurrentDir bool   // True when writing into the invoker's working directory.
}

// Result summarizes the outcome of a generation run.
type Result struct {
	TargetDir     string
	UseCurrentDir bool
	CreatedDirs   []string // Project-relative directories that were ensured.
	CreatedFiles  []string // Project-relative files that were written.
	InstallRan    bool     // Whether the install subprocess was invoked.
	InstallOK     bool     // Whether the install subprocess succeeded.
	Warnings      []string // Non-fatal warnings during generation.
}

// projectDirs lists the fixed subdirectories created under the project root.
var projectDirs = []string{
	"configs",
	"controllers",
	"middlewares",
	"models",
	"routes",
	"utils",
	"scripts",
	"uploads",
}

// Generator handles project scaffolding.
type Generator struct {
	installer Installer
	reporter  Reporter
	logger    *slog.Logger
}

// New creates a Generator with the given dependencies. A nil reporter
// silences progress output; a nil logger discards log records.
func New(installer Installer, reporter Reporter, logger *slog.Logger) *Generator {
	if reporter == nil {
		reporter = NewQuietReporter()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		installer: installer,
		reporter:  reporter,
		logger:    logger,
	}
}

// Generate creates the project described by opts. Directory and file-write
// failures abort the run; already-written files remain on disk. An install
// failure is downgraded to a warning and generation still succeeds.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Spec.Validate(); err != nil {
		return nil, err
	}

	root := filepath.Clean(opts.TargetDir)

	g.logger.Info("generating project",
		"root", root,
		"name", opts.Spec.Name,
		"database", opts.Spec.Database,
		"packageManager", opts.Spec.PackageManager,
	)

	result := &Result{
		TargetDir:     root,
		UseCurrentDir: opts.UseCurrentDir,
	}

	// Step 1: Ensure the project root exists.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create project directory %q: %w", root, err)
	}
	g.reporter.Step("Creating project in %s", root)

	// Step 2: Ensure the fixed subdirectories.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.createDirs(root, result); err != nil {
		return nil, fmt.Errorf("create project structure: %w", err)
	}

	// Step 3: Write every template to its fixed relative path, overwriting
	// same-named files and leaving unrelated files alone.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.writeFiles(root, opts.Spec, result); err != nil {
		return nil, fmt.Errorf("write project files: %w", err)
	}

	// Step 4: Optional dependency installation (non-fatal on failure).
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Spec.InstallDeps {
		g.install(ctx, root, opts.Spec.PackageManager, result)
	}

	g.logger.Info("project generated",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)

	return result, nil
}

// createDirs creates the fixed subdirectories under root.
func (g *Generator) createDirs(root string, result *Result) error {
	for _, dir := range projectDirs {
		dirPath := filepath.Join(root, dir)
		if err := os.MkdirAll(dirPath, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", dirPath, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}
	return nil
}

// writeFiles renders the template table and writes each file.
func (g *Generator) writeFiles(root string, spec models.ProjectSpec, result *Result) error {
	tctx := template.NewContext(spec)
	for _, f := range template.Files(tctx) {
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.WriteFile(path, []byte(f.Content), defs.FilePerm); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, f.Path)
		g.reporter.Step("Created %s", f.Path)
	}
	return nil
}

// install invokes the package manager and records the outcome. Failures are
// warnings: the files written so far are valid and the user can install
// manually.
func (g *Generator) install(ctx context.Context, root string, pm models.PackageManager, result *Result) {
	result.InstallRan = true
	g.reporter.Step("Installing dependencies with %s", pm)

	if err := g.installer.Install(ctx, root, pm); err != nil {
		warning := fmt.Sprintf("dependency installation failed: %s; run %q manually", err, pm.InstallCommandLine())
		result.Warnings = append(result.Warnings, warning)
		g.reporter.Warn("%s", warning)
		g.logger.Warn("dependency installation failed", "error", err)
		return
	}
	result.InstallOK = true
}
