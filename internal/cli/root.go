// Package cli provides the Cobra command tree for create-node.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vuedapt/create-node/internal/cli/wizard"
	"github.com/vuedapt/create-node/internal/config"
	"github.com/vuedapt/create-node/internal/defs"
	"github.com/vuedapt/create-node/internal/pkgm"
	"github.com/vuedapt/create-node/internal/scaffold"
	"github.com/vuedapt/create-node/pkg/models"
	"github.com/vuedapt/create-node/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "create-node [project-name] [directory]",
	Short: "Scaffold a Node.js Express project",
	Long: `create-node scaffolds a Node.js Express project with authentication,
an optional database integration, and a package.json wired for the
selected package manager.

Usage patterns:
  create-node my-app         Create ./my-app/ and generate inside
  create-node my-app ./work  Create ./work/my-app/ and generate inside
  create-node .              Generate into the current directory
  create-node                Prompt for everything (default name: node-app)`,
	Version:      version.GetVersion(),
	Args:         cobra.MaximumNArgs(2),
	PreRunE:      validateFlags,
	RunE:         runGenerate,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("create-node %s\n", version.GetVersion()))

	rootCmd.Flags().String("description", "", "Project description")
	rootCmd.Flags().String("pkg-version", "1.0.0", "Initial package version")
	rootCmd.Flags().String("author", "", "Author name")
	rootCmd.Flags().String("license", "", "License identifier (default: MIT)")
	rootCmd.Flags().String("database", "", "Database: none, mongodb, postgresql, mysql, or sqlite")
	rootCmd.Flags().String("package-manager", "", "Package manager: npm, yarn, or pnpm")
	rootCmd.Flags().Bool("install", false, "Install dependencies after generation")
	rootCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
	rootCmd.Flags().Bool("quiet", false, "Suppress step-by-step output")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateFlags validates enum flag values before execution.
func validateFlags(cmd *cobra.Command, _ []string) error {
	if db := getStringFlag(cmd, "database"); db != "" && !models.Database(db).IsValid() {
		return fmt.Errorf("invalid --database value %q: must be one of: none, mongodb, postgresql, mysql, sqlite", db)
	}
	if pm := getStringFlag(cmd, "package-manager"); pm != "" && !models.PackageManager(pm).IsValid() {
		return fmt.Errorf("invalid --package-manager value %q: must be one of: npm, yarn, pnpm", pm)
	}
	return nil
}

// resolveTarget derives the default project name, the base directory, and
// whether generation targets the current directory from the positional args.
//   - no args            → default name "node-app", base = cwd
//   - "."                → current directory, default name = cwd base name
//   - name [dir|"."]     → default name = name, base = dir (or cwd)
func resolveTarget(args []string, cwd string) (defaultName, baseDir string, useCurrent bool) {
	if len(args) == 0 {
		return defs.DefaultProjectName, cwd, false
	}
	if args[0] == "." {
		return filepath.Base(cwd), cwd, true
	}

	defaultName = args[0]
	baseDir = cwd
	if len(args) > 1 && args[1] != "." {
		baseDir = args[1]
	}
	return defaultName, baseDir, false
}

// runGenerate executes the full scaffolding workflow: argument resolution,
// the wizard (when interactive), generation, and the summary.
func runGenerate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	defaultName, baseDir, useCurrent := resolveTarget(args, cwd)
	defaults := config.Load()

	spec := models.ProjectSpec{
		Name:           defaultName,
		Description:    getStringFlag(cmd, "description"),
		Version:        getStringFlag(cmd, "pkg-version"),
		Author:         getStringFlag(cmd, "author"),
		License:        getStringFlag(cmd, "license"),
		Database:       models.Database(getStringFlag(cmd, "database")),
		PackageManager: models.PackageManager(getStringFlag(cmd, "package-manager")),
		InstallDeps:    getBoolFlag(cmd, "install"),
	}
	if spec.Author == "" {
		spec.Author = defaults.Author
	}
	if spec.License == "" {
		spec.License = defaults.License
	}
	if spec.Database == "" {
		spec.Database = models.DatabaseNone
	}
	if spec.PackageManager == "" {
		spec.PackageManager = defaults.PackageManager
	}

	nonInteractive := getBoolFlag(cmd, "non-interactive")
	if !nonInteractive && isatty.IsTerminal(os.Stdin.Fd()) {
		PrintBanner(version.GetVersion())

		answers, err := wizard.Run(wizard.DefaultQuestions(defaultName, defaults))
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Generation cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}

		spec.Name = answers.ProjectName
		spec.Description = answers.Description
		spec.Version = answers.Version
		spec.Author = answers.Author
		spec.License = answers.License
		spec.Database = models.Database(answers.Database)
		spec.PackageManager = models.PackageManager(answers.PackageManager)
		spec.InstallDeps = answers.InstallDeps
	}

	if err := spec.Validate(); err != nil {
		return err
	}

	targetDir := baseDir
	if !useCurrent {
		targetDir = filepath.Join(baseDir, spec.Slug())
	}

	out := cmd.OutOrStdout()
	var reporter scaffold.Reporter
	if getBoolFlag(cmd, "quiet") || !isatty.IsTerminal(os.Stdout.Fd()) {
		reporter = scaffold.NewWarnOnlyReporter(cmd.ErrOrStderr())
	} else {
		reporter = scaffold.NewConsoleReporter(out)
	}

	gen := scaffold.New(pkgm.NewRunner(), reporter, nil)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := gen.Generate(ctx, scaffold.Options{
		Spec:          spec,
		TargetDir:     targetDir,
		UseCurrentDir: useCurrent,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Directory", result.TargetDir},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
			{"Database", spec.Database.String()},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(fmt.Sprintf("Project %s created", spec.Slug()), details...))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderNextSteps(nextSteps(spec, result)))

	return nil
}

// nextSteps builds the command list shown after generation. The install
// command appears whenever dependencies were not successfully installed.
func nextSteps(spec models.ProjectSpec, result *scaffold.Result) []string {
	var steps []string
	if !result.UseCurrentDir {
		steps = append(steps, "cd "+filepath.Base(result.TargetDir))
	}
	if !result.InstallRan || !result.InstallOK {
		steps = append(steps, spec.PackageManager.InstallCommandLine())
	}
	steps = append(steps, "cp .env.example .env")
	if spec.Database != models.DatabaseNone {
		steps = append(steps, spec.PackageManager.RunCommandLine("seed"))
	}
	steps = append(steps, spec.PackageManager.RunCommandLine("start"))
	return steps
}
