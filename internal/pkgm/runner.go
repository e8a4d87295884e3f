// Package pkgm spawns the selected Node package manager.
package pkgm

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/vuedapt/create-node/pkg/models"
)

// Runner executes package-manager commands as blocking subprocesses with
// inherited standard streams, so install output and progress bars reach the
// user's terminal directly.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Install runs the package manager's install command in dir and blocks until
// it exits. A missing binary or non-zero exit is returned as an error; the
// caller decides whether that is fatal.
func (r *Runner) Install(ctx context.Context, dir string, pm models.PackageManager) error {
	args := pm.InstallArgs()

	bin, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("%s is not installed: %w", args[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, args[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", pm.InstallCommandLine(), err)
	}
	return nil
}
