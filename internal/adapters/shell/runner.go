// Package shell provides the subprocess runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec. Each call is one
// blocking subprocess; there is no timeout and no cancellation beyond
// the supplied context.
type Runner struct {
	logger ports.Logger
}

var _ ports.Runner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command with the process environment plus the
// command's own overrides. The executable is resolved against the
// merged environment's PATH, so variables merged by the MSVC bootstrap
// take effect without re-execing.
func (r *Runner) Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if len(cmd.Argv) == 0 {
		return nil
	}

	name := cmd.Argv[0]
	args := cmd.Argv[1:]

	env := mergeEnvironment(os.Environ(), cmd.Env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, args...) //nolint:gosec // argv is built by the toolchain layer

	// Preserve the name as invoked; CommandContext rewrites Args[0] to
	// the resolved path.
	if len(c.Args) > 0 {
		c.Args[0] = name
	}

	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Env = env
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		// Callers branch on exec.ErrNotFound to distinguish a missing
		// executable from a responding one; keep that chain intact.
		if errors.Is(err, exec.ErrNotFound) {
			return err
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Warn("command exited with code " + strconv.Itoa(exitCode) + ": " + name)
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// mergeEnvironment overlays the command's variables on the system
// environment, last writer wins.
func mergeEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}
	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches the directories of the given environment's PATH.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: an empty path element means ".".
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
