package msvcenv

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// VSWhere queries the Visual Studio installer's vswhere.exe, which
// lives at a fixed location independent of any VS install.
type VSWhere struct {
	runner ports.Runner
	path   string
}

var _ ports.InstallLocator = (*VSWhere)(nil)

// NewVSWhere creates a locator using the conventional vswhere location.
func NewVSWhere(runner ports.Runner) *VSWhere {
	return &VSWhere{
		runner: runner,
		path:   filepath.Join(os.Getenv("ProgramFiles(x86)"), "Microsoft Visual Studio", "Installer", "vswhere.exe"),
	}
}

// Locate runs vswhere with the given query and returns the first
// non-empty line of its output, or "" when the query matched nothing.
// A missing vswhere binary is reported as an empty result, not an
// error: it means no locatable installation exists.
func (l *VSWhere) Locate(ctx context.Context, query []string) (string, error) {
	var out bytes.Buffer
	argv := append([]string{l.path}, query...)
	if err := l.runner.Run(ctx, domain.Command{Argv: argv}, &out, &bytes.Buffer{}); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	return "", nil
}

// ProcessEnv merges variables into the ambient process environment.
// Merged values persist for the process lifetime and are never rolled
// back.
type ProcessEnv struct{}

var _ ports.EnvironmentSink = ProcessEnv{}

// Set implements ports.EnvironmentSink.
func (ProcessEnv) Set(key, value string) error {
	return os.Setenv(key, value)
}
