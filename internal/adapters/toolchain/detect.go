package toolchain

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Detector probes an ordered candidate list and constructs the first
// toolchain whose primary compiler responds. Deterministic given
// identical environment and candidate order.
type Detector struct {
	runner    ports.Runner
	logger    ports.Logger
	bootstrap ports.Bootstrapper
	extraDirs []string
}

var _ ports.Detector = (*Detector)(nil)

// NewDetector creates a Detector. bootstrap may be nil on hosts where
// no MSVC activation is possible; extraDirs are probed before the
// ambient search path.
func NewDetector(runner ports.Runner, logger ports.Logger, bootstrap ports.Bootstrapper, extraDirs []string) *Detector {
	return &Detector{
		runner:    runner,
		logger:    logger,
		bootstrap: bootstrap,
		extraDirs: extraDirs,
	}
}

// Detect probes candidates strictly in order. Only "executable not
// found" disqualifies a candidate; exit status is ignored, since a
// compiler that answers at all is a compiler that exists. Returns
// ErrCompilerNotFound when the list is exhausted.
func (d *Detector) Detect(ctx context.Context, candidates []domain.Descriptor) (ports.Toolchain, error) {
	for _, cand := range candidates {
		// Bootstrap runs before probing an MSVC candidate; its
		// degraded outcomes surface here as an ordinary probe miss.
		if cand.Kind == domain.ToolchainMSVC && d.bootstrap != nil {
			state := d.bootstrap.Run(ctx)
			d.logger.Info("msvc bootstrap: " + state.String())
		}

		path, ok := d.resolve(cand.CC)
		if !ok {
			continue
		}

		if !d.probe(ctx, cand, path) {
			continue
		}

		resolved := cand
		resolved.CC = path
		if cand.CXX != "" {
			if cxx, ok := d.resolve(cand.CXX); ok {
				resolved.CXX = cxx
			}
		}
		d.logger.Info("selected toolchain: " + string(cand.Kind) + " (" + path + ")")
		return New(resolved, d.runner), nil
	}
	return nil, domain.ErrCompilerNotFound
}

// probe invokes the candidate's version query and treats any outcome
// except a missing executable as a response.
func (d *Detector) probe(ctx context.Context, cand domain.Descriptor, path string) bool {
	argv := []string{path, "--version"}
	switch cand.Kind {
	case domain.ToolchainMSVC:
		argv = []string{path}
	case domain.ToolchainTCC:
		argv = []string{path, "-v"}
	}

	err := d.runner.Run(ctx, domain.Command{Argv: argv}, io.Discard, io.Discard)
	if err != nil && errors.Is(err, exec.ErrNotFound) {
		return false
	}
	return true
}

// resolve finds the executable, checking the extra search locations
// before the ambient PATH.
func (d *Detector) resolve(name string) (string, bool) {
	for _, dir := range d.extraDirs {
		for _, candidate := range executableNames(filepath.Join(dir, name)) {
			if isExecutable(candidate) {
				return candidate, true
			}
		}
	}
	if path, err := exec.LookPath(name); err == nil {
		return path, true
	}
	return "", false
}

func executableNames(base string) []string {
	if runtime.GOOS == "windows" && filepath.Ext(base) == "" {
		return []string{base + ".exe", base}
	}
	return []string{base}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0o111 != 0
}
