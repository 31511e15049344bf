// Package msvcenv activates an MSVC build environment when cl is not
// already reachable on the search path.
package msvcenv

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// The two locator queries, issued in strict order: installations whose
// products are already registered first, then the latest install
// including prereleases. The first non-empty result wins.
var (
	installedQuery = []string{"-nologo", "-products", "*", "-property", "productPath"}
	latestQuery    = []string{"-nologo", "-latest", "-prerelease", "-products", "*", "-property", "productPath"}
)

// targetArch is the fixed architecture the environment script is run for.
const targetArch = "x64"

// Bootstrap drives the activation state machine:
//
//	NotProbed -> CompilerAlreadyAvailable
//	          -> NeedsLocate -> Located -> ScriptRun -> CompilerAvailable
//	          -> LocateFailed | ScriptFailed
//
// Degraded outcomes are terminal states, never errors; the compiler
// simply stays unavailable and detection moves on. The environment
// merge is the only irreversible, process-lifetime mutation in the
// system and happens at most once per construction.
type Bootstrap struct {
	runner  ports.Runner
	locator ports.InstallLocator
	sink    ports.EnvironmentSink
	logger  ports.Logger

	// Injection points for tests; default to the real filesystem.
	lookPath func(string) (string, error)
	stat     func(string) error
}

var _ ports.Bootstrapper = (*Bootstrap)(nil)

// New creates a Bootstrap that merges harvested variables into sink.
func New(runner ports.Runner, locator ports.InstallLocator, sink ports.EnvironmentSink, logger ports.Logger) *Bootstrap {
	return &Bootstrap{
		runner:   runner,
		locator:  locator,
		sink:     sink,
		logger:   logger,
		lookPath: exec.LookPath,
		stat: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
	}
}

// Run executes the state machine once and returns the terminal state.
func (b *Bootstrap) Run(ctx context.Context) domain.BootstrapState {
	// Short-circuit before any external probing: locating spawns
	// processes, so an already reachable compiler must skip it.
	if _, err := b.lookPath("cl"); err == nil {
		return domain.BootstrapCompilerAlreadyAvailable
	}

	product := b.locate(ctx)
	if product == "" {
		return domain.BootstrapLocateFailed
	}

	script := environmentScript(product)
	if err := b.stat(script); err != nil {
		b.logger.Warn("environment script missing: " + script)
		return domain.BootstrapLocateFailed
	}

	env, ok := b.runScript(ctx, script)
	if !ok {
		return domain.BootstrapScriptFailed
	}

	for _, kv := range env {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		if err := b.sink.Set(key, value); err != nil {
			b.logger.Error(err)
		}
	}
	return domain.BootstrapCompilerAvailable
}

func (b *Bootstrap) locate(ctx context.Context) string {
	for _, query := range [][]string{installedQuery, latestQuery} {
		product, err := b.locator.Locate(ctx, query)
		if err != nil {
			b.logger.Error(err)
			continue
		}
		if product != "" {
			return product
		}
	}
	return ""
}

// runScript executes the setup script for the fixed target architecture
// through cmd.exe, capturing combined output. On failure no environment
// is mutated.
func (b *Bootstrap) runScript(ctx context.Context, script string) ([]string, bool) {
	// The script runs through an intermediary shell, so paths with
	// spaces or embedded quotes are quoted per cmd.exe convention, not
	// per this process's argv rules.
	line := "call " + quoteForCmd(script) + " " + targetArch + " && set"
	cmd := domain.Command{Argv: []string{"cmd.exe", "/s", "/c", line}}

	var combined bytes.Buffer
	if err := b.runner.Run(ctx, cmd, &combined, &combined); err != nil {
		b.logger.Warn("environment script failed: " + strings.TrimSpace(lastLine(&combined)))
		return nil, false
	}

	var env []string
	sc := bufio.NewScanner(&combined)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		env = append(env, sc.Text())
	}
	return env, true
}

// environmentScript derives the vcvars script location from the
// reported product path via a fixed relative traversal: the product
// lives under <root>\Common7\IDE, the script under
// <root>\VC\Auxiliary\Build.
func environmentScript(productPath string) string {
	root := filepath.Dir(filepath.Dir(filepath.Dir(productPath)))
	return filepath.Join(root, "VC", "Auxiliary", "Build", "vcvarsall.bat")
}

// quoteForCmd wraps a path in double quotes, doubling any embedded
// quote, which is cmd.exe's own escaping convention.
func quoteForCmd(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func lastLine(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\n")
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
