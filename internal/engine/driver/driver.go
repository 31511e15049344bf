// Package driver implements the invocation orchestrator: it turns one
// vendor-neutral build request into vendor-exact subprocess calls.
package driver

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultOutputRoot is where relative output paths are rebased when no
// root is configured.
const DefaultOutputRoot = "build"

// Driver executes build requests against one detected toolchain. It is
// single-threaded and blocking: at most one subprocess runs at a time,
// and the invocation log must not be shared across goroutines without
// external synchronization. Callers needing parallelism drive multiple
// Driver instances.
type Driver struct {
	toolchain ports.Toolchain
	runner    ports.Runner
	logger    ports.Logger
	telemetry ports.Telemetry

	outputRoot string
	stdoutSink io.Writer
	stderrSink io.Writer
	staleness  Staleness
	store      ports.StateStore

	log []domain.InvocationRecord
}

// Option configures a Driver.
type Option func(*Driver)

// WithOutputRoot sets the directory relative outputs are rebased under.
func WithOutputRoot(root string) Option {
	return func(d *Driver) {
		if root != "" {
			d.outputRoot = root
		}
	}
}

// WithSinks forwards captured subprocess output to the given write-only
// sinks in addition to the invocation log.
func WithSinks(stdout, stderr io.Writer) Option {
	return func(d *Driver) {
		d.stdoutSink = stdout
		d.stderrSink = stderr
	}
}

// WithStaleness selects the staleness mode. StalenessHash requires a
// state store; without one the driver falls back to modification times.
func WithStaleness(mode Staleness, store ports.StateStore) Option {
	return func(d *Driver) {
		d.staleness = mode
		d.store = store
	}
}

// New creates a Driver bound to a detected toolchain.
func New(tc ports.Toolchain, runner ports.Runner, logger ports.Logger, telemetry ports.Telemetry, opts ...Option) *Driver {
	d := &Driver{
		toolchain:  tc,
		runner:     runner,
		logger:     logger,
		telemetry:  telemetry,
		outputRoot: DefaultOutputRoot,
		staleness:  StalenessMTime,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Toolchain returns the toolchain this driver invokes.
func (d *Driver) Toolchain() ports.Toolchain {
	return d.toolchain
}

// ResolveOutput resolves a request's output path: absolute passes
// through, relative is rebased under the configured output root.
func (d *Driver) ResolveOutput(output string) string {
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(d.outputRoot, output)
}

// Log returns a copy of the append-only invocation log.
func (d *Driver) Log() []domain.InvocationRecord {
	out := make([]domain.InvocationRecord, len(d.log))
	copy(out, d.log)
	return out
}

// Invoke validates and executes one build request. It returns an error
// for caller bugs (unknown flag, malformed request), which abort before
// any subprocess spawns. A subprocess that exits non-zero is not an
// error: it is reported as ok=false with diagnostics in the invocation
// log, so batch callers can decide whether to continue.
func (d *Driver) Invoke(ctx context.Context, req *domain.BuildRequest) (bool, error) {
	// 1. Validate and translate; one bad flag aborts everything.
	if err := req.Validate(); err != nil {
		return false, err
	}
	native, err := d.toolchain.Translate(req.Flags)
	if err != nil {
		return false, err
	}

	// 2. Extra native flags for the active toolchain kind only; flags
	// destined for other vendors are ignored, not rejected, so one
	// request can be reused across environments.
	native = append(native, req.XFlags[d.toolchain.Kind()]...)

	// 3. Resolve the output path. With a working directory set the path
	// is made absolute, so the staleness stat, MkdirAll and the
	// subprocess (which resolves relative paths against its own cwd)
	// all agree on where the output lives.
	output := d.ResolveOutput(req.Output)
	if req.WorkingDir != "" && !filepath.IsAbs(output) {
		abs, err := filepath.Abs(filepath.Join(req.WorkingDir, output))
		if err != nil {
			return false, zerr.Wrap(err, "failed to resolve output path")
		}
		output = abs
	}
	kind, err := req.OutputKind()
	if err != nil {
		return false, err
	}

	// 4. Staleness check: skipping appends nothing to the log, but the
	// trace still gets a cached vertex.
	if !req.Force && d.upToDate(output, req, native) {
		d.logger.Info("up to date: " + output)
		_, vertex := d.telemetry.Record(ctx, "up to date: "+output)
		vertex.Cached()
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o750); err != nil {
		return false, zerr.Wrap(err, "failed to create output directory")
	}

	// 5. Build and run the command sequence.
	for _, cmd := range d.commands(req, output, native, kind) {
		cmd.Dir = req.WorkingDir
		cmd.Env = req.Env
		if !d.runOne(ctx, cmd) {
			return false, nil
		}
	}

	// 6. Record the fresh input hash when hash staleness is active.
	if d.staleness == StalenessHash && d.store != nil {
		if err := d.recordHash(output, req, native); err != nil {
			d.logger.Warn("failed to record state cache entry: " + err.Error())
		}
	}

	return true, nil
}

// commands builds the vendor-exact command sequence for the request.
func (d *Driver) commands(req *domain.BuildRequest, output string, native []string, kind domain.OutputKind) []domain.Command {
	switch kind {
	case domain.OutObject:
		return []domain.Command{
			d.toolchain.Compile(req.Inputs, output, native, req.IncludeDirs, req.Defines, req.Language),
		}
	case domain.OutStatic:
		return d.toolchain.Archive(req.Inputs, output)
	default:
		// Executable and shared are both link mode; the translated
		// flag set carries the distinction. Source inputs go through
		// the combined builder so the compile-side arguments survive.
		if containsSource(req.Inputs) {
			return []domain.Command{
				d.toolchain.CompileAndLink(req.Inputs, output, native,
					req.IncludeDirs, req.Defines, req.Libraries, req.LibDirs, req.Language),
			}
		}
		return []domain.Command{
			d.toolchain.Link(req.Inputs, output, native, req.Libraries, req.LibDirs),
		}
	}
}

func containsSource(inputs []string) bool {
	for _, in := range inputs {
		if domain.SourceFile(in) {
			return true
		}
	}
	return false
}

// runOne executes a single command, captures its output and appends to
// the invocation log. Returns whether the command succeeded.
func (d *Driver) runOne(ctx context.Context, cmd domain.Command) bool {
	ctx, vertex := d.telemetry.Record(ctx, cmd.String())

	var outBuf, errBuf bytes.Buffer
	stdout := io.Writer(&outBuf)
	stderr := io.Writer(&errBuf)
	if d.stdoutSink != nil {
		stdout = io.MultiWriter(&outBuf, d.stdoutSink)
	}
	if d.stderrSink != nil {
		stderr = io.MultiWriter(&errBuf, d.stderrSink)
	}
	stdout = io.MultiWriter(stdout, vertex.Stdout())
	stderr = io.MultiWriter(stderr, vertex.Stderr())

	d.logger.Info("running: " + cmd.String())
	err := d.runner.Run(ctx, cmd, stdout, stderr)
	vertex.Complete(err)

	d.log = append(d.log, domain.InvocationRecord{
		Argv:    cmd.Argv,
		Stdout:  outBuf.String(),
		Stderr:  errBuf.String(),
		Success: err == nil,
	})

	if err != nil {
		d.logger.Error(zerr.With(err, "command", cmd.String()))
		return false
	}
	return true
}

func (d *Driver) recordHash(output string, req *domain.BuildRequest, native []string) error {
	hash, err := inputHash(req, native)
	if err != nil {
		return err
	}
	return d.store.Put(domain.StepInfo{
		Output:    output,
		InputHash: hash,
		Timestamp: time.Now(),
	})
}
