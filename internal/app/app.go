// Package app implements the application layer for kiln.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/kiln/internal/adapters/statecache" //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/toolchain"  //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/driver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App loads a build plan, detects the host toolchain and executes the
// requested steps. Each step runs through its own Driver instance; the
// only parallelism is the compile fan-out, which also uses one Driver
// per worker as the driver itself is single-threaded.
type App struct {
	loader    ports.ConfigLoader
	runner    ports.Runner
	logger    ports.Logger
	telemetry ports.Telemetry
	bootstrap ports.Bootstrapper
	detector  ports.Detector

	planPath   string
	outputRoot string
	extraDirs  []string
	staleness  driver.Staleness
	force      bool
	jobs       int
	stdoutSink io.Writer
	stderrSink io.Writer

	mu  sync.Mutex
	log []domain.InvocationRecord

	tc ports.Toolchain
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, runner ports.Runner, logger ports.Logger, telemetry ports.Telemetry, bootstrap ports.Bootstrapper) *App {
	return &App{
		loader:     loader,
		runner:     runner,
		logger:     logger,
		telemetry:  telemetry,
		bootstrap:  bootstrap,
		planPath:   "kiln.yaml",
		jobs:       runtime.NumCPU(),
		stdoutSink: os.Stdout,
		stderrSink: os.Stderr,
	}
}

// SetPlanPath sets the plan file location.
func (a *App) SetPlanPath(path string) {
	if path != "" {
		a.planPath = path
	}
}

// SetOutputRoot overrides the plan's output root.
func (a *App) SetOutputRoot(root string) { a.outputRoot = root }

// SetForce makes every step execute regardless of staleness.
func (a *App) SetForce(force bool) { a.force = force }

// SetStaleness selects the staleness mode for all steps.
func (a *App) SetStaleness(mode driver.Staleness) { a.staleness = mode }

// SetJobs bounds the compile fan-out parallelism.
func (a *App) SetJobs(jobs int) {
	if jobs > 0 {
		a.jobs = jobs
	}
}

// SetExtraDirs adds compiler search locations probed before PATH.
func (a *App) SetExtraDirs(dirs []string) { a.extraDirs = dirs }

// SetSinks redirects subprocess output away from the process streams.
func (a *App) SetSinks(stdout, stderr io.Writer) {
	a.stdoutSink = stdout
	a.stderrSink = stderr
}

// SetTelemetry replaces the telemetry recorder.
func (a *App) SetTelemetry(t ports.Telemetry) { a.telemetry = t }

// SetDetector replaces the toolchain detector. Used by tests.
func (a *App) SetDetector(d ports.Detector) { a.detector = d }

// Log returns a copy of the merged invocation log of all steps run so
// far.
func (a *App) Log() []domain.InvocationRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.InvocationRecord, len(a.log))
	copy(out, a.log)
	return out
}

// Toolchain detects (once) and returns the active toolchain.
func (a *App) Toolchain(ctx context.Context) (ports.Toolchain, error) {
	if a.tc != nil {
		return a.tc, nil
	}

	plan, err := a.loader.Load(a.planPath)
	candidates := domain.DefaultCandidates()
	if err == nil && len(plan.Candidates) > 0 {
		candidates = candidates[:0]
		for _, kind := range plan.Candidates {
			candidates = append(candidates, domain.DescriptorFor(kind))
		}
	}

	det := a.detector
	if det == nil {
		det = toolchain.NewDetector(a.runner, a.logger, a.bootstrap, a.extraDirs)
	}

	tc, err := det.Detect(ctx, candidates)
	if err != nil {
		return nil, err
	}
	a.tc = tc
	return tc, nil
}

// Run executes the named steps in plan order, or every step when no
// names are given. It stops at the first failing step; subprocess
// diagnostics are already in the log and on the sinks by then.
func (a *App) Run(ctx context.Context, stepNames []string) error {
	plan, err := a.loader.Load(a.planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load build plan")
	}

	steps, err := selectSteps(plan, stepNames)
	if err != nil {
		return err
	}

	tc, err := a.Toolchain(ctx)
	if err != nil {
		return err
	}

	root := a.outputRoot
	if root == "" {
		root = plan.OutputRoot
	}
	if root == "" {
		root = driver.DefaultOutputRoot
	}

	store, err := a.stateStore(root)
	if err != nil {
		return err
	}

	for _, step := range steps {
		a.logger.Info("step " + step.Name)
		ok, err := a.runStep(ctx, tc, store, root, step)
		if err != nil {
			return zerr.With(err, "step", step.Name)
		}
		if !ok {
			return zerr.With(domain.ErrStepFailed, "step", step.Name)
		}
	}
	return nil
}

func (a *App) stateStore(root string) (ports.StateStore, error) {
	if a.staleness != driver.StalenessHash {
		return nil, nil
	}
	store, err := statecache.NewStore(filepath.Join(root, ".kiln-state.json"))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open state cache")
	}
	return store, nil
}

func (a *App) newDriver(tc ports.Toolchain, store ports.StateStore, root string) *driver.Driver {
	return driver.New(tc, a.runner, a.logger, a.telemetry,
		driver.WithOutputRoot(root),
		driver.WithSinks(a.stdoutSink, a.stderrSink),
		driver.WithStaleness(a.staleness, store),
	)
}

// runStep executes one step. Multi-source link steps are fanned out:
// every source compiles to an object in parallel, then a single link
// joins them.
func (a *App) runStep(ctx context.Context, tc ports.Toolchain, store ports.StateStore, root string, step domain.Step) (bool, error) {
	req := step.Request
	req.Force = req.Force || a.force

	kind, err := req.OutputKind()
	if err != nil {
		return false, err
	}

	linkable := kind == domain.OutExecutable || kind == domain.OutShared
	if linkable && countSources(req.Inputs) > 1 {
		return a.fanOut(ctx, tc, store, root, step.Name, req, kind)
	}

	d := a.newDriver(tc, store, root)
	ok, err := d.Invoke(ctx, &req)
	a.appendLog(d.Log())
	return ok, err
}

// fanOut compiles each source to an object under <root>/obj/<step>/
// using one driver per worker, then links the objects.
func (a *App) fanOut(ctx context.Context, tc ports.Toolchain, store ports.StateStore, root, stepName string, req domain.BuildRequest, kind domain.OutputKind) (bool, error) {
	objDir := filepath.Join("obj", stepName)
	objects := make([]string, len(req.Inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)

	var failed bool
	var mu sync.Mutex

	for i, src := range req.Inputs {
		objects[i] = filepath.Join(root, objDir, objectName(src))
		compileReq := domain.BuildRequest{
			Inputs:      []string{src},
			Output:      filepath.Join(objDir, objectName(src)),
			Flags:       compileFlags(req.Flags, kind),
			XFlags:      req.XFlags,
			IncludeDirs: req.IncludeDirs,
			Defines:     req.Defines,
			Language:    req.Language,
			WorkingDir:  req.WorkingDir,
			Env:         req.Env,
			Force:       req.Force,
		}

		g.Go(func() error {
			d := a.newDriver(tc, store, root)
			ok, err := d.Invoke(gctx, &compileReq)
			a.appendLog(d.Log())
			if err != nil {
				return err
			}
			if !ok {
				mu.Lock()
				failed = true
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return false, err
	}
	if failed {
		return false, nil
	}

	linkReq := req
	linkReq.Inputs = objects
	d := a.newDriver(tc, store, root)
	ok, err := d.Invoke(ctx, &linkReq)
	a.appendLog(d.Log())
	return ok, err
}

func (a *App) appendLog(records []domain.InvocationRecord) {
	a.mu.Lock()
	a.log = append(a.log, records...)
	a.mu.Unlock()
}

func selectSteps(plan *domain.Plan, names []string) ([]domain.Step, error) {
	if len(names) == 0 {
		return plan.Steps, nil
	}

	byName := make(map[string]domain.Step, len(plan.Steps))
	for _, s := range plan.Steps {
		byName[s.Name] = s
	}

	steps := make([]domain.Step, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, zerr.With(domain.ErrStepNotFound, "step", name)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func countSources(inputs []string) int {
	n := 0
	for _, in := range inputs {
		if domain.SourceFile(in) {
			n++
		}
	}
	return n
}

// objectName maps a source path to a flat object file name.
func objectName(src string) string {
	base := filepath.Base(src)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".o"
}

// compileFlags turns a link step's flag set into the flag set of its
// compile fan-out: the output kind selector is replaced by objects, and
// shared targets get position-independent code.
func compileFlags(flags []domain.Flag, kind domain.OutputKind) []domain.Flag {
	out := make([]domain.Flag, 0, len(flags)+2)
	hasPIC := false
	for _, f := range flags {
		switch f {
		case domain.FlagSharedLib, domain.FlagStaticLib, domain.FlagObjects:
			continue
		case domain.FlagPIC:
			hasPIC = true
		}
		out = append(out, f)
	}
	out = append(out, domain.FlagObjects)
	if kind == domain.OutShared && !hasPIC {
		out = append(out, domain.FlagPIC)
	}
	return out
}
