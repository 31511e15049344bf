package driver_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/statecache"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/adapters/toolchain"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func objectRequest(input, output string) *domain.BuildRequest {
	return &domain.BuildRequest{
		Inputs: []string{input},
		Output: output,
		Flags:  []domain.Flag{domain.FlagObjects},
	}
}

func TestInvokeCompile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	writeFile(t, src, "int main(void){return 0;}\n")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate([]domain.Flag{domain.FlagObjects}).Return([]string{"-c"}, nil)
	tc.EXPECT().
		Compile([]string{src}, filepath.Join(root, "out", "main.o"), []string{"-c"}, nil, nil, domain.LanguageAuto).
		Return(domain.Command{Argv: []string{"clang", "-c", src}})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, _ = stdout.Write([]byte("compiled\n"))
			return nil
		})

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	ok, err := d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)

	log := d.Log()
	require.Len(t, log, 1)
	assert.True(t, log[0].Success)
	assert.Equal(t, []string{"clang", "-c", src}, log[0].Argv)
	assert.Equal(t, "compiled\n", log[0].Stdout)
}

func TestInvokeUnknownFlagAbortsBeforeSubprocess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Neither toolchain nor runner may be touched for a malformed request.
	tc := mocks.NewMockToolchain(ctrl)
	runner := mocks.NewMockRunner(ctrl)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{})

	req := &domain.BuildRequest{
		Inputs: []string{"main.c"},
		Output: "main.o",
		Flags:  []domain.Flag{"warp-speed"},
	}
	ok, err := d.Invoke(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownFlag))
	assert.False(t, ok)
	assert.Empty(t, d.Log())
}

func TestInvokeSubprocessFailureIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "broken.c")
	writeFile(t, src, "int main(void){\n")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil)
	tc.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Command{Argv: []string{"clang", "-c", src}})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, _, stderr io.Writer) error {
			_, _ = stderr.Write([]byte("broken.c:1: error: expected '}'\n"))
			return errors.New("exit status 1")
		})

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	ok, err := d.Invoke(context.Background(), objectRequest(src, "broken.o"))
	require.NoError(t, err)
	assert.False(t, ok)

	log := d.Log()
	require.Len(t, log, 1)
	assert.False(t, log[0].Success)
	assert.Contains(t, log[0].Stderr, "expected '}'")
}

func TestInvokeSourceLinkKeepsCompileArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "app.cpp")
	writeFile(t, src, "int main(){return 0;}\n")

	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainGNU), nil)

	var got domain.Command
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			got = cmd
			return nil
		})

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	req := &domain.BuildRequest{
		Inputs:      []string{src},
		Output:      "app",
		IncludeDirs: []string{"include"},
		Defines:     []string{"FOO=1"},
	}
	ok, err := d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)

	// A C++ source driven to an executable must keep its include dirs
	// and defines and be compiled by the C++ front end.
	assert.Equal(t, "g++", got.Argv[0])
	assert.Contains(t, got.Argv, "-Iinclude")
	assert.Contains(t, got.Argv, "-DFOO=1")
	assert.Contains(t, got.Argv, src)
}

func TestInvokeObjectLinkUsesLinker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	objA := filepath.Join(root, "a.o")
	objB := filepath.Join(root, "b.o")
	writeFile(t, objA, "a")
	writeFile(t, objB, "b")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainGNU).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return(nil, nil)
	tc.EXPECT().Link([]string{objA, objB}, gomock.Any(), gomock.Any(), []string{"m"}, gomock.Any()).
		Return(domain.Command{Argv: []string{"gcc"}})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	req := &domain.BuildRequest{
		Inputs:    []string{objA, objB},
		Output:    "app",
		Libraries: []string{"m"},
	}
	ok, err := d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInvokeResolvesOutputAgainstWorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wd := t.TempDir()
	writeFile(t, filepath.Join(wd, "main.c"), "int main(void){return 0;}\n")

	resolved := filepath.Join(wd, "out", "main.o")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil).Times(2)
	tc.EXPECT().Compile([]string{"main.c"}, resolved, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Command{Argv: []string{"clang", "-c", "main.c"}}).Times(1)

	// Writing without MkdirAll proves the driver created the output
	// directory under the working directory, not the process cwd.
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Command, io.Writer, io.Writer) error {
			require.NoError(t, os.WriteFile(resolved, []byte("obj"), 0o600))
			return nil
		}).Times(1)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot("out"))

	req := &domain.BuildRequest{
		Inputs:     []string{"main.c"},
		Output:     "main.o",
		Flags:      []domain.Flag{domain.FlagObjects},
		WorkingDir: wd,
	}
	ok, err := d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)

	// The second invocation finds the output where the first left it.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(resolved, future, future))

	ok, err = d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, d.Log(), 1)
}

func TestInvokeSkipsUpToDateOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	out := filepath.Join(root, "out", "main.o")
	writeFile(t, src, "int main(void){return 0;}\n")
	writeFile(t, out, "obj")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, old, old))

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil)

	// No runner expectations: a skip spawns nothing and logs nothing.
	d := driver.New(tc, mocks.NewMockRunner(ctrl), quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	ok, err := d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, d.Log())
}

func TestInvokeSkipRecordsCachedVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	out := filepath.Join(root, "out", "main.o")
	writeFile(t, src, "int main(void){return 0;}\n")
	writeFile(t, out, "obj")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, old, old))

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Cached()
	tel := mocks.NewMockTelemetry(ctrl)
	tel.EXPECT().Record(gomock.Any(), gomock.Any()).Return(context.Background(), vertex)

	d := driver.New(tc, mocks.NewMockRunner(ctrl), quietLogger(ctrl), tel,
		driver.WithOutputRoot(filepath.Join(root, "out")))

	ok, err := d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, d.Log())
}

func TestInvokeForceReexecutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	out := filepath.Join(root, "out", "main.o")
	writeFile(t, src, "int main(void){return 0;}\n")
	writeFile(t, out, "obj")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, old, old))

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil)
	tc.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Command{Argv: []string{"clang", "-c", src}})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	req := objectRequest(src, "main.o")
	req.Force = true
	ok, err := d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, d.Log(), 1)
}

func TestInvokeAppliesActiveKindXFlagsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	writeFile(t, src, "int main(void){return 0;}\n")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil)
	tc.EXPECT().
		Compile(gomock.Any(), gomock.Any(), []string{"-c", "-ftrivial-auto-var-init=zero"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Command{Argv: []string{"clang"}})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	req := objectRequest(src, "main.o")
	req.XFlags = map[domain.ToolchainKind][]string{
		domain.ToolchainClang: {"-ftrivial-auto-var-init=zero"},
		domain.ToolchainMSVC:  {"/guard:cf"},
	}
	ok, err := d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInvokeArchiveRecordsEveryCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	objA := filepath.Join(root, "a.o")
	objB := filepath.Join(root, "b.o")
	writeFile(t, objA, "a")
	writeFile(t, objB, "b")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainGNU).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return(nil, nil)
	tc.EXPECT().Archive([]string{objA, objB}, gomock.Any()).
		Return([]domain.Command{
			{Argv: []string{"ar", "rc", "libx.a", objA, objB}},
			{Argv: []string{"ranlib", "libx.a"}},
		})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	req := &domain.BuildRequest{
		Inputs: []string{objA, objB},
		Output: "libx.a",
		Flags:  []domain.Flag{domain.FlagStaticLib},
	}
	ok, err := d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)

	log := d.Log()
	require.Len(t, log, 2)
	assert.Equal(t, "ar", log[0].Argv[0])
	assert.Equal(t, "ranlib", log[1].Argv[0])
}

func TestInvokeArchiveStopsAfterFailedCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	obj := filepath.Join(root, "a.o")
	writeFile(t, obj, "a")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainGNU).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return(nil, nil)
	tc.EXPECT().Archive(gomock.Any(), gomock.Any()).
		Return([]domain.Command{
			{Argv: []string{"ar", "rc", "libx.a", obj}},
			{Argv: []string{"ranlib", "libx.a"}},
		})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1")).Times(1)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")))

	req := &domain.BuildRequest{
		Inputs: []string{obj},
		Output: "libx.a",
		Flags:  []domain.Flag{domain.FlagStaticLib},
	}
	ok, err := d.Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, d.Log(), 1)
}

func TestInvokeSinksReceiveOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	writeFile(t, src, "int main(void){return 0;}\n")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil)
	tc.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Command{Argv: []string{"clang"}})

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, stderr io.Writer) error {
			_, _ = stdout.Write([]byte("note\n"))
			_, _ = stderr.Write([]byte("warning\n"))
			return nil
		})

	var outSink, errSink bytes.Buffer
	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")),
		driver.WithSinks(&outSink, &errSink))

	ok, err := d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "note\n", outSink.String())
	assert.Equal(t, "warning\n", errSink.String())

	log := d.Log()
	require.Len(t, log, 1)
	assert.Equal(t, "note\n", log[0].Stdout)
	assert.Equal(t, "warning\n", log[0].Stderr)
}

func TestResolveOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := driver.New(mocks.NewMockToolchain(ctrl), mocks.NewMockRunner(ctrl), quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot("out"))

	assert.Equal(t, filepath.Join("out", "main.o"), d.ResolveOutput("main.o"))

	abs := filepath.Join(t.TempDir(), "main.o")
	assert.Equal(t, abs, d.ResolveOutput(abs))
}

func TestHashStalenessSkipsUnchangedInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	writeFile(t, src, "int main(void){return 0;}\n")

	store, err := statecache.NewStore(filepath.Join(root, "state.json"))
	require.NoError(t, err)

	out := filepath.Join(root, "out", "main.o")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil).Times(2)
	tc.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Command{Argv: []string{"clang"}}).Times(1)

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Command, io.Writer, io.Writer) error {
			writeFile(t, out, "obj")
			return nil
		}).Times(1)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")),
		driver.WithStaleness(driver.StalenessHash, store))

	// First invocation executes and records the input hash.
	ok, err := d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)

	// Second invocation sees identical inputs and skips, mtimes aside.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(src, future, future))

	ok, err = d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, d.Log(), 1)
}

func TestHashStalenessReexecutesOnContentChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	src := filepath.Join(root, "main.c")
	writeFile(t, src, "int main(void){return 0;}\n")

	store, err := statecache.NewStore(filepath.Join(root, "state.json"))
	require.NoError(t, err)

	out := filepath.Join(root, "out", "main.o")

	tc := mocks.NewMockToolchain(ctrl)
	tc.EXPECT().Kind().Return(domain.ToolchainClang).AnyTimes()
	tc.EXPECT().Translate(gomock.Any()).Return([]string{"-c"}, nil).Times(2)
	tc.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Command{Argv: []string{"clang"}}).Times(2)

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Command, io.Writer, io.Writer) error {
			writeFile(t, out, "obj")
			return nil
		}).Times(2)

	d := driver.New(tc, runner, quietLogger(ctrl), &telemetry.Noop{},
		driver.WithOutputRoot(filepath.Join(root, "out")),
		driver.WithStaleness(driver.StalenessHash, store))

	ok, err := d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)

	writeFile(t, src, "int main(void){return 1;}\n")

	ok, err = d.Invoke(context.Background(), objectRequest(src, "main.o"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, d.Log(), 2)
}

func TestParseStaleness(t *testing.T) {
	mode, ok := driver.ParseStaleness("")
	assert.True(t, ok)
	assert.Equal(t, driver.StalenessMTime, mode)

	mode, ok = driver.ParseStaleness("hash")
	assert.True(t, ok)
	assert.Equal(t, driver.StalenessHash, mode)

	_, ok = driver.ParseStaleness("oracle")
	assert.False(t, ok)
}
