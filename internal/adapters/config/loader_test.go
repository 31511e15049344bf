package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kiln.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPreservesStepOrder(t *testing.T) {
	path := writePlan(t, `
version: "1"
output_root: out
toolchains: [clang, gnu]
steps:
  - name: objects
    inputs: [main.c]
    output: main.o
    flags: [objects, optimize-2]
  - name: app
    inputs: [main.o]
    output: app
    libraries: [m]
    lib_dirs: [/opt/lib]
`)

	plan, err := newTestLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", plan.OutputRoot)
	assert.Equal(t, []domain.ToolchainKind{domain.ToolchainClang, domain.ToolchainGNU}, plan.Candidates)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "objects", plan.Steps[0].Name)
	assert.Equal(t, "app", plan.Steps[1].Name)
	assert.Equal(t, []domain.Flag{domain.FlagObjects, domain.FlagOptimize2}, plan.Steps[0].Request.Flags)
	assert.Equal(t, []string{"m"}, plan.Steps[1].Request.Libraries)
}

func TestLoadUnknownFlag(t *testing.T) {
	path := writePlan(t, `
steps:
  - name: bad
    inputs: [main.c]
    output: main.o
    flags: [turbo-mode]
`)

	_, err := newTestLoader(t).Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownFlag))
}

func TestLoadDuplicateStepName(t *testing.T) {
	path := writePlan(t, `
steps:
  - name: x
    inputs: [a.c]
    output: a.o
    flags: [objects]
  - name: x
    inputs: [b.c]
    output: b.o
    flags: [objects]
`)

	_, err := newTestLoader(t).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate step name")
}

func TestLoadUnnamedStep(t *testing.T) {
	path := writePlan(t, `
steps:
  - inputs: [a.c]
    output: a.o
`)

	_, err := newTestLoader(t).Load(path)
	require.Error(t, err)
}

func TestLoadUnknownToolchain(t *testing.T) {
	path := writePlan(t, `
toolchains: [icc]
`)

	_, err := newTestLoader(t).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown toolchain kind")
}

func TestLoadXFlagsAndLanguage(t *testing.T) {
	path := writePlan(t, `
steps:
  - name: compile
    inputs: [core.cc]
    output: core.o
    flags: [objects]
    language: c++
    xflags:
      clang: ["-fcolor-diagnostics"]
      msvc: ["/diagnostics:caret"]
    environment:
      CCACHE_DISABLE: "1"
`)

	plan, err := newTestLoader(t).Load(path)
	require.NoError(t, err)

	req := plan.Steps[0].Request
	assert.Equal(t, domain.LanguageCXX, req.Language)
	assert.Equal(t, []string{"-fcolor-diagnostics"}, req.XFlags[domain.ToolchainClang])
	assert.Equal(t, []string{"/diagnostics:caret"}, req.XFlags[domain.ToolchainMSVC])
	assert.Equal(t, "1", req.Env["CCACHE_DISABLE"])
}

func TestLoadInvalidLanguage(t *testing.T) {
	path := writePlan(t, `
steps:
  - name: compile
    inputs: [a.c]
    output: a.o
    language: fortran
`)

	_, err := newTestLoader(t).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := newTestLoader(t).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadStepFailsRequestValidation(t *testing.T) {
	path := writePlan(t, `
steps:
  - name: empty
    output: a.o
`)

	_, err := newTestLoader(t).Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoInputs))
}
