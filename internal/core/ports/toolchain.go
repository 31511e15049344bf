package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Toolchain builds vendor-exact argument vectors for compile, link and
// archive steps. Construction is pure and never fails on well-formed
// input; all failure is deferred to subprocess execution.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Kind returns the variant tag of this toolchain.
	Kind() domain.ToolchainKind

	// Descriptor returns the resolved executable names of this toolchain.
	Descriptor() domain.Descriptor

	// Translate maps universal flags to native arguments, preserving
	// order and flattening expansions. It fails with ErrUnknownFlag
	// before any lookup if a flag is outside the closed set; an empty
	// expansion means "no equivalent on this vendor" and is legal.
	Translate(flags []domain.Flag) ([]string, error)

	// Compile builds a compile invocation. Library arguments are never
	// part of a compile command.
	Compile(inputs []string, output string, nativeFlags, includeDirs, defines []string, lang domain.Language) domain.Command

	// CompileAndLink builds a single source-to-target invocation. It
	// carries both the compile-side arguments (include dirs, defines,
	// language selection) and the link-side arguments (libraries, search
	// paths), for steps whose inputs are sources rather than objects.
	CompileAndLink(inputs []string, output string, nativeFlags, includeDirs, defines, libraries, libDirs []string, lang domain.Language) domain.Command

	// Link builds a link invocation; executable versus shared mode is
	// determined by which translated flags are present in nativeFlags.
	Link(objects []string, output string, nativeFlags, libraries, libDirs []string) domain.Command

	// Archive builds the command sequence for a static archive: create,
	// then optionally index. A variant without an indexer returns a
	// single command rather than erroring.
	Archive(objects []string, output string) []domain.Command

	// Banner runs the primary compiler's version query and returns its
	// banner line.
	Banner(ctx context.Context) (string, error)
}

// Detector probes an ordered candidate list and constructs the first
// toolchain whose primary compiler responds.
type Detector interface {
	// Detect returns the first responding candidate, fully constructed
	// (including MSVC bootstrap), or ErrCompilerNotFound when the list
	// is exhausted. Only "executable not found" disqualifies a
	// candidate; exit status is ignored.
	Detect(ctx context.Context, candidates []domain.Descriptor) (Toolchain, error)
}
