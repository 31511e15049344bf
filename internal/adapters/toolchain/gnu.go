package toolchain

import (
	"context"

	"go.trai.ch/kiln/internal/adapters/flagtable"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// gnuLike covers gcc and clang: one invocation per step, -I/-D prefix
// concatenation, link versus compile-only distinguished by the already
// translated flag set.
type gnuLike struct {
	desc   domain.Descriptor
	table  flagtable.Table
	runner ports.Runner
}

func (t *gnuLike) Kind() domain.ToolchainKind {
	return t.desc.Kind
}

func (t *gnuLike) Descriptor() domain.Descriptor {
	return t.desc
}

func (t *gnuLike) Translate(flags []domain.Flag) ([]string, error) {
	return t.table.Translate(flags)
}

func (t *gnuLike) compilerFor(lang domain.Language, inputs []string) string {
	if effectiveLanguage(lang, inputs) == domain.LanguageCXX && t.desc.CXX != "" {
		return t.desc.CXX
	}
	return t.desc.CC
}

func (t *gnuLike) Compile(inputs []string, output string, nativeFlags, includeDirs, defines []string, lang domain.Language) domain.Command {
	argv := []string{t.compilerFor(lang, inputs)}
	argv = append(argv, nativeFlags...)
	argv = append(argv, prefixed("-I", includeDirs)...)
	argv = append(argv, prefixed("-D", defines)...)
	argv = append(argv, inputs...)
	argv = append(argv, "-o", output)
	return domain.Command{Argv: argv}
}

// CompileAndLink is the one-invocation source-to-binary form: the
// compiler front end drives the linker, so compile-side and link-side
// arguments travel in the same argv. The C++ front end must link when
// any source is C++, or the runtime library is missing at link time.
func (t *gnuLike) CompileAndLink(inputs []string, output string, nativeFlags, includeDirs, defines, libraries, libDirs []string, lang domain.Language) domain.Command {
	argv := []string{t.compilerFor(lang, inputs)}
	argv = append(argv, nativeFlags...)
	argv = append(argv, prefixed("-I", includeDirs)...)
	argv = append(argv, prefixed("-D", defines)...)
	argv = append(argv, inputs...)
	argv = append(argv, "-o", output)
	argv = append(argv, prefixed("-L", libDirs)...)
	argv = append(argv, prefixed("-l", libraries)...)
	return domain.Command{Argv: argv}
}

func (t *gnuLike) Link(objects []string, output string, nativeFlags, libraries, libDirs []string) domain.Command {
	argv := []string{t.desc.CC}
	argv = append(argv, nativeFlags...)
	argv = append(argv, objects...)
	argv = append(argv, "-o", output)
	argv = append(argv, prefixed("-L", libDirs)...)
	argv = append(argv, prefixed("-l", libraries)...)
	return domain.Command{Argv: argv}
}

// Archive creates the archive, then indexes it when an indexer is
// configured. A missing indexer degrades to the single create step
// since ar's s modifier writes the index itself.
func (t *gnuLike) Archive(objects []string, output string) []domain.Command {
	if t.desc.Indexer == "" {
		argv := append([]string{t.desc.Archiver, "rcs", output}, objects...)
		return []domain.Command{{Argv: argv}}
	}
	create := append([]string{t.desc.Archiver, "rc", output}, objects...)
	index := []string{t.desc.Indexer, output}
	return []domain.Command{{Argv: create}, {Argv: index}}
}

func (t *gnuLike) Banner(ctx context.Context) (string, error) {
	return banner(ctx, t.runner, []string{t.desc.CC, "--version"})
}
