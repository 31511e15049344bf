package toolchain

import (
	"context"

	"go.trai.ch/kiln/internal/adapters/flagtable"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// tcc is the minimal C-only variant. It reuses the GNU argument shape
// but has no separate archiver or indexer; tcc's built-in ar mode
// archives in a single step.
type tcc struct {
	desc   domain.Descriptor
	table  flagtable.Table
	runner ports.Runner
}

func (t *tcc) Kind() domain.ToolchainKind {
	return t.desc.Kind
}

func (t *tcc) Descriptor() domain.Descriptor {
	return t.desc
}

func (t *tcc) Translate(flags []domain.Flag) ([]string, error) {
	return t.table.Translate(flags)
}

func (t *tcc) Compile(inputs []string, output string, nativeFlags, includeDirs, defines []string, _ domain.Language) domain.Command {
	argv := []string{t.desc.CC}
	argv = append(argv, nativeFlags...)
	argv = append(argv, prefixed("-I", includeDirs)...)
	argv = append(argv, prefixed("-D", defines)...)
	argv = append(argv, inputs...)
	argv = append(argv, "-o", output)
	return domain.Command{Argv: argv}
}

func (t *tcc) CompileAndLink(inputs []string, output string, nativeFlags, includeDirs, defines, libraries, libDirs []string, _ domain.Language) domain.Command {
	argv := []string{t.desc.CC}
	argv = append(argv, nativeFlags...)
	argv = append(argv, prefixed("-I", includeDirs)...)
	argv = append(argv, prefixed("-D", defines)...)
	argv = append(argv, inputs...)
	argv = append(argv, "-o", output)
	argv = append(argv, prefixed("-L", libDirs)...)
	argv = append(argv, prefixed("-l", libraries)...)
	return domain.Command{Argv: argv}
}

func (t *tcc) Link(objects []string, output string, nativeFlags, libraries, libDirs []string) domain.Command {
	argv := []string{t.desc.CC}
	argv = append(argv, nativeFlags...)
	argv = append(argv, objects...)
	argv = append(argv, "-o", output)
	argv = append(argv, prefixed("-L", libDirs)...)
	argv = append(argv, prefixed("-l", libraries)...)
	return domain.Command{Argv: argv}
}

func (t *tcc) Archive(objects []string, output string) []domain.Command {
	argv := append([]string{t.desc.CC, "-ar", "rcs", output}, objects...)
	return []domain.Command{{Argv: argv}}
}

func (t *tcc) Banner(ctx context.Context) (string, error) {
	return banner(ctx, t.runner, []string{t.desc.CC, "-v"})
}
