package toolchain

import (
	"context"
	"path/filepath"

	"go.trai.ch/kiln/internal/adapters/flagtable"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// msvcLike covers cl.exe and clang-cl: /I and /D prefixes, libraries
// suffixed .lib, output selected via /Fo or /Fe, and a trailing /link
// section appended only when library search paths are present. The
// omission when empty is a hard contract: link.exe errors on an empty
// /link section.
type msvcLike struct {
	desc   domain.Descriptor
	table  flagtable.Table
	runner ports.Runner
}

func (t *msvcLike) Kind() domain.ToolchainKind {
	return t.desc.Kind
}

func (t *msvcLike) Descriptor() domain.Descriptor {
	return t.desc
}

func (t *msvcLike) Translate(flags []domain.Flag) ([]string, error) {
	return t.table.Translate(flags)
}

func (t *msvcLike) Compile(inputs []string, output string, nativeFlags, includeDirs, defines []string, lang domain.Language) domain.Command {
	argv := []string{t.desc.CC, "/nologo"}
	argv = append(argv, nativeFlags...)
	argv = append(argv, prefixed("/I", includeDirs)...)
	argv = append(argv, prefixed("/D", defines)...)
	// Explicit language selection; sniffing applies only to Auto.
	switch effectiveLanguage(lang, inputs) {
	case domain.LanguageCXX:
		argv = append(argv, "/TP")
	default:
		argv = append(argv, "/TC")
	}
	argv = append(argv, inputs...)
	if containsArg(nativeFlags, "/c") {
		argv = append(argv, "/Fo"+output)
	} else {
		argv = append(argv, "/Fe"+output)
	}
	return domain.Command{Argv: argv}
}

// CompileAndLink compiles sources and links in one cl invocation: the
// compile-side arguments keep their /I, /D and /Tx spellings, libraries
// join the input list, and the /link section follows the same
// non-empty rule as Link.
func (t *msvcLike) CompileAndLink(inputs []string, output string, nativeFlags, includeDirs, defines, libraries, libDirs []string, lang domain.Language) domain.Command {
	argv := []string{t.desc.CC, "/nologo"}
	argv = append(argv, nativeFlags...)
	argv = append(argv, prefixed("/I", includeDirs)...)
	argv = append(argv, prefixed("/D", defines)...)
	switch effectiveLanguage(lang, inputs) {
	case domain.LanguageCXX:
		argv = append(argv, "/TP")
	default:
		argv = append(argv, "/TC")
	}
	argv = append(argv, inputs...)
	for _, lib := range libraries {
		if filepath.Ext(lib) == "" {
			lib += ".lib"
		}
		argv = append(argv, lib)
	}
	argv = append(argv, "/Fe"+output)
	if len(libDirs) > 0 {
		argv = append(argv, "/link")
		argv = append(argv, prefixed("/LIBPATH:", libDirs)...)
	}
	return domain.Command{Argv: argv}
}

func (t *msvcLike) Link(objects []string, output string, nativeFlags, libraries, libDirs []string) domain.Command {
	argv := []string{t.desc.CC, "/nologo"}
	argv = append(argv, nativeFlags...)
	argv = append(argv, objects...)
	for _, lib := range libraries {
		if filepath.Ext(lib) == "" {
			lib += ".lib"
		}
		argv = append(argv, lib)
	}
	argv = append(argv, "/Fe"+output)
	if len(libDirs) > 0 {
		argv = append(argv, "/link")
		argv = append(argv, prefixed("/LIBPATH:", libDirs)...)
	}
	return domain.Command{Argv: argv}
}

// Archive is a single lib.exe step; the tool maintains its own index.
func (t *msvcLike) Archive(objects []string, output string) []domain.Command {
	argv := []string{t.desc.Archiver, "/nologo", "/OUT:" + output}
	argv = append(argv, objects...)
	return []domain.Command{{Argv: argv}}
}

// Banner probes the version banner. A bare cl prints it on stderr and
// exits non-zero; clang-cl answers --version like its GNU sibling.
func (t *msvcLike) Banner(ctx context.Context) (string, error) {
	argv := []string{t.desc.CC}
	if t.desc.Kind == domain.ToolchainClangCL {
		argv = append(argv, "--version")
	}
	return banner(ctx, t.runner, argv)
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
