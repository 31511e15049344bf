// Package toolchain builds vendor-exact command vectors and detects
// which toolchain is installed on the host.
package toolchain

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/adapters/flagtable"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// New constructs the toolchain implementation for a resolved descriptor.
func New(desc domain.Descriptor, runner ports.Runner) ports.Toolchain {
	table := flagtable.ForKind(desc.Kind)
	switch desc.Kind {
	case domain.ToolchainMSVC, domain.ToolchainClangCL:
		return &msvcLike{desc: desc, table: table, runner: runner}
	case domain.ToolchainTCC:
		return &tcc{desc: desc, table: table, runner: runner}
	default:
		return &gnuLike{desc: desc, table: table, runner: runner}
	}
}

var cxxExtensions = map[string]bool{
	".cc": true, ".cpp": true, ".cxx": true, ".c++": true, ".C": true,
}

// sniffLanguage picks C++ when any input carries a C++ extension. It is
// a single-file convenience and never overrides an explicit selection;
// callers consult it only for LanguageAuto.
func sniffLanguage(inputs []string) domain.Language {
	for _, in := range inputs {
		if cxxExtensions[filepath.Ext(in)] {
			return domain.LanguageCXX
		}
	}
	return domain.LanguageC
}

// effectiveLanguage resolves the language of a compile step.
func effectiveLanguage(lang domain.Language, inputs []string) domain.Language {
	if lang != domain.LanguageAuto {
		return lang
	}
	return sniffLanguage(inputs)
}

// banner runs the given version query and returns its first output line.
// cl prints its banner on stderr, so both streams are captured.
func banner(ctx context.Context, runner ports.Runner, argv []string) (string, error) {
	var out, errOut bytes.Buffer
	// Exit status is irrelevant here: some vendors exit non-zero for a
	// bare invocation but still print a banner.
	runErr := runner.Run(ctx, domain.Command{Argv: argv}, &out, &errOut)

	for _, buf := range []*bytes.Buffer{&out, &errOut} {
		sc := bufio.NewScanner(buf)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				return line, nil
			}
		}
	}
	if runErr != nil {
		return "", zerr.Wrap(runErr, "version query produced no output")
	}
	return "", zerr.New("version query produced no output")
}

func prefixed(prefix string, values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, prefix+v)
	}
	return out
}
