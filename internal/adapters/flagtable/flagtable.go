// Package flagtable maps universal flags to native toolchain arguments.
package flagtable

import (
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Table is the immutable flag mapping of one toolchain variant. Every
// member of the closed flag set has an entry; an empty entry means the
// vendor has no equivalent.
type Table struct {
	kind    domain.ToolchainKind
	entries map[domain.Flag][]string
}

// ForKind returns the table of a toolchain kind. Closely related
// vendors are composed as base table plus override map: Clang derives
// from GNU and clang-cl derives from MSVC.
func ForKind(kind domain.ToolchainKind) Table {
	switch kind {
	case domain.ToolchainClang:
		return derive(kind, gnuEntries, clangOverrides)
	case domain.ToolchainMSVC:
		return derive(kind, msvcEntries, nil)
	case domain.ToolchainClangCL:
		return derive(kind, msvcEntries, clangCLOverrides)
	case domain.ToolchainTCC:
		return derive(kind, tccEntries, nil)
	default:
		return derive(domain.ToolchainGNU, gnuEntries, nil)
	}
}

// Kind returns the variant this table belongs to.
func (t Table) Kind() domain.ToolchainKind {
	return t.kind
}

// Translate expands universal flags into native arguments in input
// order. Validation runs before any lookup, so one flag outside the
// closed set aborts the whole call with no partial result.
func (t Table) Translate(flags []domain.Flag) ([]string, error) {
	for _, f := range flags {
		if !domain.KnownFlag(f) {
			return nil, zerr.With(domain.ErrUnknownFlag, "flag", string(f))
		}
	}

	var args []string
	for _, f := range flags {
		args = append(args, t.entries[f]...)
	}
	return args, nil
}

// Expansion returns the native tokens of a single flag and whether the
// table carries an entry for it.
func (t Table) Expansion(f domain.Flag) ([]string, bool) {
	e, ok := t.entries[f]
	if !ok {
		return nil, false
	}
	out := make([]string, len(e))
	copy(out, e)
	return out, true
}

func derive(kind domain.ToolchainKind, base, overrides map[domain.Flag][]string) Table {
	entries := make(map[domain.Flag][]string, len(base))
	for f, args := range base {
		entries[f] = args
	}
	for f, args := range overrides {
		entries[f] = args
	}
	return Table{kind: kind, entries: entries}
}
