package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// BuildRequest describes one compile, link or archive step in
// vendor-neutral terms. It is immutable once handed to the driver.
type BuildRequest struct {
	Inputs []string
	Output string
	Flags  []Flag

	// XFlags are raw vendor-specific flags that bypass translation.
	// Only the entry keyed by the active toolchain kind is applied;
	// the rest are kept so a request can be reused across hosts.
	XFlags map[ToolchainKind][]string

	IncludeDirs []string
	Defines     []string
	Libraries   []string
	LibDirs     []string

	Language   Language
	WorkingDir string
	Env        map[string]string

	// Force skips the staleness check and always executes.
	Force bool
}

// OutputKind derives the effective output kind from the request's flags.
func (r *BuildRequest) OutputKind() (OutputKind, error) {
	return OutputKindOf(r.Flags)
}

// Validate checks the request before any subprocess work: it must name
// at least one input, its flags must all be members of the closed set,
// and at most one output kind selector may be present.
func (r *BuildRequest) Validate() error {
	if len(r.Inputs) == 0 {
		return ErrNoInputs
	}
	if r.Output == "" {
		return ErrNoOutput
	}
	for _, f := range r.Flags {
		if !KnownFlag(f) {
			return zerr.With(ErrUnknownFlag, "flag", string(f))
		}
	}
	if _, err := r.OutputKind(); err != nil {
		return err
	}
	return nil
}

var sourceExtensions = map[string]bool{
	".c": true, ".cc": true, ".cpp": true, ".cxx": true, ".c++": true, ".C": true,
}

// SourceFile reports whether the path names a compilable source file
// rather than an already built object or archive.
func SourceFile(path string) bool {
	return sourceExtensions[filepath.Ext(path)]
}

// Plan is an ordered list of named build steps loaded from a plan file.
type Plan struct {
	OutputRoot string
	Candidates []ToolchainKind
	Steps      []Step
}

// Step pairs a name with the request it executes.
type Step struct {
	Name    string
	Request BuildRequest
}
