package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFlag is returned when a flag is outside the closed set.
	// A caller bug; surfaced before any subprocess spawns.
	ErrUnknownFlag = zerr.New("unknown universal flag")

	// ErrCompilerNotFound is returned when the detector exhausts its
	// candidate list without finding a responding compiler.
	ErrCompilerNotFound = zerr.New("no usable compiler toolchain found")

	// ErrConflictingOutputKind is returned when a request selects more
	// than one of objects, shared-lib and static-lib.
	ErrConflictingOutputKind = zerr.New("conflicting output kind flags")

	// ErrNoInputs is returned when a request names no input files.
	ErrNoInputs = zerr.New("build request has no inputs")

	// ErrNoOutput is returned when a request names no output path.
	ErrNoOutput = zerr.New("build request has no output")

	// ErrStepFailed is returned by the application layer when a step's
	// subprocess exited non-zero.
	ErrStepFailed = zerr.New("build step failed")

	// ErrStepNotFound is returned when a requested step is not in the plan.
	ErrStepNotFound = zerr.New("step not found in plan")
)
