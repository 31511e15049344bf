// Package domain contains the core domain models for cross-toolchain builds.
package domain

// Flag is a vendor-neutral identifier for a compiler or linker option.
// The set of valid flags is closed; anything outside it is rejected
// before any subprocess work begins.
type Flag string

// Output kind selectors. At most one of Objects, SharedLib and StaticLib
// may be present in a request.
const (
	// FlagObjects requests compilation to object files without linking.
	FlagObjects Flag = "objects"
	// FlagSharedLib requests a shared library as the link output.
	FlagSharedLib Flag = "shared-lib"
	// FlagStaticLib requests a static archive as the output.
	FlagStaticLib Flag = "static-lib"
)

// Optimization and debug selectors.
const (
	FlagOptimize0    Flag = "optimize-0"
	FlagOptimize1    Flag = "optimize-1"
	FlagOptimize2    Flag = "optimize-2"
	FlagOptimize3    Flag = "optimize-3"
	FlagOptimizeSize Flag = "optimize-size"
	FlagDebugSymbols Flag = "debug-symbols"
	FlagLTO          Flag = "lto"
	FlagPIC          Flag = "pic"
)

// Language standard selectors.
const (
	FlagC99   Flag = "c99"
	FlagC11   Flag = "c11"
	FlagC17   Flag = "c17"
	FlagCxx11 Flag = "c++11"
	FlagCxx14 Flag = "c++14"
	FlagCxx17 Flag = "c++17"
	FlagCxx20 Flag = "c++20"
)

// Diagnostics and sanitizers.
const (
	FlagWarnAll       Flag = "warn-all"
	FlagWarnError     Flag = "warn-error"
	FlagASan          Flag = "address-sanitizer"
	FlagTSan          Flag = "thread-sanitizer"
	FlagUBSan         Flag = "undefined-sanitizer"
)

// Architecture tiers. These are the one place translation carries real
// vendor knowledge: MSVC expresses vector extensions through /arch:
// switches and has no equivalent for "native".
const (
	FlagSSE42      Flag = "sse4.2"
	FlagAVX        Flag = "avx"
	FlagAVX2       Flag = "avx2"
	FlagAVX512     Flag = "avx-512"
	FlagArchNative Flag = "arch-native"
)

var allFlags = []Flag{
	FlagObjects, FlagSharedLib, FlagStaticLib,
	FlagOptimize0, FlagOptimize1, FlagOptimize2, FlagOptimize3, FlagOptimizeSize,
	FlagDebugSymbols, FlagLTO, FlagPIC,
	FlagC99, FlagC11, FlagC17,
	FlagCxx11, FlagCxx14, FlagCxx17, FlagCxx20,
	FlagWarnAll, FlagWarnError,
	FlagASan, FlagTSan, FlagUBSan,
	FlagSSE42, FlagAVX, FlagAVX2, FlagAVX512, FlagArchNative,
}

var flagSet = func() map[Flag]struct{} {
	m := make(map[Flag]struct{}, len(allFlags))
	for _, f := range allFlags {
		m[f] = struct{}{}
	}
	return m
}()

// AllFlags returns every member of the closed flag set.
func AllFlags() []Flag {
	out := make([]Flag, len(allFlags))
	copy(out, allFlags)
	return out
}

// KnownFlag reports whether f is a member of the closed flag set.
func KnownFlag(f Flag) bool {
	_, ok := flagSet[f]
	return ok
}

// OutputKind is the kind of artifact a build step produces.
type OutputKind int

const (
	// OutExecutable links the inputs into an executable. This is the
	// default when no output kind flag is present.
	OutExecutable OutputKind = iota
	// OutObject compiles inputs to object files without linking.
	OutObject
	// OutShared links the inputs into a shared library.
	OutShared
	// OutStatic archives the inputs into a static library.
	OutStatic
)

// String returns the human-readable name of the output kind.
func (k OutputKind) String() string {
	switch k {
	case OutObject:
		return "object"
	case OutShared:
		return "shared"
	case OutStatic:
		return "static"
	default:
		return "executable"
	}
}

// OutputKindOf derives the effective output kind from a flag set.
// It returns ErrConflictingOutputKind when more than one of the kind
// selectors is present.
func OutputKindOf(flags []Flag) (OutputKind, error) {
	kind := OutExecutable
	seen := 0
	for _, f := range flags {
		switch f {
		case FlagObjects:
			kind = OutObject
			seen++
		case FlagSharedLib:
			kind = OutShared
			seen++
		case FlagStaticLib:
			kind = OutStatic
			seen++
		}
	}
	if seen > 1 {
		return OutExecutable, ErrConflictingOutputKind
	}
	return kind, nil
}
