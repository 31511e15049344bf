package domain

// ToolchainKind is the tag of a supported toolchain family.
type ToolchainKind string

const (
	// ToolchainGNU is gcc and binutils.
	ToolchainGNU ToolchainKind = "gnu"
	// ToolchainClang is clang with GNU-compatible driver syntax.
	ToolchainClang ToolchainKind = "clang"
	// ToolchainMSVC is the Microsoft cl.exe family.
	ToolchainMSVC ToolchainKind = "msvc"
	// ToolchainClangCL is clang with cl.exe-compatible driver syntax.
	ToolchainClangCL ToolchainKind = "clang-cl"
	// ToolchainTCC is the Tiny C Compiler, C only.
	ToolchainTCC ToolchainKind = "tcc"
)

// ParseToolchainKind maps a configuration string to a ToolchainKind.
func ParseToolchainKind(s string) (ToolchainKind, bool) {
	switch ToolchainKind(s) {
	case ToolchainGNU, ToolchainClang, ToolchainMSVC, ToolchainClangCL, ToolchainTCC:
		return ToolchainKind(s), true
	}
	return "", false
}

// Language selects the source language of a compile step.
type Language int

const (
	// LanguageAuto sniffs the language from file extensions. Sniffing
	// never overrides an explicit selection.
	LanguageAuto Language = iota
	// LanguageC compiles all inputs as C.
	LanguageC
	// LanguageCXX compiles all inputs as C++.
	LanguageCXX
)

// Descriptor names the executables of one toolchain variant. Before
// detection the fields are bare command names; detection resolves the
// primary compiler to a path that responds on this host.
type Descriptor struct {
	Kind     ToolchainKind
	CC       string // primary C compiler, used for probing
	CXX      string // C++ compiler; empty for C-only variants
	Archiver string
	Indexer  string // archive indexer; empty means single-step archiving
}

// Languages returns the source languages the variant accepts.
func (d Descriptor) Languages() []Language {
	if d.CXX == "" {
		return []Language{LanguageC}
	}
	return []Language{LanguageC, LanguageCXX}
}

// DescriptorFor returns the default descriptor of a toolchain kind.
func DescriptorFor(kind ToolchainKind) Descriptor {
	switch kind {
	case ToolchainGNU:
		return Descriptor{Kind: kind, CC: "gcc", CXX: "g++", Archiver: "ar", Indexer: "ranlib"}
	case ToolchainClang:
		return Descriptor{Kind: kind, CC: "clang", CXX: "clang++", Archiver: "ar", Indexer: "ranlib"}
	case ToolchainMSVC:
		return Descriptor{Kind: kind, CC: "cl", CXX: "cl", Archiver: "lib"}
	case ToolchainClangCL:
		return Descriptor{Kind: kind, CC: "clang-cl", CXX: "clang-cl", Archiver: "llvm-lib"}
	case ToolchainTCC:
		return Descriptor{Kind: kind, CC: "tcc"}
	default:
		return Descriptor{Kind: kind}
	}
}

// DefaultCandidates is the probe order used when the plan does not name
// one: Clang first, then GNU, then MSVC.
func DefaultCandidates() []Descriptor {
	return []Descriptor{
		DescriptorFor(ToolchainClang),
		DescriptorFor(ToolchainGNU),
		DescriptorFor(ToolchainMSVC),
	}
}

// BootstrapState is the state of the MSVC environment bootstrap.
type BootstrapState int

const (
	// BootstrapNotProbed means the bootstrap has not run yet.
	BootstrapNotProbed BootstrapState = iota
	// BootstrapCompilerAlreadyAvailable means cl responded without any
	// external probing.
	BootstrapCompilerAlreadyAvailable
	// BootstrapCompilerAvailable means the environment script ran and
	// its variables were merged.
	BootstrapCompilerAvailable
	// BootstrapLocateFailed means no installation was found or the
	// environment script is missing on disk. Degraded, not an error.
	BootstrapLocateFailed
	// BootstrapScriptFailed means the environment script exited
	// non-zero; no environment was mutated. Degraded, not an error.
	BootstrapScriptFailed
)

// Available reports whether the state is one of the terminal success states.
func (s BootstrapState) Available() bool {
	return s == BootstrapCompilerAlreadyAvailable || s == BootstrapCompilerAvailable
}

// String returns the state name.
func (s BootstrapState) String() string {
	switch s {
	case BootstrapCompilerAlreadyAvailable:
		return "CompilerAlreadyAvailable"
	case BootstrapCompilerAvailable:
		return "CompilerAvailable"
	case BootstrapLocateFailed:
		return "LocateFailed"
	case BootstrapScriptFailed:
		return "ScriptFailed"
	default:
		return "NotProbed"
	}
}
