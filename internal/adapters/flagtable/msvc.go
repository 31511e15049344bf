package flagtable

import "go.trai.ch/kiln/internal/core/domain"

// msvcEntries is the base table for cl.exe-compatible drivers. Several
// entries are deliberately empty: cl has no C99 mode, no PIC switch
// (irrelevant on Windows), no thread or undefined sanitizer, and no
// "native" architecture selection. Vector extensions below AVX have no
// switch either, since the x64 baseline already implies SSE2.
var msvcEntries = map[domain.Flag][]string{
	domain.FlagObjects:   {"/c"},
	domain.FlagSharedLib: {"/LD"},
	domain.FlagStaticLib: {},

	domain.FlagOptimize0:    {"/Od"},
	domain.FlagOptimize1:    {"/O1"},
	domain.FlagOptimize2:    {"/O2"},
	domain.FlagOptimize3:    {"/Ox"},
	domain.FlagOptimizeSize: {"/O1"},
	domain.FlagDebugSymbols: {"/Zi"},
	domain.FlagLTO:          {"/GL"},
	domain.FlagPIC:          {},

	domain.FlagC99:   {},
	domain.FlagC11:   {"/std:c11"},
	domain.FlagC17:   {"/std:c17"},
	// cl's C++ floor is /std:c++14; c++11 maps to the closest
	// compatible mode rather than failing.
	domain.FlagCxx11: {"/std:c++14"},
	domain.FlagCxx14: {"/std:c++14"},
	domain.FlagCxx17: {"/std:c++17"},
	domain.FlagCxx20: {"/std:c++20"},

	domain.FlagWarnAll:   {"/W4"},
	domain.FlagWarnError: {"/WX"},

	domain.FlagASan:  {"/fsanitize=address"},
	domain.FlagTSan:  {},
	domain.FlagUBSan: {},

	// AVX tiers are architecture-level switches on cl, not per-feature
	// flags like GNU's -mavx2.
	domain.FlagSSE42:      {},
	domain.FlagAVX:        {"/arch:AVX"},
	domain.FlagAVX2:       {"/arch:AVX2"},
	domain.FlagAVX512:     {"/arch:AVX512"},
	domain.FlagArchNative: {},
}

// clangCLOverrides restores the GNU-style spellings clang-cl accepts in
// addition to cl syntax, recovering features cl itself lacks.
var clangCLOverrides = map[domain.Flag][]string{
	domain.FlagSSE42:      {"-msse4.2"},
	domain.FlagArchNative: {"-march=native"},
	domain.FlagUBSan:      {"-fsanitize=undefined"},
}
