package flagtable

import "go.trai.ch/kiln/internal/core/domain"

// tccEntries covers the minimal C-only variant. tcc accepts only a
// small option surface; everything it cannot express expands to
// nothing, which is legal for members of the closed set.
var tccEntries = map[domain.Flag][]string{
	domain.FlagObjects:   {"-c"},
	domain.FlagSharedLib: {"-shared"},
	domain.FlagStaticLib: {},

	domain.FlagOptimize0:    {},
	domain.FlagOptimize1:    {},
	domain.FlagOptimize2:    {},
	domain.FlagOptimize3:    {},
	domain.FlagOptimizeSize: {},
	domain.FlagDebugSymbols: {"-g"},
	domain.FlagLTO:          {},
	domain.FlagPIC:          {},

	domain.FlagC99:   {},
	domain.FlagC11:   {},
	domain.FlagC17:   {},
	domain.FlagCxx11: {},
	domain.FlagCxx14: {},
	domain.FlagCxx17: {},
	domain.FlagCxx20: {},

	domain.FlagWarnAll:   {"-Wall"},
	domain.FlagWarnError: {"-Werror"},

	domain.FlagASan:  {},
	domain.FlagTSan:  {},
	domain.FlagUBSan: {},

	domain.FlagSSE42:      {},
	domain.FlagAVX:        {},
	domain.FlagAVX2:       {},
	domain.FlagAVX512:     {},
	domain.FlagArchNative: {},
}
