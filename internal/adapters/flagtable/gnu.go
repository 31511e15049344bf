package flagtable

import "go.trai.ch/kiln/internal/core/domain"

// gnuEntries is the base table for GNU-compatible drivers.
var gnuEntries = map[domain.Flag][]string{
	domain.FlagObjects:   {"-c"},
	domain.FlagSharedLib: {"-shared"},
	// Static archives go through the archiver, not a compiler switch.
	domain.FlagStaticLib: {},

	domain.FlagOptimize0:    {"-O0"},
	domain.FlagOptimize1:    {"-O1"},
	domain.FlagOptimize2:    {"-O2"},
	domain.FlagOptimize3:    {"-O3"},
	domain.FlagOptimizeSize: {"-Os"},
	domain.FlagDebugSymbols: {"-g"},
	domain.FlagLTO:          {"-flto"},
	domain.FlagPIC:          {"-fPIC"},

	domain.FlagC99:   {"-std=c99"},
	domain.FlagC11:   {"-std=c11"},
	domain.FlagC17:   {"-std=c17"},
	domain.FlagCxx11: {"-std=c++11"},
	domain.FlagCxx14: {"-std=c++14"},
	domain.FlagCxx17: {"-std=c++17"},
	domain.FlagCxx20: {"-std=c++20"},

	domain.FlagWarnAll:   {"-Wall", "-Wextra"},
	domain.FlagWarnError: {"-Werror"},

	domain.FlagASan:  {"-fsanitize=address", "-fno-omit-frame-pointer"},
	domain.FlagTSan:  {"-fsanitize=thread"},
	domain.FlagUBSan: {"-fsanitize=undefined"},

	domain.FlagSSE42:      {"-msse4.2"},
	domain.FlagAVX:        {"-mavx"},
	domain.FlagAVX2:       {"-mavx2"},
	domain.FlagAVX512:     {"-mavx512f"},
	domain.FlagArchNative: {"-march=native"},
}

// clangOverrides holds the entries where clang's spelling differs from
// gcc's: thin LTO and the clang-only -Oz size tier.
var clangOverrides = map[domain.Flag][]string{
	domain.FlagLTO:          {"-flto=thin"},
	domain.FlagOptimizeSize: {"-Oz"},
}
