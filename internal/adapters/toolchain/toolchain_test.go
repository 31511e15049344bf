package toolchain_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/toolchain"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestGNUCompileShape(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainGNU), nil)

	native, err := tc.Translate([]domain.Flag{domain.FlagObjects, domain.FlagOptimize2, domain.FlagDebugSymbols})
	require.NoError(t, err)

	cmd := tc.Compile([]string{"src/main.c"}, "build/main.o", native, []string{"include"}, []string{"NDEBUG"}, domain.LanguageAuto)
	assert.Equal(t, []string{
		"gcc", "-c", "-O2", "-g", "-Iinclude", "-DNDEBUG", "src/main.c", "-o", "build/main.o",
	}, cmd.Argv)
}

func TestGNULinkShape(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainGNU), nil)

	cmd := tc.Link([]string{"a.o", "b.o"}, "build/app", nil, []string{"m", "pthread"}, []string{"/opt/lib"})
	assert.Equal(t, []string{
		"gcc", "a.o", "b.o", "-o", "build/app", "-L/opt/lib", "-lm", "-lpthread",
	}, cmd.Argv)
}

func TestGNUCompileAndLinkShape(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainGNU), nil)

	cmd := tc.CompileAndLink([]string{"app.cpp"}, "build/app", nil,
		[]string{"include"}, []string{"FOO=1"}, []string{"m"}, []string{"/opt/lib"}, domain.LanguageAuto)
	assert.Equal(t, []string{
		"g++", "-Iinclude", "-DFOO=1", "app.cpp", "-o", "build/app", "-L/opt/lib", "-lm",
	}, cmd.Argv)
}

func TestGNUCompileUsesCXXForCppSources(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainGNU), nil)

	cmd := tc.Compile([]string{"lib.cpp"}, "lib.o", []string{"-c"}, nil, nil, domain.LanguageAuto)
	assert.Equal(t, "g++", cmd.Argv[0])

	// Explicit selection always wins over sniffing.
	cmd = tc.Compile([]string{"lib.cpp"}, "lib.o", []string{"-c"}, nil, nil, domain.LanguageC)
	assert.Equal(t, "gcc", cmd.Argv[0])
}

func TestGNUArchiveTwoSteps(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainGNU), nil)

	cmds := tc.Archive([]string{"a.o", "b.o"}, "libx.a")
	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"ar", "rc", "libx.a", "a.o", "b.o"}, cmds[0].Argv)
	assert.Equal(t, []string{"ranlib", "libx.a"}, cmds[1].Argv)
}

func TestTCCArchiveSingleStep(t *testing.T) {
	desc := domain.DescriptorFor(domain.ToolchainTCC)
	desc.Archiver = "tcc"
	tc := toolchain.New(desc, nil)

	cmds := tc.Archive([]string{"a.o"}, "libx.a")
	require.Len(t, cmds, 1)
}

func TestMSVCCompileShape(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainMSVC), nil)

	native, err := tc.Translate([]domain.Flag{domain.FlagObjects, domain.FlagOptimize2})
	require.NoError(t, err)

	cmd := tc.Compile([]string{"main.c"}, "main.obj", native, []string{"include"}, []string{"NDEBUG"}, domain.LanguageAuto)
	assert.Equal(t, []string{
		"cl", "/nologo", "/c", "/O2", "/Iinclude", "/DNDEBUG", "/TC", "main.c", "/Fomain.obj",
	}, cmd.Argv)
}

func TestMSVCCompileLanguageSelector(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainMSVC), nil)

	cmd := tc.Compile([]string{"app.cpp"}, "app.obj", []string{"/c"}, nil, nil, domain.LanguageAuto)
	assert.Contains(t, cmd.Argv, "/TP")

	cmd = tc.Compile([]string{"app.cpp"}, "app.obj", []string{"/c"}, nil, nil, domain.LanguageC)
	assert.Contains(t, cmd.Argv, "/TC")
}

func TestMSVCCompileAndLinkShape(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainMSVC), nil)

	cmd := tc.CompileAndLink([]string{"app.c"}, "app.exe", nil,
		[]string{"include"}, []string{"NDEBUG"}, []string{"user32"}, []string{`C:\sdk\lib`}, domain.LanguageAuto)
	assert.Equal(t, []string{
		"cl", "/nologo", "/Iinclude", "/DNDEBUG", "/TC", "app.c", "user32.lib", "/Feapp.exe",
		"/link", `/LIBPATH:C:\sdk\lib`,
	}, cmd.Argv)
}

func TestMSVCLinkOmitsEmptyLinkSection(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainMSVC), nil)

	cmd := tc.Link([]string{"a.obj"}, "app.exe", nil, []string{"user32"}, nil)
	assert.Equal(t, []string{"cl", "/nologo", "a.obj", "user32.lib", "/Feapp.exe"}, cmd.Argv)
	assert.NotContains(t, cmd.Argv, "/link")
}

func TestMSVCLinkSectionWithLibDirs(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainMSVC), nil)

	cmd := tc.Link([]string{"a.obj"}, "app.exe", nil, []string{"ws2_32.lib"}, []string{`C:\sdk\lib`, `C:\vendor\lib`})
	assert.Equal(t, []string{
		"cl", "/nologo", "a.obj", "ws2_32.lib", "/Feapp.exe",
		"/link", `/LIBPATH:C:\sdk\lib`, `/LIBPATH:C:\vendor\lib`,
	}, cmd.Argv)
}

func TestMSVCArchiveShape(t *testing.T) {
	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainMSVC), nil)

	cmds := tc.Archive([]string{"a.obj", "b.obj"}, "x.lib")
	require.Len(t, cmds, 1)
	assert.Equal(t, []string{"lib", "/nologo", "/OUT:x.lib", "a.obj", "b.obj"}, cmds[0].Argv)
}

func TestBannerFirstNonEmptyLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, _ = stdout.Write([]byte("\ngcc (GCC) 13.2.0\nCopyright\n"))
			return nil
		})

	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainGNU), runner)
	banner, err := tc.Banner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gcc (GCC) 13.2.0", banner)
}

func TestBannerFromStderrDespiteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// cl prints its banner on stderr and exits non-zero when invoked
	// bare; the banner must still come through.
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, stderr io.Writer) error {
			assert.Equal(t, []string{"cl"}, cmd.Argv)
			_, _ = stderr.Write([]byte("Microsoft (R) C/C++ Optimizing Compiler Version 19.38\n"))
			return errors.New("exit status 2")
		})

	tc := toolchain.New(domain.DescriptorFor(domain.ToolchainMSVC), runner)
	banner, err := tc.Banner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Microsoft (R) C/C++ Optimizing Compiler Version 19.38", banner)
}
