// Package config provides the build plan loader for kiln.
package config

import (
	"os"
	"strconv"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads a plan file and returns its steps in file order. Flags
// are validated against the closed set here, so a bad plan fails
// before any toolchain work begins.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read plan file")
	}

	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse plan file")
	}

	plan := &domain.Plan{OutputRoot: file.OutputRoot}

	for _, name := range file.Toolchains {
		kind, ok := domain.ParseToolchainKind(name)
		if !ok {
			return nil, zerr.With(zerr.New("unknown toolchain kind"), "toolchain", name)
		}
		plan.Candidates = append(plan.Candidates, kind)
	}

	seen := make(map[string]bool, len(file.Steps))
	for _, dto := range file.Steps {
		if dto.Name == "" {
			return nil, zerr.New("step without a name")
		}
		if seen[dto.Name] {
			return nil, zerr.With(zerr.New("duplicate step name"), "step", dto.Name)
		}
		seen[dto.Name] = true

		step, err := dto.toStep()
		if err != nil {
			return nil, zerr.With(err, "step", dto.Name)
		}
		plan.Steps = append(plan.Steps, step)
	}

	l.logger.Info("loaded plan: " + path + " (" + strconv.Itoa(len(plan.Steps)) + " steps)")
	return plan, nil
}

func (dto *stepDTO) toStep() (domain.Step, error) {
	flags := make([]domain.Flag, 0, len(dto.Flags))
	for _, raw := range dto.Flags {
		f := domain.Flag(raw)
		if !domain.KnownFlag(f) {
			return domain.Step{}, zerr.With(domain.ErrUnknownFlag, "flag", raw)
		}
		flags = append(flags, f)
	}

	lang, err := parseLanguage(dto.Language)
	if err != nil {
		return domain.Step{}, err
	}

	var xflags map[domain.ToolchainKind][]string
	if len(dto.XFlags) > 0 {
		xflags = make(map[domain.ToolchainKind][]string, len(dto.XFlags))
		for name, args := range dto.XFlags {
			kind, ok := domain.ParseToolchainKind(name)
			if !ok {
				return domain.Step{}, zerr.With(zerr.New("unknown toolchain kind in xflags"), "toolchain", name)
			}
			xflags[kind] = args
		}
	}

	req := domain.BuildRequest{
		Inputs:      dto.Inputs,
		Output:      dto.Output,
		Flags:       flags,
		XFlags:      xflags,
		IncludeDirs: dto.IncludeDirs,
		Defines:     dto.Defines,
		Libraries:   dto.Libraries,
		LibDirs:     dto.LibDirs,
		Language:    lang,
		Env:         dto.Environment,
	}
	if err := req.Validate(); err != nil {
		return domain.Step{}, err
	}

	return domain.Step{Name: dto.Name, Request: req}, nil
}

func parseLanguage(s string) (domain.Language, error) {
	switch s {
	case "":
		return domain.LanguageAuto, nil
	case "c":
		return domain.LanguageC, nil
	case "c++", "cxx":
		return domain.LanguageCXX, nil
	default:
		return domain.LanguageAuto, zerr.With(zerr.New("unknown language"), "language", s)
	}
}
