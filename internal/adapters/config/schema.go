package config

// planFile represents the structure of the kiln.yaml plan file.
type planFile struct {
	Version    string    `yaml:"version"`
	OutputRoot string    `yaml:"output_root"`
	Toolchains []string  `yaml:"toolchains"`
	Steps      []stepDTO `yaml:"steps"`
}

// stepDTO represents one build step definition in the plan file.
type stepDTO struct {
	Name        string              `yaml:"name"`
	Inputs      []string            `yaml:"inputs"`
	Output      string              `yaml:"output"`
	Flags       []string            `yaml:"flags"`
	IncludeDirs []string            `yaml:"include_dirs"`
	Defines     []string            `yaml:"defines"`
	Libraries   []string            `yaml:"libraries"`
	LibDirs     []string            `yaml:"lib_dirs"`
	Language    string              `yaml:"language"`
	XFlags      map[string][]string `yaml:"xflags"`
	Environment map[string]string   `yaml:"environment"`
}
