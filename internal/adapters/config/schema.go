package config

// Distfile represents the structure of the distpack.yaml configuration file.
type Distfile struct {
	Version               string      `yaml:"version"`
	OutDir                string      `yaml:"outDir"`
	Manifest              string      `yaml:"manifest"`
	EnsureOutDir          *bool       `yaml:"ensureOutDir"`
	StateFile             string      `yaml:"stateFile"`
	ChunkSizeWarningLimit *float64    `yaml:"chunkSizeWarningLimit"`
	Copy                  []CopyDTO   `yaml:"copy"`
	Build                 []StepDTO   `yaml:"build"`
	Formats               []FormatDTO `yaml:"formats"`
}

// CopyDTO represents one copy entry. Dest is relative to outDir.
type CopyDTO struct {
	Src  string `yaml:"src"`
	Dest string `yaml:"dest"`
}

// StepDTO represents an external build step.
type StepDTO struct {
	Name        string            `yaml:"name"`
	Cmd         []string          `yaml:"cmd"`
	WorkingDir  string            `yaml:"workingDir"`
	Environment map[string]string `yaml:"environment"`
}

// FormatDTO represents one bundle output format. Dir is relative to outDir.
type FormatDTO struct {
	Name  string `yaml:"name"`
	Dir   string `yaml:"dir"`
	Entry string `yaml:"entry"`
}
