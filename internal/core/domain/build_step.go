package domain

// BuildStep is one command of the external build pipeline, such as a bundler invocation.
type BuildStep struct {
	Name        string
	Command     []string
	WorkingDir  string
	Environment map[string]string
}
